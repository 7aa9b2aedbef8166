package papertrade

import (
	"bytes"
	"fmt"
	"os"
	"path/filepath"
)

// BookFile is the durable store for the book document: the whole book is
// loaded and saved as one file, never updated in part.
type BookFile struct {
	path string
}

// NewBookFile returns a store backed by the given file path. The file
// may not exist yet; creation happens on the first Save.
func NewBookFile(path string) *BookFile {
	return &BookFile{path: path}
}

// Path returns the location of the document on disk.
func (f *BookFile) Path() string { return f.path }

// Exists reports whether a book document has already been created. It
// guards the one-time initialization of a new book.
func (f *BookFile) Exists() bool {
	_, err := os.Stat(f.path)
	return err == nil
}

// Load reads and decodes the whole book document.
func (f *BookFile) Load() (*Book, error) {
	r, err := os.Open(f.path)
	if err != nil {
		return nil, fmt.Errorf("cannot open book file %q: %w", f.path, err)
	}
	defer r.Close()

	b, err := DecodeBook(r)
	if err != nil {
		return nil, fmt.Errorf("cannot decode book file %q: %w", f.path, err)
	}
	return b, nil
}

// Save encodes and writes the whole book document. The write is
// all-or-nothing: the document is staged in a temporary file next to its
// final location and renamed over it, so a failure never leaves a
// partially written book behind.
func (f *BookFile) Save(b *Book) error {
	var buf bytes.Buffer
	if err := EncodeBook(&buf, b); err != nil {
		return fmt.Errorf("cannot encode book: %w", err)
	}

	dir := filepath.Dir(f.path)
	tmp, err := os.CreateTemp(dir, ".book-*.json")
	if err != nil {
		return fmt.Errorf("cannot stage book file in %q: %w", dir, err)
	}
	defer os.Remove(tmp.Name())

	if _, err := tmp.Write(buf.Bytes()); err != nil {
		tmp.Close()
		return fmt.Errorf("cannot write staged book file: %w", err)
	}
	if err := tmp.Close(); err != nil {
		return fmt.Errorf("cannot close staged book file: %w", err)
	}
	if err := os.Rename(tmp.Name(), f.path); err != nil {
		return fmt.Errorf("cannot replace book file %q: %w", f.path, err)
	}
	return nil
}
