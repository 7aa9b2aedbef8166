package papertrade

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"maps"
	"slices"

	"github.com/shopspring/decimal"
)

// The book is persisted as a single JSON object in the historical tuple
// format: one reserved key holds the cash budget as a 1-tuple, and every
// symbol of the universe maps to a 4-tuple
// [shares, lastPrice, averageCost, invested].
//
// The encoder writes a canonical form, budget first then symbols in
// alphabetical order, so the document stays diff-friendly. The decoder
// accepts keys in any order.

// budgetKey is the reserved document key for the cash budget, trailing
// colon included, inherited from the original files.
const budgetKey = "MY_BUDGET:"

// EncodeBook writes the book to w as a single JSON document.
func EncodeBook(w io.Writer, b *Book) error {
	decimal.MarshalJSONWithoutQuotes = true

	var buf bytes.Buffer
	buf.WriteByte('{')
	if err := encodeEntry(&buf, budgetKey, []Money{b.Cash}); err != nil {
		return err
	}
	for _, sym := range slices.Sorted(maps.Keys(b.Positions)) {
		buf.WriteByte(',')
		pos := b.Positions[sym]
		tuple := []any{pos.Shares, pos.LastPrice, pos.AverageCost, pos.Invested}
		if err := encodeEntry(&buf, sym, tuple); err != nil {
			return err
		}
	}
	buf.WriteByte('}')
	buf.WriteByte('\n')

	_, err := w.Write(buf.Bytes())
	return err
}

func encodeEntry(buf *bytes.Buffer, key string, tuple any) error {
	k, err := json.Marshal(key)
	if err != nil {
		return fmt.Errorf("cannot encode key %q: %w", key, err)
	}
	v, err := json.Marshal(tuple)
	if err != nil {
		return fmt.Errorf("cannot encode entry %q: %w", key, err)
	}
	buf.Write(k)
	buf.WriteByte(':')
	buf.Write(v)
	return nil
}

// DecodeBook reads a book from a single JSON document.
//
// Each value is read as a tuple of decimals first, then narrowed to the
// budget or position record shape by its length, so a malformed entry is
// reported with its key rather than silently misread.
func DecodeBook(r io.Reader) (*Book, error) {
	content, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("cannot read book document: %w", err)
	}

	jobj := make(map[string]json.RawMessage)
	if err := json.Unmarshal(content, &jobj); err != nil {
		return nil, fmt.Errorf("book document is not a JSON object: %w", err)
	}

	b := &Book{Positions: make(map[string]Position, len(jobj))}
	hasBudget := false
	for key, raw := range jobj {
		var tuple []decimal.Decimal
		if err := json.Unmarshal(raw, &tuple); err != nil {
			return nil, fmt.Errorf("entry %q is not a tuple of numbers: %w", key, err)
		}

		if key == budgetKey {
			if len(tuple) != 1 {
				return nil, fmt.Errorf("budget entry wants a 1-tuple, got %d values", len(tuple))
			}
			b.Cash = M(tuple[0])
			hasBudget = true
			continue
		}

		if len(tuple) != 4 {
			return nil, fmt.Errorf("position entry %q wants a 4-tuple, got %d values", key, len(tuple))
		}
		if !tuple[0].IsInteger() {
			return nil, fmt.Errorf("position entry %q: share count %s is not a whole number", key, tuple[0])
		}
		b.Positions[key] = Position{
			Shares:      tuple[0].IntPart(),
			LastPrice:   M(tuple[1]),
			AverageCost: M(tuple[2]),
			Invested:    M(tuple[3]),
		}
	}

	if !hasBudget {
		return nil, fmt.Errorf("book document is missing the %q entry", budgetKey)
	}
	return b, nil
}
