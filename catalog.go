package papertrade

// Catalog is the instrument lookup service the book trades against. It
// supplies the tradable universe, a current reference price per symbol,
// and a short company description for reporting.
//
// Implementations are remote and may fail; the book itself never calls
// the catalog, callers resolve prices first and pass them into orders.
type Catalog interface {
	// Symbols returns the full set of tradable instrument symbols.
	Symbols() ([]string, error)
	// Price returns the current reference price of a symbol.
	Price(symbol string) (Money, error)
	// Summary returns a short business description of the company.
	Summary(symbol string) (string, error)
}
