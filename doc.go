// Package papertrade provides the core types and rules for a simulated
// equity portfolio played against a fixed cash budget.
//
// The central piece is the [Book]: the cash budget plus one position per
// tradable symbol. A single operation, [Book.Execute], applies a buy or
// sell order to the book while enforcing the two house rules: a position
// can never go short and the budget can never be overdrawn. Rejections
// are ordinary values, not errors, so callers always check the verdict
// before treating a trade as applied.
//
// Around the core the package offers:
//   - Data Persistence: the whole book round-trips through a single JSON
//     document in the historical tuple format, saved all-or-nothing.
//   - Instrument Catalog: the [Catalog] interface abstracts the symbol
//     universe, reference prices, and company summaries; the eodhd
//     subpackage implements it against EODHD.com.
//
// This package serves as the foundational logic for the `ppt` command-line
// tool; it performs no I/O of its own so that every rule is testable in
// memory.
package papertrade
