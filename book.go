package papertrade

// Position is the holding record for a single instrument symbol.
type Position struct {
	Shares      int64 // shares currently held, never negative
	LastPrice   Money // price used in the most recent trade on this symbol
	AverageCost Money // Invested divided by Shares while the position is open
	Invested    Money // cumulative cost basis, zero when the position is closed
}

// IsZero reports whether the position is fully closed.
func (p Position) IsZero() bool {
	return p.Shares == 0 && p.LastPrice.IsZero() && p.AverageCost.IsZero() && p.Invested.IsZero()
}

// Equal reports whether two positions hold exactly the same values.
func (p Position) Equal(o Position) bool {
	return p.Shares == o.Shares &&
		p.LastPrice.Equal(o.LastPrice) &&
		p.AverageCost.Equal(o.AverageCost) &&
		p.Invested.Equal(o.Invested)
}

// Book is the portfolio document: a cash budget plus one position per
// tradable symbol. The position map is keyed by the full instrument
// universe known at creation, untraded symbols included.
//
// The book is a plain in-memory value with a single-user, single-session
// lifecycle: loaded whole, mutated by at most one order, saved whole.
type Book struct {
	Cash      Money
	Positions map[string]Position

	// UnifiedPrecision tracks the cash budget in cents like the invested
	// capital. The historical format keeps the budget in whole currency
	// units instead, so this is off unless explicitly requested.
	UnifiedPrecision bool
}

// NewBook creates a book with the given starting budget and a zeroed
// position for every symbol of the universe.
func NewBook(budget Money, symbols []string) *Book {
	b := &Book{
		Cash:      budget,
		Positions: make(map[string]Position, len(symbols)),
	}
	for _, s := range symbols {
		b.Positions[s] = Position{}
	}
	return b
}

// Equal reports whether two books hold exactly the same values.
func (b *Book) Equal(o *Book) bool {
	if !b.Cash.Equal(o.Cash) || len(b.Positions) != len(o.Positions) {
		return false
	}
	for sym, pos := range b.Positions {
		opos, ok := o.Positions[sym]
		if !ok || !pos.Equal(opos) {
			return false
		}
	}
	return true
}

// Order is a requested change in the share count of one symbol at one
// uniform fill price. Positive Shares buys, negative sells.
type Order struct {
	Symbol string
	Shares int64
	Price  Money
}

// Verdict is the outcome of executing an order. A rejection is a normal
// result, not an error: business rules never raise.
type Verdict int

const (
	// Accepted means the order was applied to the book.
	Accepted Verdict = iota
	// RejectedShort means the order would have left a negative share count.
	RejectedShort
	// RejectedOverdraft means the order would have left a negative cash budget.
	RejectedOverdraft
)

func (v Verdict) String() string {
	switch v {
	case Accepted:
		return "accepted"
	case RejectedShort:
		return "rejected: no short selling"
	case RejectedOverdraft:
		return "rejected: insufficient budget"
	default:
		return "unknown"
	}
}

// Execute applies a single order to the book, or rejects it leaving the
// book completely untouched.
//
// The symbol is trusted to be a key of the position map; the caller
// validates it against the instrument catalog first. A zero-share order
// is an accepted no-op.
//
// Closing a position (any trade that brings the share count back to
// zero) resets all of its fields, the fill price included: the book
// keeps no cost history for closed positions.
func (b *Book) Execute(o Order) Verdict {
	if o.Shares == 0 {
		return Accepted
	}

	pos := b.Positions[o.Symbol]
	gross := o.Price.MulShares(o.Shares)
	newShares := pos.Shares + o.Shares
	newInvested := pos.Invested.Add(gross).RoundCents()
	newCash := b.Cash.Sub(gross)
	if b.UnifiedPrecision {
		newCash = newCash.RoundCents()
	} else {
		newCash = newCash.RoundUnits()
	}

	if newShares < 0 {
		return RejectedShort
	}
	if newCash.IsNegative() {
		return RejectedOverdraft
	}

	if newShares == 0 {
		pos = Position{}
	} else {
		pos = Position{
			Shares:      newShares,
			LastPrice:   o.Price,
			AverageCost: newInvested.DivShares(newShares),
			Invested:    newInvested,
		}
	}
	b.Positions[o.Symbol] = pos
	b.Cash = newCash
	return Accepted
}

// MaxBuyable returns how many whole shares the current budget affords at
// the given price, or 0 for a non-positive price.
func (b *Book) MaxBuyable(price Money) int64 {
	if !price.IsPositive() {
		return 0
	}
	return b.Cash.Shares(price)
}

// Sellable returns the share count of every symbol currently held.
func (b *Book) Sellable() map[string]int64 {
	held := make(map[string]int64)
	for sym, pos := range b.Positions {
		if pos.Shares > 0 {
			held[sym] = pos.Shares
		}
	}
	return held
}

// Invested returns the total invested capital over all open positions.
func (b *Book) Invested() Money {
	var total Money
	for _, pos := range b.Positions {
		total = total.Add(pos.Invested)
	}
	return total
}
