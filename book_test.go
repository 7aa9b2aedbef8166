package papertrade

import (
	"fmt"
	"reflect"
	"testing"
)

// newTestBook creates a book over a small universe, in the state the
// original scenario files start from.
func newTestBook(budget int64) *Book {
	return NewBook(M(budget), []string{"AAPL", "GOOG", "MSFT"})
}

func TestBook_Execute_Scenario(t *testing.T) {
	// The canonical session: buy, fail to short, liquidate.
	b := newTestBook(1000)

	if v := b.Execute(Order{Symbol: "AAPL", Shares: 5, Price: M(100)}); v != Accepted {
		t.Fatalf("buy 5 AAPL at $100: got %v, want accepted", v)
	}
	pos := b.Positions["AAPL"]
	if pos.Shares != 5 {
		t.Errorf("shares = %d, want 5", pos.Shares)
	}
	if !pos.Invested.Equal(M(500)) {
		t.Errorf("invested = %s, want $500.00", pos.Invested)
	}
	if !pos.AverageCost.Equal(M(100)) {
		t.Errorf("average cost = %s, want $100.00", pos.AverageCost)
	}
	if !b.Cash.Equal(M(500)) {
		t.Errorf("cash = %s, want $500.00", b.Cash)
	}

	// Selling 6 would short the position to -1: rejected, book unchanged.
	before := snapshot(b)
	if v := b.Execute(Order{Symbol: "AAPL", Shares: -6, Price: M(120)}); v != RejectedShort {
		t.Fatalf("sell 6 AAPL: got %v, want rejected short", v)
	}
	if !reflect.DeepEqual(before, snapshot(b)) {
		t.Errorf("rejected order mutated the book: before %+v, after %+v", before, snapshot(b))
	}

	// Full liquidation at a different price resets the position entirely.
	if v := b.Execute(Order{Symbol: "AAPL", Shares: -5, Price: M(120)}); v != Accepted {
		t.Fatalf("sell 5 AAPL at $120: got %v, want accepted", v)
	}
	if !b.Positions["AAPL"].IsZero() {
		t.Errorf("closed position not reset: %+v", b.Positions["AAPL"])
	}
	if !b.Cash.Equal(M(1100)) {
		t.Errorf("cash = %s, want $1,100.00", b.Cash)
	}
}

func TestBook_Execute_Verdicts(t *testing.T) {
	testCases := []struct {
		name   string
		budget int64
		order  Order
		want   Verdict
	}{
		{
			name:   "buy within budget",
			budget: 1000,
			order:  Order{Symbol: "AAPL", Shares: 5, Price: M(100)},
			want:   Accepted,
		},
		{
			name:   "buy the whole budget",
			budget: 1000,
			order:  Order{Symbol: "AAPL", Shares: 10, Price: M(100)},
			want:   Accepted,
		},
		{
			name:   "buy over budget",
			budget: 50,
			order:  Order{Symbol: "AAPL", Shares: 1, Price: M(100)},
			want:   RejectedOverdraft,
		},
		{
			name:   "sell with nothing held",
			budget: 1000,
			order:  Order{Symbol: "AAPL", Shares: -1, Price: M(100)},
			want:   RejectedShort,
		},
		{
			name:   "zero shares is a no-op",
			budget: 1000,
			order:  Order{Symbol: "AAPL", Shares: 0, Price: M(100)},
			want:   Accepted,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			b := newTestBook(tc.budget)
			before := snapshot(b)
			got := b.Execute(tc.order)
			if got != tc.want {
				t.Fatalf("Execute(%+v) = %v, want %v", tc.order, got, tc.want)
			}
			if tc.want != Accepted || tc.order.Shares == 0 {
				if !reflect.DeepEqual(before, snapshot(b)) {
					t.Errorf("order %+v mutated the book: before %+v, after %+v", tc.order, before, snapshot(b))
				}
			}
		})
	}
}

func TestBook_Execute_NoOpLeavesBookUntouched(t *testing.T) {
	b := newTestBook(1000)
	b.Execute(Order{Symbol: "AAPL", Shares: 5, Price: M(100)})

	before := snapshot(b)
	// Even with a wildly different price, zero shares changes nothing, not
	// even the recorded last trade price.
	if v := b.Execute(Order{Symbol: "AAPL", Shares: 0, Price: M(999)}); v != Accepted {
		t.Fatalf("no-op order: got %v, want accepted", v)
	}
	if !reflect.DeepEqual(before, snapshot(b)) {
		t.Errorf("no-op order mutated the book: before %+v, after %+v", before, snapshot(b))
	}
}

func TestBook_Execute_AveragesCostOverBuys(t *testing.T) {
	b := newTestBook(10000)
	b.Execute(Order{Symbol: "MSFT", Shares: 2, Price: M(100)})
	b.Execute(Order{Symbol: "MSFT", Shares: 2, Price: M(200)})

	pos := b.Positions["MSFT"]
	if pos.Shares != 4 {
		t.Fatalf("shares = %d, want 4", pos.Shares)
	}
	if !pos.Invested.Equal(M(600)) {
		t.Errorf("invested = %s, want $600.00", pos.Invested)
	}
	if !pos.AverageCost.Equal(M(150)) {
		t.Errorf("average cost = %s, want $150.00", pos.AverageCost)
	}
	if !pos.LastPrice.Equal(M(200)) {
		t.Errorf("last price = %s, want $200.00", pos.LastPrice)
	}
}

func TestBook_Execute_Rounding(t *testing.T) {
	// The historical format tracks invested capital in cents but the cash
	// budget in whole units.
	b := newTestBook(1000)
	if v := b.Execute(Order{Symbol: "AAPL", Shares: 3, Price: M(3.333)}); v != Accepted {
		t.Fatal("buy 3 at $3.333 should be accepted")
	}
	if !b.Positions["AAPL"].Invested.Equal(M(10.00)) {
		t.Errorf("invested = %s, want $10.00", b.Positions["AAPL"].Invested)
	}
	if !b.Cash.Equal(M(990)) {
		t.Errorf("cash = %s, want $990.00", b.Cash)
	}

	// In unified precision mode the budget keeps its cents.
	u := newTestBook(1000)
	u.UnifiedPrecision = true
	if v := u.Execute(Order{Symbol: "AAPL", Shares: 3, Price: M(3.332)}); v != Accepted {
		t.Fatal("buy 3 at $3.332 should be accepted")
	}
	// 1000 - 9.996 kept in cents.
	if !u.Cash.Equal(M(990.00)) {
		t.Errorf("unified cash = %s, want $990.00", u.Cash)
	}
	if !u.Positions["AAPL"].Invested.Equal(M(10.00)) {
		t.Errorf("unified invested = %s, want $10.00", u.Positions["AAPL"].Invested)
	}
}

func TestBook_MaxBuyable(t *testing.T) {
	testCases := []struct {
		name   string
		budget float64
		price  float64
		want   int64
	}{
		{"exact multiple", 1000, 100, 10},
		{"rounds down", 1000, 300, 3},
		{"cannot afford one", 50, 100, 0},
		{"zero price", 1000, 0, 0},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			b := newTestBook(0)
			b.Cash = M(tc.budget)
			if got := b.MaxBuyable(M(tc.price)); got != tc.want {
				t.Errorf("MaxBuyable(%v) = %d, want %d", tc.price, got, tc.want)
			}
		})
	}
}

func TestBook_Sellable(t *testing.T) {
	b := newTestBook(10000)
	b.Execute(Order{Symbol: "AAPL", Shares: 5, Price: M(100)})
	b.Execute(Order{Symbol: "GOOG", Shares: 2, Price: M(200)})
	b.Execute(Order{Symbol: "GOOG", Shares: -2, Price: M(250)})

	got := b.Sellable()
	want := map[string]int64{"AAPL": 5}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("Sellable() = %v, want %v", got, want)
	}
}

func TestNewBook(t *testing.T) {
	b := NewBook(M(500), []string{"AAPL", "GOOG"})
	if !b.Cash.Equal(M(500)) {
		t.Errorf("cash = %s, want $500.00", b.Cash)
	}
	if len(b.Positions) != 2 {
		t.Fatalf("got %d positions, want 2", len(b.Positions))
	}
	for sym, pos := range b.Positions {
		if !pos.IsZero() {
			t.Errorf("position %s not zeroed: %+v", sym, pos)
		}
	}
}

// snapshot captures a comparable copy of the book state.
func snapshot(b *Book) map[string]string {
	s := map[string]string{"cash": b.Cash.String()}
	for sym, pos := range b.Positions {
		s[sym] = fmt.Sprintf("%d/%s/%s/%s", pos.Shares, pos.LastPrice, pos.AverageCost, pos.Invested)
	}
	return s
}
