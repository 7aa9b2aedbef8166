package renderer

import (
	"maps"
	"slices"

	"github.com/etnz/papertrade"
)

// Summary is the render model for the portfolio summary report.
type Summary struct {
	Cash     string
	Invested string
	Rows     []SummaryRow
}

// SummaryRow is one open position of the summary table.
type SummaryRow struct {
	Symbol      string
	Shares      int64
	LastPrice   string
	AverageCost string
	Invested    string
}

// NewSummary builds the summary of a book: the cash budget, the total
// invested capital, and every open position in alphabetical order.
func NewSummary(b *papertrade.Book) *Summary {
	s := &Summary{
		Cash:     b.Cash.String(),
		Invested: b.Invested().String(),
	}
	for _, sym := range slices.Sorted(maps.Keys(b.Positions)) {
		pos := b.Positions[sym]
		if pos.Shares == 0 {
			continue
		}
		s.Rows = append(s.Rows, SummaryRow{
			Symbol:      sym,
			Shares:      pos.Shares,
			LastPrice:   pos.LastPrice.String(),
			AverageCost: pos.AverageCost.String(),
			Invested:    pos.Invested.String(),
		})
	}
	return s
}

// SummaryMarkdown renders the Summary struct to a markdown string.
func SummaryMarkdown(s *Summary) string {
	partials := map[string]string{
		"summary_positions": "summary_positions.md",
	}
	return renderTemplate("summary", "summary.md", partials, s)
}
