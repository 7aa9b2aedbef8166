package renderer

import (
	"strings"
	"testing"

	"github.com/etnz/papertrade"
)

func TestSummaryMarkdown(t *testing.T) {
	b := papertrade.NewBook(papertrade.M(1000), []string{"AAPL", "GOOG", "MSFT"})
	b.Execute(papertrade.Order{Symbol: "GOOG", Shares: 2, Price: papertrade.M(150)})
	b.Execute(papertrade.Order{Symbol: "AAPL", Shares: 5, Price: papertrade.M(100)})

	md := SummaryMarkdown(NewSummary(b))

	for _, want := range []string{
		"# Portfolio Summary",
		"Cash budget: **$200.00**",
		"Invested capital: **$800.00**",
		"| AAPL | 5 | $100.00 | $100.00 | $500.00 |",
		"| GOOG | 2 | $150.00 | $150.00 | $300.00 |",
	} {
		if !strings.Contains(md, want) {
			t.Errorf("summary is missing %q:\n%s", want, md)
		}
	}
	if strings.Contains(md, "MSFT") {
		t.Errorf("summary lists the untraded MSFT position:\n%s", md)
	}
	// AAPL sorts before GOOG in the table.
	if strings.Index(md, "AAPL") > strings.Index(md, "GOOG") {
		t.Errorf("positions are not in alphabetical order:\n%s", md)
	}
}

func TestSummaryMarkdown_EmptyBook(t *testing.T) {
	b := papertrade.NewBook(papertrade.M(500), []string{"AAPL"})
	md := SummaryMarkdown(NewSummary(b))
	if !strings.Contains(md, "No open positions.") {
		t.Errorf("empty summary should state there are no open positions:\n%s", md)
	}
}
