package eodhd

import (
	"fmt"

	"github.com/etnz/papertrade/date"
	"github.com/shopspring/decimal"
)

// Candle is one end-of-day closing price.
type Candle struct {
	Date  date.Date       `json:"date"`
	Close decimal.Decimal `json:"close"`
}

// History fetches the daily closing prices of a symbol over a date range,
// bounds included, in chronological order.
func (c *Client) History(symbol string, from, to date.Date) ([]Candle, error) {
	// https://eodhd.com/api/eod/AAPL.US?api_token=demo&fmt=json
	// [
	//	{
	//		"date": "2024-02-13",
	//		"open": 675.066,
	//		"high": 684.219,
	//		"low": 648.659,
	//		"close": 668.445,
	//		"adjusted_close": 67.705,
	//		"volume": 0
	//	  },
	//
	// the api also supports from and to in the ‘YYYY-MM-DD’ format,
	// bounds are included in the response.
	addr := fmt.Sprintf("https://eodhd.com/api/eod/%s?fmt=json&api_token=%s&from=%s&to=%s", usTicker(symbol), apiKey(), from, to)

	content := make([]Candle, 0)
	if err := jwget(newDailyCachingClient(), addr, &content); err != nil {
		return nil, fmt.Errorf("cannot fetch price history for %s: %w", symbol, err)
	}
	if len(content) == 0 {
		return nil, fmt.Errorf("no price history for %s between %s and %s", symbol, from, to)
	}
	return content, nil
}
