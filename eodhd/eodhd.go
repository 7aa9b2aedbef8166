// Package eodhd implements the instrument catalog against the EODHD.com
// API: the NASDAQ-100 tradable universe, current reference prices,
// company descriptions, and the end-of-day price history used by the
// analysis charts.
package eodhd

import (
	"flag"
	"fmt"
	"net/http"
	"os"
	"sort"
	"strconv"
	"strings"

	"github.com/PaesslerAG/jsonpath"
	"github.com/etnz/papertrade"
)

const eodhd_api_key = "EODHD_API_KEY"

var eodhdApiFlag = flag.String("eodhd-api-key", "", "EODHD API key to use for fetching prices from EODHD.com.\n If missing it will read for the environment variable \""+eodhd_api_key+"\". You can get one at https://eodhd.com/")

func apiKey() string {
	// If the flag is not set, we try to read it from the environment variable.
	if *eodhdApiFlag == "" {
		*eodhdApiFlag = os.Getenv(eodhd_api_key)
	}
	return *eodhdApiFlag
}

// defaultUniverse is the index whose constituents form the tradable universe.
const defaultUniverse = "NDX.INDX"

// Client queries EODHD.com. It implements papertrade.Catalog.
type Client struct {
	universe string
}

// NewClient returns a catalog over the NASDAQ-100 universe.
func NewClient() *Client {
	return &Client{universe: defaultUniverse}
}

// Symbols returns the tradable universe: the constituents of the index,
// filtered of the multi-class oddities whose codes run long.
func (c *Client) Symbols() ([]string, error) {
	// https://eodhd.com/api/fundamentals/NDX.INDX?api_token=demo&fmt=json
	// {
	//   "General": { "Code": "NDX", ... },
	//   "Components": {
	//     "0": { "Code": "AAPL", "Exchange": "NASDAQ", "Name": "Apple Inc", ... },
	//     ...
	addr := fmt.Sprintf("https://eodhd.com/api/fundamentals/%s?fmt=json&api_token=%s", c.universe, apiKey())

	var jobj any
	// constituents move rarely, a daily cache is plenty
	if err := jwget(newDailyCachingClient(), addr, &jobj); err != nil {
		return nil, fmt.Errorf("cannot fetch %s constituents: %w", c.universe, err)
	}

	jval, err := jsonpath.Get("$.Components.*.Code", jobj)
	if err != nil {
		return nil, fmt.Errorf("cannot read %s constituents: %w", c.universe, err)
	}
	jlist, ok := jval.([]any)
	if !ok {
		return nil, fmt.Errorf("cannot read %s constituents: unexpected shape %T", c.universe, jval)
	}

	codes := make([]string, 0, len(jlist))
	for _, v := range jlist {
		if code, ok := v.(string); ok {
			codes = append(codes, code)
		}
	}
	symbols := filterSymbols(codes)
	sort.Strings(symbols)
	return symbols, nil
}

// filterSymbols drops the invalid long-form ticker variants from an
// index constituent list.
func filterSymbols(codes []string) []string {
	valid := make([]string, 0, len(codes))
	for _, code := range codes {
		if len(code) < 6 {
			valid = append(valid, code)
		}
	}
	return valid
}

// Price returns the current reference price of a symbol from the
// real-time endpoint. Live quotes are never cached.
func (c *Client) Price(symbol string) (papertrade.Money, error) {
	// https://eodhd.com/api/real-time/AAPL.US?api_token=demo&fmt=json
	// { "code": "AAPL.US", "timestamp": ..., "close": 227.52, ... }
	addr := fmt.Sprintf("https://eodhd.com/api/real-time/%s?fmt=json&api_token=%s", usTicker(symbol), apiKey())

	var jobj map[string]any
	if err := jwget(new(http.Client), addr, &jobj); err != nil {
		return papertrade.Money{}, fmt.Errorf("cannot fetch quote for %s: %w", symbol, err)
	}

	val, err := quoteValue(jobj["close"])
	if err != nil {
		return papertrade.Money{}, fmt.Errorf("cannot read quote for %s: %w", symbol, err)
	}
	return papertrade.M(val), nil
}

// quoteValue reads a price from the quote payload. The API usually
// returns a number, but off-hours it can hand back a string, or "NA".
func quoteValue(jval any) (float64, error) {
	switch v := jval.(type) {
	case float64:
		if v == 0 {
			return 0, fmt.Errorf("empty quote")
		}
		return v, nil
	case string:
		if v == "NA" {
			return 0, fmt.Errorf("no quote available")
		}
		val, err := strconv.ParseFloat(strings.TrimSpace(v), 64)
		if err != nil {
			return 0, fmt.Errorf("quote is an invalid string %q: %w", v, err)
		}
		return val, nil
	default:
		return 0, fmt.Errorf("quote is neither a number nor a string: %v", jval)
	}
}

// Summary returns the company's business description from the
// fundamentals endpoint.
func (c *Client) Summary(symbol string) (string, error) {
	addr := fmt.Sprintf("https://eodhd.com/api/fundamentals/%s?fmt=json&api_token=%s", usTicker(symbol), apiKey())

	var jobj any
	if err := jwget(newDailyCachingClient(), addr, &jobj); err != nil {
		return "", fmt.Errorf("cannot fetch fundamentals for %s: %w", symbol, err)
	}

	jval, err := jsonpath.Get("$.General.Description", jobj)
	if err != nil {
		return "", fmt.Errorf("no description for %s: %w", symbol, err)
	}
	desc, ok := jval.(string)
	if !ok {
		return "", fmt.Errorf("description for %s is not a string: %T", symbol, jval)
	}
	return desc, nil
}

// usTicker maps a plain symbol to EODHD's virtual US exchange ticker.
func usTicker(symbol string) string { return symbol + ".US" }
