package papertrade

import (
	"fmt"
	"strconv"
	"strings"
)

// This file holds the typed validation of user-supplied numbers. The CLI
// owns retry loops; these functions only turn raw input into values or a
// descriptive error, and a failure never mutates the book.

// ParseShares parses a signed whole share count, positive to buy and
// negative to sell.
func ParseShares(s string) (int64, error) {
	n, err := strconv.ParseInt(strings.TrimSpace(s), 10, 64)
	if err != nil {
		return 0, fmt.Errorf("invalid share count %q: want a signed integer: %w", s, err)
	}
	return n, nil
}

// ParseBudget parses the starting cash budget, a non-negative whole
// currency amount supplied once at book creation.
func ParseBudget(s string) (Money, error) {
	n, err := strconv.ParseInt(strings.TrimSpace(s), 10, 64)
	if err != nil {
		return Money{}, fmt.Errorf("invalid budget %q: want a whole number: %w", s, err)
	}
	if n < 0 {
		return Money{}, fmt.Errorf("invalid budget %q: must not be negative", s)
	}
	return M(n), nil
}
