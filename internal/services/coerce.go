package services

import (
	"math"
	"strings"

	"github.com/shopspring/decimal"
)

var (
	quantityCleaner = strings.NewReplacer(",", "", " ", "", "\t", "", "\u00a0", "")
	costCleaner     = strings.NewReplacer("$", "", "€", "", "£", "", ",", "", " ", "", "\t", "", "\u00a0", "")

	maxQuantity = decimal.NewFromInt(math.MaxInt64)
)

// ParseQuantity coerces an export quantity cell. Thousands separators and
// whitespace are stripped and fractions truncated. Anything unparsable, empty,
// negative or beyond int64 yields 0.
func ParseQuantity(raw string) int64 {
	s := quantityCleaner.Replace(strings.TrimSpace(raw))
	if s == "" {
		return 0
	}
	d, err := decimal.NewFromString(s)
	if err != nil || d.IsNegative() {
		return 0
	}
	d = d.Truncate(0)
	if d.GreaterThan(maxQuantity) {
		return 0
	}
	return d.IntPart()
}

// ParseCost coerces an export cost cell. Currency symbols, thousands
// separators and whitespace are stripped. Anything unparsable, empty,
// negative or too large for a float64 yields 0.
func ParseCost(raw string) float64 {
	s := costCleaner.Replace(strings.TrimSpace(raw))
	if s == "" {
		return 0
	}
	d, err := decimal.NewFromString(s)
	if err != nil || d.IsNegative() {
		return 0
	}
	f := d.InexactFloat64()
	if math.IsInf(f, 0) {
		return 0
	}
	return f
}

// PercentChange formats change relative to previous with two decimals and a
// percent sign. A previous quantity of 0 yields "N/A".
func PercentChange(change, previous int64) string {
	if previous == 0 {
		return "N/A"
	}
	pct := decimal.NewFromInt(change).
		Mul(decimal.NewFromInt(100)).
		Div(decimal.NewFromInt(previous))
	return pct.StringFixed(2) + "%"
}
