package value

import (
	"math"
	"strconv"
	"strings"
)

// Price is a price as the upstream API formats it ("9.99"). It stays a string
// so the display shows exactly what the store published.
type Price string

// PricePlaceholder marks a price the source did not provide.
const PricePlaceholder Price = "—"

func (p Price) String() string {
	return string(p)
}

func (p Price) IsPlaceholder() bool {
	return p == PricePlaceholder || strings.TrimSpace(string(p)) == ""
}

// Float parses the price. ok is false for placeholders and anything that
// does not parse to a finite number.
func (p Price) Float() (float64, bool) {
	if p.IsPlaceholder() {
		return 0, false
	}

	f, err := strconv.ParseFloat(strings.TrimSpace(string(p)), 64)
	if err != nil || math.IsNaN(f) || math.IsInf(f, 0) {
		return 0, false
	}

	return f, true
}

// Display renders the price for a card: "$9.99", or the bare placeholder.
func (p Price) Display() string {
	if p.IsPlaceholder() {
		return string(PricePlaceholder)
	}

	return "$" + strings.TrimSpace(string(p))
}
