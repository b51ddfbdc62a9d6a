package browser

import (
	"sort"

	"deal_browser/internal/domain/entity"
	"deal_browser/internal/domain/value"
)

// SortSummaries sorts list in place by the chosen price, ascending, and
// returns it. Entries whose price does not parse keep their relative order
// after every priced entry. SortNone leaves the list as is.
func SortSummaries(list []entity.DealSummary, criterion entity.SortCriterion) []entity.DealSummary {
	var price func(entity.DealSummary) value.Price

	switch criterion {
	case entity.SortPrice:
		price = func(d entity.DealSummary) value.Price { return d.SalePrice }
	case entity.SortNormalPrice:
		price = func(d entity.DealSummary) value.Price { return d.NormalPrice }
	default:
		return list
	}

	sort.SliceStable(list, func(i, j int) bool {
		a, okA := price(list[i]).Float()
		b, okB := price(list[j]).Float()

		switch {
		case okA && okB:
			return a < b
		case okA:
			return true
		default:
			return false
		}
	})

	return list
}
