package entity

import (
	"strings"

	"deal_browser/internal/domain"
	"deal_browser/pkg/errcodes"
)

type SortCriterion string

const (
	SortNone        SortCriterion = ""
	SortPrice       SortCriterion = "price"
	SortNormalPrice SortCriterion = "normalPrice"
)

// ParseSortCriterion accepts the selector values plus "none".
func ParseSortCriterion(s string) (SortCriterion, error) {
	switch strings.TrimSpace(s) {
	case "", "none":
		return SortNone, nil
	case string(SortPrice):
		return SortPrice, nil
	case string(SortNormalPrice):
		return SortNormalPrice, nil
	default:
		return SortNone, domain.NewError(errcodes.InvalidSortCriterion, "unknown sort criterion "+s)
	}
}

func (c SortCriterion) Valid() bool {
	return c == SortNone || c == SortPrice || c == SortNormalPrice
}

func (c SortCriterion) String() string {
	if c == SortNone {
		return "none"
	}

	return string(c)
}

// QueryState drives the parameters of the next fetch. It is a comparable
// value so a snapshot taken at dispatch time can be checked on arrival.
type QueryState struct {
	PageIndex  int
	StoreID    string
	Sort       SortCriterion
	SearchText string
}

func (q QueryState) Searching() bool {
	return q.SearchText != ""
}
