package cheapshark

import (
	"deal_browser/internal/domain/entity"
	"deal_browser/internal/domain/value"
)

// dealSchema is one element of GET /deals.
type dealSchema struct {
	DealID      string `json:"dealID" validate:"required"`
	Title       string `json:"title"`
	Thumb       string `json:"thumb"`
	SalePrice   string `json:"salePrice"`
	NormalPrice string `json:"normalPrice"`
	StoreID     string `json:"storeID"`
}

func (s dealSchema) toDomain() entity.DealSummary {
	return entity.DealSummary{
		Title:        s.Title,
		ThumbnailURL: s.Thumb,
		SalePrice:    value.Price(s.SalePrice),
		NormalPrice:  value.Price(s.NormalPrice),
		DealID:       s.DealID,
	}
}

// dealLookupSchema is the body of GET /deals?id=.
type dealLookupSchema struct {
	GameInfo *gameInfoSchema `json:"gameInfo" validate:"required"`
}

type gameInfoSchema struct {
	Name            string `json:"name" validate:"required"`
	Thumb           string `json:"thumb"`
	MetacriticScore string `json:"metacriticScore"`
	RetailPrice     string `json:"retailPrice"`
	SalePrice       string `json:"salePrice"`
	StoreLink       string `json:"storeLink"`
}

func (s gameInfoSchema) toDomain(dealID string) entity.DealDetail {
	storeLink := s.StoreLink
	if storeLink == "" {
		storeLink = RedirectURL(dealID)
	}

	return entity.DealDetail{
		DealID:          dealID,
		Name:            s.Name,
		ThumbnailURL:    s.Thumb,
		MetacriticScore: s.MetacriticScore,
		RetailPrice:     value.Price(s.RetailPrice),
		SalePrice:       value.Price(s.SalePrice),
		StoreLink:       storeLink,
	}
}

// gameSchema is one element of GET /games.
type gameSchema struct {
	External       string `json:"external"`
	Thumb          string `json:"thumb"`
	CheapestDealID string `json:"cheapestDealID"`
}

// toDomain fills both prices with the placeholder, the search endpoint has none.
func (s gameSchema) toDomain() entity.DealSummary {
	return entity.DealSummary{
		Title:        s.External,
		ThumbnailURL: s.Thumb,
		SalePrice:    value.PricePlaceholder,
		NormalPrice:  value.PricePlaceholder,
		DealID:       s.CheapestDealID,
	}
}

// storeSchema is one element of GET /stores. isActive is 0 or 1.
type storeSchema struct {
	StoreID   string `json:"storeID" validate:"required"`
	StoreName string `json:"storeName" validate:"required"`
	IsActive  int    `json:"isActive"`
}

func (s storeSchema) toDomain() entity.Store {
	return entity.Store{
		ID:     s.StoreID,
		Name:   s.StoreName,
		Active: s.IsActive == 1,
	}
}

// RedirectURL is the CheapShark link that forwards to the store page of a deal.
func RedirectURL(dealID string) string {
	return redirectURL + dealID
}
