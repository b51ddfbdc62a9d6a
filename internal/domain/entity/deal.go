package entity

import "deal_browser/internal/domain/value"

// DealSummary is the card model the grid renders, whichever endpoint the data
// came from. Search results carry placeholder prices.
type DealSummary struct {
	Title        string      `json:"title"`
	ThumbnailURL string      `json:"thumb"`
	SalePrice    value.Price `json:"salePrice"`
	NormalPrice  value.Price `json:"normalPrice"`
	DealID       string      `json:"dealID"`
}

// DealDetail is fetched per deal when the detail view opens.
type DealDetail struct {
	DealID          string      `json:"dealID"`
	Name            string      `json:"name"`
	ThumbnailURL    string      `json:"thumb"`
	MetacriticScore string      `json:"metacriticScore"`
	RetailPrice     value.Price `json:"retailPrice"`
	SalePrice       value.Price `json:"salePrice"`
	StoreLink       string      `json:"storeLink"`
}

type Store struct {
	ID     string `json:"storeID"`
	Name   string `json:"storeName"`
	Active bool   `json:"isActive"`
}
