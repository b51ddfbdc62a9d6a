package view_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"deal_browser/internal/domain/entity"
	"deal_browser/internal/domain/service/browser"
	"deal_browser/internal/domain/value"
	"deal_browser/internal/transport/bot/view"
)

func TestDeals(t *testing.T) {
	rq := require.New(t)

	text := view.Deals([]entity.DealSummary{
		{Title: "Game A", SalePrice: "9.99", NormalPrice: "19.99", DealID: "abc"},
		{Title: "Tom & Jerry <Deluxe>", SalePrice: value.PricePlaceholder, NormalPrice: value.PricePlaceholder, DealID: "def"},
	}, 21, browser.SpanishMessages)

	rq.Contains(text, "<b>21. Game A</b>")
	rq.Contains(text, "Precio: <s>$19.99</s>")
	rq.Contains(text, "Oferta: <b>$9.99</b>")
	rq.Contains(text, "<b>22. Tom &amp; Jerry &lt;Deluxe&gt;</b>")
	rq.Contains(text, "<s>—</s>")
}

func TestDetail(t *testing.T) {
	rq := require.New(t)

	text := view.Detail(entity.DealDetail{
		Name:            "BioShock",
		MetacriticScore: "0",
		RetailPrice:     "29.99",
		SalePrice:       "7.49",
	}, browser.EnglishMessages)

	rq.Contains(text, "<b>BioShock</b>")
	rq.Contains(text, "Metacritic: <b>—</b>")
	rq.Contains(text, "Normal price: <s>$29.99</s>")
	rq.Contains(text, "Sale price: <b>$7.49</b>")
}

func TestHelpEscapes(t *testing.T) {
	rq := require.New(t)

	rq.Contains(view.Help(browser.SpanishMessages), "/search &lt;título&gt;")
}
