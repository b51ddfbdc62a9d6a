package view

import (
	"fmt"
	"html"
	"strings"

	"deal_browser/internal/domain/entity"
	"deal_browser/internal/domain/service/browser"
)

const (
	dealTemplate   = "<b>%d. %s</b>\n%s <s>%s</s>   %s <b>%s</b>\n"
	detailTemplate = "<b>%s</b>\n\n" +
		"⭐ %s <b>%s</b>\n" +
		"%s <s>%s</s>\n" +
		"%s <b>%s</b>"
	storeTemplate = "<code>%s</code> %s\n"
)

// Deals renders one batch of cards, numbered from first.
func Deals(deals []entity.DealSummary, first int, m browser.Messages) string {
	var sb strings.Builder

	for i, d := range deals {
		if i > 0 {
			sb.WriteString("\n")
		}
		fmt.Fprintf(&sb, dealTemplate,
			first+i,
			html.EscapeString(d.Title),
			m.PriceLabel, html.EscapeString(d.NormalPrice.Display()),
			m.SaleLabel, html.EscapeString(d.SalePrice.Display()),
		)
	}

	return sb.String()
}

func Detail(d entity.DealDetail, m browser.Messages) string {
	score := d.MetacriticScore
	if score == "" || score == "0" {
		score = "—"
	}

	return fmt.Sprintf(detailTemplate,
		html.EscapeString(d.Name),
		m.MetacriticName, html.EscapeString(score),
		m.RetailLabel, html.EscapeString(d.RetailPrice.Display()),
		m.OfferLabel, html.EscapeString(d.SalePrice.Display()),
	)
}

func Stores(stores []entity.Store, m browser.Messages) string {
	var sb strings.Builder

	sb.WriteString(m.StoreFilter + "\n\n")
	for _, s := range stores {
		fmt.Fprintf(&sb, storeTemplate, html.EscapeString(s.ID), html.EscapeString(s.Name))
	}

	return sb.String()
}

func Help(m browser.Messages) string {
	return "🎮 <b>Deal Browser</b>\n\n" + html.EscapeString(m.Help)
}

func Text(s string) string {
	return html.EscapeString(s)
}
