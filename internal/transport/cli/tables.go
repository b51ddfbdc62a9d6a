package cli

import (
	"fmt"
	"io"
	"strconv"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/jedib0t/go-pretty/v6/text"

	"deal_browser/internal/domain/entity"
	"deal_browser/internal/domain/service/browser"
)

const titleWidthMax = 48

// RenderDeals writes deals as a table. Rows are numbered from first.
func RenderDeals(w io.Writer, deals []entity.DealSummary, first int, messages browser.Messages) {
	t := table.NewWriter()
	t.SetOutputMirror(w)
	t.AppendHeader(table.Row{"#", "Title", messages.PriceLabel, messages.SaleLabel, "Deal"})

	for i, d := range deals {
		t.AppendRow(table.Row{
			strconv.Itoa(first + i),
			d.Title,
			d.NormalPrice.Display(),
			d.SalePrice.Display(),
			d.DealID,
		})
	}

	t.SetColumnConfigs([]table.ColumnConfig{
		{Number: 2, WidthMax: titleWidthMax},
		{Number: 3, Align: text.AlignRight},
		{Number: 4, Align: text.AlignRight},
	})
	t.SetStyle(table.StyleRounded)
	t.Render()
}

// RenderDetail writes one deal in a two-column table.
func RenderDetail(w io.Writer, d entity.DealDetail, messages browser.Messages) {
	t := table.NewWriter()
	t.SetOutputMirror(w)
	t.SetTitle(d.Name)

	t.AppendRow(table.Row{messages.MetacriticName, d.MetacriticScore})
	t.AppendRow(table.Row{messages.RetailLabel, d.RetailPrice.Display()})
	t.AppendRow(table.Row{messages.OfferLabel, d.SalePrice.Display()})
	t.AppendRow(table.Row{messages.OpenStore, d.StoreLink})
	if d.ThumbnailURL != "" {
		t.AppendRow(table.Row{"Thumb", d.ThumbnailURL})
	}

	t.SetStyle(table.StyleRounded)
	t.Render()
}

func RenderStores(w io.Writer, stores []entity.Store) {
	t := table.NewWriter()
	t.SetOutputMirror(w)
	t.AppendHeader(table.Row{"ID", "Store", "Active"})

	for _, s := range stores {
		t.AppendRow(table.Row{s.ID, s.Name, s.Active})
	}

	t.SetStyle(table.StyleRounded)
	t.Render()
}

func renderLine(w io.Writer, line string) {
	_, _ = fmt.Fprintln(w, line)
}
