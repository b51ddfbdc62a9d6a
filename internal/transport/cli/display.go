package cli

import (
	"context"
	"io"
	"sync"

	"deal_browser/internal/domain/entity"
	"deal_browser/internal/domain/service/browser"
)

// TableDisplay is a browser.Display that prints to a terminal. It keeps the
// shown deals so a row number can be turned back into a deal id.
type TableDisplay struct {
	out      io.Writer
	messages browser.Messages

	mu    sync.Mutex
	deals []entity.DealSummary
}

func NewTableDisplay(out io.Writer, messages browser.Messages) *TableDisplay {
	return &TableDisplay{
		out:      out,
		messages: messages,
	}
}

func (d *TableDisplay) Render(_ context.Context, deals []entity.DealSummary, reset bool) {
	d.mu.Lock()
	defer d.mu.Unlock()

	if reset {
		d.deals = nil
	}

	first := len(d.deals) + 1
	d.deals = append(d.deals, deals...)

	if len(deals) > 0 {
		RenderDeals(d.out, deals, first, d.messages)
	}
}

func (d *TableDisplay) Status(_ context.Context, state entity.GridState, text string) {
	switch {
	case text != "":
		renderLine(d.out, "» "+text)
	case state == entity.GridPopulated:
		d.mu.Lock()
		n := len(d.deals)
		d.mu.Unlock()

		if n > 0 {
			renderLine(d.out, "» "+d.messages.LoadMore+": more")
		}
	}
}

func (d *TableDisplay) Detail(_ context.Context, view entity.DetailView) {
	switch view.State {
	case entity.DetailLoading:
		renderLine(d.out, view.Message)
	case entity.DetailReady:
		RenderDetail(d.out, *view.Deal, d.messages)
	case entity.DetailFailed:
		renderLine(d.out, view.Message)
	case entity.DetailClosed:
		return
	}

	if view.Closable {
		renderLine(d.out, "["+d.messages.Close+": close]")
	}
}

// DealAt returns the deal id shown in row n, counting from 1.
func (d *TableDisplay) DealAt(n int) (string, bool) {
	d.mu.Lock()
	defer d.mu.Unlock()

	if n < 1 || n > len(d.deals) {
		return "", false
	}

	return d.deals[n-1].DealID, true
}
