package browser_test

import (
	"context"
	"fmt"
	"sync"

	"deal_browser/internal/domain/entity"
	"deal_browser/internal/domain/value"
)

type fakeSource struct {
	mu    sync.Mutex
	calls []string

	listDeals     func(ctx context.Context, page int, storeID string) ([]entity.DealSummary, error)
	searchGames   func(ctx context.Context, text string, limit int) ([]entity.DealSummary, error)
	getDealDetail func(ctx context.Context, dealID string) (entity.DealDetail, error)
}

func (s *fakeSource) record(call string) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.calls = append(s.calls, call)
}

func (s *fakeSource) Calls() []string {
	s.mu.Lock()
	defer s.mu.Unlock()

	return append([]string(nil), s.calls...)
}

func (s *fakeSource) ListDeals(ctx context.Context, page int, storeID string) ([]entity.DealSummary, error) {
	s.record(fmt.Sprintf("list page=%d store=%q", page, storeID))
	if s.listDeals == nil {
		return nil, nil
	}

	return s.listDeals(ctx, page, storeID)
}

func (s *fakeSource) SearchGames(ctx context.Context, text string, limit int) ([]entity.DealSummary, error) {
	s.record(fmt.Sprintf("search text=%q limit=%d", text, limit))
	if s.searchGames == nil {
		return nil, nil
	}

	return s.searchGames(ctx, text, limit)
}

func (s *fakeSource) GetDealDetail(ctx context.Context, dealID string) (entity.DealDetail, error) {
	s.record(fmt.Sprintf("detail id=%q", dealID))
	if s.getDealDetail == nil {
		return entity.DealDetail{}, nil
	}

	return s.getDealDetail(ctx, dealID)
}

type renderCall struct {
	deals []entity.DealSummary
	reset bool
}

type statusCall struct {
	state entity.GridState
	text  string
}

// recordingDisplay keeps its own copy of the grid the way a real binding would.
type recordingDisplay struct {
	mu       sync.Mutex
	grid     []entity.DealSummary
	renders  []renderCall
	statuses []statusCall
	details  []entity.DetailView
}

func (d *recordingDisplay) Render(_ context.Context, deals []entity.DealSummary, reset bool) {
	d.mu.Lock()
	defer d.mu.Unlock()

	if reset {
		d.grid = nil
	}
	d.grid = append(d.grid, deals...)
	d.renders = append(d.renders, renderCall{deals: append([]entity.DealSummary(nil), deals...), reset: reset})
}

func (d *recordingDisplay) Status(_ context.Context, state entity.GridState, text string) {
	d.mu.Lock()
	defer d.mu.Unlock()

	d.statuses = append(d.statuses, statusCall{state: state, text: text})
}

func (d *recordingDisplay) Detail(_ context.Context, view entity.DetailView) {
	d.mu.Lock()
	defer d.mu.Unlock()

	d.details = append(d.details, view)
}

func (d *recordingDisplay) Grid() []entity.DealSummary {
	d.mu.Lock()
	defer d.mu.Unlock()

	return append([]entity.DealSummary(nil), d.grid...)
}

func (d *recordingDisplay) RenderCount() int {
	d.mu.Lock()
	defer d.mu.Unlock()

	return len(d.renders)
}

func (d *recordingDisplay) LastStatus() statusCall {
	d.mu.Lock()
	defer d.mu.Unlock()

	if len(d.statuses) == 0 {
		return statusCall{}
	}
	return d.statuses[len(d.statuses)-1]
}

func (d *recordingDisplay) StatusCount() int {
	d.mu.Lock()
	defer d.mu.Unlock()

	return len(d.statuses)
}

func (d *recordingDisplay) LastDetail() entity.DetailView {
	d.mu.Lock()
	defer d.mu.Unlock()

	if len(d.details) == 0 {
		return entity.DetailView{}
	}
	return d.details[len(d.details)-1]
}

func deal(id, sale, normal string) entity.DealSummary {
	return entity.DealSummary{
		Title:        "Game " + id,
		ThumbnailURL: "https://img.example/" + id + ".jpg",
		SalePrice:    value.Price(sale),
		NormalPrice:  value.Price(normal),
		DealID:       id,
	}
}
