package browser

import (
	"context"
	"slices"
	"sync"

	"deal_browser/internal/domain/entity"
	"deal_browser/pkg/contextx"
)

var logger = contextx.LoggerFromContextOrDefault //nolint:gochecknoglobals

const DefaultSearchLimit = 20

// DealSource is where the deals come from.
type DealSource interface {
	ListDeals(ctx context.Context, pageIndex int, storeID string) ([]entity.DealSummary, error)
	SearchGames(ctx context.Context, text string, limit int) ([]entity.DealSummary, error)
	GetDealDetail(ctx context.Context, dealID string) (entity.DealDetail, error)
}

// Display renders controller output. Its methods are called with the
// controller lock held and must not call back into the controller.
type Display interface {
	// Render replaces the grid when reset is set, appends otherwise.
	Render(ctx context.Context, deals []entity.DealSummary, reset bool)
	Status(ctx context.Context, state entity.GridState, text string)
	Detail(ctx context.Context, view entity.DetailView)
}

// snapshot tags a list fetch at dispatch time. epoch moves on every fetch
// that replaces the grid.
type snapshot struct {
	epoch uint64
	query entity.QueryState
}

// Controller owns the query state of one grid and turns UI events into
// fetches and renders.
type Controller struct {
	source      DealSource
	display     Display
	messages    Messages
	searchLimit int

	mu        sync.Mutex
	query     entity.QueryState
	epoch     uint64
	grid      entity.GridState
	loaded    []entity.DealSummary
	displayed []entity.DealSummary

	detail      entity.DetailView
	detailToken uint64
}

func NewController(source DealSource, display Display) *Controller {
	return &Controller{
		source:      source,
		display:     display,
		messages:    SpanishMessages,
		searchLimit: DefaultSearchLimit,
		grid:        entity.GridEmpty,
	}
}

func (c *Controller) WithMessages(messages Messages) *Controller {
	c.messages = messages
	return c
}

func (c *Controller) WithSearchLimit(limit int) *Controller {
	if limit > 0 {
		c.searchLimit = limit
	}
	return c
}

func (c *Controller) Messages() Messages {
	return c.messages
}

// State returns a copy of the current query state.
func (c *Controller) State() entity.QueryState {
	c.mu.Lock()
	defer c.mu.Unlock()

	return c.query
}

func (c *Controller) Grid() entity.GridState {
	c.mu.Lock()
	defer c.mu.Unlock()

	return c.grid
}

// Displayed returns a copy of the cards currently on the grid, in display order.
func (c *Controller) Displayed() []entity.DealSummary {
	c.mu.Lock()
	defer c.mu.Unlock()

	return slices.Clone(c.displayed)
}

func (c *Controller) Detail() entity.DetailView {
	c.mu.Lock()
	defer c.mu.Unlock()

	return c.detail
}

// Render puts deals on the grid, replacing it when reset is set.
func (c *Controller) Render(ctx context.Context, deals []entity.DealSummary, reset bool) {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.renderLocked(ctx, deals, reset)
}

func (c *Controller) renderLocked(ctx context.Context, deals []entity.DealSummary, reset bool) {
	if reset {
		c.displayed = slices.Clone(deals)
	} else {
		c.displayed = append(c.displayed, deals...)
	}

	c.display.Render(ctx, deals, reset)
}

func (c *Controller) setGridLocked(ctx context.Context, state entity.GridState, text string) {
	c.grid = state
	c.display.Status(ctx, state, text)
}

// dispatchLocked starts a fetch that will replace the grid.
func (c *Controller) dispatchLocked(ctx context.Context, text string) snapshot {
	c.epoch++
	c.setGridLocked(ctx, entity.GridLoading, text)

	return c.snapshotLocked()
}

func (c *Controller) snapshotLocked() snapshot {
	return snapshot{epoch: c.epoch, query: c.query}
}

// currentLocked reports whether a response tagged with s still belongs to
// the grid. Sort is applied client side, so it does not make a response stale.
func (c *Controller) currentLocked(s snapshot) bool {
	if s.epoch != c.epoch {
		return false
	}

	q := c.query
	return s.query.StoreID == q.StoreID &&
		s.query.SearchText == q.SearchText &&
		s.query.PageIndex == q.PageIndex
}

func (c *Controller) view(deals []entity.DealSummary) []entity.DealSummary {
	return SortSummaries(slices.Clone(deals), c.query.Sort)
}
