package browser

import (
	"context"
	"strings"

	"deal_browser/internal/domain"
	"deal_browser/internal/domain/entity"
	"deal_browser/pkg/logx"
)

// Start loads the first page for the current store filter.
func (c *Controller) Start(ctx context.Context) {
	c.mu.Lock()
	c.query.PageIndex = 0
	c.query.SearchText = ""
	storeID := c.query.StoreID
	snap := c.dispatchLocked(ctx, c.messages.Loading)
	c.mu.Unlock()

	deals, err := c.source.ListDeals(ctx, 0, storeID)
	c.complete(ctx, kindListing, snap, deals, err)
}

// OnStoreChange switches the store filter and reloads from page 0.
// An active search is dropped.
func (c *Controller) OnStoreChange(ctx context.Context, storeID string) {
	storeID = strings.TrimSpace(storeID)

	c.mu.Lock()
	c.query.StoreID = storeID
	c.query.PageIndex = 0
	c.query.SearchText = ""
	snap := c.dispatchLocked(ctx, c.messages.Loading)
	c.mu.Unlock()

	deals, err := c.source.ListDeals(ctx, 0, storeID)
	c.complete(ctx, kindListing, snap, deals, err)
}

// OnSearch replaces the grid with the games matching text. Blank text is ignored.
func (c *Controller) OnSearch(ctx context.Context, text string) {
	text = strings.TrimSpace(text)
	if text == "" {
		return
	}

	c.mu.Lock()
	c.query.SearchText = text
	c.query.PageIndex = 0
	limit := c.searchLimit
	snap := c.dispatchLocked(ctx, c.messages.Searching)
	c.mu.Unlock()

	deals, err := c.source.SearchGames(ctx, text, limit)
	c.complete(ctx, kindSearch, snap, deals, err)
}

// OnLoadMore appends the next page of the listing. It does nothing while a
// search is shown or while another fetch for the grid is in flight.
func (c *Controller) OnLoadMore(ctx context.Context) {
	c.mu.Lock()
	if c.query.Searching() || c.grid == entity.GridLoading {
		logger(ctx).Debug("load more ignored",
			"searching", c.query.Searching(),
			"grid", c.grid.String(),
		)
		c.mu.Unlock()
		return
	}

	c.query.PageIndex++
	page, storeID := c.query.PageIndex, c.query.StoreID
	c.setGridLocked(ctx, entity.GridLoading, c.messages.Loading)
	snap := c.snapshotLocked()
	c.mu.Unlock()

	deals, err := c.source.ListDeals(ctx, page, storeID)
	c.complete(ctx, kindMore, snap, deals, err)
}

// OnSortChange re-orders the cards already on the grid. No request is made.
// SortNone brings back arrival order.
func (c *Controller) OnSortChange(ctx context.Context, criterion entity.SortCriterion) {
	if !criterion.Valid() {
		logger(ctx).Warn("unknown sort criterion ignored", "criterion", string(criterion))
		return
	}

	c.mu.Lock()
	defer c.mu.Unlock()

	c.query.Sort = criterion
	if len(c.loaded) == 0 {
		return
	}

	c.renderLocked(ctx, c.view(c.loaded), true)
}

func (c *Controller) complete(
	ctx context.Context,
	kind string,
	snap snapshot,
	deals []entity.DealSummary,
	err error,
) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if !c.currentLocked(snap) {
		staleResponses.WithLabelValues(kind).Inc()
		logger(ctx).Info("stale response discarded",
			"kind", kind,
			logx.FieldEpoch, snap.epoch,
			logx.FieldPage, snap.query.PageIndex,
			logx.FieldStoreID, snap.query.StoreID,
			logx.FieldQuery, snap.query.SearchText,
		)
		return
	}

	if err != nil {
		c.failLocked(ctx, kind, err)
		return
	}

	switch {
	case kind == kindMore && len(deals) == 0:
		c.setGridLocked(ctx, c.filledState(), "")

	case kind == kindMore:
		c.loaded = append(c.loaded, deals...)
		if c.query.Sort != entity.SortNone {
			c.renderLocked(ctx, c.view(c.loaded), true)
		} else {
			c.renderLocked(ctx, deals, false)
		}
		c.setGridLocked(ctx, entity.GridPopulated, "")

	case len(deals) == 0:
		c.loaded = nil
		c.renderLocked(ctx, nil, true)
		if kind == kindSearch {
			c.setGridLocked(ctx, entity.GridNoResults, c.messages.NoResults)
		} else {
			c.setGridLocked(ctx, entity.GridEmpty, c.messages.Empty)
		}

	default:
		c.loaded = deals
		c.renderLocked(ctx, c.view(deals), true)
		c.setGridLocked(ctx, entity.GridPopulated, "")
	}
}

func (c *Controller) failLocked(ctx context.Context, kind string, err error) {
	attrs := []any{
		"kind", kind,
		logx.FieldPage, c.query.PageIndex,
		logx.FieldStoreID, c.query.StoreID,
		logx.Error(err),
	}
	if domain.IsFetchFailure(err) {
		logger(ctx).Warn("fetch failed", attrs...)
	} else {
		logger(ctx).Error("fetch failed with unexpected error", attrs...)
	}

	if kind == kindMore {
		// the page was never shown, the next press asks for it again
		c.query.PageIndex--
	} else {
		c.loaded = nil
		c.renderLocked(ctx, nil, true)
	}

	c.setGridLocked(ctx, entity.GridError, c.messages.LoadError)
}

func (c *Controller) filledState() entity.GridState {
	if len(c.displayed) == 0 {
		return entity.GridEmpty
	}

	return entity.GridPopulated
}

// OnOpenDetail shows the detail view for dealID. A response that arrives
// after the view was closed or reopened is dropped.
func (c *Controller) OnOpenDetail(ctx context.Context, dealID string) {
	dealID = strings.TrimSpace(dealID)
	if dealID == "" {
		return
	}

	c.mu.Lock()
	c.detailToken++
	token := c.detailToken
	c.detail = entity.DetailView{
		State:    entity.DetailLoading,
		DealID:   dealID,
		Message:  c.messages.DetailLoading,
		Closable: true,
	}
	c.display.Detail(ctx, c.detail)
	c.mu.Unlock()

	deal, err := c.source.GetDealDetail(ctx, dealID)

	c.mu.Lock()
	defer c.mu.Unlock()

	if token != c.detailToken {
		staleResponses.WithLabelValues(kindDetail).Inc()
		logger(ctx).Info("stale detail discarded", logx.FieldDealID, dealID)
		return
	}

	if err != nil {
		logger(ctx).Warn("detail fetch failed",
			logx.FieldDealID, dealID,
			logx.Error(err),
		)
		c.detail = entity.DetailView{
			State:    entity.DetailFailed,
			DealID:   dealID,
			Message:  c.messages.DetailError,
			Closable: true,
		}
	} else {
		c.detail = entity.DetailView{
			State:    entity.DetailReady,
			DealID:   dealID,
			Deal:     &deal,
			Closable: true,
		}
	}

	c.display.Detail(ctx, c.detail)
}

func (c *Controller) OnCloseDetail(ctx context.Context) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.detail.State == entity.DetailClosed {
		return
	}

	c.detailToken++
	c.detail = entity.DetailView{State: entity.DetailClosed}
	c.display.Detail(ctx, c.detail)
}
