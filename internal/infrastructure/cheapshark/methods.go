package cheapshark

import (
	"context"
	"fmt"
	"net/url"
	"strconv"
	"strings"

	"github.com/samber/lo"

	"deal_browser/internal/domain/entity"
	"deal_browser/pkg/logx"
)

// ListDeals fetches one page of deals. An empty storeID lists every store.
func (c *Client) ListDeals(ctx context.Context, pageIndex int, storeID string) ([]entity.DealSummary, error) {
	params := map[string]string{
		"pageNumber": strconv.Itoa(pageIndex),
		"pageSize":   strconv.Itoa(PageSize),
	}
	if storeID != "" {
		params["storeID"] = storeID
	}

	var deals []dealSchema
	if err := c.get(ctx, "list_deals", "/deals", params, &deals); err != nil {
		return nil, fmt.Errorf("client.ListDeals: %w", err)
	}

	if err := c.checkShape(ctx, "list_deals", c.validate.VarCtx(ctx, deals, "dive")); err != nil {
		return nil, fmt.Errorf("client.ListDeals: %w", err)
	}

	logger(ctx).Debug("deals listed",
		logx.FieldPage, pageIndex,
		logx.FieldStoreID, storeID,
		"count", len(deals),
	)

	return lo.Map(deals, func(d dealSchema, _ int) entity.DealSummary {
		return d.toDomain()
	}), nil
}

// SearchGames looks games up by title. Blank text returns nothing without a request.
func (c *Client) SearchGames(ctx context.Context, text string, limit int) ([]entity.DealSummary, error) {
	text = strings.TrimSpace(text)
	if text == "" {
		return nil, nil
	}

	params := map[string]string{"title": text}
	if limit > 0 {
		params["limit"] = strconv.Itoa(limit)
	}

	var games []gameSchema
	if err := c.get(ctx, "search_games", "/games", params, &games); err != nil {
		return nil, fmt.Errorf("client.SearchGames: %w", err)
	}

	return lo.Map(games, func(g gameSchema, _ int) entity.DealSummary {
		return g.toDomain()
	}), nil
}

// GetDealDetail fetches the game info behind one deal.
func (c *Client) GetDealDetail(ctx context.Context, dealID string) (entity.DealDetail, error) {
	var lookup dealLookupSchema
	params := map[string]string{"id": unescapeDealID(dealID)}
	if err := c.get(ctx, "get_deal", "/deals", params, &lookup); err != nil {
		return entity.DealDetail{}, fmt.Errorf("client.GetDealDetail: %w", err)
	}

	if err := c.checkShape(ctx, "get_deal", c.validate.StructCtx(ctx, lookup)); err != nil {
		return entity.DealDetail{}, fmt.Errorf("client.GetDealDetail: %w", err)
	}

	return lookup.GameInfo.toDomain(dealID), nil
}

// ListStores fetches the store catalogue used by the store filter.
func (c *Client) ListStores(ctx context.Context) ([]entity.Store, error) {
	var stores []storeSchema
	if err := c.get(ctx, "list_stores", "/stores", nil, &stores); err != nil {
		return nil, fmt.Errorf("client.ListStores: %w", err)
	}

	if err := c.checkShape(ctx, "list_stores", c.validate.VarCtx(ctx, stores, "dive")); err != nil {
		return nil, fmt.Errorf("client.ListStores: %w", err)
	}

	return lo.Map(stores, func(s storeSchema, _ int) entity.Store {
		return s.toDomain()
	}), nil
}

// unescapeDealID undoes the percent-encoding deal ids arrive with ("...%3D"),
// resty encodes query values again.
func unescapeDealID(dealID string) string {
	raw, err := url.QueryUnescape(dealID)
	if err != nil {
		return dealID
	}

	return raw
}
