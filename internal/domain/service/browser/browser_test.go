package browser_test

import (
	"context"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/require"

	"deal_browser/internal/domain"
	"deal_browser/internal/domain/entity"
	"deal_browser/internal/domain/service/browser"
	"deal_browser/pkg/errcodes"
)

func newController() (*browser.Controller, *fakeSource, *recordingDisplay) {
	source := &fakeSource{}
	display := &recordingDisplay{}

	return browser.NewController(source, display), source, display
}

func TestControllerStart(t *testing.T) {
	rq := require.New(t)
	ctx := context.Background()

	ctrl, source, display := newController()
	source.listDeals = func(context.Context, int, string) ([]entity.DealSummary, error) {
		return []entity.DealSummary{{
			Title:       "Game A",
			SalePrice:   "9.99",
			NormalPrice: "19.99",
			DealID:      "abc",
		}}, nil
	}

	ctrl.Start(ctx)

	rq.Equal([]string{`list page=0 store=""`}, source.Calls())

	grid := display.Grid()
	rq.Len(grid, 1)
	rq.Equal("Game A", grid[0].Title)
	rq.Equal("$9.99", grid[0].SalePrice.Display())
	rq.Equal("$19.99", grid[0].NormalPrice.Display())
	rq.Equal("abc", grid[0].DealID)

	rq.Equal(entity.GridPopulated, ctrl.Grid())
	rq.Equal(entity.GridPopulated, display.LastStatus().state)
	rq.Empty(cmp.Diff(grid, ctrl.Displayed()))
}

func TestControllerStartFailure(t *testing.T) {
	rq := require.New(t)
	ctx := context.Background()

	ctrl, source, display := newController()
	source.listDeals = func(context.Context, int, string) ([]entity.DealSummary, error) {
		return nil, domain.NewError(errcodes.HTTPError, "GET /deals: 503 Service Unavailable")
	}

	ctrl.Start(ctx)

	rq.Equal(entity.GridError, ctrl.Grid())
	rq.Equal(statusCall{state: entity.GridError, text: browser.SpanishMessages.LoadError}, display.LastStatus())
	rq.Empty(display.Grid())
	rq.Empty(ctrl.Displayed())
}

func TestControllerStartEmpty(t *testing.T) {
	rq := require.New(t)

	ctrl, _, display := newController()
	ctrl.Start(context.Background())

	rq.Equal(entity.GridEmpty, ctrl.Grid())
	rq.Equal(entity.GridEmpty, display.LastStatus().state)
}

func TestControllerRenderConcatenates(t *testing.T) {
	rq := require.New(t)
	ctx := context.Background()

	ctrl, _, display := newController()

	first := []entity.DealSummary{deal("a", "1.00", "2.00"), deal("b", "3.00", "4.00")}
	second := []entity.DealSummary{deal("c", "5.00", "6.00")}

	ctrl.Render(ctx, []entity.DealSummary{deal("old", "0.50", "1.00")}, false)
	ctrl.Render(ctx, first, true)
	ctrl.Render(ctx, second, false)

	want := append(append([]entity.DealSummary{}, first...), second...)
	rq.Empty(cmp.Diff(want, ctrl.Displayed()))
	rq.Empty(cmp.Diff(want, display.Grid()))
}

func TestControllerDisplayedIsACopy(t *testing.T) {
	rq := require.New(t)
	ctx := context.Background()

	ctrl, _, _ := newController()

	deals := []entity.DealSummary{deal("a", "1.00", "2.00")}
	ctrl.Render(ctx, deals, true)
	deals[0].Title = "changed by caller"

	shown := ctrl.Displayed()
	rq.Equal("Game a", shown[0].Title)

	shown[0].Title = "changed again"
	rq.Equal("Game a", ctrl.Displayed()[0].Title)

	ctrl.Render(ctx, nil, true)
	rq.Nil(ctrl.Displayed())
}

func TestControllerBlankSearchIsNoop(t *testing.T) {
	rq := require.New(t)
	ctx := context.Background()

	ctrl, source, display := newController()

	for _, text := range []string{"", "   ", "\t\n"} {
		ctrl.OnSearch(ctx, text)
	}

	rq.Empty(source.Calls())
	rq.Zero(display.StatusCount())
	rq.Equal(entity.QueryState{}, ctrl.State())
}

func TestControllerSearchNoResults(t *testing.T) {
	rq := require.New(t)
	ctx := context.Background()

	ctrl, source, display := newController()
	source.listDeals = func(context.Context, int, string) ([]entity.DealSummary, error) {
		return []entity.DealSummary{deal("a", "1.00", "2.00")}, nil
	}

	ctrl.Start(ctx)
	rq.Len(display.Grid(), 1)

	ctrl.OnSearch(ctx, "  mario ")

	rq.Equal([]string{`list page=0 store=""`, `search text="mario" limit=20`}, source.Calls())
	rq.Equal(entity.GridNoResults, ctrl.Grid())
	rq.Equal(statusCall{state: entity.GridNoResults, text: browser.SpanishMessages.NoResults}, display.LastStatus())
	rq.Empty(display.Grid())
	rq.Empty(ctrl.Displayed())
	rq.Equal("mario", ctrl.State().SearchText)
}

func TestControllerSearchResults(t *testing.T) {
	rq := require.New(t)
	ctx := context.Background()

	ctrl, source, display := newController()
	ctrl.WithSearchLimit(5)
	source.searchGames = func(context.Context, string, int) ([]entity.DealSummary, error) {
		return []entity.DealSummary{deal("m1", "—", "—"), deal("m2", "—", "—")}, nil
	}

	ctrl.OnSearch(ctx, "mario")

	rq.Equal([]string{`search text="mario" limit=5`}, source.Calls())
	rq.Equal(entity.GridPopulated, ctrl.Grid())
	rq.Len(display.Grid(), 2)

	// no paging through search results
	ctrl.OnLoadMore(ctx)
	rq.Len(source.Calls(), 1)
}

func TestControllerStoreChangeResetsQuery(t *testing.T) {
	rq := require.New(t)
	ctx := context.Background()

	ctrl, source, display := newController()
	source.listDeals = func(_ context.Context, page int, storeID string) ([]entity.DealSummary, error) {
		return []entity.DealSummary{deal(storeID+"-"+string(rune('0'+page)), "1.00", "2.00")}, nil
	}

	ctrl.Start(ctx)
	ctrl.OnLoadMore(ctx)
	ctrl.OnSearch(ctx, "zelda")
	ctrl.OnStoreChange(ctx, "7")

	rq.Equal(entity.QueryState{StoreID: "7"}, ctrl.State())
	rq.Equal([]string{
		`list page=0 store=""`,
		`list page=1 store=""`,
		`search text="zelda" limit=20`,
		`list page=0 store="7"`,
	}, source.Calls())
	rq.Equal([]entity.DealSummary{deal("7-0", "1.00", "2.00")}, display.Grid())
}

func TestControllerLoadMore(t *testing.T) {
	rq := require.New(t)
	ctx := context.Background()

	ctrl, source, display := newController()
	pages := map[int][]entity.DealSummary{
		0: {deal("a", "1.00", "2.00")},
		1: {deal("b", "3.00", "4.00")},
	}
	source.listDeals = func(_ context.Context, page int, _ string) ([]entity.DealSummary, error) {
		return pages[page], nil
	}

	ctrl.OnStoreChange(ctx, "1")
	ctrl.OnLoadMore(ctx)

	rq.Equal([]string{`list page=0 store="1"`, `list page=1 store="1"`}, source.Calls())
	rq.Equal([]entity.DealSummary{pages[0][0], pages[1][0]}, display.Grid())
	rq.Equal(1, ctrl.State().PageIndex)

	// an empty page keeps what is shown
	ctrl.OnLoadMore(ctx)
	rq.Equal(entity.GridPopulated, ctrl.Grid())
	rq.Len(display.Grid(), 2)
	rq.Equal(2, ctrl.State().PageIndex)
}

func TestControllerLoadMoreFailureKeepsPage(t *testing.T) {
	rq := require.New(t)
	ctx := context.Background()

	ctrl, source, display := newController()
	fail := true
	source.listDeals = func(_ context.Context, page int, _ string) ([]entity.DealSummary, error) {
		if page == 1 && fail {
			return nil, domain.NewError(errcodes.NetworkError, "dial tcp: connection refused")
		}
		return []entity.DealSummary{deal(string(rune('a'+page)), "1.00", "2.00")}, nil
	}

	ctrl.Start(ctx)
	ctrl.OnLoadMore(ctx)

	rq.Equal(entity.GridError, ctrl.Grid())
	rq.Equal(browser.SpanishMessages.LoadError, display.LastStatus().text)
	rq.Len(display.Grid(), 1)
	rq.Zero(ctrl.State().PageIndex)

	fail = false
	ctrl.OnLoadMore(ctx)

	rq.Equal([]string{`list page=0 store=""`, `list page=1 store=""`, `list page=1 store=""`}, source.Calls())
	rq.Equal(entity.GridPopulated, ctrl.Grid())
	rq.Len(display.Grid(), 2)
}

func TestControllerLoadMoreInFlight(t *testing.T) {
	rq := require.New(t)
	ctx := context.Background()

	ctrl, source, display := newController()

	started := make(chan struct{})
	release := make(chan struct{})
	source.listDeals = func(_ context.Context, page int, _ string) ([]entity.DealSummary, error) {
		if page == 1 {
			close(started)
			<-release
		}
		return []entity.DealSummary{deal(string(rune('a'+page)), "1.00", "2.00")}, nil
	}

	ctrl.Start(ctx)

	done := make(chan struct{})
	go func() {
		defer close(done)
		ctrl.OnLoadMore(ctx)
	}()

	<-started
	ctrl.OnLoadMore(ctx)
	ctrl.OnLoadMore(ctx)
	close(release)
	<-done

	rq.Equal([]string{`list page=0 store=""`, `list page=1 store=""`}, source.Calls())
	rq.Len(display.Grid(), 2)
	rq.Equal(1, ctrl.State().PageIndex)
}

func TestControllerStaleLoadMoreDiscarded(t *testing.T) {
	rq := require.New(t)
	ctx := context.Background()

	ctrl, source, display := newController()

	started := make(chan struct{})
	release := make(chan struct{})
	storeOne := []entity.DealSummary{deal("s1", "5.00", "10.00")}
	source.listDeals = func(_ context.Context, page int, storeID string) ([]entity.DealSummary, error) {
		if storeID == "1" {
			return storeOne, nil
		}
		if page == 3 {
			close(started)
			<-release
		}
		return []entity.DealSummary{deal(string(rune('a'+page)), "1.00", "2.00")}, nil
	}

	ctrl.Start(ctx)
	ctrl.OnLoadMore(ctx)
	ctrl.OnLoadMore(ctx)

	done := make(chan struct{})
	go func() {
		defer close(done)
		ctrl.OnLoadMore(ctx)
	}()

	<-started
	ctrl.OnStoreChange(ctx, "1")
	close(release)
	<-done

	rq.Equal([]string{
		`list page=0 store=""`,
		`list page=1 store=""`,
		`list page=2 store=""`,
		`list page=3 store=""`,
		`list page=0 store="1"`,
	}, source.Calls())
	rq.Empty(cmp.Diff(storeOne, display.Grid()))
	rq.Empty(cmp.Diff(storeOne, ctrl.Displayed()))
	rq.Equal(entity.QueryState{StoreID: "1"}, ctrl.State())
	rq.Equal(entity.GridPopulated, ctrl.Grid())
}

func TestControllerStaleSearchDiscarded(t *testing.T) {
	rq := require.New(t)
	ctx := context.Background()

	ctrl, source, display := newController()

	started := make(chan struct{})
	release := make(chan struct{})
	source.searchGames = func(_ context.Context, text string, _ int) ([]entity.DealSummary, error) {
		if text == "slow" {
			close(started)
			<-release
		}
		return []entity.DealSummary{deal(text, "—", "—")}, nil
	}

	done := make(chan struct{})
	go func() {
		defer close(done)
		ctrl.OnSearch(ctx, "slow")
	}()

	<-started
	ctrl.OnSearch(ctx, "fast")
	close(release)
	<-done

	rq.Equal([]entity.DealSummary{deal("fast", "—", "—")}, display.Grid())
	rq.Equal("fast", ctrl.State().SearchText)
}

func TestControllerSortChange(t *testing.T) {
	rq := require.New(t)
	ctx := context.Background()

	ctrl, source, display := newController()
	pages := map[int][]entity.DealSummary{
		0: {deal("a", "9.99", "10.00"), deal("b", "—", "5.00"), deal("c", "1.50", "30.00")},
		1: {deal("d", "0.99", "1.00")},
	}
	source.listDeals = func(_ context.Context, page int, _ string) ([]entity.DealSummary, error) {
		return pages[page], nil
	}

	ctrl.Start(ctx)
	ctrl.OnSortChange(ctx, entity.SortPrice)

	rq.Len(source.Calls(), 1)
	rq.Equal([]string{"c", "a", "b"}, ids(display.Grid()))
	rq.Equal(entity.SortPrice, ctrl.State().Sort)

	ctrl.OnLoadMore(ctx)
	rq.Equal([]string{"d", "c", "a", "b"}, ids(display.Grid()))

	ctrl.OnSortChange(ctx, entity.SortNormalPrice)
	rq.Equal([]string{"d", "b", "a", "c"}, ids(display.Grid()))

	ctrl.OnSortChange(ctx, entity.SortNone)
	rq.Equal([]string{"a", "b", "c", "d"}, ids(display.Grid()))

	ctrl.OnSortChange(ctx, entity.SortCriterion("rating"))
	rq.Equal(entity.SortNone, ctrl.State().Sort)
	rq.Len(source.Calls(), 2)
}

func TestControllerSortBeforeFirstPage(t *testing.T) {
	rq := require.New(t)
	ctx := context.Background()

	ctrl, source, display := newController()
	source.listDeals = func(context.Context, int, string) ([]entity.DealSummary, error) {
		return []entity.DealSummary{deal("a", "9.99", "10.00"), deal("b", "1.99", "5.00")}, nil
	}

	ctrl.OnSortChange(ctx, entity.SortPrice)
	rq.Zero(display.RenderCount())

	ctrl.Start(ctx)
	rq.Equal([]string{"b", "a"}, ids(display.Grid()))
}

func TestControllerDetail(t *testing.T) {
	rq := require.New(t)
	ctx := context.Background()

	ctrl, source, display := newController()
	detail := entity.DealDetail{
		DealID:          "xyz",
		Name:            "Game X",
		MetacriticScore: "88",
		RetailPrice:     "19.99",
		SalePrice:       "4.99",
		StoreLink:       "https://www.cheapshark.com/redirect?dealID=xyz",
	}
	source.getDealDetail = func(context.Context, string) (entity.DealDetail, error) {
		return detail, nil
	}

	ctrl.OnOpenDetail(ctx, "xyz")

	view := ctrl.Detail()
	rq.Equal(entity.DetailReady, view.State)
	rq.True(view.Closable)
	rq.NotNil(view.Deal)
	rq.Equal(detail, *view.Deal)
	rq.Equal(view, display.LastDetail())

	ctrl.OnCloseDetail(ctx)
	rq.Equal(entity.DetailView{State: entity.DetailClosed}, ctrl.Detail())
	rq.Equal(entity.DetailClosed, display.LastDetail().State)

	ctrl.OnOpenDetail(ctx, "  ")
	rq.Equal([]string{`detail id="xyz"`}, source.Calls())
}

func TestControllerDetailParseError(t *testing.T) {
	rq := require.New(t)
	ctx := context.Background()

	ctrl, source, display := newController()
	source.listDeals = func(context.Context, int, string) ([]entity.DealSummary, error) {
		return []entity.DealSummary{deal("a", "1.00", "2.00"), deal("b", "3.00", "4.00")}, nil
	}
	source.getDealDetail = func(context.Context, string) (entity.DealDetail, error) {
		return entity.DealDetail{}, domain.NewError(errcodes.ParseError, "gameInfo is required")
	}

	ctrl.Start(ctx)
	gridBefore := display.Grid()
	renders := display.RenderCount()

	ctrl.OnOpenDetail(ctx, "xyz")

	view := ctrl.Detail()
	rq.Equal(entity.DetailFailed, view.State)
	rq.Equal(browser.SpanishMessages.DetailError, view.Message)
	rq.True(view.Closable)
	rq.Nil(view.Deal)

	rq.Equal(renders, display.RenderCount())
	rq.Empty(cmp.Diff(gridBefore, display.Grid()))
	rq.Equal(entity.GridPopulated, ctrl.Grid())
}

func TestControllerLateDetailAfterClose(t *testing.T) {
	rq := require.New(t)
	ctx := context.Background()

	ctrl, source, display := newController()

	started := make(chan struct{})
	release := make(chan struct{})
	source.getDealDetail = func(_ context.Context, dealID string) (entity.DealDetail, error) {
		close(started)
		<-release
		return entity.DealDetail{DealID: dealID, Name: "Late"}, nil
	}

	done := make(chan struct{})
	go func() {
		defer close(done)
		ctrl.OnOpenDetail(ctx, "late")
	}()

	<-started
	rq.Equal(entity.DetailLoading, ctrl.Detail().State)
	ctrl.OnCloseDetail(ctx)
	close(release)
	<-done

	rq.Equal(entity.DetailClosed, ctrl.Detail().State)
	rq.Equal(entity.DetailClosed, display.LastDetail().State)
}

func TestControllerEnglishMessages(t *testing.T) {
	rq := require.New(t)

	ctrl, source, display := newController()
	ctrl.WithMessages(browser.MessagesFor("en-US"))
	source.searchGames = func(context.Context, string, int) ([]entity.DealSummary, error) {
		return nil, nil
	}

	ctrl.OnSearch(context.Background(), "nothing")

	rq.Equal("No results found.", display.LastStatus().text)
}

func ids(deals []entity.DealSummary) []string {
	out := make([]string, 0, len(deals))
	for _, d := range deals {
		out = append(out, d.DealID)
	}
	return out
}
