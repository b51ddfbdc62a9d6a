package cli

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/samber/lo"

	"deal_browser/internal/domain/entity"
	"deal_browser/internal/domain/service/browser"
	"deal_browser/pkg/contextx"
	"deal_browser/pkg/logx"
)

var logger = contextx.LoggerFromContextOrDefault //nolint:gochecknoglobals

// Source is the deal source plus the store catalogue.
type Source interface {
	browser.DealSource
	ListStores(ctx context.Context) ([]entity.Store, error)
}

const help = `commands:
  search <text>        search games by title
  store <id|all>       filter deals by store
  stores               list active stores
  sort <none|price|normalPrice>
  more                 load the next page
  open <row|dealID>    show deal details
  close                close the details
  quit`

// Repl drives one browser.Controller from line-based input.
type Repl struct {
	source     Source
	controller *browser.Controller
	display    *TableDisplay
	in         io.Reader
	out        io.Writer
}

func NewRepl(source Source, in io.Reader, out io.Writer, messages browser.Messages, searchLimit int) *Repl {
	display := NewTableDisplay(out, messages)

	return &Repl{
		source: source,
		controller: browser.NewController(source, display).
			WithMessages(messages).
			WithSearchLimit(searchLimit),
		display: display,
		in:      in,
		out:     out,
	}
}

func (r *Repl) Controller() *browser.Controller {
	return r.controller
}

// Run loads the first page of storeID and reads commands until quit, EOF or
// ctx is done.
func (r *Repl) Run(ctx context.Context, storeID string) error {
	if storeID != "" {
		r.controller.OnStoreChange(ctx, storeID)
	} else {
		r.controller.Start(ctx)
	}

	scanner := bufio.NewScanner(r.in)
	r.prompt()

	for scanner.Scan() {
		if ctx.Err() != nil {
			return nil
		}

		if quit := r.exec(ctx, scanner.Text()); quit {
			return nil
		}

		r.prompt()
	}

	if err := scanner.Err(); err != nil {
		return fmt.Errorf("scanner.Scan: %w", err)
	}

	return nil
}

func (r *Repl) exec(ctx context.Context, line string) bool {
	fields := strings.Fields(line)
	if len(fields) == 0 {
		return false
	}

	command := strings.ToLower(fields[0])
	arg := strings.TrimSpace(strings.TrimSpace(line)[len(fields[0]):])

	logger(ctx).Debug("repl command", logx.FieldCommand, command)

	switch command {
	case "search", "s":
		r.controller.OnSearch(ctx, arg)
	case "store":
		if arg == "all" {
			arg = ""
		}
		r.controller.OnStoreChange(ctx, arg)
	case "stores":
		r.stores(ctx)
	case "sort":
		criterion, err := entity.ParseSortCriterion(arg)
		if err != nil {
			renderLine(r.out, err.Error())
			return false
		}
		r.controller.OnSortChange(ctx, criterion)
	case "more", "m":
		r.controller.OnLoadMore(ctx)
	case "open", "o":
		r.controller.OnOpenDetail(ctx, r.dealID(arg))
	case "close":
		r.controller.OnCloseDetail(ctx)
	case "help", "?":
		renderLine(r.out, help)
	case "quit", "exit", "q":
		return true
	default:
		renderLine(r.out, "unknown command "+strconv.Quote(command)+", try help")
	}

	return false
}

// dealID reads arg as a row number first, then as a raw deal id.
func (r *Repl) dealID(arg string) string {
	if n, err := strconv.Atoi(arg); err == nil {
		if id, ok := r.display.DealAt(n); ok {
			return id
		}
	}

	return arg
}

func (r *Repl) stores(ctx context.Context) {
	stores, err := r.source.ListStores(ctx)
	if err != nil {
		logger(ctx).Warn("source.ListStores", logx.Error(err))
		renderLine(r.out, r.controller.Messages().LoadError)
		return
	}

	RenderStores(r.out, lo.Filter(stores, func(s entity.Store, _ int) bool {
		return s.Active
	}))
}

func (r *Repl) prompt() {
	_, _ = fmt.Fprint(r.out, "> ")
}
