package session

import (
	"context"
	"fmt"
	"sync"

	"github.com/mymmrac/telego"
	tu "github.com/mymmrac/telego/telegoutil"
	"github.com/rs/xid"
	"github.com/samber/lo"

	"deal_browser/internal/domain/entity"
	"deal_browser/internal/domain/service/browser"
	"deal_browser/internal/transport/bot/view"
	"deal_browser/pkg/contextx"
	"deal_browser/pkg/logx"
)

var logger = contextx.LoggerFromContextOrDefault //nolint:gochecknoglobals

// Callback data sent by the inline keyboards.
const (
	CallbackMore         = "more"
	CallbackClose        = "close"
	CallbackDetailPrefix = "detail:"
	CallbackStorePrefix  = "store:"
	CallbackSortPrefix   = "sort:"
)

const (
	buttonsPerRow = 2
	// Telegram caps message text at 4096 characters.
	cardsPerMessage = 20
)

// Sender is the part of *telego.Bot the display needs.
type Sender interface {
	SendMessage(ctx context.Context, params *telego.SendMessageParams) (*telego.Message, error)
	SendPhoto(ctx context.Context, params *telego.SendPhotoParams) (*telego.Message, error)
	SendChatAction(ctx context.Context, params *telego.SendChatActionParams) error
	DeleteMessages(ctx context.Context, params *telego.DeleteMessagesParams) error
}

// ChatDisplay is a browser.Display rendering into one Telegram chat. Deal ids
// do not fit the 64 byte callback data, so buttons carry short tokens that
// map back to them until the next grid reset.
type ChatDisplay struct {
	api      Sender
	chatID   int64
	messages browser.Messages

	mu     sync.Mutex
	grid   []int
	detail []int
	shown  int
	tokens map[string]string
}

func NewChatDisplay(api Sender, chatID int64, messages browser.Messages) *ChatDisplay {
	return &ChatDisplay{
		api:      api,
		chatID:   chatID,
		messages: messages,
		tokens:   make(map[string]string),
	}
}

// Render sends deals in messages of at most cardsPerMessage cards, each with
// its own detail buttons. Only the last message carries the load more row.
func (d *ChatDisplay) Render(ctx context.Context, deals []entity.DealSummary, reset bool) {
	d.mu.Lock()
	defer d.mu.Unlock()

	if reset {
		d.deleteLocked(ctx, d.grid)
		d.grid = nil
		d.shown = 0
		d.tokens = make(map[string]string)
	}

	chunks := lo.Chunk(deals, cardsPerMessage)
	for i, chunk := range chunks {
		d.grid = d.sendLocked(ctx, d.cardsMessageLocked(chunk, i == len(chunks)-1), d.grid)
	}
}

func (d *ChatDisplay) cardsMessageLocked(deals []entity.DealSummary, last bool) *telego.SendMessageParams {
	first := d.shown + 1
	d.shown += len(deals)

	buttons := make([]telego.InlineKeyboardButton, 0, len(deals))
	for i, deal := range deals {
		token := xid.New().String()
		d.tokens[token] = deal.DealID

		buttons = append(buttons, tu.InlineKeyboardButton(fmt.Sprintf("%d · %s", first+i, d.messages.ViewDetail)).
			WithCallbackData(CallbackDetailPrefix+token))
	}

	rows := lo.Chunk(buttons, buttonsPerRow)
	if last {
		rows = append(rows, tu.InlineKeyboardRow(
			tu.InlineKeyboardButton("➕ "+d.messages.LoadMore).WithCallbackData(CallbackMore),
		))
	}

	return tu.Message(tu.ID(d.chatID), view.Deals(deals, first, d.messages)).
		WithParseMode(telego.ModeHTML).
		WithReplyMarkup(tu.InlineKeyboard(rows...))
}

func (d *ChatDisplay) Status(ctx context.Context, state entity.GridState, text string) {
	d.mu.Lock()
	defer d.mu.Unlock()

	switch {
	case state == entity.GridLoading:
		if err := d.api.SendChatAction(ctx, tu.ChatAction(tu.ID(d.chatID), telego.ChatActionTyping)); err != nil {
			logger(ctx).Warn("api.SendChatAction", logx.Error(err))
		}
	case state == entity.GridPopulated || text == "":
		return
	default:
		d.grid = d.sendLocked(ctx, tu.Message(tu.ID(d.chatID), text), d.grid)
	}
}

func (d *ChatDisplay) Detail(ctx context.Context, dv entity.DetailView) {
	d.mu.Lock()
	defer d.mu.Unlock()

	d.deleteLocked(ctx, d.detail)
	d.detail = nil

	closeRow := tu.InlineKeyboardRow(
		tu.InlineKeyboardButton("✖ " + d.messages.Close).WithCallbackData(CallbackClose),
	)

	switch dv.State {
	case entity.DetailClosed:
		return

	case entity.DetailLoading:
		d.detail = d.sendLocked(ctx, tu.Message(tu.ID(d.chatID), dv.Message), d.detail)

	case entity.DetailFailed:
		msg := tu.Message(tu.ID(d.chatID), dv.Message).
			WithReplyMarkup(tu.InlineKeyboard(closeRow))
		d.detail = d.sendLocked(ctx, msg, d.detail)

	case entity.DetailReady:
		keyboard := tu.InlineKeyboard(
			tu.InlineKeyboardRow(tu.InlineKeyboardButton("🛒 "+d.messages.OpenStore).WithURL(dv.Deal.StoreLink)),
			closeRow,
		)
		caption := view.Detail(*dv.Deal, d.messages)

		if dv.Deal.ThumbnailURL == "" {
			msg := tu.Message(tu.ID(d.chatID), caption).
				WithParseMode(telego.ModeHTML).
				WithReplyMarkup(keyboard)
			d.detail = d.sendLocked(ctx, msg, d.detail)
			return
		}

		photo := tu.Photo(tu.ID(d.chatID), tu.FileFromURL(dv.Deal.ThumbnailURL)).
			WithCaption(caption).
			WithParseMode(telego.ModeHTML).
			WithReplyMarkup(keyboard)

		sent, err := d.api.SendPhoto(ctx, photo)
		if err != nil {
			logger(ctx).Warn("api.SendPhoto", logx.FieldDealID, dv.DealID, logx.Error(err))
			return
		}
		d.detail = append(d.detail, sent.MessageID)
	}
}

// DealFor resolves a detail button token.
func (d *ChatDisplay) DealFor(token string) (string, bool) {
	d.mu.Lock()
	defer d.mu.Unlock()

	dealID, ok := d.tokens[token]
	return dealID, ok
}

func (d *ChatDisplay) sendLocked(ctx context.Context, params *telego.SendMessageParams, track []int) []int {
	sent, err := d.api.SendMessage(ctx, params)
	if err != nil {
		logger(ctx).Warn("api.SendMessage", logx.Error(err))
		return track
	}

	return append(track, sent.MessageID)
}

func (d *ChatDisplay) deleteLocked(ctx context.Context, ids []int) {
	if len(ids) == 0 {
		return
	}

	err := d.api.DeleteMessages(ctx, &telego.DeleteMessagesParams{
		ChatID:     tu.ID(d.chatID),
		MessageIDs: ids,
	})
	if err != nil {
		logger(ctx).Warn("api.DeleteMessages", logx.Error(err))
	}
}
