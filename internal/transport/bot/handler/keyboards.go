package handler

import (
	"strings"

	"github.com/mymmrac/telego"
	tu "github.com/mymmrac/telego/telegoutil"
	"github.com/samber/lo"

	"deal_browser/internal/domain/entity"
	"deal_browser/internal/domain/service/browser"
	"deal_browser/internal/transport/bot/session"
)

const buttonsPerRow = 2

//nolint:gochecknoglobals // skip
var sortOptions = []entity.SortCriterion{entity.SortNone, entity.SortPrice, entity.SortNormalPrice}

// storeKeyboard lists the stores plus an entry that clears the filter. The
// current filter is marked.
func storeKeyboard(stores []entity.Store, current string, m browser.Messages) *telego.InlineKeyboardMarkup {
	buttons := make([]telego.InlineKeyboardButton, 0, len(stores)+1)
	buttons = append(buttons, tu.InlineKeyboardButton(mark(m.AllStores, current == "")).
		WithCallbackData(session.CallbackStorePrefix))

	for _, s := range stores {
		buttons = append(buttons, tu.InlineKeyboardButton(mark(s.Name, s.ID == current)).
			WithCallbackData(session.CallbackStorePrefix+s.ID))
	}

	return tu.InlineKeyboard(lo.Chunk(buttons, buttonsPerRow)...)
}

func sortKeyboard(current entity.SortCriterion, m browser.Messages) *telego.InlineKeyboardMarkup {
	buttons := lo.Map(sortOptions, func(c entity.SortCriterion, _ int) telego.InlineKeyboardButton {
		name := m.SortNames[c.String()]
		if name == "" {
			name = c.String()
		}

		return tu.InlineKeyboardButton(mark(name, c == current)).
			WithCallbackData(session.CallbackSortPrefix + c.String())
	})

	return tu.InlineKeyboard(tu.InlineKeyboardRow(buttons...))
}

func mark(label string, selected bool) string {
	if selected {
		return "✓ " + label
	}

	return label
}

// commandArgs returns what follows the command, joined back with single spaces.
func commandArgs(text string) string {
	_, _, args := tu.ParseCommand(text)

	return strings.Join(strings.Fields(strings.Join(args, " ")), " ")
}
