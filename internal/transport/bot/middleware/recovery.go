package middleware

import (
	"log/slog"
	"runtime/debug"

	"github.com/mymmrac/telego"
	th "github.com/mymmrac/telego/telegohandler"

	"deal_browser/pkg/logx"
)

// Recovery keeps a panicking handler from taking the bot down.
func Recovery(ctx *th.Context, update telego.Update) (err error) {
	defer func() {
		if rec := recover(); rec != nil {
			logger(ctx).Error(
				"panic in handler",
				slog.Int(logx.FieldUpdateID, update.UpdateID),
				slog.Any(logx.FieldError, rec),
				slog.String(logx.FieldStack, string(debug.Stack())),
			)

			err = nil
		}
	}()

	return ctx.Next(update)
}
