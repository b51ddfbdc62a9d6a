package middleware

import (
	"log/slog"
	"time"

	jsoniter "github.com/json-iterator/go"
	"github.com/mymmrac/telego"
	th "github.com/mymmrac/telego/telegohandler"
	tu "github.com/mymmrac/telego/telegoutil"

	"deal_browser/pkg/contextx"
	"deal_browser/pkg/logx"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary //nolint:gochecknoglobals // skip

// Logger tags every update with a trace id and the chat id, stores the tagged
// logger in the handler context and logs the masked update.
func Logger(
	sensitiveDataMasker logx.SensitiveDataMaskerInterface,
	logFieldMaxLen int,
) th.Handler {
	return func(ctx *th.Context, update telego.Update) error {
		start := time.Now()
		traceID := contextx.NewTraceID()

		attrs := []any{
			logx.Stringer(logx.FieldTraceID, traceID),
			slog.Int(logx.FieldUpdateID, update.UpdateID),
		}

		newCtx := contextx.WithTraceID(ctx, traceID)

		if chatID, ok := ChatID(update); ok {
			newCtx = contextx.WithChatID(newCtx, contextx.ChatID(chatID))
			attrs = append(attrs, slog.Int64(logx.FieldChatID, chatID))
		}

		switch {
		case update.CallbackQuery != nil:
			attrs = append(attrs, slog.String(logx.FieldCallbackData, update.CallbackQuery.Data))
		case update.Message != nil:
			if cmd, _, _ := tu.ParseCommand(update.Message.Text); cmd != "" {
				attrs = append(attrs, slog.String(logx.FieldCommand, cmd))
			}
		}

		log := logger(ctx).With(attrs...)
		newCtx = contextx.WithLogger(newCtx, log)

		log.Debug(
			"update received",
			slog.String(logx.FieldUpdate, DumpUpdate(update, sensitiveDataMasker, logFieldMaxLen)),
		)

		err := ctx.WithContext(newCtx).Next(update)

		log.Info(
			"update handled",
			slog.Int64(logx.FieldDurationMs, time.Since(start).Milliseconds()),
			logx.Error(err),
		)

		return err
	}
}

// DumpUpdate renders update as masked JSON cut to maxLen bytes.
func DumpUpdate(update telego.Update, sensitiveDataMasker logx.SensitiveDataMaskerInterface, maxLen int) string {
	dump, err := json.Marshal(update)
	if err != nil {
		return "json.Marshal: " + err.Error()
	}

	dump = sensitiveDataMasker.Mask(dump)

	if maxLen > 0 && len(dump) > maxLen {
		dump = dump[:maxLen]
	}

	return string(dump)
}
