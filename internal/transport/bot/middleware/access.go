package middleware

import (
	"log/slog"

	"github.com/mymmrac/telego"
	th "github.com/mymmrac/telego/telegohandler"
	"github.com/samber/lo"
)

// AllowList drops updates from users outside allowed. An empty list lets
// everyone through.
func AllowList(allowed []int64) th.Handler {
	set := lo.SliceToMap(allowed, func(id int64) (int64, struct{}) {
		return id, struct{}{}
	})

	return func(ctx *th.Context, update telego.Update) error {
		if Allowed(set, update) {
			return ctx.Next(update)
		}

		userID, _ := SenderID(update)
		logger(ctx).Warn("update from user not on the allow list dropped", slog.Int64("user-id", userID))

		return nil
	}
}

func Allowed(set map[int64]struct{}, update telego.Update) bool {
	if len(set) == 0 {
		return true
	}

	userID, ok := SenderID(update)
	if !ok {
		return false
	}

	_, ok = set[userID]
	return ok
}
