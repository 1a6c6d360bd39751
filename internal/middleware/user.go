package middleware

import (
	"polyglot/internal/service"

	"go.uber.org/zap"
	tele "gopkg.in/telebot.v3"
)

// EnsureUser registers the sender on first contact before any handler
// runs, so every handler can assume the user row exists.
func EnsureUser(users *service.UserService, logger *zap.Logger) tele.MiddlewareFunc {
	return func(next tele.HandlerFunc) tele.HandlerFunc {
		return func(c tele.Context) error {
			sender := c.Sender()
			if sender == nil {
				return next(c)
			}

			if err := users.EnsureUser(sender.ID); err != nil {
				logger.Error("Failed to ensure user exists",
					zap.Error(err),
					zap.Int64("user_id", sender.ID),
				)
				return c.Send("⚠️ Something went wrong. Please try again later.")
			}

			return next(c)
		}
	}
}
