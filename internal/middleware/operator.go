package middleware

import (
	"contestbot/internal/i18n"
	"contestbot/internal/service"

	"go.uber.org/zap"
	tele "gopkg.in/telebot.v3"
)

// OperatorOnly creates middleware that rejects commands from users
// outside the operator allow-list before the handler runs
func OperatorOnly(admin *service.AdminService, logger *zap.Logger) tele.MiddlewareFunc {
	return func(next tele.HandlerFunc) tele.HandlerFunc {
		return func(c tele.Context) error {
			userID := c.Sender().ID

			if !admin.IsOperator(userID) {
				logger.Info("Operator command rejected",
					zap.Int64("user_id", userID),
					zap.String("text", c.Text()),
				)
				return c.Send(i18n.Inline(i18n.AdminsOnly))
			}

			return next(c)
		}
	}
}
