package handler

import (
	"contestbot/internal/i18n"

	"go.uber.org/zap"
	tele "gopkg.in/telebot.v3"
)

// handleStart handles /start: begins a fresh intake session at the
// language step. A second /start while a flow is in progress discards
// the old session and restarts.
func (h *Handler) handleStart(c tele.Context) error {
	userID := c.Sender().ID

	h.logger.Info("User started intake flow",
		zap.Int64("user_id", userID),
		zap.String("username", c.Sender().Username),
	)

	h.sessions.Begin(userID, c.Chat().ID)

	// No language yet, greet in both
	return c.Send(i18n.Both(i18n.Start), languageMarkup())
}
