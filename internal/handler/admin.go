package handler

import (
	"fmt"
	"strings"

	"contestbot/internal/i18n"

	"go.uber.org/zap"
	tele "gopkg.in/telebot.v3"
)

// handleWhoami replies with the caller's user id. Not gated.
func (h *Handler) handleWhoami(c tele.Context) error {
	return c.Send(fmt.Sprintf("Sizning / Ваш user ID: %d", c.Sender().ID))
}

// handleRegisteredCount replies with the registry record count
func (h *Handler) handleRegisteredCount(c tele.Context) error {
	count, err := h.admin.Count()
	if err != nil {
		h.logger.Error("Failed to count submissions", zap.Error(err))
		return c.Send(i18n.Both(i18n.SomethingWrong))
	}
	return c.Send(fmt.Sprintf("Jami / Всего ishtirokchilar: %d", count))
}

// handleBroadcast sends the rest-of-line text to every registry record
func (h *Handler) handleBroadcast(c tele.Context) error {
	text := strings.TrimSpace(c.Message().Payload)
	if text == "" {
		return c.Send(i18n.Both(i18n.BroadcastUsage))
	}

	h.logger.Info("Broadcast started",
		zap.Int64("operator_id", c.Sender().ID),
	)

	sent, failed, err := h.admin.Broadcast(text)
	if err != nil {
		h.logger.Error("Broadcast failed", zap.Error(err))
		return c.Send(i18n.Both(i18n.SomethingWrong))
	}

	return c.Send(fmt.Sprintf("Yuborildi / Отправлено: %d, Xato / Ошибка: %d", sent, failed))
}
