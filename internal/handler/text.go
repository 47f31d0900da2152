package handler

import (
	"strings"

	"contestbot/internal/domain"
	"contestbot/internal/i18n"

	tele "gopkg.in/telebot.v3"
)

// handleText handles the free-text steps (full name and phone) based on
// the user's session state
func (h *Handler) handleText(c tele.Context) error {
	userID := c.Sender().ID
	text := strings.TrimSpace(c.Text())

	// Ignore commands (starting with /)
	if strings.HasPrefix(text, "/") {
		return nil
	}

	sess, ok := h.sessions.Get(userID)
	if !ok {
		return nil
	}

	lang := i18n.Normalize(sess.Lang)

	switch sess.State {
	case domain.StateFullName:
		if text == "" {
			return c.Send(i18n.T(lang, i18n.FullName))
		}
		sess.FullName = text
		sess.State = domain.StatePhone
		h.sessions.Update(sess)
		return c.Send(i18n.T(lang, i18n.Phone))

	case domain.StatePhone:
		if text == "" {
			return c.Send(i18n.T(lang, i18n.Phone))
		}
		sess.Phone = text
		sess.State = domain.StateVideo
		h.sessions.Update(sess)
		return c.Send(i18n.T(lang, i18n.Video))

	default:
		// Text arriving at a menu or video step carries no meaning
		return nil
	}
}
