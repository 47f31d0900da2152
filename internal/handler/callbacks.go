package handler

import (
	"strings"
	"unicode"

	"contestbot/internal/domain"
	"contestbot/internal/i18n"

	"go.uber.org/zap"
	tele "gopkg.in/telebot.v3"
)

// cleanCallbackData removes all non-printable characters from callback data
func cleanCallbackData(data string) string {
	return strings.Map(func(r rune) rune {
		if unicode.IsPrint(r) {
			return r
		}
		return -1
	}, strings.TrimSpace(data))
}

// handleCallback handles ALL callback queries, dispatching by data prefix
func (h *Handler) handleCallback(c tele.Context) error {
	callback := c.Callback()
	if callback == nil {
		h.logger.Warn("handleCallback: callback is nil")
		return nil
	}

	data := cleanCallbackData(callback.Data)

	switch {
	case strings.HasPrefix(data, "lang_"):
		return h.handleLanguage(c, strings.TrimPrefix(data, "lang_"))
	case strings.HasPrefix(data, "uni_"):
		return h.handleUniversity(c, strings.TrimPrefix(data, "uni_"))
	case strings.HasPrefix(data, "year_"):
		return h.handleYear(c, strings.TrimPrefix(data, "year_"))
	}

	h.logger.Warn("Unhandled callback",
		zap.String("data", data),
		zap.Int64("user_id", c.Sender().ID),
	)
	return c.Respond()
}

// handleLanguage records the language choice and shows the university menu
func (h *Handler) handleLanguage(c tele.Context, code string) error {
	sess, ok := h.sessions.Get(c.Sender().ID)
	if !ok || sess.State != domain.StateLanguage {
		// Stale button press from a finished or restarted flow
		return c.Respond()
	}

	lang := i18n.Normalize(code)
	sess.Lang = string(lang)
	sess.State = domain.StateUniversity
	h.sessions.Update(sess)

	if err := c.Send(i18n.T(lang, i18n.University), universityMarkup(lang)); err != nil {
		return err
	}
	return c.Respond()
}

// handleUniversity records the university choice and shows the year menu
func (h *Handler) handleUniversity(c tele.Context, code string) error {
	sess, ok := h.sessions.Get(c.Sender().ID)
	if !ok || sess.State != domain.StateUniversity {
		return c.Respond()
	}

	sess.University = code
	sess.State = domain.StateYear
	h.sessions.Update(sess)

	lang := i18n.Normalize(sess.Lang)
	if err := c.Send(i18n.T(lang, i18n.Year), yearMarkup()); err != nil {
		return err
	}
	return c.Respond()
}

// handleYear records the study year and asks for the full name
func (h *Handler) handleYear(c tele.Context, year string) error {
	sess, ok := h.sessions.Get(c.Sender().ID)
	if !ok || sess.State != domain.StateYear {
		return c.Respond()
	}

	sess.Year = year
	sess.State = domain.StateFullName
	h.sessions.Update(sess)

	lang := i18n.Normalize(sess.Lang)
	if err := c.Send(i18n.T(lang, i18n.FullName)); err != nil {
		return err
	}
	return c.Respond()
}
