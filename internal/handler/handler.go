package handler

import (
	"fmt"
	"time"

	"contestbot/internal/i18n"
	"contestbot/internal/middleware"
	"contestbot/internal/repository"
	"contestbot/internal/service"

	"go.uber.org/zap"
	tele "gopkg.in/telebot.v3"
)

// Handler manages all bot interactions
type Handler struct {
	bot       *tele.Bot
	registry  repository.Registry
	sessions  *service.SessionStore
	downloads *service.DownloadService
	notify    *service.NotifyService
	admin     *service.AdminService
	logger    *zap.Logger

	videosDir string
	location  *time.Location
}

// NewHandler creates a new handler instance
func NewHandler(
	bot *tele.Bot,
	registry repository.Registry,
	sessions *service.SessionStore,
	downloads *service.DownloadService,
	notify *service.NotifyService,
	admin *service.AdminService,
	logger *zap.Logger,
	videosDir string,
	location *time.Location,
) *Handler {
	return &Handler{
		bot:       bot,
		registry:  registry,
		sessions:  sessions,
		downloads: downloads,
		notify:    notify,
		admin:     admin,
		logger:    logger,
		videosDir: videosDir,
		location:  location,
	}
}

// RegisterHandlers registers all bot handlers
func (h *Handler) RegisterHandlers() {
	operatorOnly := middleware.OperatorOnly(h.admin, h.logger)

	// Commands
	h.bot.Handle("/start", h.handleStart)
	h.bot.Handle("/whoami", h.handleWhoami)
	h.bot.Handle("/registered_count", h.handleRegisteredCount, operatorOnly)
	h.bot.Handle("/broadcast", h.handleBroadcast, operatorOnly)

	// Intake flow steps
	h.bot.Handle(tele.OnText, h.handleText)
	h.bot.Handle(tele.OnVideo, h.handleVideo)
	h.bot.Handle(tele.OnDocument, h.handleVideo)

	// Inline menu selections
	h.bot.Handle(tele.OnCallback, h.handleCallback)
}

// University menu entries. Callback codes are stable identifiers,
// labels follow the user's language.
type universityOption struct {
	Code string
	UZ   string
	RU   string
}

func (u universityOption) label(lang i18n.Lang) string {
	if lang == i18n.RU {
		return u.RU
	}
	return u.UZ
}

var universities = []universityOption{
	{Code: "TDIU", UZ: "Toshkent davlat iqtisodiyot universiteti", RU: "Ташкентский государственный экономический университет"},
	{Code: "QDU", UZ: "Qarshi davlat universiteti", RU: "Каршинский государственный университет"},
	{Code: "KDU", UZ: "Qoraqalpoq davlat universiteti", RU: "Каракалпакский государственный университет"},
	{Code: "FDU", UZ: "Farg'ona davlat universiteti", RU: "Ферганский государственный университет"},
}

const studyYears = 4

// languageMarkup returns the uz/ru choice keyboard
func languageMarkup() *tele.ReplyMarkup {
	markup := &tele.ReplyMarkup{}
	markup.Inline(markup.Row(
		markup.Data("🇺🇿 O'zbekcha", "lang_uz"),
		markup.Data("🇷🇺 Русский", "lang_ru"),
	))
	return markup
}

// universityMarkup returns the university menu in the user's language
func universityMarkup(lang i18n.Lang) *tele.ReplyMarkup {
	markup := &tele.ReplyMarkup{}
	rows := make([]tele.Row, 0, len(universities))
	for _, u := range universities {
		rows = append(rows, markup.Row(markup.Data(u.label(lang), "uni_"+u.Code)))
	}
	markup.Inline(rows...)
	return markup
}

// yearMarkup returns the study-year menu, labels are bilingual
func yearMarkup() *tele.ReplyMarkup {
	markup := &tele.ReplyMarkup{}
	rows := make([]tele.Row, 0, studyYears)
	for year := 1; year <= studyYears; year++ {
		label := fmt.Sprintf("%d-bosqich / %d курс", year, year)
		rows = append(rows, markup.Row(markup.Data(label, fmt.Sprintf("year_%d", year))))
	}
	markup.Inline(rows...)
	return markup
}
