package handler

import (
	"strconv"

	"contestbot/internal/service"

	tele "gopkg.in/telebot.v3"
)

// NewFetcher adapts the bot's file API to service.Fetcher
func NewFetcher(bot *tele.Bot) service.Fetcher {
	return &botFetcher{bot: bot}
}

type botFetcher struct {
	bot *tele.Bot
}

func (f *botFetcher) Fetch(fileID, dest string) error {
	file := tele.File{FileID: fileID}
	return f.bot.Download(&file, dest)
}

// NewMessenger adapts the bot's send/forward API to service.Messenger
func NewMessenger(bot *tele.Bot) service.Messenger {
	return &botMessenger{bot: bot}
}

type botMessenger struct {
	bot *tele.Bot
}

func (m *botMessenger) Send(chatID int64, text string) error {
	_, err := m.bot.Send(&tele.User{ID: chatID}, text)
	return err
}

func (m *botMessenger) Forward(chatID, fromChatID int64, messageID int) error {
	_, err := m.bot.Forward(&tele.User{ID: chatID}, &tele.StoredMessage{
		MessageID: strconv.Itoa(messageID),
		ChatID:    fromChatID,
	})
	return err
}
