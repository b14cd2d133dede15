package services

import (
	"fmt"
	"log"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
)

// Sender is the outbound capability the conversation engines need from the
// chat transport. Keyboards are passed through opaquely (any of the tgbotapi
// markup types); nil means no keyboard.
type Sender interface {
	SendMessage(chatID int64, text string, keyboard interface{}) error
	SendPhoto(chatID int64, fileID, caption string, keyboard interface{}) error
	AnswerCallback(callbackID, text string) error
	FileURL(fileID string) (string, error)
}

// TelegramService wraps the Bot API client behind the Sender interface.
type TelegramService struct {
	bot *tgbotapi.BotAPI
}

// NewTelegramService authenticates against the Bot API with the given token.
func NewTelegramService(token string) (*TelegramService, error) {
	bot, err := tgbotapi.NewBotAPI(token)
	if err != nil {
		return nil, fmt.Errorf("failed to authenticate bot: %w", err)
	}
	log.Printf("Authorized on account @%s", bot.Self.UserName)
	return &TelegramService{bot: bot}, nil
}

// Username returns the authenticated bot account name.
func (s *TelegramService) Username() string {
	return s.bot.Self.UserName
}

// UpdatesChan starts long polling and returns the inbound update channel.
func (s *TelegramService) UpdatesChan() tgbotapi.UpdatesChannel {
	u := tgbotapi.NewUpdate(0)
	u.Timeout = 30
	return s.bot.GetUpdatesChan(u)
}

// Stop halts long polling; in-flight handlers finish on their own.
func (s *TelegramService) Stop() {
	s.bot.StopReceivingUpdates()
}

// SendMessage delivers a text message with an optional keyboard.
func (s *TelegramService) SendMessage(chatID int64, text string, keyboard interface{}) error {
	msg := tgbotapi.NewMessage(chatID, text)
	if keyboard != nil {
		msg.ReplyMarkup = keyboard
	}
	if _, err := s.bot.Send(msg); err != nil {
		return fmt.Errorf("failed to send message to %d: %w", chatID, err)
	}
	return nil
}

// SendPhoto delivers a photo by its Telegram file id with an optional caption
// and keyboard.
func (s *TelegramService) SendPhoto(chatID int64, fileID, caption string, keyboard interface{}) error {
	photo := tgbotapi.NewPhoto(chatID, tgbotapi.FileID(fileID))
	photo.Caption = caption
	if keyboard != nil {
		photo.ReplyMarkup = keyboard
	}
	if _, err := s.bot.Send(photo); err != nil {
		return fmt.Errorf("failed to send photo to %d: %w", chatID, err)
	}
	return nil
}

// AnswerCallback acknowledges a button press so the client stops its spinner.
func (s *TelegramService) AnswerCallback(callbackID, text string) error {
	callback := tgbotapi.NewCallback(callbackID, text)
	if _, err := s.bot.Request(callback); err != nil {
		return fmt.Errorf("failed to answer callback: %w", err)
	}
	return nil
}

// FileURL resolves a Telegram file id to a downloadable URL; the attachment
// archive uses it to mirror files to S3.
func (s *TelegramService) FileURL(fileID string) (string, error) {
	url, err := s.bot.GetFileDirectURL(fileID)
	if err != nil {
		return "", fmt.Errorf("failed to resolve file %s: %w", fileID, err)
	}
	return url, nil
}
