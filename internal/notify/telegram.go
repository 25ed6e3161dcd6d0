package notify

import (
	"fmt"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
	"go.uber.org/zap"

	"github.com/BruksfildServices01/spa-booking/internal/models"
)

// Telegram avisa a recepção do spa quando um agendamento é confirmado.
// Sem token configurado vira no-op.
type Telegram struct {
	bot    *tgbotapi.BotAPI
	chatID int64
}

func NewTelegram(token string, chatID int64) *Telegram {
	if token == "" || chatID == 0 {
		return &Telegram{}
	}

	bot, err := tgbotapi.NewBotAPI(token)
	if err != nil {
		zap.L().Warn("telegram bot init failed, notifications disabled", zap.Error(err))
		return &Telegram{}
	}

	return &Telegram{bot: bot, chatID: chatID}
}

func (t *Telegram) BookingConfirmed(rec *models.BookingRecord) {
	if t.bot == nil {
		return
	}

	text := fmt.Sprintf(
		"Novo agendamento %s\nUnidade: %s\nData: %s\nTotal: %.2f",
		rec.BookingID,
		rec.LocationID,
		rec.Date,
		rec.Total,
	)

	msg := tgbotapi.NewMessage(t.chatID, text)
	if _, err := t.bot.Send(msg); err != nil {
		zap.L().Warn("telegram notify failed", zap.Error(err))
	}
}
