package notify

import (
	"fmt"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"

	"github.com/arjunmehra/dhaba/internal/model"
)

// TelegramClient posts new-order alerts to a staff chat through a bot.
type TelegramClient struct {
	bot    *tgbotapi.BotAPI
	chatID int64
}

func NewTelegramClient(token string, chatID int64) (*TelegramClient, error) {
	bot, err := tgbotapi.NewBotAPI(token)
	if err != nil {
		return nil, fmt.Errorf("telegram bot: %w", err)
	}
	return &TelegramClient{bot: bot, chatID: chatID}, nil
}

// OrderCreated sends the new-order alert to the staff chat.
func (c *TelegramClient) OrderCreated(o model.Order) error {
	msg := tgbotapi.NewMessage(c.chatID, orderAlertText(o))
	if _, err := c.bot.Send(msg); err != nil {
		return fmt.Errorf("send telegram message: %w", err)
	}
	return nil
}
