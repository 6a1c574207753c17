package notifier

import (
	"context"
	"fmt"

	"github.com/go-telegram/bot"
	tgmodels "github.com/go-telegram/bot/models"
)

// TelegramNotifier sends messages to a single Telegram group chat.
type TelegramNotifier struct {
	bot    *bot.Bot
	chatID int64
}

func NewTelegramNotifier(token string, chatID int64) (*TelegramNotifier, error) {
	if token == "" {
		return nil, fmt.Errorf("telegram bot token is empty")
	}
	if chatID == 0 {
		return nil, fmt.Errorf("telegram chat ID is empty")
	}

	b, err := bot.New(token, bot.WithSkipGetMe())
	if err != nil {
		return nil, err
	}

	return &TelegramNotifier{bot: b, chatID: chatID}, nil
}

func (n *TelegramNotifier) Deliver(ctx context.Context, text string) error {
	_, err := n.bot.SendMessage(ctx, &bot.SendMessageParams{
		ChatID:    n.chatID,
		Text:      text,
		ParseMode: tgmodels.ParseModeHTML,
	})
	return err
}
