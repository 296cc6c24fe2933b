package notification

import (
	"context"
	"fmt"

	"github.com/avdeenkov/seatbooker/internal/domain"
	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
	"github.com/wb-go/wbf/logger"
)

// TelegramNotifier announces bookings to a single admin chat.
type TelegramNotifier struct {
	bot    *tgbotapi.BotAPI
	chatID int64
	logger logger.Logger
}

func NewTelegramNotifier(token string, chatID int64, logger logger.Logger) (*TelegramNotifier, error) {
	if token == "" {
		logger.Warn("telegram bot token is empty, notifications disabled")
		return &TelegramNotifier{bot: nil, chatID: chatID, logger: logger}, nil
	}

	bot, err := tgbotapi.NewBotAPI(token)
	if err != nil {
		return nil, fmt.Errorf("create telegram bot: %w", err)
	}

	return &TelegramNotifier{bot: bot, chatID: chatID, logger: logger}, nil
}

func (n *TelegramNotifier) NotifyBookingCreated(ctx context.Context, b *domain.Booking, e *domain.Event) {
	text := fmt.Sprintf(
		"*New booking*\n\nEvent: %s\nDate: %s\nUser: %s\nSeats: %d",
		e.Name, e.Date, b.Username, b.Seats,
	)
	n.send(ctx, text)
}

func (n *TelegramNotifier) NotifyEventSoldOut(ctx context.Context, e *domain.Event) {
	text := fmt.Sprintf(
		"*Sold out*\n\nEvent: %s\nDate: %s\nAll %d seats are booked.",
		e.Name, e.Date, e.TotalSeats,
	)
	n.send(ctx, text)
}

func (n *TelegramNotifier) send(ctx context.Context, text string) {
	if n.bot == nil {
		n.logger.Debug("notification skipped (bot disabled)", logger.String("text", text))
		return
	}

	if n.chatID == 0 {
		n.logger.Debug("notification skipped (no admin chat_id)", logger.String("text", text))
		return
	}

	if err := ctx.Err(); err != nil {
		n.logger.Debug("notification skipped (context cancelled)",
			logger.Int64("chat_id", n.chatID),
		)
		return
	}

	msg := tgbotapi.NewMessage(n.chatID, text)
	msg.ParseMode = "Markdown"

	if _, err := n.bot.Send(msg); err != nil {
		n.logger.Error("failed to send telegram notification",
			logger.Int64("chat_id", n.chatID),
			logger.String("error", err.Error()),
		)
	}
}
