package notification

import (
	"context"
	"fmt"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
	"github.com/wb-go/wbf/logger"

	"github.com/JahnaviYelishala1/eventconnect/internal/domain"
)

type TelegramNotifier struct {
	bot    *tgbotapi.BotAPI
	logger logger.Logger
}

func NewTelegramNotifier(token string, logger logger.Logger) (*TelegramNotifier, error) {
	if token == "" {
		logger.Warn("telegram bot token is empty, notifications disabled")
		return &TelegramNotifier{bot: nil, logger: logger}, nil
	}

	bot, err := tgbotapi.NewBotAPI(token)
	if err != nil {
		return nil, fmt.Errorf("create telegram bot: %w", err)
	}

	return &TelegramNotifier{bot: bot, logger: logger}, nil
}

func (n *TelegramNotifier) NotifyBookingRequested(ctx context.Context, caterer *domain.User, event *domain.Event) {
	text := fmt.Sprintf(
		"*New catering request*\n\nEvent: %s\nCity: %s\nAttendees: %d\nEstimated food: %.2f kg",
		event.Name, event.Venue.City, event.Attendees, event.EstimatedFoodKg,
	)
	n.send(ctx, caterer.TelegramChatID, text)
}

func (n *TelegramNotifier) NotifyBookingResponded(ctx context.Context, organizer *domain.User, event *domain.Event, status domain.BookingStatus) {
	var text string
	switch status {
	case domain.BookingStatusAccepted:
		text = fmt.Sprintf("*Booking accepted!*\n\nEvent: %s\nYour caterer is confirmed.", event.Name)
	case domain.BookingStatusRejected:
		text = fmt.Sprintf("*Booking declined*\n\nEvent: %s\nThe caterer declined your request.", event.Name)
	default:
		return
	}
	n.send(ctx, organizer.TelegramChatID, text)
}

func (n *TelegramNotifier) NotifyBookingExpired(ctx context.Context, organizer *domain.User, event *domain.Event) {
	text := fmt.Sprintf(
		"*Booking request expired*\n\nEvent: %s\nThe caterer did not respond in time. Pick another caterer.",
		event.Name,
	)
	n.send(ctx, organizer.TelegramChatID, text)
}

func (n *TelegramNotifier) NotifySurplusAvailable(ctx context.Context, recipient *domain.User, event *domain.Event) {
	text := fmt.Sprintf(
		"*Surplus food available*\n\nEvent: %s\nQuantity: %.2f kg\nCity: %s",
		event.Name, event.SurplusKg(), event.Venue.City,
	)
	if event.SurplusPickup != nil {
		text += fmt.Sprintf("\nPickup: %s", event.SurplusPickup.Address)
	}
	n.send(ctx, recipient.TelegramChatID, text)
}

func (n *TelegramNotifier) send(ctx context.Context, chatID *int64, text string) {
	if n.bot == nil {
		n.logger.Debug("notification skipped (bot disabled)", logger.String("text", text))
		return
	}

	if chatID == nil {
		n.logger.Debug("notification skipped (no chat_id)", logger.String("text", text))
		return
	}

	if err := ctx.Err(); err != nil {
		n.logger.Debug("notification skipped (context cancelled)",
			logger.Int64("chat_id", *chatID),
		)
		return
	}

	msg := tgbotapi.NewMessage(*chatID, text)
	msg.ParseMode = "Markdown"

	if _, err := n.bot.Send(msg); err != nil {
		n.logger.Error("failed to send telegram notification",
			logger.Int64("chat_id", *chatID),
			logger.String("error", err.Error()),
		)
	}
}
