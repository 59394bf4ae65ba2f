package telegram

import (
	"context"
	"errors"
	"log/slog"
	"net/http"

	"github.com/go-telegram/bot"
	"github.com/go-telegram/bot/models"
)

// Notifier delivers messages to one fixed chat. Delivery is best effort:
// failures are logged and reported as false, never returned as errors.
type Notifier struct {
	bot    *bot.Bot
	chatID string
	logger *slog.Logger
}

// NewNotifier creates a notifier for chatID. A nil bot is accepted and makes
// every Send fail with a log entry, so a broken Telegram setup never stops a run.
func NewNotifier(b *bot.Bot, chatID string, logger *slog.Logger) *Notifier {
	if logger == nil {
		logger = slog.Default()
	}
	return &Notifier{
		bot:    b,
		chatID: chatID,
		logger: logger.With("component", "notifier"),
	}
}

// Send posts text to the chat, rendering legacy Markdown when markdown is set.
func (n *Notifier) Send(ctx context.Context, text string, markdown bool) bool {
	if n.bot == nil {
		n.logger.ErrorContext(ctx, "Telegram bot unavailable, message not sent", "chat_id", n.chatID)
		return false
	}

	params := &bot.SendMessageParams{
		ChatID: n.chatID,
		Text:   text,
	}
	if markdown {
		params.ParseMode = models.ParseModeMarkdownV1
	}

	msg, err := n.bot.SendMessage(ctx, params)
	if err != nil {
		n.logger.ErrorContext(ctx, "Telegram message not delivered",
			"chat_id", n.chatID,
			"status_code", statusCode(err),
			"error", err)
		return false
	}

	n.logger.InfoContext(ctx, "Telegram message delivered", "chat_id", n.chatID, "message_id", msg.ID)
	return true
}

// statusCode recovers the HTTP status class of a Bot API error, or 0 when the
// request never got an API answer.
func statusCode(err error) int {
	switch {
	case errors.Is(err, bot.ErrorBadRequest):
		return http.StatusBadRequest
	case errors.Is(err, bot.ErrorUnauthorized):
		return http.StatusUnauthorized
	case errors.Is(err, bot.ErrorForbidden):
		return http.StatusForbidden
	case errors.Is(err, bot.ErrorNotFound):
		return http.StatusNotFound
	default:
		return 0
	}
}
