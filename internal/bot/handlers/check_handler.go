package handlers

import (
	"context"

	"github.com/go-telegram/bot"
	"github.com/go-telegram/bot/models"

	"github.com/edgard/studybot/internal/progress"
)

// NewCheckHandler returns a handler for the /check command. Unlike the
// scheduled check it always answers, since the user asked.
func NewCheckHandler(deps HandlerDeps) bot.HandlerFunc {
	return checkHandler{deps}.Handle
}

type checkHandler struct {
	deps HandlerDeps
}

func (h checkHandler) Handle(ctx context.Context, b *bot.Bot, update *models.Update) {
	log := h.deps.Logger.With("handler", "check")

	if update.Message == nil {
		log.WarnContext(ctx, "Check handler received update with nil message", "update_id", update.ID)
		return
	}
	chatID := update.Message.Chat.ID

	log.InfoContext(ctx, "Handling /check command", "chat_id", chatID)

	status := h.deps.Study.Progress(ctx)

	var reply string
	switch {
	case !status.Found:
		reply = progressNotFoundMessage
	case len(status.Missing) == 0:
		reply = progressCompleteMessage
	default:
		reply = progress.AlertMessage(status.Missing)
	}

	if _, err := b.SendMessage(ctx, &bot.SendMessageParams{ChatID: chatID, Text: reply}); err != nil {
		log.ErrorContext(ctx, "Failed to send progress status", "error", err, "chat_id", chatID)
	}
}
