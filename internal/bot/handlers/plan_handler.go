package handlers

import (
	"context"

	"github.com/go-telegram/bot"
	"github.com/go-telegram/bot/models"
)

// NewPlanHandler returns a handler for the /plan command, which replies with
// today's digest.
func NewPlanHandler(deps HandlerDeps) bot.HandlerFunc {
	return planHandler{deps}.Handle
}

type planHandler struct {
	deps HandlerDeps
}

func (h planHandler) Handle(ctx context.Context, b *bot.Bot, update *models.Update) {
	log := h.deps.Logger.With("handler", "plan")

	if update.Message == nil {
		log.WarnContext(ctx, "Plan handler received update with nil message", "update_id", update.ID)
		return
	}
	chatID := update.Message.Chat.ID

	log.InfoContext(ctx, "Handling /plan command", "chat_id", chatID)

	text := h.deps.Study.DailyPlan(ctx)
	_, err := b.SendMessage(ctx, &bot.SendMessageParams{
		ChatID:    chatID,
		Text:      text,
		ParseMode: models.ParseModeMarkdownV1,
	})
	if err != nil {
		log.ErrorContext(ctx, "Failed to send daily plan", "error", err, "chat_id", chatID)
	}
}
