package handlers

import (
	"context"
	"strconv"

	tgbot "github.com/go-telegram/bot"
	"github.com/go-telegram/bot/models"
)

// ConfiguredChatOnly drops updates that do not come from the configured chat.
// The chat may be configured by numeric ID or by "@username".
func ConfiguredChatOnly(deps HandlerDeps) tgbot.Middleware {
	return func(next tgbot.HandlerFunc) tgbot.HandlerFunc {
		return func(ctx context.Context, bot *tgbot.Bot, update *models.Update) {
			if update.Message == nil {
				return
			}

			if !isConfiguredChat(deps.Config.Telegram.ChatID, update.Message.Chat) {
				deps.Logger.With("middleware", "ConfiguredChatOnly").WarnContext(ctx,
					"Ignoring command from unknown chat", "chat_id", update.Message.Chat.ID)
				return
			}

			next(ctx, bot, update)
		}
	}
}

func isConfiguredChat(configured string, chat models.Chat) bool {
	if configured == "" {
		return false
	}
	if configured == strconv.FormatInt(chat.ID, 10) {
		return true
	}
	return chat.Username != "" && configured == "@"+chat.Username
}
