package handlers

import (
	tgbot "github.com/go-telegram/bot"
)

// RegisteredHandler represents a command handler with its middleware.
// It encapsulates all information needed to register a command.
type RegisteredHandler struct {
	HandlerType tgbot.HandlerType
	Pattern     string
	Handler     tgbot.HandlerFunc
	Middleware  []tgbot.Middleware
	MatchType   tgbot.MatchType
}

// RegisterAllCommands initializes and returns a map of all available bot commands.
// Every command is limited to the configured chat.
func RegisterAllCommands(deps HandlerDeps) map[string]RegisteredHandler {
	chatOnly := []tgbot.Middleware{ConfiguredChatOnly(deps)}

	return map[string]RegisteredHandler{
		"/start": {
			HandlerType: tgbot.HandlerTypeMessageText,
			Pattern:     "start",
			Handler:     NewStartHandler(deps),
			MatchType:   tgbot.MatchTypeCommandStartOnly,
			Middleware:  chatOnly,
		},
		"/plan": {
			HandlerType: tgbot.HandlerTypeMessageText,
			Pattern:     "plan",
			Handler:     NewPlanHandler(deps),
			MatchType:   tgbot.MatchTypeCommandStartOnly,
			Middleware:  chatOnly,
		},
		"/check": {
			HandlerType: tgbot.HandlerTypeMessageText,
			Pattern:     "check",
			Handler:     NewCheckHandler(deps),
			MatchType:   tgbot.MatchTypeCommandStartOnly,
			Middleware:  chatOnly,
		},
	}
}
