// Package handlers contains the Telegram command handlers of the listener,
// along with their registration logic and middleware.
package handlers

import (
	"log/slog"

	"github.com/edgard/studybot/internal/config"
	"github.com/edgard/studybot/internal/study"
)

// HandlerDeps provides dependencies for Telegram command handlers.
type HandlerDeps struct {
	Logger *slog.Logger
	Config *config.Config
	Study  *study.Service
}

// Replies used by the command handlers.
const (
	helpMessage = "👋 KPSS çalışma asistanı hazır.\n\n" +
		"/plan - Bugünün çalışma planı\n" +
		"/check - Bugünün hedef kontrolü"
	progressNotFoundMessage = "📭 Bugün için ilerleme kaydı bulunamadı. Dinlenme günü mü?"
	progressCompleteMessage = "✅ Bugünün tüm hedefleri tamamlandı. Harika iş!"
)
