// Package tasks implements the daily study flows as scheduled tasks.
// It includes task definitions, dependencies, and registration mechanisms.
package tasks

import (
	"context"
	"log/slog"

	"github.com/edgard/studybot/internal/config"
	"github.com/edgard/studybot/internal/study"
)

// Notifier delivers a message to the configured chat. It reports whether the
// message went out; failures are already logged by the implementation.
type Notifier interface {
	Send(ctx context.Context, text string, markdown bool) bool
}

// TaskDeps contains all dependencies required by scheduled tasks.
type TaskDeps struct {
	Logger   *slog.Logger
	Config   *config.Config
	Study    *study.Service
	Notifier Notifier
}
