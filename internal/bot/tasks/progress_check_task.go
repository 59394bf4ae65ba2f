package tasks

import (
	"context"
	"time"

	"github.com/edgard/studybot/internal/config"
	"github.com/edgard/studybot/internal/progress"
)

// newProgressCheckTask reads today's checklist and sends an alert only when
// some items are still open. A missing record is a rest day, not an error.
func newProgressCheckTask(deps TaskDeps) ScheduledTaskFunc {
	log := deps.Logger.With("task", config.TaskProgressCheck)

	return func(ctx context.Context) error {
		log.InfoContext(ctx, "Starting progress check task...")
		startTime := time.Now()

		status := deps.Study.Progress(ctx)
		switch {
		case !status.Found:
			log.InfoContext(ctx, "No progress record for today, possibly a rest day")
		case len(status.Missing) == 0:
			log.InfoContext(ctx, "All daily goals completed")
		default:
			log.InfoContext(ctx, "Daily goals incomplete, sending alert", "missing", status.Missing)
			delivered := deps.Notifier.Send(ctx, progress.AlertMessage(status.Missing), false)
			log.InfoContext(ctx, "Progress alert processed", "delivered", delivered)
		}

		log.InfoContext(ctx, "Progress check task finished", "duration", time.Since(startTime))
		return nil
	}
}
