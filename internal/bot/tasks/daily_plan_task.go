package tasks

import (
	"context"
	"time"

	"github.com/edgard/studybot/internal/config"
)

// newDailyPlanTask fetches today's plan, formats the digest and sends it with
// Markdown rendering. A failed query still sends the "no work" digest.
func newDailyPlanTask(deps TaskDeps) ScheduledTaskFunc {
	log := deps.Logger.With("task", config.TaskDailyPlan)

	return func(ctx context.Context) error {
		log.InfoContext(ctx, "Starting daily plan task...")
		startTime := time.Now()

		message := deps.Study.DailyPlan(ctx)
		delivered := deps.Notifier.Send(ctx, message, true)

		log.InfoContext(ctx, "Daily plan task finished",
			"delivered", delivered,
			"duration", time.Since(startTime))
		return nil
	}
}
