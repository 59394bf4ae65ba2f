package tasks

import (
	"context"

	"github.com/edgard/studybot/internal/config"
)

// ScheduledTaskFunc defines the standard signature for all scheduled tasks.
// The context provided by the scheduler should be respected for cancellation.
type ScheduledTaskFunc func(ctx context.Context) error

// RegisterAllTasks initializes and returns a map of all registered tasks.
// The keys match the task names used in the scheduler configuration and by
// the one-shot commands.
func RegisterAllTasks(deps TaskDeps) map[string]ScheduledTaskFunc {
	tasks := map[string]ScheduledTaskFunc{
		config.TaskDailyPlan:     newDailyPlanTask(deps),
		config.TaskProgressCheck: newProgressCheckTask(deps),
	}

	deps.Logger.Debug("Initialized tasks", "count", len(tasks))
	return tasks
}
