// Package study runs the read side of both flows: it fetches today's plan and
// progress records from Notion and turns them into digest or checklist results.
// Upstream failures are logged here and never returned.
package study

import (
	"context"
	"errors"
	"log/slog"
	"time"

	"github.com/edgard/studybot/internal/config"
	"github.com/edgard/studybot/internal/digest"
	"github.com/edgard/studybot/internal/notion"
	"github.com/edgard/studybot/internal/progress"
)

// Querier is the part of the Notion client the service needs.
type Querier interface {
	QueryDatabase(ctx context.Context, databaseID string, q notion.Query) (*notion.QueryResponse, error)
	QueryAll(ctx context.Context, databaseID string, q notion.Query) ([]notion.Page, error)
}

// ProgressStatus is the outcome of today's checklist evaluation.
type ProgressStatus struct {
	Found   bool
	Missing []string
}

// Service answers "what is planned today" and "what is still open today".
type Service struct {
	notion   Querier
	cfg      config.NotionConfig
	location *time.Location
	logger   *slog.Logger
	now      func() time.Time
}

// NewService creates a study service reading from the databases in cfg.
func NewService(q Querier, cfg *config.Config, logger *slog.Logger) *Service {
	if logger == nil {
		logger = slog.Default()
	}
	return &Service{
		notion:   q,
		cfg:      cfg.Notion,
		location: cfg.Location(),
		logger:   logger.With("component", "study_service"),
		now:      time.Now,
	}
}

// Today returns the current time in the configured time zone.
func (s *Service) Today() time.Time {
	return s.now().In(s.location)
}

// TasksForToday returns today's plan entries ordered by subject. Any upstream
// failure is logged and yields an empty result.
func (s *Service) TasksForToday(ctx context.Context) []notion.Page {
	day := s.Today()
	s.logger.InfoContext(ctx, "Scanning plan database", "date", day.Format(time.DateOnly))

	pages, err := s.notion.QueryAll(ctx, s.cfg.DatabaseID, notion.TasksForDay(day))
	if err != nil {
		s.logQueryError(ctx, "plan", err)
		return nil
	}

	s.logger.InfoContext(ctx, "Plan entries found", "count", len(pages))
	return pages
}

// DailyPlan fetches today's entries and formats the digest. The result is never empty.
func (s *Service) DailyPlan(ctx context.Context) string {
	pages := s.TasksForToday(ctx)
	return digest.Format(pages, s.Today(), s.logger)
}

// ProgressForToday returns today's progress entry, or nil when there is none
// or the query failed.
func (s *Service) ProgressForToday(ctx context.Context) *notion.Page {
	day := s.Today()
	s.logger.InfoContext(ctx, "Scanning progress database", "date", day.Format(time.DateOnly))

	resp, err := s.notion.QueryDatabase(ctx, s.cfg.ProgressDatabaseID, notion.ProgressForDay(day))
	if err != nil {
		s.logQueryError(ctx, "progress", err)
		return nil
	}
	if len(resp.Results) == 0 {
		return nil
	}
	return &resp.Results[0]
}

// Progress evaluates today's checklist.
func (s *Service) Progress(ctx context.Context) ProgressStatus {
	page := s.ProgressForToday(ctx)
	if page == nil {
		return ProgressStatus{}
	}
	return ProgressStatus{Found: true, Missing: progress.Evaluate(*page)}
}

func (s *Service) logQueryError(ctx context.Context, database string, err error) {
	var apiErr *notion.APIError
	if errors.As(err, &apiErr) {
		s.logger.ErrorContext(ctx, "Notion API did not answer successfully",
			"database", database,
			"status_code", apiErr.StatusCode,
			"body", apiErr.Body)
		return
	}
	s.logger.ErrorContext(ctx, "Notion query failed", "database", database, "error", err)
}
