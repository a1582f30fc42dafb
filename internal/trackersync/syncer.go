// Package trackersync reconciles Jira issues into the event store.
package trackersync

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"campusEvents/internal/lib/logger/sl"
	"campusEvents/internal/models"
	"campusEvents/internal/tracker/jira"
)

//go:generate go run github.com/vektra/mockery/v2@v2.51.1 --name=Tracker
type Tracker interface {
	Myself(ctx context.Context) (json.RawMessage, error)
	SearchIssues(ctx context.Context) ([]jira.Issue, error)
	IssueURL(key string) string
}

//go:generate go run github.com/vektra/mockery/v2@v2.51.1 --name=EventUpserter
type EventUpserter interface {
	UpsertEventByExternalID(ctx context.Context, externalID string, fields models.EventFields) (int64, bool, error)
}

// Recorder receives sync outcomes, typically metrics.
type Recorder interface {
	SyncFinished(result string)
	IssueSynced(outcome string)
}

type Summary struct {
	Fetched int `json:"fetched"`
	Created int `json:"created"`
	Updated int `json:"updated"`
	Failed  int `json:"failed"`
}

func (s Summary) Synced() int {
	return s.Created + s.Updated
}

type Syncer struct {
	log      *slog.Logger
	tracker  Tracker
	events   EventUpserter
	mapping  Mapping
	recorder Recorder
	now      func() time.Time
}

type Option func(*Syncer)

func WithRecorder(r Recorder) Option {
	return func(s *Syncer) {
		s.recorder = r
	}
}

func WithClock(now func() time.Time) Option {
	return func(s *Syncer) {
		s.now = now
	}
}

func New(log *slog.Logger, tracker Tracker, events EventUpserter, mapping Mapping, opts ...Option) *Syncer {
	s := &Syncer{
		log:     log.With(slog.String("component", "trackersync")),
		tracker: tracker,
		events:  events,
		mapping: mapping,
		now:     time.Now,
	}

	for _, opt := range opts {
		opt(s)
	}

	return s
}

// Run pulls one page of issues and upserts each as an event keyed by the
// issue id. Nothing is written unless the whole page was fetched. Store
// failures of single issues do not stop the batch, they are returned joined
// together with the summary of what was done.
func (s *Syncer) Run(ctx context.Context) (Summary, error) {
	const op = "trackersync.Run"

	log := s.log.With(slog.String("op", op))

	if _, err := s.tracker.Myself(ctx); err != nil {
		s.finished("error")
		return Summary{}, fmt.Errorf("%s: connectivity check failed: %w", op, err)
	}

	issues, err := s.tracker.SearchIssues(ctx)
	if err != nil {
		s.finished("error")
		return Summary{}, fmt.Errorf("%s: failed to fetch issues: %w", op, err)
	}

	summary := Summary{Fetched: len(issues)}
	now := s.now()

	var errs []error
	for _, issue := range issues {
		if err = ctx.Err(); err != nil {
			errs = append(errs, err)
			break
		}

		fields, defaulted := mapIssue(issue, s.mapping, s.tracker.IssueURL(issue.Key), now)
		if len(defaulted) > 0 {
			log.Warn("issue fields defaulted",
				slog.String("issue", issue.Key),
				slog.Any("fields", defaulted),
			)
		}

		id, created, err := s.events.UpsertEventByExternalID(ctx, issue.ID, fields)
		if err != nil {
			log.Error("failed to upsert issue", slog.String("issue", issue.Key), sl.Err(err))
			summary.Failed++
			s.issueSynced("failed")
			errs = append(errs, fmt.Errorf("issue %s: %w", issue.Key, err))
			continue
		}

		if created {
			summary.Created++
			s.issueSynced("created")
		} else {
			summary.Updated++
			s.issueSynced("updated")
		}

		log.Debug("issue synced",
			slog.String("issue", issue.Key),
			slog.Int64("event_id", id),
			slog.Bool("created", created),
		)
	}

	if len(errs) > 0 {
		s.finished("partial")
		return summary, fmt.Errorf("%s: %w", op, errors.Join(errs...))
	}

	s.finished("ok")

	log.Info("sync finished",
		slog.Int("fetched", summary.Fetched),
		slog.Int("created", summary.Created),
		slog.Int("updated", summary.Updated),
	)

	return summary, nil
}

func (s *Syncer) finished(result string) {
	if s.recorder != nil {
		s.recorder.SyncFinished(result)
	}
}

func (s *Syncer) issueSynced(outcome string) {
	if s.recorder != nil {
		s.recorder.IssueSynced(outcome)
	}
}
