package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"campusEvents/internal/models"
	"campusEvents/internal/storage"

	"github.com/jmoiron/sqlx"
	"github.com/lib/pq"
)

// MaxResults is the hard upper bound of a single listing.
const MaxResults = 100

const eventColumns = `id, name, date, description, visibility, location, link, external_id, created_at, updated_at`

type Storage struct {
	db        *sqlx.DB
	resultCap int
}

// New connects to the database at storageURL. resultCap bounds every listing
// and is clamped to MaxResults.
func New(ctx context.Context, storageURL string, resultCap int) (*Storage, error) {
	const op = "storage.postgres.New"

	db, err := sqlx.ConnectContext(ctx, "postgres", storageURL)
	if err != nil {
		return nil, fmt.Errorf("%s: failed to connect to the database: %w", op, err)
	}

	if resultCap <= 0 || resultCap > MaxResults {
		resultCap = MaxResults
	}

	return &Storage{db: db, resultCap: resultCap}, nil
}

func (s *Storage) Close() error {
	return s.db.Close()
}

func (s *Storage) Ping(ctx context.Context) error {
	return s.db.PingContext(ctx)
}

func (s *Storage) CreateEvent(ctx context.Context, fields models.EventFields) (int64, error) {
	const op = "storage.postgres.CreateEvent"

	if err := fields.Validate(); err != nil {
		return 0, fmt.Errorf("%s: %w", op, err)
	}

	query := `
		INSERT INTO events (name, date, description, visibility, location, link)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING id`

	var id int64
	err := s.db.QueryRowxContext(ctx, query,
		fields.Name,
		fields.Date.UTC(),
		fields.Description,
		fields.Visibility,
		fields.Location,
		fields.Link,
	).Scan(&id)
	if err != nil {
		return 0, fmt.Errorf("%s: failed to create event: %w", op, mapConstraintError(err))
	}

	return id, nil
}

// UpsertEventByExternalID inserts an event keyed by a tracker issue id, or
// overwrites the mutable fields of the event already holding that id. The
// single statement keeps concurrent upserts of one key from duplicating it.
func (s *Storage) UpsertEventByExternalID(ctx context.Context, externalID string, fields models.EventFields) (int64, bool, error) {
	const op = "storage.postgres.UpsertEventByExternalID"

	if externalID == "" {
		return 0, false, fmt.Errorf("%s: %w", op, models.NewValidationError("ExternalID", "is a required field"))
	}

	if err := fields.Validate(); err != nil {
		return 0, false, fmt.Errorf("%s: %w", op, err)
	}

	query := `
		INSERT INTO events (name, date, description, visibility, location, link, external_id)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
		ON CONFLICT (external_id) DO UPDATE SET
			name        = EXCLUDED.name,
			date        = EXCLUDED.date,
			description = EXCLUDED.description,
			visibility  = EXCLUDED.visibility,
			location    = EXCLUDED.location,
			link        = EXCLUDED.link,
			updated_at  = NOW()
		RETURNING id, (xmax = 0) AS inserted`

	var (
		id       int64
		inserted bool
	)
	err := s.db.QueryRowxContext(ctx, query,
		fields.Name,
		fields.Date.UTC(),
		fields.Description,
		fields.Visibility,
		fields.Location,
		fields.Link,
		externalID,
	).Scan(&id, &inserted)
	if err != nil {
		return 0, false, fmt.Errorf("%s: failed to upsert event: %w", op, mapConstraintError(err))
	}

	return id, inserted, nil
}

func (s *Storage) Event(ctx context.Context, id int64) (models.Event, error) {
	const op = "storage.postgres.Event"

	query := `SELECT ` + eventColumns + ` FROM events WHERE id = $1`

	var event models.Event
	err := s.db.GetContext(ctx, &event, query, id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return models.Event{}, fmt.Errorf("%s: %w", op, storage.ErrEventNotFound)
		}
		return models.Event{}, fmt.Errorf("%s: failed to get event: %w", op, err)
	}

	normalize(&event)

	return event, nil
}

// Events lists the events matching filter, earliest first, at most resultCap.
func (s *Storage) Events(ctx context.Context, filter models.EventFilter) ([]models.Event, error) {
	const op = "storage.postgres.Events"

	where, args := buildWhere(filter)

	query := `SELECT ` + eventColumns + ` FROM events` + where +
		fmt.Sprintf(` ORDER BY date ASC, id ASC LIMIT $%d`, len(args)+1)
	args = append(args, s.resultCap)

	events := make([]models.Event, 0)
	if err := s.db.SelectContext(ctx, &events, query, args...); err != nil {
		return nil, fmt.Errorf("%s: failed to get events: %w", op, err)
	}

	for i := range events {
		normalize(&events[i])
	}

	return events, nil
}

func normalize(e *models.Event) {
	e.Date = e.Date.UTC()
	e.CreatedAt = e.CreatedAt.UTC()
	e.UpdatedAt = e.UpdatedAt.UTC()
}

// mapConstraintError turns schema CHECK violations into validation errors so
// callers see the same taxonomy whichever layer caught the bad input.
func mapConstraintError(err error) error {
	var pqErr *pq.Error
	if errors.As(err, &pqErr) && pqErr.Code.Name() == "check_violation" {
		return models.NewValidationError("event", fmt.Sprintf("violates constraint %s", pqErr.Constraint))
	}
	return err
}
