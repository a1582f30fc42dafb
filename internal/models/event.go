package models

import (
	"time"
)

type Visibility string

const (
	VisibilityPublic         Visibility = "public"
	VisibilityPrivate        Visibility = "private"
	VisibilityUniversityOnly Visibility = "university-only"
)

// Field bounds shared by the validator tags, the sync mapper and the schema.
const (
	MaxNameLength        = 200
	MaxDescriptionLength = 5000
	MaxLocationLength    = 255
	MaxLinkLength        = 2048
)

func (v Visibility) Valid() bool {
	switch v {
	case VisibilityPublic, VisibilityPrivate, VisibilityUniversityOnly:
		return true
	}
	return false
}

type Event struct {
	ID          int64      `json:"id" db:"id"`
	Name        string     `json:"name" db:"name"`
	Date        time.Time  `json:"date" db:"date"`
	Description string     `json:"description" db:"description"`
	Visibility  Visibility `json:"visibility" db:"visibility"`
	Location    string     `json:"location" db:"location"`
	Link        string     `json:"link" db:"link"`
	ExternalID  *string    `json:"external_id,omitempty" db:"external_id"`
	CreatedAt   time.Time  `json:"created_at" db:"created_at"`
	UpdatedAt   time.Time  `json:"updated_at" db:"updated_at"`
}

// EventFields is everything a caller may set on an event. The store owns the
// identifier and timestamps.
type EventFields struct {
	Name        string     `validate:"required,max=200"`
	Date        time.Time  `validate:"required"`
	Description string     `validate:"max=5000"`
	Visibility  Visibility `validate:"required,oneof=public private university-only"`
	Location    string     `validate:"max=255"`
	Link        string     `validate:"omitempty,http_url,max=2048"`
}

// EventFilter is a conjunction of optional predicates. Start and End are
// either both set or both nil.
type EventFilter struct {
	Start       *time.Time
	End         *time.Time
	Visibility  Visibility
	TrackedOnly bool
}
