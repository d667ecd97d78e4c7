package activitylog

import (
	"time"

	"github.com/google/uuid"
)

// ActivityType classifies what was done for a cat.
type ActivityType string

const (
	ActivityFeeding     ActivityType = "feeding"
	ActivityHealthCheck ActivityType = "health_check"
	ActivityGrooming    ActivityType = "grooming"
	ActivityOther       ActivityType = "other"
)

func (t ActivityType) IsValid() bool {
	switch t {
	case ActivityFeeding, ActivityHealthCheck, ActivityGrooming, ActivityOther:
		return true
	}
	return false
}

// ActivityLog is one care record for a cat.
type ActivityLog struct {
	ID           uuid.UUID    `json:"id" db:"id"`
	CatID        uuid.UUID    `json:"cat_id" db:"cat_id"`
	ActivityType ActivityType `json:"activity_type" db:"activity_type"`
	Notes        *string      `json:"notes" db:"notes"`
	UserName     string       `json:"user_name" db:"user_name"`
	CreatedAt    time.Time    `json:"created_at" db:"created_at"`
}

// CatSummary carries just enough of the cat to render a feed row.
type CatSummary struct {
	ID           uuid.UUID `json:"id" db:"id"`
	Name         string    `json:"name" db:"name"`
	Slug         string    `json:"slug" db:"slug"`
	ThumbnailURL *string   `json:"thumbnail_url" db:"thumbnail_url"`
}

// LogWithCat is a feed entry: the log joined with its cat.
type LogWithCat struct {
	ActivityLog
	Cat CatSummary `json:"cat"`
}
