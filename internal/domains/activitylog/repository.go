package activitylog

import (
	"context"

	"github.com/google/uuid"
)

// Repository is the data access contract for activity logs.
type Repository interface {
	// ListByCat returns all logs for one cat, newest first.
	ListByCat(ctx context.Context, catID uuid.UUID) ([]ActivityLog, error)

	// ListRecent returns the latest logs across all cats, newest first,
	// each joined with its cat summary. limit <= 0 falls back to the
	// default feed size.
	ListRecent(ctx context.Context, limit int) ([]LogWithCat, error)

	// Insert persists a new log and returns the stored record.
	Insert(ctx context.Context, entity *ActivityLog) (*ActivityLog, error)
}
