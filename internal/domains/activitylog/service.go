package activitylog

import (
	"context"

	"github.com/google/uuid"
)

// Service is the access layer the HTTP handlers talk to.
//
// Failure policy: backend errors are caught here, logged, and degrade to
// a benign result (empty slice, nil). They never propagate as a fault.
type Service interface {
	// FetchForCat returns one cat's history, newest first.
	// Degrades to an empty slice on failure.
	FetchForCat(ctx context.Context, catID uuid.UUID) []ActivityLog

	// FetchRecent returns the cross-cat feed joined with cat summaries.
	// Degrades to an empty slice on failure.
	FetchRecent(ctx context.Context, limit int) []LogWithCat

	// Add records an activity after sanitizing the free-text fields.
	// Returns nil on failure.
	Add(ctx context.Context, req *AddLogRequest) *ActivityLog
}
