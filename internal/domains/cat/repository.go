package cat

import (
	"context"

	"github.com/google/uuid"
)

// Repository is the data access contract for cats.
type Repository interface {
	// ListActive returns active cats ordered by created_at descending.
	ListActive(ctx context.Context) ([]Cat, error)

	// GetByID is a point lookup; it does not filter on is_active.
	// Returns ErrCatNotFound when no row matches.
	GetByID(ctx context.Context, id uuid.UUID) (*Cat, error)

	// Insert persists a new cat and returns the stored record.
	Insert(ctx context.Context, entity *Cat) (*Cat, error)

	// Update applies a partial change set and returns the updated record.
	// Returns ErrCatNotFound when no row matches.
	Update(ctx context.Context, id uuid.UUID, changes *Changes) (*Cat, error)

	// SoftDelete flips is_active to false and refreshes updated_at.
	// Only the privileged path may call this.
	SoftDelete(ctx context.Context, id uuid.UUID) error
}
