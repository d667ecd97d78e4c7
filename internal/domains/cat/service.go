package cat

import (
	"context"

	"github.com/google/uuid"
)

// Service is the access layer the HTTP handlers talk to.
//
// Failure policy (all methods): backend errors are caught here, logged,
// surfaced as a message on the shared Store, and degrade to a benign
// result (nil, false, empty). They never propagate as a fault.
type Service interface {
	// FetchCats loads all active cats into the store, newest first.
	// On failure the existing store content is left untouched.
	// The loading flag is always cleared on exit.
	FetchCats(ctx context.Context)

	// AddCat inserts a new cat; on success it is prepended to the store.
	AddCat(ctx context.Context, req *CreateCatRequest) *Cat

	// UpdateCat applies a partial change set plus a fresh update timestamp
	// and replaces the matching store record.
	UpdateCat(ctx context.Context, id uuid.UUID, changes *Changes) *Cat

	// DeleteCat soft-deletes; reachable only through the privileged
	// endpoint. Removes the record from the store on success.
	DeleteCat(ctx context.Context, id uuid.UUID) bool

	// GetCatByID returns nil on any failure, including not-found.
	GetCatByID(ctx context.Context, id uuid.UUID) *Cat

	// Store exposes the shared list/filter/error/loading state.
	Store() *Store
}
