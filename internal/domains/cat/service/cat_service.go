package service

import (
	"context"
	"time"

	"streetcats-backend/internal/domains/cat"
	"streetcats-backend/pkg/logger"

	"github.com/google/uuid"
)

type catService struct {
	repo  cat.Repository
	store *cat.Store
}

// NewCatService wires the access layer around one shared store instance.
func NewCatService(repo cat.Repository, store *cat.Store) cat.Service {
	return &catService{
		repo:  repo,
		store: store,
	}
}

func (s *catService) Store() *cat.Store {
	return s.store
}

// FetchCats loads all active cats, newest first, into the store.
func (s *catService) FetchCats(ctx context.Context) {
	s.store.SetLoading(true)
	s.store.ClearError()
	// Loading always clears, success or failure.
	defer s.store.SetLoading(false)

	cats, err := s.repo.ListActive(ctx)
	if err != nil {
		logger.Error("fetch cats failed", err)
		// Existing list stays untouched on failure.
		s.store.SetError(err.Error())
		return
	}

	s.store.SetAll(cats)
}

func (s *catService) AddCat(ctx context.Context, req *cat.CreateCatRequest) *cat.Cat {
	entity, err := cat.NewCat(req)
	if err != nil {
		logger.Error("add cat: invalid input", err)
		s.store.SetError(err.Error())
		return nil
	}

	created, err := s.repo.Insert(ctx, entity)
	if err != nil {
		logger.Error("add cat failed", err)
		s.store.SetError(err.Error())
		return nil
	}

	s.store.Prepend(*created)
	return created
}

func (s *catService) UpdateCat(ctx context.Context, id uuid.UUID, changes *cat.Changes) *cat.Cat {
	if err := changes.Validate(); err != nil {
		logger.Error("update cat: invalid input", err)
		s.store.SetError(err.Error())
		return nil
	}

	// Every mutation refreshes updated_at.
	changes.UpdatedAt = time.Now()

	updated, err := s.repo.Update(ctx, id, changes)
	if err != nil {
		logger.Error("update cat failed", err)
		s.store.SetError(err.Error())
		return nil
	}

	s.store.Replace(*updated)
	return updated
}

func (s *catService) DeleteCat(ctx context.Context, id uuid.UUID) bool {
	if err := s.repo.SoftDelete(ctx, id); err != nil {
		logger.Error("delete cat failed", err)
		s.store.SetError(err.Error())
		return false
	}

	s.store.Remove(id)
	return true
}

func (s *catService) GetCatByID(ctx context.Context, id uuid.UUID) *cat.Cat {
	found, err := s.repo.GetByID(ctx, id)
	if err != nil {
		// Point lookups degrade to nil on any failure, not-found included.
		logger.Warn("get cat by id failed", err)
		return nil
	}
	return found
}
