package service

import (
	"context"
	"errors"
	"sort"
	"testing"
	"time"

	"streetcats-backend/internal/domains/activitylog"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeRepository struct {
	logs []activitylog.ActivityLog
	fail error
}

func (f *fakeRepository) ListByCat(_ context.Context, catID uuid.UUID) ([]activitylog.ActivityLog, error) {
	if f.fail != nil {
		return nil, f.fail
	}
	out := make([]activitylog.ActivityLog, 0)
	for _, l := range f.logs {
		if l.CatID == catID {
			out = append(out, l)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].CreatedAt.After(out[j].CreatedAt) })
	return out, nil
}

func (f *fakeRepository) ListRecent(_ context.Context, limit int) ([]activitylog.LogWithCat, error) {
	if f.fail != nil {
		return nil, f.fail
	}
	if limit <= 0 {
		limit = 10
	}
	sorted := append([]activitylog.ActivityLog(nil), f.logs...)
	sort.Slice(sorted, func(i, j int) bool { return sorted[i].CreatedAt.After(sorted[j].CreatedAt) })

	out := make([]activitylog.LogWithCat, 0, limit)
	for _, l := range sorted {
		if len(out) == limit {
			break
		}
		out = append(out, activitylog.LogWithCat{
			ActivityLog: l,
			Cat:         activitylog.CatSummary{ID: l.CatID, Name: "Cat", Slug: "cat"},
		})
	}
	return out, nil
}

func (f *fakeRepository) Insert(_ context.Context, entity *activitylog.ActivityLog) (*activitylog.ActivityLog, error) {
	if f.fail != nil {
		return nil, f.fail
	}
	f.logs = append(f.logs, *entity)
	l := *entity
	return &l, nil
}

func TestAddStoresSanitizedLog(t *testing.T) {
	repo := &fakeRepository{}
	svc := NewActivityLogService(repo)

	catID := uuid.New()
	created := svc.Add(context.Background(), &activitylog.AddLogRequest{
		CatID:        catID,
		ActivityType: activitylog.ActivityFeeding,
		Notes:        "  dikasih wet food  ",
	})

	require.NotNil(t, created)
	assert.Equal(t, catID, created.CatID)
	assert.Equal(t, "Anonim", created.UserName)
	require.NotNil(t, created.Notes)
	assert.Equal(t, "dikasih wet food", *created.Notes)
}

func TestAddInvalidTypeReturnsNil(t *testing.T) {
	svc := NewActivityLogService(&fakeRepository{})

	created := svc.Add(context.Background(), &activitylog.AddLogRequest{
		CatID:        uuid.New(),
		ActivityType: activitylog.ActivityType("sleeping"),
	})

	assert.Nil(t, created)
}

func TestFetchForCatNewestFirst(t *testing.T) {
	catID := uuid.New()
	now := time.Now()
	repo := &fakeRepository{logs: []activitylog.ActivityLog{
		{ID: uuid.New(), CatID: catID, ActivityType: activitylog.ActivityFeeding, UserName: "A", CreatedAt: now.Add(-2 * time.Hour)},
		{ID: uuid.New(), CatID: catID, ActivityType: activitylog.ActivityGrooming, UserName: "B", CreatedAt: now},
		{ID: uuid.New(), CatID: uuid.New(), ActivityType: activitylog.ActivityOther, UserName: "C", CreatedAt: now},
	}}
	svc := NewActivityLogService(repo)

	logs := svc.FetchForCat(context.Background(), catID)
	require.Len(t, logs, 2)
	assert.Equal(t, activitylog.ActivityGrooming, logs[0].ActivityType)
}

func TestFetchForCatDegradesToEmpty(t *testing.T) {
	svc := NewActivityLogService(&fakeRepository{fail: errors.New("down")})

	logs := svc.FetchForCat(context.Background(), uuid.New())
	assert.NotNil(t, logs)
	assert.Empty(t, logs)
}

func TestFetchRecentHonorsLimit(t *testing.T) {
	repo := &fakeRepository{}
	for i := 0; i < 15; i++ {
		repo.logs = append(repo.logs, activitylog.ActivityLog{
			ID:           uuid.New(),
			CatID:        uuid.New(),
			ActivityType: activitylog.ActivityFeeding,
			UserName:     "X",
			CreatedAt:    time.Now().Add(-time.Duration(i) * time.Minute),
		})
	}
	svc := NewActivityLogService(repo)

	assert.Len(t, svc.FetchRecent(context.Background(), 5), 5)
	// Zero falls back to the default feed size.
	assert.Len(t, svc.FetchRecent(context.Background(), 0), 10)
}

func TestFetchRecentDegradesToEmpty(t *testing.T) {
	svc := NewActivityLogService(&fakeRepository{fail: errors.New("down")})

	entries := svc.FetchRecent(context.Background(), 5)
	assert.NotNil(t, entries)
	assert.Empty(t, entries)
}
