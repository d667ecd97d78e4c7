package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"streetcats-backend/internal/domains/cat"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fakeRepository keeps cats in memory and can be switched into a failing
// mode to exercise the degrade paths.
type fakeRepository struct {
	cats []cat.Cat
	fail error
}

func (f *fakeRepository) ListActive(_ context.Context) ([]cat.Cat, error) {
	if f.fail != nil {
		return nil, f.fail
	}
	out := make([]cat.Cat, 0, len(f.cats))
	for _, c := range f.cats {
		if c.IsActive {
			out = append(out, c)
		}
	}
	return out, nil
}

func (f *fakeRepository) GetByID(_ context.Context, id uuid.UUID) (*cat.Cat, error) {
	if f.fail != nil {
		return nil, f.fail
	}
	for i := range f.cats {
		if f.cats[i].ID == id {
			c := f.cats[i]
			return &c, nil
		}
	}
	return nil, cat.ErrCatNotFound
}

func (f *fakeRepository) Insert(_ context.Context, entity *cat.Cat) (*cat.Cat, error) {
	if f.fail != nil {
		return nil, f.fail
	}
	f.cats = append(f.cats, *entity)
	c := *entity
	return &c, nil
}

func (f *fakeRepository) Update(_ context.Context, id uuid.UUID, changes *cat.Changes) (*cat.Cat, error) {
	if f.fail != nil {
		return nil, f.fail
	}
	for i := range f.cats {
		if f.cats[i].ID == id {
			f.cats[i] = changes.ApplyTo(f.cats[i])
			c := f.cats[i]
			return &c, nil
		}
	}
	return nil, cat.ErrCatNotFound
}

func (f *fakeRepository) SoftDelete(_ context.Context, id uuid.UUID) error {
	if f.fail != nil {
		return f.fail
	}
	for i := range f.cats {
		if f.cats[i].ID == id {
			f.cats[i].IsActive = false
			f.cats[i].UpdatedAt = time.Now()
			return nil
		}
	}
	return cat.ErrCatNotFound
}

func newTestService(repo *fakeRepository) (cat.Service, *cat.Store) {
	store := cat.NewStore()
	return NewCatService(repo, store), store
}

func TestAddCatThenGetRoundTrip(t *testing.T) {
	svc, store := newTestService(&fakeRepository{})

	created := svc.AddCat(context.Background(), &cat.CreateCatRequest{
		Name:      "Tom",
		Latitude:  -6.2,
		Longitude: 106.8,
	})
	require.NotNil(t, created)
	assert.True(t, created.IsActive)
	assert.Equal(t, cat.HealthSehat, created.HealthStatus)

	// The new cat leads the store.
	all := store.All()
	require.Len(t, all, 1)
	assert.Equal(t, created.ID, all[0].ID)

	found := svc.GetCatByID(context.Background(), created.ID)
	require.NotNil(t, found)
	assert.Equal(t, "Tom", found.Name)
}

func TestFetchCatsPopulatesStoreNewestFirstSurvives(t *testing.T) {
	existing := cat.Cat{ID: uuid.New(), Name: "Existing", HealthStatus: cat.HealthSehat, IsActive: true}
	repo := &fakeRepository{cats: []cat.Cat{existing}}
	svc, store := newTestService(repo)

	svc.FetchCats(context.Background())

	assert.False(t, store.Loading())
	assert.Empty(t, store.Err())
	require.Len(t, store.All(), 1)
	assert.Equal(t, existing.ID, store.All()[0].ID)
}

func TestFetchCatsFailureLeavesStoreAndClearsLoading(t *testing.T) {
	repo := &fakeRepository{}
	svc, store := newTestService(repo)

	seeded := cat.Cat{ID: uuid.New(), Name: "Seeded", IsActive: true}
	store.SetAll([]cat.Cat{seeded})

	repo.fail = errors.New("connection refused")
	svc.FetchCats(context.Background())

	assert.False(t, store.Loading(), "loading must clear even on failure")
	assert.NotEmpty(t, store.Err())
	require.Len(t, store.All(), 1, "a failed fetch must not clobber the list")
	assert.Equal(t, seeded.ID, store.All()[0].ID)
}

func TestUpdateCatRefreshesUpdatedAt(t *testing.T) {
	repo := &fakeRepository{}
	svc, _ := newTestService(repo)

	created := svc.AddCat(context.Background(), &cat.CreateCatRequest{
		Name: "Oyen", Latitude: 1, Longitude: 1,
	})
	require.NotNil(t, created)

	before := created.UpdatedAt
	time.Sleep(5 * time.Millisecond)

	health := cat.HealthSakit
	updated := svc.UpdateCat(context.Background(), created.ID, &cat.Changes{HealthStatus: &health})
	require.NotNil(t, updated)

	assert.Equal(t, cat.HealthSakit, updated.HealthStatus)
	assert.True(t, updated.UpdatedAt.After(before), "updated_at must move forward on every mutation")
	assert.Equal(t, created.CreatedAt, updated.CreatedAt, "created_at never changes")
}

func TestUpdateCatInvalidEnumDegradesToNil(t *testing.T) {
	svc, store := newTestService(&fakeRepository{})

	bad := cat.HealthStatus("undead")
	updated := svc.UpdateCat(context.Background(), uuid.New(), &cat.Changes{HealthStatus: &bad})

	assert.Nil(t, updated)
	assert.NotEmpty(t, store.Err())
}

func TestDeleteCatRemovesFromStore(t *testing.T) {
	svc, store := newTestService(&fakeRepository{})

	created := svc.AddCat(context.Background(), &cat.CreateCatRequest{
		Name: "Spike", Latitude: 1, Longitude: 1,
	})
	require.NotNil(t, created)

	ok := svc.DeleteCat(context.Background(), created.ID)
	assert.True(t, ok)
	assert.Empty(t, store.All())

	// Soft deleted cats no longer show up in fetches.
	svc.FetchCats(context.Background())
	assert.Empty(t, store.All())
}

func TestDeleteCatFailureReturnsFalse(t *testing.T) {
	repo := &fakeRepository{fail: errors.New("boom")}
	svc, store := newTestService(repo)

	assert.False(t, svc.DeleteCat(context.Background(), uuid.New()))
	assert.NotEmpty(t, store.Err())
}

func TestGetCatByIDDegradesToNil(t *testing.T) {
	svc, _ := newTestService(&fakeRepository{})
	assert.Nil(t, svc.GetCatByID(context.Background(), uuid.New()))
}
