package note

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/magabrotheeeer/postit/internal/cache"
	"github.com/magabrotheeeer/postit/internal/config"
	"github.com/magabrotheeeer/postit/internal/models"
	"github.com/magabrotheeeer/postit/internal/storage/memory"
)

type CacheMock struct{ mock.Mock }

func (m *CacheMock) Get(ctx context.Context, key string, result any) (bool, error) {
	args := m.Called(ctx, key, result)
	return args.Bool(0), args.Error(1)
}

func (m *CacheMock) Set(ctx context.Context, key string, value any, expiration time.Duration) error {
	return m.Called(ctx, key, value, expiration).Error(0)
}

func (m *CacheMock) Invalidate(ctx context.Context, key string) error {
	return m.Called(ctx, key).Error(0)
}

func newNoopLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, &slog.HandlerOptions{}))
}

type fixture struct {
	svc   *Service
	store *memory.Storage
	alice *models.Identity
	bob   *models.Identity
}

func newFixture(t *testing.T, c Cache) fixture {
	t.Helper()
	store := memory.New()
	ctx := context.Background()

	a, err := store.CreateUser(ctx, models.User{Email: "a@x.com", Enabled: true})
	require.NoError(t, err)
	b, err := store.CreateUser(ctx, models.User{Email: "b@x.com", Enabled: true})
	require.NoError(t, err)

	return fixture{
		svc:   NewService(store, c, time.Hour, newNoopLogger()),
		store: store,
		alice: models.NewIdentity(*a),
		bob:   models.NewIdentity(*b),
	}
}

func TestService_RequireOwned(t *testing.T) {
	f := newFixture(t, cache.Noop{})
	ctx := context.Background()

	n, err := f.svc.Create(ctx, f.alice, "t", "c")
	require.NoError(t, err)

	got, err := f.svc.requireOwned(ctx, f.alice, n.ID)
	require.NoError(t, err)
	assert.Equal(t, *n, *got)

	_, err = f.svc.requireOwned(ctx, f.bob, n.ID)
	assert.ErrorIs(t, err, models.ErrNotAuthorized)
	assert.NotErrorIs(t, err, models.ErrNoteNotFound)

	_, err = f.svc.requireOwned(ctx, f.alice, n.ID+100)
	assert.ErrorIs(t, err, models.ErrNoteNotFound)
	assert.NotErrorIs(t, err, models.ErrNotAuthorized)
}

func TestService_CRUD(t *testing.T) {
	f := newFixture(t, cache.Noop{})
	ctx := context.Background()

	created, err := f.svc.Create(ctx, f.alice, "", "")
	require.NoError(t, err)
	assert.Equal(t, f.alice.User.ID, created.OwnerID)

	got, err := f.svc.Get(ctx, f.alice, created.ID)
	require.NoError(t, err)
	assert.Equal(t, "", got.Title)

	updated, err := f.svc.Update(ctx, f.alice, created.ID, "t2", "c2")
	require.NoError(t, err)
	assert.Equal(t, "t2", updated.Title)
	assert.Equal(t, "c2", updated.Content)
	assert.Equal(t, f.alice.User.ID, updated.OwnerID)

	require.NoError(t, f.svc.Delete(ctx, f.alice, created.ID))

	_, err = f.svc.Get(ctx, f.alice, created.ID)
	assert.ErrorIs(t, err, models.ErrNoteNotFound)
}

func TestService_ForeignUserCannotMutate(t *testing.T) {
	f := newFixture(t, cache.Noop{})
	ctx := context.Background()

	n, err := f.svc.Create(ctx, f.alice, "t", "c")
	require.NoError(t, err)

	_, err = f.svc.Update(ctx, f.bob, n.ID, "hacked", "hacked")
	assert.ErrorIs(t, err, models.ErrNotAuthorized)

	err = f.svc.Delete(ctx, f.bob, n.ID)
	assert.ErrorIs(t, err, models.ErrNotAuthorized)

	got, err := f.svc.Get(ctx, f.alice, n.ID)
	require.NoError(t, err)
	assert.Equal(t, "t", got.Title)
	assert.Equal(t, "c", got.Content)
}

func TestService_List(t *testing.T) {
	f := newFixture(t, cache.Noop{})
	ctx := context.Background()

	n1, err := f.svc.Create(ctx, f.alice, "1", "1")
	require.NoError(t, err)
	n2, err := f.svc.Create(ctx, f.alice, "2", "2")
	require.NoError(t, err)

	notes, err := f.svc.List(ctx, f.alice)
	require.NoError(t, err)
	require.Len(t, notes, 2)
	assert.Equal(t, n1.ID, notes[0].ID)
	assert.Equal(t, n2.ID, notes[1].ID)

	notes, err = f.svc.List(ctx, f.bob)
	require.NoError(t, err)
	assert.Empty(t, notes)
}

func TestService_WithRedisCache(t *testing.T) {
	mr, err := miniredis.Run()
	require.NoError(t, err)
	t.Cleanup(mr.Close)
	redisCache, err := cache.InitServer(context.Background(), config.RedisConnection{AddressRedis: mr.Addr()})
	require.NoError(t, err)

	f := newFixture(t, redisCache)
	ctx := context.Background()

	n, err := f.svc.Create(ctx, f.alice, "t", "c")
	require.NoError(t, err)
	assert.True(t, mr.Exists(cacheKey(n.ID)))

	// Кэш хранит владельца, поэтому проверка владельца работает и при попадании.
	_, err = f.svc.Get(ctx, f.bob, n.ID)
	assert.ErrorIs(t, err, models.ErrNotAuthorized)

	_, err = f.svc.Update(ctx, f.alice, n.ID, "t2", "c2")
	require.NoError(t, err)
	assert.False(t, mr.Exists(cacheKey(n.ID)))
	got, err := f.svc.Get(ctx, f.alice, n.ID)
	require.NoError(t, err)
	assert.Equal(t, "t2", got.Title)

	require.NoError(t, f.svc.Delete(ctx, f.alice, n.ID))
	assert.False(t, mr.Exists(cacheKey(n.ID)))
	_, err = f.svc.Get(ctx, f.alice, n.ID)
	assert.ErrorIs(t, err, models.ErrNoteNotFound)
}

func TestService_CacheFailureFallsBackToStore(t *testing.T) {
	c := new(CacheMock)
	f := newFixture(t, c)
	ctx := context.Background()

	stored, err := f.store.CreateNote(ctx, models.Note{Title: "t", Content: "c", OwnerID: f.alice.User.ID})
	require.NoError(t, err)

	c.On("Get", mock.Anything, cacheKey(stored.ID), mock.Anything).Return(false, errors.New("redis down"))
	c.On("Set", mock.Anything, cacheKey(stored.ID), mock.Anything, time.Hour).Return(errors.New("redis down"))

	got, err := f.svc.Get(ctx, f.alice, stored.ID)
	require.NoError(t, err)
	assert.Equal(t, "t", got.Title)
	c.AssertExpectations(t)
}

func TestService_UpdateRacingDelete(t *testing.T) {
	c := new(CacheMock)
	f := newFixture(t, c)
	ctx := context.Background()

	stale := models.Note{ID: 42, Title: "t", Content: "c", OwnerID: f.alice.User.ID}
	c.On("Get", mock.Anything, cacheKey(42), mock.Anything).Return(true, nil).Run(func(args mock.Arguments) {
		*args.Get(2).(*models.Note) = stale
	})
	c.On("Invalidate", mock.Anything, cacheKey(42)).Return(nil).Once()

	_, err := f.svc.Update(ctx, f.alice, 42, "t2", "c2")
	assert.ErrorIs(t, err, models.ErrNoteNotFound)
	c.AssertExpectations(t)
}

// interleavingRepo вызывает хуки внутри записи, имитируя параллельный запрос.
type interleavingRepo struct {
	*memory.Storage
	beforeDelete func()
	afterUpdate  func()
}

func (r *interleavingRepo) DeleteNote(ctx context.Context, id, ownerID int) error {
	if hook := r.beforeDelete; hook != nil {
		r.beforeDelete = nil
		hook()
	}
	return r.Storage.DeleteNote(ctx, id, ownerID)
}

func (r *interleavingRepo) UpdateNote(ctx context.Context, note models.Note) (*models.Note, error) {
	updated, err := r.Storage.UpdateNote(ctx, note)
	if hook := r.afterUpdate; hook != nil {
		r.afterUpdate = nil
		hook()
	}
	return updated, err
}

func newInterleavingFixture(t *testing.T) (*Service, *interleavingRepo, *models.Identity, *miniredis.Miniredis) {
	t.Helper()
	mr, err := miniredis.Run()
	require.NoError(t, err)
	t.Cleanup(mr.Close)
	redisCache, err := cache.InitServer(context.Background(), config.RedisConnection{AddressRedis: mr.Addr()})
	require.NoError(t, err)

	repo := &interleavingRepo{Storage: memory.New()}
	u, err := repo.CreateUser(context.Background(), models.User{Email: "a@x.com", Enabled: true})
	require.NoError(t, err)

	return NewService(repo, redisCache, time.Hour, newNoopLogger()), repo, models.NewIdentity(*u), mr
}

func TestService_DeleteWithConcurrentRead(t *testing.T) {
	svc, repo, alice, mr := newInterleavingFixture(t)
	ctx := context.Background()

	n, err := svc.Create(ctx, alice, "t", "c")
	require.NoError(t, err)

	repo.beforeDelete = func() {
		_, err := svc.Get(ctx, alice, n.ID)
		require.NoError(t, err)
	}
	require.NoError(t, svc.Delete(ctx, alice, n.ID))

	assert.False(t, mr.Exists(cacheKey(n.ID)))
	_, err = svc.Get(ctx, alice, n.ID)
	assert.ErrorIs(t, err, models.ErrNoteNotFound)
}

func TestService_UpdateWithConcurrentDelete(t *testing.T) {
	svc, repo, alice, mr := newInterleavingFixture(t)
	ctx := context.Background()

	n, err := svc.Create(ctx, alice, "t", "c")
	require.NoError(t, err)

	repo.afterUpdate = func() {
		require.NoError(t, svc.Delete(ctx, alice, n.ID))
	}
	_, err = svc.Update(ctx, alice, n.ID, "t2", "c2")
	require.NoError(t, err)

	assert.False(t, mr.Exists(cacheKey(n.ID)))
	_, err = svc.Get(ctx, alice, n.ID)
	assert.ErrorIs(t, err, models.ErrNoteNotFound)
}
