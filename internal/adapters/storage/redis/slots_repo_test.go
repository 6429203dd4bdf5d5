package redis

import (
	"context"
	"testing"
	"time"

	"rescue-dog-favorites/internal/domain/favorites"

	"github.com/alicebob/miniredis/v2"
	goredis "github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newRepo(t *testing.T, ttl time.Duration) (*SlotsRepo, *miniredis.Miniredis) {
	t.Helper()
	mr := miniredis.RunT(t)
	client := goredis.NewClient(&goredis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { _ = client.Close() })
	return NewSlotsRepo(client, ttl), mr
}

func TestSlotsRepo_RoundTrip(t *testing.T) {
	ctx := context.Background()
	repo, mr := newRepo(t, 0)

	_, err := repo.Get(ctx, "favorites:a")
	assert.ErrorIs(t, err, favorites.ErrSlotNotFound)

	require.NoError(t, repo.Set(ctx, "favorites:a", []byte(`[5,6]`)))

	got, err := repo.Get(ctx, "favorites:a")
	require.NoError(t, err)
	assert.Equal(t, `[5,6]`, string(got))

	raw, err := mr.Get("favorites:a")
	require.NoError(t, err)
	assert.Equal(t, `[5,6]`, raw)
}

func TestSlotsRepo_TTL(t *testing.T) {
	ctx := context.Background()
	repo, mr := newRepo(t, time.Hour)

	require.NoError(t, repo.Set(ctx, "favorites:b", []byte(`[1]`)))
	assert.Equal(t, time.Hour, mr.TTL("favorites:b"))

	mr.FastForward(2 * time.Hour)
	_, err := repo.Get(ctx, "favorites:b")
	assert.ErrorIs(t, err, favorites.ErrSlotNotFound)
}

func TestSlotsRepo_ServerDownFallsBackToMemory(t *testing.T) {
	ctx := context.Background()
	repo, mr := newRepo(t, 0)
	mr.Close()

	_, err := repo.Get(ctx, "favorites:c")
	require.Error(t, err)
	assert.NotErrorIs(t, err, favorites.ErrSlotNotFound)

	st, err := favorites.NewService(repo, favorites.Options{}).Store(ctx, "c")
	require.NoError(t, err)
	assert.False(t, st.Persistent())
	require.NoError(t, st.Add(ctx, 1))
	assert.Equal(t, []int64{1}, st.IDs())
}

func TestSlotsRepo_ServerBackRestoresPersistence(t *testing.T) {
	ctx := context.Background()
	repo, mr := newRepo(t, 0)
	require.NoError(t, mr.Set("favorites:d", "[3]"))
	mr.Close()

	svc := favorites.NewService(repo, favorites.Options{RetryInterval: time.Millisecond})
	st, err := svc.Store(ctx, "d")
	require.NoError(t, err)
	assert.False(t, st.Persistent())
	require.NoError(t, st.Add(ctx, 1))

	require.NoError(t, mr.Restart())
	time.Sleep(5 * time.Millisecond)

	again, err := svc.Store(ctx, "d")
	require.NoError(t, err)
	assert.Same(t, st, again)
	assert.True(t, st.Persistent())
	assert.Equal(t, []int64{3, 1}, st.IDs())

	got, err := mr.Get("favorites:d")
	require.NoError(t, err)
	assert.JSONEq(t, `[3,1]`, got)
}

func TestOpen(t *testing.T) {
	mr := miniredis.RunT(t)

	client, err := Open(context.Background(), "redis://"+mr.Addr()+"/0")
	require.NoError(t, err)
	defer client.Close()

	_, err = Open(context.Background(), "not-a-url")
	assert.Error(t, err)
}
