package repository

import (
	"context"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ignatzorin/projecthub-backend/internal/cache"
	"github.com/ignatzorin/projecthub-backend/internal/pkg/apperror"
)

func setupTestRedis(t *testing.T) (*redis.Client, *miniredis.Miniredis) {
	mr, err := miniredis.Run()
	require.NoError(t, err)

	client := redis.NewClient(&redis.Options{
		Addr: mr.Addr(),
	})
	require.NoError(t, client.Ping(context.Background()).Err())

	t.Cleanup(func() {
		client.Close()
		mr.Close()
	})
	return client, mr
}

func TestRedisSessionRepository_SaveLoadDelete(t *testing.T) {
	client, mr := setupTestRedis(t)
	repo := NewRedisSessionRepository(client, time.Hour)
	ctx := context.Background()
	id := uuid.New()

	require.NoError(t, repo.Save(ctx, id, "skills=React&status=open"))
	assert.True(t, mr.Exists(sessionKey(id)))
	assert.Equal(t, time.Hour, mr.TTL(sessionKey(id)))

	query, err := repo.Load(ctx, id)
	require.NoError(t, err)
	assert.Equal(t, "skills=React&status=open", query)

	require.NoError(t, repo.Delete(ctx, id))
	_, err = repo.Load(ctx, id)
	assert.ErrorIs(t, err, apperror.ErrSessionNotFound)
}

func TestRedisSessionRepository_Expiry(t *testing.T) {
	client, mr := setupTestRedis(t)
	repo := NewRedisSessionRepository(client, time.Minute)
	ctx := context.Background()
	id := uuid.New()

	require.NoError(t, repo.Save(ctx, id, ""))
	mr.FastForward(2 * time.Minute)

	_, err := repo.Load(ctx, id)
	assert.True(t, apperror.IsNotFound(err))
}

func TestRedisSessionRepository_StorageFailure(t *testing.T) {
	mr, err := miniredis.Run()
	require.NoError(t, err)
	client := redis.NewClient(&redis.Options{Addr: mr.Addr(), MaxRetries: -1})
	defer client.Close()
	mr.Close()

	repo := NewRedisSessionRepository(client, time.Minute)

	err = repo.Save(context.Background(), uuid.New(), "status=open")
	require.Error(t, err)
	assert.False(t, apperror.IsNotFound(err))
}

func TestMemorySessionRepository(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	repo := NewMemorySessionRepository(cache.New(ctx, time.Hour), time.Hour)
	id := uuid.New()

	_, err := repo.Load(ctx, id)
	assert.ErrorIs(t, err, apperror.ErrSessionNotFound)

	require.NoError(t, repo.Save(ctx, id, "search=app"))
	query, err := repo.Load(ctx, id)
	require.NoError(t, err)
	assert.Equal(t, "search=app", query)
	assert.Equal(t, 1, repo.Count())

	require.NoError(t, repo.Delete(ctx, id))
	assert.Equal(t, 0, repo.Count())
}
