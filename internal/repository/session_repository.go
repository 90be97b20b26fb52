package repository

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"

	"github.com/ignatzorin/projecthub-backend/internal/cache"
	"github.com/ignatzorin/projecthub-backend/internal/pkg/apperror"
)

const sessionKeyPrefix = "discovery:session:"

// SessionRepository хранит сериализованное состояние фильтра сессии поиска.
type SessionRepository interface {
	Save(ctx context.Context, id uuid.UUID, query string) error
	// Load возвращает apperror.ErrSessionNotFound для неизвестной или истёкшей сессии.
	Load(ctx context.Context, id uuid.UUID) (string, error)
	Delete(ctx context.Context, id uuid.UUID) error
}

func sessionKey(id uuid.UUID) string {
	return sessionKeyPrefix + id.String()
}

// MemorySessionRepository хранит сессии в памяти процесса.
type MemorySessionRepository struct {
	cache *cache.Cache
	ttl   time.Duration
}

// NewMemorySessionRepository создаёт репозиторий поверх TTL-кэша.
func NewMemorySessionRepository(c *cache.Cache, ttl time.Duration) *MemorySessionRepository {
	return &MemorySessionRepository{cache: c, ttl: ttl}
}

func (r *MemorySessionRepository) Save(_ context.Context, id uuid.UUID, query string) error {
	r.cache.Set(sessionKey(id), query, r.ttl)
	return nil
}

func (r *MemorySessionRepository) Load(_ context.Context, id uuid.UUID) (string, error) {
	raw, ok := r.cache.Get(sessionKey(id))
	if !ok {
		return "", apperror.ErrSessionNotFound
	}
	query, ok := raw.(string)
	if !ok {
		return "", apperror.ErrSessionNotFound
	}
	return query, nil
}

func (r *MemorySessionRepository) Delete(_ context.Context, id uuid.UUID) error {
	r.cache.Delete(sessionKey(id))
	return nil
}

// Count возвращает количество живых сессий.
func (r *MemorySessionRepository) Count() int {
	return r.cache.CountByPrefix(sessionKeyPrefix)
}

// RedisSessionRepository хранит сессии в Redis, TTL продлевается при каждом сохранении.
type RedisSessionRepository struct {
	client *redis.Client
	ttl    time.Duration
}

// NewRedisSessionRepository создаёт репозиторий поверх клиента Redis.
func NewRedisSessionRepository(client *redis.Client, ttl time.Duration) *RedisSessionRepository {
	return &RedisSessionRepository{client: client, ttl: ttl}
}

func (r *RedisSessionRepository) Save(ctx context.Context, id uuid.UUID, query string) error {
	if err := r.client.Set(ctx, sessionKey(id), query, r.ttl).Err(); err != nil {
		return apperror.Wrap(err, apperror.ErrCodeStorageError, "не удалось сохранить сессию поиска")
	}
	return nil
}

func (r *RedisSessionRepository) Load(ctx context.Context, id uuid.UUID) (string, error) {
	query, err := r.client.Get(ctx, sessionKey(id)).Result()
	if errors.Is(err, redis.Nil) {
		return "", apperror.ErrSessionNotFound
	}
	if err != nil {
		return "", apperror.Wrap(err, apperror.ErrCodeStorageError, "не удалось прочитать сессию поиска")
	}
	return query, nil
}

func (r *RedisSessionRepository) Delete(ctx context.Context, id uuid.UUID) error {
	if err := r.client.Del(ctx, sessionKey(id)).Err(); err != nil {
		return apperror.Wrap(err, apperror.ErrCodeStorageError, "не удалось удалить сессию поиска")
	}
	return nil
}
