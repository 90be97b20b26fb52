package middleware

import (
	"fmt"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"github.com/ulule/limiter/v3"
	"github.com/ulule/limiter/v3/drivers/store/memory"
	sredis "github.com/ulule/limiter/v3/drivers/store/redis"

	"github.com/ignatzorin/projecthub-backend/internal/logger"
)

const rateLimitPrefix = "discovery:ratelimit"

// RateLimitMiddleware создаёт middleware для ограничения количества запросов с одного IP.
// По умолчанию: 10 запросов в минуту. Счётчики хранятся в памяти процесса.
func RateLimitMiddleware(limit int64, period time.Duration) gin.HandlerFunc {
	return rateLimit(limiter.New(memory.NewStoreWithOptions(limiter.StoreOptions{
		Prefix: rateLimitPrefix,
	}), newRate(limit, period)))
}

// RedisRateLimitMiddleware хранит счётчики в Redis, чтобы лимит был общим для всех инстансов.
// Если хранилище не удалось создать, используется память процесса.
func RedisRateLimitMiddleware(client *redis.Client, limit int64, period time.Duration) gin.HandlerFunc {
	store, err := sredis.NewStoreWithOptions(client, limiter.StoreOptions{Prefix: rateLimitPrefix})
	if err != nil {
		logger.WithComponent("http").WithError(err).Warn("redis rate limit store unavailable, falling back to memory")
		return RateLimitMiddleware(limit, period)
	}
	return rateLimit(limiter.New(store, newRate(limit, period)))
}

func newRate(limit int64, period time.Duration) limiter.Rate {
	if limit <= 0 {
		limit = 10
	}
	if period <= 0 {
		period = 1 * time.Minute
	}
	return limiter.Rate{Period: period, Limit: limit}
}

func rateLimit(instance *limiter.Limiter) gin.HandlerFunc {
	return func(c *gin.Context) {
		context, err := instance.Get(c, c.ClientIP())
		if err != nil {
			c.AbortWithStatus(http.StatusInternalServerError)
			return
		}

		c.Header("X-RateLimit-Limit", fmt.Sprintf("%d", context.Limit))
		c.Header("X-RateLimit-Remaining", fmt.Sprintf("%d", context.Remaining))
		c.Header("X-RateLimit-Reset", fmt.Sprintf("%d", context.Reset))

		if context.Reached {
			c.AbortWithStatusJSON(http.StatusTooManyRequests, gin.H{
				"error": "слишком много запросов, попробуйте позже",
			})
			return
		}

		c.Next()
	}
}
