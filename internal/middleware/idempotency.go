package middleware

import (
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"go-hrm/internal/shared/response"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
)

const (
	idempotencyLockTTL   = 30 * time.Second
	idempotencyResultTTL = 24 * time.Hour
)

// Idempotency replays the cached result of a POST carrying the same
// Idempotency-Key and rejects a duplicate that arrives while the first is running.
func Idempotency(rdb *redis.Client) gin.HandlerFunc {
	logger := zap.L().Named("middleware.idempotency")
	return func(c *gin.Context) {
		idempKey := c.GetHeader("Idempotency-Key")
		if idempKey == "" || c.Request.Method != http.MethodPost {
			c.Next()
			return
		}

		userID := c.GetString("user_id_validated")
		cacheKey := fmt.Sprintf("idemp:%s:%s:%s", c.FullPath(), userID, idempKey)
		lockKey := cacheKey + ":lock"
		ctx := c.Request.Context()

		val, err := rdb.Get(ctx, cacheKey).Result()
		if err == nil {
			var cached any
			if jsonErr := json.Unmarshal([]byte(val), &cached); jsonErr == nil {
				logger.Debug("idempotent replay", zap.String("key", cacheKey))
				response.Success(c, http.StatusOK, cached, nil)
				c.Abort()
				return
			}
		}

		isNew, err := rdb.SetNX(ctx, lockKey, "locked", idempotencyLockTTL).Result()
		if err != nil {
			// redis mati: jalankan tanpa proteksi
			logger.Warn("idempotency lock unavailable", zap.Error(err))
			c.Next()
			return
		}
		if !isNew {
			response.Abort(c, http.StatusConflict, "PROCESSING", "Your request is still being processed, please wait.")
			return
		}

		c.Set("idempotency_cache_key", cacheKey)
		c.Set("idempotency_lock_key", lockKey)

		c.Next()

		rdb.Del(ctx, lockKey)
	}
}

// StoreIdempotentResult caches a successful response for replay.
func StoreIdempotentResult(c *gin.Context, rdb *redis.Client, data any) {
	if rdb == nil {
		return
	}
	ck := c.GetString("idempotency_cache_key")
	if ck == "" {
		return
	}
	if payload, err := json.Marshal(data); err == nil {
		_ = rdb.Set(c.Request.Context(), ck, payload, idempotencyResultTTL).Err()
	}
}
