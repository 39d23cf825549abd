package middleware

import (
	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
)

// Guards bundles the middleware every feature router mounts.
type Guards struct {
	Tokens    AccessTokenParser
	RBAC      RBACService
	Logger    *zap.Logger
	Redis     *redis.Client
	AnonLimit *KeyedRateLimiter
	UserLimit *KeyedRateLimiter
}

// Authenticated is the default chain for logged-in endpoints.
func (g Guards) Authenticated() []gin.HandlerFunc {
	return []gin.HandlerFunc{
		AuthMiddleware(g.Tokens),
		ContextLogger(g.Logger),
		RateLimitByUser(g.UserLimit),
	}
}

// Anonymous is the chain for unauthenticated endpoints.
func (g Guards) Anonymous() []gin.HandlerFunc {
	return []gin.HandlerFunc{
		ContextLogger(g.Logger),
		RateLimitByIP(g.AnonLimit),
	}
}

func (g Guards) Allow(resource, action string) gin.HandlerFunc {
	return RBACAuthorize(g.RBAC, resource, action)
}

func (g Guards) Idempotent() gin.HandlerFunc {
	if g.Redis == nil {
		return func(c *gin.Context) { c.Next() }
	}
	return Idempotency(g.Redis)
}
