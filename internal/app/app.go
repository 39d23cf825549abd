package app

import (
	"go-hrm/internal/config"
	"go-hrm/internal/middleware"
	"go-hrm/internal/shared/connection"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// BuildApp connects the stores and mounts every module on router. The
// returned cleanup closes the connections.
func BuildApp(router *gin.Engine, cfg *config.Config) (func(), error) {
	logger := zap.L().Named("app")

	gormDB, err := connection.ConnectGORMWithRetry(cfg, 5)
	if err != nil {
		return nil, err
	}
	sqlDB, err := gormDB.DB()
	if err != nil {
		return nil, err
	}
	logger.Info("database connection established")

	if cfg.IsDevelopment() {
		if err := Migrate(gormDB); err != nil {
			_ = sqlDB.Close()
			return nil, err
		}
	}

	rdb, err := connection.ConnectRedisWithRetry(cfg.RedisAddr, 5)
	if err != nil {
		_ = sqlDB.Close()
		return nil, err
	}
	logger.Info("redis connection established")

	router.Use(middleware.RequestID())

	if err := registerModules(router, cfg, gormDB, rdb); err != nil {
		_ = rdb.Close()
		_ = sqlDB.Close()
		return nil, err
	}

	cleanup := func() {
		_ = rdb.Close()
		_ = sqlDB.Close()
	}
	return cleanup, nil
}
