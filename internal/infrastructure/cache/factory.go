package cache

import (
	"go.uber.org/zap"

	appcashdrawer "github.com/posdesk/backend/internal/application/cashdrawer"
	"github.com/posdesk/backend/internal/infrastructure/config"
)

// NewSummaryCache builds the summary cache for the configured deployment.
// Redis failures at startup fall back to the in-memory store so the
// dashboard stays available.
func NewSummaryCache(cfg config.RedisConfig, logger *zap.Logger) appcashdrawer.SummaryCache {
	if !cfg.Enabled {
		return NewInMemorySummaryStore()
	}

	store, err := NewRedisSummaryStore(cfg)
	if err != nil {
		logger.Warn("redis unavailable, using in-memory summary cache", zap.Error(err))
		return NewInMemorySummaryStore()
	}

	logger.Info("using redis summary cache",
		zap.String("host", cfg.Host),
		zap.Int("port", cfg.Port),
	)
	return store
}
