package usecase

import (
	"context"
	"log"
	"time"

	"job-trends/internal/analytics"
	"job-trends/internal/infrastructure/cache"
)

const analyticsCacheKey = "analytics:summary"

type AnalyticsUsecase interface {
	GetSummary(ctx context.Context) (analytics.Summary, error)
}

// Analytics serves the precomputed analytics document. The document is a
// read-only artifact computed once per corpus version, so it is safe to
// share through the optional Redis cache; the in-memory copy is the
// fallback and the source of truth.
type Analytics struct {
	summary analytics.Summary
	cache   *cache.Redis
	log     *log.Logger
}

func NewAnalyticsUsecase(summary analytics.Summary, c *cache.Redis, logger *log.Logger) *Analytics {
	if logger == nil {
		logger = log.Default()
	}
	return &Analytics{summary: summary, cache: c, log: logger}
}

func (u *Analytics) GetSummary(ctx context.Context) (analytics.Summary, error) {
	if u == nil {
		return analytics.Summary{}, ErrCorpusUnavailable
	}

	var cached analytics.Summary
	hit, err := u.cache.GetJSON(ctx, analyticsCacheKey, &cached)
	if err == nil && hit {
		return cached, nil
	}

	if err := u.cache.SetJSON(ctx, analyticsCacheKey, u.summary, 1*time.Hour); err != nil {
		u.log.Printf("usecase=analytics status=cache_write_failed err=%v", err)
	}
	return u.summary, nil
}
