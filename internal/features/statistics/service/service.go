package service

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"courier-billing/internal/core/cache"
	"courier-billing/internal/core/logger"
	"courier-billing/internal/core/metrics"
	"courier-billing/internal/features/statistics/domain"
	"courier-billing/internal/features/statistics/ports"

	"go.uber.org/zap"
)

const cacheKeyPrefix = "stats:dashboard:"

// StatisticsServiceImpl implements ports.StatisticsService.
// Dashboards are cached per calendar month when a cache and a positive TTL are given.
type StatisticsServiceImpl struct {
	repo   ports.ChargeStats
	cache  cache.Cache
	ttl    time.Duration
	loc    *time.Location
	logger *zap.Logger
	// Now is the clock that selects the current month.
	Now func() time.Time
}

// NewStatisticsService creates a new StatisticsServiceImpl. c may be nil.
func NewStatisticsService(repo ports.ChargeStats, c cache.Cache, ttl time.Duration, loc *time.Location) *StatisticsServiceImpl {
	if loc == nil {
		loc = time.UTC
	}
	return &StatisticsServiceImpl{
		repo:   repo,
		cache:  c,
		ttl:    ttl,
		loc:    loc,
		logger: logger.Named("statistics"),
		Now:    time.Now,
	}
}

// Dashboard returns status counts, this month's paid revenue and per-service totals.
// Cache failures fall back to the store and are only logged.
func (s *StatisticsServiceImpl) Dashboard(ctx context.Context) (*domain.Dashboard, error) {
	now := s.Now()
	from, before := domain.MonthWindow(now, s.loc)
	key := s.key(now)

	if cached, ok := s.lookup(ctx, key); ok {
		return cached, nil
	}

	dashboard, err := s.compute(ctx, from, before)
	if err != nil {
		return nil, err
	}

	s.store(ctx, key, dashboard)
	return dashboard, nil
}

// Invalidate drops the cached dashboard of the current month so the next read recomputes it.
func (s *StatisticsServiceImpl) Invalidate(ctx context.Context) {
	if !s.cacheEnabled() {
		return
	}

	key := s.key(s.Now())
	if err := s.cache.Delete(ctx, key); err != nil {
		s.logger.Warn("Dashboard cache invalidation failed", zap.String("key", key), zap.Error(err))
	}
}

func (s *StatisticsServiceImpl) key(now time.Time) string {
	from, _ := domain.MonthWindow(now, s.loc)
	return cacheKeyPrefix + from.Format("2006-01")
}

func (s *StatisticsServiceImpl) compute(ctx context.Context, from, before time.Time) (*domain.Dashboard, error) {
	counts, err := s.repo.Counts(ctx)
	if err != nil {
		return nil, fmt.Errorf("service: failed to count charges: %w", err)
	}

	revenue, err := s.repo.PaidRevenue(ctx, from, before)
	if err != nil {
		return nil, fmt.Errorf("service: failed to sum revenue: %w", err)
	}

	buckets, err := s.repo.ByService(ctx)
	if err != nil {
		return nil, fmt.Errorf("service: failed to group charges by service: %w", err)
	}
	if buckets == nil {
		buckets = []domain.ServiceBucket{}
	}

	return &domain.Dashboard{
		Summary:   domain.Summary{Counts: counts, MonthRevenue: revenue},
		ByService: buckets,
	}, nil
}

func (s *StatisticsServiceImpl) cacheEnabled() bool {
	return s.cache != nil && s.ttl > 0
}

func (s *StatisticsServiceImpl) lookup(ctx context.Context, key string) (*domain.Dashboard, bool) {
	if !s.cacheEnabled() {
		return nil, false
	}

	raw, err := s.cache.Get(ctx, key)
	if errors.Is(err, cache.ErrCacheMiss) {
		metrics.StatsCacheLookups.WithLabelValues("miss").Inc()
		return nil, false
	}
	if err != nil {
		metrics.StatsCacheLookups.WithLabelValues("error").Inc()
		s.logger.Warn("Dashboard cache read failed", zap.String("key", key), zap.Error(err))
		return nil, false
	}

	var dashboard domain.Dashboard
	if err := json.Unmarshal(raw, &dashboard); err != nil {
		metrics.StatsCacheLookups.WithLabelValues("error").Inc()
		s.logger.Warn("Discarding unreadable dashboard cache entry", zap.String("key", key), zap.Error(err))
		return nil, false
	}

	metrics.StatsCacheLookups.WithLabelValues("hit").Inc()
	return &dashboard, true
}

func (s *StatisticsServiceImpl) store(ctx context.Context, key string, d *domain.Dashboard) {
	if !s.cacheEnabled() {
		return
	}

	raw, err := json.Marshal(d)
	if err != nil {
		s.logger.Warn("Failed to encode dashboard for cache", zap.Error(err))
		return
	}
	if err := s.cache.Set(ctx, key, raw, s.ttl); err != nil {
		s.logger.Warn("Dashboard cache write failed", zap.String("key", key), zap.Error(err))
	}
}
