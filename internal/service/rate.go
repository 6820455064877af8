package service

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/SergeyBogomolovv/kory-delivery/internal/entities"
	"github.com/shopspring/decimal"
)

type Cache interface {
	Get(key string) ([]byte, bool)
	Set(key string, value []byte)
}

type RateRepo interface {
	GetRate(ctx context.Context, base, target string, date time.Time) (decimal.Decimal, error)
	SaveRate(ctx context.Context, rate entities.ExchangeRate) error
}

type RateProvider interface {
	Rate(ctx context.Context, base, target string) (decimal.Decimal, error)
}

type rateService struct {
	logger   *slog.Logger
	cache    Cache
	repo     RateRepo
	provider RateProvider
	timeout  time.Duration
	location *time.Location
	now      func() time.Time
}

func NewRateService(logger *slog.Logger, cache Cache, repo RateRepo, provider RateProvider, timeout time.Duration, location *time.Location) *rateService {
	return &rateService{
		logger:   logger.With(slog.String("service", "rate")),
		cache:    cache,
		repo:     repo,
		provider: provider,
		timeout:  timeout,
		location: location,
		now:      time.Now,
	}
}

// GetRate returns the price of one unit of base in target, valid for today.
// Lookup goes memory, then the rates table, then the provider. Only a
// provider failure is reported, as ErrRateUnavailable.
func (s *rateService) GetRate(ctx context.Context, base, target string) (decimal.Decimal, error) {
	if base == target {
		return decimal.NewFromInt(1), nil
	}

	date := entities.RateDate(s.now(), s.location)
	key := rateKey(base, target, date)

	if rate, ok := s.fromCache(key); ok {
		rateLookups.WithLabelValues("memory").Inc()
		return rate, nil
	}

	rate, err := s.repo.GetRate(ctx, base, target, date)
	switch {
	case err == nil:
		rateLookups.WithLabelValues("database").Inc()
		s.toCache(key, rate)
		return rate, nil
	case !errors.Is(err, entities.ErrRateNotFound):
		s.logger.Warn("rates table unavailable", slog.String("base", base), slog.String("target", target), slog.Any("error", err))
	}

	ctx, cancel := context.WithTimeout(ctx, s.timeout)
	defer cancel()

	rate, err = s.provider.Rate(ctx, base, target)
	if err != nil {
		rateProviderErrors.Inc()
		s.logger.Error("failed to fetch rate", slog.String("base", base), slog.String("target", target), slog.Any("error", err))
		return decimal.Decimal{}, fmt.Errorf("%w: %s->%s: %w", entities.ErrRateUnavailable, base, target, err)
	}
	rateLookups.WithLabelValues("provider").Inc()

	// Параллельные промахи пишут одно и то же, побеждает последний
	err = s.repo.SaveRate(ctx, entities.ExchangeRate{Base: base, Target: target, Date: date, Rate: rate})
	if err != nil {
		s.logger.Warn("failed to store rate", slog.String("base", base), slog.String("target", target), slog.Any("error", err))
	}
	s.toCache(key, rate)
	return rate, nil
}

func (s *rateService) fromCache(key string) (decimal.Decimal, bool) {
	data, ok := s.cache.Get(key)
	if !ok {
		return decimal.Decimal{}, false
	}
	var rate decimal.Decimal
	if err := rate.UnmarshalBinary(data); err != nil {
		s.logger.Error("failed to unmarshal cached rate", slog.String("key", key), slog.Any("error", err))
		return decimal.Decimal{}, false
	}
	return rate, true
}

func (s *rateService) toCache(key string, rate decimal.Decimal) {
	data, err := rate.MarshalBinary()
	if err != nil {
		s.logger.Error("failed to marshal rate", slog.String("key", key), slog.Any("error", err))
		return
	}
	s.cache.Set(key, data)
}

func rateKey(base, target string, date time.Time) string {
	return base + ":" + target + ":" + date.Format(time.DateOnly)
}
