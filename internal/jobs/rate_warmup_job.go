// Package jobs holds scheduled background tasks.
package jobs

import (
	"context"
	"log/slog"
	"time"

	"github.com/SergeyBogomolovv/kory-delivery/internal/catalog"
	"github.com/robfig/cron/v3"
	"github.com/shopspring/decimal"
)

type RateGetter interface {
	GetRate(ctx context.Context, base, target string) (decimal.Decimal, error)
}

// RateWarmUpJob prefetches every rate the catalog needs so the first quote
// of the day does not wait for the provider.
type RateWarmUpJob struct {
	rates    RateGetter
	pairs    []catalog.RatePair
	schedule string
	timeout  time.Duration
	cron     *cron.Cron
	logger   *slog.Logger
}

// NewRateWarmUpJob creates the job. The schedule is a standard five-field
// cron expression evaluated in location.
func NewRateWarmUpJob(logger *slog.Logger, rates RateGetter, pairs []catalog.RatePair, schedule string, timeout time.Duration, location *time.Location) *RateWarmUpJob {
	return &RateWarmUpJob{
		rates:    rates,
		pairs:    pairs,
		schedule: schedule,
		timeout:  timeout,
		cron:     cron.New(cron.WithLocation(location)),
		logger:   logger.With(slog.String("component", "rate_warmup_job")),
	}
}

// Start schedules the warm-up and runs it once right away.
func (j *RateWarmUpJob) Start(ctx context.Context) error {
	if _, err := j.cron.AddFunc(j.schedule, func() { j.WarmUp(ctx) }); err != nil {
		return err
	}

	j.cron.Start()
	go j.WarmUp(ctx)

	j.logger.InfoContext(ctx, "rate warm-up job started", slog.String("schedule", j.schedule))
	return nil
}

// Stop waits for a running warm-up to finish.
func (j *RateWarmUpJob) Stop() {
	<-j.cron.Stop().Done()
	j.logger.Info("rate warm-up job stopped")
}

// WarmUp fetches every pair and returns how many succeeded.
func (j *RateWarmUpJob) WarmUp(ctx context.Context) int {
	warmed := 0
	for _, p := range j.pairs {
		if ctx.Err() != nil {
			break
		}

		pairCtx, cancel := context.WithTimeout(ctx, j.timeout)
		_, err := j.rates.GetRate(pairCtx, p.Base, p.Target)
		cancel()

		if err != nil {
			j.logger.WarnContext(ctx, "failed to warm up rate",
				slog.String("base", p.Base),
				slog.String("target", p.Target),
				slog.Any("error", err),
			)
			continue
		}
		warmed++
	}

	j.logger.DebugContext(ctx, "rates warmed up", slog.Int("warmed", warmed), slog.Int("total", len(j.pairs)))
	return warmed
}
