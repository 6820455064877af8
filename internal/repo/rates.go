package repo

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/SergeyBogomolovv/kory-delivery/internal/entities"
	"github.com/shopspring/decimal"

	sq "github.com/Masterminds/squirrel"
)

const rateDateLayout = "2006-01-02"

func (r *postgresRepo) GetRate(ctx context.Context, base, target string, date time.Time) (decimal.Decimal, error) {
	query, args := r.qb.Select("base_currency", "target_currency", "rate_date", "rate").
		From("exchange_rates").
		Where(sq.Eq{
			"base_currency":   base,
			"target_currency": target,
			"rate_date":       date.Format(rateDateLayout),
		}).
		MustSql()

	var rate ExchangeRate
	err := r.getContext(ctx, &rate, query, args...)
	if errors.Is(err, sql.ErrNoRows) {
		return decimal.Decimal{}, entities.ErrRateNotFound
	}
	if err != nil {
		return decimal.Decimal{}, fmt.Errorf("failed to get rate: %w", err)
	}
	return rate.Rate, nil
}

// SaveRate upserts the rate. Concurrent writers of the same key overwrite
// each other; the last one wins.
func (r *postgresRepo) SaveRate(ctx context.Context, rate entities.ExchangeRate) error {
	query, args := r.qb.Insert("exchange_rates").
		Columns("base_currency", "target_currency", "rate_date", "rate").
		Values(rate.Base, rate.Target, rate.Date.Format(rateDateLayout), rate.Rate).
		Suffix("ON CONFLICT (base_currency, target_currency, rate_date) DO UPDATE SET rate = EXCLUDED.rate, fetched_at = now()").
		MustSql()

	if _, err := r.execContext(ctx, query, args...); err != nil {
		return fmt.Errorf("failed to save rate: %w", err)
	}
	return nil
}
