// Package pricing turns a country, a local price and a weight class into a
// cost breakdown in the base currency.
package pricing

import (
	"context"
	"errors"
	"fmt"

	"github.com/SergeyBogomolovv/kory-delivery/internal/catalog"
	"github.com/SergeyBogomolovv/kory-delivery/internal/entities"
	"github.com/shopspring/decimal"
)

type RateGetter interface {
	GetRate(ctx context.Context, base, target string) (decimal.Decimal, error)
}

type Engine struct {
	catalog *catalog.Catalog
	rates   RateGetter
}

func NewEngine(c *catalog.Catalog, rates RateGetter) *Engine {
	return &Engine{catalog: c, rates: rates}
}

// Quote prices req. It has no side effects besides rate lookups, so equal
// requests on the same day give equal quotes. Converted goods and shipping
// are rounded to MoneyScale before they are summed.
func (e *Engine) Quote(ctx context.Context, req entities.QuoteRequest) (entities.Quote, error) {
	country, ok := e.catalog.Country(req.Country)
	if !ok {
		return entities.Quote{}, fmt.Errorf("%w: unknown country %q", entities.ErrValidation, req.Country)
	}
	if !req.Price.IsPositive() {
		return entities.Quote{}, fmt.Errorf("%w: price must be positive", entities.ErrValidation)
	}
	if !req.WeightClass.IsPositive() {
		return entities.Quote{}, fmt.Errorf("%w: weight class is missing", entities.ErrValidation)
	}

	currency := req.Currency
	if currency == "" && country.FixedCurrency() {
		currency = country.Currency
	}
	if !country.Offers(currency) {
		return entities.Quote{}, fmt.Errorf("%w: currency %q is not accepted for %s", entities.ErrValidation, currency, country.Key)
	}

	base := e.catalog.BaseCurrency
	usdRate := lazyRate{getter: e.rates, base: entities.CurrencyUSD, target: base}

	var goods decimal.Decimal
	if country.Currency == entities.CurrencyCNY {
		rate, err := e.rate(ctx, entities.CurrencyCNY, base)
		if err != nil {
			return entities.Quote{}, err
		}
		goods = req.Price.Mul(rate)
	} else {
		usd := req.Price
		if currency != entities.CurrencyUSD {
			rate, err := e.rate(ctx, currency, entities.CurrencyUSD)
			if err != nil {
				return entities.Quote{}, err
			}
			usd = usd.Mul(rate)
		}
		rate, err := usdRate.get(ctx)
		if err != nil {
			return entities.Quote{}, err
		}
		goods = usd.Mul(rate)
	}

	convertedGoods := goods.Mul(decimal.NewFromInt(1).Add(e.catalog.GoodsFeeRate)).Round(entities.MoneyScale)

	shippingUSD := req.WeightClass.Mul(country.ShippingPerKgUSD)
	shippingFee := decimal.Zero
	if !shippingUSD.IsZero() {
		rate, err := usdRate.get(ctx)
		if err != nil {
			return entities.Quote{}, err
		}
		shippingFee = shippingUSD.Mul(rate).Round(entities.MoneyScale)
	}

	subtotal := convertedGoods.Add(shippingFee)
	commission := e.catalog.Commission(subtotal)
	total := subtotal.Add(commission).Floor()
	if total.GreaterThanOrEqual(entities.MaxAmount) {
		return entities.Quote{}, fmt.Errorf("%w: total %s is too large", entities.ErrValidation, total)
	}

	return entities.Quote{
		ConvertedGoods: convertedGoods,
		ShippingFee:    shippingFee,
		Subtotal:       subtotal,
		Commission:     commission,
		Total:          total.IntPart(),
		Currency:       base,
	}, nil
}

func (e *Engine) rate(ctx context.Context, base, target string) (decimal.Decimal, error) {
	return fetchRate(ctx, e.rates, base, target)
}

// fetchRate reports every lookup failure as ErrRateUnavailable.
func fetchRate(ctx context.Context, rates RateGetter, base, target string) (decimal.Decimal, error) {
	rate, err := rates.GetRate(ctx, base, target)
	if errors.Is(err, entities.ErrRateUnavailable) {
		return decimal.Decimal{}, fmt.Errorf("failed to get %s/%s rate: %w", base, target, err)
	}
	if err != nil {
		return decimal.Decimal{}, fmt.Errorf("%w: %s/%s: %w", entities.ErrRateUnavailable, base, target, err)
	}
	if !rate.IsPositive() {
		return decimal.Decimal{}, fmt.Errorf("%w: non-positive %s/%s rate", entities.ErrRateUnavailable, base, target)
	}
	return rate, nil
}

// lazyRate fetches a rate at most once per quote.
type lazyRate struct {
	getter RateGetter
	base   string
	target string

	value  decimal.Decimal
	loaded bool
}

func (l *lazyRate) get(ctx context.Context) (decimal.Decimal, error) {
	if l.loaded {
		return l.value, nil
	}
	rate, err := fetchRate(ctx, l.getter, l.base, l.target)
	if err != nil {
		return decimal.Decimal{}, err
	}
	l.value, l.loaded = rate, true
	return rate, nil
}
