package provider

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"github.com/SergeyBogomolovv/kory-delivery/internal/entities"
	"github.com/go-playground/validator/v10"
	"github.com/shopspring/decimal"
)

// CBR reads the daily rates published by the Central Bank of Russia. Every
// currency is quoted against RUB, so any pair is a ratio of two quotes.
type CBR struct {
	logger   *slog.Logger
	url      string
	client   *http.Client
	validate *validator.Validate
}

type cbrDaily struct {
	Date   time.Time            `json:"Date"`
	Valute map[string]cbrValute `json:"Valute" validate:"required,dive"`
}

type cbrValute struct {
	CharCode string          `json:"CharCode" validate:"required,len=3"`
	Nominal  int64           `json:"Nominal" validate:"gt=0"`
	Value    decimal.Decimal `json:"Value"`
}

func NewCBR(logger *slog.Logger, url string, timeout time.Duration) *CBR {
	return &CBR{
		logger:   logger.With(slog.String("provider", "cbr")),
		url:      url,
		client:   &http.Client{Timeout: timeout},
		validate: validator.New(),
	}
}

// Rate returns the price of one unit of base in target.
func (p *CBR) Rate(ctx context.Context, base, target string) (decimal.Decimal, error) {
	daily, err := p.fetch(ctx)
	if err != nil {
		return decimal.Decimal{}, err
	}

	baseRub, err := daily.rub(base)
	if err != nil {
		return decimal.Decimal{}, err
	}
	targetRub, err := daily.rub(target)
	if err != nil {
		return decimal.Decimal{}, err
	}

	return baseRub.DivRound(targetRub, 10), nil
}

func (p *CBR) fetch(ctx context.Context) (cbrDaily, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, p.url, nil)
	if err != nil {
		return cbrDaily{}, fmt.Errorf("failed to build request: %w", err)
	}

	resp, err := p.client.Do(req)
	if err != nil {
		return cbrDaily{}, fmt.Errorf("failed to request rates: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return cbrDaily{}, fmt.Errorf("unexpected rates response status: %d", resp.StatusCode)
	}

	var daily cbrDaily
	if err := json.NewDecoder(resp.Body).Decode(&daily); err != nil {
		return cbrDaily{}, fmt.Errorf("failed to decode rates: %w", err)
	}
	if err := p.validate.Struct(daily); err != nil {
		return cbrDaily{}, fmt.Errorf("invalid rates payload: %w", err)
	}

	p.logger.Debug("rates fetched", slog.Time("date", daily.Date), slog.Int("currencies", len(daily.Valute)))
	return daily, nil
}

// rub returns the price of one unit of code in rubles.
func (d cbrDaily) rub(code string) (decimal.Decimal, error) {
	if code == entities.CurrencyRUB {
		return decimal.NewFromInt(1), nil
	}
	v, ok := d.Valute[code]
	if !ok {
		return decimal.Decimal{}, fmt.Errorf("currency %s is not quoted", code)
	}
	if !v.Value.IsPositive() {
		return decimal.Decimal{}, fmt.Errorf("currency %s has non-positive rate %s", code, v.Value)
	}
	return v.Value.Div(decimal.NewFromInt(v.Nominal)), nil
}
