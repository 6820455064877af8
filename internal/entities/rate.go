package entities

import (
	"time"

	"github.com/shopspring/decimal"
)

const (
	CurrencyRUB = "RUB"
	CurrencyUSD = "USD"
	CurrencyCNY = "CNY"
)

// ExchangeRate is the price of one unit of Base in Target on Date.
type ExchangeRate struct {
	Base   string
	Target string
	Date   time.Time
	Rate   decimal.Decimal
}

// RateDate returns t as a calendar date in loc.
func RateDate(t time.Time, loc *time.Location) time.Time {
	y, m, d := t.In(loc).Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}
