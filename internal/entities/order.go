package entities

import (
	"fmt"
	"strings"
	"time"

	"github.com/shopspring/decimal"
)

// Money amounts are kept in minor units of the currency and below
// MaxAmount, which is what the orders table can hold.
const MoneyScale int32 = 2

var MaxAmount = decimal.New(1, 14)

type OrderStatus string

const (
	StatusProcessing OrderStatus = "Processing"
	StatusDone       OrderStatus = "Done"
	StatusCanceled   OrderStatus = "Canceled"
)

// StatusFilter selects orders by status. FilterAll matches every order.
type StatusFilter string

const FilterAll StatusFilter = "all"

// ParseStatusFilter accepts "all" or a status name, case-insensitive.
// An empty string means all.
func ParseStatusFilter(s string) (StatusFilter, error) {
	s = strings.TrimSpace(s)
	if s == "" || strings.EqualFold(s, string(FilterAll)) {
		return FilterAll, nil
	}
	status, err := ParseOrderStatus(s)
	if err != nil {
		return "", err
	}
	return StatusFilter(status), nil
}

func ParseOrderStatus(s string) (OrderStatus, error) {
	for _, st := range []OrderStatus{StatusProcessing, StatusDone, StatusCanceled} {
		if strings.EqualFold(s, string(st)) {
			return st, nil
		}
	}
	return "", fmt.Errorf("%w: unknown order status %q", ErrValidation, s)
}

// CanTransitionTo reports whether an order in status s may move to next.
// Only orders in processing change status.
func (s OrderStatus) CanTransitionTo(next OrderStatus) bool {
	return s == StatusProcessing && (next == StatusDone || next == StatusCanceled)
}

type Order struct {
	OrderNumber string
	UserID      int64
	Username    string

	Country     string
	Category    string
	Subcategory string
	PriceInput  decimal.Decimal
	Currency    string
	WeightClass decimal.Decimal

	ConvertedGoods decimal.Decimal
	ShippingFee    decimal.Decimal
	Commission     decimal.Decimal
	TotalAmount    int64

	Status    OrderStatus
	CreatedAt time.Time
}
