package repo

import (
	"database/sql"
	"time"

	"github.com/SergeyBogomolovv/kory-delivery/internal/entities"
	"github.com/shopspring/decimal"
)

type Order struct {
	OrderNumber    string          `db:"order_number"`
	UserID         int64           `db:"user_id"`
	Username       sql.NullString  `db:"username"`
	Country        string          `db:"country"`
	Category       string          `db:"category"`
	Subcategory    string          `db:"subcategory"`
	PriceInput     decimal.Decimal `db:"price_input"`
	Currency       string          `db:"currency"`
	WeightClass    decimal.Decimal `db:"weight_class"`
	ConvertedGoods decimal.Decimal `db:"converted_goods"`
	ShippingFee    decimal.Decimal `db:"shipping_fee"`
	Commission     decimal.Decimal `db:"commission"`
	TotalAmount    int64           `db:"total_amount"`
	Status         string          `db:"status"`
	CreatedAt      time.Time       `db:"created_at"`
}

type ExchangeRate struct {
	Base   string          `db:"base_currency"`
	Target string          `db:"target_currency"`
	Date   time.Time       `db:"rate_date"`
	Rate   decimal.Decimal `db:"rate"`
}

var orderColumns = []string{
	"order_number", "user_id", "username", "country", "category", "subcategory",
	"price_input", "currency", "weight_class", "converted_goods", "shipping_fee",
	"commission", "total_amount", "status", "created_at",
}

func OrderToEntity(o Order) entities.Order {
	return entities.Order{
		OrderNumber:    o.OrderNumber,
		UserID:         o.UserID,
		Username:       nullStringToString(o.Username),
		Country:        o.Country,
		Category:       o.Category,
		Subcategory:    o.Subcategory,
		PriceInput:     o.PriceInput,
		Currency:       o.Currency,
		WeightClass:    o.WeightClass,
		ConvertedGoods: o.ConvertedGoods,
		ShippingFee:    o.ShippingFee,
		Commission:     o.Commission,
		TotalAmount:    o.TotalAmount,
		Status:         entities.OrderStatus(o.Status),
		CreatedAt:      o.CreatedAt.UTC(),
	}
}

func OrdersToEntities(orders []Order) []entities.Order {
	result := make([]entities.Order, 0, len(orders))
	for _, o := range orders {
		result = append(result, OrderToEntity(o))
	}
	return result
}

func nullStringToString(ns sql.NullString) string {
	if ns.Valid {
		return ns.String
	}
	return ""
}

func nullString(s string) sql.NullString {
	if s == "" {
		return sql.NullString{}
	}
	return sql.NullString{String: s, Valid: true}
}
