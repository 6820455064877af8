package handler

import (
	"time"

	"github.com/SergeyBogomolovv/kory-delivery/internal/entities"
)

// Update событие от мессенджер-шлюза
type Update struct {
	UserID   int64  `json:"user_id" validate:"required,gt=0"`
	Username string `json:"username,omitempty"`
	Kind     string `json:"kind" validate:"required,oneof=command choice text"`
	Value    string `json:"value" validate:"required"`
}

// Option вариант ответа, который шлюз рисует кнопкой
type Option struct {
	Label string `json:"label"`
	Token string `json:"token"`
}

// Reply инструкция для шлюза
type Reply struct {
	Kind            string   `json:"kind" enums:"prompt,message,direct"`
	RecipientID     int64    `json:"recipient_id"`
	Text            string   `json:"text"`
	Options         []Option `json:"options,omitempty"`
	ReplacePrevious bool     `json:"replace_previous,omitempty"`
}

// RepliesResponse ответы на одно событие
type RepliesResponse struct {
	Replies []Reply `json:"replies"`
}

// Order представляет заказ
type Order struct {
	OrderNumber    string    `json:"order_number"`
	UserID         int64     `json:"user_id"`
	Username       string    `json:"username,omitempty"`
	Country        string    `json:"country"`
	Category       string    `json:"category"`
	Subcategory    string    `json:"subcategory"`
	PriceInput     string    `json:"price_input"`
	Currency       string    `json:"currency"`
	WeightClass    string    `json:"weight_class"`
	ConvertedGoods string    `json:"converted_goods"`
	ShippingFee    string    `json:"shipping_fee"`
	Commission     string    `json:"commission"`
	TotalAmount    int64     `json:"total_amount"`
	Status         string    `json:"status" enums:"Processing,Done,Canceled"`
	CreatedAt      time.Time `json:"created_at"`
}

// OrdersResponse список заказов
type OrdersResponse struct {
	Orders []Order `json:"orders"`
}

// StatusUpdate новый статус заказа
type StatusUpdate struct {
	Status string `json:"status" validate:"required,oneof=Done Canceled"`
}

func UpdateJSONToEntity(u Update) entities.Update {
	return entities.Update{
		UserID:   u.UserID,
		Username: u.Username,
		Kind:     entities.UpdateKind(u.Kind),
		Value:    u.Value,
	}
}

func ReplyEntityToJSON(r entities.Reply) Reply {
	options := make([]Option, 0, len(r.Options))
	for _, o := range r.Options {
		options = append(options, Option{Label: o.Label, Token: o.Token})
	}
	return Reply{
		Kind:            string(r.Kind),
		RecipientID:     r.RecipientID,
		Text:            r.Text,
		Options:         options,
		ReplacePrevious: r.ReplacePrevious,
	}
}

func RepliesEntityToJSON(replies []entities.Reply) RepliesResponse {
	res := RepliesResponse{Replies: make([]Reply, 0, len(replies))}
	for _, r := range replies {
		res.Replies = append(res.Replies, ReplyEntityToJSON(r))
	}
	return res
}

func OrderEntityToJSON(o entities.Order) Order {
	return Order{
		OrderNumber:    o.OrderNumber,
		UserID:         o.UserID,
		Username:       o.Username,
		Country:        o.Country,
		Category:       o.Category,
		Subcategory:    o.Subcategory,
		PriceInput:     o.PriceInput.String(),
		Currency:       o.Currency,
		WeightClass:    o.WeightClass.String(),
		ConvertedGoods: o.ConvertedGoods.StringFixed(2),
		ShippingFee:    o.ShippingFee.StringFixed(2),
		Commission:     o.Commission.StringFixed(2),
		TotalAmount:    o.TotalAmount,
		Status:         string(o.Status),
		CreatedAt:      o.CreatedAt,
	}
}

func OrdersEntityToJSON(orders []entities.Order) OrdersResponse {
	res := OrdersResponse{Orders: make([]Order, 0, len(orders))}
	for _, o := range orders {
		res.Orders = append(res.Orders, OrderEntityToJSON(o))
	}
	return res
}
