package entities

import (
	"bytes"
	"encoding/gob"
	"time"

	"github.com/shopspring/decimal"
)

// Stage is the position of a session in the order intake flow.
type Stage int

const (
	StageIdle Stage = iota
	StageChoosingCountry
	StageCountrySelected
	StageCategorySelected
	// StageSubcategorySelected is held only while a currency choice is pending.
	StageSubcategorySelected
	StageAwaitingPrice
	StageQuoted
)

func (s Stage) String() string {
	switch s {
	case StageIdle:
		return "Idle"
	case StageChoosingCountry:
		return "ChoosingCountry"
	case StageCountrySelected:
		return "CountrySelected"
	case StageCategorySelected:
		return "CategorySelected"
	case StageSubcategorySelected:
		return "SubcategorySelected"
	case StageAwaitingPrice:
		return "AwaitingPrice"
	case StageQuoted:
		return "Quoted"
	default:
		return "Unknown"
	}
}

type QuoteRequest struct {
	Country     string
	Price       decimal.Decimal
	Currency    string
	WeightClass decimal.Decimal
}

// Quote is a cost breakdown in Currency (always RUB).
type Quote struct {
	ConvertedGoods decimal.Decimal
	ShippingFee    decimal.Decimal
	Subtotal       decimal.Decimal
	Commission     decimal.Decimal
	Total          int64
	Currency       string
}

// Session is the per-user state of an order intake flow.
type Session struct {
	UserID   int64
	Username string
	Stage    Stage

	Country     string
	Category    string
	Subcategory string
	WeightClass decimal.Decimal
	Currency    string
	PriceInput  decimal.Decimal

	Quote     *Quote
	UpdatedAt time.Time
}

// Quoted reports whether the session holds everything an order needs.
func (s *Session) Quoted() bool {
	return s.Stage == StageQuoted && s.Quote != nil &&
		s.Country != "" && s.Category != "" && s.Subcategory != "" && s.Currency != "" &&
		s.PriceInput.IsPositive() && s.WeightClass.IsPositive()
}

func (s *Session) Marshal() ([]byte, error) {
	var buf bytes.Buffer
	enc := gob.NewEncoder(&buf)
	if err := enc.Encode(s); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

func (s *Session) Unmarshal(data []byte) error {
	buf := bytes.NewBuffer(data)
	dec := gob.NewDecoder(buf)
	return dec.Decode(s)
}

func init() {
	gob.Register(Session{})
	gob.Register(Quote{})
}
