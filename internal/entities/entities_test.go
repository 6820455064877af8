package entities_test

import (
	"testing"
	"time"

	"github.com/SergeyBogomolovv/kory-delivery/internal/entities"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseStatusFilter(t *testing.T) {
	testCases := []struct {
		in      string
		want    entities.StatusFilter
		wantErr bool
	}{
		{in: "", want: entities.FilterAll},
		{in: "all", want: entities.FilterAll},
		{in: "ALL", want: entities.FilterAll},
		{in: "done", want: entities.StatusFilter(entities.StatusDone)},
		{in: "Processing", want: entities.StatusFilter(entities.StatusProcessing)},
		{in: "canceled", want: entities.StatusFilter(entities.StatusCanceled)},
		{in: "shipped", wantErr: true},
	}

	for _, tc := range testCases {
		t.Run(tc.in, func(t *testing.T) {
			got, err := entities.ParseStatusFilter(tc.in)
			if tc.wantErr {
				assert.ErrorIs(t, err, entities.ErrValidation)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tc.want, got)
		})
	}
}

func TestOrderStatus_CanTransitionTo(t *testing.T) {
	assert.True(t, entities.StatusProcessing.CanTransitionTo(entities.StatusDone))
	assert.True(t, entities.StatusProcessing.CanTransitionTo(entities.StatusCanceled))
	assert.False(t, entities.StatusProcessing.CanTransitionTo(entities.StatusProcessing))
	assert.False(t, entities.StatusDone.CanTransitionTo(entities.StatusCanceled))
	assert.False(t, entities.StatusCanceled.CanTransitionTo(entities.StatusDone))
}

func TestSession_MarshalUnmarshal(t *testing.T) {
	s := entities.Session{
		UserID:      42,
		Username:    "kory",
		Stage:       entities.StageQuoted,
		Country:     "china",
		Category:    "shoes",
		Subcategory: "sneakers",
		WeightClass: decimal.RequireFromString("1.5"),
		Currency:    "CNY",
		PriceInput:  decimal.RequireFromString("1000"),
		Quote: &entities.Quote{
			ConvertedGoods: decimal.RequireFromString("12525"),
			Commission:     decimal.RequireFromString("1500"),
			Total:          14025,
			Currency:       entities.CurrencyRUB,
		},
		UpdatedAt: time.Date(2026, 10, 15, 12, 0, 0, 0, time.UTC),
	}

	data, err := s.Marshal()
	require.NoError(t, err)

	var got entities.Session
	require.NoError(t, got.Unmarshal(data))

	assert.Equal(t, s.UserID, got.UserID)
	assert.Equal(t, s.Stage, got.Stage)
	assert.Equal(t, s.Subcategory, got.Subcategory)
	assert.True(t, s.WeightClass.Equal(got.WeightClass))
	assert.True(t, s.PriceInput.Equal(got.PriceInput))
	require.NotNil(t, got.Quote)
	assert.Equal(t, int64(14025), got.Quote.Total)
	assert.True(t, got.UpdatedAt.Equal(s.UpdatedAt))
	assert.True(t, got.Quoted())
}

func TestSession_Quoted(t *testing.T) {
	s := entities.Session{Stage: entities.StageAwaitingPrice, Country: "china"}
	assert.False(t, s.Quoted())
}
