package pricing_test

import (
	"context"
	"errors"
	"testing"

	"github.com/SergeyBogomolovv/kory-delivery/internal/catalog"
	"github.com/SergeyBogomolovv/kory-delivery/internal/entities"
	"github.com/SergeyBogomolovv/kory-delivery/internal/pricing"
	mocks "github.com/SergeyBogomolovv/kory-delivery/internal/pricing/mocks"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func d(s string) decimal.Decimal {
	return decimal.RequireFromString(s)
}

// Same tiers and fee as the default catalog, without shipping for China.
const noShippingCatalog = `{
	"base_currency": "RUB",
	"goods_fee_rate": "0.002",
	"countries": [{"key": "china", "name": "China", "currency": "CNY", "shipping_per_kg_usd": "0"}],
	"categories": [{"key": "shoes", "name": "Shoes", "subcategories": [{"key": "sneakers", "name": "Sneakers", "weight_kg": "1.5"}]}],
	"commission_tiers": [{"up_to": "5000", "fee": "450"}, {"up_to": "9999", "fee": "1000"}, {"fee": "1500"}]
}`

func TestEngine_Quote(t *testing.T) {
	type MockBehavior func(rates *mocks.MockRateGetter)

	noShipping, err := catalog.Parse([]byte(noShippingCatalog))
	require.NoError(t, err)

	testCases := []struct {
		name         string
		catalog      *catalog.Catalog
		req          entities.QuoteRequest
		mockBehavior MockBehavior
		want         entities.Quote
	}{
		{
			name:    "china converts CNY to RUB directly",
			catalog: noShipping,
			req: entities.QuoteRequest{
				Country:     "china",
				Price:       d("1000"),
				WeightClass: d("1.5"),
			},
			mockBehavior: func(rates *mocks.MockRateGetter) {
				rates.EXPECT().GetRate(mock.Anything, "CNY", "RUB").Return(d("12.5"), nil).Once()
			},
			want: entities.Quote{
				ConvertedGoods: d("12525"),
				ShippingFee:    d("0"),
				Subtotal:       d("12525"),
				Commission:     d("1500"),
				Total:          14025,
				Currency:       "RUB",
			},
		},
		{
			name:    "china with shipping",
			catalog: catalog.Default(),
			req: entities.QuoteRequest{
				Country:     "china",
				Price:       d("100"),
				Currency:    "CNY",
				WeightClass: d("0.3"),
			},
			mockBehavior: func(rates *mocks.MockRateGetter) {
				rates.EXPECT().GetRate(mock.Anything, "CNY", "RUB").Return(d("12.5"), nil).Once()
				rates.EXPECT().GetRate(mock.Anything, "USD", "RUB").Return(d("90"), nil).Once()
			},
			want: entities.Quote{
				ConvertedGoods: d("1252.5"),
				ShippingFee:    d("189"),
				Subtotal:       d("1441.5"),
				Commission:     d("450"),
				Total:          1891,
				Currency:       "RUB",
			},
		},
		{
			name:    "amounts are rounded to kopecks",
			catalog: catalog.Default(),
			req: entities.QuoteRequest{
				Country:     "china",
				Price:       d("1234.56"),
				WeightClass: d("0.3"),
			},
			mockBehavior: func(rates *mocks.MockRateGetter) {
				rates.EXPECT().GetRate(mock.Anything, "CNY", "RUB").Return(d("11.1234"), nil).Once()
				rates.EXPECT().GetRate(mock.Anything, "USD", "RUB").Return(d("81.2345"), nil).Once()
			},
			want: entities.Quote{
				ConvertedGoods: d("13759.97"),
				ShippingFee:    d("170.59"),
				Subtotal:       d("13930.56"),
				Commission:     d("1500"),
				Total:          15430,
				Currency:       "RUB",
			},
		},
		{
			name:    "usd skips the first hop and fetches USD/RUB once",
			catalog: catalog.Default(),
			req: entities.QuoteRequest{
				Country:     "usa",
				Price:       d("100"),
				WeightClass: d("1.5"),
			},
			mockBehavior: func(rates *mocks.MockRateGetter) {
				rates.EXPECT().GetRate(mock.Anything, "USD", "RUB").Return(d("90"), nil).Once()
			},
			want: entities.Quote{
				ConvertedGoods: d("9018"),
				ShippingFee:    d("2025"),
				Subtotal:       d("11043"),
				Commission:     d("1500"),
				Total:          12543,
				Currency:       "RUB",
			},
		},
		{
			name:    "korea goes through USD",
			catalog: catalog.Default(),
			req: entities.QuoteRequest{
				Country:     "korea",
				Price:       d("100000"),
				WeightClass: d("0.5"),
			},
			mockBehavior: func(rates *mocks.MockRateGetter) {
				rates.EXPECT().GetRate(mock.Anything, "KRW", "USD").Return(d("0.00072"), nil).Once()
				rates.EXPECT().GetRate(mock.Anything, "USD", "RUB").Return(d("90"), nil).Once()
			},
			want: entities.Quote{
				ConvertedGoods: d("6492.96"),
				ShippingFee:    d("540"),
				Subtotal:       d("7032.96"),
				Commission:     d("1000"),
				Total:          8032,
				Currency:       "RUB",
			},
		},
		{
			name:    "europe uses the chosen currency",
			catalog: catalog.Default(),
			req: entities.QuoteRequest{
				Country:     "europe",
				Price:       d("50"),
				Currency:    "EUR",
				WeightClass: d("0.3"),
			},
			mockBehavior: func(rates *mocks.MockRateGetter) {
				rates.EXPECT().GetRate(mock.Anything, "EUR", "USD").Return(d("1.1"), nil).Once()
				rates.EXPECT().GetRate(mock.Anything, "USD", "RUB").Return(d("90"), nil).Once()
			},
			want: entities.Quote{
				ConvertedGoods: d("4959.9"),
				ShippingFee:    d("378"),
				Subtotal:       d("5337.9"),
				Commission:     d("1000"),
				Total:          6337,
				Currency:       "RUB",
			},
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			rates := mocks.NewMockRateGetter(t)
			tc.mockBehavior(rates)

			engine := pricing.NewEngine(tc.catalog, rates)

			got, err := engine.Quote(context.Background(), tc.req)
			require.NoError(t, err)

			assertDecimal(t, tc.want.ConvertedGoods, got.ConvertedGoods, "converted goods")
			assertDecimal(t, tc.want.ShippingFee, got.ShippingFee, "shipping fee")
			assertDecimal(t, tc.want.Subtotal, got.Subtotal, "subtotal")
			assertDecimal(t, tc.want.Commission, got.Commission, "commission")
			assert.Equal(t, tc.want.Total, got.Total)
			assert.Equal(t, tc.want.Currency, got.Currency)

			// total = floor(convertedGoods + shippingFee + commission)
			sum := got.ConvertedGoods.Add(got.ShippingFee).Add(got.Commission).Floor()
			assert.Equal(t, sum.IntPart(), got.Total)

			for _, amount := range []decimal.Decimal{got.ConvertedGoods, got.ShippingFee, got.Subtotal} {
				assert.True(t, amount.Equal(amount.Round(entities.MoneyScale)), "%s has sub-kopeck digits", amount)
			}
		})
	}
}

func TestEngine_Quote_Errors(t *testing.T) {
	type MockBehavior func(rates *mocks.MockRateGetter)

	providerDown := errors.New("provider down")

	testCases := []struct {
		name         string
		req          entities.QuoteRequest
		mockBehavior MockBehavior
		wantErr      error
	}{
		{
			name:    "unknown country",
			req:     entities.QuoteRequest{Country: "mars", Price: d("1"), WeightClass: d("1")},
			wantErr: entities.ErrValidation,
		},
		{
			name:    "zero price",
			req:     entities.QuoteRequest{Country: "china", Price: d("0"), WeightClass: d("1")},
			wantErr: entities.ErrValidation,
		},
		{
			name:    "negative price",
			req:     entities.QuoteRequest{Country: "china", Price: d("-5"), WeightClass: d("1")},
			wantErr: entities.ErrValidation,
		},
		{
			name:    "missing weight class",
			req:     entities.QuoteRequest{Country: "china", Price: d("10")},
			wantErr: entities.ErrValidation,
		},
		{
			name:    "currency not offered",
			req:     entities.QuoteRequest{Country: "europe", Price: d("10"), Currency: "CNY", WeightClass: d("1")},
			wantErr: entities.ErrValidation,
		},
		{
			name:    "multi-currency region without currency",
			req:     entities.QuoteRequest{Country: "europe", Price: d("10"), WeightClass: d("1")},
			wantErr: entities.ErrValidation,
		},
		{
			name: "rate unavailable",
			req:  entities.QuoteRequest{Country: "china", Price: d("10"), WeightClass: d("1")},
			mockBehavior: func(rates *mocks.MockRateGetter) {
				rates.EXPECT().GetRate(mock.Anything, "CNY", "RUB").
					Return(decimal.Decimal{}, entities.ErrRateUnavailable).Once()
			},
			wantErr: entities.ErrRateUnavailable,
		},
		{
			name: "any rate failure is reported as unavailable",
			req:  entities.QuoteRequest{Country: "usa", Price: d("10"), WeightClass: d("1")},
			mockBehavior: func(rates *mocks.MockRateGetter) {
				rates.EXPECT().GetRate(mock.Anything, "USD", "RUB").
					Return(decimal.Decimal{}, providerDown).Once()
			},
			wantErr: entities.ErrRateUnavailable,
		},
		{
			name: "second hop fails",
			req:  entities.QuoteRequest{Country: "japan", Price: d("1000"), WeightClass: d("1")},
			mockBehavior: func(rates *mocks.MockRateGetter) {
				rates.EXPECT().GetRate(mock.Anything, "JPY", "USD").Return(d("0.0067"), nil).Once()
				rates.EXPECT().GetRate(mock.Anything, "USD", "RUB").
					Return(decimal.Decimal{}, entities.ErrRateUnavailable).Once()
			},
			wantErr: entities.ErrRateUnavailable,
		},
		{
			name: "total does not fit the order table",
			req:  entities.QuoteRequest{Country: "china", Price: d("99999999999999999999"), WeightClass: d("0.3")},
			mockBehavior: func(rates *mocks.MockRateGetter) {
				rates.EXPECT().GetRate(mock.Anything, "CNY", "RUB").Return(d("12.5"), nil).Once()
				rates.EXPECT().GetRate(mock.Anything, "USD", "RUB").Return(d("90"), nil).Once()
			},
			wantErr: entities.ErrValidation,
		},
		{
			name: "non-positive rate",
			req:  entities.QuoteRequest{Country: "china", Price: d("10"), WeightClass: d("1")},
			mockBehavior: func(rates *mocks.MockRateGetter) {
				rates.EXPECT().GetRate(mock.Anything, "CNY", "RUB").Return(d("0"), nil).Once()
			},
			wantErr: entities.ErrRateUnavailable,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			rates := mocks.NewMockRateGetter(t)
			if tc.mockBehavior != nil {
				tc.mockBehavior(rates)
			}

			engine := pricing.NewEngine(catalog.Default(), rates)

			_, err := engine.Quote(context.Background(), tc.req)
			assert.ErrorIs(t, err, tc.wantErr)
		})
	}
}

func TestEngine_Quote_Repeatable(t *testing.T) {
	rates := mocks.NewMockRateGetter(t)
	rates.EXPECT().GetRate(mock.Anything, "CNY", "RUB").Return(d("12.5"), nil)
	rates.EXPECT().GetRate(mock.Anything, "USD", "RUB").Return(d("90"), nil)

	engine := pricing.NewEngine(catalog.Default(), rates)
	req := entities.QuoteRequest{Country: "china", Price: d("777.7"), WeightClass: d("2")}

	first, err := engine.Quote(context.Background(), req)
	require.NoError(t, err)
	second, err := engine.Quote(context.Background(), req)
	require.NoError(t, err)

	assert.Equal(t, first.Total, second.Total)
	assertDecimal(t, first.Subtotal, second.Subtotal, "subtotal")
}

func assertDecimal(t *testing.T, want, got decimal.Decimal, field string) {
	t.Helper()
	assert.True(t, want.Equal(got), "%s: want %s, got %s", field, want, got)
}
