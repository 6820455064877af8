package service_test

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"testing"
	"time"

	"github.com/SergeyBogomolovv/kory-delivery/internal/entities"
	"github.com/SergeyBogomolovv/kory-delivery/internal/service"
	mocks "github.com/SergeyBogomolovv/kory-delivery/internal/service/mocks"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestRateService_GetRate(t *testing.T) {
	type MockBehavior func(cache *mocks.MockCache, repo *mocks.MockRateRepo, provider *mocks.MockRateProvider)

	today := entities.RateDate(time.Now(), time.UTC)
	key := "CNY:RUB:" + today.Format(time.DateOnly)

	rate := decimal.RequireFromString("12.5")
	rateData, err := rate.MarshalBinary()
	require.NoError(t, err)

	dbError := errors.New("db error")

	testCases := []struct {
		name         string
		mockBehavior MockBehavior
		want         decimal.Decimal
		wantErr      error
	}{
		{
			name: "memory hit",
			mockBehavior: func(cache *mocks.MockCache, _ *mocks.MockRateRepo, _ *mocks.MockRateProvider) {
				cache.EXPECT().Get(key).Return(rateData, true).Once()
			},
			want: rate,
		},
		{
			name: "database hit fills memory",
			mockBehavior: func(cache *mocks.MockCache, repo *mocks.MockRateRepo, _ *mocks.MockRateProvider) {
				cache.EXPECT().Get(key).Return(nil, false).Once()
				repo.EXPECT().GetRate(mock.Anything, "CNY", "RUB", today).Return(rate, nil).Once()
				cache.EXPECT().Set(key, rateData).Return().Once()
			},
			want: rate,
		},
		{
			name: "provider result is stored in both layers",
			mockBehavior: func(cache *mocks.MockCache, repo *mocks.MockRateRepo, provider *mocks.MockRateProvider) {
				cache.EXPECT().Get(key).Return(nil, false).Once()
				repo.EXPECT().GetRate(mock.Anything, "CNY", "RUB", today).Return(decimal.Decimal{}, entities.ErrRateNotFound).Once()
				provider.EXPECT().Rate(mock.Anything, "CNY", "RUB").Return(rate, nil).Once()
				repo.EXPECT().
					SaveRate(mock.Anything, mock.MatchedBy(func(r entities.ExchangeRate) bool {
						return r.Base == "CNY" && r.Target == "RUB" && r.Date.Equal(today) && r.Rate.Equal(rate)
					})).
					Return(nil).Once()
				cache.EXPECT().Set(key, rateData).Return().Once()
			},
			want: rate,
		},
		{
			name: "database failures degrade to provider",
			mockBehavior: func(cache *mocks.MockCache, repo *mocks.MockRateRepo, provider *mocks.MockRateProvider) {
				cache.EXPECT().Get(key).Return(nil, false).Once()
				repo.EXPECT().GetRate(mock.Anything, "CNY", "RUB", today).Return(decimal.Decimal{}, dbError).Once()
				provider.EXPECT().Rate(mock.Anything, "CNY", "RUB").Return(rate, nil).Once()
				repo.EXPECT().SaveRate(mock.Anything, mock.Anything).Return(dbError).Once()
				cache.EXPECT().Set(key, rateData).Return().Once()
			},
			want: rate,
		},
		{
			name: "broken memory entry is ignored",
			mockBehavior: func(cache *mocks.MockCache, repo *mocks.MockRateRepo, _ *mocks.MockRateProvider) {
				cache.EXPECT().Get(key).Return([]byte("broken"), true).Once()
				repo.EXPECT().GetRate(mock.Anything, "CNY", "RUB", today).Return(rate, nil).Once()
				cache.EXPECT().Set(key, rateData).Return().Once()
			},
			want: rate,
		},
		{
			name: "provider failure",
			mockBehavior: func(cache *mocks.MockCache, repo *mocks.MockRateRepo, provider *mocks.MockRateProvider) {
				cache.EXPECT().Get(key).Return(nil, false).Once()
				repo.EXPECT().GetRate(mock.Anything, "CNY", "RUB", today).Return(decimal.Decimal{}, entities.ErrRateNotFound).Once()
				provider.EXPECT().Rate(mock.Anything, "CNY", "RUB").Return(decimal.Decimal{}, errors.New("503")).Once()
			},
			wantErr: entities.ErrRateUnavailable,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			cache := mocks.NewMockCache(t)
			repo := mocks.NewMockRateRepo(t)
			provider := mocks.NewMockRateProvider(t)
			logger := slog.New(slog.NewTextHandler(io.Discard, nil))

			tc.mockBehavior(cache, repo, provider)

			svc := service.NewRateService(logger, cache, repo, provider, time.Second, time.UTC)

			got, err := svc.GetRate(context.Background(), "CNY", "RUB")
			if tc.wantErr != nil {
				assert.ErrorIs(t, err, tc.wantErr)
				return
			}
			require.NoError(t, err)
			assert.True(t, tc.want.Equal(got), "want %s, got %s", tc.want, got)
		})
	}
}

func TestRateService_GetRate_SameCurrency(t *testing.T) {
	cache := mocks.NewMockCache(t)
	repo := mocks.NewMockRateRepo(t)
	provider := mocks.NewMockRateProvider(t)
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))

	svc := service.NewRateService(logger, cache, repo, provider, time.Second, time.UTC)

	got, err := svc.GetRate(context.Background(), "RUB", "RUB")
	require.NoError(t, err)
	assert.True(t, got.Equal(decimal.NewFromInt(1)))
}

func TestRateService_GetRate_ProviderTimeout(t *testing.T) {
	cache := mocks.NewMockCache(t)
	repo := mocks.NewMockRateRepo(t)
	provider := mocks.NewMockRateProvider(t)
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))

	cache.EXPECT().Get(mock.Anything).Return(nil, false)
	repo.EXPECT().GetRate(mock.Anything, "USD", "RUB", mock.Anything).Return(decimal.Decimal{}, entities.ErrRateNotFound)
	provider.EXPECT().Rate(mock.Anything, "USD", "RUB").
		RunAndReturn(func(ctx context.Context, _ string, _ string) (decimal.Decimal, error) {
			<-ctx.Done()
			return decimal.Decimal{}, ctx.Err()
		})

	svc := service.NewRateService(logger, cache, repo, provider, 20*time.Millisecond, time.UTC)

	_, err := svc.GetRate(context.Background(), "USD", "RUB")
	assert.ErrorIs(t, err, entities.ErrRateUnavailable)
	assert.ErrorIs(t, err, context.DeadlineExceeded)
}
