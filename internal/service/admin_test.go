package service_test

import (
	"context"
	"io"
	"log/slog"
	"testing"

	"github.com/SergeyBogomolovv/kory-delivery/internal/entities"
	"github.com/SergeyBogomolovv/kory-delivery/internal/service"
	mocks "github.com/SergeyBogomolovv/kory-delivery/internal/service/mocks"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

const adminID int64 = 100

func TestAdminService_ListOrders(t *testing.T) {
	type MockBehavior func(store *mocks.MockOrderStore)

	orders := []entities.Order{
		{OrderNumber: "KD-1", Status: entities.StatusDone},
	}

	testCases := []struct {
		name         string
		callerID     int64
		filter       entities.StatusFilter
		mockBehavior MockBehavior
		want         []entities.Order
		wantErr      error
	}{
		{
			name:     "admin with status filter",
			callerID: adminID,
			filter:   entities.StatusFilter(entities.StatusDone),
			mockBehavior: func(store *mocks.MockOrderStore) {
				store.EXPECT().ListByStatus(mock.Anything, entities.StatusFilter(entities.StatusDone)).Return(orders, nil).Once()
			},
			want: orders,
		},
		{
			name:     "admin on empty store",
			callerID: adminID,
			filter:   entities.FilterAll,
			mockBehavior: func(store *mocks.MockOrderStore) {
				store.EXPECT().ListByStatus(mock.Anything, entities.FilterAll).Return([]entities.Order{}, nil).Once()
			},
			want: []entities.Order{},
		},
		{
			name:         "caller outside the allow-list",
			callerID:     1,
			filter:       entities.FilterAll,
			mockBehavior: func(_ *mocks.MockOrderStore) {},
			wantErr:      entities.ErrUnauthorized,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			store := mocks.NewMockOrderStore(t)
			logger := slog.New(slog.NewTextHandler(io.Discard, nil))

			tc.mockBehavior(store)

			svc := service.NewAdminService(logger, store, []int64{adminID})

			got, err := svc.ListOrders(context.Background(), tc.callerID, tc.filter)
			if tc.wantErr != nil {
				assert.ErrorIs(t, err, tc.wantErr)
				assert.Nil(t, got)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tc.want, got)
		})
	}
}

func TestAdminService_UpdateStatus(t *testing.T) {
	store := mocks.NewMockOrderStore(t)
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))

	updated := entities.Order{OrderNumber: "KD-1", Status: entities.StatusCanceled}
	store.EXPECT().UpdateStatus(mock.Anything, "KD-1", entities.StatusCanceled).Return(updated, nil).Once()

	svc := service.NewAdminService(logger, store, []int64{adminID})

	got, err := svc.UpdateStatus(context.Background(), adminID, "KD-1", entities.StatusCanceled)
	require.NoError(t, err)
	assert.Equal(t, updated, got)

	_, err = svc.UpdateStatus(context.Background(), 1, "KD-1", entities.StatusDone)
	assert.ErrorIs(t, err, entities.ErrUnauthorized)
}

func TestAdminService_IsAdmin(t *testing.T) {
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	svc := service.NewAdminService(logger, mocks.NewMockOrderStore(t), []int64{adminID, 200})

	assert.True(t, svc.IsAdmin(adminID))
	assert.False(t, svc.IsAdmin(0))
	assert.ElementsMatch(t, []int64{adminID, 200}, svc.AdminIDs())
}
