package handler_test

import (
	"encoding/json"
	"errors"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/SergeyBogomolovv/kory-delivery/internal/entities"
	"github.com/SergeyBogomolovv/kory-delivery/internal/handler"
	mocks "github.com/SergeyBogomolovv/kory-delivery/internal/handler/mocks"
	"github.com/go-chi/chi/v5"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

const adminID int64 = 100

type deps struct {
	bot    *mocks.MockUpdateHandler
	orders *mocks.MockOrderLister
	admin  *mocks.MockAdminQuerier
}

func newRouter(t *testing.T) (chi.Router, deps) {
	t.Helper()
	d := deps{
		bot:    mocks.NewMockUpdateHandler(t),
		orders: mocks.NewMockOrderLister(t),
		admin:  mocks.NewMockAdminQuerier(t),
	}
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	h := handler.NewHTTPHandler(logger, d.bot, d.orders, d.admin)

	r := chi.NewRouter()
	h.Init(r)
	return r, d
}

func serve(t *testing.T, r http.Handler, req *http.Request) (int, string) {
	t.Helper()
	rr := httptest.NewRecorder()
	r.ServeHTTP(rr, req)

	res := rr.Result()
	defer res.Body.Close()

	body, err := io.ReadAll(res.Body)
	require.NoError(t, err)
	return res.StatusCode, string(body)
}

func testOrder(status entities.OrderStatus) entities.Order {
	return entities.Order{
		OrderNumber:    "KD-261015-7-ABCDEF",
		UserID:         42,
		Username:       "kory",
		Country:        "china",
		Category:       "shoes",
		Subcategory:    "sneakers",
		PriceInput:     decimal.NewFromInt(1000),
		Currency:       "CNY",
		WeightClass:    decimal.RequireFromString("1.5"),
		ConvertedGoods: decimal.RequireFromString("11250"),
		ShippingFee:    decimal.RequireFromString("1650"),
		Commission:     decimal.RequireFromString("1125"),
		TotalAmount:    14025,
		Status:         status,
	}
}

func TestHTTPHandler_HandleUpdate(t *testing.T) {
	type MockBehavior func(bot *mocks.MockUpdateHandler)

	testCases := []struct {
		name         string
		body         string
		mockBehavior MockBehavior
		wantStatus   int
		wantBody     string
	}{
		{
			name: "success",
			body: `{"user_id":42,"username":"kory","kind":"command","value":"/start"}`,
			mockBehavior: func(bot *mocks.MockUpdateHandler) {
				bot.EXPECT().
					Handle(mock.Anything, entities.Update{UserID: 42, Username: "kory", Kind: entities.UpdateCommand, Value: "/start"}).
					Return([]entities.Reply{{
						Kind:        entities.ReplyPrompt,
						RecipientID: 42,
						Text:        "hello",
						Options:     []entities.Option{{Label: "go", Token: "new_order"}},
					}}).Once()
			},
			wantStatus: http.StatusOK,
			wantBody:   `"token":"new_order"`,
		},
		{
			name: "silent update",
			body: `{"user_id":42,"kind":"command","value":"/admin"}`,
			mockBehavior: func(bot *mocks.MockUpdateHandler) {
				bot.EXPECT().Handle(mock.Anything, mock.Anything).Return(nil).Once()
			},
			wantStatus: http.StatusOK,
			wantBody:   `"replies":[]`,
		},
		{
			name:         "broken json",
			body:         `{"user_id":`,
			mockBehavior: func(bot *mocks.MockUpdateHandler) {},
			wantStatus:   http.StatusBadRequest,
			wantBody:     `"invalid request body"`,
		},
		{
			name:         "unknown kind",
			body:         `{"user_id":42,"kind":"sticker","value":"x"}`,
			mockBehavior: func(bot *mocks.MockUpdateHandler) {},
			wantStatus:   http.StatusBadRequest,
			wantBody:     `"Kind":"oneof"`,
		},
		{
			name:         "missing user",
			body:         `{"kind":"text","value":"100"}`,
			mockBehavior: func(bot *mocks.MockUpdateHandler) {},
			wantStatus:   http.StatusBadRequest,
			wantBody:     `"UserID":"required"`,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			r, d := newRouter(t)
			tc.mockBehavior(d.bot)

			req := httptest.NewRequest(http.MethodPost, "/updates", strings.NewReader(tc.body))
			status, body := serve(t, r, req)

			assert.Equal(t, tc.wantStatus, status)
			assert.Contains(t, body, tc.wantBody)
		})
	}
}

func TestHTTPHandler_ListUserOrders(t *testing.T) {
	type MockBehavior func(orders *mocks.MockOrderLister)

	testCases := []struct {
		name         string
		userID       string
		mockBehavior MockBehavior
		wantStatus   int
		wantBody     string
	}{
		{
			name:   "success",
			userID: "42",
			mockBehavior: func(orders *mocks.MockOrderLister) {
				orders.EXPECT().ListByUser(mock.Anything, int64(42)).
					Return([]entities.Order{testOrder(entities.StatusProcessing)}, nil).Once()
			},
			wantStatus: http.StatusOK,
			wantBody:   `"order_number":"KD-261015-7-ABCDEF"`,
		},
		{
			name:   "no orders",
			userID: "42",
			mockBehavior: func(orders *mocks.MockOrderLister) {
				orders.EXPECT().ListByUser(mock.Anything, int64(42)).Return([]entities.Order{}, nil).Once()
			},
			wantStatus: http.StatusOK,
			wantBody:   `"orders":[]`,
		},
		{
			name:         "bad user id",
			userID:       "kory",
			mockBehavior: func(orders *mocks.MockOrderLister) {},
			wantStatus:   http.StatusBadRequest,
			wantBody:     `"invalid request"`,
		},
		{
			name:         "non positive user id",
			userID:       "0",
			mockBehavior: func(orders *mocks.MockOrderLister) {},
			wantStatus:   http.StatusBadRequest,
			wantBody:     `"invalid request"`,
		},
		{
			name:   "internal error",
			userID: "42",
			mockBehavior: func(orders *mocks.MockOrderLister) {
				orders.EXPECT().ListByUser(mock.Anything, int64(42)).
					Return(nil, errors.New("db error")).Once()
			},
			wantStatus: http.StatusInternalServerError,
			wantBody:   `"internal server error"`,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			r, d := newRouter(t)
			tc.mockBehavior(d.orders)

			req := httptest.NewRequest(http.MethodGet, "/users/"+tc.userID+"/orders", nil)
			status, body := serve(t, r, req)

			assert.Equal(t, tc.wantStatus, status)
			assert.Contains(t, body, tc.wantBody)
		})
	}
}

func TestHTTPHandler_OrderAmountsAsStrings(t *testing.T) {
	r, d := newRouter(t)
	d.orders.EXPECT().ListByUser(mock.Anything, int64(42)).
		Return([]entities.Order{testOrder(entities.StatusDone)}, nil).Once()

	status, body := serve(t, r, httptest.NewRequest(http.MethodGet, "/users/42/orders", nil))
	require.Equal(t, http.StatusOK, status)

	var resp handler.OrdersResponse
	require.NoError(t, json.Unmarshal([]byte(body), &resp))
	require.Len(t, resp.Orders, 1)

	o := resp.Orders[0]
	assert.Equal(t, "11250.00", o.ConvertedGoods)
	assert.Equal(t, "1650.00", o.ShippingFee)
	assert.Equal(t, "1125.00", o.Commission)
	assert.Equal(t, "1.5", o.WeightClass)
	assert.Equal(t, int64(14025), o.TotalAmount)
	assert.Equal(t, "Done", o.Status)
}

func TestHTTPHandler_ListAdminOrders(t *testing.T) {
	type MockBehavior func(admin *mocks.MockAdminQuerier)

	testCases := []struct {
		name         string
		caller       string
		query        string
		mockBehavior MockBehavior
		wantStatus   int
		wantBody     string
	}{
		{
			name:   "all orders",
			caller: "100",
			mockBehavior: func(admin *mocks.MockAdminQuerier) {
				admin.EXPECT().IsAdmin(adminID).Return(true).Once()
				admin.EXPECT().ListOrders(mock.Anything, adminID, entities.FilterAll).
					Return([]entities.Order{testOrder(entities.StatusProcessing)}, nil).Once()
			},
			wantStatus: http.StatusOK,
			wantBody:   `"status":"Processing"`,
		},
		{
			name:   "filter by status",
			caller: "100",
			query:  "?status=done",
			mockBehavior: func(admin *mocks.MockAdminQuerier) {
				admin.EXPECT().IsAdmin(adminID).Return(true).Once()
				admin.EXPECT().ListOrders(mock.Anything, adminID, entities.StatusFilter(entities.StatusDone)).
					Return([]entities.Order{}, nil).Once()
			},
			wantStatus: http.StatusOK,
			wantBody:   `"orders":[]`,
		},
		{
			name:   "unknown status",
			caller: "100",
			query:  "?status=lost",
			mockBehavior: func(admin *mocks.MockAdminQuerier) {
				admin.EXPECT().IsAdmin(adminID).Return(true).Once()
			},
			wantStatus: http.StatusBadRequest,
			wantBody:   `"unknown status"`,
		},
		{
			name:   "not an admin",
			caller: "42",
			mockBehavior: func(admin *mocks.MockAdminQuerier) {
				admin.EXPECT().IsAdmin(int64(42)).Return(false).Once()
			},
			wantStatus: http.StatusNotFound,
			wantBody:   "404 page not found",
		},
		{
			name:         "no caller header",
			mockBehavior: func(admin *mocks.MockAdminQuerier) {},
			wantStatus:   http.StatusNotFound,
			wantBody:     "404 page not found",
		},
		{
			name:   "internal error",
			caller: "100",
			mockBehavior: func(admin *mocks.MockAdminQuerier) {
				admin.EXPECT().IsAdmin(adminID).Return(true).Once()
				admin.EXPECT().ListOrders(mock.Anything, adminID, entities.FilterAll).
					Return(nil, errors.Join(entities.ErrPersistence, errors.New("db error"))).Once()
			},
			wantStatus: http.StatusInternalServerError,
			wantBody:   `"internal server error"`,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			r, d := newRouter(t)
			tc.mockBehavior(d.admin)

			req := httptest.NewRequest(http.MethodGet, "/admin/orders"+tc.query, nil)
			if tc.caller != "" {
				req.Header.Set(handler.UserIDHeader, tc.caller)
			}
			status, body := serve(t, r, req)

			assert.Equal(t, tc.wantStatus, status)
			assert.Contains(t, body, tc.wantBody)
		})
	}
}

func TestHTTPHandler_UpdateOrderStatus(t *testing.T) {
	const number = "KD-261015-7-ABCDEF"

	type MockBehavior func(admin *mocks.MockAdminQuerier)

	testCases := []struct {
		name         string
		caller       string
		body         string
		mockBehavior MockBehavior
		wantStatus   int
		wantBody     string
	}{
		{
			name:   "done",
			caller: "100",
			body:   `{"status":"Done"}`,
			mockBehavior: func(admin *mocks.MockAdminQuerier) {
				admin.EXPECT().IsAdmin(adminID).Return(true).Once()
				admin.EXPECT().UpdateStatus(mock.Anything, adminID, number, entities.StatusDone).
					Return(testOrder(entities.StatusDone), nil).Once()
			},
			wantStatus: http.StatusOK,
			wantBody:   `"status":"Done"`,
		},
		{
			name:   "order not found",
			caller: "100",
			body:   `{"status":"Canceled"}`,
			mockBehavior: func(admin *mocks.MockAdminQuerier) {
				admin.EXPECT().IsAdmin(adminID).Return(true).Once()
				admin.EXPECT().UpdateStatus(mock.Anything, adminID, number, entities.StatusCanceled).
					Return(entities.Order{}, entities.ErrOrderNotFound).Once()
			},
			wantStatus: http.StatusNotFound,
			wantBody:   `"order not found"`,
		},
		{
			name:   "already closed",
			caller: "100",
			body:   `{"status":"Canceled"}`,
			mockBehavior: func(admin *mocks.MockAdminQuerier) {
				admin.EXPECT().IsAdmin(adminID).Return(true).Once()
				admin.EXPECT().UpdateStatus(mock.Anything, adminID, number, entities.StatusCanceled).
					Return(entities.Order{}, entities.ErrInvalidStatusTransition).Once()
			},
			wantStatus: http.StatusConflict,
			wantBody:   `"order status cannot be changed"`,
		},
		{
			name:   "back to processing is rejected",
			caller: "100",
			body:   `{"status":"Processing"}`,
			mockBehavior: func(admin *mocks.MockAdminQuerier) {
				admin.EXPECT().IsAdmin(adminID).Return(true).Once()
			},
			wantStatus: http.StatusBadRequest,
			wantBody:   `"Status":"oneof"`,
		},
		{
			name:   "broken json",
			caller: "100",
			body:   `{`,
			mockBehavior: func(admin *mocks.MockAdminQuerier) {
				admin.EXPECT().IsAdmin(adminID).Return(true).Once()
			},
			wantStatus: http.StatusBadRequest,
			wantBody:   `"invalid request body"`,
		},
		{
			name:   "not an admin",
			caller: "42",
			body:   `{"status":"Done"}`,
			mockBehavior: func(admin *mocks.MockAdminQuerier) {
				admin.EXPECT().IsAdmin(int64(42)).Return(false).Once()
			},
			wantStatus: http.StatusNotFound,
			wantBody:   "404 page not found",
		},
		{
			name:   "internal error",
			caller: "100",
			body:   `{"status":"Done"}`,
			mockBehavior: func(admin *mocks.MockAdminQuerier) {
				admin.EXPECT().IsAdmin(adminID).Return(true).Once()
				admin.EXPECT().UpdateStatus(mock.Anything, adminID, number, entities.StatusDone).
					Return(entities.Order{}, errors.New("db error")).Once()
			},
			wantStatus: http.StatusInternalServerError,
			wantBody:   `"internal server error"`,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			r, d := newRouter(t)
			tc.mockBehavior(d.admin)

			req := httptest.NewRequest(http.MethodPatch, "/admin/orders/"+number+"/status", strings.NewReader(tc.body))
			req.Header.Set(handler.UserIDHeader, tc.caller)
			status, body := serve(t, r, req)

			assert.Equal(t, tc.wantStatus, status)
			assert.Contains(t, body, tc.wantBody)
		})
	}
}
