package provider_test

import (
	"context"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/SergeyBogomolovv/kory-delivery/internal/provider"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const dailyJSON = `{
	"Date": "2026-10-15T11:30:00+03:00",
	"Valute": {
		"USD": {"ID": "R01235", "CharCode": "USD", "Nominal": 1, "Name": "Доллар США", "Value": 80.0},
		"CNY": {"ID": "R01375", "CharCode": "CNY", "Nominal": 1, "Name": "Юань", "Value": 12.5},
		"KRW": {"ID": "R01815", "CharCode": "KRW", "Nominal": 1000, "Name": "Вон", "Value": 60.0},
		"EUR": {"ID": "R01239", "CharCode": "EUR", "Nominal": 1, "Name": "Евро", "Value": 88.0}
	}
}`

func newServer(t *testing.T, status int, body string) *httptest.Server {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(status)
		_, _ = w.Write([]byte(body))
	}))
	t.Cleanup(srv.Close)
	return srv
}

func TestCBR_Rate(t *testing.T) {
	srv := newServer(t, http.StatusOK, dailyJSON)
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	p := provider.NewCBR(logger, srv.URL, time.Second)

	testCases := []struct {
		name   string
		base   string
		target string
		want   string
	}{
		{name: "CNY to RUB", base: "CNY", target: "RUB", want: "12.5"},
		{name: "USD to RUB", base: "USD", target: "RUB", want: "80"},
		{name: "EUR to USD", base: "EUR", target: "USD", want: "1.1"},
		{name: "nominal is applied", base: "KRW", target: "RUB", want: "0.06"},
		{name: "RUB to USD", base: "RUB", target: "USD", want: "0.0125"},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			got, err := p.Rate(context.Background(), tc.base, tc.target)
			require.NoError(t, err)
			want := decimal.RequireFromString(tc.want)
			assert.True(t, want.Equal(got), "want %s, got %s", want, got)
		})
	}
}

func TestCBR_Rate_Errors(t *testing.T) {
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))

	testCases := []struct {
		name   string
		status int
		body   string
		base   string
	}{
		{name: "unknown currency", status: http.StatusOK, body: dailyJSON, base: "XYZ"},
		{name: "server error", status: http.StatusInternalServerError, body: "oops", base: "USD"},
		{name: "broken payload", status: http.StatusOK, body: "{", base: "USD"},
		{name: "zero nominal", status: http.StatusOK, body: `{"Valute": {"USD": {"CharCode": "USD", "Nominal": 0, "Value": 80}}}`, base: "USD"},
		{name: "zero value", status: http.StatusOK, body: `{"Valute": {"USD": {"CharCode": "USD", "Nominal": 1, "Value": 0}}}`, base: "USD"},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			srv := newServer(t, tc.status, tc.body)
			p := provider.NewCBR(logger, srv.URL, time.Second)

			_, err := p.Rate(context.Background(), tc.base, "RUB")
			assert.Error(t, err)
		})
	}
}

func TestCBR_Rate_Timeout(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		select {
		case <-r.Context().Done():
		case <-time.After(time.Second):
		}
	}))
	t.Cleanup(srv.Close)

	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	p := provider.NewCBR(logger, srv.URL, 20*time.Millisecond)

	_, err := p.Rate(context.Background(), "USD", "RUB")
	assert.Error(t, err)
}
