package middleware_test

import (
	"bytes"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/SergeyBogomolovv/kory-delivery/internal/middleware"
	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
)

func TestLogger(t *testing.T) {
	testCases := []struct {
		name      string
		status    int
		wantLevel string
	}{
		{name: "ok", status: http.StatusOK, wantLevel: "level=INFO"},
		{name: "not found", status: http.StatusNotFound, wantLevel: "level=WARN"},
		{name: "server error", status: http.StatusInternalServerError, wantLevel: "level=ERROR"},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			var buf bytes.Buffer
			logger := slog.New(slog.NewTextHandler(&buf, nil))

			r := chi.NewRouter()
			r.Use(middleware.Logger(logger), middleware.Metrics)
			r.Get("/orders/{id}", func(w http.ResponseWriter, r *http.Request) {
				w.WriteHeader(tc.status)
			})

			req := httptest.NewRequest(http.MethodGet, "/orders/1", nil)
			req.Header.Set("X-User-ID", "100")
			rr := httptest.NewRecorder()
			r.ServeHTTP(rr, req)

			assert.Equal(t, tc.status, rr.Code)
			assert.Contains(t, buf.String(), tc.wantLevel)
			assert.Contains(t, buf.String(), "path=/orders/1")
			assert.Contains(t, buf.String(), "caller=100")
		})
	}
}
