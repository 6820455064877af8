package utils_test

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/SergeyBogomolovv/kory-delivery/pkg/utils"
	"github.com/go-playground/validator/v10"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDecodeBody(t *testing.T) {
	type payload struct {
		Value string `json:"value"`
	}

	t.Run("ok", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodPost, "/", strings.NewReader(`{"value":"x"}`))
		var p payload
		require.NoError(t, utils.DecodeBody(req, &p))
		assert.Equal(t, "x", p.Value)
	})

	t.Run("body over the limit", func(t *testing.T) {
		body := `{"value":"` + strings.Repeat("a", utils.MaxBodySize) + `"}`
		req := httptest.NewRequest(http.MethodPost, "/", strings.NewReader(body))
		var p payload
		assert.Error(t, utils.DecodeBody(req, &p))
	})
}

func TestWriteValidationError(t *testing.T) {
	type input struct {
		Status string `validate:"required,oneof=Done Canceled"`
	}

	testCases := []struct {
		name     string
		err      error
		wantBody string
	}{
		{
			name:     "validator error",
			err:      validator.New().Struct(input{Status: "Lost"}),
			wantBody: `"fields":{"Status":"oneof"}`,
		},
		{
			name:     "other error",
			err:      errors.New("strconv.ParseInt: parsing \"x\": invalid syntax"),
			wantBody: `"fields":{}`,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			rr := httptest.NewRecorder()
			require.NoError(t, utils.WriteValidationError(rr, tc.err))

			assert.Equal(t, http.StatusBadRequest, rr.Code)
			assert.Equal(t, "application/json", rr.Header().Get("Content-Type"))
			assert.Contains(t, rr.Body.String(), `"message":"invalid request"`)
			assert.Contains(t, rr.Body.String(), tc.wantBody)
		})
	}
}
