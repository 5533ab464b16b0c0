package gateway

import (
	"encoding/json"
	"errors"
	"fmt"
	"math"
	"net/http"
	"net/http/httptest"
	"testing"

	vhttp "github.com/erpbridge/odoorest/libs/http"
	"github.com/erpbridge/odoorest/logging"
	"github.com/erpbridge/odoorest/odoo"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRouteLabel(t *testing.T) {
	assert.Equal(t, "", routeLabel("/"))
	assert.Equal(t, "health", routeLabel("/health"))
	assert.Equal(t, "odoo", routeLabel("/odoo/res.partner/7,14"))
	assert.Equal(t, "invoices", routeLabel("/invoices/89/confirm"))
}

func TestRequestIDMiddleware(t *testing.T) {
	var seen string
	h := RequestIDMiddleware(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		seen = vhttp.RequestIDFromContext(r.Context())
	}))

	t.Run("kept from the caller", func(tt *testing.T) {
		r := httptest.NewRequest(http.MethodGet, "/", nil)
		r.Header.Set(vhttp.RequestIDHeader, "abc-123")
		w := httptest.NewRecorder()

		h.ServeHTTP(w, r)

		assert.Equal(tt, "abc-123", seen)
		assert.Equal(tt, "abc-123", w.Header().Get(vhttp.RequestIDHeader))
	})

	t.Run("generated when missing", func(tt *testing.T) {
		r := httptest.NewRequest(http.MethodGet, "/", nil)
		w := httptest.NewRecorder()

		h.ServeHTTP(w, r)

		assert.Len(tt, seen, 36)
		assert.Equal(tt, seen, w.Header().Get(vhttp.RequestIDHeader))
	})
}

func TestRemoteAddrMiddleware(t *testing.T) {
	var ip string
	h := RemoteAddrMiddleware(logging.NewTestLogger(), http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		ip, _ = vhttp.RemoteIPAddrFromContext(r.Context())
	}))
	r := httptest.NewRequest(http.MethodGet, "/", nil)
	r.RemoteAddr = "10.1.2.3:45678"

	h.ServeHTTP(httptest.NewRecorder(), r)

	assert.Equal(t, "10.1.2.3", ip)
}

func TestRecoverMiddleware(t *testing.T) {
	h := RecoverMiddleware(logging.NewTestLogger(), http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		panic("boom")
	}))
	w := httptest.NewRecorder()

	assert.NotPanics(t, func() {
		h.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/", nil))
	})

	assert.Equal(t, http.StatusInternalServerError, w.Code)
	var resp ErrorResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, "Internal server error", resp.Message)
}

func TestStatusFromError(t *testing.T) {
	tcs := []struct {
		name    string
		err     error
		status  int
		message string
	}{
		{
			name:    "invalid credentials",
			err:     fmt.Errorf("authenticate: %w", odoo.ErrInvalidCredentials),
			status:  http.StatusUnauthorized,
			message: "Invalid credentials",
		},
		{
			name:    "authentication failed",
			err:     odoo.ErrAuthenticationFailed,
			status:  http.StatusUnauthorized,
			message: "Authentication failed",
		},
		{
			name:    "not found",
			err:     odoo.NewRecordError(odoo.ErrNotFound, "Product with ID %d not found", 3),
			status:  http.StatusNotFound,
			message: "Product with ID 3 not found",
		},
		{
			name:    "invalid reference",
			err:     odoo.NewRecordError(odoo.ErrInvalidReference, "Partner with ID %d does not exist", 4),
			status:  http.StatusBadRequest,
			message: "Partner with ID 4 does not exist",
		},
		{
			name:    "remote fault",
			err:     &odoo.RemoteError{Fault: true, Message: "Access Denied"},
			status:  http.StatusBadRequest,
			message: "Odoo API Error: Access Denied",
		},
		{
			name:    "rate limited",
			err:     fmt.Errorf("%w (partner creation for 10.0.0.1)", vhttp.ErrRateLimited),
			status:  http.StatusTooManyRequests,
			message: vhttp.ErrRateLimited.Error() + " (partner creation for 10.0.0.1)",
		},
		{
			name:    "anything else",
			err:     errors.New("nil pointer"),
			status:  http.StatusInternalServerError,
			message: "Internal server error",
		},
	}
	for _, tc := range tcs {
		t.Run(tc.name, func(tt *testing.T) {
			status, message := StatusFromError(tc.err)
			assert.Equal(tt, tc.status, status)
			assert.Equal(tt, tc.message, message)
		})
	}
}

func TestWriteError(t *testing.T) {
	w := httptest.NewRecorder()

	WriteError(w, http.StatusBadRequest, "Invalid ID: \"x\"")

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Equal(t, "application/json", w.Header().Get("Content-Type"))
	assert.JSONEq(t, `{"statusCode":400,"message":"Invalid ID: \"x\"","error":"Bad Request"}`, w.Body.String())
}

func TestWriteJSON(t *testing.T) {
	t.Run("value is encoded with the status", func(tt *testing.T) {
		w := httptest.NewRecorder()

		WriteJSON(w, http.StatusCreated, map[string]interface{}{"id": 14})

		assert.Equal(tt, http.StatusCreated, w.Code)
		assert.JSONEq(tt, `{"id":14}`, w.Body.String())
	})

	t.Run("unencodable value gives an internal error", func(tt *testing.T) {
		w := httptest.NewRecorder()

		WriteJSON(w, http.StatusOK, map[string]interface{}{"list_price": math.NaN()})

		assert.Equal(tt, http.StatusInternalServerError, w.Code)
		assert.Equal(tt, "application/json", w.Header().Get("Content-Type"))
		assert.JSONEq(tt, `{"statusCode":500,"message":"Internal server error","error":"Internal Server Error"}`, w.Body.String())
	})
}
