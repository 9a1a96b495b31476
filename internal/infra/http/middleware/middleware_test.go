package middleware

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

var okHandler = http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
	w.WriteHeader(http.StatusNoContent)
})

func errorBody(t *testing.T, rec *httptest.ResponseRecorder) string {
	t.Helper()
	var body map[string]string
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	return body["error"]
}

func TestAdminGate(t *testing.T) {
	h := NewAdminGate("s3cret").Handler(okHandler)

	cases := []struct {
		name   string
		header string
		status int
	}{
		{"missing header", "", http.StatusUnauthorized},
		{"not bearer", "Basic abc", http.StatusUnauthorized},
		{"empty bearer", "Bearer ", http.StatusUnauthorized},
		{"wrong token", "Bearer nope", http.StatusForbidden},
		{"valid token", "Bearer s3cret", http.StatusNoContent},
		{"case-insensitive scheme", "bearer s3cret", http.StatusNoContent},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodGet, "/api/leads", nil)
			if tc.header != "" {
				req.Header.Set("Authorization", tc.header)
			}
			rec := httptest.NewRecorder()

			h.ServeHTTP(rec, req)

			assert.Equal(t, tc.status, rec.Code)
			if tc.status >= 400 {
				assert.NotEmpty(t, errorBody(t, rec))
			}
		})
	}
}

func TestAdminGateWithoutConfiguredToken(t *testing.T) {
	h := NewAdminGate("").Handler(okHandler)
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set("Authorization", "Bearer anything")
	rec := httptest.NewRecorder()

	h.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusForbidden, rec.Code)
}

type stubLimiter struct {
	allow bool
	err   error
	keys  []string
}

func (s *stubLimiter) Allow(ctx context.Context, key string) (bool, error) {
	s.keys = append(s.keys, key)
	return s.allow, s.err
}

func TestRateLimit(t *testing.T) {
	t.Run("rejects", func(t *testing.T) {
		lim := &stubLimiter{allow: false}
		rec := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodPost, "/api/leads", nil)
		req.RemoteAddr = "10.0.0.1:5555"

		RateLimit(lim, false, zap.NewNop())(okHandler).ServeHTTP(rec, req)

		assert.Equal(t, http.StatusTooManyRequests, rec.Code)
		assert.Equal(t, []string{"10.0.0.1"}, lim.keys)
		assert.NotEmpty(t, errorBody(t, rec))
	})

	t.Run("fails open", func(t *testing.T) {
		lim := &stubLimiter{err: errors.New("redis down")}
		rec := httptest.NewRecorder()

		RateLimit(lim, false, zap.NewNop())(okHandler).ServeHTTP(rec, httptest.NewRequest(http.MethodPost, "/", nil))

		assert.Equal(t, http.StatusNoContent, rec.Code)
	})
}

func TestClientIP(t *testing.T) {
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.RemoteAddr = "192.168.1.9:1234"
	assert.Equal(t, "192.168.1.9", ClientIP(req, true))

	req.Header.Set("X-Real-IP", "5.5.5.5")
	assert.Equal(t, "5.5.5.5", ClientIP(req, true))

	req.Header.Set("X-Forwarded-For", "1.1.1.1, 2.2.2.2")
	assert.Equal(t, "1.1.1.1", ClientIP(req, true))
}

func TestClientIPIgnoresForwardedHeadersWithoutProxy(t *testing.T) {
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.RemoteAddr = "192.168.1.9:1234"
	req.Header.Set("X-Forwarded-For", "1.1.1.1")
	req.Header.Set("X-Real-IP", "5.5.5.5")

	assert.Equal(t, "192.168.1.9", ClientIP(req, false))
}

func TestRateLimitKeysOnConnectionAddress(t *testing.T) {
	lim := &stubLimiter{allow: true}
	handler := RateLimit(lim, false, zap.NewNop())(okHandler)

	for _, fwd := range []string{"1.1.1.1", "2.2.2.2"} {
		req := httptest.NewRequest(http.MethodPost, "/api/leads", nil)
		req.RemoteAddr = "10.0.0.1:5555"
		req.Header.Set("X-Forwarded-For", fwd)
		handler.ServeHTTP(httptest.NewRecorder(), req)
	}

	assert.Equal(t, []string{"10.0.0.1", "10.0.0.1"}, lim.keys)
}
