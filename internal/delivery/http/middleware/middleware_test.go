package middleware

import (
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"clinic-booking/config"
	"clinic-booking/internal/domain/entity"
	"clinic-booking/pkg/jwt"

	"github.com/alicebob/miniredis/v2"
	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
	"github.com/sirupsen/logrus"
	logtest "github.com/sirupsen/logrus/hooks/test"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func sessionEcho(t *testing.T) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		session, ok := GetSessionFromContext(r.Context())
		require.True(t, ok)
		w.Header().Set("X-User", session.UserID.String())
		w.WriteHeader(http.StatusNoContent)
	})
}

func newAuthTest(t *testing.T) (*AuthMiddleware, *jwt.JWTService, *miniredis.Miniredis) {
	t.Helper()
	mr := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { client.Close() })
	jwtService := jwt.NewJWTService(config.JWTConfig{Secret: "test-secret", AccessExpiry: time.Minute, RefreshExpiry: time.Hour})
	return NewAuthMiddleware(jwtService, client), jwtService, mr
}

func TestAuthenticate_AcceptsRegisteredAccessToken(t *testing.T) {
	m, jwtService, mr := newAuthTest(t)
	userID := uuid.New()
	token, tokenID, err := jwtService.GenerateAccessToken(userID, "p@clinic.test", entity.RoleIDPatient)
	require.NoError(t, err)
	require.NoError(t, mr.Set("access_token:"+userID.String()+":"+tokenID, "valid"))

	req := httptest.NewRequest(http.MethodGet, "/api/v1/auth/me", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	rec := httptest.NewRecorder()
	m.Authenticate(sessionEcho(t)).ServeHTTP(rec, req)

	assert.Equal(t, http.StatusNoContent, rec.Code)
	assert.Equal(t, userID.String(), rec.Header().Get("X-User"))
}

func TestAuthenticate_Rejections(t *testing.T) {
	m, jwtService, mr := newAuthTest(t)
	userID := uuid.New()
	revoked, _, _ := jwtService.GenerateAccessToken(userID, "p@clinic.test", entity.RoleIDPatient)
	refresh, refreshID, _ := jwtService.GenerateRefreshToken(userID, "p@clinic.test", entity.RoleIDPatient)
	require.NoError(t, mr.Set("refresh_token:"+userID.String()+":"+refreshID, "valid"))

	cases := map[string]string{
		"missing header": "",
		"wrong scheme":   "Token " + revoked,
		"garbage":        "Bearer nope",
		"revoked":        "Bearer " + revoked,
		"refresh token":  "Bearer " + refresh,
	}
	for name, header := range cases {
		t.Run(name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodGet, "/", nil)
			if header != "" {
				req.Header.Set("Authorization", header)
			}
			rec := httptest.NewRecorder()
			m.Authenticate(sessionEcho(t)).ServeHTTP(rec, req)

			assert.Equal(t, http.StatusUnauthorized, rec.Code)
		})
	}
}

func TestRequireAdmin(t *testing.T) {
	ok := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) { w.WriteHeader(http.StatusOK) })

	for roleID, want := range map[int]int{entity.RoleIDAdmin: http.StatusOK, entity.RoleIDPatient: http.StatusForbidden} {
		req := httptest.NewRequest(http.MethodGet, "/", nil)
		req = req.WithContext(WithSession(req.Context(), &entity.Session{UserID: uuid.New(), RoleID: roleID}))
		rec := httptest.NewRecorder()
		RequireAdmin(ok).ServeHTTP(rec, req)
		assert.Equal(t, want, rec.Code)
	}

	rec := httptest.NewRecorder()
	RequireAdmin(ok).ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/", nil))
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestRateLimit_PerClient(t *testing.T) {
	m := NewRateLimitMiddleware(config.RateLimitConfig{RPS: 0.001, Burst: 2})
	h := m.Limit(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) { w.WriteHeader(http.StatusCreated) }))

	send := func(ip string) int {
		req := httptest.NewRequest(http.MethodPost, "/api/v1/bookings", nil)
		req.RemoteAddr = ip + ":5555"
		rec := httptest.NewRecorder()
		h.ServeHTTP(rec, req)
		return rec.Code
	}

	assert.Equal(t, http.StatusCreated, send("10.0.0.1"))
	assert.Equal(t, http.StatusCreated, send("10.0.0.1"))
	assert.Equal(t, http.StatusTooManyRequests, send("10.0.0.1"))
	assert.Equal(t, http.StatusCreated, send("10.0.0.2"))
}

func TestRateLimit_IgnoresForwardedForByDefault(t *testing.T) {
	m := NewRateLimitMiddleware(config.RateLimitConfig{RPS: 0.001, Burst: 1})
	h := m.Limit(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) { w.WriteHeader(http.StatusCreated) }))

	allowed := 0
	for i := 0; i < 50; i++ {
		req := httptest.NewRequest(http.MethodPost, "/api/v1/bookings", nil)
		req.RemoteAddr = "203.0.113.7:4000"
		req.Header.Set("X-Forwarded-For", fmt.Sprintf("198.51.100.%d", i))
		rec := httptest.NewRecorder()
		h.ServeHTTP(rec, req)
		if rec.Code == http.StatusCreated {
			allowed++
		}
	}

	assert.Equal(t, 1, allowed)
	assert.Equal(t, 1, m.size())
}

func TestRateLimit_TrustedProxyUsesLastHop(t *testing.T) {
	m := NewRateLimitMiddleware(config.RateLimitConfig{RPS: 0.001, Burst: 1, TrustForwardedFor: true})
	h := m.Limit(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) { w.WriteHeader(http.StatusCreated) }))

	send := func(xff string) int {
		req := httptest.NewRequest(http.MethodPost, "/api/v1/contact", nil)
		req.RemoteAddr = "10.0.0.1:4000"
		req.Header.Set("X-Forwarded-For", xff)
		rec := httptest.NewRecorder()
		h.ServeHTTP(rec, req)
		return rec.Code
	}

	assert.Equal(t, http.StatusCreated, send("1.1.1.1, 198.51.100.9"))
	// A spoofed leftmost value does not change the key the proxy appended
	assert.Equal(t, http.StatusTooManyRequests, send("2.2.2.2, 198.51.100.9"))
	assert.Equal(t, http.StatusCreated, send("198.51.100.10"))
}

func TestRateLimit_EvictsIdleLimiters(t *testing.T) {
	m := NewRateLimitMiddleware(config.RateLimitConfig{RPS: 1, Burst: 1, IdleTTL: time.Minute})
	now := time.Date(2026, time.March, 2, 9, 0, 0, 0, time.UTC)
	m.now = func() time.Time { return now }
	m.lastSweep.Store(now.UnixNano())
	h := m.Limit(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))

	send := func(ip string) {
		req := httptest.NewRequest(http.MethodPost, "/api/v1/bookings", nil)
		req.RemoteAddr = ip + ":4000"
		h.ServeHTTP(httptest.NewRecorder(), req)
	}

	for i := 0; i < 10; i++ {
		send(fmt.Sprintf("10.0.1.%d", i))
	}
	require.Equal(t, 10, m.size())

	now = now.Add(2 * time.Minute)
	send("10.0.2.1")
	assert.Equal(t, 1, m.size())
}

func TestRateLimit_DisabledWithoutRPS(t *testing.T) {
	h := NewRateLimitMiddleware(config.RateLimitConfig{}).Limit(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	for i := 0; i < 20; i++ {
		rec := httptest.NewRecorder()
		h.ServeHTTP(rec, httptest.NewRequest(http.MethodPost, "/", nil))
		require.Equal(t, http.StatusOK, rec.Code)
	}
}

func TestCORS(t *testing.T) {
	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) { w.WriteHeader(http.StatusTeapot) })
	h := NewCORSMiddleware([]string{"https://clinic.example"}).Handle(next)

	req := httptest.NewRequest(http.MethodOptions, "/api/v1/bookings", nil)
	req.Header.Set("Origin", "https://clinic.example")
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "https://clinic.example", rec.Header().Get("Access-Control-Allow-Origin"))

	req = httptest.NewRequest(http.MethodGet, "/api/v1/doctors", nil)
	req.Header.Set("Origin", "https://evil.example")
	rec = httptest.NewRecorder()
	h.ServeHTTP(rec, req)
	assert.Equal(t, http.StatusTeapot, rec.Code)
	assert.Empty(t, rec.Header().Get("Access-Control-Allow-Origin"))
}

func TestLogging_RecordsStatus(t *testing.T) {
	log, hook := logtest.NewNullLogger()

	h := NewLoggingMiddleware(log).Handle(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusConflict)
	}))
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, httptest.NewRequest(http.MethodPost, "/api/v1/bookings", nil))

	require.Len(t, hook.AllEntries(), 1)
	entry := hook.LastEntry()
	assert.Equal(t, logrus.WarnLevel, entry.Level)
	assert.Equal(t, http.StatusConflict, entry.Data["status"])
	assert.Equal(t, "unmatched", entry.Data["route"])
}
