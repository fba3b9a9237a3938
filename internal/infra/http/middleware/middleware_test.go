package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"go.uber.org/zap"
	"go.uber.org/zap/zaptest/observer"
)

func TestRateLimiterAllow(t *testing.T) {
	rl := NewRateLimiter(2, time.Minute)

	assert.True(t, rl.Allow("1.2.3.4"))
	assert.True(t, rl.Allow("1.2.3.4"))
	assert.False(t, rl.Allow("1.2.3.4"))
	assert.True(t, rl.Allow("5.6.7.8"))
}

func TestRateLimiterSlidingWindow(t *testing.T) {
	clock := time.Date(2026, 1, 1, 12, 0, 0, 0, time.UTC)
	rl := NewRateLimiter(2, time.Minute)
	rl.now = func() time.Time { return clock }

	assert.True(t, rl.Allow("k"))
	clock = clock.Add(30 * time.Second)
	assert.True(t, rl.Allow("k"))
	assert.False(t, rl.Allow("k"))

	// the first hit leaves the window, the second is still in it
	clock = clock.Add(31 * time.Second)
	assert.True(t, rl.Allow("k"))
	assert.False(t, rl.Allow("k"))
}

func TestRateLimiterDropsIdleKeys(t *testing.T) {
	clock := time.Date(2026, 1, 1, 12, 0, 0, 0, time.UTC)
	rl := NewRateLimiter(5, time.Minute)
	rl.now = func() time.Time { return clock }

	rl.Allow("a")
	rl.Allow("b")
	assert.Equal(t, 2, rl.Keys())

	clock = clock.Add(2 * time.Minute)
	rl.Allow("c")
	assert.Equal(t, 1, rl.Keys())
}

func TestRateLimitMiddleware(t *testing.T) {
	h := RateLimit(NewRateLimiter(1, time.Minute))(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))

	r := httptest.NewRequest("POST", "/login", nil)
	r.RemoteAddr = "10.0.0.1:1234"

	w := httptest.NewRecorder()
	h.ServeHTTP(w, r)
	assert.Equal(t, http.StatusOK, w.Code)

	r.RemoteAddr = "10.0.0.1:5678"
	w = httptest.NewRecorder()
	h.ServeHTTP(w, r)
	assert.Equal(t, http.StatusTooManyRequests, w.Code)
}

func TestMetricsUsesRoutePattern(t *testing.T) {
	r := chi.NewRouter()
	r.Use(Metrics)
	r.Get("/things/{id}", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusTeapot)
	})

	before := testutil.ToFloat64(requestsTotal.WithLabelValues("GET", "/things/{id}", "418"))
	r.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest("GET", "/things/42", nil))
	after := testutil.ToFloat64(requestsTotal.WithLabelValues("GET", "/things/{id}", "418"))

	assert.Equal(t, before+1, after)
}

func TestRecordLeadCaptured(t *testing.T) {
	before := testutil.ToFloat64(leadsCaptured.WithLabelValues("default", "true"))
	RecordLeadCaptured(true, true)
	assert.Equal(t, before+1, testutil.ToFloat64(leadsCaptured.WithLabelValues("default", "true")))

	before = testutil.ToFloat64(autoReplies.WithLabelValues("skipped"))
	RecordAutoReply("skipped")
	assert.Equal(t, before+1, testutil.ToFloat64(autoReplies.WithLabelValues("skipped")))
}

func TestLogging(t *testing.T) {
	core, logs := observer.New(zap.InfoLevel)
	h := Logging(zap.New(core))(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusAccepted)
	}))

	h.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest("POST", "/webhook", nil))

	entries := logs.All()
	if assert.Len(t, entries, 1) {
		fields := entries[0].ContextMap()
		assert.Equal(t, "/webhook", fields["path"])
		assert.Equal(t, int64(http.StatusAccepted), fields["status"])
	}
}
