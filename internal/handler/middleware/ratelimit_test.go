//go:build unit

package middleware_test

import (
	"context"
	"errors"
	"net/http"
	"testing"
	"time"

	"slot-booking/internal/handler/middleware"
	"slot-booking/internal/pkg/clock"
	"slot-booking/internal/pkg/config"
	"slot-booking/tests/common/httptest"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var testNow = time.Date(2030, 1, 1, 9, 0, 0, 0, time.UTC)

type failingLimiter struct{}

func (failingLimiter) Allow(context.Context, string) (bool, error) {
	return false, errors.New("redis down")
}

// scriptResult answers every EVALSHA with a fixed reply.
type scriptResult struct {
	redis.Scripter
	val  any
	keys []string
}

func (s *scriptResult) EvalSha(_ context.Context, _ string, keys []string, _ ...any) *redis.Cmd {
	s.keys = keys
	return redis.NewCmdResult(s.val, nil)
}

func newLimitedRouter(l middleware.Limiter, cfg config.RateLimitConfig) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.POST("/appointments", middleware.NewRateLimiter(l, cfg).Limit("create_appointment"), func(c *gin.Context) {
		c.Status(http.StatusCreated)
	})
	return r
}

func TestLocalLimiter(t *testing.T) {
	t.Run("burst then reject", func(t *testing.T) {
		l := middleware.NewLocalLimiter(3, time.Hour, clock.NewMockClock(testNow))
		ctx := context.Background()

		for i := range 3 {
			ok, err := l.Allow(ctx, "k")
			require.NoError(t, err)
			assert.True(t, ok, "request %d", i)
		}
		ok, err := l.Allow(ctx, "k")
		require.NoError(t, err)
		assert.False(t, ok)
	})

	t.Run("keys are independent", func(t *testing.T) {
		l := middleware.NewLocalLimiter(1, time.Hour, clock.NewMockClock(testNow))
		ctx := context.Background()

		ok, _ := l.Allow(ctx, "a")
		assert.True(t, ok)
		ok, _ = l.Allow(ctx, "b")
		assert.True(t, ok)
		ok, _ = l.Allow(ctx, "a")
		assert.False(t, ok)
	})

	t.Run("window elapses and the bucket refills", func(t *testing.T) {
		clk := clock.NewMockClock(testNow)
		l := middleware.NewLocalLimiter(1, time.Minute, clk)
		ctx := context.Background()

		ok, _ := l.Allow(ctx, "a")
		assert.True(t, ok)
		ok, _ = l.Allow(ctx, "a")
		assert.False(t, ok)

		clk.Add(time.Minute)
		ok, _ = l.Allow(ctx, "a")
		assert.True(t, ok)
	})

	t.Run("idle callers are evicted", func(t *testing.T) {
		clk := clock.NewMockClock(testNow)
		l := middleware.NewLocalLimiter(5, time.Minute, clk)
		ctx := context.Background()

		for _, key := range []string{"a", "b", "c"} {
			_, err := l.Allow(ctx, key)
			require.NoError(t, err)
		}
		assert.Equal(t, 3, l.Len())

		clk.Add(30 * time.Second)
		_, _ = l.Allow(ctx, "a")
		assert.Equal(t, 3, l.Len())

		clk.Add(40 * time.Second)
		_, _ = l.Allow(ctx, "d")
		assert.Equal(t, 2, l.Len(), "only a and d were seen within the last window")
	})
}

func TestRedisLimiter(t *testing.T) {
	tests := []struct {
		name    string
		reply   any
		want    bool
		wantErr string
	}{
		{name: "within the window", reply: int64(2), want: true},
		{name: "over the limit", reply: int64(3), want: false},
		{name: "string counter", reply: "1", want: true},
		{name: "unexpected reply type", reply: 1.5, wantErr: "unexpected rate limit script result float64"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rdb := &scriptResult{val: tt.reply}
			l := middleware.NewRedisLimiter(rdb, 2, time.Minute)

			got, err := l.Allow(context.Background(), "rl:login:ip:1.2.3.4")

			if tt.wantErr != "" {
				require.ErrorContains(t, err, tt.wantErr)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
			assert.Equal(t, []string{"rl:login:ip:1.2.3.4"}, rdb.keys)
		})
	}
}

func TestRateLimiter(t *testing.T) {
	cfg := config.RateLimitConfig{Enabled: true, Limit: 2, Window: time.Hour, Prefix: "test"}

	t.Run("answers 429 once the window is used up", func(t *testing.T) {
		router := newLimitedRouter(middleware.NewLocalLimiter(cfg.Limit, cfg.Window, clock.NewMockClock(testNow)), cfg)

		for range 2 {
			w := httptest.PerformRequest(t, router, http.MethodPost, "/appointments", nil, "")
			assert.Equal(t, http.StatusCreated, w.Code)
		}
		w := httptest.PerformRequest(t, router, http.MethodPost, "/appointments", nil, "")
		httptest.AssertErrorResponse(t, w, http.StatusTooManyRequests, "Rate limit exceeded")
	})

	t.Run("limiter errors let the request through", func(t *testing.T) {
		router := newLimitedRouter(failingLimiter{}, cfg)

		w := httptest.PerformRequest(t, router, http.MethodPost, "/appointments", nil, "")
		assert.Equal(t, http.StatusCreated, w.Code)
	})

	t.Run("disabled limiter is a no-op", func(t *testing.T) {
		disabled := cfg
		disabled.Enabled = false
		router := newLimitedRouter(middleware.NewLocalLimiter(1, time.Hour, clock.NewMockClock(testNow)), disabled)

		for range 3 {
			w := httptest.PerformRequest(t, router, http.MethodPost, "/appointments", nil, "")
			assert.Equal(t, http.StatusCreated, w.Code)
		}
	})
}
