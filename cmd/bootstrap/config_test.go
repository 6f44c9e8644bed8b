//go:build unit

package bootstrap_test

import (
	"testing"

	"slot-booking/cmd/bootstrap"
	"slot-booking/internal/pkg/config"

	"github.com/stretchr/testify/assert"
)

func TestValidateConfig(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*config.Config)
		wantErr string
	}{
		{name: "テスト設定は有効", mutate: func(*config.Config) {}},
		{name: "短いJWTシークレット", mutate: func(c *config.Config) { c.JWT.Secret = "short" }, wantErr: "JWT_SECRET"},
		{name: "冪等キーのTTLが0", mutate: func(c *config.Config) { c.Booking.IdempotencyTTL = 0 }, wantErr: "IDEMPOTENCY_TTL"},
		{name: "掃除間隔が負", mutate: func(c *config.Config) { c.Booking.IdempotencySweepEvery = -1 }, wantErr: "IDEMPOTENCY_SWEEP_INTERVAL"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := config.NewTestConfig()
			tt.mutate(&cfg)

			err := bootstrap.ValidateConfig(cfg)

			if tt.wantErr == "" {
				assert.NoError(t, err)
				return
			}
			assert.ErrorContains(t, err, tt.wantErr)
		})
	}
}
