package config

import (
	"testing"

	"github.com/flexprice/playbill/internal/types"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultConfigIsValid(t *testing.T) {
	cfg := GetDefaultConfig()
	require.NoError(t, cfg.Validate())
	assert.Equal(t, types.StorageTypeMemory, cfg.Storage.Type)
}

func TestDefaultPricingConfig(t *testing.T) {
	p := DefaultPricingConfig()

	assert.Equal(t, int64(40000), p.Tragedy.BaseAmount)
	assert.Equal(t, 30, p.Tragedy.AudienceThreshold)
	assert.Equal(t, int64(1000), p.Tragedy.PerSeatOverThreshold)

	assert.Equal(t, int64(30000), p.Comedy.BaseAmount)
	assert.Equal(t, 20, p.Comedy.AudienceThreshold)
	assert.Equal(t, int64(10000), p.Comedy.OverThresholdFlat)
	assert.Equal(t, int64(500), p.Comedy.PerSeatOverThreshold)
	assert.Equal(t, int64(300), p.Comedy.PerSeat)

	assert.Equal(t, 30, p.Credits.AudienceThreshold)
	assert.Equal(t, 5, p.Credits.ComedyBonusDivisor)
}

func TestConfigValidate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(c *Configuration)
		wantErr bool
	}{
		{
			name:   "defaults",
			mutate: func(c *Configuration) {},
		},
		{
			name:    "unknown storage",
			mutate:  func(c *Configuration) { c.Storage.Type = "redis" },
			wantErr: true,
		},
		{
			name:    "zero comedy bonus divisor",
			mutate:  func(c *Configuration) { c.Pricing.Credits.ComedyBonusDivisor = 0 },
			wantErr: true,
		},
		{
			name:    "negative tragedy threshold",
			mutate:  func(c *Configuration) { c.Pricing.Tragedy.AudienceThreshold = -1 },
			wantErr: true,
		},
		{
			name:    "sentry enabled without dsn",
			mutate:  func(c *Configuration) { c.Sentry.Enabled = true },
			wantErr: true,
		},
		{
			name:    "bad log level",
			mutate:  func(c *Configuration) { c.Logging.Level = "trace" },
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := GetDefaultConfig()
			tt.mutate(cfg)
			err := cfg.Validate()
			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestNewConfigEnvOverride(t *testing.T) {
	t.Setenv("PLAYBILL_PRICING_CREDITS_AUDIENCE_THRESHOLD", "25")
	t.Setenv("PLAYBILL_LOGGING_LEVEL", "warn")

	cfg, err := NewConfig()
	require.NoError(t, err)

	assert.Equal(t, 25, cfg.Pricing.Credits.AudienceThreshold)
	assert.Equal(t, types.LogLevelWarn, cfg.Logging.Level)
}
