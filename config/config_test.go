package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()

	assert.Equal(t, DefaultTokenLength, cfg.TokenLength)
	assert.Equal(t, "127.0.0.1", cfg.BindHost, "the server must be loopback-only")
	assert.Equal(t, "localhost", cfg.DisplayHost)
	assert.Equal(t, 50, cfg.RateLimit)
	assert.Equal(t, time.Second, cfg.RatePeriod)
	assert.Equal(t, 5*time.Second, cfg.RequestTimeout)
	assert.Equal(t, 2*time.Second, cfg.ShutdownTimeout)
	assert.Equal(t, 100000, cfg.StoreCapacity)
	assert.False(t, cfg.DisableRateLimit)
}
