// Package config provides configuration settings for the link shortener core.
package config

import "time"

// DefaultTokenLength is the number of characters in a minted link token.
const DefaultTokenLength = 6

// Config holds the configuration settings for the shortener core.
type Config struct {
	TokenLength      int
	BindHost         string // interface the redirect server listens on
	DisplayHost      string // host used when composing short URLs
	RateLimit        int
	RatePeriod       time.Duration
	RequestTimeout   time.Duration
	ShutdownTimeout  time.Duration
	StoreCapacity    int
	DisableRateLimit bool
}

// DefaultConfig returns the default configuration settings.
// The server is loopback-only, so the bind host is fixed to the local
// interface and the display host matches what browsers expect to see.
func DefaultConfig() *Config {
	return &Config{
		TokenLength:      DefaultTokenLength,
		BindHost:         "127.0.0.1",
		DisplayHost:      "localhost",
		RateLimit:        50,
		RatePeriod:       time.Second,
		RequestTimeout:   5 * time.Second,
		ShutdownTimeout:  2 * time.Second,
		StoreCapacity:    100000,
		DisableRateLimit: false,
	}
}
