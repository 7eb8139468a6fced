package core

import (
	"time"

	"github.com/cenkalti/backoff/v4"
)

// RetryConfig ... Bounded exponential backoff policy
type RetryConfig struct {
	MaxAttempts     uint64
	InitialInterval time.Duration
	MaxInterval     time.Duration
}

// DefaultRetryConfig ... Returns the policy used when none is configured
func DefaultRetryConfig() *RetryConfig {
	return &RetryConfig{
		MaxAttempts:     12,
		InitialInterval: time.Second,
		MaxInterval:     20 * time.Second,
	}
}

// RetryStrategy ... Builds a bounded exponential backoff from the policy
func RetryStrategy(cfg *RetryConfig) backoff.BackOff {
	if cfg == nil {
		cfg = DefaultRetryConfig()
	}

	exp := backoff.NewExponentialBackOff()
	exp.InitialInterval = cfg.InitialInterval
	exp.MaxInterval = cfg.MaxInterval
	// Bounded by attempts, not wall time
	exp.MaxElapsedTime = 0
	exp.Reset()

	// WithMaxRetries counts retries after the first attempt
	retries := cfg.MaxAttempts
	if retries > 0 {
		retries--
	}
	return backoff.WithMaxRetries(exp, retries)
}
