package usecase

import (
	"context"
	"errors"
	"time"

	"github.com/cenkalti/backoff/v4"

	"github.com/skillshare-dao/sdao-cli/internal/domain"
)

// RetryPolicy wraps idempotent operations with bounded exponential backoff.
// It is applied to phase-2 replica calls and advisory reads only; phase-1
// chain calls are never retried, to rule out duplicate submissions.
type RetryPolicy struct {
	MaxAttempts     uint64
	InitialInterval time.Duration
	MaxInterval     time.Duration
	Jitter          bool
}

// DefaultReplicaRetry mirrors the hosted store's client guidance: three
// attempts starting at half a second.
func DefaultReplicaRetry() RetryPolicy {
	return RetryPolicy{
		MaxAttempts:     3,
		InitialInterval: 500 * time.Millisecond,
		MaxInterval:     5 * time.Second,
		Jitter:          true,
	}
}

// Do runs op, retrying only while it fails with domain.ErrReplicaUnavailable.
// Any other error is permanent and returned as-is.
func (p RetryPolicy) Do(ctx context.Context, op func() error) error {
	eb := backoff.NewExponentialBackOff()
	eb.InitialInterval = p.InitialInterval
	eb.MaxInterval = p.MaxInterval
	if !p.Jitter {
		eb.RandomizationFactor = 0
	}

	attempts := p.MaxAttempts
	if attempts == 0 {
		attempts = 1
	}
	b := backoff.WithContext(backoff.WithMaxRetries(eb, attempts-1), ctx)

	return backoff.Retry(func() error {
		err := op()
		if err == nil {
			return nil
		}
		if errors.Is(err, domain.ErrReplicaUnavailable) {
			return err
		}
		return backoff.Permanent(err)
	}, b)
}
