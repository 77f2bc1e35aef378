package blobstore

import (
	"context"

	"golang.org/x/time/rate"
)

// ThrottledStore rate limits calls to an inner Store.
//
// Object stores throttle clients that hammer a single key; short artifacts
// such as heartbeats are rewritten often enough to hit those limits.
type ThrottledStore struct {
	inner   Store
	limiter *rate.Limiter
}

// NewThrottledStore wraps inner so every call first waits on limiter.
// A nil limiter disables throttling.
func NewThrottledStore(inner Store, limiter *rate.Limiter) *ThrottledStore {
	if limiter == nil {
		limiter = rate.NewLimiter(rate.Inf, 0)
	}
	return &ThrottledStore{
		inner:   inner,
		limiter: limiter,
	}
}

// Get waits for a token and reads name.
func (s *ThrottledStore) Get(ctx context.Context, name string) ([]byte, error) {
	if err := s.limiter.Wait(ctx); err != nil {
		return nil, err
	}
	return s.inner.Get(ctx, name)
}

// Put waits for a token and writes name.
func (s *ThrottledStore) Put(ctx context.Context, name string, data []byte) error {
	if err := s.limiter.Wait(ctx); err != nil {
		return err
	}
	return s.inner.Put(ctx, name, data)
}

// Delete waits for a token and removes name.
func (s *ThrottledStore) Delete(ctx context.Context, name string) error {
	if err := s.limiter.Wait(ctx); err != nil {
		return err
	}
	return s.inner.Delete(ctx, name)
}
