package blobstore

import (
	"context"
	"fmt"

	"golang.org/x/sync/errgroup"
)

// MirrorStore replicates every artifact to a primary store and a set of
// replicas.
//
// Put and Delete run against all stores in parallel and fail if any store
// fails. Each store replaces atomically, but the set as a whole is not
// transactional: after a failed Put some replicas may hold the new content.
// Get reads the primary and falls back to the replicas in order.
type MirrorStore struct {
	primary  Store
	replicas []Store
}

// NewMirrorStore creates a MirrorStore.
func NewMirrorStore(primary Store, replicas ...Store) *MirrorStore {
	return &MirrorStore{
		primary:  primary,
		replicas: replicas,
	}
}

func (m *MirrorStore) all() []Store {
	return append([]Store{m.primary}, m.replicas...)
}

// Get returns the content of name from the first store that has it.
// If every store fails, the primary's error is returned.
func (m *MirrorStore) Get(ctx context.Context, name string) ([]byte, error) {
	data, err := m.primary.Get(ctx, name)
	if err == nil {
		return data, nil
	}
	for _, r := range m.replicas {
		if ctx.Err() != nil {
			break
		}
		if data, rerr := r.Get(ctx, name); rerr == nil {
			return data, nil
		}
	}
	return nil, err
}

// Put writes data to every store in parallel.
func (m *MirrorStore) Put(ctx context.Context, name string, data []byte) error {
	g, ctx := errgroup.WithContext(ctx)
	for i, s := range m.all() {
		g.Go(func() error {
			if err := s.Put(ctx, name, data); err != nil {
				return fmt.Errorf("mirror %d: put %s: %w", i, name, err)
			}
			return nil
		})
	}
	return g.Wait()
}

// Delete removes name from every store in parallel.
func (m *MirrorStore) Delete(ctx context.Context, name string) error {
	g, ctx := errgroup.WithContext(ctx)
	for i, s := range m.all() {
		g.Go(func() error {
			if err := s.Delete(ctx, name); err != nil {
				return fmt.Errorf("mirror %d: delete %s: %w", i, name, err)
			}
			return nil
		})
	}
	return g.Wait()
}
