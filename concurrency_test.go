package shortfile

import (
	"context"
	"fmt"
	"path/filepath"
	"strings"
	"sync/atomic"
	"testing"

	"github.com/hupe1980/shortfile/internal/hash"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/sync/errgroup"
)

func TestStore_ConcurrentReadDuringWrite(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "status")
	store := newTestStore(WithSyncDir(false))

	// Different lengths and fills, so a torn read shows up in either.
	versions := []string{
		strings.Repeat("a", 64<<10),
		strings.Repeat("b", 192<<10),
		"c",
	}
	valid := make(map[uint32]int, len(versions))
	for _, v := range versions {
		valid[hash.CRC32C([]byte(v))] = len(v)
	}

	require.NoError(t, store.Write(path, versions[0]))

	const (
		writes  = 200
		readers = 4
	)

	var done atomic.Bool
	var reads atomic.Int64
	g, ctx := errgroup.WithContext(context.Background())

	g.Go(func() error {
		defer done.Store(true)
		for i := 0; i < writes; i++ {
			if err := store.Write(path, versions[i%len(versions)]); err != nil {
				return err
			}
		}
		return nil
	})

	for r := 0; r < readers; r++ {
		g.Go(func() error {
			for {
				data, err := store.ReadBytes(path)
				if err != nil {
					return err
				}
				n, ok := valid[hash.CRC32C(data)]
				if !ok || n != len(data) {
					return fmt.Errorf("torn read: %d bytes", len(data))
				}
				reads.Add(1)
				if done.Load() || ctx.Err() != nil {
					return nil
				}
			}
		})
	}

	require.NoError(t, g.Wait())
	assert.Positive(t, reads.Load())
	assert.Empty(t, tempFiles(t, dir))
}

func TestStore_ConcurrentWriters(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "address")
	store := newTestStore(WithSyncDir(false))

	var g errgroup.Group
	for w := 0; w < 8; w++ {
		content := fmt.Sprintf("writer-%d:%s", w, strings.Repeat("x", 4096*w))
		g.Go(func() error {
			for i := 0; i < 20; i++ {
				if err := store.Write(path, content); err != nil {
					return err
				}
			}
			return nil
		})
	}
	require.NoError(t, g.Wait())

	got, err := store.Read(path)
	require.NoError(t, err)
	require.True(t, strings.HasPrefix(got, "writer-"))

	var w int
	_, err = fmt.Sscanf(got, "writer-%d:", &w)
	require.NoError(t, err)
	assert.Equal(t, fmt.Sprintf("writer-%d:%s", w, strings.Repeat("x", 4096*w)), got)
	assert.Empty(t, tempFiles(t, dir))
}
