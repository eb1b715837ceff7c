package inbox_test

import (
	"context"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/printhub/printhub/internal/inbox"
)

func TestMemoryInbox(t *testing.T) {
	ctx := context.Background()

	t.Run("add is idempotent", func(t *testing.T) {
		box := inbox.NewMemoryInbox()

		require.NoError(t, box.Add(ctx, "p1", "o1"))
		require.NoError(t, box.Add(ctx, "p1", "o1"))
		require.NoError(t, box.Add(ctx, "p1", "o2"))

		ids, err := box.List(ctx, "p1")
		require.NoError(t, err)
		assert.Equal(t, []string{"o1", "o2"}, ids)
	})

	t.Run("remove is idempotent", func(t *testing.T) {
		box := inbox.NewMemoryInbox()

		require.NoError(t, box.Add(ctx, "p1", "o1"))
		require.NoError(t, box.Remove(ctx, "p1", "o1"))
		require.NoError(t, box.Remove(ctx, "p1", "o1"))
		require.NoError(t, box.Remove(ctx, "p2", "o1"), "unknown printer is a no-op")

		ids, err := box.List(ctx, "p1")
		require.NoError(t, err)
		assert.Empty(t, ids)
	})

	t.Run("printers are isolated", func(t *testing.T) {
		box := inbox.NewMemoryInbox()

		require.NoError(t, box.Add(ctx, "p1", "o1"))
		require.NoError(t, box.Add(ctx, "p2", "o2"))

		ids, err := box.List(ctx, "p1")
		require.NoError(t, err)
		assert.Equal(t, []string{"o1"}, ids)
	})

	t.Run("concurrent adds land exactly once", func(t *testing.T) {
		box := inbox.NewMemoryInbox()

		var wg sync.WaitGroup
		for i := 0; i < 16; i++ {
			wg.Add(1)
			go func() {
				defer wg.Done()
				_ = box.Add(ctx, "p1", "o1")
			}()
		}
		wg.Wait()

		ids, err := box.List(ctx, "p1")
		require.NoError(t, err)
		assert.Equal(t, []string{"o1"}, ids)
	})
}
