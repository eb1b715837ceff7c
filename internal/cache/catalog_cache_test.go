package cache_test

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/printhub/printhub/internal/cache"
	"github.com/printhub/printhub/internal/model"
	"github.com/printhub/printhub/internal/repository"
)

type stubCatalogRepo struct {
	rows []*repository.MaterialEntry
	err  error
}

func (s *stubCatalogRepo) GetPublished(context.Context) ([]*repository.MaterialEntry, error) {
	return s.rows, s.err
}

func TestCatalogCache(t *testing.T) {
	ctx := context.Background()

	t.Run("empty before reload", func(t *testing.T) {
		c := cache.NewCatalogCache(&stubCatalogRepo{}, zap.NewNop())

		_, err := c.Material(ctx, "m1")
		assert.ErrorIs(t, err, model.ErrNotFound)
	})

	t.Run("serves reloaded entries", func(t *testing.T) {
		repo := &stubCatalogRepo{rows: []*repository.MaterialEntry{
			{ID: "m1", Category: "banner", CompatibleTechnologies: []string{"UV"}},
			{ID: "m2", Category: "vinyl", CompatibleTechnologies: []string{"Latex"}},
		}}
		c := cache.NewCatalogCache(repo, zap.NewNop())
		require.NoError(t, c.Reload(ctx))

		entry, err := c.Material(ctx, "m1")
		require.NoError(t, err)
		assert.Equal(t, "banner", entry.Category)

		_, err = c.Material(ctx, "m3")
		assert.ErrorIs(t, err, model.ErrNotFound)
	})

	t.Run("reload swaps the catalog wholesale", func(t *testing.T) {
		repo := &stubCatalogRepo{rows: []*repository.MaterialEntry{{ID: "m1"}}}
		c := cache.NewCatalogCache(repo, zap.NewNop())
		require.NoError(t, c.Reload(ctx))

		repo.rows = []*repository.MaterialEntry{{ID: "m2"}}
		require.NoError(t, c.Reload(ctx))

		_, err := c.Material(ctx, "m1")
		assert.ErrorIs(t, err, model.ErrNotFound, "unpublished material is dropped")

		_, err = c.Material(ctx, "m2")
		assert.NoError(t, err)
	})

	t.Run("failed reload keeps the old catalog", func(t *testing.T) {
		repo := &stubCatalogRepo{rows: []*repository.MaterialEntry{{ID: "m1"}}}
		c := cache.NewCatalogCache(repo, zap.NewNop())
		require.NoError(t, c.Reload(ctx))

		repo.err = errors.New("database down")
		assert.Error(t, c.Reload(ctx))

		_, err := c.Material(ctx, "m1")
		assert.NoError(t, err)
	})

	t.Run("returned entry is a copy", func(t *testing.T) {
		repo := &stubCatalogRepo{rows: []*repository.MaterialEntry{{ID: "m1", Category: "banner"}}}
		c := cache.NewCatalogCache(repo, zap.NewNop())
		require.NoError(t, c.Reload(ctx))

		entry, err := c.Material(ctx, "m1")
		require.NoError(t, err)
		entry.Category = "mutated"

		again, err := c.Material(ctx, "m1")
		require.NoError(t, err)
		assert.Equal(t, "banner", again.Category)
	})
}
