package cache

import (
	"context"
	"sync"

	"go.uber.org/zap"

	"github.com/printhub/printhub/internal/metrics"
	"github.com/printhub/printhub/internal/model"
	"github.com/printhub/printhub/internal/repository"
)

type CatalogRepository interface {
	GetPublished(ctx context.Context) ([]*repository.MaterialEntry, error)
}

// CatalogCache keeps the published material catalog in memory. The catalog
// is read-mostly; the admin publish pipeline triggers a Reload.
type CatalogCache struct {
	mu      sync.RWMutex
	entries map[string]model.MaterialEntry
	repo    CatalogRepository
	logger  *zap.Logger
}

func NewCatalogCache(repo CatalogRepository, logger *zap.Logger) *CatalogCache {
	return &CatalogCache{
		entries: make(map[string]model.MaterialEntry),
		repo:    repo,
		logger:  logger,
	}
}

// Reload swaps in the currently published catalog version.
func (c *CatalogCache) Reload(ctx context.Context) error {
	rows, err := c.repo.GetPublished(ctx)
	if err != nil {
		return err
	}

	entries := make(map[string]model.MaterialEntry, len(rows))
	for _, row := range rows {
		entries[row.ID] = model.MaterialEntry{
			ID:                          row.ID,
			Category:                    row.Category,
			Subcategory:                 row.Subcategory,
			Finish:                      row.Finish,
			CompatibleTechnologies:      row.CompatibleTechnologies,
			RegionalAvgPricePerUnitArea: row.RegionalAvgPricePerUnitArea,
		}
	}

	c.mu.Lock()
	c.entries = entries
	c.mu.Unlock()

	metrics.CatalogCacheItems.Set(float64(len(entries)))
	c.logger.Info("catalog cache reloaded", zap.Int("materials", len(entries)))
	return nil
}

// Material implements match.CatalogSource. A copy is returned so callers
// cannot mutate the cached entry.
func (c *CatalogCache) Material(_ context.Context, id string) (*model.MaterialEntry, error) {
	c.mu.RLock()
	entry, ok := c.entries[id]
	c.mu.RUnlock()
	if !ok {
		return nil, model.ErrNotFound
	}
	return &entry, nil
}
