package postgresql

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v4"

	"github.com/printhub/printhub/internal/db"
	"github.com/printhub/printhub/internal/repository"
)

type CatalogRepo struct {
	db db.DB
}

func NewCatalogRepo(db db.DB) *CatalogRepo {
	return &CatalogRepo{db: db}
}

// GetPublished returns the currently published catalog; drafts edited by
// the catalog admin pipeline never reach the matching engine.
func (r *CatalogRepo) GetPublished(ctx context.Context) ([]*repository.MaterialEntry, error) {
	var entries []*repository.MaterialEntry
	err := r.db.Select(ctx, &entries,
		"SELECT * FROM materials WHERE published = true ORDER BY id ASC")
	return entries, err
}

func (r *CatalogRepo) GetPublishedByID(ctx context.Context, id string) (*repository.MaterialEntry, error) {
	var entry repository.MaterialEntry
	err := r.db.Get(ctx, &entry,
		"SELECT * FROM materials WHERE id = $1 AND published = true", id)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, repository.ErrObjectNotFound
		}
		return nil, err
	}
	return &entry, nil
}
