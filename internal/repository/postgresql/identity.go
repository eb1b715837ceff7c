package postgresql

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v4"

	"github.com/printhub/printhub/internal/db"
	"github.com/printhub/printhub/internal/repository"
)

type IdentityRepo struct {
	db db.DB
}

func NewIdentityRepo(db db.DB) *IdentityRepo {
	return &IdentityRepo{db: db}
}

func (r *IdentityRepo) GetByPrinterID(ctx context.Context, printerID string) (*repository.PrinterIdentity, error) {
	var identity repository.PrinterIdentity
	err := r.db.Get(ctx, &identity,
		"SELECT * FROM printer_identities WHERE printer_id = $1", printerID)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, repository.ErrObjectNotFound
		}
		return nil, err
	}
	return &identity, nil
}
