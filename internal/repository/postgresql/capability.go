package postgresql

import (
	"context"
	"errors"
	"time"

	"github.com/jackc/pgx/v4"

	"github.com/printhub/printhub/internal/db"
	"github.com/printhub/printhub/internal/repository"
)

type CapabilityRepo struct {
	db db.DB
}

func NewCapabilityRepo(db db.DB) *CapabilityRepo {
	return &CapabilityRepo{db: db}
}

func (r *CapabilityRepo) GetByPrinterID(ctx context.Context, printerID string) (*repository.PrinterCapability, error) {
	var capability repository.PrinterCapability
	err := r.db.Get(ctx, &capability,
		"SELECT * FROM printer_capabilities WHERE printer_id = $1", printerID)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, repository.ErrObjectNotFound
		}
		return nil, err
	}
	return &capability, nil
}

func (r *CapabilityRepo) GetAll(ctx context.Context) ([]*repository.PrinterCapability, error) {
	var caps []*repository.PrinterCapability
	err := r.db.Select(ctx, &caps,
		"SELECT * FROM printer_capabilities ORDER BY printer_id ASC")
	return caps, err
}

// Upsert replaces a printer's declared capabilities wholesale; the registry
// record is owned by the printer, the engine only reads it.
func (r *CapabilityRepo) Upsert(ctx context.Context, capability *repository.PrinterCapability) error {
	_, err := r.db.Exec(ctx, `
        INSERT INTO printer_capabilities (
            printer_id, technologies, active_material_ids, receive_orders_enabled, updated_at
        ) VALUES ($1, $2, $3, $4, $5)
        ON CONFLICT (printer_id) DO UPDATE SET
            technologies = EXCLUDED.technologies,
            active_material_ids = EXCLUDED.active_material_ids,
            receive_orders_enabled = EXCLUDED.receive_orders_enabled,
            updated_at = EXCLUDED.updated_at
    `, capability.PrinterID, capability.Technologies, capability.ActiveMaterialIDs, capability.ReceiveOrdersEnabled, time.Now().UTC())
	return err
}
