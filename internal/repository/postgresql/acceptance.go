package postgresql

import (
	"context"

	"github.com/printhub/printhub/internal/db"
	"github.com/printhub/printhub/internal/repository"
)

type AcceptanceRepo struct {
	db db.DB
}

func NewAcceptanceRepo(db db.DB) *AcceptanceRepo {
	return &AcceptanceRepo{db: db}
}

func (r *AcceptanceRepo) CreateTx(ctx context.Context, tx db.Tx, acc *repository.Acceptance) error {
	_, err := tx.Exec(ctx, `
        INSERT INTO acceptances (
            id, order_id, printer_id, submitted_at, message,
            price_total, price_per_unit_area, distance_km, delivery_mode, accepts_discount_coupon
        ) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)
    `, acc.ID, acc.OrderID, acc.PrinterID, acc.SubmittedAt, acc.Message,
		acc.PriceTotal, acc.PricePerUnitArea, acc.DistanceKm, acc.DeliveryMode, acc.AcceptsDiscountCoupon)
	return err
}

func (r *AcceptanceRepo) ExistsTx(ctx context.Context, tx db.Tx, orderID, printerID string) (bool, error) {
	var count int
	err := tx.Get(ctx, &count,
		"SELECT COUNT(*) FROM acceptances WHERE order_id = $1 AND printer_id = $2", orderID, printerID)
	if err != nil {
		return false, err
	}
	return count > 0, nil
}

// GetByOrderID returns acceptances in submission order, which is the tie
// break order the ranking engine relies on.
func (r *AcceptanceRepo) GetByOrderID(ctx context.Context, orderID string) ([]*repository.Acceptance, error) {
	var accs []*repository.Acceptance
	err := r.db.Select(ctx, &accs,
		"SELECT * FROM acceptances WHERE order_id = $1 ORDER BY submitted_at ASC, id ASC", orderID)
	return accs, err
}
