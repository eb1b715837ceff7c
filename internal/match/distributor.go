// Package match decides which printers get to see a new order and fans the
// order out into their pending inboxes.
package match

import (
	"context"
	"errors"
	"fmt"
	"sync"

	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/printhub/printhub/internal/metrics"
	"github.com/printhub/printhub/internal/model"
)

type CatalogSource interface {
	Material(ctx context.Context, id string) (*model.MaterialEntry, error)
}

type CapabilitySource interface {
	ListCapabilities(ctx context.Context) ([]model.PrinterCapability, error)
}

// Inbox is the per-printer pending-order list. Add and Remove are
// idempotent so client retries cannot duplicate or fail a delivery.
type Inbox interface {
	Add(ctx context.Context, printerID, orderID string) error
	Remove(ctx context.Context, printerID, orderID string) error
	List(ctx context.Context, printerID string) ([]string, error)
}

const defaultFanOutWorkers = 8

type Distributor struct {
	catalog CatalogSource
	caps    CapabilitySource
	inbox   Inbox
	logger  *zap.Logger
	workers int
}

func NewDistributor(catalog CatalogSource, caps CapabilitySource, inbox Inbox, logger *zap.Logger) *Distributor {
	return &Distributor{
		catalog: catalog,
		caps:    caps,
		inbox:   inbox,
		logger:  logger,
		workers: defaultFanOutWorkers,
	}
}

// Eligible reports whether a printer may see orders for the given material:
// it must have opted in, have at least one active material, and share a
// process technology with the material.
func Eligible(capability model.PrinterCapability, material *model.MaterialEntry) bool {
	if !capability.ReceiveOrdersEnabled || len(capability.ActiveMaterialIDs) == 0 {
		return false
	}
	for _, tech := range capability.Technologies {
		for _, compatible := range material.CompatibleTechnologies {
			if tech == compatible {
				return true
			}
		}
	}
	return false
}

// Candidates computes the eligible printer set for an order without side
// effects. An unknown material means zero candidates, not an error.
func (d *Distributor) Candidates(ctx context.Context, order *model.Order) ([]string, []error) {
	material, err := d.catalog.Material(ctx, order.MaterialID)
	if err != nil {
		if errors.Is(err, model.ErrNotFound) {
			d.logger.Warn("order references unknown material, distributing to nobody",
				zap.String("order_id", order.ID),
				zap.String("material_id", order.MaterialID))
			return nil, nil
		}
		return nil, []error{fmt.Errorf("load material %s: %w", order.MaterialID, err)}
	}

	capabilities, err := d.caps.ListCapabilities(ctx)
	if err != nil {
		return nil, []error{fmt.Errorf("list printer capabilities: %w", err)}
	}

	var eligible []string
	for _, capability := range capabilities {
		if Eligible(capability, material) {
			eligible = append(eligible, capability.PrinterID)
		}
	}
	return eligible, nil
}

// Deliver appends the order to each candidate's pending inbox. A fault
// delivering to one printer is recorded and skipped; the remaining printers
// still get the order.
func (d *Distributor) Deliver(ctx context.Context, order *model.Order, candidates []string) []error {
	var mu sync.Mutex
	var degraded []error

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(d.workers)
	for _, printerID := range candidates {
		printerID := printerID
		g.Go(func() error {
			if err := d.inbox.Add(gctx, printerID, order.ID); err != nil {
				d.logger.Warn("pending inbox delivery failed, skipping printer",
					zap.String("order_id", order.ID),
					zap.String("printer_id", printerID),
					zap.Error(err))
				metrics.DegradedMatchTotal.WithLabelValues("distribute").Inc()
				mu.Lock()
				degraded = append(degraded, &model.DegradedMatchError{
					PrinterID:  printerID,
					MaterialID: order.MaterialID,
					Reason:     "pending inbox delivery failed",
					Err:        err,
				})
				mu.Unlock()
			}
			// Faults are isolated per printer, never propagated through
			// the group.
			return nil
		})
	}
	_ = g.Wait()

	d.logger.Info("order distributed",
		zap.String("order_id", order.ID),
		zap.String("material_id", order.MaterialID),
		zap.Int("candidates", len(candidates)),
		zap.Int("degraded", len(degraded)))
	metrics.OrdersDistributedTotal.Inc()

	return degraded
}

// Distribute is Candidates followed by Deliver in one step.
func (d *Distributor) Distribute(ctx context.Context, order *model.Order) ([]string, []error) {
	candidates, errs := d.Candidates(ctx, order)
	if len(errs) > 0 {
		return nil, errs
	}
	errs = d.Deliver(ctx, order, candidates)
	return candidates, errs
}
