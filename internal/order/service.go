//go:generate mockgen -source ./service.go -destination=./mocks/service.go -package=mock_order

// Package order implements the marketplace order lifecycle: creation and
// fan-out, printer acceptance, buyer-facing ranked proposal views,
// finalization and identity reveal.
package order

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/printhub/printhub/internal/anonymity"
	"github.com/printhub/printhub/internal/db"
	"github.com/printhub/printhub/internal/match"
	"github.com/printhub/printhub/internal/metrics"
	"github.com/printhub/printhub/internal/model"
	"github.com/printhub/printhub/internal/rank"
	"github.com/printhub/printhub/internal/repository"
)

type OrderRepository interface {
	CreateTx(ctx context.Context, tx db.Tx, order *repository.Order) error
	GetByID(ctx context.Context, id string) (*repository.Order, error)
	GetByIDTx(ctx context.Context, tx db.Tx, id string) (*repository.Order, error)
	UpdateStatusTx(ctx context.Context, tx db.Tx, order *repository.Order) error
	GetByBuyerID(ctx context.Context, buyerID string) ([]*repository.Order, error)
}

type AcceptanceRepository interface {
	CreateTx(ctx context.Context, tx db.Tx, acc *repository.Acceptance) error
	ExistsTx(ctx context.Context, tx db.Tx, orderID, printerID string) (bool, error)
	GetByOrderID(ctx context.Context, orderID string) ([]*repository.Acceptance, error)
}

type CapabilityRepository interface {
	GetAll(ctx context.Context) ([]*repository.PrinterCapability, error)
	GetByPrinterID(ctx context.Context, printerID string) (*repository.PrinterCapability, error)
	Upsert(ctx context.Context, capability *repository.PrinterCapability) error
}

type IdentityRepository interface {
	GetByPrinterID(ctx context.Context, printerID string) (*repository.PrinterIdentity, error)
}

type OutboxRepository interface {
	CreateTx(ctx context.Context, tx db.Tx, task *repository.OutboxTask) error
}

// NotificationTopic is the outbox topic all lifecycle events go to.
const NotificationTopic = "marketplace_events"

// AcceptTerms are the commercial terms a printer submits with an
// acceptance.
type AcceptTerms struct {
	Message               string
	PriceTotal            float64
	PricePerUnitArea      *float64
	DistanceKm            float64
	DeliveryMode          string
	AcceptsDiscountCoupon bool
}

type Service struct {
	database     db.DB
	orders       OrderRepository
	acceptances  AcceptanceRepository
	capabilities CapabilityRepository
	identities   IdentityRepository
	outbox       OutboxRepository
	catalog      match.CatalogSource
	inbox        match.Inbox
	distributor  *match.Distributor
	revealer     *anonymity.Revealer
	logger       *zap.Logger
	now          func() time.Time
}

func NewService(
	database db.DB,
	orders OrderRepository,
	acceptances AcceptanceRepository,
	capabilities CapabilityRepository,
	identities IdentityRepository,
	outbox OutboxRepository,
	catalog match.CatalogSource,
	inbox match.Inbox,
	logger *zap.Logger,
) *Service {
	s := &Service{
		database:     database,
		orders:       orders,
		acceptances:  acceptances,
		capabilities: capabilities,
		identities:   identities,
		outbox:       outbox,
		catalog:      catalog,
		inbox:        inbox,
		logger:       logger,
		now:          func() time.Time { return time.Now().UTC() },
	}
	s.distributor = match.NewDistributor(catalog, capabilitySource{repo: capabilities}, inbox, logger)
	s.revealer = anonymity.NewRevealer(s, identitySource{repo: identities})
	return s
}

// capabilitySource adapts the repository rows to the distributor's view of
// the registry.
type capabilitySource struct {
	repo CapabilityRepository
}

func (c capabilitySource) ListCapabilities(ctx context.Context) ([]model.PrinterCapability, error) {
	rows, err := c.repo.GetAll(ctx)
	if err != nil {
		return nil, err
	}
	caps := make([]model.PrinterCapability, len(rows))
	for i, row := range rows {
		caps[i] = model.PrinterCapability{
			PrinterID:            row.PrinterID,
			Technologies:         row.Technologies,
			ActiveMaterialIDs:    row.ActiveMaterialIDs,
			ReceiveOrdersEnabled: row.ReceiveOrdersEnabled,
		}
	}
	return caps, nil
}

type identitySource struct {
	repo IdentityRepository
}

func (s identitySource) GetIdentity(ctx context.Context, printerID string) (*model.PrinterIdentity, error) {
	row, err := s.repo.GetByPrinterID(ctx, printerID)
	if err != nil {
		if errors.Is(err, repository.ErrObjectNotFound) {
			return nil, model.ErrNotFound
		}
		return nil, err
	}
	return toModelIdentity(row), nil
}

// CreateOrder records a buyer's order and fans it out to every eligible
// printer's pending inbox. The order row and the distribution event go
// through one transaction, so a notification is never lost between the
// insert and the enqueue.
func (s *Service) CreateOrder(ctx context.Context, buyerID, materialID string, quantity int, notes string) (*model.Order, error) {
	if buyerID == "" || materialID == "" {
		return nil, fmt.Errorf("buyer id and material id are required")
	}
	if quantity <= 0 {
		return nil, fmt.Errorf("quantity must be positive")
	}

	now := s.now()
	row := &repository.Order{
		ID:         uuid.New().String(),
		BuyerID:    buyerID,
		MaterialID: materialID,
		Quantity:   quantity,
		Notes:      notes,
		Status:     string(model.StatusPending),
		CreatedAt:  now,
		UpdatedAt:  now,
	}
	order := toModelOrder(row, nil)

	// Candidate selection is read-only, so it runs ahead of the write
	// transaction; only inbox delivery stays post-commit.
	candidates, degraded := s.distributor.Candidates(ctx, order)
	for _, derr := range degraded {
		s.logger.Warn("candidate selection degraded", zap.String("order_id", order.ID), zap.Error(derr))
	}

	tx, err := s.database.BeginTx(ctx)
	if err != nil {
		return nil, fmt.Errorf("begin create transaction: %w", err)
	}
	defer func() {
		_ = tx.Rollback(context.Background())
	}()

	if err := s.orders.CreateTx(ctx, tx, row); err != nil {
		metrics.OperationErrorsTotal.WithLabelValues("create_order").Inc()
		return nil, fmt.Errorf("create order: %w", err)
	}
	if err := s.enqueueEventTx(ctx, tx, repository.EventOrderDistributed, order.ID, candidates, ""); err != nil {
		return nil, fmt.Errorf("enqueue distribution notification: %w", err)
	}
	if err := tx.Commit(ctx); err != nil {
		return nil, fmt.Errorf("commit order creation: %w", err)
	}
	metrics.OrdersCreatedTotal.Inc()

	for _, derr := range s.distributor.Deliver(ctx, order, candidates) {
		s.logger.Warn("distribution degraded", zap.String("order_id", order.ID), zap.Error(derr))
	}

	return order, nil
}

// GetOrder returns one order with its acceptances.
func (s *Service) GetOrder(ctx context.Context, orderID string) (*model.Order, error) {
	row, err := s.orders.GetByID(ctx, orderID)
	if err != nil {
		if errors.Is(err, repository.ErrObjectNotFound) {
			return nil, fmt.Errorf("order %s: %w", orderID, model.ErrNotFound)
		}
		return nil, fmt.Errorf("get order: %w", err)
	}
	accs, err := s.acceptances.GetByOrderID(ctx, orderID)
	if err != nil {
		return nil, fmt.Errorf("get order acceptances: %w", err)
	}
	return toModelOrder(row, accs), nil
}

func (s *Service) ListBuyerOrders(ctx context.Context, buyerID string) ([]model.Order, error) {
	rows, err := s.orders.GetByBuyerID(ctx, buyerID)
	if err != nil {
		return nil, fmt.Errorf("list buyer orders: %w", err)
	}
	orders := make([]model.Order, len(rows))
	for i, row := range rows {
		orders[i] = *toModelOrder(row, nil)
	}
	return orders, nil
}

// PendingOrders lists the orders currently waiting in a printer's inbox.
// Entries whose order has vanished are dropped silently.
func (s *Service) PendingOrders(ctx context.Context, printerID string) ([]model.Order, error) {
	ids, err := s.inbox.List(ctx, printerID)
	if err != nil {
		return nil, fmt.Errorf("list pending inbox: %w", err)
	}
	orders := make([]model.Order, 0, len(ids))
	for _, id := range ids {
		row, err := s.orders.GetByID(ctx, id)
		if err != nil {
			if errors.Is(err, repository.ErrObjectNotFound) {
				continue
			}
			return nil, fmt.Errorf("load pending order %s: %w", id, err)
		}
		orders = append(orders, *toModelOrder(row, nil))
	}
	return orders, nil
}

// Accept appends a printer's acceptance to an order. The order row is
// locked for the duration, so two printers accepting concurrently are both
// recorded and a printer accepting twice is rejected.
func (s *Service) Accept(ctx context.Context, orderID, printerID string, terms AcceptTerms) error {
	if printerID == "" {
		return fmt.Errorf("printer id is required")
	}

	tx, err := s.database.BeginTx(ctx)
	if err != nil {
		return fmt.Errorf("begin accept transaction: %w", err)
	}
	defer func() {
		_ = tx.Rollback(context.Background())
	}()

	row, err := s.orders.GetByIDTx(ctx, tx, orderID)
	if err != nil {
		if errors.Is(err, repository.ErrObjectNotFound) {
			return fmt.Errorf("order %s: %w", orderID, model.ErrNotFound)
		}
		return fmt.Errorf("lock order: %w", err)
	}
	if row.Status == string(model.StatusFinalized) {
		return fmt.Errorf("order %s is already finalized: %w", orderID, model.ErrInvalidState)
	}

	exists, err := s.acceptances.ExistsTx(ctx, tx, orderID, printerID)
	if err != nil {
		return fmt.Errorf("check existing acceptance: %w", err)
	}
	if exists {
		return fmt.Errorf("printer %s already accepted order %s: %w", printerID, orderID, model.ErrInvalidState)
	}

	acc := &repository.Acceptance{
		ID:                    uuid.New().String(),
		OrderID:               orderID,
		PrinterID:             printerID,
		SubmittedAt:           s.now(),
		Message:               terms.Message,
		PriceTotal:            terms.PriceTotal,
		PricePerUnitArea:      terms.PricePerUnitArea,
		DistanceKm:            terms.DistanceKm,
		DeliveryMode:          terms.DeliveryMode,
		AcceptsDiscountCoupon: terms.AcceptsDiscountCoupon,
	}
	if err := s.acceptances.CreateTx(ctx, tx, acc); err != nil {
		return fmt.Errorf("record acceptance: %w", err)
	}

	if row.Status == string(model.StatusPending) {
		row.Status = string(model.StatusAccepted)
		row.UpdatedAt = s.now()
		if err := s.orders.UpdateStatusTx(ctx, tx, row); err != nil {
			return fmt.Errorf("advance order status: %w", err)
		}
	}

	if err := s.enqueueEventTx(ctx, tx, repository.EventProposalAccepted, orderID, []string{printerID}, ""); err != nil {
		return fmt.Errorf("enqueue acceptance notification: %w", err)
	}

	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("commit acceptance: %w", err)
	}

	// Inbox removal is idempotent and outside the transaction; a retry
	// after a crash here is harmless.
	if err := s.inbox.Remove(ctx, printerID, orderID); err != nil {
		s.logger.Warn("failed to clear inbox entry after acceptance",
			zap.String("order_id", orderID), zap.String("printer_id", printerID), zap.Error(err))
	}

	metrics.ProposalsAcceptedTotal.Inc()
	s.logger.Info("proposal accepted",
		zap.String("order_id", orderID), zap.String("printer_id", printerID))
	return nil
}

// Reject drops the order from the printer's inbox. Safe to call any number
// of times.
func (s *Service) Reject(ctx context.Context, orderID, printerID string) error {
	if err := s.inbox.Remove(ctx, printerID, orderID); err != nil {
		return fmt.Errorf("reject order: %w", err)
	}
	return nil
}

// Proposals builds the buyer-facing view: the ranking read-model is
// recomputed from the current acceptances, ranked, then masked.
func (s *Service) Proposals(ctx context.Context, orderID string) ([]anonymity.PublicProposal, error) {
	row, err := s.orders.GetByID(ctx, orderID)
	if err != nil {
		if errors.Is(err, repository.ErrObjectNotFound) {
			return nil, fmt.Errorf("order %s: %w", orderID, model.ErrNotFound)
		}
		return nil, fmt.Errorf("get order: %w", err)
	}

	accs, err := s.acceptances.GetByOrderID(ctx, orderID)
	if err != nil {
		return nil, fmt.Errorf("load acceptances: %w", err)
	}

	var regionalAvg *float64
	if material, err := s.catalog.Material(ctx, row.MaterialID); err == nil {
		regionalAvg = material.RegionalAvgPricePerUnitArea
	}

	proposals := make([]model.Proposal, 0, len(accs))
	identityByPrinter := make(map[string]*model.PrinterIdentity, len(accs))
	for _, acc := range accs {
		rating := 0.0
		identity, err := s.identities.GetByPrinterID(ctx, acc.PrinterID)
		if err != nil {
			metrics.DegradedMatchTotal.WithLabelValues("rank").Inc()
			s.logger.Warn("printer identity missing, ranking with zero rating",
				zap.String("order_id", orderID), zap.String("printer_id", acc.PrinterID), zap.Error(err))
		} else {
			rating = identity.RatingAverage
			identityByPrinter[acc.PrinterID] = toModelIdentity(identity)
		}

		proposals = append(proposals, model.Proposal{
			ID:                          acc.ID,
			PrinterID:                   acc.PrinterID,
			SubmittedAt:                 acc.SubmittedAt,
			PriceTotal:                  acc.PriceTotal,
			PricePerUnitArea:            acc.PricePerUnitArea,
			DistanceKm:                  acc.DistanceKm,
			RatingAverage:               rating,
			ResponseTimeMinutes:         acc.SubmittedAt.Sub(row.CreatedAt).Minutes(),
			DeliveryMode:                acc.DeliveryMode,
			AcceptsDiscountCoupon:       acc.AcceptsDiscountCoupon,
			RegionalAvgPricePerUnitArea: regionalAvg,
		})
	}

	ranked, skipped := rank.Rank(proposals)
	for _, serr := range skipped {
		metrics.DegradedMatchTotal.WithLabelValues("rank").Inc()
		s.logger.Warn("proposal excluded from ranking", zap.String("order_id", orderID), zap.Error(serr))
	}

	public := make([]anonymity.PublicProposal, len(ranked))
	for i, rp := range ranked {
		public[i] = anonymity.Mask(rp, identityByPrinter[rp.PrinterID], i)
	}
	return public, nil
}

// Finalize records the buyer's selection: a single atomic transition from
// accepted to finalized. Losing printers are notified and every pending
// inbox entry for the order is cleared.
func (s *Service) Finalize(ctx context.Context, orderID, proposalID string) (*model.Order, error) {
	tx, err := s.database.BeginTx(ctx)
	if err != nil {
		return nil, fmt.Errorf("begin finalize transaction: %w", err)
	}
	defer func() {
		_ = tx.Rollback(context.Background())
	}()

	row, err := s.orders.GetByIDTx(ctx, tx, orderID)
	if err != nil {
		if errors.Is(err, repository.ErrObjectNotFound) {
			return nil, fmt.Errorf("order %s: %w", orderID, model.ErrNotFound)
		}
		return nil, fmt.Errorf("lock order: %w", err)
	}
	if row.Status != string(model.StatusAccepted) {
		return nil, fmt.Errorf("order %s is %s, cannot finalize: %w", orderID, row.Status, model.ErrInvalidState)
	}

	accs, err := s.acceptances.GetByOrderID(ctx, orderID)
	if err != nil {
		return nil, fmt.Errorf("load acceptances: %w", err)
	}

	var chosen *repository.Acceptance
	affected := make([]string, 0, len(accs))
	for _, acc := range accs {
		affected = append(affected, acc.PrinterID)
		if acc.ID == proposalID {
			chosen = acc
		}
	}
	if chosen == nil {
		return nil, fmt.Errorf("proposal %s on order %s: %w", proposalID, orderID, model.ErrNotFound)
	}

	row.Status = string(model.StatusFinalized)
	row.ChosenPrinterID = &chosen.PrinterID
	row.UpdatedAt = s.now()
	if err := s.orders.UpdateStatusTx(ctx, tx, row); err != nil {
		return nil, fmt.Errorf("finalize order: %w", err)
	}

	if err := s.enqueueEventTx(ctx, tx, repository.EventOrderFinalized, orderID, affected, chosen.PrinterID); err != nil {
		return nil, fmt.Errorf("enqueue finalization notification: %w", err)
	}

	if err := tx.Commit(ctx); err != nil {
		return nil, fmt.Errorf("commit finalization: %w", err)
	}

	s.clearAllInboxes(ctx, orderID)

	metrics.OrdersFinalizedTotal.Inc()
	s.logger.Info("order finalized",
		zap.String("order_id", orderID), zap.String("chosen_printer_id", chosen.PrinterID))
	return toModelOrder(row, accs), nil
}

// Reveal resolves the chosen printer's full identity. Only valid once the
// order is finalized.
func (s *Service) Reveal(ctx context.Context, orderID string) (*model.PrinterIdentity, error) {
	return s.revealer.Reveal(ctx, orderID)
}

// UpdateCapability replaces a printer's registry record, including the
// receive-orders opt-in flag.
func (s *Service) UpdateCapability(ctx context.Context, capability model.PrinterCapability) error {
	if capability.PrinterID == "" {
		return fmt.Errorf("printer id is required")
	}
	err := s.capabilities.Upsert(ctx, &repository.PrinterCapability{
		PrinterID:            capability.PrinterID,
		Technologies:         capability.Technologies,
		ActiveMaterialIDs:    capability.ActiveMaterialIDs,
		ReceiveOrdersEnabled: capability.ReceiveOrdersEnabled,
	})
	if err != nil {
		return fmt.Errorf("update capability: %w", err)
	}
	return nil
}

// clearAllInboxes removes the order from every printer's pending inbox,
// losers included. Removal is idempotent, so partial failures are only
// logged and retried on the next finalize-side sweep.
func (s *Service) clearAllInboxes(ctx context.Context, orderID string) {
	caps, err := s.capabilities.GetAll(ctx)
	if err != nil {
		s.logger.Warn("failed to list printers for inbox sweep",
			zap.String("order_id", orderID), zap.Error(err))
		return
	}
	for _, capability := range caps {
		if err := s.inbox.Remove(ctx, capability.PrinterID, orderID); err != nil {
			s.logger.Warn("failed to clear inbox entry",
				zap.String("order_id", orderID), zap.String("printer_id", capability.PrinterID), zap.Error(err))
		}
	}
}

func (s *Service) enqueueEventTx(ctx context.Context, tx db.Tx, eventType, orderID string, affected []string, chosen string) error {
	payload, err := json.Marshal(repository.NotificationPayload{
		EventType:          eventType,
		OrderID:            orderID,
		AffectedPrinterIDs: affected,
		ChosenPrinterID:    chosen,
		OccurredAt:         s.now(),
	})
	if err != nil {
		return err
	}
	return s.outbox.CreateTx(ctx, tx, &repository.OutboxTask{
		Payload: payload,
		Topic:   NotificationTopic,
	})
}

func toModelOrder(row *repository.Order, accs []*repository.Acceptance) *model.Order {
	order := &model.Order{
		ID:         row.ID,
		BuyerID:    row.BuyerID,
		MaterialID: row.MaterialID,
		Quantity:   row.Quantity,
		Notes:      row.Notes,
		Status:     model.OrderStatus(row.Status),
		CreatedAt:  row.CreatedAt,
		UpdatedAt:  row.UpdatedAt,
	}
	if row.ChosenPrinterID != nil {
		order.ChosenPrinterID = *row.ChosenPrinterID
	}
	for _, acc := range accs {
		order.Acceptances = append(order.Acceptances, model.Acceptance{
			ID:                    acc.ID,
			OrderID:               acc.OrderID,
			PrinterID:             acc.PrinterID,
			SubmittedAt:           acc.SubmittedAt,
			Message:               acc.Message,
			PriceTotal:            acc.PriceTotal,
			PricePerUnitArea:      acc.PricePerUnitArea,
			DistanceKm:            acc.DistanceKm,
			DeliveryMode:          acc.DeliveryMode,
			AcceptsDiscountCoupon: acc.AcceptsDiscountCoupon,
		})
	}
	return order
}

func toModelIdentity(row *repository.PrinterIdentity) *model.PrinterIdentity {
	return &model.PrinterIdentity{
		PrinterID:     row.PrinterID,
		CompanyName:   row.CompanyName,
		Street:        row.Street,
		Neighborhood:  row.Neighborhood,
		City:          row.City,
		Phone:         row.Phone,
		Email:         row.Email,
		RatingAverage: row.RatingAverage,
	}
}
