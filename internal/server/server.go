//go:generate mockgen -source ./server.go -destination=./mocks/server.go -package=mock_server
package server

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"time"

	"github.com/gorilla/mux"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/zap"

	"github.com/printhub/printhub/internal/anonymity"
	"github.com/printhub/printhub/internal/model"
	"github.com/printhub/printhub/internal/order"
)

type Service interface {
	CreateOrder(ctx context.Context, buyerID, materialID string, quantity int, notes string) (*model.Order, error)
	GetOrder(ctx context.Context, orderID string) (*model.Order, error)
	ListBuyerOrders(ctx context.Context, buyerID string) ([]model.Order, error)
	PendingOrders(ctx context.Context, printerID string) ([]model.Order, error)
	Accept(ctx context.Context, orderID, printerID string, terms order.AcceptTerms) error
	Reject(ctx context.Context, orderID, printerID string) error
	Proposals(ctx context.Context, orderID string) ([]anonymity.PublicProposal, error)
	Finalize(ctx context.Context, orderID, proposalID string) (*model.Order, error)
	Reveal(ctx context.Context, orderID string) (*model.PrinterIdentity, error)
	UpdateCapability(ctx context.Context, capability model.PrinterCapability) error
}

type Accounts interface {
	ValidateAccount(ctx context.Context, username, password string) (bool, error)
}

type Server struct {
	service  Service
	accounts Accounts
	logger   *zap.Logger
	server   *http.Server
}

func New(service Service, accounts Accounts, logger *zap.Logger) *Server {
	return &Server{
		service:  service,
		accounts: accounts,
		logger:   logger,
	}
}

func (s *Server) Run(port string) error {
	s.server = &http.Server{
		Addr:         ":" + port,
		Handler:      s.setupRoutes(),
		ReadTimeout:  10 * time.Second,
		WriteTimeout: 10 * time.Second,
	}

	s.logger.Info("http server starting", zap.String("port", port))
	if err := s.server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return err
	}
	return nil
}

func (s *Server) Shutdown(ctx context.Context) error {
	if s.server == nil {
		return nil
	}
	return s.server.Shutdown(ctx)
}

func (s *Server) setupRoutes() http.Handler {
	r := mux.NewRouter()

	r.Handle("/metrics", promhttp.Handler())

	api := r.PathPrefix("/").Subrouter()
	api.Use(s.loggingMiddleware, s.basicAuthMiddleware)

	api.HandleFunc("/orders", s.handleCreateOrder).Methods(http.MethodPost)
	api.HandleFunc("/orders/{id}", s.handleGetOrder).Methods(http.MethodGet)
	api.HandleFunc("/orders/{id}/proposals", s.handleProposals).Methods(http.MethodGet)
	api.HandleFunc("/orders/{id}/finalize", s.handleFinalize).Methods(http.MethodPost)
	api.HandleFunc("/orders/{id}/winner", s.handleReveal).Methods(http.MethodGet)
	api.HandleFunc("/orders/{id}/accept", s.handleAccept).Methods(http.MethodPost)
	api.HandleFunc("/orders/{id}/reject", s.handleReject).Methods(http.MethodPost)
	api.HandleFunc("/buyers/{buyerID}/orders", s.handleListBuyerOrders).Methods(http.MethodGet)
	api.HandleFunc("/printers/{printerID}/inbox", s.handlePendingOrders).Methods(http.MethodGet)
	api.HandleFunc("/printers/{printerID}/capabilities", s.handleUpdateCapability).Methods(http.MethodPut)

	return r
}

func (s *Server) loggingMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		next.ServeHTTP(w, r)
		s.logger.Debug("http request",
			zap.String("method", r.Method),
			zap.String("path", r.URL.Path),
			zap.Duration("took", time.Since(start)))
	})
}

func (s *Server) basicAuthMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		username, password, ok := r.BasicAuth()
		if !ok {
			w.Header().Set("WWW-Authenticate", `Basic realm="Restricted"`)
			http.Error(w, "Unauthorized", http.StatusUnauthorized)
			return
		}

		valid, err := s.accounts.ValidateAccount(r.Context(), username, password)
		if err != nil || !valid {
			w.Header().Set("WWW-Authenticate", `Basic realm="Restricted"`)
			http.Error(w, "Unauthorized", http.StatusUnauthorized)
			return
		}

		next.ServeHTTP(w, r)
	})
}

func respondJSON(w http.ResponseWriter, status int, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if data != nil {
		if err := json.NewEncoder(w).Encode(data); err != nil {
			http.Error(w, err.Error(), http.StatusInternalServerError)
		}
	}
}

func respondError(w http.ResponseWriter, status int, message string) {
	respondJSON(w, status, map[string]string{"error": message})
}

// respondServiceError maps the error taxonomy onto HTTP statuses.
func respondServiceError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, model.ErrNotFound):
		respondError(w, http.StatusNotFound, err.Error())
	case errors.Is(err, model.ErrInvalidState):
		respondError(w, http.StatusConflict, err.Error())
	default:
		respondError(w, http.StatusInternalServerError, err.Error())
	}
}

func (s *Server) handleCreateOrder(w http.ResponseWriter, r *http.Request) {
	var req struct {
		BuyerID    string `json:"buyer_id"`
		MaterialID string `json:"material_id"`
		Quantity   int    `json:"quantity"`
		Notes      string `json:"notes"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondError(w, http.StatusBadRequest, "Invalid request body")
		return
	}
	if req.BuyerID == "" || req.MaterialID == "" || req.Quantity <= 0 {
		respondError(w, http.StatusBadRequest, "Missing buyer_id, material_id or quantity")
		return
	}

	created, err := s.service.CreateOrder(r.Context(), req.BuyerID, req.MaterialID, req.Quantity, req.Notes)
	if err != nil {
		respondServiceError(w, err)
		return
	}
	respondJSON(w, http.StatusCreated, created)
}

func (s *Server) handleGetOrder(w http.ResponseWriter, r *http.Request) {
	orderID := mux.Vars(r)["id"]
	found, err := s.service.GetOrder(r.Context(), orderID)
	if err != nil {
		respondServiceError(w, err)
		return
	}
	respondJSON(w, http.StatusOK, found)
}

func (s *Server) handleListBuyerOrders(w http.ResponseWriter, r *http.Request) {
	buyerID := mux.Vars(r)["buyerID"]
	orders, err := s.service.ListBuyerOrders(r.Context(), buyerID)
	if err != nil {
		respondServiceError(w, err)
		return
	}
	respondJSON(w, http.StatusOK, orders)
}

func (s *Server) handlePendingOrders(w http.ResponseWriter, r *http.Request) {
	printerID := mux.Vars(r)["printerID"]
	orders, err := s.service.PendingOrders(r.Context(), printerID)
	if err != nil {
		respondServiceError(w, err)
		return
	}
	respondJSON(w, http.StatusOK, orders)
}

func (s *Server) handleAccept(w http.ResponseWriter, r *http.Request) {
	orderID := mux.Vars(r)["id"]

	var req struct {
		PrinterID             string   `json:"printer_id"`
		Message               string   `json:"message"`
		PriceTotal            float64  `json:"price_total"`
		PricePerUnitArea      *float64 `json:"price_per_unit_area"`
		DistanceKm            float64  `json:"distance_km"`
		DeliveryMode          string   `json:"delivery_mode"`
		AcceptsDiscountCoupon bool     `json:"accepts_discount_coupon"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondError(w, http.StatusBadRequest, "Invalid request body")
		return
	}
	if req.PrinterID == "" {
		respondError(w, http.StatusBadRequest, "Missing printer_id")
		return
	}

	err := s.service.Accept(r.Context(), orderID, req.PrinterID, order.AcceptTerms{
		Message:               req.Message,
		PriceTotal:            req.PriceTotal,
		PricePerUnitArea:      req.PricePerUnitArea,
		DistanceKm:            req.DistanceKm,
		DeliveryMode:          req.DeliveryMode,
		AcceptsDiscountCoupon: req.AcceptsDiscountCoupon,
	})
	if err != nil {
		respondServiceError(w, err)
		return
	}
	respondJSON(w, http.StatusOK, map[string]string{
		"message": "Acceptance recorded for order " + orderID,
	})
}

func (s *Server) handleReject(w http.ResponseWriter, r *http.Request) {
	orderID := mux.Vars(r)["id"]

	var req struct {
		PrinterID string `json:"printer_id"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil || req.PrinterID == "" {
		respondError(w, http.StatusBadRequest, "Missing printer_id")
		return
	}

	if err := s.service.Reject(r.Context(), orderID, req.PrinterID); err != nil {
		respondServiceError(w, err)
		return
	}
	respondJSON(w, http.StatusOK, map[string]string{
		"message": "Order removed from inbox",
	})
}

func (s *Server) handleProposals(w http.ResponseWriter, r *http.Request) {
	orderID := mux.Vars(r)["id"]
	proposals, err := s.service.Proposals(r.Context(), orderID)
	if err != nil {
		respondServiceError(w, err)
		return
	}
	respondJSON(w, http.StatusOK, proposals)
}

func (s *Server) handleFinalize(w http.ResponseWriter, r *http.Request) {
	orderID := mux.Vars(r)["id"]

	var req struct {
		ProposalID string `json:"proposal_id"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil || req.ProposalID == "" {
		respondError(w, http.StatusBadRequest, "Missing proposal_id")
		return
	}

	finalized, err := s.service.Finalize(r.Context(), orderID, req.ProposalID)
	if err != nil {
		respondServiceError(w, err)
		return
	}
	respondJSON(w, http.StatusOK, finalized)
}

func (s *Server) handleReveal(w http.ResponseWriter, r *http.Request) {
	orderID := mux.Vars(r)["id"]
	identity, err := s.service.Reveal(r.Context(), orderID)
	if err != nil {
		respondServiceError(w, err)
		return
	}
	respondJSON(w, http.StatusOK, identity)
}

func (s *Server) handleUpdateCapability(w http.ResponseWriter, r *http.Request) {
	printerID := mux.Vars(r)["printerID"]

	var req struct {
		Technologies         []string `json:"technologies"`
		ActiveMaterialIDs    []string `json:"active_material_ids"`
		ReceiveOrdersEnabled bool     `json:"receive_orders_enabled"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	err := s.service.UpdateCapability(r.Context(), model.PrinterCapability{
		PrinterID:            printerID,
		Technologies:         req.Technologies,
		ActiveMaterialIDs:    req.ActiveMaterialIDs,
		ReceiveOrdersEnabled: req.ReceiveOrdersEnabled,
	})
	if err != nil {
		respondServiceError(w, err)
		return
	}
	respondJSON(w, http.StatusOK, map[string]string{
		"message": "Capabilities updated for printer " + printerID,
	})
}
