package model

import "time"

type OrderStatus string

const (
	StatusPending   OrderStatus = "pending"
	StatusAccepted  OrderStatus = "accepted"
	StatusFinalized OrderStatus = "finalized"
)

// Order is a buyer's request for a quantity of one catalog material.
// Once finalized it is immutable except for audit timestamps.
type Order struct {
	ID              string       `json:"id"`
	BuyerID         string       `json:"buyer_id"`
	MaterialID      string       `json:"material_id"`
	Quantity        int          `json:"quantity"`
	Notes           string       `json:"notes,omitempty"`
	Status          OrderStatus  `json:"status"`
	ChosenPrinterID string       `json:"chosen_printer_id,omitempty"`
	CreatedAt       time.Time    `json:"created_at"`
	UpdatedAt       time.Time    `json:"updated_at"`
	Acceptances     []Acceptance `json:"acceptances,omitempty"`
}

// Acceptance is a printer's commitment to fulfill an order, together with
// the commercial terms supplied at acceptance time. Append-only; a printer
// appears at most once per order.
type Acceptance struct {
	ID                    string    `json:"id"`
	OrderID               string    `json:"order_id"`
	PrinterID             string    `json:"printer_id"`
	SubmittedAt           time.Time `json:"submitted_at"`
	Message               string    `json:"message,omitempty"`
	PriceTotal            float64   `json:"price_total"`
	PricePerUnitArea      *float64  `json:"price_per_unit_area,omitempty"`
	DistanceKm            float64   `json:"distance_km"`
	DeliveryMode          string    `json:"delivery_mode"`
	AcceptsDiscountCoupon bool      `json:"accepts_discount_coupon"`
}

// PrinterCapability is the registry record the distribution engine reads.
// Mutated by the printer, read-only here.
type PrinterCapability struct {
	PrinterID            string   `json:"printer_id"`
	Technologies         []string `json:"technologies"`
	ActiveMaterialIDs    []string `json:"active_material_ids"`
	ReceiveOrdersEnabled bool     `json:"receive_orders_enabled"`
}

// MaterialEntry is one published catalog definition. The engine only ever
// sees the published version; drafts live in the catalog admin pipeline.
type MaterialEntry struct {
	ID                          string   `json:"id"`
	Category                    string   `json:"category"`
	Subcategory                 string   `json:"subcategory"`
	Finish                      string   `json:"finish"`
	CompatibleTechnologies      []string `json:"compatible_technologies"`
	RegionalAvgPricePerUnitArea *float64 `json:"regional_avg_price_per_unit_area,omitempty"`
}

// PrinterIdentity holds the fields the anonymity layer protects until the
// buyer finalizes a choice.
type PrinterIdentity struct {
	PrinterID     string  `json:"printer_id"`
	CompanyName   string  `json:"company_name"`
	Street        string  `json:"street"`
	Neighborhood  string  `json:"neighborhood"`
	City          string  `json:"city"`
	Phone         string  `json:"phone"`
	Email         string  `json:"email"`
	RatingAverage float64 `json:"rating_average"`
}

// Proposal is the ranking read-model: one acceptance joined with the
// printer's rating and the regional price baseline. Derived on every view,
// never persisted.
type Proposal struct {
	ID                          string
	PrinterID                   string
	SubmittedAt                 time.Time
	PriceTotal                  float64
	PricePerUnitArea            *float64
	DistanceKm                  float64
	RatingAverage               float64
	ResponseTimeMinutes         float64
	DeliveryMode                string
	AcceptsDiscountCoupon       bool
	RegionalAvgPricePerUnitArea *float64
}
