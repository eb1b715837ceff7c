package repository

import (
	"errors"
	"time"
)

var ErrObjectNotFound = errors.New("not found")

type Order struct {
	ID              string    `db:"id"`
	BuyerID         string    `db:"buyer_id"`
	MaterialID      string    `db:"material_id"`
	Quantity        int       `db:"quantity"`
	Notes           string    `db:"notes"`
	Status          string    `db:"status"`
	ChosenPrinterID *string   `db:"chosen_printer_id"`
	CreatedAt       time.Time `db:"created_at"`
	UpdatedAt       time.Time `db:"updated_at"`
}

type Acceptance struct {
	ID                    string    `db:"id"`
	OrderID               string    `db:"order_id"`
	PrinterID             string    `db:"printer_id"`
	SubmittedAt           time.Time `db:"submitted_at"`
	Message               string    `db:"message"`
	PriceTotal            float64   `db:"price_total"`
	PricePerUnitArea      *float64  `db:"price_per_unit_area"`
	DistanceKm            float64   `db:"distance_km"`
	DeliveryMode          string    `db:"delivery_mode"`
	AcceptsDiscountCoupon bool      `db:"accepts_discount_coupon"`
}

type PrinterCapability struct {
	PrinterID            string    `db:"printer_id"`
	Technologies         []string  `db:"technologies"`
	ActiveMaterialIDs    []string  `db:"active_material_ids"`
	ReceiveOrdersEnabled bool      `db:"receive_orders_enabled"`
	UpdatedAt            time.Time `db:"updated_at"`
}

type MaterialEntry struct {
	ID                          string    `db:"id"`
	Category                    string    `db:"category"`
	Subcategory                 string    `db:"subcategory"`
	Finish                      string    `db:"finish"`
	CompatibleTechnologies      []string  `db:"compatible_technologies"`
	RegionalAvgPricePerUnitArea *float64  `db:"regional_avg_price_per_unit_area"`
	Published                   bool      `db:"published"`
	UpdatedAt                   time.Time `db:"updated_at"`
}

type PrinterIdentity struct {
	PrinterID     string  `db:"printer_id"`
	CompanyName   string  `db:"company_name"`
	Street        string  `db:"street"`
	Neighborhood  string  `db:"neighborhood"`
	City          string  `db:"city"`
	Phone         string  `db:"phone"`
	Email         string  `db:"email"`
	RatingAverage float64 `db:"rating_average"`
}
