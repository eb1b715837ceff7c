// Package anonymity hides printer identity from buyers until an order is
// finalized. Pseudonyms are derived from ranked list position only; the
// mapping back to a real printer always goes through Reveal.
package anonymity

import (
	"context"
	"fmt"
	"strings"
	"unicode"

	"github.com/printhub/printhub/internal/model"
	"github.com/printhub/printhub/internal/rank"
)

// PublicProposal is the buyer-facing view of one ranked proposal. It
// carries the acceptance id so the buyer can select a winner, but nothing
// a printer could be identified from.
type PublicProposal struct {
	ProposalID            string            `json:"proposal_id"`
	Pseudonym             string            `json:"pseudonym"`
	Position              int               `json:"position"`
	Score                 float64           `json:"score"`
	MarketStatus          rank.MarketStatus `json:"market_status"`
	Badges                []rank.Badge      `json:"badges,omitempty"`
	PriceTotal            float64           `json:"price_total"`
	PricePerUnitArea      *float64          `json:"price_per_unit_area,omitempty"`
	DistanceKm            float64           `json:"distance_km"`
	RatingAverage         float64           `json:"rating_average"`
	ResponseTimeMinutes   float64           `json:"response_time_minutes"`
	DeliveryMode          string            `json:"delivery_mode"`
	AcceptsDiscountCoupon bool              `json:"accepts_discount_coupon"`
	Street                string            `json:"street,omitempty"`
	Neighborhood          string            `json:"neighborhood,omitempty"`
	City                  string            `json:"city,omitempty"`
}

// Pseudonym returns the letter+number code for a list position: A1..Z1,
// then A2 and so on. Stable within one ranking session only; re-ranking
// may hand a printer a different code.
func Pseudonym(index int) string {
	if index < 0 {
		index = 0
	}
	letter := rune('A' + index%26)
	cycle := index/26 + 1
	return fmt.Sprintf("Printer %c%d", letter, cycle)
}

// Mask builds the public view of one ranked proposal. Identity fields come
// from the printer record but are reduced to what the buyer may see:
// street without house number, neighborhood, city.
func Mask(rp rank.RankedProposal, identity *model.PrinterIdentity, index int) PublicProposal {
	pub := PublicProposal{
		ProposalID:            rp.ID,
		Pseudonym:             Pseudonym(index),
		Position:              rp.Position,
		Score:                 rp.Score,
		MarketStatus:          rp.MarketStatus,
		Badges:                rp.Badges,
		PriceTotal:            rp.PriceTotal,
		PricePerUnitArea:      rp.PricePerUnitArea,
		DistanceKm:            rp.DistanceKm,
		RatingAverage:         rp.RatingAverage,
		ResponseTimeMinutes:   rp.ResponseTimeMinutes,
		DeliveryMode:          rp.DeliveryMode,
		AcceptsDiscountCoupon: rp.AcceptsDiscountCoupon,
	}
	if identity != nil {
		pub.Street = StripHouseNumber(identity.Street)
		pub.Neighborhood = identity.Neighborhood
		pub.City = identity.City
	}
	return pub
}

// StripHouseNumber removes house/unit tokens from a street line, keeping
// the street name itself. "Av. Paulista, 1578 ap 12" becomes "Av. Paulista".
func StripHouseNumber(street string) string {
	street = strings.SplitN(street, ",", 2)[0]
	fields := strings.Fields(street)
	kept := make([]string, 0, len(fields))
	for _, f := range fields {
		if containsDigit(f) {
			break
		}
		kept = append(kept, f)
	}
	return strings.Join(kept, " ")
}

func containsDigit(s string) bool {
	for _, r := range s {
		if unicode.IsDigit(r) {
			return true
		}
	}
	return false
}

type IdentityStore interface {
	GetIdentity(ctx context.Context, printerID string) (*model.PrinterIdentity, error)
}

type OrderStore interface {
	GetOrder(ctx context.Context, orderID string) (*model.Order, error)
}

// Revealer resolves full printer identity once, and only once, the buyer
// has committed to a choice.
type Revealer struct {
	orders     OrderStore
	identities IdentityStore
}

func NewRevealer(orders OrderStore, identities IdentityStore) *Revealer {
	return &Revealer{orders: orders, identities: identities}
}

// Reveal returns the chosen printer's full identity for a finalized order.
// Calling it before finalization, or for a printer other than the chosen
// one, is rejected with model.ErrInvalidState.
func (r *Revealer) Reveal(ctx context.Context, orderID string) (*model.PrinterIdentity, error) {
	order, err := r.orders.GetOrder(ctx, orderID)
	if err != nil {
		return nil, fmt.Errorf("reveal identity: %w", err)
	}
	if order.Status != model.StatusFinalized || order.ChosenPrinterID == "" {
		return nil, fmt.Errorf("reveal identity for order %s before selection: %w", orderID, model.ErrInvalidState)
	}
	identity, err := r.identities.GetIdentity(ctx, order.ChosenPrinterID)
	if err != nil {
		return nil, fmt.Errorf("reveal identity: %w", err)
	}
	return identity, nil
}
