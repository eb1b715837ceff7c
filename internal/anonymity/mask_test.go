package anonymity_test

import (
	"context"
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/printhub/printhub/internal/anonymity"
	"github.com/printhub/printhub/internal/model"
	"github.com/printhub/printhub/internal/rank"
)

func TestPseudonym(t *testing.T) {
	assert.Equal(t, "Printer A1", anonymity.Pseudonym(0))
	assert.Equal(t, "Printer B1", anonymity.Pseudonym(1))
	assert.Equal(t, "Printer Z1", anonymity.Pseudonym(25))
	assert.Equal(t, "Printer A2", anonymity.Pseudonym(26))
}

func TestStripHouseNumber(t *testing.T) {
	tests := []struct {
		in, want string
	}{
		{"Av. Paulista, 1578", "Av. Paulista"},
		{"Rua Augusta 123 ap 4", "Rua Augusta"},
		{"Main Street", "Main Street"},
		{"", ""},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, anonymity.StripHouseNumber(tt.in))
	}
}

func TestMask_HidesIdentity(t *testing.T) {
	identity := &model.PrinterIdentity{
		PrinterID:    "p1",
		CompanyName:  "Acme Prints Ltd",
		Street:       "Industrial Road, 42",
		Neighborhood: "Dockside",
		City:         "Rotterdam",
		Phone:        "+31-10-555-0100",
		Email:        "sales@acmeprints.example",
	}
	rp := rank.RankedProposal{
		Proposal: model.Proposal{ID: "acc-1", PrinterID: "p1", PriceTotal: 120},
		Position: 0,
		Score:    0.7,
	}

	pub := anonymity.Mask(rp, identity, 0)

	assert.Equal(t, "acc-1", pub.ProposalID)
	assert.Equal(t, "Printer A1", pub.Pseudonym)
	assert.Equal(t, "Industrial Road", pub.Street)
	assert.Equal(t, "Dockside", pub.Neighborhood)
	assert.Equal(t, "Rotterdam", pub.City)

	// Nothing in the serialized view may leak the printer.
	raw, err := json.Marshal(pub)
	require.NoError(t, err)
	assert.NotContains(t, string(raw), "p1")
	assert.NotContains(t, string(raw), "Acme")
	assert.NotContains(t, string(raw), "555-0100")
	assert.NotContains(t, string(raw), "acmeprints")
	assert.NotContains(t, string(raw), "42")
}

func TestMask_NilIdentity(t *testing.T) {
	rp := rank.RankedProposal{Proposal: model.Proposal{ID: "acc-1", PrinterID: "p1"}}
	pub := anonymity.Mask(rp, nil, 3)
	assert.Equal(t, "Printer D1", pub.Pseudonym)
	assert.Empty(t, pub.Street)
	assert.Empty(t, pub.City)
}

type stubOrders struct {
	order *model.Order
	err   error
}

func (s stubOrders) GetOrder(context.Context, string) (*model.Order, error) {
	return s.order, s.err
}

type stubIdentities struct {
	identity *model.PrinterIdentity
}

func (s stubIdentities) GetIdentity(context.Context, string) (*model.PrinterIdentity, error) {
	if s.identity == nil {
		return nil, model.ErrNotFound
	}
	return s.identity, nil
}

func TestRevealer_BeforeSelectionFails(t *testing.T) {
	r := anonymity.NewRevealer(
		stubOrders{order: &model.Order{ID: "o1", Status: model.StatusAccepted}},
		stubIdentities{identity: &model.PrinterIdentity{PrinterID: "p1"}},
	)

	_, err := r.Reveal(context.Background(), "o1")
	require.Error(t, err)
	assert.ErrorIs(t, err, model.ErrInvalidState)
}

func TestRevealer_AfterFinalization(t *testing.T) {
	identity := &model.PrinterIdentity{PrinterID: "p1", CompanyName: "Acme Prints Ltd"}
	r := anonymity.NewRevealer(
		stubOrders{order: &model.Order{ID: "o1", Status: model.StatusFinalized, ChosenPrinterID: "p1"}},
		stubIdentities{identity: identity},
	)

	got, err := r.Reveal(context.Background(), "o1")
	require.NoError(t, err)
	assert.Equal(t, identity, got)
}

func TestRevealer_UnknownOrder(t *testing.T) {
	r := anonymity.NewRevealer(stubOrders{err: model.ErrNotFound}, stubIdentities{})
	_, err := r.Reveal(context.Background(), "ghost")
	assert.ErrorIs(t, err, model.ErrNotFound)
}
