package match_test

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/printhub/printhub/internal/inbox"
	"github.com/printhub/printhub/internal/match"
	"github.com/printhub/printhub/internal/model"
)

type stubCatalog struct {
	materials map[string]*model.MaterialEntry
}

func (s stubCatalog) Material(_ context.Context, id string) (*model.MaterialEntry, error) {
	m, ok := s.materials[id]
	if !ok {
		return nil, model.ErrNotFound
	}
	return m, nil
}

type stubRegistry struct {
	caps []model.PrinterCapability
	err  error
}

func (s stubRegistry) ListCapabilities(context.Context) ([]model.PrinterCapability, error) {
	return s.caps, s.err
}

// flakyInbox fails delivery for one printer to exercise fault isolation.
type flakyInbox struct {
	*inbox.MemoryInbox
	failFor string
}

func (f *flakyInbox) Add(ctx context.Context, printerID, orderID string) error {
	if printerID == f.failFor {
		return errors.New("connection refused")
	}
	return f.MemoryInbox.Add(ctx, printerID, orderID)
}

func uvMaterial() *model.MaterialEntry {
	return &model.MaterialEntry{
		ID:                     "m1",
		CompatibleTechnologies: []string{"UV", "Latex"},
	}
}

func TestEligible(t *testing.T) {
	material := uvMaterial()

	tests := []struct {
		name string
		capability model.PrinterCapability
		want bool
	}{
		{
			name: "opted in with matching technology",
			capability: model.PrinterCapability{
				PrinterID:            "p1",
				Technologies:         []string{"UV"},
				ActiveMaterialIDs:    []string{"m1"},
				ReceiveOrdersEnabled: true,
			},
			want: true,
		},
		{
			name: "opted out",
			capability: model.PrinterCapability{
				PrinterID:            "p1",
				Technologies:         []string{"UV"},
				ActiveMaterialIDs:    []string{"m1"},
				ReceiveOrdersEnabled: false,
			},
			want: false,
		},
		{
			name: "no active materials",
			capability: model.PrinterCapability{
				PrinterID:            "p1",
				Technologies:         []string{"UV"},
				ActiveMaterialIDs:    nil,
				ReceiveOrdersEnabled: true,
			},
			want: false,
		},
		{
			name: "no technology overlap",
			capability: model.PrinterCapability{
				PrinterID:            "p1",
				Technologies:         []string{"Offset"},
				ActiveMaterialIDs:    []string{"m2"},
				ReceiveOrdersEnabled: true,
			},
			want: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, match.Eligible(tt.capability, material))
		})
	}
}

func newOrder(id, materialID string) *model.Order {
	return &model.Order{ID: id, BuyerID: "buyer-1", MaterialID: materialID, Quantity: 10, Status: model.StatusPending}
}

func registryOf(ids ...string) stubRegistry {
	caps := make([]model.PrinterCapability, len(ids))
	for i, id := range ids {
		caps[i] = model.PrinterCapability{
			PrinterID:            id,
			Technologies:         []string{"UV"},
			ActiveMaterialIDs:    []string{"m1"},
			ReceiveOrdersEnabled: true,
		}
	}
	return stubRegistry{caps: caps}
}

func TestDistribute_FanOut(t *testing.T) {
	ctx := context.Background()
	box := inbox.NewMemoryInbox()
	catalog := stubCatalog{materials: map[string]*model.MaterialEntry{"m1": uvMaterial()}}

	registry := registryOf("p1", "p2")
	registry.caps = append(registry.caps, model.PrinterCapability{
		PrinterID:            "p3",
		Technologies:         []string{"Offset"},
		ActiveMaterialIDs:    []string{"m9"},
		ReceiveOrdersEnabled: true,
	})

	d := match.NewDistributor(catalog, registry, box, zap.NewNop())

	candidates, degraded := d.Distribute(ctx, newOrder("o1", "m1"))
	assert.Empty(t, degraded)
	assert.ElementsMatch(t, []string{"p1", "p2"}, candidates)

	for _, printerID := range []string{"p1", "p2"} {
		pending, err := box.List(ctx, printerID)
		require.NoError(t, err)
		assert.Equal(t, []string{"o1"}, pending)
	}
	pending, err := box.List(ctx, "p3")
	require.NoError(t, err)
	assert.Empty(t, pending)
}

func TestDistribute_UnknownMaterialIsNoOp(t *testing.T) {
	box := inbox.NewMemoryInbox()
	d := match.NewDistributor(
		stubCatalog{materials: map[string]*model.MaterialEntry{}},
		registryOf("p1"),
		box,
		zap.NewNop(),
	)

	candidates, degraded := d.Distribute(context.Background(), newOrder("o1", "ghost"))
	assert.Empty(t, candidates)
	assert.Empty(t, degraded)

	pending, err := box.List(context.Background(), "p1")
	require.NoError(t, err)
	assert.Empty(t, pending)
}

func TestDistribute_Idempotent(t *testing.T) {
	ctx := context.Background()
	box := inbox.NewMemoryInbox()
	d := match.NewDistributor(
		stubCatalog{materials: map[string]*model.MaterialEntry{"m1": uvMaterial()}},
		registryOf("p1"),
		box,
		zap.NewNop(),
	)

	order := newOrder("o1", "m1")
	d.Distribute(ctx, order)
	d.Distribute(ctx, order)

	pending, err := box.List(ctx, "p1")
	require.NoError(t, err)
	assert.Equal(t, []string{"o1"}, pending, "retried distribution must not duplicate delivery")
}

func TestDistribute_IsolatesPerPrinterFaults(t *testing.T) {
	ctx := context.Background()
	box := &flakyInbox{MemoryInbox: inbox.NewMemoryInbox(), failFor: "p2"}
	d := match.NewDistributor(
		stubCatalog{materials: map[string]*model.MaterialEntry{"m1": uvMaterial()}},
		registryOf("p1", "p2", "p3"),
		box,
		zap.NewNop(),
	)

	candidates, degraded := d.Distribute(ctx, newOrder("o1", "m1"))
	assert.ElementsMatch(t, []string{"p1", "p2", "p3"}, candidates)

	require.Len(t, degraded, 1)
	var derr *model.DegradedMatchError
	require.ErrorAs(t, degraded[0], &derr)
	assert.Equal(t, "p2", derr.PrinterID)

	// The healthy printers still got the order.
	for _, printerID := range []string{"p1", "p3"} {
		pending, err := box.List(ctx, printerID)
		require.NoError(t, err)
		assert.Equal(t, []string{"o1"}, pending)
	}
}
