package inbox

import (
	"context"
	"sort"
	"sync"
)

// MemoryInbox is the in-process fallback used in tests and single-node
// local runs. Same set semantics as the redis implementation.
type MemoryInbox struct {
	mu    sync.RWMutex
	boxes map[string]map[string]struct{}
}

func NewMemoryInbox() *MemoryInbox {
	return &MemoryInbox{boxes: make(map[string]map[string]struct{})}
}

func (m *MemoryInbox) Add(_ context.Context, printerID, orderID string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	box, ok := m.boxes[printerID]
	if !ok {
		box = make(map[string]struct{})
		m.boxes[printerID] = box
	}
	box[orderID] = struct{}{}
	return nil
}

func (m *MemoryInbox) Remove(_ context.Context, printerID, orderID string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	delete(m.boxes[printerID], orderID)
	return nil
}

func (m *MemoryInbox) List(_ context.Context, printerID string) ([]string, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	ids := make([]string, 0, len(m.boxes[printerID]))
	for id := range m.boxes[printerID] {
		ids = append(ids, id)
	}
	sort.Strings(ids)
	return ids, nil
}
