package cartstore

import (
	"sync"

	"github.com/rajeev06code/thekua/models"
)

// Summary is the aggregate view consumed by badge and modal surfaces.
type Summary struct {
	TotalItems int     `json:"total_items"`
	CartTotal  float64 `json:"cart_total"`
}

// Store owns the canonical line-item list for one session. All mutations go
// through the four operations below; after every successful mutation the full
// collection is written to the persister under the session key.
//
// Invariants held at all times:
//   - no two line items share the same (product_id, pack_size) key
//   - every line item has quantity >= 1
type Store struct {
	mu        sync.Mutex
	sessionID string
	items     []models.LineItem
	persister Persister
	watchers  map[chan Summary]struct{}
}

func newStore(sessionID string, items []models.LineItem, p Persister) *Store {
	return &Store{
		sessionID: sessionID,
		items:     items,
		persister: p,
		watchers:  make(map[chan Summary]struct{}),
	}
}

// AddItem merges the request into the cart. If a line item with the same
// (product_id, pack_size) key already exists its quantity is incremented and
// the existing name/price snapshot is left untouched; otherwise the item is
// appended. A non-positive requested quantity is clamped to 1.
func (s *Store) AddItem(item models.LineItem) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if item.Quantity < 1 {
		item.Quantity = 1
	}

	merged := false
	for i := range s.items {
		if s.items[i].Key() == item.Key() {
			s.items[i].Quantity += item.Quantity
			merged = true
			break
		}
	}
	if !merged {
		s.items = append(s.items, item)
	}

	return s.persist()
}

// UpdateQuantity sets the quantity of the matching line item. A quantity <= 0
// removes the item instead; a persisted quantity never reaches zero. Missing
// items are a no-op.
func (s *Store) UpdateQuantity(productID, packSize string, quantity int) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	key := models.LineItemKey{ProductID: productID, PackSize: packSize}
	if quantity <= 0 {
		if !s.remove(key) {
			return nil
		}
		return s.persist()
	}

	for i := range s.items {
		if s.items[i].Key() == key {
			s.items[i].Quantity = quantity
			return s.persist()
		}
	}
	return nil
}

// RemoveItem deletes the matching line item. The returned bool reports
// whether an item was actually removed.
func (s *Store) RemoveItem(productID, packSize string) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if !s.remove(models.LineItemKey{ProductID: productID, PackSize: packSize}) {
		return false, nil
	}
	return true, s.persist()
}

// Clear empties the cart unconditionally and removes the storage entry.
func (s *Store) Clear() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.items = nil
	return s.persist()
}

// Items returns a copy of the line items in insertion order.
func (s *Store) Items() []models.LineItem {
	s.mu.Lock()
	defer s.mu.Unlock()

	out := make([]models.LineItem, len(s.items))
	copy(out, s.items)
	return out
}

// TotalItems is the sum of quantities across all line items.
func (s *Store) TotalItems() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return totalItems(s.items)
}

// CartTotal is the sum of unit price times quantity across all line items.
// Rounding to two decimals happens only at presentation time.
func (s *Store) CartTotal() float64 {
	s.mu.Lock()
	defer s.mu.Unlock()
	return cartTotal(s.items)
}

func (s *Store) Summary() Summary {
	s.mu.Lock()
	defer s.mu.Unlock()
	return Summary{TotalItems: totalItems(s.items), CartTotal: cartTotal(s.items)}
}

// Watch registers a channel that receives an aggregate summary after every
// mutation. Slow consumers miss updates rather than blocking mutations.
func (s *Store) Watch() (<-chan Summary, func()) {
	s.mu.Lock()
	defer s.mu.Unlock()

	ch := make(chan Summary, 8)
	s.watchers[ch] = struct{}{}
	cancel := func() {
		s.mu.Lock()
		defer s.mu.Unlock()
		delete(s.watchers, ch)
	}
	return ch, cancel
}

// remove and persist require s.mu to be held.

func (s *Store) remove(key models.LineItemKey) bool {
	for i := range s.items {
		if s.items[i].Key() == key {
			s.items = append(s.items[:i], s.items[i+1:]...)
			return true
		}
	}
	return false
}

func (s *Store) persist() error {
	if err := s.persister.Save(s.sessionID, s.items); err != nil {
		return err
	}
	summary := Summary{TotalItems: totalItems(s.items), CartTotal: cartTotal(s.items)}
	for ch := range s.watchers {
		select {
		case ch <- summary:
		default:
		}
	}
	return nil
}

func totalItems(items []models.LineItem) int {
	total := 0
	for _, item := range items {
		total += item.Quantity
	}
	return total
}

func cartTotal(items []models.LineItem) float64 {
	total := 0.0
	for _, item := range items {
		total += item.UnitPrice * float64(item.Quantity)
	}
	return total
}
