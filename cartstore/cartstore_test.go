package cartstore

import (
	"errors"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rajeev06code/thekua/models"
)

type mockPersister struct {
	mu    sync.Mutex
	carts map[string][]models.LineItem
	err   error
	saves int
}

func newMockPersister() *mockPersister {
	return &mockPersister{carts: make(map[string][]models.LineItem)}
}

func (m *mockPersister) Save(sessionID string, items []models.LineItem) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.err != nil {
		return m.err
	}
	m.saves++
	if len(items) == 0 {
		delete(m.carts, sessionID)
		return nil
	}
	stored := make([]models.LineItem, len(items))
	copy(stored, items)
	m.carts[sessionID] = stored
	return nil
}

func (m *mockPersister) Load(sessionID string) ([]models.LineItem, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.err != nil {
		return nil, m.err
	}
	return m.carts[sessionID], nil
}

func (m *mockPersister) Delete(sessionID string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	delete(m.carts, sessionID)
	return nil
}

func (m *mockPersister) stored(sessionID string) ([]models.LineItem, bool) {
	m.mu.Lock()
	defer m.mu.Unlock()
	items, ok := m.carts[sessionID]
	return items, ok
}

func item(productID, packSize string, qty int, price float64) models.LineItem {
	return models.LineItem{
		ProductID: productID,
		Name:      "Product " + productID,
		UnitPrice: price,
		PackSize:  packSize,
		Quantity:  qty,
	}
}

func newTestStore(t *testing.T) (*Store, *mockPersister) {
	t.Helper()
	persister := newMockPersister()
	return NewManager(persister).Session("sess_test"), persister
}

func TestAddItemMergesSameKey(t *testing.T) {
	store, _ := newTestStore(t)

	require.NoError(t, store.AddItem(item("A", "250g", 2, 100)))

	// Same key, different display snapshot: quantity accumulates, the
	// first-written name and price win.
	later := item("A", "250g", 3, 120)
	later.Name = "Renamed Product"
	require.NoError(t, store.AddItem(later))

	items := store.Items()
	require.Len(t, items, 1)
	assert.Equal(t, 5, items[0].Quantity)
	assert.Equal(t, "Product A", items[0].Name)
	assert.Equal(t, 100.0, items[0].UnitPrice)
}

func TestAddItemDistinctPackSizes(t *testing.T) {
	store, _ := newTestStore(t)

	require.NoError(t, store.AddItem(item("A", "250g", 1, 100)))
	require.NoError(t, store.AddItem(item("A", "500g", 1, 180)))

	assert.Len(t, store.Items(), 2)
}

func TestAddItemClampsNonPositiveQuantity(t *testing.T) {
	store, _ := newTestStore(t)

	require.NoError(t, store.AddItem(item("A", "250g", 0, 100)))
	require.NoError(t, store.AddItem(item("B", "250g", -3, 100)))

	for _, li := range store.Items() {
		assert.Equal(t, 1, li.Quantity)
	}
}

func TestUpdateQuantityFloor(t *testing.T) {
	for _, qty := range []int{0, -1, -100} {
		store, _ := newTestStore(t)
		require.NoError(t, store.AddItem(item("A", "250g", 2, 100)))

		require.NoError(t, store.UpdateQuantity("A", "250g", qty))

		assert.Empty(t, store.Items(), "quantity %d must remove the item", qty)
	}
}

func TestUpdateQuantitySetsValue(t *testing.T) {
	store, _ := newTestStore(t)
	require.NoError(t, store.AddItem(item("A", "250g", 2, 100)))

	require.NoError(t, store.UpdateQuantity("A", "250g", 7))

	items := store.Items()
	require.Len(t, items, 1)
	assert.Equal(t, 7, items[0].Quantity)
}

func TestUpdateQuantityMissingItemIsNoOp(t *testing.T) {
	store, persister := newTestStore(t)
	require.NoError(t, store.AddItem(item("A", "250g", 2, 100)))
	savesBefore := persister.saves

	require.NoError(t, store.UpdateQuantity("B", "500g", 3))

	assert.Len(t, store.Items(), 1)
	assert.Equal(t, savesBefore, persister.saves, "no-op must not rewrite storage")
}

func TestRemoveItem(t *testing.T) {
	store, _ := newTestStore(t)
	require.NoError(t, store.AddItem(item("A", "250g", 2, 100)))

	removed, err := store.RemoveItem("A", "250g")
	require.NoError(t, err)
	assert.True(t, removed)
	assert.Empty(t, store.Items())

	removed, err = store.RemoveItem("A", "250g")
	require.NoError(t, err)
	assert.False(t, removed)
}

func TestClearIsIdempotent(t *testing.T) {
	store, persister := newTestStore(t)
	require.NoError(t, store.AddItem(item("A", "250g", 2, 100)))

	require.NoError(t, store.Clear())
	require.NoError(t, store.Clear())

	assert.Empty(t, store.Items())
	_, ok := persister.stored("sess_test")
	assert.False(t, ok, "storage entry must be absent after clear")
}

func TestTotalsOnEmptyCart(t *testing.T) {
	store, _ := newTestStore(t)

	assert.Equal(t, 0, store.TotalItems())
	assert.Equal(t, 0.0, store.CartTotal())
}

func TestTotalConsistency(t *testing.T) {
	store, _ := newTestStore(t)
	require.NoError(t, store.AddItem(item("A", "250g", 2, 100)))
	require.NoError(t, store.AddItem(item("A", "500g", 1, 180)))
	require.NoError(t, store.AddItem(item("B", "250g", 4, 50.5)))

	wantItems, wantTotal := 0, 0.0
	for _, li := range store.Items() {
		wantItems += li.Quantity
		wantTotal += li.UnitPrice * float64(li.Quantity)
	}

	assert.Equal(t, wantItems, store.TotalItems())
	assert.Equal(t, wantTotal, store.CartTotal())
}

func TestAddUpdateClearScenario(t *testing.T) {
	store, persister := newTestStore(t)

	require.NoError(t, store.AddItem(item("A", "250g", 2, 100)))
	assert.Equal(t, 2, store.TotalItems())
	assert.Equal(t, 200.0, store.CartTotal())

	require.NoError(t, store.AddItem(item("A", "250g", 1, 100)))
	items := store.Items()
	require.Len(t, items, 1)
	assert.Equal(t, 3, items[0].Quantity)
	assert.Equal(t, 300.0, store.CartTotal())

	require.NoError(t, store.AddItem(item("A", "500g", 1, 180)))
	assert.Len(t, store.Items(), 2)
	assert.Equal(t, 4, store.TotalItems())
	assert.Equal(t, 480.0, store.CartTotal())

	require.NoError(t, store.UpdateQuantity("A", "250g", 0))
	assert.Equal(t, 1, store.TotalItems())
	assert.Equal(t, 180.0, store.CartTotal())

	require.NoError(t, store.Clear())
	assert.Equal(t, 0, store.TotalItems())
	assert.Equal(t, 0.0, store.CartTotal())
	_, ok := persister.stored("sess_test")
	assert.False(t, ok)
}

func TestMutationsPersistEveryTime(t *testing.T) {
	store, persister := newTestStore(t)

	require.NoError(t, store.AddItem(item("A", "250g", 2, 100)))
	stored, ok := persister.stored("sess_test")
	require.True(t, ok)
	assert.Equal(t, store.Items(), stored)

	require.NoError(t, store.UpdateQuantity("A", "250g", 5))
	stored, _ = persister.stored("sess_test")
	assert.Equal(t, 5, stored[0].Quantity)
}

func TestAddItemSurfacesPersistError(t *testing.T) {
	persister := newMockPersister()
	store := NewManager(persister).Session("sess_test")
	persister.err = errors.New("disk full")

	assert.Error(t, store.AddItem(item("A", "250g", 1, 100)))
}

func TestWatchReceivesSummaries(t *testing.T) {
	store, _ := newTestStore(t)
	updates, cancel := store.Watch()
	defer cancel()

	require.NoError(t, store.AddItem(item("A", "250g", 2, 100)))

	summary := <-updates
	assert.Equal(t, Summary{TotalItems: 2, CartTotal: 200}, summary)
}

func TestManagerSharesStorePerSession(t *testing.T) {
	manager := NewManager(newMockPersister())

	first := manager.Session("sess_1")
	second := manager.Session("sess_1")
	other := manager.Session("sess_2")

	assert.Same(t, first, second)
	assert.NotSame(t, first, other)

	// A mutation through one handle is visible through the other.
	require.NoError(t, first.AddItem(item("A", "250g", 1, 100)))
	assert.Equal(t, 1, second.TotalItems())
	assert.Equal(t, 0, other.TotalItems())
}

func TestManagerRehydratesFromPersister(t *testing.T) {
	persister := newMockPersister()
	require.NoError(t, persister.Save("sess_1", []models.LineItem{item("A", "250g", 2, 100)}))

	store := NewManager(persister).Session("sess_1")

	assert.Equal(t, 2, store.TotalItems())
	assert.Equal(t, 200.0, store.CartTotal())
}
