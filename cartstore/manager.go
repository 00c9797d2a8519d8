package cartstore

import "sync"

// Manager hands out exactly one Store per session so that every consumer of a
// session (cart page, cart modal, checkout flow, badge icon) observes the same
// shared state. The first access for a session rehydrates the cart from the
// persister.
type Manager struct {
	mu        sync.Mutex
	persister Persister
	stores    map[string]*Store
}

func NewManager(p Persister) *Manager {
	return &Manager{
		persister: p,
		stores:    make(map[string]*Store),
	}
}

// Session returns the shared cart store for the given session ID.
func (m *Manager) Session(sessionID string) *Store {
	m.mu.Lock()
	defer m.mu.Unlock()

	if store, ok := m.stores[sessionID]; ok {
		return store
	}

	items, err := m.persister.Load(sessionID)
	if err != nil {
		// Fail safe, not fatal: start the session with an empty cart.
		items = nil
	}
	store := newStore(sessionID, items, m.persister)
	m.stores[sessionID] = store
	return store
}
