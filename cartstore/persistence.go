package cartstore

import (
	"encoding/json"
	"log"

	"go.etcd.io/bbolt"

	"github.com/rajeev06code/thekua/models"
)

// Persister mirrors a cart to a durable key-value medium. Saving an empty
// collection removes the entry entirely; an absent entry is equivalent to an
// empty cart.
type Persister interface {
	Save(sessionID string, items []models.LineItem) error
	Load(sessionID string) ([]models.LineItem, error)
	Delete(sessionID string) error
}

const cartBucket = "carts"

// BoltPersister stores one JSON-serialized line-item array per session key in
// an embedded bbolt bucket.
type BoltPersister struct {
	db *bbolt.DB
}

func NewBoltPersister(db *bbolt.DB) (*BoltPersister, error) {
	err := db.Update(func(tx *bbolt.Tx) error {
		_, err := tx.CreateBucketIfNotExists([]byte(cartBucket))
		return err
	})
	if err != nil {
		return nil, err
	}
	return &BoltPersister{db: db}, nil
}

func (p *BoltPersister) Save(sessionID string, items []models.LineItem) error {
	return p.db.Update(func(tx *bbolt.Tx) error {
		bucket := tx.Bucket([]byte(cartBucket))
		if len(items) == 0 {
			return bucket.Delete([]byte(sessionID))
		}
		data, err := json.Marshal(items)
		if err != nil {
			return err
		}
		return bucket.Put([]byte(sessionID), data)
	})
}

// Load returns the persisted cart for a session. A missing entry yields an
// empty cart. A value that fails to parse or violates cart invariants is
// discarded and the entry deleted; user data loss here is preferable to a
// broken session, so corruption is never surfaced as an error.
func (p *BoltPersister) Load(sessionID string) ([]models.LineItem, error) {
	var items []models.LineItem
	corrupt := false
	err := p.db.View(func(tx *bbolt.Tx) error {
		data := tx.Bucket([]byte(cartBucket)).Get([]byte(sessionID))
		if data == nil {
			return nil
		}
		if err := json.Unmarshal(data, &items); err != nil || !validCart(items) {
			log.Printf("discarding corrupt cart for session %s", sessionID)
			items = nil
			corrupt = true
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	if corrupt {
		if err := p.Delete(sessionID); err != nil {
			return nil, err
		}
	}
	return items, nil
}

func (p *BoltPersister) Delete(sessionID string) error {
	return p.db.Update(func(tx *bbolt.Tx) error {
		return tx.Bucket([]byte(cartBucket)).Delete([]byte(sessionID))
	})
}

func validCart(items []models.LineItem) bool {
	seen := make(map[models.LineItemKey]struct{}, len(items))
	for _, item := range items {
		if item.Quantity < 1 || item.ProductID == "" {
			return false
		}
		if _, dup := seen[item.Key()]; dup {
			return false
		}
		seen[item.Key()] = struct{}{}
	}
	return true
}
