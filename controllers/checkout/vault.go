package checkoutControllers

import (
	"encoding/json"

	"go.etcd.io/bbolt"

	"github.com/rajeev06code/thekua/models"
)

const orderBucket = "orders"

// OrderVault is the hand-off channel between checkout submission and the
// confirmation surface. One pending order per session; reading it removes it,
// so a confirmation is shown at most once and nothing outlives the session's
// immediate browsing flow.
type OrderVault struct {
	db *bbolt.DB
}

func NewOrderVault(db *bbolt.DB) (*OrderVault, error) {
	err := db.Update(func(tx *bbolt.Tx) error {
		_, err := tx.CreateBucketIfNotExists([]byte(orderBucket))
		return err
	})
	if err != nil {
		return nil, err
	}
	return &OrderVault{db: db}, nil
}

func (v *OrderVault) Put(sessionID string, order models.Order) error {
	data, err := json.Marshal(order)
	if err != nil {
		return err
	}
	return v.db.Update(func(tx *bbolt.Tx) error {
		return tx.Bucket([]byte(orderBucket)).Put([]byte(sessionID), data)
	})
}

// Take returns and removes the pending order for a session. A stored value
// that no longer parses is discarded as if absent.
func (v *OrderVault) Take(sessionID string) (models.Order, bool, error) {
	var order models.Order
	found := false
	err := v.db.Update(func(tx *bbolt.Tx) error {
		bucket := tx.Bucket([]byte(orderBucket))
		data := bucket.Get([]byte(sessionID))
		if data == nil {
			return nil
		}
		if err := json.Unmarshal(data, &order); err == nil {
			found = true
		}
		return bucket.Delete([]byte(sessionID))
	})
	if err != nil {
		return models.Order{}, false, err
	}
	return order, found, nil
}
