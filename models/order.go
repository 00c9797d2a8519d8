package models

import "time"

type PaymentMethod string

const (
	PaymentMethodCard PaymentMethod = "card"
	PaymentMethodUPI  PaymentMethod = "upi"
	PaymentMethodCOD  PaymentMethod = "cod"
)

// Order is an ephemeral snapshot of cart contents and totals captured at
// checkout submission time. It is held only in the read-once confirmation
// channel and is not durably stored beyond that.
type Order struct {
	OrderID       string        `json:"order_id"`
	Items         []LineItem    `json:"items"`
	Subtotal      float64       `json:"subtotal"`
	ShippingCost  float64       `json:"shipping_cost"`
	Total         float64       `json:"total"`
	Email         string        `json:"email"`
	FirstName     string        `json:"first_name"`
	LastName      string        `json:"last_name"`
	Address       string        `json:"address"`
	City          string        `json:"city"`
	State         string        `json:"state"`
	Zip           string        `json:"zip"`
	PaymentMethod PaymentMethod `json:"payment_method"`
	PlacedAt      time.Time     `json:"placed_at"`
}
