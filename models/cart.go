package models

// LineItem represents one purchasable configuration of a product in the cart.
// Name, UnitPrice and Image are a snapshot of the product taken when the item
// was first added; they are not re-synced if the catalog changes later.
type LineItem struct {
	ProductID string       `json:"product_id"`
	Name      string       `json:"name"`
	UnitPrice float64      `json:"unit_price"`
	PackSize  string       `json:"pack_size"`
	Quantity  int          `json:"quantity"`
	Image     ProductImage `json:"image"`
}

// LineItemKey identifies a line item within a cart. Identity depends on exact
// string equality of PackSize, including case and whitespace.
type LineItemKey struct {
	ProductID string
	PackSize  string
}

func (li LineItem) Key() LineItemKey {
	return LineItemKey{ProductID: li.ProductID, PackSize: li.PackSize}
}
