package checkoutControllers

import (
	"net/http"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/rajeev06code/thekua/cartstore"
	"github.com/rajeev06code/thekua/models"
)

// Shipping is free above this subtotal, otherwise a flat fee applies.
const (
	freeShippingThreshold = 500.0
	flatShippingFee       = 50.0
)

type CheckoutInput struct {
	Email         string `json:"email" binding:"required,email"`
	FirstName     string `json:"first_name" binding:"required"`
	LastName      string `json:"last_name" binding:"required"`
	Address       string `json:"address" binding:"required"`
	City          string `json:"city" binding:"required"`
	State         string `json:"state" binding:"required"`
	Zip           string `json:"zip" binding:"required"`
	PaymentMethod string `json:"payment_method" binding:"required,oneof=card upi cod"`
	SaveInfo      bool   `json:"save_info"`
}

// ShippingCost applies the threshold rule to a cart subtotal.
func ShippingCost(subtotal float64) float64 {
	if subtotal > freeShippingThreshold {
		return 0
	}
	return flatShippingFee
}

// Generate unique order reference, e.g. TD-9F2C41A7
func generateOrderRef() string {
	return "TD-" + strings.ToUpper(uuid.NewString()[:8])
}

// POST /checkout
// Validation is all-or-nothing: no order is created and the cart is left
// untouched unless every field binds. The order snapshot is captured and
// stored before the cart is cleared; clearing first would lose the items the
// confirmation needs to summarize.
func PlaceOrder(carts *cartstore.Manager, vault *OrderVault) gin.HandlerFunc {
	return func(c *gin.Context) {
		sessionID := c.GetString("session_id")
		if sessionID == "" {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
			return
		}

		var input CheckoutInput
		if err := c.ShouldBindJSON(&input); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid input: " + err.Error()})
			return
		}

		store := carts.Session(sessionID)
		items := store.Items()
		if len(items) == 0 {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Cart is empty"})
			return
		}

		subtotal := store.CartTotal()
		shipping := ShippingCost(subtotal)

		order := models.Order{
			OrderID:       generateOrderRef(),
			Items:         items,
			Subtotal:      subtotal,
			ShippingCost:  shipping,
			Total:         subtotal + shipping,
			Email:         input.Email,
			FirstName:     input.FirstName,
			LastName:      input.LastName,
			Address:       input.Address,
			City:          input.City,
			State:         input.State,
			Zip:           input.Zip,
			PaymentMethod: models.PaymentMethod(input.PaymentMethod),
			PlacedAt:      time.Now(),
		}

		if err := vault.Put(sessionID, order); err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to place order"})
			return
		}

		if err := store.Clear(); err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to clear cart"})
			return
		}

		c.JSON(http.StatusCreated, order)
	}
}

// GET /order-confirmation/:order_id
// Read-once: the stored snapshot is removed as it is returned.
func GetOrderConfirmation(vault *OrderVault) gin.HandlerFunc {
	return func(c *gin.Context) {
		sessionID := c.GetString("session_id")
		if sessionID == "" {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
			return
		}

		order, found, err := vault.Take(sessionID)
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch order"})
			return
		}
		if !found || order.OrderID != c.Param("order_id") {
			c.JSON(http.StatusNotFound, gin.H{"error": "Order not found"})
			return
		}

		c.JSON(http.StatusOK, order)
	}
}
