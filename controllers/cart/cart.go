package cartControllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/rajeev06code/thekua/cartstore"
	"github.com/rajeev06code/thekua/catalog"
	"github.com/rajeev06code/thekua/models"
)

type AddItemInput struct {
	ProductID string `json:"product_id" binding:"required"`
	PackSize  string `json:"pack_size" binding:"required"`
	Quantity  int    `json:"quantity" binding:"required,min=1"`
}

type UpdateQuantityInput struct {
	ProductID string `json:"product_id" binding:"required"`
	PackSize  string `json:"pack_size" binding:"required"`
	Quantity  *int   `json:"quantity" binding:"required"`
}

func sessionStore(c *gin.Context, carts *cartstore.Manager) (*cartstore.Store, bool) {
	sessionID := c.GetString("session_id")
	if sessionID == "" {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return nil, false
	}
	return carts.Session(sessionID), true
}

// GET /cart
func GetCart(carts *cartstore.Manager) gin.HandlerFunc {
	return func(c *gin.Context) {
		store, ok := sessionStore(c, carts)
		if !ok {
			return
		}

		items := store.Items()
		if items == nil {
			items = []models.LineItem{}
		}
		summary := store.Summary()
		c.JSON(http.StatusOK, gin.H{
			"items":       items,
			"total_items": summary.TotalItems,
			"cart_total":  summary.CartTotal,
		})
	}
}

// POST /cart
func AddCartItem(carts *cartstore.Manager, products *catalog.Catalog) gin.HandlerFunc {
	return func(c *gin.Context) {
		store, ok := sessionStore(c, carts)
		if !ok {
			return
		}

		var input AddItemInput
		if err := c.ShouldBindJSON(&input); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid input: " + err.Error()})
			return
		}

		product, found := products.ByID(input.ProductID)
		if !found {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Product does not exist"})
			return
		}
		if !hasPackSize(product, input.PackSize) {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Pack size not offered for this product"})
			return
		}

		item := models.LineItem{
			ProductID: product.ID,
			Name:      product.Name,
			UnitPrice: product.Price,
			PackSize:  input.PackSize,
			Quantity:  input.Quantity,
		}
		if len(product.Images) > 0 {
			item.Image = product.Images[0]
		}

		if err := store.AddItem(item); err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to add item to cart"})
			return
		}

		c.JSON(http.StatusCreated, gin.H{"items": store.Items()})
	}
}

// PUT /cart
func UpdateCartItem(carts *cartstore.Manager) gin.HandlerFunc {
	return func(c *gin.Context) {
		store, ok := sessionStore(c, carts)
		if !ok {
			return
		}

		var input UpdateQuantityInput
		if err := c.ShouldBindJSON(&input); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid input: " + err.Error()})
			return
		}

		if err := store.UpdateQuantity(input.ProductID, input.PackSize, *input.Quantity); err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update cart item"})
			return
		}

		c.JSON(http.StatusOK, gin.H{"items": store.Items()})
	}
}

// DELETE /cart/:product_id
func DeleteCartItem(carts *cartstore.Manager) gin.HandlerFunc {
	return func(c *gin.Context) {
		store, ok := sessionStore(c, carts)
		if !ok {
			return
		}

		productID := c.Param("product_id")
		packSize := c.Query("pack_size")
		if packSize == "" {
			c.JSON(http.StatusBadRequest, gin.H{"error": "pack_size is required"})
			return
		}

		removed, err := store.RemoveItem(productID, packSize)
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete item"})
			return
		}
		if !removed {
			c.JSON(http.StatusNotFound, gin.H{"error": "Cart item not found"})
			return
		}

		c.JSON(http.StatusOK, gin.H{"message": "Cart item deleted"})
	}
}

// DELETE /cart
func ClearCart(carts *cartstore.Manager) gin.HandlerFunc {
	return func(c *gin.Context) {
		store, ok := sessionStore(c, carts)
		if !ok {
			return
		}

		if err := store.Clear(); err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to clear cart"})
			return
		}
		c.JSON(http.StatusOK, gin.H{"message": "Cart cleared"})
	}
}

// GET /cart/summary
func GetCartSummary(carts *cartstore.Manager) gin.HandlerFunc {
	return func(c *gin.Context) {
		store, ok := sessionStore(c, carts)
		if !ok {
			return
		}
		c.JSON(http.StatusOK, store.Summary())
	}
}

func hasPackSize(product models.Product, packSize string) bool {
	for _, size := range product.PackSizes {
		if size == packSize {
			return true
		}
	}
	return false
}
