package productcontroller

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/rajeev06code/thekua/catalog"
)

// GetProductByID returns a single product.
// URL param: /products/:id
func GetProductByID(products *catalog.Catalog) gin.HandlerFunc {
	return func(c *gin.Context) {
		id := c.Param("id")
		if id == "" {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Product ID is required"})
			return
		}

		product, found := products.ByID(id)
		if !found {
			c.JSON(http.StatusNotFound, gin.H{"error": "Product not found"})
			return
		}
		c.JSON(http.StatusOK, product)
	}
}
