package productcontroller

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/rajeev06code/thekua/catalog"
	"github.com/rajeev06code/thekua/models"
)

// GET /products
// Filtering params: search (substring on name/description), category, tag,
// pack_size, min_price, max_price.
func GetProducts(products *catalog.Catalog) gin.HandlerFunc {
	return func(c *gin.Context) {
		filter := catalog.Filter{
			Search:   c.Query("search"),
			Category: models.Category(c.Query("category")),
			Tag:      c.Query("tag"),
			PackSize: c.Query("pack_size"),
		}

		if minPriceStr := c.Query("min_price"); minPriceStr != "" {
			mp, err := strconv.ParseFloat(minPriceStr, 64)
			if err != nil {
				c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid min_price"})
				return
			}
			filter.MinPrice = &mp
		}
		if maxPriceStr := c.Query("max_price"); maxPriceStr != "" {
			mp, err := strconv.ParseFloat(maxPriceStr, 64)
			if err != nil {
				c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid max_price"})
				return
			}
			filter.MaxPrice = &mp
		}

		matched := products.Find(filter)
		if matched == nil {
			matched = []models.Product{}
		}
		c.JSON(http.StatusOK, matched)
	}
}
