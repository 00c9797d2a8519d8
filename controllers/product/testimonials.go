package productcontroller

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/rajeev06code/thekua/catalog"
)

// GET /testimonials
func GetTestimonials(products *catalog.Catalog) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.JSON(http.StatusOK, products.Testimonials())
	}
}
