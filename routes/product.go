package routes

import (
	"github.com/gin-gonic/gin"

	"github.com/rajeev06code/thekua/catalog"
	productcontroller "github.com/rajeev06code/thekua/controllers/product"
)

// SetupProductRoutes registers the public catalog endpoints.
func SetupProductRoutes(r *gin.Engine, products *catalog.Catalog) {
	productGroup := r.Group("/products")
	{
		productGroup.GET("/", productcontroller.GetProducts(products))      // GET /products
		productGroup.GET("/:id", productcontroller.GetProductByID(products)) // GET /products/:id
	}

	r.GET("/testimonials", productcontroller.GetTestimonials(products))
}
