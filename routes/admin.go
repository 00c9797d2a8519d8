package routes

import (
	"github.com/gin-gonic/gin"

	"github.com/rajeev06code/thekua/catalog"
	productcontroller "github.com/rajeev06code/thekua/controllers/product"
	"github.com/rajeev06code/thekua/middleware"
)

// SetupAdminRoutes registers all "/admin/*" endpoints. Requires API-Key middleware.
func SetupAdminRoutes(r *gin.Engine, products *catalog.Catalog) {
	adminGroup := r.Group("/admin")
	adminGroup.Use(middleware.ValidateAPIKey)
	{
		productAdmin := adminGroup.Group("/products")
		{
			productAdmin.GET("/export-excel", productcontroller.ExportProductsToExcel(products))
		}
	}
}
