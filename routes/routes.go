package routes

import (
	"github.com/gin-gonic/gin"

	"github.com/rajeev06code/thekua/cartstore"
	"github.com/rajeev06code/thekua/catalog"
	checkoutControllers "github.com/rajeev06code/thekua/controllers/checkout"
)

// SetupRoutes is the single entry-point that wires up all route groups.
func SetupRoutes(r *gin.Engine, carts *cartstore.Manager, products *catalog.Catalog, vault *checkoutControllers.OrderVault) {
	// Public session bootstrap (no middleware)
	SetupSessionRoutes(r)

	// Catalog browsing (public)
	SetupProductRoutes(r, products)

	// Cart routes (session-token protected)
	SetupCartRoutes(r, carts, products)

	// Checkout + order confirmation (session-token protected)
	SetupCheckoutRoutes(r, carts, vault)

	// Blog topic generation
	SetupBlogRoutes(r)

	// Catalog export (API-Key protected)
	SetupAdminRoutes(r, products)
}
