package routes

import (
	"github.com/gin-gonic/gin"

	"github.com/rajeev06code/thekua/cartstore"
	checkoutControllers "github.com/rajeev06code/thekua/controllers/checkout"
	"github.com/rajeev06code/thekua/middleware"
)

// SetupCheckoutRoutes registers checkout submission and the read-once order
// confirmation endpoint. Requires a session token.
func SetupCheckoutRoutes(r *gin.Engine, carts *cartstore.Manager, vault *checkoutControllers.OrderVault) {
	checkoutGroup := r.Group("/checkout")
	checkoutGroup.Use(middleware.ValidateSession)
	{
		checkoutGroup.POST("/", checkoutControllers.PlaceOrder(carts, vault))
	}

	confirmationGroup := r.Group("/order-confirmation")
	confirmationGroup.Use(middleware.ValidateSession)
	{
		confirmationGroup.GET("/:order_id", checkoutControllers.GetOrderConfirmation(vault))
	}
}
