package routes

import (
	"github.com/gin-gonic/gin"

	"github.com/rajeev06code/thekua/cartstore"
	"github.com/rajeev06code/thekua/catalog"
	cartControllers "github.com/rajeev06code/thekua/controllers/cart"
	"github.com/rajeev06code/thekua/middleware"
)

// SetupCartRoutes registers all "/cart/*" endpoints. Requires a session token.
func SetupCartRoutes(r *gin.Engine, carts *cartstore.Manager, products *catalog.Catalog) {
	cartGroup := r.Group("/cart")
	cartGroup.Use(middleware.ValidateSession)
	{
		cartGroup.GET("/", cartControllers.GetCart(carts))                      // GET /cart
		cartGroup.POST("/", cartControllers.AddCartItem(carts, products))       // POST /cart
		cartGroup.PUT("/", cartControllers.UpdateCartItem(carts))               // PUT /cart
		cartGroup.DELETE("/:product_id", cartControllers.DeleteCartItem(carts)) // DELETE /cart/:product_id?pack_size=
		cartGroup.DELETE("/", cartControllers.ClearCart(carts))                 // DELETE /cart
		cartGroup.GET("/summary", cartControllers.GetCartSummary(carts))        // GET /cart/summary
		cartGroup.GET("/ws", cartControllers.CartWebSocketHandler(carts))       // GET /cart/ws
	}
}
