// cart_web_socket.go
package cartControllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/gorilla/websocket"

	"github.com/rajeev06code/thekua/cartstore"
)

var upgrader = websocket.Upgrader{
	CheckOrigin: func(r *http.Request) bool {
		return true
	},
}

// GET /cart/ws
// Streams the cart summary to badge and modal surfaces: one message on
// connect, then one after every mutation of this session's cart.
func CartWebSocketHandler(carts *cartstore.Manager) gin.HandlerFunc {
	return func(c *gin.Context) {
		store, ok := sessionStore(c, carts)
		if !ok {
			return
		}

		conn, err := upgrader.Upgrade(c.Writer, c.Request, nil)
		if err != nil {
			return
		}
		defer conn.Close()

		updates, cancel := store.Watch()
		defer cancel()

		closed := make(chan struct{})
		go func() {
			defer close(closed)
			for {
				if _, _, err := conn.ReadMessage(); err != nil {
					return
				}
			}
		}()

		if err := conn.WriteJSON(store.Summary()); err != nil {
			return
		}
		for {
			select {
			case summary := <-updates:
				if err := conn.WriteJSON(summary); err != nil {
					return
				}
			case <-closed:
				return
			}
		}
	}
}
