package routes

import (
	"github.com/gin-gonic/gin"

	"github.com/rajeev06code/thekua/auth"
)

// SetupSessionRoutes registers the anonymous session bootstrap endpoint.
func SetupSessionRoutes(r *gin.Engine) {
	sessionGroup := r.Group("/session")
	{
		sessionGroup.POST("/", auth.CreateSession())
	}
}
