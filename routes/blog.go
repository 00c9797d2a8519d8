package routes

import (
	"github.com/gin-gonic/gin"

	blogControllers "github.com/rajeev06code/thekua/controllers/blog"
)

// SetupBlogRoutes registers the AI blog-topic generator endpoint.
func SetupBlogRoutes(r *gin.Engine) {
	blogGroup := r.Group("/blog")
	{
		blogGroup.POST("/topics", blogControllers.GenerateBlogTopics())
	}
}
