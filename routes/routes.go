package routes

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/zakariabn/orbit-tools-server-site/store"
)

// SetupRoutes is the single entry point that wires up all route groups.
func SetupRoutes(r *gin.Engine, s store.Store) {
	r.GET("/", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"success": true, "message": "Orbit Tools ltd (server running...)"})
	})

	SetupUserRoutes(r, s)
	SetupProductRoutes(r, s)
	SetupOrderRoutes(r, s)
	SetupReviewRoutes(r, s)
}
