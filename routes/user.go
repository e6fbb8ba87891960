package routes

import (
	"github.com/gin-gonic/gin"
	userControllers "github.com/zakariabn/orbit-tools-server-site/controllers/user"
	"github.com/zakariabn/orbit-tools-server-site/middleware"
	"github.com/zakariabn/orbit-tools-server-site/store"
)

// SetupUserRoutes registers the user and auth endpoints. The admin lookups
// run behind the token middleware so the checked identity always comes from
// verified claims.
func SetupUserRoutes(r *gin.Engine, s store.Store) {
	r.GET("/users", userControllers.GetAllUsers(s))

	r.GET("/user/logout", userControllers.Logout)
	r.GET("/user/admin", middleware.RequireToken, userControllers.IsAdmin(s))
	r.GET("/user/:email", userControllers.GetUser(s))
	r.PUT("/user/:email", userControllers.UpsertUser(s))

	r.GET("/admin-user", middleware.RequireToken, userControllers.IsAdmin(s))
	r.PUT("/admin-user/role", middleware.RequireToken, userControllers.SetUserRole(s))

	r.PUT("/update-user", userControllers.UpdateUser(s))
}
