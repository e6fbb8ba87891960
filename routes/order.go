package routes

import (
	"github.com/gin-gonic/gin"
	orderControllers "github.com/zakariabn/orbit-tools-server-site/controllers/order"
	"github.com/zakariabn/orbit-tools-server-site/middleware"
	"github.com/zakariabn/orbit-tools-server-site/store"
)

func SetupOrderRoutes(r *gin.Engine, s store.Store) {
	// Placing an order needs a session; the order is recorded against the
	// verified email, not a client-supplied one.
	r.POST("/order", middleware.RequireToken, orderControllers.PlaceOrder(s))

	r.GET("/orders", orderControllers.GetOrders(s))
	r.DELETE("/order/:id", orderControllers.DeleteOrder(s))
}
