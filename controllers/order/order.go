package orderControllers

import (
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/zakariabn/orbit-tools-server-site/middleware"
	"github.com/zakariabn/orbit-tools-server-site/models"
	"github.com/zakariabn/orbit-tools-server-site/store"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// PlaceOrder handles POST /order?productId=&quantity= with an opaque order
// payload in the body.
//
// Stock is taken with a single conditional write: decrement availableQuantity
// only while it still covers the requested quantity. Two concurrent orders
// against the same product can no longer both pass the stock check, and a
// missing product and insufficient stock both fall out of the same no-op
// update. The order document is inserted only after the decrement reports a
// modification.
//
// There is still no rollback if the order insert itself fails after the
// decrement; the stock stays taken.
func PlaceOrder(s store.Store) gin.HandlerFunc {
	return func(c *gin.Context) {
		productID, err := primitive.ObjectIDFromHex(c.Query("productId"))
		if err != nil {
			c.JSON(http.StatusOK, gin.H{"success": false, "message": "Invalid product id"})
			return
		}
		quantity, err := strconv.Atoi(c.Query("quantity"))
		if err != nil || quantity <= 0 {
			c.JSON(http.StatusOK, gin.H{"success": false, "message": "Invalid quantity"})
			return
		}

		var payload bson.M
		if err := c.ShouldBindJSON(&payload); err != nil {
			c.JSON(http.StatusOK, gin.H{"success": false, "message": "Invalid request body"})
			return
		}

		update, err := s.UpdateOne(c.Request.Context(), store.Products,
			bson.M{"_id": productID, "availableQuantity": bson.M{"$gte": quantity}},
			bson.M{"$inc": bson.M{"availableQuantity": -quantity}}, false)
		if err != nil || update.ModifiedCount == 0 {
			c.JSON(http.StatusOK, gin.H{"success": false, "message": "Failed to update product stock"})
			return
		}

		order := bson.M{}
		for k, v := range payload {
			order[k] = v
		}
		order["userEmail"] = middleware.CallerEmail(c)
		order["productId"] = productID
		order["quantity"] = quantity
		order["orderRef"] = models.NewOrderRef()
		order["createdAt"] = time.Now()

		result, err := s.InsertOne(c.Request.Context(), store.Orders, order)
		if err != nil {
			// Stock is already taken at this point; see handler comment.
			c.JSON(http.StatusOK, gin.H{"success": false, "message": "Failed to save order"})
			return
		}
		c.JSON(http.StatusOK, gin.H{"success": true, "result": result})
	}
}

// GetOrders handles GET /orders?email=, filtering by userEmail when the query
// parameter is present.
func GetOrders(s store.Store) gin.HandlerFunc {
	return func(c *gin.Context) {
		filter := bson.M{}
		if email := c.Query("email"); email != "" {
			filter["userEmail"] = email
		}

		orders, err := s.Find(c.Request.Context(), store.Orders, filter, 0)
		if err != nil {
			c.JSON(http.StatusOK, gin.H{"success": false, "message": "Failed to fetch orders"})
			return
		}
		c.JSON(http.StatusOK, gin.H{"success": true, "orders": orders})
	}
}

// DeleteOrder handles DELETE /order/:id. Deleting an order does not restore
// the product stock it consumed.
func DeleteOrder(s store.Store) gin.HandlerFunc {
	return func(c *gin.Context) {
		id, err := primitive.ObjectIDFromHex(c.Param("id"))
		if err != nil {
			c.JSON(http.StatusOK, gin.H{"success": false, "message": "Invalid order id"})
			return
		}

		result, err := s.DeleteOne(c.Request.Context(), store.Orders, bson.M{"_id": id})
		if err != nil || result.DeletedCount != 1 {
			c.JSON(http.StatusOK, gin.H{"success": false, "message": "Order not found"})
			return
		}
		c.JSON(http.StatusOK, gin.H{"success": true, "result": result})
	}
}
