package productcontroller

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/zakariabn/orbit-tools-server-site/store"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// GetProductByID returns a single product.
// URL param: /product/:id
func GetProductByID(s store.Store) gin.HandlerFunc {
	return func(c *gin.Context) {
		id, err := primitive.ObjectIDFromHex(c.Param("id"))
		if err != nil {
			c.JSON(http.StatusOK, gin.H{"success": false, "message": "Invalid product id"})
			return
		}

		product, err := s.FindOne(c.Request.Context(), store.Products, bson.M{"_id": id})
		if err != nil {
			c.JSON(http.StatusOK, gin.H{"success": false, "message": "Product not found"})
			return
		}
		c.JSON(http.StatusOK, gin.H{"success": true, "product": product})
	}
}
