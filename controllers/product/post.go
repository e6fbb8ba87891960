package productcontroller

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/zakariabn/orbit-tools-server-site/store"
	"go.mongodb.org/mongo-driver/bson"
)

// CreateProduct inserts a new product document. Success means the store
// assigned a new identifier.
func CreateProduct(s store.Store) gin.HandlerFunc {
	return func(c *gin.Context) {
		var product bson.M
		if err := c.ShouldBindJSON(&product); err != nil {
			c.JSON(http.StatusOK, gin.H{"success": false, "message": "Invalid request body"})
			return
		}

		result, err := s.InsertOne(c.Request.Context(), store.Products, product)
		if err != nil || result.InsertedID == nil {
			c.JSON(http.StatusOK, gin.H{"success": false, "message": "Failed to add product"})
			return
		}
		c.JSON(http.StatusOK, gin.H{"success": true, "message": "Product added successfully"})
	}
}
