package productcontroller

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/zakariabn/orbit-tools-server-site/store"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// DeleteProduct removes a product by ?id=. Success means exactly one document
// was removed.
func DeleteProduct(s store.Store) gin.HandlerFunc {
	return func(c *gin.Context) {
		id, err := primitive.ObjectIDFromHex(c.Query("id"))
		if err != nil {
			c.JSON(http.StatusOK, gin.H{"success": false, "message": "Invalid product id"})
			return
		}

		result, err := s.DeleteOne(c.Request.Context(), store.Products, bson.M{"_id": id})
		if err != nil || result.DeletedCount != 1 {
			c.JSON(http.StatusOK, gin.H{"success": false, "message": "Product not found"})
			return
		}
		c.JSON(http.StatusOK, gin.H{"success": true, "message": "Product deleted successfully"})
	}
}
