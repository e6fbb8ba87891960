package productcontroller

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/zakariabn/orbit-tools-server-site/store"
	"go.mongodb.org/mongo-driver/bson"
)

// GetProducts lists products. A non-negative integer ?limit= caps the result
// count; anything else (absent, junk, negative) means no cap rather than an
// error.
func GetProducts(s store.Store) gin.HandlerFunc {
	return func(c *gin.Context) {
		var limit int64
		if n, err := strconv.ParseInt(c.Query("limit"), 10, 64); err == nil && n >= 0 {
			if n == 0 {
				c.JSON(http.StatusOK, gin.H{"success": true, "products": []bson.M{}})
				return
			}
			limit = n
		}

		products, err := s.Find(c.Request.Context(), store.Products, bson.M{}, limit)
		if err != nil {
			c.JSON(http.StatusOK, gin.H{"success": false, "message": "Failed to fetch products"})
			return
		}
		c.JSON(http.StatusOK, gin.H{"success": true, "products": products})
	}
}
