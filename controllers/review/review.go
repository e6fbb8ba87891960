package reviewControllers

import (
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/zakariabn/orbit-tools-server-site/store"
	"go.mongodb.org/mongo-driver/bson"
)

// AddReview handles POST /add/review. The insert result is awaited before
// answering; a store failure is reported instead of an optimistic success.
func AddReview(s store.Store) gin.HandlerFunc {
	return func(c *gin.Context) {
		var review bson.M
		if err := c.ShouldBindJSON(&review); err != nil {
			c.JSON(http.StatusOK, gin.H{"success": false, "message": "Invalid request body"})
			return
		}
		review["createdAt"] = time.Now()

		if _, err := s.InsertOne(c.Request.Context(), store.Reviews, review); err != nil {
			c.JSON(http.StatusOK, gin.H{"success": false, "message": "Failed to add review"})
			return
		}
		c.JSON(http.StatusOK, gin.H{"success": true, "message": "Review added successfully"})
	}
}

// GetReviews handles GET /review?limit= with the same limit-or-all semantics
// as the product listing.
func GetReviews(s store.Store) gin.HandlerFunc {
	return func(c *gin.Context) {
		var limit int64
		if n, err := strconv.ParseInt(c.Query("limit"), 10, 64); err == nil && n >= 0 {
			if n == 0 {
				c.JSON(http.StatusOK, gin.H{"success": true, "review": []bson.M{}})
				return
			}
			limit = n
		}

		reviews, err := s.Find(c.Request.Context(), store.Reviews, bson.M{}, limit)
		if err != nil {
			c.JSON(http.StatusOK, gin.H{"success": false, "message": "Failed to fetch reviews"})
			return
		}
		c.JSON(http.StatusOK, gin.H{"success": true, "review": reviews})
	}
}
