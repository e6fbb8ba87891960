package routes

import (
	"github.com/gin-gonic/gin"
	reviewControllers "github.com/zakariabn/orbit-tools-server-site/controllers/review"
	"github.com/zakariabn/orbit-tools-server-site/store"
)

func SetupReviewRoutes(r *gin.Engine, s store.Store) {
	r.POST("/add/review", reviewControllers.AddReview(s))
	r.GET("/review", reviewControllers.GetReviews(s))
}
