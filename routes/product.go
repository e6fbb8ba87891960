package routes

import (
	"github.com/gin-gonic/gin"
	productcontroller "github.com/zakariabn/orbit-tools-server-site/controllers/product"
	"github.com/zakariabn/orbit-tools-server-site/store"
)

func SetupProductRoutes(r *gin.Engine, s store.Store) {
	r.GET("/products", productcontroller.GetProducts(s))
	r.GET("/products/export", productcontroller.ExportProductsToExcel(s))
	r.GET("/product/:id", productcontroller.GetProductByID(s))
	r.POST("/product", productcontroller.CreateProduct(s))
	r.DELETE("/product/delete", productcontroller.DeleteProduct(s))
}
