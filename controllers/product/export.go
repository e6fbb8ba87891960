package productcontroller

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/tealeg/xlsx"
	"github.com/zakariabn/orbit-tools-server-site/models"
	"github.com/zakariabn/orbit-tools-server-site/store"
	"go.mongodb.org/mongo-driver/bson"
)

// ExportProductsToExcel streams the product catalogue as an .xlsx download.
func ExportProductsToExcel(s store.Store) gin.HandlerFunc {
	return func(c *gin.Context) {
		docs, err := s.Find(c.Request.Context(), store.Products, bson.M{}, 0)
		if err != nil {
			c.JSON(http.StatusOK, gin.H{"success": false, "message": "Failed to fetch products"})
			return
		}

		file := xlsx.NewFile()
		sheet, err := file.AddSheet("Products")
		if err != nil {
			c.JSON(http.StatusOK, gin.H{"success": false, "message": "Failed to create Excel sheet"})
			return
		}

		headerRow := sheet.AddRow()
		for _, h := range []string{"ID", "Name", "Price", "AvailableQuantity"} {
			headerRow.AddCell().SetValue(h)
		}

		for _, doc := range docs {
			p := models.ProductFromDoc(doc)
			row := sheet.AddRow()
			row.AddCell().SetValue(p.ID.Hex())
			row.AddCell().SetValue(p.Name)
			row.AddCell().SetValue(p.Price)
			row.AddCell().SetValue(p.AvailableQuantity)
		}

		c.Header("Content-Disposition", "attachment; filename=products.xlsx")
		c.Header("Content-Type", "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet")
		c.Header("Content-Transfer-Encoding", "binary")
		c.Header("Expires", "0")

		if err := file.Write(c.Writer); err != nil {
			c.JSON(http.StatusOK, gin.H{"success": false, "message": "Failed to write Excel file"})
			return
		}
	}
}
