package models

import (
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Product is the typed view of a product document. Only the fields the API
// itself acts on are named; everything else in the document is pass-through.
type Product struct {
	ID                primitive.ObjectID `bson:"_id,omitempty" json:"id,omitempty"`
	Name              string             `bson:"name" json:"name"`
	Price             float64            `bson:"price" json:"price"`
	AvailableQuantity int                `bson:"availableQuantity" json:"availableQuantity"`
}

// ProductFromDoc extracts the typed fields from a raw product document.
func ProductFromDoc(doc bson.M) Product {
	p := Product{}
	if id, ok := doc["_id"].(primitive.ObjectID); ok {
		p.ID = id
	}
	p.Name, _ = doc["name"].(string)
	p.Price = docFloat(doc, "price")
	p.AvailableQuantity = int(docFloat(doc, "availableQuantity"))
	return p
}

func docFloat(doc bson.M, key string) float64 {
	switch n := doc[key].(type) {
	case int:
		return float64(n)
	case int32:
		return float64(n)
	case int64:
		return float64(n)
	case float64:
		return n
	default:
		return 0
	}
}
