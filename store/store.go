package store

import (
	"context"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
)

// Collection names used across the API.
const (
	Users    = "users"
	Products = "products"
	Orders   = "orders"
	Reviews  = "reviews"
)

// Store is the document store contract consumed by all handlers. It is pure
// data access; business rules live in the controllers. A limit of 0 (or
// negative) on Find means "no cap".
//
// Missing documents are reported as mongo.ErrNoDocuments so callers can tell
// "not found" apart from a backend failure.
type Store interface {
	FindOne(ctx context.Context, collection string, filter bson.M) (bson.M, error)
	Find(ctx context.Context, collection string, filter bson.M, limit int64) ([]bson.M, error)
	InsertOne(ctx context.Context, collection string, doc bson.M) (*mongo.InsertOneResult, error)
	UpdateOne(ctx context.Context, collection string, filter, update bson.M, upsert bool) (*mongo.UpdateResult, error)
	DeleteOne(ctx context.Context, collection string, filter bson.M) (*mongo.DeleteResult, error)
}
