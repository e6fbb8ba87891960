package store

import (
	"context"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.mongodb.org/mongo-driver/mongo/readpref"
)

// Mongo wraps a *mongo.Database behind the Store contract.
type Mongo struct {
	db *mongo.Database
}

// ConnectMongo dials MongoDB, pings it, and returns a Store over the named
// database.
func ConnectMongo(uri, dbName string) (*Mongo, error) {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	client, err := mongo.Connect(ctx, options.Client().ApplyURI(uri))
	if err != nil {
		return nil, err
	}
	if err := client.Ping(ctx, readpref.Primary()); err != nil {
		return nil, err
	}
	return &Mongo{db: client.Database(dbName)}, nil
}

func (m *Mongo) FindOne(ctx context.Context, collection string, filter bson.M) (bson.M, error) {
	var doc bson.M
	if err := m.db.Collection(collection).FindOne(ctx, filter).Decode(&doc); err != nil {
		return nil, err
	}
	return doc, nil
}

func (m *Mongo) Find(ctx context.Context, collection string, filter bson.M, limit int64) ([]bson.M, error) {
	opts := options.Find()
	if limit > 0 {
		opts.SetLimit(limit)
	}
	cur, err := m.db.Collection(collection).Find(ctx, filter, opts)
	if err != nil {
		return nil, err
	}
	defer cur.Close(ctx)

	docs := []bson.M{}
	if err := cur.All(ctx, &docs); err != nil {
		return nil, err
	}
	return docs, nil
}

func (m *Mongo) InsertOne(ctx context.Context, collection string, doc bson.M) (*mongo.InsertOneResult, error) {
	return m.db.Collection(collection).InsertOne(ctx, doc)
}

func (m *Mongo) UpdateOne(ctx context.Context, collection string, filter, update bson.M, upsert bool) (*mongo.UpdateResult, error) {
	opts := options.Update().SetUpsert(upsert)
	return m.db.Collection(collection).UpdateOne(ctx, filter, update, opts)
}

func (m *Mongo) DeleteOne(ctx context.Context, collection string, filter bson.M) (*mongo.DeleteResult, error) {
	return m.db.Collection(collection).DeleteOne(ctx, filter)
}
