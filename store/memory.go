package store

import (
	"context"
	"reflect"
	"sync"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
)

// Memory is a map-backed Store guarded by a RWMutex. It understands the small
// query/update surface the handlers use ($set, $inc, $gte) and mirrors the
// driver's matched/modified/upserted accounting. Used by the test suites and
// handy for local development without a running MongoDB.
type Memory struct {
	mu          sync.RWMutex
	collections map[string][]bson.M
}

func NewMemory() *Memory {
	return &Memory{collections: make(map[string][]bson.M)}
}

func (m *Memory) FindOne(ctx context.Context, collection string, filter bson.M) (bson.M, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	for _, doc := range m.collections[collection] {
		if matches(doc, filter) {
			return cloneDoc(doc), nil
		}
	}
	return nil, mongo.ErrNoDocuments
}

func (m *Memory) Find(ctx context.Context, collection string, filter bson.M, limit int64) ([]bson.M, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	docs := []bson.M{}
	for _, doc := range m.collections[collection] {
		if matches(doc, filter) {
			docs = append(docs, cloneDoc(doc))
			if limit > 0 && int64(len(docs)) == limit {
				break
			}
		}
	}
	return docs, nil
}

func (m *Memory) InsertOne(ctx context.Context, collection string, doc bson.M) (*mongo.InsertOneResult, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	stored := cloneDoc(doc)
	id, ok := stored["_id"]
	if !ok {
		id = primitive.NewObjectID()
		stored["_id"] = id
	}
	m.collections[collection] = append(m.collections[collection], stored)
	return &mongo.InsertOneResult{InsertedID: id}, nil
}

func (m *Memory) UpdateOne(ctx context.Context, collection string, filter, update bson.M, upsert bool) (*mongo.UpdateResult, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	for i, doc := range m.collections[collection] {
		if !matches(doc, filter) {
			continue
		}
		updated := cloneDoc(doc)
		applyUpdate(updated, update)
		res := &mongo.UpdateResult{MatchedCount: 1}
		if !reflect.DeepEqual(doc, updated) {
			m.collections[collection][i] = updated
			res.ModifiedCount = 1
		}
		return res, nil
	}

	if !upsert {
		return &mongo.UpdateResult{}, nil
	}

	created := bson.M{}
	for k, v := range filter {
		if _, isOp := v.(bson.M); !isOp {
			created[k] = v
		}
	}
	applyUpdate(created, update)
	id, ok := created["_id"]
	if !ok {
		id = primitive.NewObjectID()
		created["_id"] = id
	}
	m.collections[collection] = append(m.collections[collection], created)
	return &mongo.UpdateResult{UpsertedID: id}, nil
}

func (m *Memory) DeleteOne(ctx context.Context, collection string, filter bson.M) (*mongo.DeleteResult, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	docs := m.collections[collection]
	for i, doc := range docs {
		if matches(doc, filter) {
			m.collections[collection] = append(docs[:i:i], docs[i+1:]...)
			return &mongo.DeleteResult{DeletedCount: 1}, nil
		}
	}
	return &mongo.DeleteResult{}, nil
}

// matches evaluates a filter against a document: plain values compare for
// equality, nested bson.M values are operator expressions.
func matches(doc, filter bson.M) bool {
	for key, want := range filter {
		got, ok := doc[key]
		if ops, isOp := want.(bson.M); isOp {
			if !matchOps(got, ops) {
				return false
			}
			continue
		}
		if !ok || !valuesEqual(got, want) {
			return false
		}
	}
	return true
}

func matchOps(got interface{}, ops bson.M) bool {
	for op, operand := range ops {
		switch op {
		case "$gte":
			gv, gok := toFloat(got)
			ov, ook := toFloat(operand)
			if !gok || !ook || gv < ov {
				return false
			}
		default:
			return false
		}
	}
	return true
}

func applyUpdate(doc, update bson.M) {
	for op, operand := range update {
		fields, ok := operand.(bson.M)
		if !ok {
			continue
		}
		switch op {
		case "$set":
			for k, v := range fields {
				doc[k] = v
			}
		case "$inc":
			for k, v := range fields {
				cur, _ := toFloat(doc[k])
				delta, _ := toFloat(v)
				doc[k] = cur + delta
			}
		}
	}
}

func valuesEqual(a, b interface{}) bool {
	if af, aok := toFloat(a); aok {
		if bf, bok := toFloat(b); bok {
			return af == bf
		}
		return false
	}
	return reflect.DeepEqual(a, b)
}

func toFloat(v interface{}) (float64, bool) {
	switch n := v.(type) {
	case int:
		return float64(n), true
	case int32:
		return float64(n), true
	case int64:
		return float64(n), true
	case float32:
		return float64(n), true
	case float64:
		return n, true
	default:
		return 0, false
	}
}

func cloneDoc(doc bson.M) bson.M {
	out := make(bson.M, len(doc))
	for k, v := range doc {
		out[k] = v
	}
	return out
}
