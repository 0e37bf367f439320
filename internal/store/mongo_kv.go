package store

import (
	"context"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"serviciosmarket/core/internal/db"
)

const snapshotCollection = "snapshots"

type snapshotDoc struct {
	Key       string    `bson:"_id"`
	Data      []byte    `bson:"data"`
	UpdatedAt time.Time `bson:"updated_at"`
}

// MongoKV stores one snapshot document per state key in the snapshots
// collection.
type MongoKV struct {
	col *mongo.Collection
}

func NewMongoKV(database *mongo.Database) *MongoKV {
	return &MongoKV{col: database.Collection(snapshotCollection)}
}

func (m *MongoKV) Get(ctx context.Context, key string) ([]byte, error) {
	var doc snapshotDoc
	err := m.col.FindOne(ctx, bson.M{"_id": key}).Decode(&doc)
	if err == mongo.ErrNoDocuments {
		return nil, ErrKeyNotFound
	}
	if err != nil {
		return nil, err
	}
	return doc.Data, nil
}

func (m *MongoKV) Set(ctx context.Context, key string, data []byte) error {
	doc := snapshotDoc{Key: key, Data: data, UpdatedAt: time.Now().UTC()}
	return db.Try(func() error {
		_, err := m.col.ReplaceOne(ctx, bson.M{"_id": key}, doc, options.Replace().SetUpsert(true))
		return err
	})
}
