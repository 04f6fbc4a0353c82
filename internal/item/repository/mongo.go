package repository

import (
	"context"
	"errors"
	"fmt"

	"github.com/shoppinglist/shopping-list/internal/item"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.mongodb.org/mongo-driver/mongo/readpref"
)

// CollectionName is the Mongo collection holding shopping-list items.
const CollectionName = "items"

// MongoRepo implements Repository on top of a MongoDB collection. Item ids
// are ObjectIDs generated client-side, so sorting on _id gives insertion order.
type MongoRepo struct {
	col *mongo.Collection
}

func NewMongoRepo(col *mongo.Collection) *MongoRepo {
	return &MongoRepo{col: col}
}

func (m *MongoRepo) List(ctx context.Context) ([]*item.Item, error) {
	opts := options.Find().SetSort(bson.D{{Key: "_id", Value: 1}})
	cur, err := m.col.Find(ctx, bson.M{}, opts)
	if err != nil {
		return nil, fmt.Errorf("find items: %w", err)
	}
	defer cur.Close(ctx)
	out := []*item.Item{}
	for cur.Next(ctx) {
		var it item.Item
		if err := cur.Decode(&it); err != nil {
			return nil, fmt.Errorf("decode item: %w", err)
		}
		out = append(out, &it)
	}
	if err := cur.Err(); err != nil {
		return nil, fmt.Errorf("iterate items: %w", err)
	}
	return out, nil
}

func (m *MongoRepo) Create(ctx context.Context, name string) (*item.Item, error) {
	it := &item.Item{ID: primitive.NewObjectID(), Name: name}
	if _, err := m.col.InsertOne(ctx, it); err != nil {
		return nil, fmt.Errorf("insert item: %w", err)
	}
	return it, nil
}

// UpdateName replaces the name in a single FindOneAndUpdate so the lookup and
// the write are one atomic store operation.
func (m *MongoRepo) UpdateName(ctx context.Context, id primitive.ObjectID, name string) (*item.Item, error) {
	opts := options.FindOneAndUpdate().SetReturnDocument(options.After)
	upd := bson.M{"$set": bson.M{"name": name}}
	var it item.Item
	err := m.col.FindOneAndUpdate(ctx, bson.M{"_id": id}, upd, opts).Decode(&it)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, item.ErrNotFound
		}
		return nil, fmt.Errorf("update item %s: %w", id.Hex(), err)
	}
	return &it, nil
}

func (m *MongoRepo) Delete(ctx context.Context, id primitive.ObjectID) (int64, error) {
	res, err := m.col.DeleteOne(ctx, bson.M{"_id": id})
	if err != nil {
		return 0, fmt.Errorf("delete item %s: %w", id.Hex(), err)
	}
	return res.DeletedCount, nil
}

func (m *MongoRepo) Ping(ctx context.Context) error {
	return m.col.Database().Client().Ping(ctx, readpref.Primary())
}
