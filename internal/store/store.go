// Thin typed access to the two document collections. Every operation
// delegates straight to the driver: no retries, no transactions.
package store

import (
	"context"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// Collection wraps one Mongo collection with the handful of operations the
// handlers need.
type Collection struct {
	coll *mongo.Collection
}

// Store holds the accessors for the listing and request collections.
type Store struct {
	Foods    *Collection
	Requests *Collection
}

func New(db *mongo.Database) *Store {
	return &Store{
		Foods:    &Collection{coll: db.Collection("foods")},
		Requests: &Collection{coll: db.Collection("requests")},
	}
}

// FindMany returns all documents matching filter. A nil cursor result is
// normalized to an empty slice so callers always serialize a JSON array.
func (c *Collection) FindMany(ctx context.Context, filter bson.M, opts ...*options.FindOptions) ([]bson.M, error) {
	cursor, err := c.coll.Find(ctx, filter, opts...)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var docs []bson.M
	if err = cursor.All(ctx, &docs); err != nil {
		return nil, err
	}
	if docs == nil {
		docs = []bson.M{}
	}
	return docs, nil
}

// FindOne returns the document with the given id. mongo.ErrNoDocuments
// passes through when nothing matches.
func (c *Collection) FindOne(ctx context.Context, id primitive.ObjectID) (bson.M, error) {
	var doc bson.M
	err := c.coll.FindOne(ctx, bson.M{"_id": id}).Decode(&doc)
	if err != nil {
		return nil, err
	}
	return doc, nil
}

func (c *Collection) InsertOne(ctx context.Context, doc bson.M) (*mongo.InsertOneResult, error) {
	return c.coll.InsertOne(ctx, doc)
}

// UpdateOne replaces only the named top-level fields; nested objects are
// not deep-merged.
func (c *Collection) UpdateOne(ctx context.Context, id primitive.ObjectID, fields bson.M) (*mongo.UpdateResult, error) {
	return c.coll.UpdateOne(ctx, bson.M{"_id": id}, bson.M{"$set": fields})
}

func (c *Collection) DeleteOne(ctx context.Context, id primitive.ObjectID) (*mongo.DeleteResult, error) {
	return c.coll.DeleteOne(ctx, bson.M{"_id": id})
}

// IncrementField bumps a numeric field atomically on the store side.
func (c *Collection) IncrementField(ctx context.Context, id primitive.ObjectID, field string, delta int64) (*mongo.UpdateResult, error) {
	return c.coll.UpdateOne(ctx, bson.M{"_id": id}, bson.M{"$inc": bson.M{field: delta}})
}
