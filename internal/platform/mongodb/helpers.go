package mongodb

import (
	"context"
	"errors"
	"fmt"

	"github.com/blissful-trails/trails-api/internal/store"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// findAll runs a find and decodes every document. An empty result is an
// empty, non-nil slice so it encodes as [] rather than null.
func findAll[T any](
	ctx context.Context,
	coll *mongo.Collection,
	entity string,
	filter any,
	opts ...*options.FindOptions,
) ([]T, error) {
	cur, err := coll.Find(ctx, filter, opts...)
	if err != nil {
		return nil, wrapError(entity, "find", err)
	}

	items := make([]T, 0)
	if err := cur.All(ctx, &items); err != nil {
		return nil, wrapError(entity, "decode", err)
	}
	return items, nil
}

// findOne decodes the first document matching filter, returning notFound
// when there is none.
func findOne[T any](
	ctx context.Context,
	coll *mongo.Collection,
	entity string,
	filter any,
	notFound error,
) (*T, error) {
	var item T
	err := coll.FindOne(ctx, filter).Decode(&item)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, notFound
	}
	if err != nil {
		return nil, wrapError(entity, "find one", err)
	}
	return &item, nil
}

// insertOne inserts doc and returns the id generated by the driver.
func insertOne(
	ctx context.Context,
	coll *mongo.Collection,
	entity string,
	doc any,
) (primitive.ObjectID, error) {
	res, err := coll.InsertOne(ctx, doc)
	if err != nil {
		return primitive.NilObjectID, wrapError(entity, "insert", err)
	}

	id, ok := res.InsertedID.(primitive.ObjectID)
	if !ok {
		return primitive.NilObjectID, store.NewStoreError(
			entity,
			"insert",
			fmt.Sprintf("unexpected inserted id type %T", res.InsertedID),
			store.ErrInvalidEntity,
		)
	}
	return id, nil
}
