package mongo

import (
	"context"
	"errors"
	"fmt"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/scic-labs/taskboard-server/internal/model"
)

var _ model.DocumentStore = (*Collection)(nil)

// Collection stores the documents of one MongoDB collection.
type Collection struct {
	coll *mongo.Collection
}

func newCollection(coll *mongo.Collection) *Collection {
	return &Collection{coll: coll}
}

func (c *Collection) Insert(ctx context.Context, doc model.Document) (primitive.ObjectID, error) {
	stored := bson.M(doc.WithoutID())
	id := primitive.NewObjectID()
	stored[model.IDField] = id

	if _, err := c.coll.InsertOne(ctx, stored); err != nil {
		return primitive.NilObjectID, fmt.Errorf("failed to insert into %s: %w", c.coll.Name(), err)
	}

	return id, nil
}

func (c *Collection) FindAll(ctx context.Context) ([]model.Document, error) {
	return c.find(ctx, bson.M{})
}

func (c *Collection) FindByID(ctx context.Context, id primitive.ObjectID) (model.Document, error) {
	var raw bson.M
	err := c.coll.FindOne(ctx, bson.M{model.IDField: id}).Decode(&raw)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, model.ErrNotFound
		}
		return nil, fmt.Errorf("failed to find %s in %s: %w", id.Hex(), c.coll.Name(), err)
	}

	return model.Document(raw), nil
}

func (c *Collection) FindByField(ctx context.Context, field string, value any) ([]model.Document, error) {
	return c.find(ctx, bson.M{field: value})
}

func (c *Collection) UpdateByID(ctx context.Context, id primitive.ObjectID, set model.Document) error {
	update := bson.M{"$set": bson.M(set.WithoutID())}

	res, err := c.coll.UpdateOne(ctx, bson.M{model.IDField: id}, update)
	if err != nil {
		return fmt.Errorf("failed to update %s in %s: %w", id.Hex(), c.coll.Name(), err)
	}
	if res.MatchedCount == 0 {
		return model.ErrNotFound
	}

	return nil
}

func (c *Collection) DeleteByID(ctx context.Context, id primitive.ObjectID) error {
	res, err := c.coll.DeleteOne(ctx, bson.M{model.IDField: id})
	if err != nil {
		return fmt.Errorf("failed to delete %s from %s: %w", id.Hex(), c.coll.Name(), err)
	}
	if res.DeletedCount == 0 {
		return model.ErrNotFound
	}

	return nil
}

func (c *Collection) find(ctx context.Context, filter bson.M) ([]model.Document, error) {
	cursor, err := c.coll.Find(ctx, filter)
	if err != nil {
		return nil, fmt.Errorf("failed to query %s: %w", c.coll.Name(), err)
	}

	var raw []bson.M
	if err := cursor.All(ctx, &raw); err != nil {
		return nil, fmt.Errorf("failed to read %s: %w", c.coll.Name(), err)
	}

	docs := make([]model.Document, 0, len(raw))
	for _, r := range raw {
		docs = append(docs, model.Document(r))
	}

	return docs, nil
}
