package model

import (
	"context"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// IDField is the key under which every stored document carries its identifier.
const IDField = "_id"

// Collection names inside the logical database.
const (
	UsersCollection = "users"
	TasksCollection = "alltask"
)

// DocumentStore defines persistence operations over a single collection.
type DocumentStore interface {
	Insert(ctx context.Context, doc Document) (primitive.ObjectID, error)
	FindAll(ctx context.Context) ([]Document, error)
	FindByID(ctx context.Context, id primitive.ObjectID) (Document, error)
	FindByField(ctx context.Context, field string, value any) ([]Document, error)
	UpdateByID(ctx context.Context, id primitive.ObjectID, set Document) error
	DeleteByID(ctx context.Context, id primitive.ObjectID) error
}

// Document is a schema-less record as submitted by a client.
type Document map[string]any

// WithoutID returns a shallow copy of the document with any identifier removed.
func (d Document) WithoutID() Document {
	out := make(Document, len(d))
	for k, v := range d {
		if k == IDField {
			continue
		}
		out[k] = v
	}
	return out
}

// InsertResult describes a successful insert.
type InsertResult struct {
	Acknowledged bool               `json:"acknowledged"`
	InsertedID   primitive.ObjectID `json:"insertedId"`
}
