// Package memory provides an in-process document store.
package memory

import (
	"context"
	"encoding/json"
	"fmt"
	"sync"

	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/scic-labs/taskboard-server/internal/model"
)

var _ model.DocumentStore = (*Collection)(nil)

// Collection keeps documents in memory in insertion order.
type Collection struct {
	mu    sync.RWMutex
	docs  map[primitive.ObjectID]model.Document
	order []primitive.ObjectID
}

// NewCollection creates an empty Collection.
func NewCollection() *Collection {
	return &Collection{
		docs: make(map[primitive.ObjectID]model.Document),
	}
}

// Store holds named in-memory collections.
type Store struct {
	mu          sync.Mutex
	collections map[string]*Collection
}

// NewStore creates an empty Store.
func NewStore() *Store {
	return &Store{collections: make(map[string]*Collection)}
}

// Collection returns the named collection, creating it on first use.
func (s *Store) Collection(name string) *Collection {
	s.mu.Lock()
	defer s.mu.Unlock()

	c, ok := s.collections[name]
	if !ok {
		c = NewCollection()
		s.collections[name] = c
	}
	return c
}

func (c *Collection) Insert(ctx context.Context, doc model.Document) (primitive.ObjectID, error) {
	stored, err := clone(doc.WithoutID())
	if err != nil {
		return primitive.NilObjectID, fmt.Errorf("failed to copy document: %w", err)
	}

	id := primitive.NewObjectID()
	stored[model.IDField] = id

	c.mu.Lock()
	defer c.mu.Unlock()

	c.docs[id] = stored
	c.order = append(c.order, id)

	return id, nil
}

func (c *Collection) FindAll(ctx context.Context) ([]model.Document, error) {
	return c.filter(func(model.Document) bool { return true })
}

func (c *Collection) FindByID(ctx context.Context, id primitive.ObjectID) (model.Document, error) {
	c.mu.RLock()
	defer c.mu.RUnlock()

	doc, ok := c.docs[id]
	if !ok {
		return nil, model.ErrNotFound
	}
	return copyDoc(doc), nil
}

// FindByField returns documents whose field equals value, or holds an array containing it.
func (c *Collection) FindByField(ctx context.Context, field string, value any) ([]model.Document, error) {
	return c.filter(func(doc model.Document) bool {
		v, ok := doc[field]
		if !ok {
			return false
		}
		if arr, isArr := v.([]any); isArr {
			for _, el := range arr {
				if el == value {
					return true
				}
			}
			return false
		}
		return v == value
	})
}

func (c *Collection) UpdateByID(ctx context.Context, id primitive.ObjectID, set model.Document) error {
	patch, err := clone(set.WithoutID())
	if err != nil {
		return fmt.Errorf("failed to copy update: %w", err)
	}

	c.mu.Lock()
	defer c.mu.Unlock()

	doc, ok := c.docs[id]
	if !ok {
		return model.ErrNotFound
	}
	for k, v := range patch {
		doc[k] = v
	}
	return nil
}

func (c *Collection) DeleteByID(ctx context.Context, id primitive.ObjectID) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	if _, ok := c.docs[id]; !ok {
		return model.ErrNotFound
	}
	delete(c.docs, id)
	for i, oid := range c.order {
		if oid == id {
			c.order = append(c.order[:i], c.order[i+1:]...)
			break
		}
	}
	return nil
}

func (c *Collection) filter(match func(model.Document) bool) ([]model.Document, error) {
	c.mu.RLock()
	defer c.mu.RUnlock()

	out := make([]model.Document, 0, len(c.order))
	for _, id := range c.order {
		doc := c.docs[id]
		if match(doc) {
			out = append(out, copyDoc(doc))
		}
	}
	return out, nil
}

// clone deep-copies a client document through its JSON form, so stored
// values never alias caller memory and have the same shapes as decoded
// request bodies.
func clone(doc model.Document) (model.Document, error) {
	raw, err := json.Marshal(doc)
	if err != nil {
		return nil, err
	}
	out := model.Document{}
	if err := json.Unmarshal(raw, &out); err != nil {
		return nil, err
	}
	return out, nil
}

func copyDoc(doc model.Document) model.Document {
	out := make(model.Document, len(doc))
	for k, v := range doc {
		out[k] = v
	}
	return out
}
