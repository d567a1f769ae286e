package postgres

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/scic-labs/taskboard-server/internal/model"
)

var _ model.DocumentStore = (*Collection)(nil)

// Collection stores documents of one collection as JSONB rows.
type Collection struct {
	db   *Connection
	name string
}

// NewCollection returns a store over the named collection of db.
func NewCollection(db *Connection, name string) *Collection {
	return &Collection{
		db:   db,
		name: name,
	}
}

func (c *Collection) Insert(ctx context.Context, doc model.Document) (primitive.ObjectID, error) {
	body, err := json.Marshal(doc.WithoutID())
	if err != nil {
		return primitive.NilObjectID, fmt.Errorf("failed to encode document: %w", err)
	}

	id := primitive.NewObjectID()
	const query = `INSERT INTO documents (collection, id, body) VALUES ($1, $2, $3::jsonb)`
	if _, err := c.db.Exec(ctx, query, c.name, id.Hex(), string(body)); err != nil {
		return primitive.NilObjectID, fmt.Errorf("failed to insert into %s: %w", c.name, err)
	}

	return id, nil
}

func (c *Collection) FindAll(ctx context.Context) ([]model.Document, error) {
	const query = `
		SELECT id, body FROM documents
		WHERE collection = $1
		ORDER BY created_at ASC, id ASC`

	return c.query(ctx, query, c.name)
}

func (c *Collection) FindByID(ctx context.Context, id primitive.ObjectID) (model.Document, error) {
	const query = `SELECT body FROM documents WHERE collection = $1 AND id = $2`

	var body []byte
	err := c.db.QueryRow(ctx, query, c.name, id.Hex()).Scan(&body)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, model.ErrNotFound
		}
		return nil, fmt.Errorf("failed to find %s in %s: %w", id.Hex(), c.name, err)
	}

	return decodeDocument(id.Hex(), body)
}

// FindByField returns documents whose field equals value, or holds an array containing it.
func (c *Collection) FindByField(ctx context.Context, field string, value any) ([]model.Document, error) {
	equal, err := json.Marshal(map[string]any{field: value})
	if err != nil {
		return nil, fmt.Errorf("failed to encode filter: %w", err)
	}
	element, err := json.Marshal(map[string]any{field: []any{value}})
	if err != nil {
		return nil, fmt.Errorf("failed to encode filter: %w", err)
	}

	const query = `
		SELECT id, body FROM documents
		WHERE collection = $1 AND (body @> $2::jsonb OR body @> $3::jsonb)
		ORDER BY created_at ASC, id ASC`

	return c.query(ctx, query, c.name, string(equal), string(element))
}

func (c *Collection) UpdateByID(ctx context.Context, id primitive.ObjectID, set model.Document) error {
	patch, err := json.Marshal(set.WithoutID())
	if err != nil {
		return fmt.Errorf("failed to encode update: %w", err)
	}

	const query = `UPDATE documents SET body = body || $3::jsonb WHERE collection = $1 AND id = $2`
	cmd, err := c.db.Exec(ctx, query, c.name, id.Hex(), string(patch))
	if err != nil {
		return fmt.Errorf("failed to update %s in %s: %w", id.Hex(), c.name, err)
	}
	if cmd.RowsAffected() == 0 {
		return model.ErrNotFound
	}

	return nil
}

func (c *Collection) DeleteByID(ctx context.Context, id primitive.ObjectID) error {
	const query = `DELETE FROM documents WHERE collection = $1 AND id = $2`
	cmd, err := c.db.Exec(ctx, query, c.name, id.Hex())
	if err != nil {
		return fmt.Errorf("failed to delete %s from %s: %w", id.Hex(), c.name, err)
	}
	if cmd.RowsAffected() == 0 {
		return model.ErrNotFound
	}

	return nil
}

func (c *Collection) query(ctx context.Context, query string, args ...any) ([]model.Document, error) {
	rows, err := c.db.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to query %s: %w", c.name, err)
	}
	defer rows.Close()

	docs := make([]model.Document, 0)
	for rows.Next() {
		var (
			id   string
			body []byte
		)
		if err := rows.Scan(&id, &body); err != nil {
			return nil, fmt.Errorf("failed to scan %s: %w", c.name, err)
		}
		doc, err := decodeDocument(id, body)
		if err != nil {
			return nil, err
		}
		docs = append(docs, doc)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to read %s: %w", c.name, err)
	}

	return docs, nil
}

// decodeDocument rebuilds a stored document with its identifier.
func decodeDocument(hexID string, body []byte) (model.Document, error) {
	id, err := primitive.ObjectIDFromHex(hexID)
	if err != nil {
		return nil, fmt.Errorf("corrupt document id %q: %w", hexID, err)
	}

	doc := model.Document{}
	if err := json.Unmarshal(body, &doc); err != nil {
		return nil, fmt.Errorf("corrupt document %s: %w", hexID, err)
	}
	doc[model.IDField] = id

	return doc, nil
}
