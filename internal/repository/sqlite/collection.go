package sqlite

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"sort"
	"strings"

	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/scic-labs/taskboard-server/internal/model"
)

var _ model.DocumentStore = (*Collection)(nil)

// Collection stores documents of one collection as JSON text rows.
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
	const query = `INSERT INTO documents (collection, id, body) VALUES (?, ?, ?)`
	if _, err := c.db.ExecContext(ctx, query, c.name, id.Hex(), string(body)); err != nil {
		return primitive.NilObjectID, fmt.Errorf("failed to insert into %s: %w", c.name, err)
	}

	return id, nil
}

func (c *Collection) FindAll(ctx context.Context) ([]model.Document, error) {
	const query = `SELECT id, body FROM documents WHERE collection = ? ORDER BY seq`

	return c.query(ctx, query, c.name)
}

func (c *Collection) FindByID(ctx context.Context, id primitive.ObjectID) (model.Document, error) {
	const query = `SELECT body FROM documents WHERE collection = ? AND id = ?`

	var body []byte
	err := c.db.QueryRowContext(ctx, query, c.name, id.Hex()).Scan(&body)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, model.ErrNotFound
		}
		return nil, fmt.Errorf("failed to find %s in %s: %w", id.Hex(), c.name, err)
	}

	return decodeDocument(id.Hex(), body)
}

// FindByField returns documents whose field equals value, or holds an array containing it.
func (c *Collection) FindByField(ctx context.Context, field string, value any) ([]model.Document, error) {
	want, err := json.Marshal(value)
	if err != nil {
		return nil, fmt.Errorf("failed to encode filter: %w", err)
	}

	const query = `
		SELECT id, body FROM documents
		WHERE collection = ? AND (
			json_extract(body, ?) = json_extract(?, '$')
			OR (json_type(body, ?) = 'array' AND EXISTS (
				SELECT 1 FROM json_each(body, ?) WHERE json_each.value = json_extract(?, '$')
			))
		)
		ORDER BY seq`

	path := jsonPath(field)
	return c.query(ctx, query, c.name, path, string(want), path, path, string(want))
}

func (c *Collection) UpdateByID(ctx context.Context, id primitive.ObjectID, set model.Document) error {
	patch := set.WithoutID()

	keys := make([]string, 0, len(patch))
	for k := range patch {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	expr := "body"
	args := make([]any, 0, 2*len(keys)+2)
	if len(keys) > 0 {
		var b strings.Builder
		b.WriteString("json_set(body")
		for _, k := range keys {
			v, err := json.Marshal(patch[k])
			if err != nil {
				return fmt.Errorf("failed to encode field %s: %w", k, err)
			}
			b.WriteString(", ?, json(?)")
			args = append(args, jsonPath(k), string(v))
		}
		b.WriteString(")")
		expr = b.String()
	}
	args = append(args, c.name, id.Hex())

	query := `UPDATE documents SET body = ` + expr + ` WHERE collection = ? AND id = ?`
	res, err := c.db.ExecContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("failed to update %s in %s: %w", id.Hex(), c.name, err)
	}

	n, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to update %s in %s: %w", id.Hex(), c.name, err)
	}
	if n == 0 {
		return model.ErrNotFound
	}

	return nil
}

func (c *Collection) DeleteByID(ctx context.Context, id primitive.ObjectID) error {
	const query = `DELETE FROM documents WHERE collection = ? AND id = ?`
	res, err := c.db.ExecContext(ctx, query, c.name, id.Hex())
	if err != nil {
		return fmt.Errorf("failed to delete %s from %s: %w", id.Hex(), c.name, err)
	}

	n, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to delete %s from %s: %w", id.Hex(), c.name, err)
	}
	if n == 0 {
		return model.ErrNotFound
	}

	return nil
}

func (c *Collection) query(ctx context.Context, query string, args ...any) ([]model.Document, error) {
	rows, err := c.db.QueryContext(ctx, query, args...)
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

// jsonPath addresses a top-level key of a JSON object.
func jsonPath(field string) string {
	return `$."` + field + `"`
}

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
