package mongo

import (
	"context"
	"fmt"

	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.mongodb.org/mongo-driver/mongo/readpref"
)

// Connection owns the process-wide client of the document database.
type Connection struct {
	client *mongo.Client
	db     *mongo.Database
}

// NewConnection connects to uri and verifies the deployment is reachable.
func NewConnection(ctx context.Context, uri, database string) (*Connection, error) {
	serverAPI := options.ServerAPI(options.ServerAPIVersion1).
		SetStrict(true).
		SetDeprecationErrors(true)

	opts := options.Client().
		ApplyURI(uri).
		SetServerAPIOptions(serverAPI)

	client, err := mongo.Connect(ctx, opts)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to mongodb: %w", err)
	}

	if err := client.Ping(ctx, readpref.Primary()); err != nil {
		_ = client.Disconnect(context.Background())
		return nil, fmt.Errorf("failed to ping mongodb: %w", err)
	}

	return &Connection{
		client: client,
		db:     client.Database(database),
	}, nil
}

// Collection returns a store over the named collection.
func (c *Connection) Collection(name string) *Collection {
	opts := options.Collection().SetBSONOptions(&options.BSONOptions{DefaultDocumentM: true})
	return newCollection(c.db.Collection(name, opts))
}

// Ping verifies the primary is reachable.
func (c *Connection) Ping(ctx context.Context) error {
	if c.client == nil {
		return fmt.Errorf("mongodb client is nil")
	}
	return c.client.Ping(ctx, readpref.Primary())
}

// Close disconnects the client.
func (c *Connection) Close(ctx context.Context) error {
	if c.client == nil {
		return nil
	}
	return c.client.Disconnect(ctx)
}
