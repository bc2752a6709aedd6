// Package mongodb owns the single MongoDB connection used for the lifetime
// of the process. Callers obtain the database handle from the Client and
// pass it to the repositories that need it.
package mongodb

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"go.mongodb.org/mongo-driver/v2/mongo"
	"go.mongodb.org/mongo-driver/v2/mongo/options"
	"go.mongodb.org/mongo-driver/v2/mongo/readpref"
)

// ErrNotConnected is returned when the database handle is requested before
// a successful Connect.
var ErrNotConnected = errors.New("mongodb: database not initialized")

// Client wraps the driver client together with the selected database.
type Client struct {
	client *mongo.Client
	db     *mongo.Database
}

// Connect dials uri, verifies the deployment with a ping and selects dbName.
// timeout bounds both server selection and the initial ping.
func Connect(ctx context.Context, uri, dbName string, timeout time.Duration) (*Client, error) {
	clientOpts := options.Client().
		ApplyURI(uri).
		SetServerSelectionTimeout(timeout)

	client, err := mongo.Connect(clientOpts)
	if err != nil {
		return nil, fmt.Errorf("mongodb: failed to connect (%s): %w", RedactURI(uri), err)
	}

	pingCtx, cancel := context.WithTimeout(ctx, timeout)
	defer cancel()
	if err := client.Ping(pingCtx, readpref.Primary()); err != nil {
		_ = client.Disconnect(context.Background())
		return nil, fmt.Errorf("mongodb: failed to ping (%s): %w", RedactURI(uri), err)
	}

	return &Client{client: client, db: client.Database(dbName)}, nil
}

// Database returns the connected database handle.
func (c *Client) Database() (*mongo.Database, error) {
	if c == nil || c.db == nil {
		return nil, ErrNotConnected
	}
	return c.db, nil
}

// Ping checks that the primary is still reachable.
func (c *Client) Ping(ctx context.Context) error {
	if c == nil || c.client == nil {
		return ErrNotConnected
	}
	return c.client.Ping(ctx, readpref.Primary())
}

// Close disconnects the underlying client. Calling Close on a nil or
// unconnected Client is a no-op.
func (c *Client) Close(ctx context.Context) error {
	if c == nil || c.client == nil {
		return nil
	}
	return c.client.Disconnect(ctx)
}

// RedactURI hides the credentials part of a connection string so it can be
// logged.
func RedactURI(uri string) string {
	const marker = "://"
	start := strings.Index(uri, marker)
	if start < 0 {
		return uri
	}
	start += len(marker)
	end := strings.Index(uri[start:], "@")
	if end < 0 {
		return uri
	}
	return uri[:start] + "***" + uri[start+end:]
}
