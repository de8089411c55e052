// Package repository provides the MongoDB data access layer for the packboard service.
package repository

import (
	"context"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// MongoConfig holds MongoDB connection pool configuration.
type MongoConfig struct {
	// MaxPoolSize is the maximum number of connections in the pool.
	MaxPoolSize uint64
	// MinPoolSize is the minimum number of connections to keep in the pool.
	MinPoolSize uint64
	// MaxConnIdleTime is how long a connection can remain idle before being closed.
	MaxConnIdleTime time.Duration
	// ConnectTimeout is the timeout for establishing a connection.
	ConnectTimeout time.Duration
	// ServerSelectionTimeout is how long to wait for server selection.
	ServerSelectionTimeout time.Duration
	// SocketTimeout is the timeout for socket read/write operations.
	SocketTimeout time.Duration
	// EnableCompression enables wire protocol compression.
	EnableCompression bool
}

// DefaultMongoConfig returns production-oriented MongoDB configuration.
func DefaultMongoConfig() MongoConfig {
	return MongoConfig{
		MaxPoolSize:            50,
		MinPoolSize:            10,
		MaxConnIdleTime:        10 * time.Minute,
		ConnectTimeout:         10 * time.Second,
		ServerSelectionTimeout: 5 * time.Second,
		SocketTimeout:          30 * time.Second,
		EnableCompression:      true,
	}
}

// MongoDB provides MongoDB client and database access.
type MongoDB struct {
	Client     *mongo.Client
	Database   *mongo.Database
	Customers  *mongo.Collection
	Products   *mongo.Collection
	Orders     *mongo.Collection
	Selections *mongo.Collection
	Settings   *mongo.Collection
	Events     *mongo.Collection
}

// NewMongoDB creates a new MongoDB connection with default configuration.
func NewMongoDB(uri, databaseName string) (*MongoDB, error) {
	return NewMongoDBWithConfig(uri, databaseName, DefaultMongoConfig())
}

// NewMongoDBWithConfig creates a new MongoDB connection with custom configuration.
func NewMongoDBWithConfig(uri, databaseName string, cfg MongoConfig) (*MongoDB, error) {
	ctx, cancel := context.WithTimeout(context.Background(), cfg.ConnectTimeout)
	defer cancel()

	clientOptions := options.Client().
		ApplyURI(uri).
		SetMaxPoolSize(cfg.MaxPoolSize).
		SetMinPoolSize(cfg.MinPoolSize).
		SetMaxConnIdleTime(cfg.MaxConnIdleTime).
		SetConnectTimeout(cfg.ConnectTimeout).
		SetServerSelectionTimeout(cfg.ServerSelectionTimeout).
		SetSocketTimeout(cfg.SocketTimeout).
		SetRetryWrites(true).
		SetRetryReads(true)

	if cfg.EnableCompression {
		clientOptions.SetCompressors([]string{"zstd", "snappy", "zlib"})
	}

	client, err := mongo.Connect(ctx, clientOptions)
	if err != nil {
		return nil, err
	}

	if err := client.Ping(ctx, nil); err != nil {
		return nil, err
	}

	db := client.Database(databaseName)
	mongoDB := &MongoDB{
		Client:     client,
		Database:   db,
		Customers:  db.Collection("customers"),
		Products:   db.Collection("products"),
		Orders:     db.Collection("orders"),
		Selections: db.Collection("selections"),
		Settings:   db.Collection("settings"),
		Events:     db.Collection("events"),
	}

	if err := mongoDB.createIndexes(ctx); err != nil {
		return nil, err
	}

	return mongoDB, nil
}

// createIndexes creates the indexes the board queries depend on.
func (m *MongoDB) createIndexes(ctx context.Context) error {
	// Orders are always fetched by delivery date + status.
	orderIndex := mongo.IndexModel{
		Keys: bson.D{{Key: "delivery_date", Value: 1}, {Key: "status", Value: 1}},
	}
	if _, err := m.Orders.Indexes().CreateOne(ctx, orderIndex); err != nil {
		return err
	}

	customerIndex := mongo.IndexModel{
		Keys:    map[string]interface{}{"customer_id": 1},
		Options: options.Index().SetUnique(false),
	}
	_, _ = m.Orders.Indexes().CreateOne(ctx, customerIndex)

	productNameIndex := mongo.IndexModel{
		Keys:    map[string]interface{}{"name": 1},
		Options: options.Index().SetUnique(true),
	}
	_, _ = m.Products.Indexes().CreateOne(ctx, productNameIndex)

	customerNameIndex := mongo.IndexModel{
		Keys: map[string]interface{}{"name": 1},
	}
	_, _ = m.Customers.Indexes().CreateOne(ctx, customerNameIndex)

	eventDateIndex := mongo.IndexModel{
		Keys: bson.D{{Key: "delivery_date", Value: 1}, {Key: "timestamp", Value: -1}},
	}
	_, _ = m.Events.Indexes().CreateOne(ctx, eventDateIndex)

	return nil
}

// SetEventsTTL updates the TTL index on the events collection so packing
// audit events age out automatically.
func (m *MongoDB) SetEventsTTL(ctx context.Context, ttlDays int) error {
	_, _ = m.Events.Indexes().DropOne(ctx, "timestamp_1")

	ttlSeconds := int32(ttlDays * 24 * 60 * 60)
	ttlIndex := mongo.IndexModel{
		Keys:    map[string]interface{}{"timestamp": 1},
		Options: options.Index().SetExpireAfterSeconds(ttlSeconds),
	}
	_, err := m.Events.Indexes().CreateOne(ctx, ttlIndex)
	return err
}

// Ping verifies the MongoDB connection.
func (m *MongoDB) Ping(ctx context.Context) error {
	return m.Client.Ping(ctx, nil)
}

// Close disconnects the MongoDB client.
func (m *MongoDB) Close(ctx context.Context) error {
	return m.Client.Disconnect(ctx)
}
