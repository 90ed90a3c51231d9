package db

import (
	"context"
	"sync"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.mongodb.org/mongo-driver/mongo/readpref"

	"la-blog/config"
	"la-blog/internal/logger"
)

var (
	clientOnce sync.Once
	client     *mongo.Client
	db         *mongo.Database
)

// Init initializes the global Mongo client and database using config values.
//
// Connection failure is deliberately non-fatal: the client keeps retrying in
// the background and the process keeps serving traffic. Only a malformed URI
// returns an error.
func Init(ctx context.Context) error {
	var initErr error
	clientOnce.Do(func() {
		cfg := config.GetConfig()
		uri := cfg.Mongo.URI
		if uri == "" {
			// Fallback for local docker-compose default
			uri = "mongodb://localhost:27017"
		}
		dbName := cfg.Mongo.Database
		if dbName == "" {
			dbName = "la_blog"
		}

		cl, err := mongo.NewClient(options.Client().ApplyURI(uri))
		if err != nil {
			initErr = err
			return
		}
		ctx, cancel := context.WithTimeout(ctx, 10*time.Second)
		defer cancel()
		if err := cl.Connect(ctx); err != nil {
			initErr = err
			return
		}
		client = cl
		db = client.Database(dbName)

		// Ping to verify connection; a failure here only degrades, the
		// driver reconnects once Mongo comes back.
		if err := cl.Ping(ctx, readpref.Primary()); err != nil {
			logger.Log.Warnf("mongodb unreachable, continuing degraded: %v", err)
			return
		}

		if err := ensureIndexes(ctx, db); err != nil {
			logger.Log.Warnf("failed to ensure mongodb indexes: %v", err)
			return
		}
		logger.Log.Info("MongoDB connected and indexes ensured")
	})
	return initErr
}

func Client() *mongo.Client     { return client }
func Database() *mongo.Database { return db }

// Ping checks connectivity for the health endpoint.
func Ping(ctx context.Context) error {
	if db == nil {
		return mongo.ErrClientDisconnected
	}
	return db.RunCommand(ctx, bson.D{{Key: "ping", Value: 1}}).Err()
}

func ensureIndexes(ctx context.Context, d *mongo.Database) error {
	// blogs: unique index on slug
	{
		mi := mongo.IndexModel{
			Keys:    bson.D{{Key: "slug", Value: 1}},
			Options: options.Index().SetName("uniq_slug").SetUnique(true),
		}
		if _, err := d.Collection("blogs").Indexes().CreateOne(ctx, mi); err != nil {
			return err
		}
	}

	// blogs: created_at desc for the default listing order
	{
		if _, err := d.Collection("blogs").Indexes().CreateOne(ctx, mongo.IndexModel{
			Keys:    bson.D{{Key: "created_at", Value: -1}},
			Options: options.Index().SetName("idx_created_at_desc"),
		}); err != nil {
			return err
		}
	}

	// blogs: tags for the tag filter and distinct-tags query
	{
		if _, err := d.Collection("blogs").Indexes().CreateOne(ctx, mongo.IndexModel{
			Keys:    bson.D{{Key: "tags", Value: 1}},
			Options: options.Index().SetName("idx_tags"),
		}); err != nil {
			return err
		}
	}
	return nil
}
