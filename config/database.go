package config

import (
	"context"
	"log"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

var (
	mongoClient *mongo.Client
	mongoDB     *mongo.Database
)

// InitDatabase connects to MongoDB using configuration values, verifies the
// connection, and makes sure the posts indexes exist.
func InitDatabase() *mongo.Database {
	if mongoDB != nil {
		return mongoDB
	}

	c := Get()
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	client, err := mongo.Connect(ctx, options.Client().ApplyURI(c.MongoURI))
	if err != nil {
		log.Fatalf("failed to connect to mongodb: %v", err)
	}
	// Ping at boot so network/auth problems surface now, not on the first query.
	if err := client.Ping(ctx, nil); err != nil {
		log.Fatalf("mongodb ping failed: %v", err)
	}

	db := client.Database(c.DBName)
	if err := ensurePostIndexes(ctx, db.Collection("posts")); err != nil {
		log.Fatalf("failed to create posts indexes: %v", err)
	}

	mongoClient = client
	mongoDB = db
	return db
}

// ensurePostIndexes declares the tags index and the weighted text index the
// search endpoint relies on. CreateMany is a no-op for indexes that already
// exist with the same definition.
func ensurePostIndexes(ctx context.Context, posts *mongo.Collection) error {
	_, err := posts.Indexes().CreateMany(ctx, []mongo.IndexModel{
		{
			Keys: bson.D{{Key: "tags", Value: 1}},
		},
		{
			Keys: bson.D{
				{Key: "title", Value: "text"},
				{Key: "content", Value: "text"},
			},
			Options: options.Index().
				SetName("post_text_search").
				SetWeights(bson.D{
					{Key: "title", Value: 3},
					{Key: "content", Value: 1},
				}),
		},
	})
	return err
}

// CloseDatabase disconnects the client; called on shutdown.
func CloseDatabase() {
	if mongoClient == nil {
		return
	}
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := mongoClient.Disconnect(ctx); err != nil {
		log.Printf("mongodb disconnect error: %v", err)
	}
	mongoClient = nil
	mongoDB = nil
}
