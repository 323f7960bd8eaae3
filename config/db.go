// config/db.go
package config

import (
	"context"
	"log"
	"strings"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// ConnectDB establishes the MongoDB connection. A store that is unreachable at
// startup is logged but not fatal: the client dials lazily, so routes keep
// working and recover as soon as the store comes back. Only a malformed
// connection string is returned as an error.
func ConnectDB(cfg *Config) (*mongo.Client, error) {
	uri := cfg.ConnectionURI()
	log.Printf("Connecting to MongoDB at: %s", maskMongoURI(uri))

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	client, err := mongo.Connect(ctx, options.Client().ApplyURI(uri))
	if err != nil {
		return nil, err
	}

	if err := client.Ping(ctx, nil); err != nil {
		log.Printf("Warning: MongoDB not reachable yet: %v", err)
		go ensureCollectionsWhenReachable(client, cfg.DatabaseName())
		return client, nil
	}

	log.Println("Connected to MongoDB")

	EnsureCollections(client, cfg.DatabaseName())

	return client, nil
}

// ensureCollectionsWhenReachable keeps pinging until the store answers, then
// runs the collection and index setup. The unique slug index must exist
// before duplicate-slug writes can be detected, so a store that was down at
// startup still gets its indexes once it comes up.
func ensureCollectionsWhenReachable(client *mongo.Client, dbName string) {
	for {
		ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		err := client.Ping(ctx, nil)
		cancel()
		if err == nil {
			log.Println("Connected to MongoDB")
			EnsureCollections(client, dbName)
			return
		}
		time.Sleep(15 * time.Second)
	}
}

// EnsureCollections creates the collections and the indexes the handlers rely
// on. The unique slug index makes duplicate-slug detection atomic: a
// duplicate-key error from an insert or update is the conflict signal, with no
// separate check-then-insert window.
func EnsureCollections(client *mongo.Client, dbName string) {
	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	db := client.Database(dbName)

	for _, collName := range []string{"categories", "products", "deliverycharges", "adminsessions"} {
		db.CreateCollection(ctx, collName)
	}

	slugIndex := mongo.IndexModel{
		Keys:    bson.D{{Key: "slug", Value: 1}},
		Options: options.Index().SetUnique(true),
	}
	if _, err := db.Collection("categories").Indexes().CreateOne(ctx, slugIndex); err != nil {
		log.Printf("Error creating slug index: %v", err)
	}

	tokenIndex := mongo.IndexModel{
		Keys:    bson.D{{Key: "token", Value: 1}},
		Options: options.Index().SetUnique(true),
	}
	if _, err := db.Collection("adminsessions").Indexes().CreateOne(ctx, tokenIndex); err != nil {
		log.Printf("Error creating session token index: %v", err)
	}

	categorySlugIndex := mongo.IndexModel{
		Keys: bson.D{{Key: "category_slug", Value: 1}},
	}
	if _, err := db.Collection("products").Indexes().CreateOne(ctx, categorySlugIndex); err != nil {
		log.Printf("Error creating product category_slug index: %v", err)
	}

	log.Println("Database collections and indexes setup complete")
}

// maskMongoURI masks the password in a MongoDB URI for logging.
func maskMongoURI(uri string) string {
	if idx := strings.Index(uri, "@"); idx > 0 {
		if colonIdx := strings.LastIndex(uri[:idx], ":"); colonIdx > 0 {
			return uri[:colonIdx+1] + "***" + uri[idx:]
		}
	}
	return uri
}
