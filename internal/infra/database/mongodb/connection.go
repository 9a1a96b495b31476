// Package mongodb stores leads, news and result sessions in MongoDB.
package mongodb

import (
	"context"
	"errors"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/xavierca1/admissions-api/internal/entity"
)

const (
	leadsCollection   = "leads"
	newsCollection    = "news"
	resultsCollection = "result_sessions"
)

// Connect dials MongoDB and pings the primary before returning.
func Connect(ctx context.Context, uri, database string) (*mongo.Client, *mongo.Database, error) {
	connectCtx, cancel := context.WithTimeout(ctx, 10*time.Second)
	defer cancel()

	client, err := mongo.Connect(connectCtx, options.Client().ApplyURI(uri))
	if err != nil {
		return nil, nil, fmt.Errorf("mongo connect: %w", err)
	}
	if err := client.Ping(connectCtx, nil); err != nil {
		_ = client.Disconnect(context.Background())
		return nil, nil, fmt.Errorf("mongo ping: %w", err)
	}
	return client, client.Database(database), nil
}

// EnsureIndexes creates the date and status indexes on leads and unique slug indexes
// on news and results.
func EnsureIndexes(ctx context.Context, db *mongo.Database) error {
	if _, err := db.Collection(leadsCollection).Indexes().CreateMany(ctx, []mongo.IndexModel{
		{Keys: bson.D{{Key: "date", Value: -1}}},
		{Keys: bson.D{{Key: "status", Value: 1}}},
	}); err != nil {
		return fmt.Errorf("leads index: %w", err)
	}

	for _, name := range []string{newsCollection, resultsCollection} {
		if _, err := db.Collection(name).Indexes().CreateOne(ctx, mongo.IndexModel{
			Keys:    bson.D{{Key: "slug", Value: 1}},
			Options: options.Index().SetUnique(true),
		}); err != nil {
			return fmt.Errorf("%s slug index: %w", name, err)
		}
	}
	return nil
}

func mapError(err error, notFound error) error {
	switch {
	case err == nil:
		return nil
	case errors.Is(err, mongo.ErrNoDocuments):
		return notFound
	case mongo.IsDuplicateKeyError(err):
		return fmt.Errorf("%w: %v", entity.ErrDuplicateKey, err)
	}
	return err
}

// slugFilter matches slug on any document other than excludeID.
func slugFilter(slug, excludeID string) bson.M {
	filter := bson.M{"slug": slug}
	if excludeID != "" {
		filter["_id"] = bson.M{"$ne": excludeID}
	}
	return filter
}
