package mongo

import (
	"context"
	"log"

	"go.mongodb.org/mongo-driver/v2/bson"
	"go.mongodb.org/mongo-driver/v2/mongo"
	"go.mongodb.org/mongo-driver/v2/mongo/options"

	"madhurfashion.in/storefront/pkg/global"
)

type IndexConfig struct {
	CollectionName string
	IndexModel     mongo.IndexModel
}

var requiredIndexes = []IndexConfig{
	// Products: category filter for the grid
	{
		CollectionName: "products",
		IndexModel: mongo.IndexModel{
			Keys:    bson.D{{Key: "category", Value: 1}},
			Options: options.Index().SetName("idx_category"),
		},
	},
	// Products: newest-first listing order
	{
		CollectionName: "products",
		IndexModel: mongo.IndexModel{
			Keys:    bson.D{{Key: "created_at", Value: -1}},
			Options: options.Index().SetName("idx_created_at"),
		},
	},
	// Products: in-stock filtering for search and recommendations
	{
		CollectionName: "products",
		IndexModel: mongo.IndexModel{
			Keys: bson.D{
				{Key: "in_stock", Value: 1},
				{Key: "stock_count", Value: 1},
			},
			Options: options.Index().SetName("idx_in_stock"),
		},
	},
	// Staff: one account per email
	{
		CollectionName: "staff",
		IndexModel: mongo.IndexModel{
			Keys:    bson.D{{Key: "email", Value: 1}},
			Options: options.Index().SetUnique(true).SetName("idx_staff_email_unique"),
		},
	},
}

func EnsureIndexes(ctx context.Context, db *mongo.Database) error {
	for _, config := range requiredIndexes {
		collection := db.Collection(config.CollectionName)
		name, err := collection.Indexes().CreateOne(ctx, config.IndexModel)
		if err != nil {
			return err
		}
		log.Printf("Ensured index %s on %s", name, config.CollectionName)
	}
	return nil
}

func EnsureIndexesOnStartup() {
	ctx, cancel := global.GetDefaultTimer()
	defer cancel()

	if err := EnsureIndexes(ctx, GetDatabase()); err != nil {
		log.Fatalf("Failed to ensure indexes: %v", err)
	}
}
