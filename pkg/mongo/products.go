package mongo

import (
	"context"
	"errors"

	"go.mongodb.org/mongo-driver/v2/bson"
	"go.mongodb.org/mongo-driver/v2/mongo"
	"go.mongodb.org/mongo-driver/v2/mongo/options"

	"madhurfashion.in/storefront/pkg/catalog"
	"madhurfashion.in/storefront/pkg/models"
)

// ProductStore is the mongo-backed implementation of catalog.Store. Reads are
// ordered newest first; text search is a case-insensitive pattern match over
// name, description and tags.
type ProductStore struct {
	coll *mongo.Collection
}

func NewProductStore() *ProductStore {
	return &ProductStore{coll: GetCollection("products")}
}

var newestFirst = options.Find().SetSort(bson.D{{Key: "created_at", Value: -1}})

func (s *ProductStore) find(ctx context.Context, filter interface{}) ([]*models.Product, error) {
	cursor, err := s.coll.Find(ctx, filter, newestFirst)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	products := []*models.Product{}
	if err := cursor.All(ctx, &products); err != nil {
		return nil, err
	}
	return products, nil
}

func (s *ProductStore) All(ctx context.Context) ([]*models.Product, error) {
	return s.find(ctx, bson.D{})
}

func (s *ProductStore) ByCategory(ctx context.Context, category string) ([]*models.Product, error) {
	return s.find(ctx, bson.M{"category": category, "in_stock": true})
}

func (s *ProductStore) Search(ctx context.Context, term string) ([]*models.Product, error) {
	pattern := bson.M{"$regex": term, "$options": "i"}
	filter := bson.M{
		"in_stock": true,
		"$or": []bson.M{
			{"name": pattern},
			{"description": pattern},
			{"tags": pattern},
		},
	}
	return s.find(ctx, filter)
}

func (s *ProductStore) Get(ctx context.Context, id string) (*models.Product, error) {
	var product models.Product
	err := s.coll.FindOne(ctx, bson.M{"_id": id}).Decode(&product)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, catalog.ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &product, nil
}

func (s *ProductStore) Insert(ctx context.Context, product *models.Product) error {
	_, err := s.coll.InsertOne(ctx, product)
	return err
}

func (s *ProductStore) Update(ctx context.Context, id string, fields map[string]interface{}) (*models.Product, error) {
	update := bson.M{}
	for key, value := range fields {
		update[key] = value
	}

	opts := options.FindOneAndUpdate().SetReturnDocument(options.After)
	var updated models.Product
	err := s.coll.FindOneAndUpdate(ctx, bson.M{"_id": id}, bson.M{"$set": update}, opts).Decode(&updated)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, catalog.ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &updated, nil
}

func (s *ProductStore) Delete(ctx context.Context, id string) error {
	result, err := s.coll.DeleteOne(ctx, bson.M{"_id": id})
	if err != nil {
		return err
	}
	if result.DeletedCount == 0 {
		return catalog.ErrNotFound
	}
	return nil
}
