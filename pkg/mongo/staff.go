package mongo

import (
	"context"
	"errors"

	"go.mongodb.org/mongo-driver/v2/bson"
	"go.mongodb.org/mongo-driver/v2/mongo"

	"madhurfashion.in/storefront/pkg/auth"
	"madhurfashion.in/storefront/pkg/models"
)

// StaffStore is the mongo-backed implementation of auth.CredentialStore.
type StaffStore struct {
	coll *mongo.Collection
}

func NewStaffStore() *StaffStore {
	return &StaffStore{coll: GetCollection("staff")}
}

func (s *StaffStore) FindByEmail(ctx context.Context, email string) (*models.Staff, error) {
	var staff models.Staff
	err := s.coll.FindOne(ctx, bson.M{"email": email}).Decode(&staff)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, auth.ErrStaffNotFound
	}
	if err != nil {
		return nil, err
	}
	return &staff, nil
}

func (s *StaffStore) List(ctx context.Context) ([]*models.Staff, error) {
	cursor, err := s.coll.Find(ctx, bson.D{}, newestFirst)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	staff := []*models.Staff{}
	if err := cursor.All(ctx, &staff); err != nil {
		return nil, err
	}
	return staff, nil
}

func (s *StaffStore) Save(ctx context.Context, staff *models.Staff) error {
	_, err := s.coll.InsertOne(ctx, staff)
	if mongo.IsDuplicateKeyError(err) {
		return auth.ErrEmailTaken
	}
	return err
}

func (s *StaffStore) Remove(ctx context.Context, id string) error {
	result, err := s.coll.DeleteOne(ctx, bson.M{"_id": id})
	if err != nil {
		return err
	}
	if result.DeletedCount == 0 {
		return auth.ErrStaffNotFound
	}
	return nil
}
