package auth

import (
	"context"
	"errors"

	"go.mongodb.org/mongo-driver/v2/bson"
	"go.mongodb.org/mongo-driver/v2/mongo"
)

const collUsers = "users"

// MongoCredentialStorage reads login material from the users collection.
type MongoCredentialStorage struct {
	db *mongo.Database
}

func NewMongoCredentialStorage(db *mongo.Database) *MongoCredentialStorage {
	return &MongoCredentialStorage{db: db}
}

func (s *MongoCredentialStorage) CredentialByEmail(ctx context.Context, email string) (*Credential, error) {
	var cred Credential
	err := s.db.Collection(collUsers).FindOne(ctx, bson.M{"email": email}).Decode(&cred)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, ErrUserNotFound
		}
		return nil, err
	}
	return &cred, nil
}
