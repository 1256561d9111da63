package repo

import (
	"context"
	"errors"
	"fmt"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"

	"server/internal/domain"
)

// UserRepositoryMongo implements domain.UserRepository on the users collection.
type UserRepositoryMongo struct {
	coll *mongo.Collection
}

// NewUserRepository creates a new user repo.
func NewUserRepository(db *mongo.Database) *UserRepositoryMongo {
	return &UserRepositoryMongo{coll: db.Collection(CollectionUsers)}
}

// Insert stores a new user and returns the generated id.
func (r *UserRepositoryMongo) Insert(ctx context.Context, user *domain.User) (string, error) {
	res, err := r.coll.InsertOne(ctx, user)
	if err != nil {
		return "", fmt.Errorf("insert user: %w", err)
	}
	return insertedID(res.InsertedID), nil
}

// FindByEmail returns the user registered under the given email, or
// domain.ErrNotFound when no such user exists.
func (r *UserRepositoryMongo) FindByEmail(ctx context.Context, email string) (*domain.User, error) {
	var user domain.User
	err := r.coll.FindOne(ctx, bson.M{"email": email}).Decode(&user)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, domain.ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("find user by email: %w", err)
	}
	return &user, nil
}
