package domain

import "go.mongodb.org/mongo-driver/bson/primitive"

// User represents a registered account. The bcrypt hash is stored under the
// "password" field and is never serialized to JSON.
type User struct {
	ID           primitive.ObjectID `bson:"_id,omitempty" json:"id,omitempty"`
	Name         string             `bson:"name" json:"name"`
	Email        string             `bson:"email" json:"email"`
	PasswordHash string             `bson:"password" json:"-"`
}
