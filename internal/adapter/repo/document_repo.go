package repo

import (
	"context"
	"fmt"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"

	"server/internal/domain"
)

// DocumentRepositoryMongo implements domain.DocumentRepository for one
// free-form collection. The same type backs comments, testimonials,
// volunteer applications and user-donation records.
type DocumentRepositoryMongo struct {
	coll *mongo.Collection
}

// NewDocumentRepository creates a repo over the named collection.
func NewDocumentRepository(db *mongo.Database, collection string) *DocumentRepositoryMongo {
	return &DocumentRepositoryMongo{coll: db.Collection(collection)}
}

// Insert stores the document verbatim and returns the generated id.
func (r *DocumentRepositoryMongo) Insert(ctx context.Context, doc domain.Document) (string, error) {
	if doc == nil {
		doc = domain.Document{}
	}
	res, err := r.coll.InsertOne(ctx, doc)
	if err != nil {
		return "", fmt.Errorf("insert into %s: %w", r.coll.Name(), err)
	}
	return insertedID(res.InsertedID), nil
}

// List returns every document in the collection, unfiltered.
func (r *DocumentRepositoryMongo) List(ctx context.Context) ([]domain.Document, error) {
	cursor, err := r.coll.Find(ctx, bson.M{})
	if err != nil {
		return nil, fmt.Errorf("list %s: %w", r.coll.Name(), err)
	}
	var docs []domain.Document
	if err := cursor.All(ctx, &docs); err != nil {
		return nil, fmt.Errorf("decode %s: %w", r.coll.Name(), err)
	}
	return docs, nil
}
