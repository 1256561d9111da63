package repo

import (
	"context"
	"errors"
	"fmt"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"

	"server/internal/domain"
)

// CampaignRepositoryMongo implements domain.CampaignRepository on the
// donations collection.
type CampaignRepositoryMongo struct {
	coll *mongo.Collection
}

// NewCampaignRepository creates a new campaign repo.
func NewCampaignRepository(db *mongo.Database) *CampaignRepositoryMongo {
	return &CampaignRepositoryMongo{coll: db.Collection(CollectionCampaigns)}
}

// Insert stores the document verbatim and returns the generated id.
func (r *CampaignRepositoryMongo) Insert(ctx context.Context, doc domain.Document) (string, error) {
	if doc == nil {
		doc = domain.Document{}
	}
	res, err := r.coll.InsertOne(ctx, doc)
	if err != nil {
		return "", fmt.Errorf("insert campaign: %w", err)
	}
	return insertedID(res.InsertedID), nil
}

// List returns every campaign document, unfiltered.
func (r *CampaignRepositoryMongo) List(ctx context.Context) ([]domain.Document, error) {
	cursor, err := r.coll.Find(ctx, bson.M{})
	if err != nil {
		return nil, fmt.Errorf("list campaigns: %w", err)
	}
	var docs []domain.Document
	if err := cursor.All(ctx, &docs); err != nil {
		return nil, fmt.Errorf("decode campaigns: %w", err)
	}
	return docs, nil
}

// FindByID returns one campaign, or domain.ErrNotFound when absent.
func (r *CampaignRepositoryMongo) FindByID(ctx context.Context, id string) (domain.Document, error) {
	oid, err := objectID(id)
	if err != nil {
		return nil, err
	}
	var doc domain.Document
	err = r.coll.FindOne(ctx, bson.M{"_id": oid}).Decode(&doc)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, domain.ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("find campaign: %w", err)
	}
	return doc, nil
}

// UpdateByID merges the given fields into the campaign document. Returns
// domain.ErrNotFound when no document matched.
func (r *CampaignRepositoryMongo) UpdateByID(ctx context.Context, id string, fields domain.Document) error {
	oid, err := objectID(id)
	if err != nil {
		return err
	}
	res, err := r.coll.UpdateOne(ctx, bson.M{"_id": oid}, bson.M{"$set": fields})
	if err != nil {
		return fmt.Errorf("update campaign: %w", err)
	}
	if res.MatchedCount == 0 {
		return domain.ErrNotFound
	}
	return nil
}

// DeleteByID removes the campaign. Returns domain.ErrNotFound when no
// document matched.
func (r *CampaignRepositoryMongo) DeleteByID(ctx context.Context, id string) error {
	oid, err := objectID(id)
	if err != nil {
		return err
	}
	res, err := r.coll.DeleteOne(ctx, bson.M{"_id": oid})
	if err != nil {
		return fmt.Errorf("delete campaign: %w", err)
	}
	if res.DeletedCount == 0 {
		return domain.ErrNotFound
	}
	return nil
}

// AddDonation increments the campaign's running total and appends the entry
// in one update, so concurrent donations to the same campaign cannot lose
// each other's totals.
func (r *CampaignRepositoryMongo) AddDonation(ctx context.Context, id string, entry domain.DonationEntry) error {
	oid, err := objectID(id)
	if err != nil {
		return err
	}
	update := bson.M{
		"$inc":  bson.M{domain.FieldTotalDonationAmount: entry.DonationAmount},
		"$push": bson.M{domain.FieldDonations: entry},
	}
	res, err := r.coll.UpdateOne(ctx, bson.M{"_id": oid}, update)
	if err != nil {
		return fmt.Errorf("record donation: %w", err)
	}
	if res.MatchedCount == 0 {
		return domain.ErrNotFound
	}
	return nil
}
