// Package repo provides MongoDB-backed implementations of the domain
// repository interfaces. One shared mongo.Database handle is injected at
// startup; every method takes the request context so cancelled requests
// abort their store calls.
package repo

import (
	"fmt"

	"go.mongodb.org/mongo-driver/bson/primitive"

	"server/internal/domain"
)

// Collection names, as established by the deployed dataset.
const (
	CollectionUsers         = "users"
	CollectionCampaigns     = "donations"
	CollectionUserDonations = "user-donation"
	CollectionComments      = "user-comments"
	CollectionTestimonials  = "testimonials"
	CollectionVolunteers    = "volunteers"
)

func objectID(id string) (primitive.ObjectID, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return primitive.NilObjectID, fmt.Errorf("%w: %q", domain.ErrInvalidID, id)
	}
	return oid, nil
}

func insertedID(v any) string {
	if oid, ok := v.(primitive.ObjectID); ok {
		return oid.Hex()
	}
	return fmt.Sprint(v)
}
