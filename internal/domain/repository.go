package domain

import "context"

// UserRepository defines access methods for registered accounts.
type UserRepository interface {
	Insert(ctx context.Context, user *User) (string, error)
	FindByEmail(ctx context.Context, email string) (*User, error)
}

// CampaignRepository handles donation campaign persistence.
//
// AddDonation must increment the running total and append the entry in a
// single store operation so that concurrent donations to the same campaign
// cannot lose updates.
type CampaignRepository interface {
	Insert(ctx context.Context, doc Document) (string, error)
	List(ctx context.Context) ([]Document, error)
	FindByID(ctx context.Context, id string) (Document, error)
	UpdateByID(ctx context.Context, id string, fields Document) error
	DeleteByID(ctx context.Context, id string) error
	AddDonation(ctx context.Context, id string, entry DonationEntry) error
}

// DocumentRepository is the create/list contract shared by the free-form
// collections (comments, testimonials, volunteers, user-donation records).
type DocumentRepository interface {
	Insert(ctx context.Context, doc Document) (string, error)
	List(ctx context.Context) ([]Document, error)
}
