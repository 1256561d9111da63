package domain

// Document is a schema-less record persisted verbatim. Campaigns, comments,
// testimonials, volunteer applications and user-donation records are all
// free-form documents identified by a store-generated id under "_id".
type Document map[string]any

// DonationEntry is one contribution appended to a campaign's donations array.
type DonationEntry struct {
	Name           string  `bson:"name" json:"name"`
	Email          string  `bson:"email" json:"email"`
	DonationAmount float64 `bson:"donationAmount" json:"donationAmount"`
}

// Campaign field names used by the donate operation. A campaign document is
// otherwise free-form.
const (
	FieldTotalDonationAmount = "totalDonationAmount"
	FieldDonations           = "donations"
)
