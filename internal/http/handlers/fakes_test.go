package handlers

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"server/internal/domain"
)

var errFakeStore = errors.New("store unavailable")

type fakeUsers struct {
	users     map[string]*domain.User
	findErr   error
	insertErr error
}

func newFakeUsers() *fakeUsers {
	return &fakeUsers{users: map[string]*domain.User{}}
}

func (f *fakeUsers) Insert(_ context.Context, user *domain.User) (string, error) {
	if f.insertErr != nil {
		return "", f.insertErr
	}
	user.ID = primitive.NewObjectID()
	f.users[user.Email] = user
	return user.ID.Hex(), nil
}

func (f *fakeUsers) FindByEmail(_ context.Context, email string) (*domain.User, error) {
	if f.findErr != nil {
		return nil, f.findErr
	}
	user, ok := f.users[email]
	if !ok {
		return nil, domain.ErrNotFound
	}
	return user, nil
}

type fakeCampaigns struct {
	docs     map[string]domain.Document
	storeErr error
}

func newFakeCampaigns() *fakeCampaigns {
	return &fakeCampaigns{docs: map[string]domain.Document{}}
}

func (f *fakeCampaigns) checkID(id string) error {
	if _, err := primitive.ObjectIDFromHex(id); err != nil {
		return domain.ErrInvalidID
	}
	return nil
}

func (f *fakeCampaigns) Insert(_ context.Context, doc domain.Document) (string, error) {
	if f.storeErr != nil {
		return "", f.storeErr
	}
	id := primitive.NewObjectID().Hex()
	f.docs[id] = doc
	return id, nil
}

func (f *fakeCampaigns) List(context.Context) ([]domain.Document, error) {
	if f.storeErr != nil {
		return nil, f.storeErr
	}
	var out []domain.Document
	for _, doc := range f.docs {
		out = append(out, doc)
	}
	return out, nil
}

func (f *fakeCampaigns) FindByID(_ context.Context, id string) (domain.Document, error) {
	if err := f.checkID(id); err != nil {
		return nil, err
	}
	doc, ok := f.docs[id]
	if !ok {
		return nil, domain.ErrNotFound
	}
	return doc, nil
}

func (f *fakeCampaigns) UpdateByID(_ context.Context, id string, fields domain.Document) error {
	if err := f.checkID(id); err != nil {
		return err
	}
	doc, ok := f.docs[id]
	if !ok {
		return domain.ErrNotFound
	}
	for k, v := range fields {
		doc[k] = v
	}
	return nil
}

func (f *fakeCampaigns) DeleteByID(_ context.Context, id string) error {
	if err := f.checkID(id); err != nil {
		return err
	}
	if _, ok := f.docs[id]; !ok {
		return domain.ErrNotFound
	}
	delete(f.docs, id)
	return nil
}

func (f *fakeCampaigns) AddDonation(_ context.Context, id string, entry domain.DonationEntry) error {
	if err := f.checkID(id); err != nil {
		return err
	}
	doc, ok := f.docs[id]
	if !ok {
		return domain.ErrNotFound
	}
	total, _ := doc[domain.FieldTotalDonationAmount].(float64)
	doc[domain.FieldTotalDonationAmount] = total + entry.DonationAmount
	entries, _ := doc[domain.FieldDonations].([]domain.DonationEntry)
	doc[domain.FieldDonations] = append(entries, entry)
	return nil
}

type fakeDocs struct {
	docs      []domain.Document
	insertErr error
	listErr   error
}

func (f *fakeDocs) Insert(_ context.Context, doc domain.Document) (string, error) {
	if f.insertErr != nil {
		return "", f.insertErr
	}
	f.docs = append(f.docs, doc)
	return primitive.NewObjectID().Hex(), nil
}

func (f *fakeDocs) List(context.Context) ([]domain.Document, error) {
	if f.listErr != nil {
		return nil, f.listErr
	}
	return f.docs, nil
}

func newTestApp() (*App, *fakeUsers, *fakeCampaigns) {
	users := newFakeUsers()
	campaigns := newFakeCampaigns()
	app := &App{
		Logger:        zerolog.Nop(),
		Users:         users,
		Campaigns:     campaigns,
		UserDonations: &fakeDocs{},
		Comments:      &fakeDocs{},
		Testimonials:  &fakeDocs{},
		Volunteers:    &fakeDocs{},
		JWTSecret:     "test-secret",
		TokenExpiry:   time.Hour,
	}
	return app, users, campaigns
}

func withURLParam(r *http.Request, key, value string) *http.Request {
	rctx := chi.NewRouteContext()
	rctx.URLParams.Add(key, value)
	return r.WithContext(context.WithValue(r.Context(), chi.RouteCtxKey, rctx))
}
