package httpapi

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/rs/zerolog"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"server/internal/domain"
	"server/internal/http/handlers"
)

type stubCampaigns struct {
	docs map[string]domain.Document
}

func (s *stubCampaigns) Insert(_ context.Context, doc domain.Document) (string, error) {
	id := primitive.NewObjectID().Hex()
	s.docs[id] = doc
	return id, nil
}

func (s *stubCampaigns) List(context.Context) ([]domain.Document, error) {
	var out []domain.Document
	for _, doc := range s.docs {
		out = append(out, doc)
	}
	return out, nil
}

func (s *stubCampaigns) FindByID(_ context.Context, id string) (domain.Document, error) {
	if _, err := primitive.ObjectIDFromHex(id); err != nil {
		return nil, domain.ErrInvalidID
	}
	doc, ok := s.docs[id]
	if !ok {
		return nil, domain.ErrNotFound
	}
	return doc, nil
}

func (s *stubCampaigns) UpdateByID(context.Context, string, domain.Document) error {
	return domain.ErrNotFound
}

func (s *stubCampaigns) DeleteByID(context.Context, string) error {
	return domain.ErrNotFound
}

func (s *stubCampaigns) AddDonation(context.Context, string, domain.DonationEntry) error {
	return domain.ErrNotFound
}

type stubUsers struct{}

func (stubUsers) Insert(_ context.Context, user *domain.User) (string, error) {
	return primitive.NewObjectID().Hex(), nil
}

func (stubUsers) FindByEmail(context.Context, string) (*domain.User, error) {
	return nil, domain.ErrNotFound
}

type stubDocs struct{}

func (stubDocs) Insert(context.Context, domain.Document) (string, error) {
	return primitive.NewObjectID().Hex(), nil
}

func (stubDocs) List(context.Context) ([]domain.Document, error) { return nil, nil }

func newTestRouter(campaigns *stubCampaigns) http.Handler {
	app := &handlers.App{
		Logger:        zerolog.Nop(),
		Users:         stubUsers{},
		Campaigns:     campaigns,
		UserDonations: stubDocs{},
		Comments:      stubDocs{},
		Testimonials:  stubDocs{},
		Volunteers:    stubDocs{},
		JWTSecret:     "test-secret",
	}
	return NewRouter(app, RouterConfig{Logger: zerolog.Nop(), JWTSecret: "test-secret"})
}

func TestRouterServesLiveness(t *testing.T) {
	router := newTestRouter(&stubCampaigns{docs: map[string]domain.Document{}})

	rr := httptest.NewRecorder()
	router.ServeHTTP(rr, httptest.NewRequest("GET", "/", nil))

	if rr.Code != 200 {
		t.Fatalf("unexpected status: got %d want 200", rr.Code)
	}
	if !strings.Contains(rr.Body.String(), "Server is running smoothly") {
		t.Fatalf("unexpected body: %s", rr.Body.String())
	}
}

func TestRouterResolvesPathParameters(t *testing.T) {
	campaigns := &stubCampaigns{docs: map[string]domain.Document{}}
	id := primitive.NewObjectID().Hex()
	campaigns.docs[id] = domain.Document{"title": "Flood Relief"}
	router := newTestRouter(campaigns)

	rr := httptest.NewRecorder()
	router.ServeHTTP(rr, httptest.NewRequest("GET", "/api/v1/single-donation/"+id, nil))

	if rr.Code != 200 {
		t.Fatalf("unexpected status: got %d want 200", rr.Code)
	}
	if !strings.Contains(rr.Body.String(), "Flood Relief") {
		t.Fatalf("unexpected body: %s", rr.Body.String())
	}
}

func TestRouterRejectsUnknownRoutesAndMethods(t *testing.T) {
	router := newTestRouter(&stubCampaigns{docs: map[string]domain.Document{}})

	rr := httptest.NewRecorder()
	router.ServeHTTP(rr, httptest.NewRequest("GET", "/api/v1/nope", nil))
	if rr.Code != 404 {
		t.Fatalf("unknown route status: got %d want 404", rr.Code)
	}

	rr = httptest.NewRecorder()
	router.ServeHTTP(rr, httptest.NewRequest("GET", "/api/v1/register", nil))
	if rr.Code != 405 {
		t.Fatalf("method mismatch status: got %d want 405", rr.Code)
	}
}

func TestRouterRejectsInvalidBearerToken(t *testing.T) {
	router := newTestRouter(&stubCampaigns{docs: map[string]domain.Document{}})

	req := httptest.NewRequest("GET", "/api/v1/donations", nil)
	req.Header.Set("Authorization", "Bearer bogus")
	rr := httptest.NewRecorder()
	router.ServeHTTP(rr, req)

	if rr.Code != 401 {
		t.Fatalf("unexpected status: got %d want 401", rr.Code)
	}
}
