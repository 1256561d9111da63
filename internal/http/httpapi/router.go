// Package httpapi assembles the middleware chain and the route table. Routes
// are registered in one place so the (method, path) → handler mapping can be
// read and tested without a running listener.
package httpapi

import (
	stdhttp "net/http"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"
	"github.com/rs/zerolog"

	"server/internal/http/handlers"
	"server/internal/middleware"
)

// RouterConfig carries the middleware dependencies.
type RouterConfig struct {
	Logger         zerolog.Logger
	JWTSecret      string
	AllowedOrigins []string
	Country        middleware.CountryLookup
}

// NewRouter builds the HTTP handler for the service.
func NewRouter(app *handlers.App, cfg RouterConfig) stdhttp.Handler {
	r := chi.NewRouter()
	r.Use(chimw.RealIP)
	r.Use(middleware.RequestID)
	r.Use(middleware.CORS(cfg.AllowedOrigins))
	r.Use(middleware.Auth(cfg.JWTSecret))
	r.Use(middleware.Logger(cfg.Logger, cfg.Country))
	r.Use(chimw.Recoverer)

	r.Get("/", app.Health)

	r.Route("/api/v1", func(r chi.Router) {
		r.Post("/register", app.Register)
		r.Post("/login", app.Login)

		r.Post("/create-donation", app.CampaignCreate)
		r.Get("/donations", app.CampaignList)
		r.Get("/single-donation/{id}", app.CampaignGet)
		r.Post("/edit-donation/{id}", app.CampaignEdit)
		r.Delete("/delete-donation/{id}", app.CampaignDelete)

		r.Get("/user-donation", app.UserDonationList)
		r.Put("/user-donation/{id}", app.DonationRecord)

		r.Post("/create-comments", app.CommentCreate)
		r.Get("/get-comments", app.CommentList)

		r.Post("/create-testimonials", app.TestimonialCreate)
		r.Get("/get-testimonials", app.TestimonialList)

		r.Post("/create-volunteers", app.VolunteerCreate)
		r.Get("/get-volunteers", app.VolunteerList)
	})

	return r
}
