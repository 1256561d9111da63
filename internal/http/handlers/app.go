package handlers

import (
	"encoding/json"
	"net/http"
	"time"

	"github.com/rs/zerolog"

	"server/internal/domain"
)

// App carries the dependencies shared by every handler. Repositories are
// interfaces so tests can run handlers against in-memory fakes.
type App struct {
	Logger zerolog.Logger

	Users         domain.UserRepository
	Campaigns     domain.CampaignRepository
	UserDonations domain.DocumentRepository
	Comments      domain.DocumentRepository
	Testimonials  domain.DocumentRepository
	Volunteers    domain.DocumentRepository

	JWTSecret   string
	TokenExpiry time.Duration

	// Now is the clock used for server-assigned timestamps; nil means time.Now.
	Now func() time.Time
}

func (a *App) now() time.Time {
	if a.Now != nil {
		return a.Now()
	}
	return time.Now()
}

// envelope is the uniform response wrapper. Token is set only by login.
type envelope struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
	Token   string `json:"token,omitempty"`
	Data    any    `json:"data,omitempty"`
}

func (a *App) respond(w http.ResponseWriter, code int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	_ = json.NewEncoder(w).Encode(v)
}

func (a *App) success(w http.ResponseWriter, code int, message string, data any) {
	a.respond(w, code, envelope{Success: true, Message: message, Data: data})
}

func (a *App) fail(w http.ResponseWriter, code int, message string) {
	a.respond(w, code, envelope{Success: false, Message: message})
}

func decodeBody(r *http.Request, v any) error {
	return json.NewDecoder(r.Body).Decode(v)
}
