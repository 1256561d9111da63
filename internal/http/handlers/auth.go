package handlers

import (
	"errors"
	"net/http"

	"golang.org/x/crypto/bcrypt"

	"server/internal/domain"
	"server/internal/middleware"
)

// bcryptCost matches the work factor the deployed dataset was hashed with.
const bcryptCost = 10

type registerRequest struct {
	Name     string `json:"name"`
	Email    string `json:"email"`
	Password string `json:"password"`
}

type loginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// Register creates a new user unless the email is already taken.
func (a *App) Register(w http.ResponseWriter, r *http.Request) {
	var req registerRequest
	if err := decodeBody(r, &req); err != nil {
		a.fail(w, http.StatusBadRequest, "invalid request body")
		return
	}
	if req.Name == "" || req.Email == "" || req.Password == "" {
		a.fail(w, http.StatusBadRequest, "name, email and password are required")
		return
	}

	_, err := a.Users.FindByEmail(r.Context(), req.Email)
	switch {
	case err == nil:
		a.fail(w, http.StatusBadRequest, "User already exists")
		return
	case !errors.Is(err, domain.ErrNotFound):
		a.Logger.Error().Err(err).Msg("lookup user failed")
		a.fail(w, http.StatusInternalServerError, "Internal server error")
		return
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcryptCost)
	if err != nil {
		a.Logger.Error().Err(err).Msg("hash password failed")
		a.fail(w, http.StatusInternalServerError, "Internal server error")
		return
	}

	user := &domain.User{Name: req.Name, Email: req.Email, PasswordHash: string(hash)}
	if _, err := a.Users.Insert(r.Context(), user); err != nil {
		a.Logger.Error().Err(err).Msg("insert user failed")
		a.fail(w, http.StatusInternalServerError, "Internal server error")
		return
	}

	a.success(w, http.StatusCreated, "User registered successfully", nil)
}

// Login verifies credentials and issues a bearer token. Unknown emails and
// wrong passwords produce the identical response so callers cannot probe for
// registered accounts.
func (a *App) Login(w http.ResponseWriter, r *http.Request) {
	var req loginRequest
	if err := decodeBody(r, &req); err != nil {
		a.fail(w, http.StatusBadRequest, "invalid request body")
		return
	}
	if req.Email == "" || req.Password == "" {
		a.fail(w, http.StatusBadRequest, "email and password are required")
		return
	}

	user, err := a.Users.FindByEmail(r.Context(), req.Email)
	if errors.Is(err, domain.ErrNotFound) {
		a.fail(w, http.StatusUnauthorized, "Invalid email or password")
		return
	}
	if err != nil {
		a.Logger.Error().Err(err).Msg("lookup user failed")
		a.fail(w, http.StatusInternalServerError, "Internal server error")
		return
	}

	if bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(req.Password)) != nil {
		a.fail(w, http.StatusUnauthorized, "Invalid email or password")
		return
	}

	token, err := middleware.SignToken(a.JWTSecret, user.Email, user.Name, a.TokenExpiry)
	if err != nil {
		a.Logger.Error().Err(err).Msg("sign token failed")
		a.fail(w, http.StatusInternalServerError, "Internal server error")
		return
	}

	a.respond(w, http.StatusOK, envelope{Success: true, Message: "Login successful", Token: token})
}
