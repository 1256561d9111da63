package handlers

import (
	"net/http"

	"server/internal/domain"
)

// The comments, testimonials, volunteers and user-donation endpoints share
// one shape: insert the body verbatim, or list the whole collection.

func (a *App) createDocument(w http.ResponseWriter, r *http.Request, repo domain.DocumentRepository, message string, stampTime bool) {
	var doc domain.Document
	if err := decodeBody(r, &doc); err != nil {
		a.fail(w, http.StatusBadRequest, "invalid request body")
		return
	}
	if doc == nil {
		doc = domain.Document{}
	}
	if stampTime {
		doc["time"] = a.now().UnixMilli()
	}
	if _, err := repo.Insert(r.Context(), doc); err != nil {
		a.Logger.Error().Err(err).Msg("insert document failed")
		a.fail(w, http.StatusInternalServerError, "Internal server error")
		return
	}
	a.success(w, http.StatusCreated, message, nil)
}

func (a *App) listDocuments(w http.ResponseWriter, r *http.Request, repo domain.DocumentRepository, message string) {
	docs, err := repo.List(r.Context())
	if err != nil {
		a.Logger.Error().Err(err).Msg("list documents failed")
		a.fail(w, http.StatusInternalServerError, "Internal server error")
		return
	}
	if docs == nil {
		docs = []domain.Document{}
	}
	a.success(w, http.StatusOK, message, docs)
}

// CommentCreate inserts a comment with a server-assigned creation time in
// epoch milliseconds; any client-supplied "time" field is overwritten.
func (a *App) CommentCreate(w http.ResponseWriter, r *http.Request) {
	a.createDocument(w, r, a.Comments, "Comment Posted", true)
}

// CommentList returns every comment.
func (a *App) CommentList(w http.ResponseWriter, r *http.Request) {
	a.listDocuments(w, r, a.Comments, "Comments are fetched successfully")
}

// TestimonialCreate inserts a testimonial verbatim.
func (a *App) TestimonialCreate(w http.ResponseWriter, r *http.Request) {
	a.createDocument(w, r, a.Testimonials, "Testimonial Posted", false)
}

// TestimonialList returns every testimonial.
func (a *App) TestimonialList(w http.ResponseWriter, r *http.Request) {
	a.listDocuments(w, r, a.Testimonials, "Testimonials are fetched successfully")
}

// VolunteerCreate inserts a volunteer application verbatim.
func (a *App) VolunteerCreate(w http.ResponseWriter, r *http.Request) {
	a.createDocument(w, r, a.Volunteers, "Created Successfully", false)
}

// VolunteerList returns every volunteer application.
func (a *App) VolunteerList(w http.ResponseWriter, r *http.Request) {
	a.listDocuments(w, r, a.Volunteers, "Volunteers are fetched successfully")
}

// UserDonationList returns every per-user donation record. The collection
// has no write endpoint; it is populated outside this API.
func (a *App) UserDonationList(w http.ResponseWriter, r *http.Request) {
	a.listDocuments(w, r, a.UserDonations, "Successfully fetched")
}
