package handlers

import (
	"errors"
	"math"
	"net/http"

	"github.com/go-chi/chi/v5"

	"server/internal/domain"
)

// CampaignCreate inserts the request body verbatim as a new campaign.
func (a *App) CampaignCreate(w http.ResponseWriter, r *http.Request) {
	var doc domain.Document
	if err := decodeBody(r, &doc); err != nil {
		a.fail(w, http.StatusBadRequest, "invalid request body")
		return
	}
	if _, err := a.Campaigns.Insert(r.Context(), doc); err != nil {
		a.Logger.Error().Err(err).Msg("insert campaign failed")
		a.fail(w, http.StatusInternalServerError, "Internal server error")
		return
	}
	a.success(w, http.StatusCreated, "Post Created Successfully", nil)
}

// CampaignList returns every campaign document.
func (a *App) CampaignList(w http.ResponseWriter, r *http.Request) {
	docs, err := a.Campaigns.List(r.Context())
	if err != nil {
		a.Logger.Error().Err(err).Msg("list campaigns failed")
		a.fail(w, http.StatusInternalServerError, "Internal server error")
		return
	}
	if docs == nil {
		docs = []domain.Document{}
	}
	a.success(w, http.StatusOK, "Successfully fetched", docs)
}

// CampaignGet returns one campaign by id.
func (a *App) CampaignGet(w http.ResponseWriter, r *http.Request) {
	doc, err := a.Campaigns.FindByID(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		a.campaignErr(w, err, "fetch campaign failed")
		return
	}
	a.success(w, http.StatusOK, "Successfully fetched One", doc)
}

// CampaignEdit merges the request body fields into an existing campaign.
func (a *App) CampaignEdit(w http.ResponseWriter, r *http.Request) {
	var fields domain.Document
	if err := decodeBody(r, &fields); err != nil {
		a.fail(w, http.StatusBadRequest, "invalid request body")
		return
	}
	if len(fields) == 0 {
		a.fail(w, http.StatusBadRequest, "no fields to update")
		return
	}
	if err := a.Campaigns.UpdateByID(r.Context(), chi.URLParam(r, "id"), fields); err != nil {
		a.campaignErr(w, err, "update campaign failed")
		return
	}
	a.success(w, http.StatusOK, "Successfully Updated", nil)
}

// CampaignDelete removes one campaign by id.
func (a *App) CampaignDelete(w http.ResponseWriter, r *http.Request) {
	if err := a.Campaigns.DeleteByID(r.Context(), chi.URLParam(r, "id")); err != nil {
		a.campaignErr(w, err, "delete campaign failed")
		return
	}
	a.success(w, http.StatusOK, "Successfully deleted", nil)
}

type donateRequest struct {
	Name           string   `json:"name"`
	Email          string   `json:"email"`
	DonationAmount *float64 `json:"donationAmount"`
}

// DonationRecord adds a contribution to a campaign: one atomic update
// increments the running total and appends the {name, email, donationAmount}
// entry. A missing or non-positive amount is rejected outright rather than
// being folded into the stored total.
func (a *App) DonationRecord(w http.ResponseWriter, r *http.Request) {
	var req donateRequest
	if err := decodeBody(r, &req); err != nil {
		a.fail(w, http.StatusBadRequest, "invalid request body")
		return
	}
	if req.Name == "" || req.Email == "" {
		a.fail(w, http.StatusBadRequest, "name and email are required")
		return
	}
	if req.DonationAmount == nil || *req.DonationAmount <= 0 ||
		math.IsNaN(*req.DonationAmount) || math.IsInf(*req.DonationAmount, 0) {
		a.fail(w, http.StatusBadRequest, "donationAmount must be a positive number")
		return
	}

	entry := domain.DonationEntry{Name: req.Name, Email: req.Email, DonationAmount: *req.DonationAmount}
	if err := a.Campaigns.AddDonation(r.Context(), chi.URLParam(r, "id"), entry); err != nil {
		a.campaignErr(w, err, "record donation failed")
		return
	}
	a.success(w, http.StatusCreated, "Donated Successfully", nil)
}

func (a *App) campaignErr(w http.ResponseWriter, err error, logMsg string) {
	switch {
	case errors.Is(err, domain.ErrInvalidID):
		a.fail(w, http.StatusBadRequest, "invalid campaign id")
	case errors.Is(err, domain.ErrNotFound):
		a.fail(w, http.StatusNotFound, "Campaign not found")
	default:
		a.Logger.Error().Err(err).Msg(logMsg)
		a.fail(w, http.StatusInternalServerError, "Internal server error")
	}
}
