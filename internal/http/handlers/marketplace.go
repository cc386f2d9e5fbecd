package handlers

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/samber/lo"

	apierrors "github.com/pribylovaa/agro-community/internal/errors"
	"github.com/pribylovaa/agro-community/internal/models"
	"github.com/pribylovaa/agro-community/internal/service"
)

func (h *Handlers) CreateListing(w http.ResponseWriter, r *http.Request) {
	var in listingRequest
	if err := h.decodeValid(r, &in); err != nil {
		apierrors.WriteError(w, r, err)
		return
	}

	listing, err := h.svc.CreateListing(r.Context(), service.ListingInput{
		User:     in.User,
		Name:     in.Name,
		Qty:      in.Qty,
		Price:    in.Price,
		Icon:     in.Icon,
		Color:    in.Color,
		Contact:  in.Contact,
		Notes:    in.Notes,
		ImageURL: lo.FromPtr(in.ImageURL),
		SoldOut:  in.SoldOut,
	}, in.ShareToFeed)
	if err != nil {
		apierrors.WriteError(w, r, err)
		return
	}

	writeJSON(w, http.StatusCreated, listing)
}

func (h *Handlers) ListListings(w http.ResponseWriter, r *http.Request) {
	listings, err := h.svc.ListListings(r.Context())
	if err != nil {
		apierrors.WriteError(w, r, err)
		return
	}

	if listings == nil {
		listings = []models.Listing{}
	}

	writeJSON(w, http.StatusOK, listings)
}

// UpdateListing — частичное обновление; shareToFeed при обновлении игнорируется.
func (h *Handlers) UpdateListing(w http.ResponseWriter, r *http.Request) {
	var in listingPatchRequest
	if err := h.decodeValid(r, &in); err != nil {
		apierrors.WriteError(w, r, err)
		return
	}

	patch := models.ListingPatch{
		Name:     in.Name,
		Qty:      in.Qty,
		Price:    in.Price,
		Icon:     in.Icon,
		Color:    in.Color,
		Contact:  in.Contact,
		Notes:    in.Notes,
		ImageURL: in.ImageURL,
		SoldOut:  in.SoldOut,
	}

	requester := requesterFrom(r, lo.FromPtr(in.User), lo.FromPtr(in.UserID))

	listing, err := h.svc.UpdateListing(r.Context(), chi.URLParam(r, "id"), requester, patch)
	if err != nil {
		apierrors.WriteError(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, listing)
}

func (h *Handlers) DeleteListing(w http.ResponseWriter, r *http.Request) {
	var in ownerRequest
	if err := decodeOptional(r, &in); err != nil {
		apierrors.WriteError(w, r, invalidArgument(err))
		return
	}

	err := h.svc.DeleteListing(r.Context(), chi.URLParam(r, "id"), requesterFrom(r, in.User, in.UserID))
	if err != nil {
		apierrors.WriteError(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, messageResponse{Message: "Crop deleted successfully"})
}
