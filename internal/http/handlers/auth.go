package handlers

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/samber/lo"

	apierrors "github.com/pribylovaa/agro-community/internal/errors"
	"github.com/pribylovaa/agro-community/internal/models"
	"github.com/pribylovaa/agro-community/internal/service"
)

func (h *Handlers) Register(w http.ResponseWriter, r *http.Request) {
	var in registerRequest
	if err := h.decodeValid(r, &in); err != nil {
		apierrors.WriteError(w, r, err)
		return
	}

	session, err := h.svc.Register(r.Context(), service.RegisterInput{
		Name:     in.Name,
		Phone:    in.Phone,
		Password: in.Password,
		Role:     models.Role(in.Role),
		Location: in.Location,
		Avatar:   in.Avatar,
	})
	if err != nil {
		apierrors.WriteError(w, r, err)
		return
	}

	writeJSON(w, http.StatusCreated, session)
}

func (h *Handlers) Login(w http.ResponseWriter, r *http.Request) {
	var in loginRequest
	if err := decodeStrict(r, &in); err != nil {
		apierrors.WriteError(w, r, invalidArgument(err))
		return
	}

	session, err := h.svc.Login(r.Context(), in.Phone, in.Password)
	if err != nil {
		apierrors.WriteError(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, session)
}

func (h *Handlers) UpdateProfile(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	if id == "" {
		apierrors.WriteError(w, r, service.ErrInvalidArgument)
		return
	}

	var in profileRequest
	if err := h.decodeValid(r, &in); err != nil {
		apierrors.WriteError(w, r, err)
		return
	}

	patch := models.UserPatch{
		Name:     in.Name,
		Location: in.Location,
		Avatar:   in.Avatar,
	}
	if in.Role != nil {
		patch.Role = lo.ToPtr(models.Role(*in.Role))
	}

	user, err := h.svc.UpdateProfile(r.Context(), id, patch)
	if err != nil {
		apierrors.WriteError(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, user)
}
