package handlers

import (
	"net/http"

	apierrors "github.com/pribylovaa/agro-community/internal/errors"
)

func (h *Handlers) Detect(w http.ResponseWriter, r *http.Request) {
	var in detectRequest
	if err := decodeStrict(r, &in); err != nil {
		apierrors.WriteError(w, r, invalidArgument(err))
		return
	}

	report, err := h.svc.Detect(r.Context(), in.Image)
	if err != nil {
		apierrors.WriteError(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, report)
}

// Weather — текущая погода; lat/lon необязательны (по умолчанию — точка из конфигурации).
func (h *Handlers) Weather(w http.ResponseWriter, r *http.Request) {
	lat, err := queryFloat(r, "lat")
	if err != nil {
		apierrors.WriteError(w, r, err)
		return
	}

	lon, err := queryFloat(r, "lon")
	if err != nil {
		apierrors.WriteError(w, r, err)
		return
	}

	reading, err := h.svc.Weather(r.Context(), lat, lon)
	if err != nil {
		apierrors.WriteError(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, reading)
}

func (h *Handlers) UploadMedia(w http.ResponseWriter, r *http.Request) {
	var in mediaRequest
	if err := h.decodeValid(r, &in); err != nil {
		apierrors.WriteError(w, r, err)
		return
	}

	media, err := h.svc.UploadImage(r.Context(), in.Image)
	if err != nil {
		apierrors.WriteError(w, r, err)
		return
	}

	writeJSON(w, http.StatusCreated, media)
}
