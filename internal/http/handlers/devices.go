package handlers

import (
	"net/http"

	apierrors "github.com/pribylovaa/agro-community/internal/errors"
	"github.com/pribylovaa/agro-community/internal/models"
)

func (h *Handlers) DeviceStatus(w http.ResponseWriter, r *http.Request) {
	device, err := h.svc.DeviceStatus(r.Context(), requesterFrom(r))
	if err != nil {
		apierrors.WriteError(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, device)
}

func (h *Handlers) TogglePump(w http.ResponseWriter, r *http.Request) {
	var in deviceRequest
	if err := decodeOptional(r, &in); err != nil {
		apierrors.WriteError(w, r, invalidArgument(err))
		return
	}

	device, err := h.svc.TogglePump(r.Context(), requesterFrom(r, in.User, in.UserID))
	if err != nil {
		apierrors.WriteError(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, device)
}

// DeviceData — приём телеметрии (уровень воды, состояние насоса).
func (h *Handlers) DeviceData(w http.ResponseWriter, r *http.Request) {
	var in deviceRequest
	if err := decodeOptional(r, &in); err != nil {
		apierrors.WriteError(w, r, invalidArgument(err))
		return
	}

	if err := h.validate.Struct(&in); err != nil {
		apierrors.WriteError(w, r, invalidArgument(err))
		return
	}

	device, err := h.svc.UpdateDevice(r.Context(), requesterFrom(r, in.User, in.UserID), models.DevicePatch{
		WaterLevel:    in.WaterLevel,
		IsPumpRunning: in.IsPumpRunning,
	})
	if err != nil {
		apierrors.WriteError(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, device)
}
