package handlers

import (
	"errors"
	"net/http"
	"strconv"

	"campus-delivery/internal/apperr"
	"campus-delivery/internal/logx"
)

// ProfileHandler serves agent profile endpoints.
type ProfileHandler struct {
	usecase profileUsecase
	logger  logx.Logger
}

// NewProfileHandler creates a new ProfileHandler.
func NewProfileHandler(logger logx.Logger, uc profileUsecase) *ProfileHandler {
	return &ProfileHandler{usecase: uc, logger: logger}
}

// ToggleStatus handles POST /profile/{agent_id}/toggle-status.
func (h *ProfileHandler) ToggleStatus(w http.ResponseWriter, r *http.Request) {
	agentID, err := idFromURL(r, "agent_id")
	if err != nil {
		writeError(h.logger, w, r, http.StatusBadRequest, "invalid agent id")
		return
	}

	online, err := h.usecase.ToggleStatus(r.Context(), agentID)
	switch {
	case err == nil:
		writeJSON(h.logger, w, r, http.StatusOK, toggleStatusResponse{Online: online})
	case errors.Is(err, apperr.ErrNotFound):
		writeError(h.logger, w, r, http.StatusNotFound, "profile not found")
	case errors.Is(err, apperr.ErrInvalid):
		writeError(h.logger, w, r, http.StatusBadRequest, "invalid agent id")
	default:
		writeError(h.logger, w, r, http.StatusInternalServerError, "internal error")
	}
}

// Dashboard handles GET /profile/{agent_id}/dashboard.
func (h *ProfileHandler) Dashboard(w http.ResponseWriter, r *http.Request) {
	agentID, err := idFromURL(r, "agent_id")
	if err != nil {
		writeError(h.logger, w, r, http.StatusBadRequest, "invalid agent id")
		return
	}

	d, err := h.usecase.Dashboard(r.Context(), agentID)
	switch {
	case err == nil:
		writeJSON(h.logger, w, r, http.StatusOK, dashboardToResponse(d))
	case errors.Is(err, apperr.ErrNotFound):
		writeError(h.logger, w, r, http.StatusNotFound, "profile not found")
	case errors.Is(err, apperr.ErrInvalid):
		writeError(h.logger, w, r, http.StatusBadRequest, "invalid agent id")
	default:
		writeError(h.logger, w, r, http.StatusInternalServerError, "internal error")
	}
}

// Earnings handles GET /profile/{agent_id}/earnings.
func (h *ProfileHandler) Earnings(w http.ResponseWriter, r *http.Request) {
	agentID, err := idFromURL(r, "agent_id")
	if err != nil {
		writeError(h.logger, w, r, http.StatusBadRequest, "invalid agent id")
		return
	}

	limit := 0
	if raw := r.URL.Query().Get("limit"); raw != "" {
		limit, err = strconv.Atoi(raw)
		if err != nil || limit < 0 {
			writeError(h.logger, w, r, http.StatusBadRequest, "invalid limit")
			return
		}
	}

	entries, err := h.usecase.Earnings(r.Context(), agentID, limit)
	switch {
	case err == nil:
		writeJSON(h.logger, w, r, http.StatusOK, earningsToResponse(entries))
	case errors.Is(err, apperr.ErrInvalid):
		writeError(h.logger, w, r, http.StatusBadRequest, "invalid agent id")
	default:
		writeError(h.logger, w, r, http.StatusInternalServerError, "internal error")
	}
}
