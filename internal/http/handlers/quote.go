package handlers

import (
	"errors"
	"net/http"

	"campus-delivery/internal/apperr"
	"campus-delivery/internal/domain"
	"campus-delivery/internal/logx"
)

// QuoteHandler answers fee and geocoding quote requests.
type QuoteHandler struct {
	usecase quoteUsecase
	logger  logx.Logger
}

// NewQuoteHandler creates a new QuoteHandler.
func NewQuoteHandler(logger logx.Logger, uc quoteUsecase) *QuoteHandler {
	return &QuoteHandler{usecase: uc, logger: logger}
}

// CalculateFee handles POST /delivery/calculate-fee.
func (h *QuoteHandler) CalculateFee(w http.ResponseWriter, r *http.Request) {
	var req calculateFeeRequest
	if ok := decodeJSON(h.logger, w, r, &req); !ok {
		return
	}

	fee, distance, err := h.usecase.Fee(r.Context(), domain.Coordinate{Lat: req.Lat, Lng: req.Lng})
	switch {
	case err == nil:
		writeJSON(h.logger, w, r, http.StatusOK, calculateFeeResponse{
			DeliveryFee: fee.StringFixed(2),
			DistanceKm:  distance,
		})
	case errors.Is(err, apperr.ErrInvalid):
		writeError(h.logger, w, r, http.StatusBadRequest, "invalid coordinates")
	default:
		writeError(h.logger, w, r, http.StatusInternalServerError, "routing provider failure")
	}
}

// Geocode handles POST /delivery/geocode.
func (h *QuoteHandler) Geocode(w http.ResponseWriter, r *http.Request) {
	var req geocodeRequest
	if ok := decodeJSON(h.logger, w, r, &req); !ok {
		return
	}

	coord, err := h.usecase.Resolve(r.Context(), req.Address)
	switch {
	case err == nil:
		writeJSON(h.logger, w, r, http.StatusOK, geocodeResponse{
			Lat:     coord.Lat,
			Lng:     coord.Lng,
			Address: req.Address,
		})
	case errors.Is(err, apperr.ErrInvalid):
		writeError(h.logger, w, r, http.StatusBadRequest, "address is required")
	case errors.Is(err, apperr.ErrGeocode):
		writeError(h.logger, w, r, http.StatusBadRequest, "address could not be resolved")
	default:
		writeError(h.logger, w, r, http.StatusInternalServerError, "internal error")
	}
}
