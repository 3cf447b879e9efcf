package handlers

import (
	"errors"
	"net/http"
	"strconv"

	"campus-delivery/internal/apperr"
	"campus-delivery/internal/logx"
)

// AssignmentHandler handles accept and claim requests for deliveries.
type AssignmentHandler struct {
	usecase assignmentUsecase
	orders  orderLister
	logger  logx.Logger
}

// NewAssignmentHandler creates a new AssignmentHandler.
func NewAssignmentHandler(logger logx.Logger, uc assignmentUsecase, orders orderLister) *AssignmentHandler {
	return &AssignmentHandler{usecase: uc, orders: orders, logger: logger}
}

// AcceptOrder handles POST /orders/{order_id}/accept. The agent competes
// for the order; losers of the race get 409.
func (h *AssignmentHandler) AcceptOrder(w http.ResponseWriter, r *http.Request) {
	orderID, err := idFromURL(r, "order_id")
	if err != nil {
		writeError(h.logger, w, r, http.StatusBadRequest, "invalid order id")
		return
	}
	agentID, err := idFromQuery(r, "agentId")
	if err != nil {
		writeError(h.logger, w, r, http.StatusBadRequest, "invalid agent id")
		return
	}

	res, err := h.usecase.Accept(r.Context(), orderID, agentID)
	switch {
	case err == nil:
		writeJSON(h.logger, w, r, http.StatusOK, acceptResultToResponse(res))
	case errors.Is(err, apperr.ErrInvalid):
		writeError(h.logger, w, r, http.StatusBadRequest, "invalid input")
	case errors.Is(err, apperr.ErrConflict):
		writeError(h.logger, w, r, http.StatusConflict, "order already taken")
	case errors.Is(err, apperr.ErrNotFound):
		writeError(h.logger, w, r, http.StatusNotFound, "order or agent not found")
	default:
		writeError(h.logger, w, r, http.StatusInternalServerError, "internal error")
	}
}

// ClaimDelivery handles POST /delivery/{id}/accept. Only pending offers
// can be claimed.
func (h *AssignmentHandler) ClaimDelivery(w http.ResponseWriter, r *http.Request) {
	deliveryID, err := idFromURL(r, "id")
	if err != nil {
		writeError(h.logger, w, r, http.StatusBadRequest, "invalid delivery id")
		return
	}

	var req claimDeliveryRequest
	if ok := decodeJSON(h.logger, w, r, &req); !ok {
		return
	}
	if req.AgentID <= 0 {
		writeError(h.logger, w, r, http.StatusBadRequest, "invalid agent id")
		return
	}

	asg, err := h.usecase.Claim(r.Context(), deliveryID, req.AgentID)
	switch {
	case err == nil:
		writeJSON(h.logger, w, r, http.StatusOK, assignmentToClaimResponse(asg))
	case errors.Is(err, apperr.ErrInvalid):
		writeError(h.logger, w, r, http.StatusBadRequest, "delivery is not pending")
	case errors.Is(err, apperr.ErrConflict):
		writeError(h.logger, w, r, http.StatusBadRequest, "delivery offer expired")
	case errors.Is(err, apperr.ErrNotFound):
		writeError(h.logger, w, r, http.StatusNotFound, "delivery not found")
	default:
		writeError(h.logger, w, r, http.StatusInternalServerError, "internal error")
	}
}

// AvailableOrders handles GET /orders/available. Agents browse orders still
// open for claiming, oldest first.
func (h *AssignmentHandler) AvailableOrders(w http.ResponseWriter, r *http.Request) {
	limit := 0
	if raw := r.URL.Query().Get("limit"); raw != "" {
		var err error
		limit, err = strconv.Atoi(raw)
		if err != nil || limit < 0 {
			writeError(h.logger, w, r, http.StatusBadRequest, "invalid limit")
			return
		}
	}

	list, err := h.orders.ListAccepting(r.Context(), limit)
	if err != nil {
		writeError(h.logger, w, r, http.StatusInternalServerError, "internal error")
		return
	}
	writeJSON(h.logger, w, r, http.StatusOK, ordersToAvailableResponse(list))
}
