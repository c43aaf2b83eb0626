package handlers

import (
	"errors"
	"net/http"

	"courier-agent/internal/apperr"
	"courier-agent/internal/domain"
	"courier-agent/internal/logx"
)

// DeliveryHandler serves the registry views and status transitions.
type DeliveryHandler struct {
	view   deliveryView
	engine transitionEngine
	logger logx.Logger
}

// NewDeliveryHandler wires the registry and the transition engine into
// HTTP handlers.
func NewDeliveryHandler(view deliveryView, engine transitionEngine, logger logx.Logger) *DeliveryHandler {
	return &DeliveryHandler{view: view, engine: engine, logger: logger}
}

// List handles GET /deliveries?status=&q=.
func (h *DeliveryHandler) List(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()

	var statusFilter *domain.Status
	if s := q.Get("status"); s != "" {
		st := domain.Status(s)
		if !st.Valid() {
			writeError(h.logger, w, r, http.StatusBadRequest, "unknown status")
			return
		}
		statusFilter = &st
	}

	deliveries := h.view.Search(q.Get("q"))
	if statusFilter != nil {
		filtered := deliveries[:0:0]
		for _, d := range deliveries {
			if d.Status == *statusFilter {
				filtered = append(filtered, d)
			}
		}
		deliveries = filtered
	}

	writeJSON(h.logger, w, r, http.StatusOK, map[string]any{"data": deliveriesToDTO(deliveries)})
}

// Counts handles GET /deliveries/counts.
func (h *DeliveryHandler) Counts(w http.ResponseWriter, r *http.Request) {
	c := h.view.CountsByStatus()
	writeJSON(h.logger, w, r, http.StatusOK, countsDTO{
		Preparing:      c.Preparing,
		OutForDelivery: c.OutForDelivery,
		Delivered:      c.Delivered,
	})
}

// Transition handles POST /deliveries/{id}/transition.
func (h *DeliveryHandler) Transition(w http.ResponseWriter, r *http.Request) {
	id, err := idFromURL(r, "id")
	if err != nil {
		writeError(h.logger, w, r, http.StatusBadRequest, "invalid id")
		return
	}

	var req transitionRequest
	if ok := decodeJSON(h.logger, w, r, &req); !ok {
		return
	}

	updated, err := h.engine.RequestTransition(r.Context(), id, domain.Status(req.Status), req.Notes)
	switch {
	case err == nil:
		writeJSON(h.logger, w, r, http.StatusOK, deliveryToDTO(updated))
	case errors.Is(err, apperr.ErrNotFound):
		writeError(h.logger, w, r, http.StatusNotFound, "delivery not found")
	case errors.Is(err, apperr.ErrInvalidTransition):
		writeError(h.logger, w, r, http.StatusConflict, "transition not allowed")
	case errors.Is(err, apperr.ErrTransitionInFlight):
		writeError(h.logger, w, r, http.StatusConflict, "transition already in progress")
	case errors.Is(err, apperr.ErrUnauthorized):
		writeError(h.logger, w, r, http.StatusUnauthorized, "not authenticated")
	case apperr.IsServerRejected(err), errors.Is(err, apperr.ErrTransport):
		writeError(h.logger, w, r, http.StatusBadGateway, "delivery service rejected the update")
	default:
		writeError(h.logger, w, r, http.StatusInternalServerError, "internal error")
	}
}
