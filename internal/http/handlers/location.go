package handlers

import (
	"net/http"
	"time"

	"courier-agent/internal/domain"
	"courier-agent/internal/logx"
)

// PositionHandler accepts device position pushes from the UI.
type PositionHandler struct {
	sink   positionSink
	logger logx.Logger
	now    func() time.Time
}

// NewPositionHandler wires the position observer into an HTTP handler.
func NewPositionHandler(sink positionSink, logger logx.Logger) *PositionHandler {
	return &PositionHandler{sink: sink, logger: logger, now: time.Now}
}

// Push handles POST /position. The sample is handed off asynchronously;
// the response never waits for the upstream send.
func (h *PositionHandler) Push(w http.ResponseWriter, r *http.Request) {
	var req positionRequest
	if ok := decodeJSON(h.logger, w, r, &req); !ok {
		return
	}
	if req.Latitude < -90 || req.Latitude > 90 || req.Longitude < -180 || req.Longitude > 180 {
		writeError(h.logger, w, r, http.StatusBadRequest, "coordinates out of range")
		return
	}

	h.sink.Push(domain.Position{
		Latitude:  req.Latitude,
		Longitude: req.Longitude,
		Note:      req.Note,
		Timestamp: h.now(),
	})
	w.WriteHeader(http.StatusAccepted)
}
