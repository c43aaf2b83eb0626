package handlers

import (
	"errors"
	"net/http"
	"strings"

	"courier-agent/internal/apperr"
	"courier-agent/internal/logx"
)

// SessionHandler serves login, logout and session introspection.
type SessionHandler struct {
	svc     sessionService
	tracker trackingStopper
	logger  logx.Logger
}

// NewSessionHandler wires the session store into HTTP handlers.
func NewSessionHandler(svc sessionService, tracker trackingStopper, logger logx.Logger) *SessionHandler {
	return &SessionHandler{svc: svc, tracker: tracker, logger: logger}
}

// Login handles POST /session/login.
func (h *SessionHandler) Login(w http.ResponseWriter, r *http.Request) {
	var req loginRequest
	if ok := decodeJSON(h.logger, w, r, &req); !ok {
		return
	}
	code := strings.TrimSpace(req.EmployeeCode)
	if code == "" {
		writeError(h.logger, w, r, http.StatusBadRequest, "employee_code is required")
		return
	}

	c, err := h.svc.Login(r.Context(), code)
	switch {
	case err == nil:
		writeJSON(h.logger, w, r, http.StatusOK, sessionDTO{Authenticated: true, Courier: courierToDTO(c)})
	case apperr.IsServerRejected(err):
		var se *apperr.ServerError
		errors.As(err, &se)
		msg := se.Message
		if msg == "" {
			msg = "login rejected"
		}
		writeError(h.logger, w, r, http.StatusUnauthorized, msg)
	case errors.Is(err, apperr.ErrUnauthorized):
		writeError(h.logger, w, r, http.StatusUnauthorized, "login rejected")
	case errors.Is(err, apperr.ErrTransport):
		writeError(h.logger, w, r, http.StatusBadGateway, "delivery service unreachable")
	default:
		writeError(h.logger, w, r, http.StatusInternalServerError, "internal error")
	}
}

// Logout handles POST /session/logout. Always succeeds. Any active
// location stream dies with the session.
func (h *SessionHandler) Logout(w http.ResponseWriter, _ *http.Request) {
	h.tracker.ClearActiveDelivery()
	h.svc.Logout()
	w.WriteHeader(http.StatusNoContent)
}

// Get handles GET /session.
func (h *SessionHandler) Get(w http.ResponseWriter, r *http.Request) {
	snap := h.svc.Current()
	writeJSON(h.logger, w, r, http.StatusOK, sessionDTO{
		Authenticated: snap.Authenticated,
		Courier:       courierToDTO(snap.Courier),
	})
}
