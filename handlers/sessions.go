// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package handlers

import (
	"errors"
	"io"
	"log/slog"
	"net/http"

	"github.com/danielhkuo/electoral-cartogram/auth"
	"github.com/danielhkuo/electoral-cartogram/cliparse"
	"github.com/danielhkuo/electoral-cartogram/coordinator"
	"github.com/danielhkuo/electoral-cartogram/dataset"
	"github.com/danielhkuo/electoral-cartogram/locale"
	"github.com/danielhkuo/electoral-cartogram/middleware"
	"github.com/danielhkuo/electoral-cartogram/models"
	"github.com/danielhkuo/electoral-cartogram/sessions"
)

type SessionHandler struct {
	store *sessions.Store
	cfg   cliparse.Config
}

func NewSessionHandler(store *sessions.Store, cfg cliparse.Config) *SessionHandler {
	return &SessionHandler{store: store, cfg: cfg}
}

// CreateSession handles POST /sessions
// The language comes from the body when given, else from Accept-Language
func (h *SessionHandler) CreateSession(w http.ResponseWriter, r *http.Request) {
	var req models.CreateSessionRequest
	if err := middleware.ParseJSONBody(r, &req); err != nil && !errors.Is(err, io.EOF) {
		middleware.ErrorResponse(w, http.StatusBadRequest, "Invalid JSON")
		return
	}

	lang := locale.ProbeAcceptLanguage(r.Header.Get("Accept-Language"))
	if req.Lang != "" {
		parsed, err := locale.ParseLang(req.Lang)
		if err != nil {
			middleware.ErrorResponse(w, http.StatusBadRequest, "lang must be en or fr")
			return
		}
		lang = parsed
	}

	id, _ := h.store.Create(lang)

	slog.Info("session created",
		"session_id", id,
		"lang", lang,
		"client", auth.HashIP(middleware.GetClientIP(r), h.cfg.SessionSalt),
	)

	middleware.JSONResponse(w, http.StatusCreated, models.CreateSessionResponse{
		SessionID:    id,
		SessionToken: auth.SessionToken(id, h.cfg.SessionSalt),
		Lang:         lang,
	})
}

// GetView handles GET /sessions/{id}/view
// Returns the active selection, or the summary when nothing is selected
func (h *SessionHandler) GetView(w http.ResponseWriter, r *http.Request) {
	_, coord, ok := h.session(w, r)
	if !ok {
		return
	}
	middleware.JSONResponse(w, http.StatusOK, coord.View())
}

// GetMap handles GET /sessions/{id}/map/ridings
// Same as GET /map/ridings in the session's language
func (h *SessionHandler) GetMap(w http.ResponseWriter, r *http.Request) {
	_, coord, ok := h.session(w, r)
	if !ok {
		return
	}
	middleware.JSONResponse(w, http.StatusOK, models.MapLabelsResponse{
		Lang:   coord.Language(),
		Labels: coord.MapLabels(),
	})
}

// HoverOn handles POST /sessions/{id}/hover
func (h *SessionHandler) HoverOn(w http.ResponseWriter, r *http.Request) {
	id, coord, ok := h.session(w, r)
	if !ok {
		return
	}

	var req models.HoverRequest
	if err := middleware.ParseJSONBody(r, &req); err != nil {
		middleware.ErrorResponse(w, http.StatusBadRequest, "Invalid JSON")
		return
	}
	if req.RidingID == "" {
		middleware.ErrorResponse(w, http.StatusBadRequest, "riding_id is required")
		return
	}

	err := coord.HoverOn(req.RidingID, req.Date)
	switch {
	case errors.Is(err, dataset.ErrUnknownRiding):
		middleware.ErrorResponse(w, http.StatusNotFound, "Riding not found")
		return
	case errors.Is(err, dataset.ErrUnknownResultSet):
		middleware.ErrorResponse(w, http.StatusNotFound, "Result set not found")
		return
	case err != nil:
		slog.Error("inconsistent dataset", "session_id", id, "riding_id", req.RidingID, "error", err)
		middleware.ErrorResponse(w, http.StatusInternalServerError, "Dataset error")
		return
	}

	middleware.JSONResponse(w, http.StatusAccepted, models.HoverResponse{State: coord.State().String()})
}

// HoverOff handles POST /sessions/{id}/hover-off
func (h *SessionHandler) HoverOff(w http.ResponseWriter, r *http.Request) {
	_, coord, ok := h.session(w, r)
	if !ok {
		return
	}
	coord.HoverOff()
	middleware.JSONResponse(w, http.StatusAccepted, models.HoverResponse{State: coord.State().String()})
}

// SetLanguage handles PUT /sessions/{id}/language
// Returns the view re-rendered in the new language
func (h *SessionHandler) SetLanguage(w http.ResponseWriter, r *http.Request) {
	id, coord, ok := h.session(w, r)
	if !ok {
		return
	}

	var req models.SetLanguageRequest
	if err := middleware.ParseJSONBody(r, &req); err != nil {
		middleware.ErrorResponse(w, http.StatusBadRequest, "Invalid JSON")
		return
	}
	lang, err := locale.ParseLang(req.Lang)
	if err != nil {
		middleware.ErrorResponse(w, http.StatusBadRequest, "lang must be en or fr")
		return
	}
	if err := coord.SetLanguage(lang); err != nil {
		middleware.ErrorResponse(w, http.StatusBadRequest, err.Error())
		return
	}

	slog.Info("language changed", "session_id", id, "lang", lang)
	middleware.JSONResponse(w, http.StatusOK, coord.View())
}

// DeleteSession handles DELETE /sessions/{id}
func (h *SessionHandler) DeleteSession(w http.ResponseWriter, r *http.Request) {
	id, _, ok := h.session(w, r)
	if !ok {
		return
	}
	if err := h.store.Delete(id); err != nil {
		middleware.ErrorResponse(w, http.StatusNotFound, "Session not found")
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// session authenticates the request and writes the error response when it fails
func (h *SessionHandler) session(w http.ResponseWriter, r *http.Request) (string, *coordinator.Coordinator, bool) {
	id, err := auth.ParseSessionID(r.PathValue("id"))
	if err != nil {
		middleware.ErrorResponse(w, http.StatusNotFound, "Session not found")
		return "", nil, false
	}

	token := r.Header.Get(middleware.SessionTokenHeader)
	if err := auth.ValidateSessionToken(id, token, h.cfg.SessionSalt); err != nil {
		middleware.ErrorResponse(w, http.StatusUnauthorized, "Invalid session token")
		return "", nil, false
	}

	coord, err := h.store.Get(id)
	if errors.Is(err, sessions.ErrNotFound) {
		middleware.ErrorResponse(w, http.StatusNotFound, "Session not found")
		return "", nil, false
	}
	if err != nil {
		slog.Error("failed to load session", "session_id", id, "error", err)
		middleware.ErrorResponse(w, http.StatusInternalServerError, "Session error")
		return "", nil, false
	}
	return id, coord, true
}
