package server

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/vvka-141/linuxsim/pkg/linuxsim"
)

// Handler contains the HTTP handlers for the session API.
type Handler struct {
	store *SessionStore
}

// NewHandler creates a handler serving sessions from store.
func NewHandler(store *SessionStore) *Handler {
	return &Handler{store: store}
}

type execRequest struct {
	Command string `json:"command"`
}

// HandleHealth handles GET /health.
func (h *Handler) HandleHealth(c echo.Context) error {
	return c.JSON(http.StatusOK, echo.Map{
		"status":   "ok",
		"sessions": h.store.Len(),
	})
}

// HandleCreate handles POST /api/sessions.
func (h *Handler) HandleCreate(c echo.Context) error {
	info, err := h.store.Create()
	if err != nil {
		return mapStoreError(c, err)
	}
	return c.JSON(http.StatusCreated, info)
}

// HandleGet handles GET /api/sessions/:id.
func (h *Handler) HandleGet(c echo.Context) error {
	info, err := h.store.Get(c.Param("id"))
	if err != nil {
		return mapStoreError(c, err)
	}
	return c.JSON(http.StatusOK, info)
}

// HandleExec handles POST /api/sessions/:id/exec.
// The body is {"command": "..."}; a blank command yields no lines.
func (h *Handler) HandleExec(c echo.Context) error {
	var req execRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "body must be {\"command\": string}"})
	}

	res, err := h.store.Exec(c.Param("id"), req.Command)
	if err != nil {
		return mapStoreError(c, err)
	}
	return c.JSON(http.StatusOK, res)
}

// HandleComplete handles GET /api/sessions/:id/complete?input=...
func (h *Handler) HandleComplete(c echo.Context) error {
	candidates, err := h.store.Complete(c.Param("id"), c.QueryParam("input"))
	if err != nil {
		return mapStoreError(c, err)
	}
	return c.JSON(http.StatusOK, echo.Map{"candidates": candidates})
}

// HandleTree handles GET /api/sessions/:id/tree.
func (h *Handler) HandleTree(c echo.Context) error {
	entries, err := h.store.Tree(c.Param("id"))
	if err != nil {
		return mapStoreError(c, err)
	}
	return c.JSON(http.StatusOK, echo.Map{"entries": entries})
}

// HandleDelete handles DELETE /api/sessions/:id.
func (h *Handler) HandleDelete(c echo.Context) error {
	if err := h.store.Delete(c.Param("id")); err != nil {
		return mapStoreError(c, err)
	}
	return c.NoContent(http.StatusNoContent)
}

// mapStoreError translates store errors into HTTP responses.
func mapStoreError(c echo.Context, err error) error {
	switch {
	case errors.Is(err, linuxsim.ErrSessionNotFound):
		return c.JSON(http.StatusNotFound, echo.Map{"error": "session not found"})
	case errors.Is(err, linuxsim.ErrSessionLimit):
		return c.JSON(http.StatusServiceUnavailable, echo.Map{"error": "session limit reached, try again later"})
	default:
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "internal server error"})
	}
}
