// Package handler exposes the catalog over a gin REST API.
package handler

import (
	"errors"
	"log"
	"net/http"
	"strconv"

	"gamebeats/backend/internal/hub"
	"gamebeats/backend/internal/middleware"
	"gamebeats/backend/internal/store"

	"github.com/gin-gonic/gin"
)

// ErrorResponse is the body of every failed request.
type ErrorResponse struct {
	Error string `json:"error" example:"An error message"`
}

// MessageResponse is returned by endpoints with nothing else to report.
type MessageResponse struct {
	Message string `json:"message" example:"pong"`
}

type Handler struct {
	store *store.Store
	hub   *hub.Hub
}

func New(s *store.Store, h *hub.Hub) *Handler {
	if h == nil {
		h = hub.GlobalHub
	}
	return &Handler{store: s, hub: h}
}

// respondError maps store errors onto HTTP statuses.
func respondError(c *gin.Context, err error) {
	var verr *store.ValidationError
	switch {
	case errors.As(err, &verr):
		c.JSON(http.StatusBadRequest, gin.H{"error": verr.Error()})
	case errors.Is(err, store.ErrNotFound):
		c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
	case errors.Is(err, store.ErrStatsProvider):
		log.Printf("request %s: %v", middleware.GetRequestID(c), err)
		c.JSON(http.StatusBadGateway, gin.H{"error": "External stats provider unavailable"})
	default:
		log.Printf("request %s: %v", middleware.GetRequestID(c), err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
	}
}

// parseID reads a positive numeric path parameter, answering 400 otherwise.
func parseID(c *gin.Context, name string) (uint, bool) {
	id, err := strconv.ParseUint(c.Param(name), 10, 32)
	if err != nil || id == 0 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid " + name})
		return 0, false
	}
	return uint(id), true
}
