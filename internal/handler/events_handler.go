package handler

import (
	"io"

	"github.com/gin-gonic/gin"
)

// GameEvents godoc
// @Summary      Live events of a game
// @Description  Server-sent events stream. Emits "ready" once subscribed, then one "message" per song.rated, song.added or game.stats_updated event.
// @Tags         games
// @Produce      text/event-stream
// @Param        id path int true "Game ID"
// @Success      200 {string} string "event stream"
// @Failure      404 {object} ErrorResponse "Game not found"
// @Router       /games/{id}/events [get]
func (h *Handler) GameEvents(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		return
	}

	if err := h.store.GameExists(c.Request.Context(), id); err != nil {
		respondError(c, err)
		return
	}

	client := h.hub.Subscribe(id)
	defer h.hub.Unsubscribe(id, client)

	c.Header("Cache-Control", "no-cache")
	c.Header("Connection", "keep-alive")
	c.Header("X-Accel-Buffering", "no")

	c.SSEvent("ready", gin.H{"game_id": id})
	c.Writer.Flush()

	c.Stream(func(w io.Writer) bool {
		select {
		case message, ok := <-client:
			if !ok {
				return false
			}
			c.SSEvent("message", string(message))
			return true
		case <-c.Request.Context().Done():
			return false
		}
	})
}
