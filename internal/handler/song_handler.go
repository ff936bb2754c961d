package handler

import (
	"net/http"

	"gamebeats/backend/internal/auth"
	"gamebeats/backend/internal/hub"
	"gamebeats/backend/internal/models"
	"gamebeats/backend/internal/store"

	"github.com/gin-gonic/gin"
)

// RateSongInput is the body of a rating request.
type RateSongInput struct {
	Rating int `json:"rating" binding:"required" example:"4"`
}

// RateSongResponse is the stored rating plus the song's new summary.
type RateSongResponse struct {
	Rating  models.SongRating   `json:"rating"`
	Summary store.RatingSummary `json:"summary"`
}

// CreateSong godoc
// @Summary      Add a song to a game
// @Tags         admin-songs
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        input body store.CreateSongInput true "Song Info"
// @Success      201  {object}  models.Song
// @Failure      400  {object}  ErrorResponse
// @Failure      403  {object}  ErrorResponse "Admin access required"
// @Failure      404  {object}  ErrorResponse "Game not found"
// @Router       /songs [post]
func (h *Handler) CreateSong(c *gin.Context) {
	var input store.CreateSongInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	song, err := h.store.CreateSong(c.Request.Context(), input)
	if err != nil {
		respondError(c, err)
		return
	}

	h.hub.Broadcast(song.GameID, hub.Event{Type: hub.EventSongAdded, Payload: song})
	c.JSON(http.StatusCreated, song)
}

// GetSongsByGame godoc
// @Summary      Songs of a game
// @Description  Lists a game's songs in insertion order with their average rating and rating count.
// @Tags         songs
// @Produce      json
// @Param        id path int true "Game ID"
// @Success      200 {array} store.SongWithRating
// @Failure      404 {object} ErrorResponse "Game not found"
// @Router       /games/{id}/songs [get]
func (h *Handler) GetSongsByGame(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		return
	}

	if err := h.store.GameExists(c.Request.Context(), id); err != nil {
		respondError(c, err)
		return
	}
	songs, err := h.store.SongsByGame(c.Request.Context(), id)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, songs)
}

// RateSong godoc
// @Summary      Rate a song
// @Description  Stores a 1-5 rating. The rater is the token subject when a valid token is sent, the client IP otherwise; rating again replaces the previous value.
// @Tags         songs
// @Accept       json
// @Produce      json
// @Param        id    path  int           true  "Song ID"
// @Param        input body  RateSongInput true  "Rating"
// @Success      200 {object} RateSongResponse
// @Failure      400 {object} ErrorResponse
// @Failure      404 {object} ErrorResponse "Song not found"
// @Router       /songs/{id}/ratings [post]
func (h *Handler) RateSong(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		return
	}

	var input RateSongInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	rating, err := h.store.RateSong(c.Request.Context(), id, auth.RaterID(c), input.Rating)
	if err != nil {
		respondError(c, err)
		return
	}

	summary, err := h.store.SongRatings(c.Request.Context(), id)
	if err != nil {
		respondError(c, err)
		return
	}

	song, err := h.store.GetSong(c.Request.Context(), id)
	if err != nil {
		respondError(c, err)
		return
	}
	h.hub.Broadcast(song.GameID, hub.Event{
		Type: hub.EventSongRated,
		Payload: hub.SongRatedPayload{
			SongID:        song.ID,
			GameID:        song.GameID,
			AverageRating: summary.AverageRating,
			TotalRatings:  summary.TotalRatings,
		},
	})

	c.JSON(http.StatusOK, RateSongResponse{Rating: rating, Summary: summary})
}

// GetSongRatings godoc
// @Summary      Rating summary of a song
// @Tags         songs
// @Produce      json
// @Param        id path int true "Song ID"
// @Success      200 {object} store.RatingSummary
// @Router       /songs/{id}/ratings [get]
func (h *Handler) GetSongRatings(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		return
	}

	summary, err := h.store.SongRatings(c.Request.Context(), id)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, summary)
}
