package handler

import (
	"net/http"
	"strconv"
	"strings"

	"gamebeats/backend/internal/hub"
	"gamebeats/backend/internal/models"
	"gamebeats/backend/internal/store"

	"github.com/gin-gonic/gin"
)

// region --- DTOs ---

// PaginatedGameResponse is the documented shape of a search page.
type PaginatedGameResponse struct {
	Data []models.Game  `json:"data"`
	Meta PaginationMeta `json:"meta"`
}

// DeleteResponse reports the outcome of a delete.
type DeleteResponse struct {
	Deleted bool `json:"deleted" example:"true"`
}

// endregion

// region --- Admin Handlers ---

// CreateGame godoc
// @Summary      Create a new game
// @Description  Creates a new game and links it to the given categories.
// @Tags         admin-games
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        input body store.CreateGameInput true "Game Info"
// @Success      201  {object}  models.Game
// @Failure      400  {object}  ErrorResponse
// @Failure      403  {object}  ErrorResponse "Admin access required"
// @Failure      404  {object}  ErrorResponse "Category not found"
// @Router       /games [post]
func (h *Handler) CreateGame(c *gin.Context) {
	var input store.CreateGameInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	game, err := h.store.CreateGame(c.Request.Context(), input)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusCreated, game)
}

// UpdateGame godoc
// @Summary      Update a game
// @Description  Partially updates a game. Omitted fields are kept, null clears optional fields, category_ids replaces the categories.
// @Tags         admin-games
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        id    path      int                   true  "Game ID"
// @Param        input body      store.UpdateGameInput true  "Fields to change"
// @Success      200   {object}  models.Game
// @Failure      400   {object}  ErrorResponse
// @Failure      403   {object}  ErrorResponse "Admin access required"
// @Failure      404   {object}  ErrorResponse "Game not found"
// @Router       /games/{id} [patch]
func (h *Handler) UpdateGame(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		return
	}

	var input store.UpdateGameInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	input.ID = id

	game, err := h.store.UpdateGame(c.Request.Context(), input)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, game)
}

// DeleteGame godoc
// @Summary      Delete a game
// @Description  Deletes a game together with its songs, their ratings and its category links.
// @Tags         admin-games
// @Produce      json
// @Security     BearerAuth
// @Param        id path int true "Game ID"
// @Success      200 {object} DeleteResponse
// @Failure      400 {object} ErrorResponse
// @Failure      403 {object} ErrorResponse "Admin access required"
// @Failure      404 {object} ErrorResponse "Game not found"
// @Router       /games/{id} [delete]
func (h *Handler) DeleteGame(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		return
	}

	deleted, err := h.store.DeleteGame(c.Request.Context(), id)
	if err != nil {
		respondError(c, err)
		return
	}
	if !deleted {
		c.JSON(http.StatusNotFound, gin.H{"error": "Game not found"})
		return
	}

	c.JSON(http.StatusOK, DeleteResponse{Deleted: true})
}

// UpdateBGGStats godoc
// @Summary      Refresh BoardGameGeek stats
// @Description  Fetches the current BoardGameGeek rating and rank for a game that has a bgg_id.
// @Tags         admin-games
// @Produce      json
// @Security     BearerAuth
// @Param        id path int true "Game ID"
// @Success      200 {object} models.Game
// @Failure      400 {object} ErrorResponse "Game has no BoardGameGeek id"
// @Failure      404 {object} ErrorResponse "Game not found"
// @Failure      502 {object} ErrorResponse "BoardGameGeek unavailable"
// @Router       /games/{id}/bgg-stats [post]
func (h *Handler) UpdateBGGStats(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		return
	}

	game, err := h.store.UpdateBGGStats(c.Request.Context(), id)
	if err != nil {
		respondError(c, err)
		return
	}

	h.hub.Broadcast(game.ID, hub.Event{Type: hub.EventStatsUpdated, Payload: game})
	c.JSON(http.StatusOK, game)
}

// endregion

// region --- Public Handlers ---

// GetGames godoc
// @Summary      List all games
// @Description  Returns every game in insertion order.
// @Tags         games
// @Produce      json
// @Success      200 {array} models.Game
// @Router       /games [get]
func (h *Handler) GetGames(c *gin.Context) {
	games, err := h.store.ListGames(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, games)
}

// GetGameByID godoc
// @Summary      Get a single game by ID
// @Description  Retrieves a game with its songs and categories.
// @Tags         games
// @Produce      json
// @Param        id path int true "Game ID"
// @Success      200 {object} store.GameDetails
// @Failure      404 {object} ErrorResponse "Game not found"
// @Router       /games/{id} [get]
func (h *Handler) GetGameByID(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		return
	}

	details, err := h.store.GetGameByID(c.Request.Context(), id)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, details)
}

// GetFeaturedGames godoc
// @Summary      Featured games
// @Description  Up to ten ranked games with a BoardGameGeek rating of at least 7.0, best rated first.
// @Tags         games
// @Produce      json
// @Success      200 {array} models.Game
// @Router       /games/featured [get]
func (h *Handler) GetFeaturedGames(c *gin.Context) {
	games, err := h.store.FeaturedGames(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, games)
}

// SearchGames godoc
// @Summary      Search games
// @Description  Filters games by name, categories, player count, playtime, age and complexity, with sorting and offset pagination.
// @Tags         games
// @Produce      json
// @Param        query          query  string  false  "Case-insensitive substring of the game name"
// @Param        category_ids   query  string  false  "Comma-separated or repeated category IDs; any match"
// @Param        min_players    query  int     false  "Game must support at least this many players"
// @Param        max_players    query  int     false  "Game must support at most this many players"
// @Param        min_playtime   query  int     false  "Minimum playtime in minutes"
// @Param        max_playtime   query  int     false  "Maximum playtime in minutes"
// @Param        min_age        query  int     false  "Age of the youngest player"
// @Param        complexity_min query  number  false  "Minimum complexity (1-5)"
// @Param        complexity_max query  number  false  "Maximum complexity (1-5)"
// @Param        sort_by        query  string  false  "name, bgg_rating, bgg_rank, playtime_minutes or created_at"
// @Param        sort_order     query  string  false  "asc or desc" default(desc)
// @Param        limit          query  int     false  "Items per page" default(20)
// @Param        offset         query  int     false  "Items to skip" default(0)
// @Success      200 {object} PaginatedGameResponse
// @Failure      400 {object} ErrorResponse
// @Router       /games/search [get]
func (h *Handler) SearchGames(c *gin.Context) {
	filter, err := parseSearchFilter(c)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	filter, err = filter.Normalize()
	if err != nil {
		respondError(c, err)
		return
	}

	total, err := h.store.CountGames(c.Request.Context(), filter)
	if err != nil {
		respondError(c, err)
		return
	}
	games, err := h.store.SearchGames(c.Request.Context(), filter)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, NewPaginatedResponse(games, total, filter.Limit, filter.Offset))
}

// GetGameRatings godoc
// @Summary      Rating summary of a game
// @Description  Average and count over the ratings of all songs of a game.
// @Tags         games
// @Produce      json
// @Param        id path int true "Game ID"
// @Success      200 {object} store.RatingSummary
// @Failure      404 {object} ErrorResponse "Game not found"
// @Router       /games/{id}/ratings [get]
func (h *Handler) GetGameRatings(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		return
	}

	if err := h.store.GameExists(c.Request.Context(), id); err != nil {
		respondError(c, err)
		return
	}
	summary, err := h.store.GameRatings(c.Request.Context(), id)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, summary)
}

// endregion

type queryError struct {
	param string
}

func (e *queryError) Error() string {
	return "invalid " + e.param
}

func parseSearchFilter(c *gin.Context) (store.SearchFilter, error) {
	filter := store.SearchFilter{
		Query:     c.Query("query"),
		SortBy:    c.Query("sort_by"),
		SortOrder: c.Query("sort_order"),
	}
	if filter.Query == "" {
		filter.Query = c.Query("q")
	}

	ints := []struct {
		param string
		dst   **int
	}{
		{"min_players", &filter.MinPlayers},
		{"max_players", &filter.MaxPlayers},
		{"min_playtime", &filter.MinPlaytime},
		{"max_playtime", &filter.MaxPlaytime},
		{"min_age", &filter.MinAge},
	}
	for _, p := range ints {
		raw := strings.TrimSpace(c.Query(p.param))
		if raw == "" {
			continue
		}
		v, err := strconv.Atoi(raw)
		if err != nil {
			return filter, &queryError{param: p.param}
		}
		*p.dst = &v
	}

	floats := []struct {
		param string
		dst   **float64
	}{
		{"complexity_min", &filter.ComplexityMin},
		{"complexity_max", &filter.ComplexityMax},
	}
	for _, p := range floats {
		raw := strings.TrimSpace(c.Query(p.param))
		if raw == "" {
			continue
		}
		v, err := strconv.ParseFloat(raw, 64)
		if err != nil {
			return filter, &queryError{param: p.param}
		}
		*p.dst = &v
	}

	for _, p := range []struct {
		param string
		dst   *int
	}{
		{"limit", &filter.Limit},
		{"offset", &filter.Offset},
	} {
		raw := strings.TrimSpace(c.Query(p.param))
		if raw == "" {
			continue
		}
		v, err := strconv.Atoi(raw)
		if err != nil {
			return filter, &queryError{param: p.param}
		}
		*p.dst = v
	}

	for _, raw := range c.QueryArray("category_ids") {
		for _, s := range splitCommaSeparated(raw) {
			id, err := strconv.ParseUint(s, 10, 32)
			if err != nil {
				return filter, &queryError{param: "category_ids"}
			}
			filter.CategoryIDs = append(filter.CategoryIDs, uint(id))
		}
	}

	return filter, nil
}

// Helper to split comma-separated strings
func splitCommaSeparated(s string) []string {
	var result []string
	parts := strings.Split(s, ",")
	for _, part := range parts {
		trimmed := strings.TrimSpace(part)
		if trimmed != "" {
			result = append(result, trimmed)
		}
	}
	return result
}
