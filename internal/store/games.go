package store

import (
	"context"
	"fmt"
	"net/url"
	"strings"

	"gamebeats/backend/internal/models"
	"gamebeats/backend/pkg/nullable"

	"gorm.io/gorm"
)

const (
	featuredMinRating = 7.0
	featuredLimit     = 10
)

// CreateGameInput carries the fields of a new game and its categories.
type CreateGameInput struct {
	Name               string  `json:"name" binding:"required"`
	Description        string  `json:"description"`
	RulesText          string  `json:"rules_text"`
	MinPlayers         int     `json:"min_players" binding:"required,gt=0"`
	MaxPlayers         int     `json:"max_players" binding:"required,gt=0"`
	PlaytimeMinutes    int     `json:"playtime_minutes" binding:"required,gt=0"`
	AgeRating          int     `json:"age_rating" binding:"gte=0"`
	ComplexityRating   float64 `json:"complexity_rating" binding:"required,gte=1,lte=5"`
	BGGID              *int    `json:"bgg_id"`
	AmazonLink         *string `json:"amazon_link" binding:"omitempty,url"`
	BolLink            *string `json:"bol_link" binding:"omitempty,url"`
	YoutubeTutorialURL *string `json:"youtube_tutorial_url" binding:"omitempty,url"`
	CoverImageURL      *string `json:"cover_image_url" binding:"omitempty,url"`
	CategoryIDs        []uint  `json:"category_ids"`
}

// UpdateGameInput is a partial update. Absent fields are left alone; an
// explicit null clears a nullable column.
type UpdateGameInput struct {
	ID                 uint                    `json:"-"`
	Name               nullable.Field[string]  `json:"name" swaggertype:"string"`
	Description        nullable.Field[string]  `json:"description" swaggertype:"string"`
	RulesText          nullable.Field[string]  `json:"rules_text" swaggertype:"string"`
	MinPlayers         nullable.Field[int]     `json:"min_players" swaggertype:"integer"`
	MaxPlayers         nullable.Field[int]     `json:"max_players" swaggertype:"integer"`
	PlaytimeMinutes    nullable.Field[int]     `json:"playtime_minutes" swaggertype:"integer"`
	AgeRating          nullable.Field[int]     `json:"age_rating" swaggertype:"integer"`
	ComplexityRating   nullable.Field[float64] `json:"complexity_rating" swaggertype:"number"`
	BGGID              nullable.Field[int]     `json:"bgg_id" swaggertype:"integer"`
	AmazonLink         nullable.Field[string]  `json:"amazon_link" swaggertype:"string"`
	BolLink            nullable.Field[string]  `json:"bol_link" swaggertype:"string"`
	YoutubeTutorialURL nullable.Field[string]  `json:"youtube_tutorial_url" swaggertype:"string"`
	CoverImageURL      nullable.Field[string]  `json:"cover_image_url" swaggertype:"string"`
	CategoryIDs        nullable.Field[[]uint]  `json:"category_ids" swaggertype:"array,integer"`
}

// GameDetails is a game together with its songs and categories.
type GameDetails struct {
	models.Game
	Songs      []models.Song     `json:"songs"`
	Categories []models.Category `json:"categories"`
}

func validateGame(g *models.Game) error {
	if strings.TrimSpace(g.Name) == "" {
		return invalid("name", "is required")
	}
	if len(g.Name) > 255 {
		return invalid("name", "must be at most 255 characters")
	}
	if g.MinPlayers <= 0 {
		return invalid("min_players", "must be positive")
	}
	if g.MaxPlayers <= 0 {
		return invalid("max_players", "must be positive")
	}
	if g.MinPlayers > g.MaxPlayers {
		return invalid("min_players", "must not exceed max_players")
	}
	if g.PlaytimeMinutes <= 0 {
		return invalid("playtime_minutes", "must be positive")
	}
	if g.AgeRating < 0 {
		return invalid("age_rating", "must not be negative")
	}
	if g.ComplexityRating < 1 || g.ComplexityRating > 5 {
		return invalid("complexity_rating", "must be between 1 and 5")
	}

	links := []struct {
		field string
		value *string
	}{
		{"amazon_link", g.AmazonLink},
		{"bol_link", g.BolLink},
		{"youtube_tutorial_url", g.YoutubeTutorialURL},
		{"cover_image_url", g.CoverImageURL},
	}
	for _, l := range links {
		if l.value != nil && !validURL(*l.value) {
			return invalid(l.field, "must be an absolute http(s) URL")
		}
	}
	return nil
}

func validURL(raw string) bool {
	u, err := url.ParseRequestURI(raw)
	if err != nil {
		return false
	}
	return (u.Scheme == "http" || u.Scheme == "https") && u.Host != ""
}

// replaceCategories swaps the game's category links for ids. It must run
// inside the caller's transaction.
func replaceCategories(tx *gorm.DB, gameID uint, ids []uint) error {
	ids = uniqueIDs(ids)

	if err := tx.Where("game_id = ?", gameID).Delete(&models.GameCategoryRelation{}).Error; err != nil {
		return err
	}
	if len(ids) == 0 {
		return nil
	}

	var found int64
	if err := tx.Model(&models.Category{}).Where("id IN ?", ids).Count(&found).Error; err != nil {
		return err
	}
	if int(found) != len(ids) {
		return fmt.Errorf("categories %v: %w", ids, ErrNotFound)
	}

	relations := make([]models.GameCategoryRelation, 0, len(ids))
	for _, id := range ids {
		relations = append(relations, models.GameCategoryRelation{GameID: gameID, CategoryID: id})
	}
	return tx.Create(&relations).Error
}

// CreateGame inserts a game and links its categories in one transaction.
func (s *Store) CreateGame(ctx context.Context, in CreateGameInput) (models.Game, error) {
	now := s.now()
	game := models.Game{
		Name:               strings.TrimSpace(in.Name),
		Description:        in.Description,
		RulesText:          in.RulesText,
		MinPlayers:         in.MinPlayers,
		MaxPlayers:         in.MaxPlayers,
		PlaytimeMinutes:    in.PlaytimeMinutes,
		AgeRating:          in.AgeRating,
		ComplexityRating:   in.ComplexityRating,
		BGGID:              in.BGGID,
		AmazonLink:         in.AmazonLink,
		BolLink:            in.BolLink,
		YoutubeTutorialURL: in.YoutubeTutorialURL,
		CoverImageURL:      in.CoverImageURL,
		CreatedAt:          now,
		UpdatedAt:          now,
	}
	if err := validateGame(&game); err != nil {
		return models.Game{}, err
	}

	db, cancel := s.session(ctx)
	defer cancel()

	err := db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(&game).Error; err != nil {
			return err
		}
		if len(in.CategoryIDs) > 0 {
			return replaceCategories(tx, game.ID, in.CategoryIDs)
		}
		return nil
	})
	if err != nil {
		return models.Game{}, wrap("create game", err)
	}
	return game, nil
}

// ListGames returns every game in insertion order.
func (s *Store) ListGames(ctx context.Context) ([]models.Game, error) {
	db, cancel := s.session(ctx)
	defer cancel()

	games := make([]models.Game, 0)
	if err := db.Order("id").Find(&games).Error; err != nil {
		return nil, wrap("list games", err)
	}
	return games, nil
}

// GameExists returns ErrNotFound when no game has the given id.
func (s *Store) GameExists(ctx context.Context, id uint) error {
	db, cancel := s.session(ctx)
	defer cancel()

	return wrap("game exists", requireExists(db, &models.Game{}, "game", id))
}

// GetGameByID loads a game with its songs and categories.
func (s *Store) GetGameByID(ctx context.Context, id uint) (GameDetails, error) {
	db, cancel := s.session(ctx)
	defer cancel()

	var details GameDetails
	if err := db.First(&details.Game, id).Error; err != nil {
		return GameDetails{}, wrap("get game", err)
	}

	details.Songs = make([]models.Song, 0)
	if err := db.Where("game_id = ?", id).Order("id").Find(&details.Songs).Error; err != nil {
		return GameDetails{}, wrap("get game songs", err)
	}

	details.Categories = make([]models.Category, 0)
	if err := db.Joins("JOIN game_category_relations gcr ON gcr.category_id = game_categories.id").
		Where("gcr.game_id = ?", id).
		Order("game_categories.name").
		Find(&details.Categories).Error; err != nil {
		return GameDetails{}, wrap("get game categories", err)
	}

	return details, nil
}

// applyPatch copies present fields onto g and returns the touched columns.
func applyPatch(g *models.Game, in UpdateGameInput) ([]string, error) {
	var cols []string

	requireString := func(col string, f nullable.Field[string], dst *string) error {
		if !f.Present {
			return nil
		}
		if f.Null {
			return invalid(col, "cannot be null")
		}
		*dst = f.Value
		cols = append(cols, col)
		return nil
	}
	requireInt := func(col string, f nullable.Field[int], dst *int) error {
		if !f.Present {
			return nil
		}
		if f.Null {
			return invalid(col, "cannot be null")
		}
		*dst = f.Value
		cols = append(cols, col)
		return nil
	}
	optionalString := func(col string, f nullable.Field[string], dst **string) {
		if f.Present {
			*dst = f.Ptr()
			cols = append(cols, col)
		}
	}

	if err := requireString("name", in.Name, &g.Name); err != nil {
		return nil, err
	}
	if err := requireString("description", in.Description, &g.Description); err != nil {
		return nil, err
	}
	if err := requireString("rules_text", in.RulesText, &g.RulesText); err != nil {
		return nil, err
	}
	if err := requireInt("min_players", in.MinPlayers, &g.MinPlayers); err != nil {
		return nil, err
	}
	if err := requireInt("max_players", in.MaxPlayers, &g.MaxPlayers); err != nil {
		return nil, err
	}
	if err := requireInt("playtime_minutes", in.PlaytimeMinutes, &g.PlaytimeMinutes); err != nil {
		return nil, err
	}
	if err := requireInt("age_rating", in.AgeRating, &g.AgeRating); err != nil {
		return nil, err
	}
	if in.ComplexityRating.Present {
		if in.ComplexityRating.Null {
			return nil, invalid("complexity_rating", "cannot be null")
		}
		g.ComplexityRating = in.ComplexityRating.Value
		cols = append(cols, "complexity_rating")
	}
	if in.BGGID.Present {
		g.BGGID = in.BGGID.Ptr()
		cols = append(cols, "bgg_id")
	}
	optionalString("amazon_link", in.AmazonLink, &g.AmazonLink)
	optionalString("bol_link", in.BolLink, &g.BolLink)
	optionalString("youtube_tutorial_url", in.YoutubeTutorialURL, &g.YoutubeTutorialURL)
	optionalString("cover_image_url", in.CoverImageURL, &g.CoverImageURL)

	return cols, nil
}

func gameColumnValue(g *models.Game, col string) any {
	switch col {
	case "name":
		return g.Name
	case "description":
		return g.Description
	case "rules_text":
		return g.RulesText
	case "min_players":
		return g.MinPlayers
	case "max_players":
		return g.MaxPlayers
	case "playtime_minutes":
		return g.PlaytimeMinutes
	case "age_rating":
		return g.AgeRating
	case "complexity_rating":
		return g.ComplexityRating
	case "bgg_id":
		return g.BGGID
	case "amazon_link":
		return g.AmazonLink
	case "bol_link":
		return g.BolLink
	case "youtube_tutorial_url":
		return g.YoutubeTutorialURL
	case "cover_image_url":
		return g.CoverImageURL
	}
	return nil
}

// UpdateGame applies a partial update and, when category_ids is present,
// replaces the game's categories. Both happen in one transaction.
func (s *Store) UpdateGame(ctx context.Context, in UpdateGameInput) (models.Game, error) {
	db, cancel := s.session(ctx)
	defer cancel()

	var game models.Game
	err := db.Transaction(func(tx *gorm.DB) error {
		if err := tx.First(&game, in.ID).Error; err != nil {
			return err
		}

		cols, err := applyPatch(&game, in)
		if err != nil {
			return err
		}
		game.Name = strings.TrimSpace(game.Name)
		if err := validateGame(&game); err != nil {
			return err
		}

		game.UpdatedAt = s.now()
		updates := map[string]any{"updated_at": game.UpdatedAt}
		for _, col := range cols {
			updates[col] = gameColumnValue(&game, col)
		}
		if err := tx.Model(&models.Game{}).Where("id = ?", game.ID).Updates(updates).Error; err != nil {
			return err
		}

		if in.CategoryIDs.Present {
			if err := replaceCategories(tx, game.ID, in.CategoryIDs.Value); err != nil {
				return err
			}
		}

		return tx.First(&game, game.ID).Error
	})
	if err != nil {
		return models.Game{}, wrap("update game", err)
	}
	return game, nil
}

// DeleteGame removes a game; songs, their ratings and category links go with
// it through the schema's cascades. It reports whether a row was removed.
func (s *Store) DeleteGame(ctx context.Context, id uint) (bool, error) {
	db, cancel := s.session(ctx)
	defer cancel()

	result := db.Delete(&models.Game{}, id)
	if result.Error != nil {
		return false, wrap("delete game", result.Error)
	}
	return result.RowsAffected > 0, nil
}

// FeaturedGames returns up to ten highly rated, ranked games.
func (s *Store) FeaturedGames(ctx context.Context) ([]models.Game, error) {
	db, cancel := s.session(ctx)
	defer cancel()

	games := make([]models.Game, 0)
	err := db.
		Where("bgg_rating IS NOT NULL AND bgg_rating >= ?", featuredMinRating).
		Where("bgg_rank IS NOT NULL").
		Order("bgg_rating DESC").
		Order("created_at DESC").
		Limit(featuredLimit).
		Find(&games).Error
	if err != nil {
		return nil, wrap("featured games", err)
	}
	return games, nil
}

// UpdateBGGStats refreshes a game's BoardGameGeek rating and rank.
func (s *Store) UpdateBGGStats(ctx context.Context, id uint) (models.Game, error) {
	var game models.Game
	{
		db, cancel := s.session(ctx)
		err := db.First(&game, id).Error
		cancel()
		if err != nil {
			return models.Game{}, wrap("update bgg stats", err)
		}
	}
	if s.stats == nil {
		return models.Game{}, &StoreError{Op: "update bgg stats", Err: errNoStatsProvider}
	}
	if game.BGGID == nil {
		return models.Game{}, invalid("bgg_id", "game %d has no BoardGameGeek id", id)
	}

	stats, err := s.stats.FetchStats(ctx, *game.BGGID)
	if err != nil {
		return models.Game{}, &StoreError{Op: "fetch bgg stats", Err: fmt.Errorf("%w: %w", ErrStatsProvider, err)}
	}

	db, cancel := s.session(ctx)
	defer cancel()

	updates := map[string]any{
		"bgg_rating": stats.Rating,
		"bgg_rank":   stats.Rank,
		"updated_at": s.now(),
	}
	if err := db.Model(&models.Game{}).Where("id = ?", id).Updates(updates).Error; err != nil {
		return models.Game{}, wrap("update bgg stats", err)
	}
	if err := db.First(&game, id).Error; err != nil {
		return models.Game{}, wrap("update bgg stats", err)
	}
	return game, nil
}
