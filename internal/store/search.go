package store

import (
	"context"
	"strings"

	"gamebeats/backend/internal/models"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

const (
	DefaultSearchLimit = 20
	MaxSearchLimit     = 100
)

// sortColumns maps accepted sort keys to games columns.
var sortColumns = map[string]string{
	"name":             "name",
	"bgg_rating":       "bgg_rating",
	"external_rating":  "bgg_rating",
	"bgg_rank":         "bgg_rank",
	"external_rank":    "bgg_rank",
	"playtime_minutes": "playtime_minutes",
	"created_at":       "created_at",
}

// SearchFilter describes a game search. Nil bounds and empty values impose no
// constraint; everything that is set is combined with AND.
type SearchFilter struct {
	Query         string   `json:"query,omitempty"`
	CategoryIDs   []uint   `json:"category_ids,omitempty"`
	MinPlayers    *int     `json:"min_players,omitempty"`
	MaxPlayers    *int     `json:"max_players,omitempty"`
	MinPlaytime   *int     `json:"min_playtime,omitempty"`
	MaxPlaytime   *int     `json:"max_playtime,omitempty"`
	MinAge        *int     `json:"min_age,omitempty"`
	ComplexityMin *float64 `json:"complexity_min,omitempty"`
	ComplexityMax *float64 `json:"complexity_max,omitempty"`
	SortBy        string   `json:"sort_by,omitempty"`
	SortOrder     string   `json:"sort_order,omitempty"`
	Limit         int      `json:"limit,omitempty"`
	Offset        int      `json:"offset,omitempty"`
}

// Normalize validates the filter and fills in defaults.
func (f SearchFilter) Normalize() (SearchFilter, error) {
	f.Query = strings.TrimSpace(f.Query)

	for _, b := range []struct {
		field string
		value *int
	}{
		{"min_players", f.MinPlayers},
		{"max_players", f.MaxPlayers},
		{"min_playtime", f.MinPlaytime},
		{"max_playtime", f.MaxPlaytime},
		{"min_age", f.MinAge},
	} {
		if b.value != nil && *b.value < 0 {
			return f, invalid(b.field, "must not be negative")
		}
	}

	if f.ComplexityMin != nil && (*f.ComplexityMin < 1 || *f.ComplexityMin > 5) {
		return f, invalid("complexity_min", "must be between 1 and 5")
	}
	if f.ComplexityMax != nil && (*f.ComplexityMax < 1 || *f.ComplexityMax > 5) {
		return f, invalid("complexity_max", "must be between 1 and 5")
	}
	if f.ComplexityMin != nil && f.ComplexityMax != nil && *f.ComplexityMin > *f.ComplexityMax {
		return f, invalid("complexity_min", "must not exceed complexity_max")
	}

	switch {
	case f.Limit == 0:
		f.Limit = DefaultSearchLimit
	case f.Limit < 0 || f.Limit > MaxSearchLimit:
		return f, invalid("limit", "must be between 1 and %d", MaxSearchLimit)
	}
	if f.Offset < 0 {
		return f, invalid("offset", "must not be negative")
	}

	if f.SortBy != "" {
		if _, ok := sortColumns[f.SortBy]; !ok {
			return f, invalid("sort_by", "unknown sort key %q", f.SortBy)
		}
		switch strings.ToLower(f.SortOrder) {
		case "":
			f.SortOrder = "desc"
		case "asc", "desc":
			f.SortOrder = strings.ToLower(f.SortOrder)
		default:
			return f, invalid("sort_order", "must be asc or desc")
		}
	} else if f.SortOrder != "" && f.SortOrder != "asc" && f.SortOrder != "desc" {
		return f, invalid("sort_order", "must be asc or desc")
	}

	f.CategoryIDs = uniqueIDs(f.CategoryIDs)
	return f, nil
}

// applyFilter adds the WHERE/JOIN part of a search. Games matching several of
// the requested categories are collapsed by grouping on games.id.
func applyFilter(q *gorm.DB, f SearchFilter) *gorm.DB {
	if f.Query != "" {
		q = q.Where("LOWER(games.name) LIKE ? ESCAPE '\\'", "%"+escapeLike(strings.ToLower(f.Query))+"%")
	}

	// Player counts use overlap semantics: the game's range must intersect
	// the requested one.
	if f.MinPlayers != nil {
		q = q.Where("games.max_players >= ?", *f.MinPlayers)
	}
	if f.MaxPlayers != nil {
		q = q.Where("games.min_players <= ?", *f.MaxPlayers)
	}

	if f.MinPlaytime != nil {
		q = q.Where("games.playtime_minutes >= ?", *f.MinPlaytime)
	}
	if f.MaxPlaytime != nil {
		q = q.Where("games.playtime_minutes <= ?", *f.MaxPlaytime)
	}

	if f.MinAge != nil {
		q = q.Where("games.age_rating <= ?", *f.MinAge)
	}

	if f.ComplexityMin != nil {
		q = q.Where("games.complexity_rating >= ?", *f.ComplexityMin)
	}
	if f.ComplexityMax != nil {
		q = q.Where("games.complexity_rating <= ?", *f.ComplexityMax)
	}

	if len(f.CategoryIDs) > 0 {
		q = q.Joins("JOIN game_category_relations gcr ON gcr.game_id = games.id").
			Where("gcr.category_id IN ?", f.CategoryIDs).
			Group("games.id")
	}

	return q
}

// nullableSortColumns sort after every non-null value in either direction.
// Postgres and sqlite disagree on where NULLs go by default.
var nullableSortColumns = map[string]bool{
	"bgg_rating": true,
	"bgg_rank":   true,
}

func applySort(q *gorm.DB, f SearchFilter) *gorm.DB {
	if f.SortBy != "" {
		column := sortColumns[f.SortBy]
		if nullableSortColumns[column] {
			q = q.Order("games." + column + " IS NULL")
		}
		q = q.Order(clause.OrderByColumn{
			Column: clause.Column{Table: "games", Name: column},
			Desc:   f.SortOrder == "desc",
		})
	}
	// Without an explicit sort this is insertion order; with one it breaks ties
	// so that offsets stay stable between pages.
	return q.Order(clause.OrderByColumn{Column: clause.Column{Table: "games", Name: "id"}})
}

// SearchGames returns one page of games matching the filter.
func (s *Store) SearchGames(ctx context.Context, filter SearchFilter) ([]models.Game, error) {
	f, err := filter.Normalize()
	if err != nil {
		return nil, err
	}

	db, cancel := s.session(ctx)
	defer cancel()

	q := applyFilter(db.Model(&models.Game{}).Select("games.*"), f)
	q = applySort(q, f)

	games := make([]models.Game, 0)
	if err := q.Limit(f.Limit).Offset(f.Offset).Find(&games).Error; err != nil {
		return nil, wrap("search games", err)
	}
	return games, nil
}

// CountGames returns how many games match the filter, ignoring limit and offset.
func (s *Store) CountGames(ctx context.Context, filter SearchFilter) (int64, error) {
	f, err := filter.Normalize()
	if err != nil {
		return 0, err
	}

	db, cancel := s.session(ctx)
	defer cancel()

	var total int64
	if len(f.CategoryIDs) == 0 {
		if err := applyFilter(db.Model(&models.Game{}), f).Count(&total).Error; err != nil {
			return 0, wrap("count games", err)
		}
		return total, nil
	}

	// For a grouped query, count the distinct groups through a subquery.
	sub := applyFilter(db.Model(&models.Game{}).Select("games.id"), f)
	if err := db.Table("(?) AS matches", sub).Count(&total).Error; err != nil {
		return 0, wrap("count games", err)
	}
	return total, nil
}

func escapeLike(s string) string {
	r := strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`)
	return r.Replace(s)
}

func uniqueIDs(ids []uint) []uint {
	if len(ids) == 0 {
		return nil
	}
	seen := make(map[uint]struct{}, len(ids))
	out := make([]uint, 0, len(ids))
	for _, id := range ids {
		if _, ok := seen[id]; ok {
			continue
		}
		seen[id] = struct{}{}
		out = append(out, id)
	}
	return out
}
