package store

import (
	"context"
	"errors"
	"testing"
)

type searchFixture struct {
	store         *Store
	strategyID    uint
	cooperativeID uint
	familyID      uint
}

func newSearchFixture(t *testing.T) searchFixture {
	t.Helper()
	s := newTestStore(t)

	strategy := mustCreateCategory(t, s, "Strategy")
	coop := mustCreateCategory(t, s, "Cooperative")
	family := mustCreateCategory(t, s, "Family")

	gloomhaven := gameInput("Gloomhaven", 1, 4, 120, 14, 4.2)
	gloomhaven.CategoryIDs = []uint{strategy.ID, coop.ID}
	mustCreateGame(t, s, gloomhaven)

	azul := gameInput("Azul", 2, 4, 45, 8, 1.8)
	azul.CategoryIDs = []uint{family.ID}
	mustCreateGame(t, s, azul)

	spirit := gameInput("Spirit Island", 1, 4, 90, 13, 4.0)
	spirit.CategoryIDs = []uint{coop.ID}
	mustCreateGame(t, s, spirit)

	return searchFixture{store: s, strategyID: strategy.ID, cooperativeID: coop.ID, familyID: family.ID}
}

func TestSearchGamesFilters(t *testing.T) {
	fx := newSearchFixture(t)

	tests := []struct {
		name   string
		filter SearchFilter
		want   []string
	}{
		{name: "no filters", filter: SearchFilter{}, want: []string{"Gloomhaven", "Azul", "Spirit Island"}},
		{name: "text query", filter: SearchFilter{Query: "gloom"}, want: []string{"Gloomhaven"}},
		{name: "text query is case insensitive", filter: SearchFilter{Query: "  AZ "}, want: []string{"Azul"}},
		{name: "like wildcards are literal", filter: SearchFilter{Query: "%"}, want: []string{}},
		{name: "solo players overlap", filter: SearchFilter{MinPlayers: ptr(1), MaxPlayers: ptr(1)}, want: []string{"Gloomhaven", "Spirit Island"}},
		{name: "min players above every max", filter: SearchFilter{MinPlayers: ptr(5)}, want: []string{}},
		{name: "playtime range", filter: SearchFilter{MinPlaytime: ptr(60), MaxPlaytime: ptr(100)}, want: []string{"Spirit Island"}},
		{name: "min age", filter: SearchFilter{MinAge: ptr(10)}, want: []string{"Azul"}},
		{name: "complexity range", filter: SearchFilter{ComplexityMin: ptr(3.0), ComplexityMax: ptr(5.0)}, want: []string{"Gloomhaven", "Spirit Island"}},
		{name: "complexity exact bound", filter: SearchFilter{ComplexityMax: ptr(4.0)}, want: []string{"Azul", "Spirit Island"}},
		{name: "category", filter: SearchFilter{CategoryIDs: []uint{fx.familyID}}, want: []string{"Azul"}},
		{name: "category combined with text", filter: SearchFilter{CategoryIDs: []uint{fx.cooperativeID}, Query: "island"}, want: []string{"Spirit Island"}},
		{name: "limit and offset", filter: SearchFilter{Limit: 2, Offset: 1}, want: []string{"Azul", "Spirit Island"}},
		{name: "offset past end", filter: SearchFilter{Offset: 10}, want: []string{}},
		{name: "sort by name asc", filter: SearchFilter{SortBy: "name", SortOrder: "asc"}, want: []string{"Azul", "Gloomhaven", "Spirit Island"}},
		{name: "sort defaults to desc", filter: SearchFilter{SortBy: "playtime_minutes"}, want: []string{"Gloomhaven", "Spirit Island", "Azul"}},
		{name: "all filters combined", filter: SearchFilter{Query: "o", MinPlayers: ptr(1), MaxPlayers: ptr(2), ComplexityMin: ptr(4.1), CategoryIDs: []uint{fx.strategyID}}, want: []string{"Gloomhaven"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			games, err := fx.store.SearchGames(context.Background(), tt.filter)
			if err != nil {
				t.Fatalf("search: %v", err)
			}
			if !equalNames(games, tt.want...) {
				t.Fatalf("expected %v, got %v", tt.want, names(games))
			}
		})
	}
}

func TestSearchGamesReturnsNumericComplexity(t *testing.T) {
	fx := newSearchFixture(t)

	games, err := fx.store.SearchGames(context.Background(), SearchFilter{Query: "gloomhaven"})
	if err != nil {
		t.Fatalf("search: %v", err)
	}
	if len(games) != 1 || games[0].ComplexityRating != 4.2 {
		t.Fatalf("expected complexity 4.2, got %+v", games)
	}
}

func TestSearchGamesDeduplicatesCategoryMatches(t *testing.T) {
	fx := newSearchFixture(t)
	ctx := context.Background()

	filter := SearchFilter{CategoryIDs: []uint{fx.strategyID, fx.cooperativeID}}
	games, err := fx.store.SearchGames(ctx, filter)
	if err != nil {
		t.Fatalf("search: %v", err)
	}
	if !equalNames(games, "Gloomhaven", "Spirit Island") {
		t.Fatalf("expected each game once, got %v", names(games))
	}

	// Gloomhaven matches both categories but must occupy a single slot.
	page, err := fx.store.SearchGames(ctx, SearchFilter{CategoryIDs: filter.CategoryIDs, Limit: 1, Offset: 1})
	if err != nil {
		t.Fatalf("search page: %v", err)
	}
	if !equalNames(page, "Spirit Island") {
		t.Fatalf("expected second page to hold Spirit Island, got %v", names(page))
	}

	total, err := fx.store.CountGames(ctx, filter)
	if err != nil {
		t.Fatalf("count: %v", err)
	}
	if total != 2 {
		t.Fatalf("expected 2 matches, got %d", total)
	}
}

func TestCountGamesIgnoresPagination(t *testing.T) {
	fx := newSearchFixture(t)

	total, err := fx.store.CountGames(context.Background(), SearchFilter{MinPlayers: ptr(1), Limit: 1, Offset: 2})
	if err != nil {
		t.Fatalf("count: %v", err)
	}
	if total != 3 {
		t.Fatalf("expected 3, got %d", total)
	}
}

func TestSearchGamesRejectsInvalidFilters(t *testing.T) {
	s := newTestStore(t)

	tests := []struct {
		name   string
		filter SearchFilter
		field  string
	}{
		{"complexity below range", SearchFilter{ComplexityMin: ptr(0.5)}, "complexity_min"},
		{"complexity above range", SearchFilter{ComplexityMax: ptr(5.5)}, "complexity_max"},
		{"inverted complexity", SearchFilter{ComplexityMin: ptr(4.0), ComplexityMax: ptr(2.0)}, "complexity_min"},
		{"negative min players", SearchFilter{MinPlayers: ptr(-1)}, "min_players"},
		{"negative max players", SearchFilter{MaxPlayers: ptr(-2)}, "max_players"},
		{"negative min playtime", SearchFilter{MinPlaytime: ptr(-30)}, "min_playtime"},
		{"negative max playtime", SearchFilter{MaxPlaytime: ptr(-1)}, "max_playtime"},
		{"negative min age", SearchFilter{MinAge: ptr(-8)}, "min_age"},
		{"limit too large", SearchFilter{Limit: 101}, "limit"},
		{"negative limit", SearchFilter{Limit: -1}, "limit"},
		{"negative offset", SearchFilter{Offset: -1}, "offset"},
		{"unknown sort key", SearchFilter{SortBy: "popularity"}, "sort_by"},
		{"unknown sort order", SearchFilter{SortBy: "name", SortOrder: "sideways"}, "sort_order"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := s.SearchGames(context.Background(), tt.filter)
			var verr *ValidationError
			if !errors.As(err, &verr) {
				t.Fatalf("expected validation error, got %v", err)
			}
			if verr.Field != tt.field {
				t.Fatalf("expected field %s, got %s", tt.field, verr.Field)
			}
		})
	}
}

func TestSearchGamesZeroBoundsAccepted(t *testing.T) {
	fx := newSearchFixture(t)

	games, err := fx.store.SearchGames(context.Background(), SearchFilter{MinPlayers: ptr(0), MinPlaytime: ptr(0), MaxPlaytime: ptr(0)})
	if err != nil {
		t.Fatalf("search: %v", err)
	}
	if len(games) != 0 {
		t.Fatalf("expected no game with zero playtime, got %v", names(games))
	}
}

func TestSearchGamesSortsUnratedLast(t *testing.T) {
	s := newTestStore(t, WithStatsProvider(fakeStats{
		1: {Rating: ptr(7.0), Rank: ptr(300)},
		2: {Rating: ptr(8.5), Rank: ptr(12)},
	}))
	ctx := context.Background()

	for i, name := range []string{"Carcassonne", "Brass"} {
		in := gameInput(name, 2, 4, 60, 10, 2.5)
		in.BGGID = ptr(i + 1)
		game := mustCreateGame(t, s, in)
		if _, err := s.UpdateBGGStats(ctx, game.ID); err != nil {
			t.Fatalf("update stats for %s: %v", name, err)
		}
	}
	mustCreateGame(t, s, gameInput("Homebrew", 2, 2, 30, 6, 1))

	tests := []struct {
		sortBy, order string
		want          []string
	}{
		{"bgg_rating", "desc", []string{"Brass", "Carcassonne", "Homebrew"}},
		{"bgg_rating", "asc", []string{"Carcassonne", "Brass", "Homebrew"}},
		{"bgg_rank", "desc", []string{"Carcassonne", "Brass", "Homebrew"}},
		{"external_rank", "asc", []string{"Brass", "Carcassonne", "Homebrew"}},
	}
	for _, tt := range tests {
		t.Run(tt.sortBy+" "+tt.order, func(t *testing.T) {
			games, err := s.SearchGames(ctx, SearchFilter{SortBy: tt.sortBy, SortOrder: tt.order})
			if err != nil {
				t.Fatalf("search: %v", err)
			}
			if !equalNames(games, tt.want...) {
				t.Fatalf("expected %v, got %v", tt.want, names(games))
			}
		})
	}
}

func TestNormalizeDefaults(t *testing.T) {
	f, err := SearchFilter{SortBy: "external_rating", CategoryIDs: []uint{3, 3, 1}}.Normalize()
	if err != nil {
		t.Fatalf("normalize: %v", err)
	}
	if f.Limit != DefaultSearchLimit || f.Offset != 0 {
		t.Fatalf("unexpected paging defaults %d/%d", f.Limit, f.Offset)
	}
	if f.SortOrder != "desc" {
		t.Fatalf("expected desc default, got %q", f.SortOrder)
	}
	if len(f.CategoryIDs) != 2 || f.CategoryIDs[0] != 3 || f.CategoryIDs[1] != 1 {
		t.Fatalf("expected deduplicated ids, got %v", f.CategoryIDs)
	}
}

func TestEscapeLike(t *testing.T) {
	if got := escapeLike(`50%_off\`); got != `50\%\_off\\` {
		t.Fatalf("unexpected escape %q", got)
	}
}
