package store

import (
	"context"
	"errors"
	"testing"

	"gamebeats/backend/internal/bgg"
	"gamebeats/backend/internal/models"
	"gamebeats/backend/pkg/nullable"
)

func TestCreateGameRoundTripsComplexity(t *testing.T) {
	s := newTestStore(t)
	ctx := context.Background()

	for _, complexity := range []float64{1, 1.84, 2.5, 3.33, 5} {
		created := mustCreateGame(t, s, gameInput("Game", 2, 4, 60, 10, complexity))
		fetched, err := s.GetGameByID(ctx, created.ID)
		if err != nil {
			t.Fatalf("get game: %v", err)
		}
		if fetched.ComplexityRating != complexity {
			t.Fatalf("expected complexity %v, got %v", complexity, fetched.ComplexityRating)
		}
	}
}

func TestCreateGameValidation(t *testing.T) {
	s := newTestStore(t)

	tests := []struct {
		name  string
		edit  func(*CreateGameInput)
		field string
	}{
		{"empty name", func(in *CreateGameInput) { in.Name = "  " }, "name"},
		{"min above max", func(in *CreateGameInput) { in.MinPlayers = 5 }, "min_players"},
		{"zero playtime", func(in *CreateGameInput) { in.PlaytimeMinutes = 0 }, "playtime_minutes"},
		{"negative age", func(in *CreateGameInput) { in.AgeRating = -1 }, "age_rating"},
		{"complexity too high", func(in *CreateGameInput) { in.ComplexityRating = 5.1 }, "complexity_rating"},
		{"relative link", func(in *CreateGameInput) { in.AmazonLink = ptr("/dp/123") }, "amazon_link"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			in := gameInput("Catan", 3, 4, 75, 10, 2.33)
			tt.edit(&in)
			_, err := s.CreateGame(context.Background(), in)
			var verr *ValidationError
			if !errors.As(err, &verr) || verr.Field != tt.field {
				t.Fatalf("expected validation error on %s, got %v", tt.field, err)
			}
		})
	}
}

func TestCreateGameWithUnknownCategoryRollsBack(t *testing.T) {
	s := newTestStore(t)
	ctx := context.Background()
	strategy := mustCreateCategory(t, s, "Strategy")

	in := gameInput("Catan", 3, 4, 75, 10, 2.33)
	in.CategoryIDs = []uint{strategy.ID, 999}
	if _, err := s.CreateGame(ctx, in); !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}

	games, err := s.ListGames(ctx)
	if err != nil {
		t.Fatalf("list games: %v", err)
	}
	if len(games) != 0 {
		t.Fatalf("expected no orphaned game, got %v", names(games))
	}
}

func TestGetGameByIDIncludesSongsAndCategories(t *testing.T) {
	s := newTestStore(t)
	ctx := context.Background()

	strategy := mustCreateCategory(t, s, "Strategy")
	family := mustCreateCategory(t, s, "Family")
	in := gameInput("Ticket to Ride", 2, 5, 60, 8, 1.84)
	in.CategoryIDs = []uint{strategy.ID, family.ID, strategy.ID}
	game := mustCreateGame(t, s, in)
	mustCreateSong(t, s, game.ID, "railway-blues")
	mustCreateSong(t, s, game.ID, "coast-to-coast")

	details, err := s.GetGameByID(ctx, game.ID)
	if err != nil {
		t.Fatalf("get game: %v", err)
	}
	if len(details.Songs) != 2 || details.Songs[0].Title != "railway-blues" {
		t.Fatalf("unexpected songs %+v", details.Songs)
	}
	if len(details.Categories) != 2 || details.Categories[0].Name != "Family" || details.Categories[1].Name != "Strategy" {
		t.Fatalf("unexpected categories %+v", details.Categories)
	}

	if _, err := s.GetGameByID(ctx, game.ID+100); !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}

func TestUpdateGamePatchSemantics(t *testing.T) {
	s := newTestStore(t)
	ctx := context.Background()

	strategy := mustCreateCategory(t, s, "Strategy")
	euro := mustCreateCategory(t, s, "Euro Game")

	in := gameInput("Wingspan", 1, 5, 70, 10, 2.44)
	in.BGGID = ptr(266192)
	in.AmazonLink = ptr("https://amazon.com/wingspan")
	in.BolLink = ptr("https://bol.com/wingspan")
	in.CategoryIDs = []uint{strategy.ID}
	created := mustCreateGame(t, s, in)

	updated, err := s.UpdateGame(ctx, UpdateGameInput{
		ID:          created.ID,
		Name:        nullable.Of("Wingspan (2nd edition)"),
		AmazonLink:  nullable.Null[string](),
		BGGID:       nullable.Null[int](),
		CategoryIDs: nullable.Of([]uint{euro.ID}),
	})
	if err != nil {
		t.Fatalf("update: %v", err)
	}

	if updated.Name != "Wingspan (2nd edition)" {
		t.Fatalf("name not updated: %q", updated.Name)
	}
	if updated.AmazonLink != nil || updated.BGGID != nil {
		t.Fatalf("expected explicit nulls to clear, got %v %v", updated.AmazonLink, updated.BGGID)
	}
	if updated.BolLink == nil || *updated.BolLink != "https://bol.com/wingspan" {
		t.Fatalf("absent field must be untouched, got %v", updated.BolLink)
	}
	if updated.PlaytimeMinutes != 70 || updated.ComplexityRating != 2.44 {
		t.Fatalf("absent numeric fields changed: %+v", updated)
	}
	if !updated.UpdatedAt.After(created.UpdatedAt) {
		t.Fatalf("expected updated_at to advance: %v -> %v", created.UpdatedAt, updated.UpdatedAt)
	}

	details, err := s.GetGameByID(ctx, created.ID)
	if err != nil {
		t.Fatalf("get game: %v", err)
	}
	if len(details.Categories) != 1 || details.Categories[0].ID != euro.ID {
		t.Fatalf("expected categories replaced by Euro Game, got %+v", details.Categories)
	}
}

func TestUpdateGameRejectsInvalidPatches(t *testing.T) {
	s := newTestStore(t)
	ctx := context.Background()
	created := mustCreateGame(t, s, gameInput("Azul", 2, 4, 45, 8, 1.8))

	tests := []struct {
		name  string
		in    UpdateGameInput
		field string
	}{
		{"null required field", UpdateGameInput{ID: created.ID, Name: nullable.Null[string]()}, "name"},
		{"min above existing max", UpdateGameInput{ID: created.ID, MinPlayers: nullable.Of(6)}, "min_players"},
		{"complexity out of range", UpdateGameInput{ID: created.ID, ComplexityRating: nullable.Of(0.5)}, "complexity_rating"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := s.UpdateGame(ctx, tt.in)
			var verr *ValidationError
			if !errors.As(err, &verr) || verr.Field != tt.field {
				t.Fatalf("expected validation error on %s, got %v", tt.field, err)
			}
		})
	}

	fetched, err := s.GetGameByID(ctx, created.ID)
	if err != nil {
		t.Fatalf("get game: %v", err)
	}
	if fetched.Name != "Azul" || fetched.MinPlayers != 2 {
		t.Fatalf("rejected patch must not be persisted: %+v", fetched.Game)
	}

	if _, err := s.UpdateGame(ctx, UpdateGameInput{ID: 404, Name: nullable.Of("x")}); !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}

func TestGameExists(t *testing.T) {
	s := newTestStore(t)
	ctx := context.Background()

	game := mustCreateGame(t, s, gameInput("Patchwork", 2, 2, 30, 8, 1.6))
	if err := s.GameExists(ctx, game.ID); err != nil {
		t.Fatalf("expected game %d to exist, got %v", game.ID, err)
	}
	if err := s.GameExists(ctx, game.ID+1); !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}

func TestDeleteGameCascades(t *testing.T) {
	s := newTestStore(t)
	ctx := context.Background()

	strategy := mustCreateCategory(t, s, "Strategy")
	in := gameInput("Pandemic", 2, 4, 45, 8, 2.4)
	in.CategoryIDs = []uint{strategy.ID}
	game := mustCreateGame(t, s, in)
	song := mustCreateSong(t, s, game.ID, "outbreak-alert")
	if _, err := s.RateSong(ctx, song.ID, "10.0.0.1", 4); err != nil {
		t.Fatalf("rate: %v", err)
	}

	deleted, err := s.DeleteGame(ctx, game.ID)
	if err != nil || !deleted {
		t.Fatalf("expected delete to succeed, got %v %v", deleted, err)
	}

	counts := map[string]any{
		"songs":     &models.Song{},
		"ratings":   &models.SongRating{},
		"relations": &models.GameCategoryRelation{},
	}
	for label, model := range counts {
		var n int64
		if err := s.db.Model(model).Count(&n).Error; err != nil {
			t.Fatalf("count %s: %v", label, err)
		}
		if n != 0 {
			t.Fatalf("expected %s to be removed, %d left", label, n)
		}
	}

	categories, err := s.Categories(ctx)
	if err != nil {
		t.Fatalf("categories: %v", err)
	}
	if len(categories) != 1 || categories[0].ID != strategy.ID {
		t.Fatalf("category must survive game deletion, got %+v", categories)
	}

	deleted, err = s.DeleteGame(ctx, game.ID)
	if err != nil || deleted {
		t.Fatalf("expected second delete to report false, got %v %v", deleted, err)
	}
}

func TestFeaturedGames(t *testing.T) {
	stats := fakeStats{}
	s := newTestStore(t, WithStatsProvider(stats))
	ctx := context.Background()

	qualifying := []float64{7.0, 7.1, 7.2, 7.3, 7.4, 7.5, 7.6, 7.7, 7.8, 7.9, 8.0, 8.1}
	for i, rating := range qualifying {
		stats[1000+i] = bgg.Stats{Rating: ptr(rating), Rank: ptr(100 - i)}
	}
	stats[1] = bgg.Stats{Rating: ptr(6.9), Rank: ptr(500)}
	stats[2] = bgg.Stats{Rating: nil, Rank: ptr(10)}
	stats[3] = bgg.Stats{Rating: ptr(9.5), Rank: nil}

	for id := range stats {
		in := gameInput("Game", 2, 4, 60, 10, 2)
		in.BGGID = ptr(id)
		game := mustCreateGame(t, s, in)
		if _, err := s.UpdateBGGStats(ctx, game.ID); err != nil {
			t.Fatalf("update stats: %v", err)
		}
	}

	featured, err := s.FeaturedGames(ctx)
	if err != nil {
		t.Fatalf("featured: %v", err)
	}
	if len(featured) != 10 {
		t.Fatalf("expected 10 featured games, got %d", len(featured))
	}
	for i, g := range featured {
		if g.BGGRating == nil || *g.BGGRating < 7.0 || g.BGGRank == nil {
			t.Fatalf("unqualified game featured: %+v", g)
		}
		if i > 0 && *featured[i-1].BGGRating < *g.BGGRating {
			t.Fatalf("featured games not ordered by rating desc")
		}
	}
	if *featured[0].BGGRating != 8.1 {
		t.Fatalf("expected top rating 8.1, got %v", *featured[0].BGGRating)
	}
}

func TestFeaturedGamesNewestFirstOnEqualRating(t *testing.T) {
	s := newTestStore(t, WithStatsProvider(fakeStats{
		1: {Rating: ptr(7.5), Rank: ptr(80)},
		2: {Rating: ptr(7.5), Rank: ptr(81)},
	}))
	ctx := context.Background()

	for i, name := range []string{"Older", "Newer"} {
		in := gameInput(name, 2, 4, 60, 10, 2)
		in.BGGID = ptr(i + 1)
		game := mustCreateGame(t, s, in)
		if _, err := s.UpdateBGGStats(ctx, game.ID); err != nil {
			t.Fatalf("update stats for %s: %v", name, err)
		}
	}

	featured, err := s.FeaturedGames(ctx)
	if err != nil {
		t.Fatalf("featured: %v", err)
	}
	if !equalNames(featured, "Newer", "Older") {
		t.Fatalf("expected newer game first on equal rating, got %v", names(featured))
	}
}

func TestUpdateBGGStats(t *testing.T) {
	s := newTestStore(t, WithStatsProvider(fakeStats{13: {Rating: ptr(7.1), Rank: ptr(239)}}))
	ctx := context.Background()

	in := gameInput("Catan", 3, 4, 75, 10, 2.33)
	in.BGGID = ptr(13)
	catan := mustCreateGame(t, s, in)

	updated, err := s.UpdateBGGStats(ctx, catan.ID)
	if err != nil {
		t.Fatalf("update stats: %v", err)
	}
	if updated.BGGRating == nil || *updated.BGGRating != 7.1 || updated.BGGRank == nil || *updated.BGGRank != 239 {
		t.Fatalf("stats not stored: %+v", updated)
	}
	if !updated.UpdatedAt.After(catan.UpdatedAt) {
		t.Fatalf("expected updated_at to advance")
	}

	noID := mustCreateGame(t, s, gameInput("Homebrew", 2, 2, 30, 6, 1))
	var verr *ValidationError
	if _, err := s.UpdateBGGStats(ctx, noID.ID); !errors.As(err, &verr) {
		t.Fatalf("expected validation error for missing bgg id, got %v", err)
	}
	if _, err := s.UpdateBGGStats(ctx, 9999); !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}

func TestUpdateBGGStatsProviderFailure(t *testing.T) {
	s := newTestStore(t, WithStatsProvider(fakeStats{}))
	in := gameInput("Obscure", 2, 4, 60, 10, 2)
	in.BGGID = ptr(424242)
	game := mustCreateGame(t, s, in)

	_, err := s.UpdateBGGStats(context.Background(), game.ID)
	if !errors.Is(err, ErrStatsProvider) || !errors.Is(err, bgg.ErrUnknownGame) {
		t.Fatalf("expected provider failure wrapping ErrUnknownGame, got %v", err)
	}

	bare := newTestStore(t)
	game = mustCreateGame(t, bare, in)
	if _, err := bare.UpdateBGGStats(context.Background(), game.ID); err == nil {
		t.Fatal("expected an error without a stats provider")
	}
}

func TestUpdateBGGStatsMissingGameWithoutProvider(t *testing.T) {
	s := newTestStore(t)

	_, err := s.UpdateBGGStats(context.Background(), 9999)
	if !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}
