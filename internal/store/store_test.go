package store

import (
	"context"
	"path/filepath"
	"sync"
	"testing"
	"time"

	"gamebeats/backend/internal/bgg"
	"gamebeats/backend/internal/database"
	"gamebeats/backend/internal/models"
)

// testClock advances one second per reading so timestamps are strictly ordered.
type testClock struct {
	mu  sync.Mutex
	now time.Time
}

func (c *testClock) Now() time.Time {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.now = c.now.Add(time.Second)
	return c.now
}

type fakeStats map[int]bgg.Stats

func (f fakeStats) FetchStats(_ context.Context, bggID int) (bgg.Stats, error) {
	stats, ok := f[bggID]
	if !ok {
		return bgg.Stats{}, bgg.ErrUnknownGame
	}
	return stats, nil
}

func newTestStore(t *testing.T, opts ...Option) *Store {
	t.Helper()

	db, err := database.Open(database.DriverSQLite, filepath.Join(t.TempDir(), "gamebeats_test.db"))
	if err != nil {
		t.Fatalf("open db: %v", err)
	}
	if err := database.Migrate(db); err != nil {
		t.Fatalf("migrate: %v", err)
	}
	sqlDB, err := db.DB()
	if err != nil {
		t.Fatalf("sql db: %v", err)
	}
	t.Cleanup(func() { _ = sqlDB.Close() })

	clock := &testClock{now: time.Date(2024, 1, 1, 12, 0, 0, 0, time.UTC)}
	return New(db, append([]Option{WithClock(clock.Now)}, opts...)...)
}

func ptr[T any](v T) *T { return &v }

func gameInput(name string, minPlayers, maxPlayers, playtime, age int, complexity float64) CreateGameInput {
	return CreateGameInput{
		Name:             name,
		Description:      name + " description",
		RulesText:        name + " rules",
		MinPlayers:       minPlayers,
		MaxPlayers:       maxPlayers,
		PlaytimeMinutes:  playtime,
		AgeRating:        age,
		ComplexityRating: complexity,
	}
}

func mustCreateGame(t *testing.T, s *Store, in CreateGameInput) models.Game {
	t.Helper()
	game, err := s.CreateGame(context.Background(), in)
	if err != nil {
		t.Fatalf("create game %q: %v", in.Name, err)
	}
	return game
}

func mustCreateCategory(t *testing.T, s *Store, name string) models.Category {
	t.Helper()
	category, err := s.CreateCategory(context.Background(), CreateCategoryInput{Name: name})
	if err != nil {
		t.Fatalf("create category %q: %v", name, err)
	}
	return category
}

func mustCreateSong(t *testing.T, s *Store, gameID uint, title string) models.Song {
	t.Helper()
	song, err := s.CreateSong(context.Background(), CreateSongInput{
		GameID:          gameID,
		Title:           title,
		SunoTrackID:     "suno_" + title,
		AudioURL:        "https://cdn.example.com/" + title + ".mp3",
		DurationSeconds: 180,
	})
	if err != nil {
		t.Fatalf("create song %q: %v", title, err)
	}
	return song
}

func names(games []models.Game) []string {
	out := make([]string, 0, len(games))
	for _, g := range games {
		out = append(out, g.Name)
	}
	return out
}

func equalNames(got []models.Game, want ...string) bool {
	if len(got) != len(want) {
		return false
	}
	for i := range want {
		if got[i].Name != want[i] {
			return false
		}
	}
	return true
}
