// Package seed loads a small demo catalog into an empty database.
package seed

import (
	"context"
	"fmt"
	"log"
	"time"

	"gamebeats/backend/internal/bgg"
	"gamebeats/backend/internal/models"
	"gamebeats/backend/internal/store"

	"gorm.io/gorm"
)

// Summary counts the rows created by Run.
type Summary struct {
	Categories int
	Games      int
	Relations  int
	Songs      int
	Ratings    int
}

type category struct {
	name        string
	description string
}

var categories = []category{
	{"Strategy", "Games that reward long-term planning"},
	{"Family", "Games suitable for all ages"},
	{"Card Game", "Games played mainly with cards"},
	{"Cooperative", "Players win or lose together"},
	{"Euro Game", "Strategy games with indirect player interaction"},
	{"Worker Placement", "Players place workers to claim actions"},
}

type song struct {
	title       string
	description string
	trackID     string
	audioURL    string
	duration    int
	genre       string
}

type game struct {
	input      store.CreateGameInput
	rating     float64
	rank       int
	categories []string
	songs      []song
}

func str(s string) *string { return &s }
func num(n int) *int { return &n }

var games = []game{
	{
		input: store.CreateGameInput{
			Name:               "Ticket to Ride",
			Description:        "Collect train cards and claim railway routes connecting cities across North America.",
			RulesText:          "On your turn draw two train cards, claim a route by discarding matching cards, or draw destination tickets. Longer routes score more; completed tickets add points and unfinished ones subtract them.",
			MinPlayers:         2,
			MaxPlayers:         5,
			PlaytimeMinutes:    60,
			AgeRating:          8,
			ComplexityRating:   1.84,
			BGGID:              num(9209),
			AmazonLink:         str("https://amazon.com/Ticket-Ride-Board-Game/dp/B0009MRZK0"),
			BolLink:            str("https://bol.com/nl/p/ticket-to-ride/9200000023456789"),
			YoutubeTutorialURL: str("https://youtube.com/watch?v=qHmf1bau9xQ"),
			CoverImageURL:      str("https://picsum.photos/seed/tickettoride/300/300"),
		},
		rating:     7.4,
		rank:       111,
		categories: []string{"Family", "Strategy"},
		songs: []song{
			{"All Aboard the Victory Train", "Upbeat folk about crossing America by rail", "suno_ttr_001", "https://www.soundjay.com/misc/sounds/bell-ringing-05.mp3", 180, "Folk"},
			{"Railway Blues", "A blues tune about racing for routes", "suno_ttr_002", "https://www.soundjay.com/misc/sounds/bell-ringing-04.mp3", 165, "Blues"},
			{"Coast to Coast Express", "Energetic country about linking distant cities", "suno_ttr_003", "https://www.soundjay.com/misc/sounds/bell-ringing-03.mp3", 195, "Country"},
		},
	},
	{
		input: store.CreateGameInput{
			Name:               "Pandemic",
			Description:        "A team of specialists treats infections around the world while researching cures.",
			RulesText:          "Each turn take four actions, draw two player cards and infect cities. Trade cards to collect five of a color and discover a cure. Everyone loses when outbreaks, cubes or cards run out.",
			MinPlayers:         2,
			MaxPlayers:         4,
			PlaytimeMinutes:    45,
			AgeRating:          8,
			ComplexityRating:   2.40,
			BGGID:              num(30549),
			AmazonLink:         str("https://amazon.com/Z-Man-Games-Pandemic-Board/dp/B00A2HD40E"),
			BolLink:            str("https://bol.com/nl/p/pandemic-board-game/9200000045678901"),
			YoutubeTutorialURL: str("https://youtube.com/watch?v=ytK1zB8rf4E"),
			CoverImageURL:      str("https://picsum.photos/seed/pandemic/300/300"),
		},
		rating:     7.6,
		rank:       54,
		categories: []string{"Cooperative", "Strategy"},
		songs: []song{
			{"Heroes in Hazmat", "Orchestral piece for the disease fighters", "suno_pandemic_001", "https://www.soundjay.com/misc/sounds/clock-ticking-3.mp3", 210, "Orchestral"},
			{"Outbreak Alert", "Tense electronic track about spreading infections", "suno_pandemic_002", "https://www.soundjay.com/misc/sounds/clock-ticking-2.mp3", 155, "Electronic"},
			{"Cure Discovery", "Triumphant anthem for a scientific breakthrough", "suno_pandemic_003", "https://www.soundjay.com/misc/sounds/clock-ticking-1.mp3", 175, "Cinematic"},
		},
	},
	{
		input: store.CreateGameInput{
			Name:               "Catan",
			Description:        "Build settlements, cities and roads on the island of Catan with resources produced by dice rolls.",
			RulesText:          "Roll the dice to produce resources, trade with other players or the bank, then build. A seven moves the robber. The first player to reach ten victory points wins.",
			MinPlayers:         3,
			MaxPlayers:         4,
			PlaytimeMinutes:    75,
			AgeRating:          10,
			ComplexityRating:   2.33,
			BGGID:              num(13),
			AmazonLink:         str("https://amazon.com/Catan-Board-Game-Base/dp/B00U26V4VQ"),
			BolLink:            str("https://bol.com/nl/p/catan-board-game/9200000067890123"),
			YoutubeTutorialURL: str("https://youtube.com/watch?v=o3WJsnDnbUc"),
			CoverImageURL:      str("https://picsum.photos/seed/catan/300/300"),
		},
		rating:     7.1,
		rank:       239,
		categories: []string{"Strategy", "Family"},
		songs: []song{
			{"Settlers of the New World", "Medieval ballad about building a civilization", "suno_catan_001", "https://www.soundjay.com/misc/sounds/magic-chime-02.mp3", 190, "Medieval"},
			{"The Robber's March", "Dark tune for the dreaded robber", "suno_catan_002", "https://www.soundjay.com/misc/sounds/magic-chime-01.mp3", 140, "Dark Ambient"},
			{"Longest Road Celebration", "Victory march for the longest road", "suno_catan_003", "https://www.soundjay.com/misc/sounds/magic-chime-03.mp3", 160, "March"},
		},
	},
	{
		input: store.CreateGameInput{
			Name:               "Wingspan",
			Description:        "Bird enthusiasts attract birds to their wildlife preserves in a card-driven engine builder.",
			RulesText:          "Over four rounds play birds into forest, grassland or wetland, gain food, lay eggs or draw cards. Each new bird strengthens its habitat's action. Score birds, eggs, cached food and round goals.",
			MinPlayers:         1,
			MaxPlayers:         5,
			PlaytimeMinutes:    70,
			AgeRating:          10,
			ComplexityRating:   2.44,
			BGGID:              num(266192),
			AmazonLink:         str("https://amazon.com/Stonemaier-Games-Wingspan-Board-Game/dp/B07YQ641NQ"),
			BolLink:            str("https://bol.com/nl/p/wingspan-board-game/9200000089012345"),
			YoutubeTutorialURL: str("https://youtube.com/watch?v=xcQ77lmOzog"),
			CoverImageURL:      str("https://picsum.photos/seed/wingspan/300/300"),
		},
		rating:     8.1,
		rank:       25,
		categories: []string{"Strategy", "Euro Game"},
		songs: []song{
			{"Avian Symphony", "Orchestral piece with bird calls", "suno_wingspan_001", "https://www.soundjay.com/misc/sounds/bird-2.mp3", 220, "Classical"},
			{"Wingspan Waltz", "An elegant waltz of birds in flight", "suno_wingspan_002", "https://www.soundjay.com/misc/sounds/bird-1.mp3", 185, "Waltz"},
			{"Engine Building Blues", "Smooth jazz about growing a bird engine", "suno_wingspan_003", "https://www.soundjay.com/misc/sounds/bird-3.mp3", 200, "Jazz"},
		},
	},
}

// ratedSongs is how many of the first songs receive demo ratings.
const ratedSongs = 6

// stats serves the bundled BoardGameGeek figures so seeding works offline.
type stats map[int]bgg.Stats

func (s stats) FetchStats(_ context.Context, bggID int) (bgg.Stats, error) {
	st, ok := s[bggID]
	if !ok {
		return bgg.Stats{}, bgg.ErrUnknownGame
	}
	return st, nil
}

func bundledStats() stats {
	out := make(stats, len(games))
	for _, g := range games {
		rating, rank := g.rating, g.rank
		out[*g.input.BGGID] = bgg.Stats{Rating: &rating, Rank: &rank}
	}
	return out
}

// Run inserts the demo catalog through the store in a single transaction, so
// a failure part way leaves the database empty and IfEmpty can retry.
func Run(ctx context.Context, db *gorm.DB, timeout time.Duration) (Summary, error) {
	return run(ctx, db, timeout, bundledStats())
}

func run(ctx context.Context, db *gorm.DB, timeout time.Duration, provider store.StatsProvider) (Summary, error) {
	var sum Summary
	err := db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var err error
		sum, err = load(ctx, store.New(tx, store.WithTimeout(timeout), store.WithStatsProvider(provider)))
		return err
	})
	if err != nil {
		return Summary{}, err
	}
	return sum, nil
}

func load(ctx context.Context, s *store.Store) (Summary, error) {
	var sum Summary

	categoryIDs := make(map[string]uint, len(categories))
	for _, c := range categories {
		created, err := s.CreateCategory(ctx, store.CreateCategoryInput{Name: c.name, Description: str(c.description)})
		if err != nil {
			return sum, fmt.Errorf("seed category %q: %w", c.name, err)
		}
		categoryIDs[c.name] = created.ID
		sum.Categories++
	}

	var songIDs []uint
	for _, g := range games {
		in := g.input
		for _, name := range g.categories {
			in.CategoryIDs = append(in.CategoryIDs, categoryIDs[name])
		}
		created, err := s.CreateGame(ctx, in)
		if err != nil {
			return sum, fmt.Errorf("seed game %q: %w", in.Name, err)
		}
		sum.Games++
		sum.Relations += len(in.CategoryIDs)

		if _, err := s.UpdateBGGStats(ctx, created.ID); err != nil {
			return sum, fmt.Errorf("seed stats for %q: %w", in.Name, err)
		}

		for _, sg := range g.songs {
			track, err := s.CreateSong(ctx, store.CreateSongInput{
				GameID:          created.ID,
				Title:           sg.title,
				Description:     str(sg.description),
				SunoTrackID:     sg.trackID,
				AudioURL:        sg.audioURL,
				DurationSeconds: sg.duration,
				Genre:           str(sg.genre),
			})
			if err != nil {
				return sum, fmt.Errorf("seed song %q: %w", sg.title, err)
			}
			songIDs = append(songIDs, track.ID)
			sum.Songs++
		}
	}

	// Three to five ratings each on the first songs, from distinct addresses.
	for i, songID := range songIDs {
		if i >= ratedSongs {
			break
		}
		for j := 0; j < 3+i%3; j++ {
			rater := fmt.Sprintf("192.168.1.%d", i*10+j+1)
			if _, err := s.RateSong(ctx, songID, rater, (i+j)%5+1); err != nil {
				return sum, fmt.Errorf("seed rating: %w", err)
			}
			sum.Ratings++
		}
	}

	return sum, nil
}

// IfEmpty seeds only when the games table has no rows. It reports whether
// seeding happened.
func IfEmpty(ctx context.Context, db *gorm.DB, timeout time.Duration) (bool, error) {
	var count int64
	if err := db.WithContext(ctx).Model(&models.Game{}).Count(&count).Error; err != nil {
		return false, fmt.Errorf("check seeded: %w", err)
	}
	if count > 0 {
		log.Println("Database already contains data, skipping seed.")
		return false, nil
	}

	log.Println("Database is empty, running seed...")
	sum, err := Run(ctx, db, timeout)
	if err != nil {
		return false, err
	}
	log.Printf("Seeded %d categories, %d games, %d category links, %d songs, %d ratings.",
		sum.Categories, sum.Games, sum.Relations, sum.Songs, sum.Ratings)
	return true, nil
}
