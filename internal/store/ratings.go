package store

import (
	"context"
	"strings"

	"gamebeats/backend/internal/models"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

const maxRaterIDLength = 45

// RatingSummary is the mean and count of a set of ratings.
type RatingSummary struct {
	AverageRating float64 `json:"average_rating"`
	TotalRatings  int64   `json:"total_ratings"`
}

// RateSong records a rater's rating of a song. A repeat rating from the same
// rater overwrites the previous value in a single INSERT ... ON CONFLICT
// statement backed by the (song_id, user_ip) unique index.
func (s *Store) RateSong(ctx context.Context, songID uint, raterID string, rating int) (models.SongRating, error) {
	raterID = strings.TrimSpace(raterID)
	if raterID == "" {
		return models.SongRating{}, invalid("user_ip", "is required")
	}
	if len(raterID) > maxRaterIDLength {
		return models.SongRating{}, invalid("user_ip", "must be at most %d characters", maxRaterIDLength)
	}
	if rating < 1 || rating > 5 {
		return models.SongRating{}, invalid("rating", "must be between 1 and 5")
	}

	db, cancel := s.session(ctx)
	defer cancel()

	var stored models.SongRating
	err := db.Transaction(func(tx *gorm.DB) error {
		if err := requireExists(tx, &models.Song{}, "song", songID); err != nil {
			return err
		}

		now := s.now()
		row := models.SongRating{
			SongID:    songID,
			UserIP:    raterID,
			Rating:    rating,
			CreatedAt: now,
			UpdatedAt: now,
		}
		err := tx.Clauses(clause.OnConflict{
			Columns: []clause.Column{{Name: "song_id"}, {Name: "user_ip"}},
			DoUpdates: clause.Assignments(map[string]any{
				"rating":     rating,
				"updated_at": now,
			}),
		}).Create(&row).Error
		if err != nil {
			return err
		}

		return tx.Where("song_id = ? AND user_ip = ?", songID, raterID).First(&stored).Error
	})
	if err != nil {
		return models.SongRating{}, wrap("rate song", err)
	}
	return stored, nil
}

// SongRatings aggregates all ratings of one song. A song without ratings
// yields a zero summary.
func (s *Store) SongRatings(ctx context.Context, songID uint) (RatingSummary, error) {
	db, cancel := s.session(ctx)
	defer cancel()

	var summary RatingSummary
	err := db.Model(&models.SongRating{}).
		Select("COALESCE(AVG(rating), 0) AS average_rating, COUNT(id) AS total_ratings").
		Where("song_id = ?", songID).
		Scan(&summary).Error
	if err != nil {
		return RatingSummary{}, wrap("song ratings", err)
	}
	return summary, nil
}

// GameRatings aggregates the ratings of every song of a game.
func (s *Store) GameRatings(ctx context.Context, gameID uint) (RatingSummary, error) {
	db, cancel := s.session(ctx)
	defer cancel()

	var summary RatingSummary
	err := db.Model(&models.SongRating{}).
		Select("COALESCE(AVG(song_ratings.rating), 0) AS average_rating, COUNT(song_ratings.id) AS total_ratings").
		Joins("JOIN songs ON songs.id = song_ratings.song_id").
		Where("songs.game_id = ?", gameID).
		Scan(&summary).Error
	if err != nil {
		return RatingSummary{}, wrap("game ratings", err)
	}
	return summary, nil
}
