package store

import (
	"context"
	"strings"

	"gamebeats/backend/internal/models"

	"gorm.io/gorm"
)

// CreateSongInput carries a generated track for an existing game.
type CreateSongInput struct {
	GameID          uint    `json:"game_id" binding:"required"`
	Title           string  `json:"title" binding:"required"`
	Description     *string `json:"description"`
	SunoTrackID     string  `json:"suno_track_id" binding:"required"`
	AudioURL        string  `json:"audio_url" binding:"required,url"`
	DurationSeconds int     `json:"duration_seconds" binding:"required,gt=0"`
	Genre           *string `json:"genre"`
}

// SongWithRating is a song plus its rating summary. AverageRating is nil
// while the song has no ratings.
type SongWithRating struct {
	models.Song
	AverageRating *float64 `json:"average_rating"`
	TotalRatings  int64    `json:"total_ratings"`
}

func validateSong(in CreateSongInput) error {
	if strings.TrimSpace(in.Title) == "" {
		return invalid("title", "is required")
	}
	if len(in.Title) > 255 {
		return invalid("title", "must be at most 255 characters")
	}
	if strings.TrimSpace(in.SunoTrackID) == "" {
		return invalid("suno_track_id", "is required")
	}
	if len(in.SunoTrackID) > 100 {
		return invalid("suno_track_id", "must be at most 100 characters")
	}
	if !validURL(in.AudioURL) {
		return invalid("audio_url", "must be an absolute http(s) URL")
	}
	if in.DurationSeconds <= 0 {
		return invalid("duration_seconds", "must be positive")
	}
	if in.Genre != nil && len(*in.Genre) > 100 {
		return invalid("genre", "must be at most 100 characters")
	}
	return nil
}

// CreateSong adds a song to an existing game.
func (s *Store) CreateSong(ctx context.Context, in CreateSongInput) (models.Song, error) {
	if err := validateSong(in); err != nil {
		return models.Song{}, err
	}

	db, cancel := s.session(ctx)
	defer cancel()

	song := models.Song{
		GameID:          in.GameID,
		Title:           strings.TrimSpace(in.Title),
		Description:     in.Description,
		SunoTrackID:     in.SunoTrackID,
		AudioURL:        in.AudioURL,
		DurationSeconds: in.DurationSeconds,
		Genre:           in.Genre,
		CreatedAt:       s.now(),
	}
	err := db.Transaction(func(tx *gorm.DB) error {
		if err := requireExists(tx, &models.Game{}, "game", in.GameID); err != nil {
			return err
		}
		return tx.Create(&song).Error
	})
	if err != nil {
		return models.Song{}, wrap("create song", err)
	}
	return song, nil
}

// GetSong loads a single song.
func (s *Store) GetSong(ctx context.Context, id uint) (models.Song, error) {
	db, cancel := s.session(ctx)
	defer cancel()

	var song models.Song
	if err := db.First(&song, id).Error; err != nil {
		return models.Song{}, wrap("get song", err)
	}
	return song, nil
}

// SongsByGame lists a game's songs in insertion order with their ratings.
func (s *Store) SongsByGame(ctx context.Context, gameID uint) ([]SongWithRating, error) {
	db, cancel := s.session(ctx)
	defer cancel()

	songs := make([]models.Song, 0)
	if err := db.Where("game_id = ?", gameID).Order("id").Find(&songs).Error; err != nil {
		return nil, wrap("songs by game", err)
	}

	type aggregate struct {
		SongID        uint
		AverageRating *float64
		TotalRatings  int64
	}
	var rows []aggregate
	err := db.Model(&models.SongRating{}).
		Select("song_ratings.song_id AS song_id, AVG(song_ratings.rating) AS average_rating, COUNT(song_ratings.id) AS total_ratings").
		Joins("JOIN songs ON songs.id = song_ratings.song_id").
		Where("songs.game_id = ?", gameID).
		Group("song_ratings.song_id").
		Scan(&rows).Error
	if err != nil {
		return nil, wrap("songs by game", err)
	}

	bySong := make(map[uint]aggregate, len(rows))
	for _, r := range rows {
		bySong[r.SongID] = r
	}

	result := make([]SongWithRating, 0, len(songs))
	for _, song := range songs {
		item := SongWithRating{Song: song}
		if agg, ok := bySong[song.ID]; ok {
			item.AverageRating = agg.AverageRating
			item.TotalRatings = agg.TotalRatings
		}
		result = append(result, item)
	}
	return result, nil
}

func requireExists(tx *gorm.DB, model any, kind string, id uint) error {
	var count int64
	if err := tx.Model(model).Where("id = ?", id).Count(&count).Error; err != nil {
		return err
	}
	if count == 0 {
		return notFound(kind, id)
	}
	return nil
}
