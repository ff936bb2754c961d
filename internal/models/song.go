package models

import "time"

// Song is an AI-generated soundtrack track that belongs to exactly one game.
type Song struct {
	ID              uint      `gorm:"primaryKey" json:"id"`
	GameID          uint      `gorm:"not null;index" json:"game_id"`
	Title           string    `gorm:"size:255;not null" json:"title"`
	Description     *string   `gorm:"type:text" json:"description"`
	SunoTrackID     string    `gorm:"size:100;not null" json:"suno_track_id"`
	AudioURL        string    `gorm:"type:text;not null" json:"audio_url"`
	DurationSeconds int       `gorm:"not null" json:"duration_seconds"`
	Genre           *string   `gorm:"size:100" json:"genre"`
	CreatedAt       time.Time `gorm:"not null" json:"created_at"`

	Game *Game `gorm:"foreignKey:GameID;references:ID;constraint:OnUpdate:CASCADE,OnDelete:CASCADE;" json:"-"`
}
