package models

import "time"

// Game represents a board game in the catalog.
type Game struct {
	ID                 uint      `gorm:"primaryKey" json:"id"`
	Name               string    `gorm:"size:255;not null;index" json:"name"`
	Description        string    `gorm:"type:text;not null" json:"description"`
	RulesText          string    `gorm:"type:text;not null" json:"rules_text"`
	MinPlayers         int       `gorm:"not null" json:"min_players"`
	MaxPlayers         int       `gorm:"not null" json:"max_players"`
	PlaytimeMinutes    int       `gorm:"not null" json:"playtime_minutes"`
	AgeRating          int       `gorm:"not null" json:"age_rating"`
	ComplexityRating   float64   `gorm:"type:numeric(3,2);not null" json:"complexity_rating"`
	BGGID              *int      `gorm:"column:bgg_id" json:"bgg_id"`
	BGGRating          *float64  `gorm:"column:bgg_rating;type:numeric(4,2)" json:"bgg_rating"`
	BGGRank            *int      `gorm:"column:bgg_rank" json:"bgg_rank"`
	AmazonLink         *string   `gorm:"type:text" json:"amazon_link"`
	BolLink            *string   `gorm:"type:text" json:"bol_link"`
	YoutubeTutorialURL *string   `gorm:"column:youtube_tutorial_url;type:text" json:"youtube_tutorial_url"`
	CoverImageURL      *string   `gorm:"column:cover_image_url;type:text" json:"cover_image_url"`
	CreatedAt          time.Time `gorm:"not null" json:"created_at"`
	UpdatedAt          time.Time `gorm:"not null" json:"updated_at"`
}
