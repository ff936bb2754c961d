package models

import "time"

// SongRating is one rater's 1-5 star rating of a song.
// The unique index on (SongID, UserIP) keeps one row per rater and song.
type SongRating struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	SongID    uint      `gorm:"not null;uniqueIndex:uq_song_ratings_song_rater" json:"song_id"`
	UserIP    string    `gorm:"size:45;not null;uniqueIndex:uq_song_ratings_song_rater" json:"user_ip"`
	Rating    int       `gorm:"not null;check:rating >= 1 AND rating <= 5" json:"rating"`
	CreatedAt time.Time `gorm:"not null" json:"created_at"`
	UpdatedAt time.Time `gorm:"not null" json:"updated_at"`

	Song *Song `gorm:"foreignKey:SongID;references:ID;constraint:OnUpdate:CASCADE,OnDelete:CASCADE;" json:"-"`
}
