package models

import "time"

// Category represents a game category (e.g., "Strategy", "Cooperative").
type Category struct {
	ID          uint      `gorm:"primaryKey" json:"id"`
	Name        string    `gorm:"size:100;not null" json:"name"`
	Description *string   `gorm:"type:text" json:"description"`
	CreatedAt   time.Time `gorm:"not null" json:"created_at"`
}

func (Category) TableName() string { return "game_categories" }

// GameCategoryRelation links games and categories.
// The primary key is a composite of (GameID, CategoryID).
type GameCategoryRelation struct {
	GameID     uint `gorm:"primaryKey"`
	CategoryID uint `gorm:"primaryKey;index"`

	Game     *Game     `gorm:"foreignKey:GameID;references:ID;constraint:OnUpdate:CASCADE,OnDelete:CASCADE;"`
	Category *Category `gorm:"foreignKey:CategoryID;references:ID;constraint:OnUpdate:CASCADE,OnDelete:CASCADE;"`
}

func (GameCategoryRelation) TableName() string { return "game_category_relations" }
