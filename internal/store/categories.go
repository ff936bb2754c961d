package store

import (
	"context"
	"strings"

	"gamebeats/backend/internal/models"
)

type CreateCategoryInput struct {
	Name        string  `json:"name" binding:"required"`
	Description *string `json:"description"`
}

func (s *Store) CreateCategory(ctx context.Context, in CreateCategoryInput) (models.Category, error) {
	name := strings.TrimSpace(in.Name)
	if name == "" {
		return models.Category{}, invalid("name", "is required")
	}
	if len(name) > 100 {
		return models.Category{}, invalid("name", "must be at most 100 characters")
	}

	db, cancel := s.session(ctx)
	defer cancel()

	category := models.Category{Name: name, Description: in.Description, CreatedAt: s.now()}
	if err := db.Create(&category).Error; err != nil {
		return models.Category{}, wrap("create category", err)
	}
	return category, nil
}

// Categories lists all categories by name.
func (s *Store) Categories(ctx context.Context) ([]models.Category, error) {
	db, cancel := s.session(ctx)
	defer cancel()

	categories := make([]models.Category, 0)
	if err := db.Order("name").Order("id").Find(&categories).Error; err != nil {
		return nil, wrap("list categories", err)
	}
	return categories, nil
}
