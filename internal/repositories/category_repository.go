package repositories

import (
	"context"

	"arboris/internal/models/db_models"

	"gorm.io/gorm"
)

type CategoryRepositoryInterface interface {
	ListAll(ctx context.Context) ([]db_models.CodexCategory, error)
	Insert(ctx context.Context, category *db_models.CodexCategory) error
}

type categoryRepository struct {
	db *gorm.DB
}

func NewCategoryRepository(db *gorm.DB) CategoryRepositoryInterface {
	return &categoryRepository{db: db}
}

// ListAll orders alphabetically by name; every other listing in the system is
// newest first, categories are the exception.
func (c *categoryRepository) ListAll(ctx context.Context) ([]db_models.CodexCategory, error) {
	var categories []db_models.CodexCategory
	err := c.db.WithContext(ctx).Order("name ASC").Find(&categories).Error
	if err != nil {
		return nil, err
	}
	return categories, nil
}

func (c *categoryRepository) Insert(ctx context.Context, category *db_models.CodexCategory) error {
	return c.db.WithContext(ctx).Create(category).Error
}
