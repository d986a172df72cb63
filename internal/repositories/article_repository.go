package repositories

import (
	"context"
	"errors"

	"arboris/internal/models/db_models"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type ArticleRepositoryInterface interface {
	ListPublished(ctx context.Context, categorySlug string) ([]db_models.CodexArticle, error)
	Insert(ctx context.Context, article *db_models.CodexArticle) error
	FindByID(ctx context.Context, id string) (*db_models.CodexArticle, error)
	CountByCategory(ctx context.Context) (map[uuid.UUID]int64, error)
}

type articleRepository struct {
	db *gorm.DB
}

func NewArticleRepository(db *gorm.DB) ArticleRepositoryInterface {
	return &articleRepository{db: db}
}

// ListPublished returns published articles newest first. A categorySlug of ""
// or "all" means no category filter.
func (a *articleRepository) ListPublished(ctx context.Context, categorySlug string) ([]db_models.CodexArticle, error) {
	query := a.db.WithContext(ctx).
		Preload("Author").
		Preload("Category").
		Where("is_published = ?", true)

	if categorySlug != "" && categorySlug != "all" {
		query = query.
			Joins("JOIN codex_categories ON codex_categories.id = codex_articles.category_id").
			Where("codex_categories.slug = ?", categorySlug)
	}

	var articles []db_models.CodexArticle
	err := query.Order("codex_articles.created_at DESC").Find(&articles).Error
	if err != nil {
		return nil, err
	}
	return articles, nil
}

func (a *articleRepository) Insert(ctx context.Context, article *db_models.CodexArticle) error {
	return a.db.WithContext(ctx).Create(article).Error
}

func (a *articleRepository) FindByID(ctx context.Context, id string) (*db_models.CodexArticle, error) {
	var article db_models.CodexArticle
	err := a.db.WithContext(ctx).
		Preload("Author").
		Preload("Category").
		First(&article, "id = ?", id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &article, nil
}

func (a *articleRepository) CountByCategory(ctx context.Context) (map[uuid.UUID]int64, error) {
	var rows []struct {
		CategoryID uuid.UUID
		Count      int64
	}
	err := a.db.WithContext(ctx).
		Model(&db_models.CodexArticle{}).
		Select("category_id, count(*) as count").
		Group("category_id").
		Find(&rows).Error
	if err != nil {
		return nil, err
	}

	counts := make(map[uuid.UUID]int64, len(rows))
	for _, row := range rows {
		counts[row.CategoryID] = row.Count
	}
	return counts, nil
}
