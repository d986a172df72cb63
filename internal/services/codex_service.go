package services

import (
	"context"

	"arboris/internal/models/db_models"
	"arboris/internal/models/request_models"
	"arboris/internal/models/response_models"
	"arboris/internal/repositories"
	"arboris/pkg/utils"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// Defaults applied to category views, matching the original hub rendering.
const (
	defaultCategoryIcon  = "📚"
	defaultCategoryColor = "var(--azul-genese)"
)

type CodexServiceInterface interface {
	ListArticles(ctx context.Context, categorySlug string) ([]response_models.ArticleResponse, error)
	CreateArticle(ctx context.Context, authorEmail string, request request_models.CreateArticleRequest) (*response_models.ArticleResponse, error)
	ListCategories(ctx context.Context) ([]response_models.CategoryResponse, error)
	CreateCategory(ctx context.Context, request request_models.CreateCategoryRequest) (*response_models.CategoryResponse, error)
}

type CodexService struct {
	articleRepo  repositories.ArticleRepositoryInterface
	categoryRepo repositories.CategoryRepositoryInterface
	userRepo     repositories.UserRepositoryInterface
	logger       *zap.Logger
}

func NewCodexService(
	articleRepo repositories.ArticleRepositoryInterface,
	categoryRepo repositories.CategoryRepositoryInterface,
	userRepo repositories.UserRepositoryInterface,
	logger *zap.Logger) CodexServiceInterface {
	return &CodexService{
		articleRepo:  articleRepo,
		categoryRepo: categoryRepo,
		userRepo:     userRepo,
		logger:       logger,
	}
}

func (s *CodexService) ListArticles(ctx context.Context, categorySlug string) ([]response_models.ArticleResponse, error) {
	articles, err := s.articleRepo.ListPublished(ctx, categorySlug)
	if err != nil {
		s.logger.Error("listing articles failed", zap.Error(err))
		return nil, utils.ErrDatabaseError
	}

	responses := make([]response_models.ArticleResponse, 0, len(articles))
	for _, article := range articles {
		responses = append(responses, toArticleResponse(article))
	}
	return responses, nil
}

func (s *CodexService) CreateArticle(ctx context.Context, authorEmail string, request request_models.CreateArticleRequest) (*response_models.ArticleResponse, error) {
	user, err := s.userRepo.FindByEmail(ctx, authorEmail)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}
	if user == nil {
		return nil, utils.ErrUserNotFound
	}

	if request.Title == "" || request.Slug == "" || request.Content == "" || request.CategoryID == "" {
		return nil, utils.ErrMissingFields
	}
	categoryID, err := uuid.Parse(request.CategoryID)
	if err != nil {
		return nil, utils.ErrMissingFields
	}

	article := &db_models.CodexArticle{
		Title:       request.Title,
		Slug:        request.Slug,
		Content:     request.Content,
		Excerpt:     request.Excerpt,
		CoverImage:  request.CoverImage,
		CategoryID:  categoryID,
		AuthorID:    user.ID,
		Tags:        request.Tags,
		IsPublished: request.IsPublished,
	}

	if err := s.articleRepo.Insert(ctx, article); err != nil {
		s.logger.Error("article creation failed", zap.Error(err))
		return nil, utils.ErrDatabaseError
	}

	// Reload so the response carries the author and category projections.
	created, err := s.articleRepo.FindByID(ctx, article.ID.String())
	if err != nil || created == nil {
		s.logger.Error("reloading created article failed", zap.Error(err))
		return nil, utils.ErrDatabaseError
	}

	response := toArticleResponse(*created)
	return &response, nil
}

func (s *CodexService) ListCategories(ctx context.Context) ([]response_models.CategoryResponse, error) {
	categories, err := s.categoryRepo.ListAll(ctx)
	if err != nil {
		s.logger.Error("listing categories failed", zap.Error(err))
		return nil, utils.ErrDatabaseError
	}

	counts, err := s.articleRepo.CountByCategory(ctx)
	if err != nil {
		s.logger.Error("counting articles failed", zap.Error(err))
		return nil, utils.ErrDatabaseError
	}

	responses := make([]response_models.CategoryResponse, 0, len(categories))
	for _, category := range categories {
		responses = append(responses, toCategoryResponse(category, counts[category.ID]))
	}
	return responses, nil
}

func (s *CodexService) CreateCategory(ctx context.Context, request request_models.CreateCategoryRequest) (*response_models.CategoryResponse, error) {
	if request.Name == "" || request.Slug == "" {
		return nil, utils.ErrMissingNameOrSlug
	}

	category := &db_models.CodexCategory{
		Name:        request.Name,
		Slug:        request.Slug,
		Description: request.Description,
		Icon:        request.Icon,
		Color:       request.Color,
	}

	if err := s.categoryRepo.Insert(ctx, category); err != nil {
		s.logger.Error("category creation failed", zap.Error(err))
		return nil, utils.ErrDatabaseError
	}

	response := toCategoryResponse(*category, 0)
	return &response, nil
}

func toArticleResponse(article db_models.CodexArticle) response_models.ArticleResponse {
	return response_models.ArticleResponse{
		ID:          article.ID.String(),
		Title:       article.Title,
		Slug:        article.Slug,
		Content:     article.Content,
		Excerpt:     article.Excerpt,
		CoverImage:  article.CoverImage,
		CategoryID:  article.CategoryID.String(),
		Tags:        article.Tags,
		IsPublished: article.IsPublished,
		CreatedAt:   article.CreatedAt,
		Author: response_models.ArticleAuthor{
			Name:  article.Author.Name,
			Image: article.Author.Image,
		},
		Category: response_models.ArticleCategory{
			Name:  article.Category.Name,
			Color: article.Category.Color,
		},
	}
}

func toCategoryResponse(category db_models.CodexCategory, articleCount int64) response_models.CategoryResponse {
	icon := category.Icon
	if icon == "" {
		icon = defaultCategoryIcon
	}
	color := category.Color
	if color == "" {
		color = defaultCategoryColor
	}
	return response_models.CategoryResponse{
		ID:           category.ID.String(),
		Name:         category.Name,
		Slug:         category.Slug,
		Description:  category.Description,
		Icon:         icon,
		Color:        color,
		ArticleCount: articleCount,
	}
}
