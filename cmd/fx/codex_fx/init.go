package codex_fx

import (
	"arboris/internal/repositories"
	"arboris/internal/services"

	"go.uber.org/fx"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

var Module = fx.Provide(
	provideArticleRepo, provideCategoryRepo, provideCodexService)

func provideArticleRepo(db *gorm.DB) repositories.ArticleRepositoryInterface {
	return repositories.NewArticleRepository(db)
}

func provideCategoryRepo(db *gorm.DB) repositories.CategoryRepositoryInterface {
	return repositories.NewCategoryRepository(db)
}

func provideCodexService(
	articleRepo repositories.ArticleRepositoryInterface,
	categoryRepo repositories.CategoryRepositoryInterface,
	userRepo repositories.UserRepositoryInterface,
	logger *zap.Logger) services.CodexServiceInterface {
	return services.NewCodexService(articleRepo, categoryRepo, userRepo, logger)
}
