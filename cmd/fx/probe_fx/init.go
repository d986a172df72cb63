package probe_fx

import (
	"arboris/internal/repositories"
	"arboris/internal/services"

	"go.uber.org/fx"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

var Module = fx.Provide(
	provideAnalysisRepo, provideAnalysisService)

func provideAnalysisRepo(db *gorm.DB) repositories.AnalysisRepositoryInterface {
	return repositories.NewAnalysisRepository(db)
}

func provideAnalysisService(
	analysisRepo repositories.AnalysisRepositoryInterface,
	userRepo repositories.UserRepositoryInterface,
	logger *zap.Logger) services.AnalysisServiceInterface {
	return services.NewAnalysisService(analysisRepo, userRepo, logger)
}
