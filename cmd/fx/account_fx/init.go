package account_fx

import (
	"arboris/internal/repositories"
	"arboris/internal/services"

	"go.uber.org/fx"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

var Module = fx.Provide(
	provideUserRepo, provideAccountService)

func provideUserRepo(db *gorm.DB) repositories.UserRepositoryInterface {
	return repositories.NewUserRepository(db)
}

func provideAccountService(userRepo repositories.UserRepositoryInterface, logger *zap.Logger) services.AccountServiceInterface {
	return services.NewAccountService(userRepo, logger)
}
