package main

import (
	"arboris/internal/infra"
	"arboris/internal/models/db_models"
	"arboris/pkg/utils"

	"github.com/joho/godotenv"
	"go.uber.org/zap"
	"gorm.io/gorm/clause"
)

// Seeds the operator accounts and the initial Codex categories. Re-running is
// safe: everything upserts on its unique key and never overwrites.
func main() {
	_ = godotenv.Load()

	logger, _ := zap.NewProduction()
	defer func() { _ = logger.Sync() }()
	zap.ReplaceGlobals(logger)

	db := infra.InitPostgresql()
	defer infra.ClosePostgresql(db)

	if err := db.AutoMigrate(
		&db_models.User{},
		&db_models.Notification{},
		&db_models.PlantAnalysis{},
		&db_models.CodexCategory{},
		&db_models.CodexArticle{},
	); err != nil {
		logger.Fatal("migration failed", zap.Error(err))
	}

	admins := []struct {
		Name     string
		Email    string
		Password string
	}{
		{"John Doe", "john@doe.com", "johndoe123"},
		{"ARBORIS Admin", "admin@arboris.ai", "ArborisAI2024!"},
		{"VULCANO Chief Architect", "vulcano@arboris.ai", "Vulc@n0Arb0r!s2024#Secure"},
	}

	for _, admin := range admins {
		hash, err := utils.HashPassword(admin.Password)
		if err != nil {
			logger.Fatal("hashing failed", zap.Error(err))
		}
		user := db_models.User{
			Name:         admin.Name,
			Email:        admin.Email,
			PasswordHash: hash,
			Role:         "admin",
		}
		err = db.Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "email"}},
			DoNothing: true,
		}).Create(&user).Error
		if err != nil {
			logger.Fatal("seeding admin failed", zap.String("email", admin.Email), zap.Error(err))
		}
		logger.Info("seeded admin user", zap.String("email", admin.Email))
	}

	categories := []db_models.CodexCategory{
		{
			Name:        "Identificação de Plantas",
			Slug:        "identificacao",
			Description: "Guias completos para identificação de espécies vegetais",
			Icon:        "🔍",
			Color:       "#00F5A0",
		},
		{
			Name:        "Cuidados e Manutenção",
			Slug:        "cuidados",
			Description: "Melhores práticas para saúde e crescimento",
			Icon:        "🌿",
			Color:       "#00D9FF",
		},
		{
			Name:        "Doenças e Pragas",
			Slug:        "doencas",
			Description: "Diagnóstico e tratamento de problemas comuns",
			Icon:        "🐛",
			Color:       "#FF6B6B",
		},
		{
			Name:        "Botânica Avançada",
			Slug:        "botanica",
			Description: "Conhecimento científico aprofundado",
			Icon:        "🔬",
			Color:       "#9D4EDD",
		},
		{
			Name:        "Sustentabilidade",
			Slug:        "sustentabilidade",
			Description: "Práticas ecológicas e conservação",
			Icon:        "🌍",
			Color:       "#06FFA5",
		},
	}

	for i := range categories {
		err := db.Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "slug"}},
			DoNothing: true,
		}).Create(&categories[i]).Error
		if err != nil {
			logger.Fatal("seeding category failed", zap.String("slug", categories[i].Slug), zap.Error(err))
		}
		logger.Info("seeded category", zap.String("slug", categories[i].Slug))
	}

	logger.Info("seeding completed")
}
