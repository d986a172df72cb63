package main

import (
	"context"
	"os"

	"arboris/cmd/fx/account_fx"
	"arboris/cmd/fx/codex_fx"
	"arboris/cmd/fx/controllers_fx"
	"arboris/cmd/fx/db_fx"
	"arboris/cmd/fx/logger_fx"
	"arboris/cmd/fx/notification_fx"
	"arboris/cmd/fx/probe_fx"
	"arboris/internal/api/controllers"
	"arboris/pkg/middleware"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	"go.uber.org/fx"
	"go.uber.org/fx/fxevent"
	"go.uber.org/zap"
)

func main() {
	_ = godotenv.Load()

	app := fx.New(
		logger_fx.Module,
		db_fx.Module,
		account_fx.Module,
		codex_fx.Module,
		notification_fx.Module,
		probe_fx.Module,
		controllers_fx.Module,

		fx.Provide(ProvideRouter),
		fx.Invoke(StartServer),

		fx.WithLogger(func(logger *zap.Logger) fxevent.Logger {
			return &fxevent.ZapLogger{Logger: logger}
		}),
	)

	app.Run()
}

func StartServer(lc fx.Lifecycle, engine *gin.Engine, logger *zap.Logger) {
	lc.Append(fx.Hook{
		OnStart: func(ctx context.Context) error {
			port := os.Getenv("PORT")
			if port == "" {
				port = "8080"
			}
			go func() {
				logger.Info("starting HTTP server", zap.String("port", port))
				if err := engine.Run(":" + port); err != nil {
					logger.Fatal("failed to start server", zap.Error(err))
				}
			}()
			return nil
		},
		OnStop: func(ctx context.Context) error {
			logger.Info("stopping HTTP server")
			return nil
		},
	})
}

func ProvideRouter(
	accountController *controllers.AccountController,
	codexController *controllers.CodexController,
	notificationController *controllers.NotificationController,
	probeController *controllers.ProbeController) *gin.Engine {

	r := gin.Default()
	r.Use(middleware.TraceIDMiddleware())
	r.Use(middleware.CORSMiddleware())

	RegisterRoutes(r, accountController, codexController, notificationController, probeController)

	return r
}

func RegisterRoutes(r *gin.Engine,
	accountController *controllers.AccountController,
	codexController *controllers.CodexController,
	notificationController *controllers.NotificationController,
	probeController *controllers.ProbeController) {

	// Public surface: guest bootstrap, login, and the share view.
	authGroup := r.Group("/auth")
	authGroup.POST("/guest", accountController.GuestLogin)
	authGroup.POST("/register", accountController.Register)
	authGroup.POST("/login", accountController.Login)

	r.GET("/share/:id", probeController.ShareView)

	// Everything else sits behind the session verifier.
	codexGroup := r.Group("/codex", middleware.JWTAuthMiddleware())
	codexGroup.GET("/articles", codexController.ListArticles)
	codexGroup.POST("/articles", codexController.CreateArticle)
	codexGroup.GET("/categories", codexController.ListCategories)
	codexGroup.POST("/categories", codexController.CreateCategory)

	notificationGroup := r.Group("/notifications", middleware.JWTAuthMiddleware())
	notificationGroup.GET("", notificationController.ListNotifications)
	notificationGroup.POST("", notificationController.CreateNotification)
	notificationGroup.PATCH("/:id/read", notificationController.MarkNotificationRead)

	preferenceGroup := r.Group("/preferences", middleware.JWTAuthMiddleware())
	preferenceGroup.GET("", accountController.GetPreferences)
	preferenceGroup.POST("", accountController.SavePreferences)

	probeGroup := r.Group("/probe", middleware.JWTAuthMiddleware())
	probeGroup.GET("/history", probeController.GetHistory)
	probeGroup.PATCH("/history/:id", probeController.UpdateNotes)
	probeGroup.PATCH("/history/:id/favorite", probeController.UpdateFavorite)
	probeGroup.DELETE("/history/:id", probeController.DeleteAnalysis)

	r.POST("/export", middleware.JWTAuthMiddleware(), probeController.Export)
}
