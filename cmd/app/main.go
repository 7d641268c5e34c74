package main

import (
	"context"
	"log"

	"github.com/gin-gonic/gin"
	"go.uber.org/fx"
	"go.uber.org/zap"

	"destfinder/cmd/fx/recommendation_fx"
	"destfinder/internal/api/controllers"
	"destfinder/internal/config"
	"destfinder/pkg/middleware"
)

func main() {
	app := fx.New(
		fx.Provide(config.LoadConfig),
		fx.Provide(ProvideLogger),
		recommendation_fx.Module,

		fx.Provide(ProvideRouter),
		fx.Invoke(StartServer),
	)

	app.Run()
}

func ProvideLogger() (*zap.SugaredLogger, error) {
	logger, err := zap.NewProduction()
	if err != nil {
		return nil, err
	}
	return logger.Sugar(), nil
}

func StartServer(lc fx.Lifecycle, engine *gin.Engine, cfg *config.Config, logger *zap.SugaredLogger) {
	lc.Append(fx.Hook{
		OnStart: func(ctx context.Context) error {
			go func() {
				logger.Infow("starting HTTP server", "address", cfg.Server.Address())
				if err := engine.Run(cfg.Server.Address()); err != nil {
					log.Fatalf("Failed to start server: %v", err)
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
	recommendationController *controllers.RecommendationController,
	optionsController *controllers.OptionsController) *gin.Engine {

	r := gin.Default()
	r.Use(gin.Recovery())
	r.Use(middleware.CORSMiddleware())
	r.Use(middleware.TraceIDMiddleware())

	RegisterRoutes(r, recommendationController, optionsController)

	return r
}

func RegisterRoutes(r *gin.Engine,
	recommendationController *controllers.RecommendationController,
	optionsController *controllers.OptionsController) {

	api := r.Group("/api")
	api.GET("/options", optionsController.ListOptionsHandler)

	recs := api.Group("/recommendations")
	recs.POST("", recommendationController.SubmitHandler)
	recs.POST("/reset", recommendationController.ResetHandler)
	recs.GET("/current", recommendationController.SnapshotHandler)
	recs.GET("/current/marker", recommendationController.MarkerHandler)
	recs.GET("/current/document", recommendationController.DocumentHandler)
	recs.GET("/current/record", recommendationController.RecordHandler)
}
