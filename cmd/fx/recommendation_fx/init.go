package recommendation_fx

import (
	"context"

	"go.uber.org/fx"
	"go.uber.org/zap"

	"destfinder/internal/api/controllers"
	"destfinder/internal/config"
	"destfinder/internal/services"
	"destfinder/pkg/utils"
)

var Module = fx.Provide(
	ProvideModelClient,
	ProvidePromptBuilder,
	ProvideRecommendationService,
	ProvideSessionService,
	ProvideExportService,
	ProvideRecommendationController,
	ProvideOptionsController,
)

// ProvideModelClient builds the provider-specific model client. A missing
// credential fails startup here, before any request can be attempted.
func ProvideModelClient(lc fx.Lifecycle, cfg *config.Config, logger *zap.SugaredLogger) (utils.ModelClientInterface, error) {
	logger.Infow("initializing model client",
		"provider", cfg.Model.Provider,
		"model", cfg.Model.Name,
	)

	client, err := utils.NewModelClient(cfg.Model.Provider, cfg.Model.APIKey, cfg.Model.Name)
	if err != nil {
		return nil, err
	}

	lc.Append(fx.Hook{
		OnStop: func(ctx context.Context) error {
			return client.Close()
		},
	})

	return client, nil
}

func ProvidePromptBuilder() services.PromptBuilderInterface {
	return services.NewPromptBuilder()
}

func ProvideRecommendationService(
	client utils.ModelClientInterface,
	prompts services.PromptBuilderInterface,
	cfg *config.Config,
	logger *zap.SugaredLogger,
) services.RecommendationServiceInterface {
	return services.NewRecommendationService(client, prompts, cfg.Model.Timeout(), logger)
}

func ProvideSessionService(
	recommendations services.RecommendationServiceInterface,
	logger *zap.SugaredLogger,
) services.SessionServiceInterface {
	return services.NewSessionService(recommendations, logger)
}

func ProvideExportService() services.ExportServiceInterface {
	return services.NewExportService()
}

func ProvideRecommendationController(
	session services.SessionServiceInterface,
	exports services.ExportServiceInterface,
) *controllers.RecommendationController {
	return controllers.NewRecommendationController(session, exports)
}

func ProvideOptionsController() *controllers.OptionsController {
	return controllers.NewOptionsController()
}
