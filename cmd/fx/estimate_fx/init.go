package estimate_fx

import (
	"context"
	"fmt"
	"io"

	"go.uber.org/fx"
	"go.uber.org/zap"

	"tripwise/internal/config"
	"tripwise/internal/services"
	"tripwise/pkg/utils"
)

var Module = fx.Provide(
	ProvideTripEstimator,
	ProvideEstimateService)

// ProvideTripEstimator builds the AI client selected by AI_PROVIDER. It
// yields nil when estimates are disabled.
func ProvideTripEstimator(lc fx.Lifecycle, cfg *config.Config, log *zap.Logger) (utils.TripEstimator, error) {
	estimator, err := utils.NewTripEstimator(cfg.AI.Provider, cfg.AI.APIKey(), cfg.AI.Model())
	if err != nil {
		return nil, fmt.Errorf("failed to create trip estimator: %w", err)
	}
	if estimator == nil {
		log.Info("AI estimates disabled")
		return nil, nil
	}

	log.Info("AI estimates enabled", zap.String("provider", cfg.AI.Provider), zap.String("model", cfg.AI.Model()))
	if closer, ok := estimator.(io.Closer); ok {
		lc.Append(fx.Hook{
			OnStop: func(ctx context.Context) error {
				return closer.Close()
			},
		})
	}
	return estimator, nil
}

func ProvideEstimateService(estimator utils.TripEstimator, cache *services.EstimateCache, log *zap.Logger) services.EstimateServiceInterface {
	return services.NewEstimateService(estimator, cache, log)
}
