package services

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"go.uber.org/zap"

	"tripwise/internal/models/request_models"
	"tripwise/internal/models/response_models"
	"tripwise/pkg/memcache"
	"tripwise/pkg/utils"
)

const defaultCurrency = "USD"

type EstimateServiceInterface interface {
	Estimate(ctx context.Context, request request_models.EstimateRequest) (*response_models.EstimateResponse, error)
}

// EstimateCache holds provider answers keyed by the normalized query.
type EstimateCache = memcache.TTLCache[string, utils.TripEstimate]

type EstimateService struct {
	estimator utils.TripEstimator
	cache     *EstimateCache
	log       *zap.Logger
}

// NewEstimateService accepts a nil estimator, in which case every call
// fails with utils.ErrEstimatorDisabled.
func NewEstimateService(estimator utils.TripEstimator, cache *EstimateCache, log *zap.Logger) EstimateServiceInterface {
	if log == nil {
		log = zap.NewNop()
	}
	return &EstimateService{estimator: estimator, cache: cache, log: log.Named("estimates")}
}

func (e *EstimateService) Estimate(ctx context.Context, request request_models.EstimateRequest) (*response_models.EstimateResponse, error) {
	if e.estimator == nil {
		return nil, utils.ErrEstimatorDisabled
	}

	query := utils.EstimateQuery{
		Destination: strings.TrimSpace(request.Destination),
		Days:        request.Days,
		Travelers:   max(request.Travelers, 1),
		Currency:    strings.ToUpper(request.Currency),
	}
	if query.Destination == "" {
		return nil, utils.ErrInvalidInput
	}
	if query.Currency == "" {
		query.Currency = defaultCurrency
	}

	key := cacheKey(query)
	if e.cache != nil {
		if hit, ok := e.cache.Get(key); ok {
			e.log.Debug("estimate cache hit", zap.String("key", key))
			return toEstimateResponse(hit, true), nil
		}
	}

	estimate, err := e.estimator.EstimateTrip(ctx, query)
	if err != nil {
		e.log.Warn("estimate failed", zap.String("destination", query.Destination), zap.Error(err))
		if errors.Is(err, utils.ErrUnexpectedBehaviorOfAI) {
			return nil, err
		}
		return nil, fmt.Errorf("%w: %v", utils.ErrUnexpectedBehaviorOfAI, err)
	}

	if e.cache != nil {
		e.cache.Set(key, estimate)
	}
	return toEstimateResponse(estimate, false), nil
}

func cacheKey(q utils.EstimateQuery) string {
	return fmt.Sprintf("%s|%d|%d|%s", strings.ToLower(q.Destination), q.Days, q.Travelers, q.Currency)
}

func toEstimateResponse(e utils.TripEstimate, cached bool) *response_models.EstimateResponse {
	return &response_models.EstimateResponse{
		SuggestedBudget: e.SuggestedBudget,
		SuggestedDays:   e.SuggestedDays,
		Currency:        e.Currency,
		Notes:           e.Notes,
		Cached:          cached,
	}
}
