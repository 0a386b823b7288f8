package services

import (
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"tripwise/internal/models/request_models"
	"tripwise/pkg/memcache"
	"tripwise/pkg/utils"
)

func TestEstimateDisabled(t *testing.T) {
	svc := NewEstimateService(nil, nil, nil)
	_, err := svc.Estimate(ctx, request_models.EstimateRequest{Destination: "Hue"})
	assert.ErrorIs(t, err, utils.ErrEstimatorDisabled)
}

func TestEstimateCachesAnswers(t *testing.T) {
	est := &mockEstimator{}
	query := utils.EstimateQuery{Destination: "Da Nang", Days: 4, Travelers: 1, Currency: "USD"}
	est.On("EstimateTrip", mock.Anything, query).
		Return(utils.TripEstimate{SuggestedBudget: 600, SuggestedDays: 4, Currency: "USD", Notes: "beach town"}, nil).
		Once()

	cache := memcache.NewTTLCache[string, utils.TripEstimate](time.Hour)
	svc := NewEstimateService(est, cache, nil)

	first, err := svc.Estimate(ctx, request_models.EstimateRequest{Destination: " Da Nang ", Days: 4})
	require.NoError(t, err)
	assert.False(t, first.Cached)
	assert.Equal(t, 600.0, first.SuggestedBudget)

	second, err := svc.Estimate(ctx, request_models.EstimateRequest{Destination: "Da Nang", Days: 4, Currency: "usd"})
	require.NoError(t, err)
	assert.True(t, second.Cached)
	assert.Equal(t, first.SuggestedDays, second.SuggestedDays)

	est.AssertExpectations(t)
}

func TestEstimateProviderFailure(t *testing.T) {
	est := &mockEstimator{}
	est.On("EstimateTrip", mock.Anything, mock.Anything).Return(utils.TripEstimate{}, errors.New("429 rate limited"))
	cache := memcache.NewTTLCache[string, utils.TripEstimate](time.Hour)
	svc := NewEstimateService(est, cache, nil)

	_, err := svc.Estimate(ctx, request_models.EstimateRequest{Destination: "Sapa"})
	assert.ErrorIs(t, err, utils.ErrUnexpectedBehaviorOfAI)
	assert.Zero(t, cache.Len())

	_, err = svc.Estimate(ctx, request_models.EstimateRequest{Destination: "   "})
	assert.ErrorIs(t, err, utils.ErrInvalidInput)
}
