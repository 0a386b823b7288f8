package services

import (
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	resp "tripwise/internal/models/response_models"
	"tripwise/internal/repositories"
	"tripwise/pkg/utils"
)

func TestNormalizeRange(t *testing.T) {
	now := time.Date(2026, 5, 31, 12, 0, 0, 0, time.UTC)

	r := normalizeRange(resp.TimeRange{}, now)
	assert.Equal(t, now, r.End)
	assert.Equal(t, now.AddDate(0, 0, -30), r.Start)

	a, b := now.AddDate(0, -1, 0), now
	r = normalizeRange(resp.TimeRange{Start: b, End: a}, now)
	assert.Equal(t, a, r.Start)
	assert.Equal(t, b, r.End)
}

func TestBuildDashboard(t *testing.T) {
	repo := &mockDashboardRepo{}
	repo.On("CountTotalAccounts", mock.Anything).Return(int64(40), nil)
	repo.On("CountNewAccounts", mock.Anything, mock.Anything, mock.Anything).Return(int64(7), nil)
	repo.On("CountTotalTrips", mock.Anything).Return(int64(90), nil)
	repo.On("CountNewTrips", mock.Anything, mock.Anything, mock.Anything).Return(int64(12), nil)
	repo.On("CountTotalActivities", mock.Anything).Return(int64(512), nil)
	repo.On("ScoreSummary", mock.Anything).Return(repositories.ScoreSummaryRow{Evaluated: 3, Average: 71.666666}, nil)
	repo.On("StatusMix", mock.Anything).Return([]repositories.StatusMixRow{
		{Status: "good", Count: 2},
		{Status: "risky", Count: 1},
	}, nil)
	repo.On("TopCities", mock.Anything, mock.Anything, mock.Anything, topCitiesLimit).
		Return([]repositories.CityRow{{City: "Hoi An", Count: 9}}, nil)

	svc := NewDashboardService(repo, nil)
	report, err := svc.BuildDashboard(ctx, resp.TimeRange{})
	require.NoError(t, err)

	assert.Equal(t, int64(40), report.KPIs.TotalAccounts)
	assert.Equal(t, int64(12), report.KPIs.NewTrips)
	assert.Equal(t, int64(512), report.KPIs.TotalActivities)
	assert.Equal(t, 71.67, report.KPIs.AverageScore)
	require.Len(t, report.StatusMix, 2)
	assert.Equal(t, 66.67, report.StatusMix[0].Percent)
	assert.Equal(t, 33.33, report.StatusMix[1].Percent)
	assert.Equal(t, "Hoi An", report.TopCities[0].City)
	assert.False(t, report.Range.Start.After(report.Range.End))
}

func TestBuildDashboardDatabaseError(t *testing.T) {
	repo := &mockDashboardRepo{}
	repo.On("CountTotalAccounts", mock.Anything).Return(int64(0), errors.New("boom"))

	_, err := NewDashboardService(repo, nil).BuildDashboard(ctx, resp.TimeRange{})
	assert.ErrorIs(t, err, utils.ErrDatabaseError)
}
