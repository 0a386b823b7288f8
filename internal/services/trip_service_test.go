package services

import (
	"context"
	"errors"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"tripwise/internal/feasibility"
	dbm "tripwise/internal/models/db_models"
	"tripwise/internal/models/request_models"
	"tripwise/internal/testutil"
	"tripwise/pkg/utils"
)

var ctx = context.Background()

func newTripService(repo *mockTripRepo) *TripService {
	svc := NewTripService(repo, NewFeasibilityService(nil), nil).(*TripService)
	svc.now = func() int64 { return 1_700_000_000 }
	return svc
}

func storedTrip(owner uuid.UUID, plan feasibility.TripPlan) *dbm.Trip {
	trip := &dbm.Trip{OwnerID: owner, Name: "Central Vietnam", Plan: plan}
	trip.ID = uuid.New()
	return trip
}

func TestCreateTripBuildsEmptyDays(t *testing.T) {
	repo := &mockTripRepo{}
	repo.On("Create", mock.Anything, mock.Anything).Return(nil)
	svc := newTripService(repo)
	owner := uuid.New()

	out, err := svc.CreateTrip(ctx, owner.String(), request_models.CreateTripRequest{
		Name:        "North loop",
		Currency:    "VND",
		TotalBudget: 9_000_000,
		TotalDays:   3,
		Cities:      []string{"Hanoi", "Ha Long"},
		StartDate:   "2026-04-29",
	})
	require.NoError(t, err)
	require.Len(t, out.Plan.Days, 3)
	assert.Equal(t, "2026-05-01", out.Plan.Days[2].Date)
	assert.Equal(t, "VND", out.Plan.Currency)
	assert.Equal(t, owner.String(), out.OwnerID)
	assert.Nil(t, out.FeasibilityScore)

	saved := repo.Calls[0].Arguments.Get(1).(*dbm.Trip)
	assert.Equal(t, owner, saved.OwnerID)
	repo.AssertExpectations(t)
}

func TestCreateTripRejectsBadInput(t *testing.T) {
	svc := newTripService(&mockTripRepo{})

	_, err := svc.CreateTrip(ctx, "not-a-uuid", request_models.CreateTripRequest{})
	assert.ErrorIs(t, err, utils.ErrInvalidInput)

	_, err = svc.CreateTrip(ctx, uuid.NewString(), request_models.CreateTripRequest{
		Name: "x", TotalBudget: 100, TotalDays: 2, Cities: []string{"Hue"}, StartDate: "01/05/2026",
	})
	assert.ErrorIs(t, err, utils.ErrInvalidInput)

	_, err = svc.CreateTrip(ctx, uuid.NewString(), request_models.CreateTripRequest{
		Name: "x", TotalBudget: 100, TotalDays: 2,
	})
	assert.ErrorIs(t, err, feasibility.ErrInvalidPlan)
}

func TestGetTripErrors(t *testing.T) {
	owner := uuid.NewString()
	missing := uuid.NewString()
	broken := uuid.NewString()

	repo := &mockTripRepo{}
	repo.On("FindByIdForOwner", mock.Anything, missing, owner).Return(nil, nil)
	repo.On("FindByIdForOwner", mock.Anything, broken, owner).Return(nil, errors.New("conn reset"))
	svc := newTripService(repo)

	_, err := svc.GetTrip(ctx, owner, "42")
	assert.ErrorIs(t, err, utils.ErrInvalidInput)
	_, err = svc.GetTrip(ctx, owner, missing)
	assert.ErrorIs(t, err, utils.ErrTripNotFound)
	_, err = svc.GetTrip(ctx, owner, broken)
	assert.ErrorIs(t, err, utils.ErrDatabaseError)
}

func TestListTripsPaging(t *testing.T) {
	owner := uuid.NewString()
	repo := &mockTripRepo{}
	repo.On("ListByOwner", mock.Anything, owner, 2, 10).
		Return([]dbm.Trip{*storedTrip(uuid.MustParse(owner), testutil.OverloadedPlan())}, int64(11), nil)
	svc := newTripService(repo)

	_, err := svc.ListTrips(ctx, owner, 0, 10)
	assert.ErrorIs(t, err, utils.ErrInvalidPage)
	_, err = svc.ListTrips(ctx, owner, 1, 101)
	assert.ErrorIs(t, err, utils.ErrInvalidPageSize)

	out, err := svc.ListTrips(ctx, owner, 2, 10)
	require.NoError(t, err)
	assert.Equal(t, int64(11), out.Total)
	require.Len(t, out.Items, 1)
	assert.Equal(t, 8, out.Items[0].ActivityCount)
	assert.Equal(t, []string{"Hoi An"}, out.Items[0].Cities)
}

func TestAddActivityRecalculatesAndClearsScore(t *testing.T) {
	owner := uuid.New()
	trip := storedTrip(owner, testutil.OverloadedPlan())
	trip.RecordScore(feasibility.ScoreResult{Percentage: 80, Status: feasibility.StatusGood}, 1)

	repo := &mockTripRepo{}
	repo.On("FindByIdForOwner", mock.Anything, trip.ID.String(), owner.String()).Return(trip, nil)
	repo.On("Save", mock.Anything, trip).Return(nil)
	svc := newTripService(repo)

	out, err := svc.AddActivity(ctx, owner.String(), trip.ID.String(), 1, request_models.AddActivityRequest{
		Name: "Lantern boat", Category: feasibility.CategoryRelaxation, Duration: 1.5, Cost: 15, Priority: feasibility.PriorityMedium,
	})
	require.NoError(t, err)

	day := out.Plan.Days[1]
	require.Len(t, day.Activities, 2)
	assert.NotEmpty(t, day.Activities[1].ID)
	assert.Equal(t, 35.0, day.TotalCost)
	assert.Equal(t, 2.5, day.TotalDuration)
	assert.Nil(t, trip.FeasibilityScore)

	_, err = svc.AddActivity(ctx, owner.String(), trip.ID.String(), 3, request_models.AddActivityRequest{Name: "x"})
	assert.ErrorIs(t, err, utils.ErrDayNotFound)
}

func TestRemoveActivity(t *testing.T) {
	owner := uuid.New()
	trip := storedTrip(owner, testutil.OverloadedPlan())

	repo := &mockTripRepo{}
	repo.On("FindByIdForOwner", mock.Anything, trip.ID.String(), owner.String()).Return(trip, nil)
	repo.On("Save", mock.Anything, trip).Return(nil)
	svc := newTripService(repo)

	_, err := svc.RemoveActivity(ctx, owner.String(), trip.ID.String(), 0, "zz")
	assert.ErrorIs(t, err, utils.ErrActivityNotFound)

	out, err := svc.RemoveActivity(ctx, owner.String(), trip.ID.String(), 0, "a2")
	require.NoError(t, err)
	assert.Len(t, out.Plan.Days[0].Activities, 4)
	assert.Equal(t, 80.0, out.Plan.Days[0].TotalCost)
	assert.Equal(t, 4.0, out.Plan.Days[0].TotalDuration)
}

func TestAddDayContinuesItinerary(t *testing.T) {
	owner := uuid.New()
	plan := feasibility.TripPlan{
		TotalBudget: 500,
		TotalDays:   1,
		Cities:      []string{"Hue"},
		Days: []feasibility.TripDay{
			{Date: "2026-06-30", CityID: "hue", CityName: "Hue", Activities: []feasibility.Activity{}},
		},
	}
	trip := storedTrip(owner, plan)

	repo := &mockTripRepo{}
	repo.On("FindByIdForOwner", mock.Anything, trip.ID.String(), owner.String()).Return(trip, nil)
	repo.On("Save", mock.Anything, trip).Return(nil)
	svc := newTripService(repo)

	out, err := svc.AddDay(ctx, owner.String(), trip.ID.String(), request_models.AddDayRequest{})
	require.NoError(t, err)
	require.Len(t, out.Plan.Days, 2)
	assert.Equal(t, "2026-07-01", out.Plan.Days[1].Date)
	assert.Equal(t, "hue", out.Plan.Days[1].CityID)
	assert.Equal(t, 2, out.Plan.TotalDays)

	_, err = svc.AddDay(ctx, owner.String(), trip.ID.String(), request_models.AddDayRequest{Date: "July 2nd"})
	assert.ErrorIs(t, err, utils.ErrInvalidInput)
}

func TestUpdateTripResyncsTotals(t *testing.T) {
	owner := uuid.New()
	trip := storedTrip(owner, testutil.OverloadedPlan())
	trip.Currency = "EUR"

	repo := &mockTripRepo{}
	repo.On("FindByIdForOwner", mock.Anything, trip.ID.String(), owner.String()).Return(trip, nil)
	repo.On("Save", mock.Anything, trip).Return(nil)
	svc := newTripService(repo)

	plan := testutil.OverloadedPlan()
	plan.TotalDays = 1
	plan.Days[0].TotalCost = 9999
	plan.Days[1].Activities[0].ID = ""

	out, err := svc.UpdateTrip(ctx, owner.String(), trip.ID.String(), request_models.UpdateTripRequest{Name: "Renamed", Plan: plan})
	require.NoError(t, err)
	assert.Equal(t, "Renamed", out.Name)
	assert.Equal(t, 100.0, out.Plan.Days[0].TotalCost)
	assert.Equal(t, 3, out.Plan.TotalDays)
	assert.Equal(t, "EUR", out.Plan.Currency)
	assert.NotEmpty(t, out.Plan.Days[1].Activities[0].ID)

	plan.Cities = nil
	_, err = svc.UpdateTrip(ctx, owner.String(), trip.ID.String(), request_models.UpdateTripRequest{Plan: plan})
	var invalid *feasibility.InvalidPlanError
	require.ErrorAs(t, err, &invalid)
	assert.Equal(t, "cities", invalid.Field)
}

func TestDeleteTrip(t *testing.T) {
	owner := uuid.NewString()
	gone := uuid.NewString()
	present := uuid.NewString()

	repo := &mockTripRepo{}
	repo.On("DeleteForOwner", mock.Anything, gone, owner).Return(false, nil)
	repo.On("DeleteForOwner", mock.Anything, present, owner).Return(true, nil)
	svc := newTripService(repo)

	assert.ErrorIs(t, svc.DeleteTrip(ctx, owner, gone), utils.ErrTripNotFound)
	assert.NoError(t, svc.DeleteTrip(ctx, owner, present))
	assert.ErrorIs(t, svc.DeleteTrip(ctx, owner, "nope"), utils.ErrInvalidInput)
}

func TestEvaluateTripStoresScore(t *testing.T) {
	owner := uuid.New()
	trip := storedTrip(owner, testutil.OverloadedPlan())

	repo := &mockTripRepo{}
	repo.On("FindByIdForOwner", mock.Anything, trip.ID.String(), owner.String()).Return(trip, nil)
	repo.On("Save", mock.Anything, trip).Return(nil).Once()
	svc := newTripService(repo)

	result, err := svc.EvaluateTrip(ctx, owner.String(), trip.ID.String())
	require.NoError(t, err)
	assert.Equal(t, 80, result.Percentage)
	require.NotNil(t, trip.FeasibilityScore)
	assert.Equal(t, 80, *trip.FeasibilityScore)
	assert.Equal(t, "good", *trip.FeasibilityStatus)
	assert.Equal(t, int64(1_700_000_000), *trip.EvaluatedAt)
	repo.AssertExpectations(t)
}

func TestOptimizeThenApply(t *testing.T) {
	owner := uuid.New()
	trip := storedTrip(owner, testutil.OverloadedPlan())

	repo := &mockTripRepo{}
	repo.On("FindByIdForOwner", mock.Anything, trip.ID.String(), owner.String()).Return(trip, nil)
	repo.On("Save", mock.Anything, trip).Return(nil)
	svc := newTripService(repo)

	opt, err := svc.OptimizeTrip(ctx, owner.String(), trip.ID.String())
	require.NoError(t, err)
	assert.Equal(t, 80, opt.Current.Percentage)
	assert.Len(t, opt.Candidates, 3)
	assert.Equal(t, "relaxed", opt.BestID)

	_, err = svc.ApplyOptimization(ctx, owner.String(), trip.ID.String(), "cheapest")
	assert.ErrorIs(t, err, utils.ErrCandidateNotFound)

	applied, err := svc.ApplyOptimization(ctx, owner.String(), trip.ID.String(), opt.BestID)
	require.NoError(t, err)
	assert.Equal(t, "relaxed", applied.Applied)
	assert.Equal(t, 95, applied.Result.Percentage)
	assert.Equal(t, 15, applied.Improved)
	assert.Len(t, trip.Plan.Days[0].Activities, 4)
	assert.Equal(t, 95, *trip.FeasibilityScore)

	// 95 is already excellent, so there is nothing left to apply.
	_, err = svc.ApplyOptimization(ctx, owner.String(), trip.ID.String(), "relaxed")
	assert.ErrorIs(t, err, utils.ErrAlreadyFeasible)
}
