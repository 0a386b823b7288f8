package services

import (
	"context"
	"slices"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"tripwise/internal/feasibility"
	dbm "tripwise/internal/models/db_models"
	"tripwise/internal/models/request_models"
	resp "tripwise/internal/models/response_models"
	"tripwise/internal/repositories"
	"tripwise/pkg/utils"
)

const maxPageSize = 100

type TripServiceInterface interface {
	CreateTrip(ctx context.Context, ownerId string, request request_models.CreateTripRequest) (*resp.TripResponse, error)
	ListTrips(ctx context.Context, ownerId string, page, pageSize int) (*resp.TripListResponse, error)
	ListAllTrips(ctx context.Context, page, pageSize int) (*resp.TripListResponse, error)
	GetTrip(ctx context.Context, ownerId, tripId string) (*resp.TripResponse, error)
	UpdateTrip(ctx context.Context, ownerId, tripId string, request request_models.UpdateTripRequest) (*resp.TripResponse, error)
	DeleteTrip(ctx context.Context, ownerId, tripId string) error

	AddDay(ctx context.Context, ownerId, tripId string, request request_models.AddDayRequest) (*resp.TripResponse, error)
	AddActivity(ctx context.Context, ownerId, tripId string, dayIndex int, request request_models.AddActivityRequest) (*resp.TripResponse, error)
	RemoveActivity(ctx context.Context, ownerId, tripId string, dayIndex int, activityId string) (*resp.TripResponse, error)

	EvaluateTrip(ctx context.Context, ownerId, tripId string) (feasibility.ScoreResult, error)
	OptimizeTrip(ctx context.Context, ownerId, tripId string) (*resp.OptimizationResponse, error)
	ApplyOptimization(ctx context.Context, ownerId, tripId, candidateId string) (*resp.ApplyOptimizationResponse, error)
}

type TripService struct {
	tripRepo    repositories.TripRepository
	feasibility FeasibilityServiceInterface
	log         *zap.Logger
	now         func() int64
}

func NewTripService(tripRepo repositories.TripRepository, feasibilityService FeasibilityServiceInterface, log *zap.Logger) TripServiceInterface {
	if log == nil {
		log = zap.NewNop()
	}
	return &TripService{
		tripRepo:    tripRepo,
		feasibility: feasibilityService,
		log:         log.Named("trips"),
		now:         utils.NowUnixSeconds,
	}
}

// validatePlan applies the scoring preconditions to a stored plan, which
// must have a usable header even before its first day is planned.
func validatePlan(plan feasibility.TripPlan) error {
	if err := feasibility.ValidateHeader(plan); err != nil {
		return err
	}
	return feasibility.Validate(plan)
}

func checkPaging(page, pageSize int) error {
	if page < 1 {
		return utils.ErrInvalidPage
	}
	if pageSize < 1 || pageSize > maxPageSize {
		return utils.ErrInvalidPageSize
	}
	return nil
}

func (t *TripService) CreateTrip(ctx context.Context, ownerId string, request request_models.CreateTripRequest) (*resp.TripResponse, error) {
	owner, err := uuid.Parse(ownerId)
	if err != nil {
		return nil, utils.ErrInvalidInput
	}

	plan := feasibility.TripPlan{
		TotalBudget: request.TotalBudget,
		TotalDays:   request.TotalDays,
		Cities:      request.Cities,
		Currency:    request.Currency,
		Days:        []feasibility.TripDay{},
	}
	if request.StartDate != "" {
		start, err := utils.ParseTripDate(request.StartDate)
		if err != nil {
			return nil, err
		}
		for _, date := range utils.TripDates(start, request.TotalDays) {
			plan.Days = append(plan.Days, feasibility.TripDay{Date: date, Activities: []feasibility.Activity{}})
		}
	}
	if err := validatePlan(plan); err != nil {
		return nil, err
	}

	trip := &dbm.Trip{
		OwnerID:  owner,
		Name:     request.Name,
		Currency: request.Currency,
		Plan:     plan,
	}
	if err := t.tripRepo.Create(ctx, trip); err != nil {
		t.log.Error("create trip", zap.Error(err))
		return nil, utils.ErrDatabaseError
	}

	t.log.Info("trip created", zap.String("trip_id", trip.ID.String()), zap.String("owner_id", ownerId))
	out := resp.NewTripResponse(trip)
	return &out, nil
}

func (t *TripService) ListTrips(ctx context.Context, ownerId string, page, pageSize int) (*resp.TripListResponse, error) {
	if err := checkPaging(page, pageSize); err != nil {
		return nil, err
	}

	trips, total, err := t.tripRepo.ListByOwner(ctx, ownerId, page, pageSize)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}
	return toTripList(trips, total, page, pageSize), nil
}

func (t *TripService) ListAllTrips(ctx context.Context, page, pageSize int) (*resp.TripListResponse, error) {
	if err := checkPaging(page, pageSize); err != nil {
		return nil, err
	}

	trips, total, err := t.tripRepo.ListAll(ctx, page, pageSize)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}
	return toTripList(trips, total, page, pageSize), nil
}

func toTripList(trips []dbm.Trip, total int64, page, pageSize int) *resp.TripListResponse {
	items := make([]resp.TripSummaryResponse, 0, len(trips))
	for i := range trips {
		items = append(items, resp.NewTripSummaryResponse(&trips[i]))
	}
	return &resp.TripListResponse{Items: items, Page: page, PageSize: pageSize, Total: total}
}

func (t *TripService) GetTrip(ctx context.Context, ownerId, tripId string) (*resp.TripResponse, error) {
	trip, err := t.load(ctx, ownerId, tripId)
	if err != nil {
		return nil, err
	}
	out := resp.NewTripResponse(trip)
	return &out, nil
}

func (t *TripService) UpdateTrip(ctx context.Context, ownerId, tripId string, request request_models.UpdateTripRequest) (*resp.TripResponse, error) {
	trip, err := t.load(ctx, ownerId, tripId)
	if err != nil {
		return nil, err
	}

	plan := request.Plan.Clone()
	for i := range plan.Days {
		day := &plan.Days[i]
		for j := range day.Activities {
			if day.Activities[j].ID == "" {
				day.Activities[j].ID = uuid.NewString()
			}
		}
		day.Recalculate()
	}
	plan.TotalDays = max(plan.TotalDays, len(plan.Days))
	if plan.Currency == "" {
		plan.Currency = trip.Currency
	}
	if err := validatePlan(plan); err != nil {
		return nil, err
	}

	if request.Name != "" {
		trip.Name = request.Name
	}
	trip.Currency = plan.Currency
	trip.Plan = plan
	return t.saveEdited(ctx, trip)
}

func (t *TripService) DeleteTrip(ctx context.Context, ownerId, tripId string) error {
	if _, err := uuid.Parse(tripId); err != nil {
		return utils.ErrInvalidInput
	}

	deleted, err := t.tripRepo.DeleteForOwner(ctx, tripId, ownerId)
	if err != nil {
		return utils.ErrDatabaseError
	}
	if !deleted {
		return utils.ErrTripNotFound
	}
	return nil
}

func (t *TripService) AddDay(ctx context.Context, ownerId, tripId string, request request_models.AddDayRequest) (*resp.TripResponse, error) {
	trip, err := t.load(ctx, ownerId, tripId)
	if err != nil {
		return nil, err
	}

	day := feasibility.TripDay{
		Date:       request.Date,
		CityID:     request.CityID,
		CityName:   request.CityName,
		Activities: []feasibility.Activity{},
	}
	if day.Date != "" {
		if _, err := utils.ParseTripDate(day.Date); err != nil {
			return nil, err
		}
	}
	if n := len(trip.Plan.Days); n > 0 {
		last := trip.Plan.Days[n-1]
		if day.Date == "" {
			day.Date = utils.NextTripDate(last.Date)
		}
		if day.CityID == "" && day.CityName == "" {
			day.CityID, day.CityName = last.CityID, last.CityName
		}
	}

	trip.Plan.Days = append(trip.Plan.Days, day)
	trip.Plan.TotalDays = max(trip.Plan.TotalDays, len(trip.Plan.Days))
	return t.saveEdited(ctx, trip)
}

func (t *TripService) AddActivity(ctx context.Context, ownerId, tripId string, dayIndex int, request request_models.AddActivityRequest) (*resp.TripResponse, error) {
	trip, err := t.load(ctx, ownerId, tripId)
	if err != nil {
		return nil, err
	}
	if dayIndex < 0 || dayIndex >= len(trip.Plan.Days) {
		return nil, utils.ErrDayNotFound
	}

	day := &trip.Plan.Days[dayIndex]
	day.Activities = append(day.Activities, feasibility.Activity{
		ID:         uuid.NewString(),
		Name:       request.Name,
		Category:   request.Category,
		Duration:   request.Duration,
		Cost:       request.Cost,
		Priority:   request.Priority,
		IsOptional: request.IsOptional,
	})
	day.Recalculate()
	return t.saveEdited(ctx, trip)
}

func (t *TripService) RemoveActivity(ctx context.Context, ownerId, tripId string, dayIndex int, activityId string) (*resp.TripResponse, error) {
	trip, err := t.load(ctx, ownerId, tripId)
	if err != nil {
		return nil, err
	}
	if dayIndex < 0 || dayIndex >= len(trip.Plan.Days) {
		return nil, utils.ErrDayNotFound
	}

	day := &trip.Plan.Days[dayIndex]
	idx := slices.IndexFunc(day.Activities, func(a feasibility.Activity) bool { return a.ID == activityId })
	if idx < 0 {
		return nil, utils.ErrActivityNotFound
	}
	day.Activities = slices.Delete(day.Activities, idx, idx+1)
	day.Recalculate()
	return t.saveEdited(ctx, trip)
}

func (t *TripService) EvaluateTrip(ctx context.Context, ownerId, tripId string) (feasibility.ScoreResult, error) {
	trip, err := t.load(ctx, ownerId, tripId)
	if err != nil {
		return feasibility.ScoreResult{}, err
	}

	result, err := t.feasibility.Evaluate(ctx, trip.Plan)
	if err != nil {
		return feasibility.ScoreResult{}, err
	}

	trip.RecordScore(result, t.now())
	if err := t.tripRepo.Save(ctx, trip); err != nil {
		t.log.Error("store score", zap.String("trip_id", tripId), zap.Error(err))
		return feasibility.ScoreResult{}, utils.ErrDatabaseError
	}
	return result, nil
}

func (t *TripService) OptimizeTrip(ctx context.Context, ownerId, tripId string) (*resp.OptimizationResponse, error) {
	trip, err := t.load(ctx, ownerId, tripId)
	if err != nil {
		return nil, err
	}

	out, err := t.feasibility.Optimize(ctx, trip.Plan)
	if err != nil {
		return nil, err
	}

	trip.RecordScore(out.Current, t.now())
	if err := t.tripRepo.Save(ctx, trip); err != nil {
		t.log.Error("store score", zap.String("trip_id", tripId), zap.Error(err))
		return nil, utils.ErrDatabaseError
	}
	return out, nil
}

// ApplyOptimization recomputes the candidates from the stored plan and
// replaces the plan with the chosen one. Optimization is deterministic, so
// the candidate matches what OptimizeTrip returned for the same plan.
func (t *TripService) ApplyOptimization(ctx context.Context, ownerId, tripId, candidateId string) (*resp.ApplyOptimizationResponse, error) {
	trip, err := t.load(ctx, ownerId, tripId)
	if err != nil {
		return nil, err
	}

	out, err := t.feasibility.Optimize(ctx, trip.Plan)
	if err != nil {
		return nil, err
	}
	if len(out.Candidates) == 0 {
		return nil, utils.ErrAlreadyFeasible
	}

	idx := slices.IndexFunc(out.Candidates, func(c feasibility.OptimizedTrip) bool { return c.ID == candidateId })
	if idx < 0 {
		return nil, utils.ErrCandidateNotFound
	}
	chosen := out.Candidates[idx]

	trip.Plan = feasibility.Apply(chosen)
	trip.RecordScore(chosen.Possibility, t.now())
	if err := t.tripRepo.Save(ctx, trip); err != nil {
		t.log.Error("apply optimization", zap.String("trip_id", tripId), zap.Error(err))
		return nil, utils.ErrDatabaseError
	}

	t.log.Info("optimization applied",
		zap.String("trip_id", tripId),
		zap.String("candidate", chosen.ID),
		zap.Int("from", out.Current.Percentage),
		zap.Int("to", chosen.Possibility.Percentage),
	)
	return &resp.ApplyOptimizationResponse{
		Trip:     resp.NewTripResponse(trip),
		Applied:  chosen.ID,
		Result:   chosen.Possibility,
		Improved: chosen.ImprovementPercentage,
	}, nil
}

func (t *TripService) load(ctx context.Context, ownerId, tripId string) (*dbm.Trip, error) {
	if _, err := uuid.Parse(tripId); err != nil {
		return nil, utils.ErrInvalidInput
	}

	trip, err := t.tripRepo.FindByIdForOwner(ctx, tripId, ownerId)
	if err != nil {
		t.log.Error("load trip", zap.String("trip_id", tripId), zap.Error(err))
		return nil, utils.ErrDatabaseError
	}
	if trip == nil {
		return nil, utils.ErrTripNotFound
	}
	return trip, nil
}

// saveEdited persists an itinerary edit. The stored score no longer
// describes the plan, so it is dropped.
func (t *TripService) saveEdited(ctx context.Context, trip *dbm.Trip) (*resp.TripResponse, error) {
	trip.ClearScore()
	if err := t.tripRepo.Save(ctx, trip); err != nil {
		t.log.Error("save trip", zap.String("trip_id", trip.ID.String()), zap.Error(err))
		return nil, utils.ErrDatabaseError
	}
	out := resp.NewTripResponse(trip)
	return &out, nil
}
