package services

import (
	"context"
	"time"

	"github.com/stretchr/testify/mock"

	dbm "tripwise/internal/models/db_models"
	"tripwise/internal/repositories"
	"tripwise/pkg/utils"
)

type mockTripRepo struct{ mock.Mock }

func (m *mockTripRepo) Create(ctx context.Context, trip *dbm.Trip) error {
	return m.Called(ctx, trip).Error(0)
}

func (m *mockTripRepo) FindByIdForOwner(ctx context.Context, id, ownerId string) (*dbm.Trip, error) {
	args := m.Called(ctx, id, ownerId)
	trip, _ := args.Get(0).(*dbm.Trip)
	return trip, args.Error(1)
}

func (m *mockTripRepo) ListByOwner(ctx context.Context, ownerId string, page, pageSize int) ([]dbm.Trip, int64, error) {
	args := m.Called(ctx, ownerId, page, pageSize)
	trips, _ := args.Get(0).([]dbm.Trip)
	return trips, args.Get(1).(int64), args.Error(2)
}

func (m *mockTripRepo) ListAll(ctx context.Context, page, pageSize int) ([]dbm.Trip, int64, error) {
	args := m.Called(ctx, page, pageSize)
	trips, _ := args.Get(0).([]dbm.Trip)
	return trips, args.Get(1).(int64), args.Error(2)
}

func (m *mockTripRepo) Save(ctx context.Context, trip *dbm.Trip) error {
	return m.Called(ctx, trip).Error(0)
}

func (m *mockTripRepo) DeleteForOwner(ctx context.Context, id, ownerId string) (bool, error) {
	args := m.Called(ctx, id, ownerId)
	return args.Bool(0), args.Error(1)
}

type mockAccountRepo struct{ mock.Mock }

func (m *mockAccountRepo) Insert(ctx context.Context, account *dbm.Account) error {
	return m.Called(ctx, account).Error(0)
}

func (m *mockAccountRepo) FindById(ctx context.Context, id string) (*dbm.Account, error) {
	args := m.Called(ctx, id)
	account, _ := args.Get(0).(*dbm.Account)
	return account, args.Error(1)
}

func (m *mockAccountRepo) FindByEmail(ctx context.Context, email string) (*dbm.Account, error) {
	args := m.Called(ctx, email)
	account, _ := args.Get(0).(*dbm.Account)
	return account, args.Error(1)
}

type mockDashboardRepo struct{ mock.Mock }

func (m *mockDashboardRepo) count(method string, args ...interface{}) (int64, error) {
	ret := m.MethodCalled(method, args...)
	return ret.Get(0).(int64), ret.Error(1)
}

func (m *mockDashboardRepo) CountTotalAccounts(ctx context.Context) (int64, error) {
	return m.count("CountTotalAccounts", ctx)
}

func (m *mockDashboardRepo) CountNewAccounts(ctx context.Context, start, end time.Time) (int64, error) {
	return m.count("CountNewAccounts", ctx, start, end)
}

func (m *mockDashboardRepo) CountTotalTrips(ctx context.Context) (int64, error) {
	return m.count("CountTotalTrips", ctx)
}

func (m *mockDashboardRepo) CountNewTrips(ctx context.Context, start, end time.Time) (int64, error) {
	return m.count("CountNewTrips", ctx, start, end)
}

func (m *mockDashboardRepo) CountTotalActivities(ctx context.Context) (int64, error) {
	return m.count("CountTotalActivities", ctx)
}

func (m *mockDashboardRepo) ScoreSummary(ctx context.Context) (repositories.ScoreSummaryRow, error) {
	args := m.Called(ctx)
	return args.Get(0).(repositories.ScoreSummaryRow), args.Error(1)
}

func (m *mockDashboardRepo) StatusMix(ctx context.Context) ([]repositories.StatusMixRow, error) {
	args := m.Called(ctx)
	rows, _ := args.Get(0).([]repositories.StatusMixRow)
	return rows, args.Error(1)
}

func (m *mockDashboardRepo) TopCities(ctx context.Context, start, end time.Time, limit int) ([]repositories.CityRow, error) {
	args := m.Called(ctx, start, end, limit)
	rows, _ := args.Get(0).([]repositories.CityRow)
	return rows, args.Error(1)
}

type mockEstimator struct{ mock.Mock }

func (m *mockEstimator) EstimateTrip(ctx context.Context, query utils.EstimateQuery) (utils.TripEstimate, error) {
	args := m.Called(ctx, query)
	return args.Get(0).(utils.TripEstimate), args.Error(1)
}
