package repositories

import (
	"context"
	"time"

	"gorm.io/gorm"

	dbm "tripwise/internal/models/db_models"
)

type DashboardRepository interface {
	// KPIs / counts
	CountTotalAccounts(ctx context.Context) (int64, error)
	CountNewAccounts(ctx context.Context, start, end time.Time) (int64, error)
	CountTotalTrips(ctx context.Context) (int64, error)
	CountNewTrips(ctx context.Context, start, end time.Time) (int64, error)
	CountTotalActivities(ctx context.Context) (int64, error)

	// Feasibility snapshot of evaluated trips
	ScoreSummary(ctx context.Context) (ScoreSummaryRow, error)
	StatusMix(ctx context.Context) ([]StatusMixRow, error)

	TopCities(ctx context.Context, start, end time.Time, limit int) ([]CityRow, error)
}

type dashboardRepository struct {
	db *gorm.DB
}

func NewDashboardRepository(db *gorm.DB) DashboardRepository {
	return &dashboardRepository{db: db}
}

// ---------- Row helpers ----------
type ScoreSummaryRow struct {
	Evaluated int64   `gorm:"column:evaluated"`
	Average   float64 `gorm:"column:average"`
}

type StatusMixRow struct {
	Status string `gorm:"column:status"`
	Count  int64  `gorm:"column:count"`
}

type CityRow struct {
	City  string `gorm:"column:city"`
	Count int64  `gorm:"column:count"`
}

// jsonArray guards jsonb_array_* calls against null or scalar values.
func jsonArray(expr string) string {
	return "CASE WHEN jsonb_typeof(" + expr + ") = 'array' THEN " + expr + " ELSE '[]'::jsonb END"
}

// ---------- Counts ----------
func (r *dashboardRepository) CountTotalAccounts(ctx context.Context) (int64, error) {
	var n int64
	err := r.db.WithContext(ctx).Model(&dbm.Account{}).Count(&n).Error
	return n, err
}

func (r *dashboardRepository) CountNewAccounts(ctx context.Context, start, end time.Time) (int64, error) {
	var n int64
	err := r.db.WithContext(ctx).
		Model(&dbm.Account{}).
		Where("created_at BETWEEN ? AND ?", start.Unix(), end.Unix()).
		Count(&n).Error
	return n, err
}

func (r *dashboardRepository) CountTotalTrips(ctx context.Context) (int64, error) {
	var n int64
	err := r.db.WithContext(ctx).Model(&dbm.Trip{}).Count(&n).Error
	return n, err
}

func (r *dashboardRepository) CountNewTrips(ctx context.Context, start, end time.Time) (int64, error) {
	var n int64
	err := r.db.WithContext(ctx).
		Model(&dbm.Trip{}).
		Where("created_at BETWEEN ? AND ?", start.Unix(), end.Unix()).
		Count(&n).Error
	return n, err
}

func (r *dashboardRepository) CountTotalActivities(ctx context.Context) (int64, error) {
	var n int64
	err := r.db.WithContext(ctx).Raw(`
		SELECT COALESCE(SUM(jsonb_array_length(` + jsonArray("d->'activities'") + `)), 0)
		FROM trips t, jsonb_array_elements(` + jsonArray("t.plan->'days'") + `) AS d
		WHERE t.deleted_at IS NULL`).
		Scan(&n).Error
	return n, err
}

// ---------- Feasibility ----------
func (r *dashboardRepository) ScoreSummary(ctx context.Context) (ScoreSummaryRow, error) {
	var row ScoreSummaryRow
	err := r.db.WithContext(ctx).
		Model(&dbm.Trip{}).
		Select("COUNT(feasibility_score) AS evaluated, COALESCE(AVG(feasibility_score), 0) AS average").
		Scan(&row).Error
	return row, err
}

func (r *dashboardRepository) StatusMix(ctx context.Context) ([]StatusMixRow, error) {
	var rows []StatusMixRow
	err := r.db.WithContext(ctx).
		Model(&dbm.Trip{}).
		Select("feasibility_status AS status, COUNT(*) AS count").
		Where("feasibility_status IS NOT NULL").
		Group("feasibility_status").
		Order("count DESC").
		Scan(&rows).Error
	return rows, err
}

// ---------- Top cities ----------
func (r *dashboardRepository) TopCities(ctx context.Context, start, end time.Time, limit int) ([]CityRow, error) {
	var rows []CityRow
	err := r.db.WithContext(ctx).Raw(`
		SELECT city, COUNT(*) AS count
		FROM trips t, jsonb_array_elements_text(`+jsonArray("t.plan->'cities'")+`) AS city
		WHERE t.deleted_at IS NULL
		  AND t.created_at BETWEEN ? AND ?
		  AND city <> ''
		GROUP BY city
		ORDER BY count DESC, city ASC
		LIMIT ?`, start.Unix(), end.Unix(), limit).
		Scan(&rows).Error
	return rows, err
}
