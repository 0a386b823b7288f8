package services

import (
	"context"
	"math"
	"time"

	"go.uber.org/zap"

	resp "tripwise/internal/models/response_models"
	"tripwise/internal/repositories"
	"tripwise/pkg/utils"
)

const topCitiesLimit = 10

type DashboardService interface {
	BuildDashboard(ctx context.Context, rng resp.TimeRange) (*resp.DashboardReport, error)
}

type dashboardService struct {
	repo repositories.DashboardRepository
	log  *zap.Logger
	now  func() time.Time
}

func NewDashboardService(repo repositories.DashboardRepository, log *zap.Logger) DashboardService {
	if log == nil {
		log = zap.NewNop()
	}
	return &dashboardService{repo: repo, log: log.Named("dashboard"), now: time.Now}
}

// normalizeRange defaults to the last 30 days and fixes reversed bounds.
func normalizeRange(r resp.TimeRange, now time.Time) resp.TimeRange {
	out := r
	if out.End.IsZero() {
		out.End = now.UTC()
	}
	if out.Start.IsZero() {
		out.Start = out.End.AddDate(0, 0, -30)
	}
	if out.Start.After(out.End) {
		out.Start, out.End = out.End, out.Start
	}
	return out
}

func round2(v float64) float64 {
	return math.Round(v*100) / 100
}

func (s *dashboardService) BuildDashboard(ctx context.Context, rng resp.TimeRange) (*resp.DashboardReport, error) {
	rng = normalizeRange(rng, s.now())

	// ---------- Core counts ----------
	totalAccounts, err := s.repo.CountTotalAccounts(ctx)
	if err != nil {
		return nil, s.dbError("count accounts", err)
	}

	newAccounts, err := s.repo.CountNewAccounts(ctx, rng.Start, rng.End)
	if err != nil {
		return nil, s.dbError("count new accounts", err)
	}

	totalTrips, err := s.repo.CountTotalTrips(ctx)
	if err != nil {
		return nil, s.dbError("count trips", err)
	}

	newTrips, err := s.repo.CountNewTrips(ctx, rng.Start, rng.End)
	if err != nil {
		return nil, s.dbError("count new trips", err)
	}

	totalActivities, err := s.repo.CountTotalActivities(ctx)
	if err != nil {
		return nil, s.dbError("count activities", err)
	}

	// ---------- Feasibility ----------
	summary, err := s.repo.ScoreSummary(ctx)
	if err != nil {
		return nil, s.dbError("score summary", err)
	}

	mixRows, err := s.repo.StatusMix(ctx)
	if err != nil {
		return nil, s.dbError("status mix", err)
	}
	var mixTotal int64
	for _, r := range mixRows {
		mixTotal += r.Count
	}
	statusMix := make([]resp.StatusMixItem, 0, len(mixRows))
	for _, r := range mixRows {
		item := resp.StatusMixItem{Status: r.Status, Count: r.Count}
		if mixTotal > 0 {
			item.Percent = round2(float64(r.Count) * 100 / float64(mixTotal))
		}
		statusMix = append(statusMix, item)
	}

	// ---------- Top cities ----------
	cityRows, err := s.repo.TopCities(ctx, rng.Start, rng.End, topCitiesLimit)
	if err != nil {
		return nil, s.dbError("top cities", err)
	}
	topCities := make([]resp.TopCity, 0, len(cityRows))
	for _, r := range cityRows {
		topCities = append(topCities, resp.TopCity{City: r.City, Count: r.Count})
	}

	return &resp.DashboardReport{
		Range: rng,
		KPIs: resp.KPIBlock{
			TotalAccounts:   totalAccounts,
			NewAccounts:     newAccounts,
			TotalTrips:      totalTrips,
			NewTrips:        newTrips,
			TotalActivities: totalActivities,
			EvaluatedTrips:  summary.Evaluated,
			AverageScore:    round2(summary.Average),
		},
		StatusMix: statusMix,
		TopCities: topCities,
	}, nil
}

func (s *dashboardService) dbError(step string, err error) error {
	s.log.Error(step, zap.Error(err))
	return utils.ErrDatabaseError
}
