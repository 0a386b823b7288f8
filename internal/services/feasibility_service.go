package services

import (
	"context"
	"time"

	"go.uber.org/zap"

	"tripwise/internal/feasibility"
	"tripwise/internal/models/response_models"
)

type FeasibilityServiceInterface interface {
	Evaluate(ctx context.Context, plan feasibility.TripPlan) (feasibility.ScoreResult, error)
	// Optimize scores plan and proposes rewrites. Candidates is empty, never
	// nil, when the plan is already feasible.
	Optimize(ctx context.Context, plan feasibility.TripPlan) (*response_models.OptimizationResponse, error)
}

type FeasibilityService struct {
	log *zap.Logger
}

func NewFeasibilityService(log *zap.Logger) FeasibilityServiceInterface {
	if log == nil {
		log = zap.NewNop()
	}
	return &FeasibilityService{log: log.Named("feasibility")}
}

func (f *FeasibilityService) Evaluate(ctx context.Context, plan feasibility.TripPlan) (feasibility.ScoreResult, error) {
	start := time.Now()

	result, err := feasibility.Evaluate(plan)
	if err != nil {
		f.log.Debug("plan rejected", zap.Error(err))
		return feasibility.ScoreResult{}, err
	}

	f.log.Debug("plan evaluated",
		zap.Int("days", len(plan.Days)),
		zap.Int("percentage", result.Percentage),
		zap.String("status", string(result.Status)),
		zap.Int("issues", len(result.Issues)),
		zap.Duration("took", time.Since(start)),
	)
	return result, nil
}

func (f *FeasibilityService) Optimize(ctx context.Context, plan feasibility.TripPlan) (*response_models.OptimizationResponse, error) {
	current, err := f.Evaluate(ctx, plan)
	if err != nil {
		return nil, err
	}

	candidates, err := feasibility.Optimize(plan, current)
	if err != nil {
		return nil, err
	}
	if candidates == nil {
		candidates = []feasibility.OptimizedTrip{}
	}

	out := &response_models.OptimizationResponse{
		Current:    current,
		Candidates: candidates,
	}
	if best, ok := feasibility.BestOptimization(candidates); ok {
		out.BestID = best.ID
		f.log.Debug("plan optimized",
			zap.Int("from", current.Percentage),
			zap.Int("to", best.Possibility.Percentage),
			zap.String("best", best.ID),
			zap.Int("candidates", len(candidates)),
		)
	}
	return out, nil
}
