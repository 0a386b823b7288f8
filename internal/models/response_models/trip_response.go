package response_models

import (
	"tripwise/internal/feasibility"
	"tripwise/internal/models/db_models"
	"tripwise/pkg/utils"
)

type TripSummaryResponse struct {
	ID                string   `json:"id"`
	Name              string   `json:"name"`
	Currency          string   `json:"currency,omitempty"`
	TotalBudget       float64  `json:"total_budget"`
	TotalDays         int      `json:"total_days"`
	Cities            []string `json:"cities"`
	ActivityCount     int      `json:"activity_count"`
	FeasibilityScore  *int     `json:"feasibility_score"`
	FeasibilityStatus *string  `json:"feasibility_status"`
	UpdatedAt         string   `json:"updated_at"`
}

type TripResponse struct {
	TripSummaryResponse
	OwnerID     string               `json:"owner_id"`
	Plan        feasibility.TripPlan `json:"plan"`
	CreatedAt   string               `json:"created_at"`
	EvaluatedAt string               `json:"evaluated_at,omitempty"`
}

type TripListResponse struct {
	Items    []TripSummaryResponse `json:"items"`
	Page     int                   `json:"page"`
	PageSize int                   `json:"page_size"`
	Total    int64                 `json:"total"`
}

type OptimizationResponse struct {
	Current    feasibility.ScoreResult     `json:"current"`
	Candidates []feasibility.OptimizedTrip `json:"candidates"`
	// BestID is empty when there is nothing to optimize.
	BestID string `json:"best_id,omitempty"`
}

type ApplyOptimizationResponse struct {
	Trip     TripResponse            `json:"trip"`
	Applied  string                  `json:"applied"`
	Result   feasibility.ScoreResult `json:"result"`
	Improved int                     `json:"improved_by"`
}

type EstimateResponse struct {
	SuggestedBudget float64 `json:"suggested_budget"`
	SuggestedDays   int     `json:"suggested_days"`
	Currency        string  `json:"currency"`
	Notes           string  `json:"notes,omitempty"`
	Cached          bool    `json:"cached"`
}

func activityCount(plan feasibility.TripPlan) int {
	n := 0
	for _, d := range plan.Days {
		n += len(d.Activities)
	}
	return n
}

func NewTripSummaryResponse(t *db_models.Trip) TripSummaryResponse {
	cities := t.Plan.Cities
	if cities == nil {
		cities = []string{}
	}
	return TripSummaryResponse{
		ID:                t.ID.String(),
		Name:              t.Name,
		Currency:          t.Currency,
		TotalBudget:       t.Plan.TotalBudget,
		TotalDays:         t.Plan.TotalDays,
		Cities:            cities,
		ActivityCount:     activityCount(t.Plan),
		FeasibilityScore:  t.FeasibilityScore,
		FeasibilityStatus: t.FeasibilityStatus,
		UpdatedAt:         utils.FormatRFC3339(t.UpdatedTime()),
	}
}

func NewTripResponse(t *db_models.Trip) TripResponse {
	resp := TripResponse{
		TripSummaryResponse: NewTripSummaryResponse(t),
		OwnerID:             t.OwnerID.String(),
		Plan:                t.Plan,
		CreatedAt:           utils.FormatRFC3339(t.CreatedTime()),
	}
	if resp.Plan.Days == nil {
		resp.Plan.Days = []feasibility.TripDay{}
	}
	if t.EvaluatedAt != nil {
		resp.EvaluatedAt = utils.FormatRFC3339(utils.FromUnixSeconds(*t.EvaluatedAt))
	}
	return resp
}
