package request_models

import "tripwise/internal/feasibility"

type CreateTripRequest struct {
	Name        string   `json:"name" binding:"required,min=1,max=120"`
	Currency    string   `json:"currency" binding:"omitempty,len=3"`
	TotalBudget float64  `json:"total_budget" binding:"required,gt=0"`
	TotalDays   int      `json:"total_days" binding:"required,gt=0,lte=365"`
	Cities      []string `json:"cities" binding:"required,min=1,dive,required"`
	// StartDate (YYYY-MM-DD) pre-creates TotalDays empty days when set.
	StartDate string `json:"start_date"`
}

// UpdateTripRequest replaces the stored plan wholesale. Day totals are
// recomputed from the activities on save.
type UpdateTripRequest struct {
	Name string               `json:"name" binding:"omitempty,min=1,max=120"`
	Plan feasibility.TripPlan `json:"plan"`
}

type AddDayRequest struct {
	Date     string `json:"date"`
	CityID   string `json:"city_id"`
	CityName string `json:"city_name"`
}

type AddActivityRequest struct {
	Name       string               `json:"name" binding:"required"`
	Category   feasibility.Category `json:"category" binding:"required,oneof=sightseeing food shopping adventure culture relaxation transport other"`
	Duration   float64              `json:"duration" binding:"gte=0,lte=24"`
	Cost       float64              `json:"cost" binding:"gte=0"`
	Priority   feasibility.Priority `json:"priority" binding:"required,oneof=high medium low"`
	IsOptional bool                 `json:"is_optional"`
}

type ApplyOptimizationRequest struct {
	CandidateID string `json:"candidate_id" binding:"required,oneof=balanced relaxed budget"`
}

type PlanRequest struct {
	Plan feasibility.TripPlan `json:"plan"`
}

type EstimateRequest struct {
	Destination string `json:"destination" binding:"required,min=2,max=100"`
	Days        int    `json:"days" binding:"gte=0,lte=60"`
	Travelers   int    `json:"travelers" binding:"gte=0,lte=50"`
	Currency    string `json:"currency" binding:"omitempty,len=3"`
}
