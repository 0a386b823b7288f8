package response_models

import "time"

type TimeRange struct {
	Start time.Time `json:"start"`
	End   time.Time `json:"end"`
}

type KPIBlock struct {
	TotalAccounts   int64 `json:"total_accounts"`
	NewAccounts     int64 `json:"new_accounts"`
	TotalTrips      int64 `json:"total_trips"`
	NewTrips        int64 `json:"new_trips"`
	TotalActivities int64 `json:"total_activities"`
	EvaluatedTrips  int64 `json:"evaluated_trips"`
	// AverageScore is over evaluated trips only.
	AverageScore float64 `json:"average_score"`
}

type StatusMixItem struct {
	Status  string  `json:"status"`
	Count   int64   `json:"count"`
	Percent float64 `json:"percent"`
}

type TopCity struct {
	City  string `json:"city"`
	Count int64  `json:"count"`
}

type DashboardReport struct {
	Range     TimeRange       `json:"range"`
	KPIs      KPIBlock        `json:"kpis"`
	StatusMix []StatusMixItem `json:"status_mix"`
	TopCities []TopCity       `json:"top_cities"`
}
