// Package feasibility rates how realistic a trip itinerary is and proposes
// rewritten itineraries that score better.
//
// Everything in this package is a pure function of its inputs: no I/O, no
// shared state, no logging. Callers own persistence and presentation.
package feasibility

type Category string

const (
	CategorySightseeing Category = "sightseeing"
	CategoryFood        Category = "food"
	CategoryShopping    Category = "shopping"
	CategoryAdventure   Category = "adventure"
	CategoryCulture     Category = "culture"
	CategoryRelaxation  Category = "relaxation"
	CategoryTransport   Category = "transport"
	CategoryOther       Category = "other"
)

type Priority string

const (
	PriorityHigh   Priority = "high"
	PriorityMedium Priority = "medium"
	PriorityLow    Priority = "low"
)

// TripPlan is the full in-memory description of a multi-day itinerary.
// Days are chronological; Cities is only used for its length.
type TripPlan struct {
	TotalBudget float64   `json:"total_budget"`
	TotalDays   int       `json:"total_days"`
	Cities      []string  `json:"cities"`
	Days        []TripDay `json:"days"`
	Currency    string    `json:"currency,omitempty"`
}

// TripDay holds one day of the itinerary. TotalCost and TotalDuration are
// maintained by the caller and are not recomputed by the scorer.
type TripDay struct {
	Date          string     `json:"date"`
	CityID        string     `json:"city_id,omitempty"`
	CityName      string     `json:"city_name,omitempty"`
	Activities    []Activity `json:"activities"`
	TotalCost     float64    `json:"total_cost"`
	TotalDuration float64    `json:"total_duration"` // hours
}

type Activity struct {
	ID         string   `json:"id"`
	Name       string   `json:"name"`
	Category   Category `json:"category"`
	Duration   float64  `json:"duration"` // hours
	Cost       float64  `json:"cost"`
	Priority   Priority `json:"priority"`
	IsOptional bool     `json:"is_optional"`
}

// city returns the identifier used to detect city transitions.
func (d TripDay) city() string {
	if d.CityID != "" {
		return d.CityID
	}
	return d.CityName
}

// Recalculate resyncs TotalCost and TotalDuration with Activities.
func (d *TripDay) Recalculate() {
	d.TotalCost, d.TotalDuration = 0, 0
	for _, a := range d.Activities {
		d.TotalCost += a.Cost
		d.TotalDuration += a.Duration
	}
}

func (d *TripDay) removeAt(i int) Activity {
	a := d.Activities[i]
	d.Activities = append(d.Activities[:i], d.Activities[i+1:]...)
	d.TotalCost = max(0, d.TotalCost-a.Cost)
	d.TotalDuration = max(0, d.TotalDuration-a.Duration)
	return a
}

func (d *TripDay) add(a Activity) {
	d.Activities = append(d.Activities, a)
	d.TotalCost += a.Cost
	d.TotalDuration += a.Duration
}

func (a Activity) droppable() bool {
	return a.IsOptional || a.Priority == PriorityLow
}

type Status string

const (
	StatusExcellent Status = "excellent"
	StatusGood      Status = "good"
	StatusModerate  Status = "moderate"
	StatusRisky     Status = "risky"
)

type Severity string

const (
	SeverityCritical Severity = "critical"
	SeverityWarning  Severity = "warning"
	SeverityInfo     Severity = "info"
)

type IssueType string

const (
	IssueBudget   IssueType = "budget"
	IssueOverload IssueType = "overload"
	IssueTime     IssueType = "time"
	IssueTravel   IssueType = "travel"
	IssueDuration IssueType = "duration"
)

// Issue is a finding attached to one scoring dimension. Impact is the number
// of penalty points attributable to it.
type Issue struct {
	Type     IssueType `json:"type"`
	Severity Severity  `json:"severity"`
	DayIndex *int      `json:"day_index,omitempty"`
	Message  string    `json:"message"`
	Impact   int       `json:"impact"`
}

type DimensionScore struct {
	Score   int      `json:"score"`
	Penalty int      `json:"penalty"`
	Details []string `json:"details"`
}

type Breakdown struct {
	Budget       DimensionScore `json:"budget"`
	ActivityLoad DimensionScore `json:"activity_load"`
	TimeRealism  DimensionScore `json:"time_realism"`
	TravelFlow   DimensionScore `json:"travel_flow"`
	Duration     DimensionScore `json:"duration"`
}

type ScoreResult struct {
	Percentage  int       `json:"percentage"`
	Status      Status    `json:"status"`
	Label       string    `json:"label"`
	Color       string    `json:"color"`
	Breakdown   Breakdown `json:"breakdown"`
	Issues      []Issue   `json:"issues"`
	Suggestions []string  `json:"suggestions"`
}

type ChangeType string

const (
	ChangeMoveActivity    ChangeType = "move_activity"
	ChangeRemoveActivity  ChangeType = "remove_activity"
	ChangeMergeActivities ChangeType = "merge_activities"
	ChangeAddRest         ChangeType = "add_rest"
	ChangeAdjustBudget    ChangeType = "adjust_budget"
	ChangeReduceCities    ChangeType = "reduce_cities"
)

type Change struct {
	Type        ChangeType `json:"type"`
	DayIndex    *int       `json:"day_index,omitempty"`
	Description string     `json:"description"`
	Impact      string     `json:"impact"`
}

// OptimizedTrip is one rewrite of a plan together with its fresh score.
type OptimizedTrip struct {
	ID                    string      `json:"id"`
	Name                  string      `json:"name"`
	Description           string      `json:"description"`
	Icon                  string      `json:"icon"`
	Color                 string      `json:"color"`
	TripData              TripPlan    `json:"trip_data"`
	Possibility           ScoreResult `json:"possibility"`
	Changes               []Change    `json:"changes"`
	ImprovementPercentage int         `json:"improvement_percentage"`
	Tradeoffs             []string    `json:"tradeoffs"`
}

func intPtr(i int) *int { return &i }
