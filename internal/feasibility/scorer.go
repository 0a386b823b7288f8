package feasibility

import "fmt"

// Dimension maxima. They add up to 100.
const (
	maxBudgetScore   = 30
	maxLoadScore     = 25
	maxTimeScore     = 20
	maxTravelScore   = 15
	maxDurationScore = 10
)

// Status thresholds on the final percentage.
const (
	excellentThreshold = 85
	goodThreshold      = 70
	moderateThreshold  = 55
)

const (
	heavyOverloadActivities = 6 // strictly more than this is a heavy overload
	overloadActivities      = 5
	longDayHours            = 10
	restDayHours            = 3
	restDayMinTripDays      = 4
	busyBeforeTravel        = 3
	spendingSpikeFactor     = 1.5
)

// Evaluate scores a plan. A plan without days is treated as a fresh trip
// and always rates excellent. Degenerate plans fail with an
// *InvalidPlanError.
func Evaluate(plan TripPlan) (ScoreResult, error) {
	if len(plan.Days) == 0 {
		return emptyPlanResult(), nil
	}
	if err := Validate(plan); err != nil {
		return ScoreResult{}, err
	}
	return score(plan), nil
}

// score assumes a validated plan with at least one day.
func score(plan TripPlan) ScoreResult {
	var issues []Issue

	budget, budgetIssues := scoreBudget(plan)
	issues = append(issues, budgetIssues...)
	load, loadIssues := scoreActivityLoad(plan)
	issues = append(issues, loadIssues...)
	timing, timeIssues := scoreTimeRealism(plan)
	issues = append(issues, timeIssues...)
	travel, travelIssues := scoreTravelFlow(plan)
	issues = append(issues, travelIssues...)
	duration, durationIssues := scoreDuration(plan)
	issues = append(issues, durationIssues...)

	total := clamp(budget.Score+load.Score+timing.Score+travel.Score+duration.Score, 0, 100)
	status, label, color := statusFor(total)

	if issues == nil {
		issues = []Issue{}
	}
	return ScoreResult{
		Percentage: total,
		Status:     status,
		Label:      label,
		Color:      color,
		Breakdown: Breakdown{
			Budget:       budget,
			ActivityLoad: load,
			TimeRealism:  timing,
			TravelFlow:   travel,
			Duration:     duration,
		},
		Issues:      issues,
		Suggestions: suggestionsFor(plan, issues),
	}
}

func emptyPlanResult() ScoreResult {
	placeholder := func(max int) DimensionScore {
		return DimensionScore{Score: max, Details: []string{"No activities planned yet"}}
	}
	status, label, color := statusFor(100)
	return ScoreResult{
		Percentage: 100,
		Status:     status,
		Label:      label,
		Color:      color,
		Breakdown: Breakdown{
			Budget:       placeholder(maxBudgetScore),
			ActivityLoad: placeholder(maxLoadScore),
			TimeRealism:  placeholder(maxTimeScore),
			TravelFlow:   placeholder(maxTravelScore),
			Duration:     placeholder(maxDurationScore),
		},
		Issues:      []Issue{},
		Suggestions: []string{"Start adding activities to see how feasible your trip is"},
	}
}

func statusFor(percentage int) (Status, string, string) {
	switch {
	case percentage >= excellentThreshold:
		return StatusExcellent, "Highly feasible", "green"
	case percentage >= goodThreshold:
		return StatusGood, "Feasible", "blue"
	case percentage >= moderateThreshold:
		return StatusModerate, "Needs adjustments", "yellow"
	default:
		return StatusRisky, "Risky", "red"
	}
}

func totalCost(plan TripPlan) float64 {
	var total float64
	for _, d := range plan.Days {
		total += d.TotalCost
	}
	return total
}

func scoreBudget(plan TripPlan) (DimensionScore, []Issue) {
	var (
		issues  []Issue
		details []string
		penalty int
	)

	total := totalCost(plan)
	if total > plan.TotalBudget {
		over := (total - plan.TotalBudget) / plan.TotalBudget
		severity := SeverityWarning
		switch {
		case over <= 0.10:
			penalty = 5
		case over <= 0.25:
			penalty = 15
		default:
			penalty = maxBudgetScore
			severity = SeverityCritical
		}
		msg := fmt.Sprintf("Planned spending %.0f exceeds the budget of %.0f by %.0f%%", total, plan.TotalBudget, over*100)
		details = append(details, msg)
		issues = append(issues, Issue{Type: IssueBudget, Severity: severity, Message: msg, Impact: penalty})
	} else {
		details = append(details, fmt.Sprintf("Planned spending %.0f fits the budget of %.0f", total, plan.TotalBudget))
	}

	avg := total / float64(len(plan.Days))
	if avg > 0 {
		for i, d := range plan.Days {
			if d.TotalCost > avg*spendingSpikeFactor {
				msg := fmt.Sprintf("Day %d costs %.0f, well above the daily average of %.0f", i+1, d.TotalCost, avg)
				details = append(details, msg)
				issues = append(issues, Issue{Type: IssueBudget, Severity: SeverityInfo, DayIndex: intPtr(i), Message: msg})
			}
		}
	}

	return DimensionScore{Score: maxBudgetScore - penalty, Penalty: penalty, Details: details}, issues
}

func scoreActivityLoad(plan TripPlan) (DimensionScore, []Issue) {
	var (
		issues     []Issue
		details    []string
		penalty    int
		overloaded int
	)

	for i, d := range plan.Days {
		n := len(d.Activities)
		switch {
		case n > heavyOverloadActivities:
			penalty += 10
			overloaded++
			msg := fmt.Sprintf("Day %d is heavily overloaded with %d activities", i+1, n)
			details = append(details, msg)
			issues = append(issues, Issue{Type: IssueOverload, Severity: SeverityCritical, DayIndex: intPtr(i), Message: msg, Impact: 10})
		case n >= overloadActivities:
			penalty += 5
			overloaded++
			msg := fmt.Sprintf("Day %d is packed with %d activities", i+1, n)
			details = append(details, msg)
			issues = append(issues, Issue{Type: IssueOverload, Severity: SeverityWarning, DayIndex: intPtr(i), Message: msg, Impact: 5})
		}
	}
	if overloaded > 2 {
		penalty += 5
		msg := fmt.Sprintf("%d days are overloaded, the trip will be exhausting", overloaded)
		details = append(details, msg)
		issues = append(issues, Issue{Type: IssueOverload, Severity: SeverityWarning, Message: msg, Impact: 5})
	}
	if len(details) == 0 {
		details = append(details, "Daily activity load looks manageable")
	}

	penalty = min(penalty, maxLoadScore)
	return DimensionScore{Score: maxLoadScore - penalty, Penalty: penalty, Details: details}, issues
}

func scoreTimeRealism(plan TripPlan) (DimensionScore, []Issue) {
	var (
		issues  []Issue
		details []string
		penalty int
	)

	hasRestDay := false
	for i, d := range plan.Days {
		if d.TotalDuration > longDayHours {
			penalty += 5
			msg := fmt.Sprintf("Day %d schedules %.1f hours of activities", i+1, d.TotalDuration)
			details = append(details, msg)
			issues = append(issues, Issue{Type: IssueTime, Severity: SeverityWarning, DayIndex: intPtr(i), Message: msg, Impact: 5})
		}
		if d.TotalDuration < restDayHours {
			hasRestDay = true
		}
	}
	if plan.TotalDays > restDayMinTripDays && !hasRestDay {
		penalty += 10
		msg := fmt.Sprintf("No rest day in a %d-day trip, consider adding one", plan.TotalDays)
		details = append(details, msg)
		issues = append(issues, Issue{Type: IssueTime, Severity: SeverityWarning, Message: msg, Impact: 10})
	}
	if len(details) == 0 {
		details = append(details, "Daily schedules leave enough free time")
	}

	penalty = min(penalty, maxTimeScore)
	return DimensionScore{Score: maxTimeScore - penalty, Penalty: penalty, Details: details}, issues
}

func scoreTravelFlow(plan TripPlan) (DimensionScore, []Issue) {
	var (
		issues  []Issue
		details []string
		penalty int
	)

	for i := 1; i < len(plan.Days); i++ {
		prev, cur := plan.Days[i-1], plan.Days[i]
		if prev.city() == "" || cur.city() == "" || prev.city() == cur.city() {
			continue
		}
		if len(prev.Activities) > busyBeforeTravel {
			penalty += 5
			msg := fmt.Sprintf("Day %d changes city right after a busy day with no buffer", i+1)
			details = append(details, msg)
			issues = append(issues, Issue{Type: IssueTravel, Severity: SeverityWarning, DayIndex: intPtr(i), Message: msg, Impact: 5})
		}
	}
	if float64(len(plan.Cities)) > float64(plan.TotalDays)/2 {
		penalty += 5
		msg := fmt.Sprintf("%d cities in %d days means a lot of time in transit", len(plan.Cities), plan.TotalDays)
		details = append(details, msg)
		issues = append(issues, Issue{Type: IssueTravel, Severity: SeverityWarning, Message: msg, Impact: 5})
	}
	if len(details) == 0 {
		details = append(details, "City changes are well paced")
	}

	penalty = min(penalty, maxTravelScore)
	return DimensionScore{Score: maxTravelScore - penalty, Penalty: penalty, Details: details}, issues
}

func scoreDuration(plan TripPlan) (DimensionScore, []Issue) {
	daysPerCity := float64(plan.TotalDays) / float64(len(plan.Cities))

	var (
		issues  []Issue
		penalty int
	)
	msg := fmt.Sprintf("%.1f days per city", daysPerCity)
	switch {
	case daysPerCity < 2:
		penalty = maxDurationScore
		msg = fmt.Sprintf("Only %.1f days per city, too little time in each place", daysPerCity)
		issues = append(issues, Issue{Type: IssueDuration, Severity: SeverityCritical, Message: msg, Impact: penalty})
	case daysPerCity < 2.5:
		penalty = 5
		msg = fmt.Sprintf("%.1f days per city is a tight schedule", daysPerCity)
		issues = append(issues, Issue{Type: IssueDuration, Severity: SeverityWarning, Message: msg, Impact: penalty})
	}

	return DimensionScore{Score: maxDurationScore - penalty, Penalty: penalty, Details: []string{msg}}, issues
}

// suggestionsFor emits one suggestion per distinct issue type, in the order
// the types first appear.
func suggestionsFor(plan TripPlan, issues []Issue) []string {
	suggestions := []string{}
	seen := make(map[IssueType]bool)
	for _, issue := range issues {
		if seen[issue.Type] {
			continue
		}
		seen[issue.Type] = true

		switch issue.Type {
		case IssueBudget:
			total := totalCost(plan)
			if total > plan.TotalBudget {
				perDay := (total - plan.TotalBudget) / float64(plan.TotalDays)
				amount := fmt.Sprintf("%.0f", perDay)
				if plan.Currency != "" {
					amount += " " + plan.Currency
				}
				suggestions = append(suggestions, fmt.Sprintf("Reduce average daily spending by about %s to stay within budget", amount))
			} else {
				suggestions = append(suggestions, "Spread the most expensive activities more evenly across the trip")
			}
		case IssueOverload:
			if day, ok := firstOverloadedDay(issues); ok {
				suggestions = append(suggestions, fmt.Sprintf("Move one or two activities from Day %d to a lighter day", day+1))
			} else {
				suggestions = append(suggestions, "Move some activities from your busiest days to lighter ones")
			}
		case IssueTime:
			suggestions = append(suggestions, "Add a rest evening or a lighter day to recover")
		case IssueTravel:
			suggestions = append(suggestions, "Keep the day before a city change light to leave a travel buffer")
		case IssueDuration:
			suggestions = append(suggestions, "Consider visiting fewer cities or extending the trip")
		}
	}
	return suggestions
}

func firstOverloadedDay(issues []Issue) (int, bool) {
	for _, issue := range issues {
		if issue.Type == IssueOverload && issue.DayIndex != nil {
			return *issue.DayIndex, true
		}
	}
	return 0, false
}

func clamp(v, lo, hi int) int {
	return max(lo, min(v, hi))
}
