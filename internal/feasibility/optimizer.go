package feasibility

import (
	"cmp"
	"fmt"
)

const (
	// Days with more activities than this are candidates for trimming.
	trimThreshold = 4
	// Destination days must have fewer activities than this.
	lightDayActivities = 4
	sightseeingMerge   = 3
	longStreakHours    = 8
	// Flat estimate of the extra spend a slower pace brings (accommodation, transport).
	relaxedBudgetIncrease = 100.0
)

// Optimize proposes up to three rewrites of plan. Plans already rated
// excellent get none. The caller's plan is never modified.
func Optimize(plan TripPlan, current ScoreResult) ([]OptimizedTrip, error) {
	if current.Percentage >= excellentThreshold {
		return nil, nil
	}
	if len(plan.Days) == 0 {
		return nil, nil
	}
	if err := Validate(plan); err != nil {
		return nil, err
	}

	var out []OptimizedTrip
	if balanced, ok := balancedPlan(plan, current); ok {
		out = append(out, balanced)
	}
	out = append(out, relaxedPlan(plan, current), budgetPlan(plan, current))
	return out, nil
}

// BestOptimization returns the candidate with the highest score. On ties the
// first one wins.
func BestOptimization(candidates []OptimizedTrip) (OptimizedTrip, bool) {
	if len(candidates) == 0 {
		return OptimizedTrip{}, false
	}
	best := candidates[0]
	for _, c := range candidates[1:] {
		if c.Possibility.Percentage > best.Possibility.Percentage {
			best = c
		}
	}
	return best, true
}

// Apply returns the rewritten plan carried by the candidate. It is not
// re-validated.
func Apply(candidate OptimizedTrip) TripPlan {
	return candidate.TripData.Clone()
}

func balancedPlan(plan TripPlan, current ScoreResult) (OptimizedTrip, bool) {
	trip := plan.Clone()
	var changes []Change

	for _, dayIdx := range overloadedDays(current, len(trip.Days)) {
		dest := leastLoadedDay(trip, dayIdx)
		if dest < 0 {
			continue
		}
		day := &trip.Days[dayIdx]
		if len(day.Activities) <= trimThreshold {
			continue
		}
		pick := lastDroppable(day.Activities)
		if pick < 0 {
			continue
		}
		moved := day.removeAt(pick)
		trip.Days[dest].add(moved)
		changes = append(changes, Change{
			Type:        ChangeMoveActivity,
			DayIndex:    intPtr(dayIdx),
			Description: fmt.Sprintf("Move %q from Day %d to Day %d", moved.Name, dayIdx+1, dest+1),
			Impact:      fmt.Sprintf("Day %d gets lighter, Day %d stays under %d activities", dayIdx+1, dest+1, lightDayActivities+1),
		})
	}

	for i, d := range trip.Days {
		sights := 0
		for _, a := range d.Activities {
			if a.Category == CategorySightseeing {
				sights++
			}
		}
		if sights >= sightseeingMerge {
			changes = append(changes, Change{
				Type:        ChangeMergeActivities,
				DayIndex:    intPtr(i),
				Description: fmt.Sprintf("Group the %d sightseeing stops on Day %d into one walking route", sights, i+1),
				Impact:      "Less time spent moving between sights",
			})
		}
	}

	result := score(trip)
	if result.Percentage <= current.Percentage {
		return OptimizedTrip{}, false
	}
	return OptimizedTrip{
		ID:                    "balanced",
		Name:                  "Balanced plan",
		Description:           "Spreads activities more evenly across the trip without dropping anything",
		Icon:                  "⭐",
		Color:                 "primary",
		TripData:              trip,
		Possibility:           result,
		Changes:               nonNilChanges(changes),
		ImprovementPercentage: improvement(result, current),
		Tradeoffs: []string{
			"Keeps every planned activity",
			"Some activities move to different days",
			"Lighter days get busier",
			"Same total budget",
		},
	}, true
}

func relaxedPlan(plan TripPlan, current ScoreResult) OptimizedTrip {
	trip := plan.Clone()
	var changes []Change

	longest := 0
	for i, d := range trip.Days {
		if d.TotalDuration > trip.Days[longest].TotalDuration {
			longest = i
		}
	}
	if day := &trip.Days[longest]; len(day.Activities) > trimThreshold {
		dropped := day.removeAt(len(day.Activities) - 1)
		changes = append(changes, Change{
			Type:        ChangeAddRest,
			DayIndex:    intPtr(longest),
			Description: fmt.Sprintf("Drop %q on Day %d to free up rest time", dropped.Name, longest+1),
			Impact:      fmt.Sprintf("Frees %.1f hours on the busiest day", dropped.Duration),
		})
	}

	streak := 0
	for i, d := range trip.Days {
		if d.TotalDuration <= longStreakHours {
			streak = 0
			continue
		}
		streak++
		if streak >= 2 {
			changes = append(changes, Change{
				Type:        ChangeAddRest,
				DayIndex:    intPtr(i),
				Description: fmt.Sprintf("Start Day %d later or end it earlier, it follows another long day", i+1),
				Impact:      "Avoids back-to-back exhausting days",
			})
		}
	}

	result := score(trip)
	return OptimizedTrip{
		ID:                    "relaxed",
		Name:                  "Relaxed plan",
		Description:           "Fewer activities on the longest days and more time to rest",
		Icon:                  "🌿",
		Color:                 "success",
		TripData:              trip,
		Possibility:           result,
		Changes:               nonNilChanges(changes),
		ImprovementPercentage: improvement(result, current),
		Tradeoffs: []string{
			"Fewer activities on the busiest day",
			"More free time to rest",
			fmt.Sprintf("Budget may increase by about %.0f for a slower pace", relaxedBudgetIncrease),
		},
	}
}

func budgetPlan(plan TripPlan, current ScoreResult) OptimizedTrip {
	trip := plan.Clone()
	var (
		changes []Change
		saved   float64
		removed int
	)

	allotment := trip.TotalBudget / float64(trip.TotalDays)
	for i := range trip.Days {
		day := &trip.Days[i]
		if len(day.Activities) <= trimThreshold && day.TotalCost <= allotment {
			continue
		}
		idx := priciestDroppable(day.Activities)
		if idx < 0 {
			continue
		}
		target := day.removeAt(idx)
		saved += target.Cost
		removed++
		changes = append(changes, Change{
			Type:        ChangeRemoveActivity,
			DayIndex:    intPtr(i),
			Description: fmt.Sprintf("Remove %q from Day %d", target.Name, i+1),
			Impact:      fmt.Sprintf("Saves %.0f", target.Cost),
		})
	}

	result := score(trip)
	return OptimizedTrip{
		ID:                    "budget",
		Name:                  "Budget plan",
		Description:           "Drops the priciest optional activities to keep spending in check",
		Icon:                  "💰",
		Color:                 "warning",
		TripData:              trip,
		Possibility:           result,
		Changes:               nonNilChanges(changes),
		ImprovementPercentage: improvement(result, current),
		Tradeoffs: []string{
			fmt.Sprintf("Saves about %.0f", saved),
			fmt.Sprintf("%d optional or low-priority activities removed", removed),
			"Must-see activities are kept",
		},
	}
}

// overloadedDays lists, in issue order and without duplicates, the in-range
// day indexes flagged by an overload issue.
func overloadedDays(current ScoreResult, dayCount int) []int {
	var days []int
	seen := make(map[int]bool)
	for _, issue := range current.Issues {
		if issue.Type != IssueOverload || issue.DayIndex == nil {
			continue
		}
		i := *issue.DayIndex
		if i < 0 || i >= dayCount || seen[i] {
			continue
		}
		seen[i] = true
		days = append(days, i)
	}
	return days
}

// leastLoadedDay returns the day with the fewest activities other than
// exclude, or -1 when every other day already has lightDayActivities or more.
func leastLoadedDay(trip TripPlan, exclude int) int {
	best := -1
	for i, d := range trip.Days {
		if i == exclude || len(d.Activities) >= lightDayActivities {
			continue
		}
		if best < 0 || len(d.Activities) < len(trip.Days[best].Activities) {
			best = i
		}
	}
	return best
}

// lastDroppable returns the index of the last optional or low-priority
// activity, or -1.
func lastDroppable(activities []Activity) int {
	for i := len(activities) - 1; i >= 0; i-- {
		if activities[i].droppable() {
			return i
		}
	}
	return -1
}

// priciestDroppable returns the index of the most expensive optional or
// low-priority activity, or -1. Among equal costs the later one wins. Activity
// IDs are not trusted to be unique, so the result is positional.
func priciestDroppable(activities []Activity) int {
	best := -1
	for i, a := range activities {
		if !a.droppable() {
			continue
		}
		if best < 0 || cmp.Compare(a.Cost, activities[best].Cost) >= 0 {
			best = i
		}
	}
	return best
}

func improvement(result, current ScoreResult) int {
	return max(0, result.Percentage-current.Percentage)
}

func nonNilChanges(changes []Change) []Change {
	if changes == nil {
		return []Change{}
	}
	return changes
}
