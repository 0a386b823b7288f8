// Package testutil provides seeded trip fixtures for tests. It must not be
// imported by production code.
package testutil

import (
	"fmt"
	"math/rand/v2"

	"tripwise/internal/feasibility"
)

var (
	sampleCities = []string{"Hanoi", "Ha Long", "Hue", "Hoi An", "Da Lat", "Nha Trang", "Saigon", "Can Tho"}
	sampleNames  = []string{"Old quarter walk", "Street food tour", "Night market", "Temple visit",
		"Kayaking", "Museum", "Cooking class", "Spa afternoon", "Boat trip", "Coffee tasting"}
	categories = []feasibility.Category{
		feasibility.CategorySightseeing, feasibility.CategoryFood, feasibility.CategoryShopping,
		feasibility.CategoryAdventure, feasibility.CategoryCulture, feasibility.CategoryRelaxation,
		feasibility.CategoryTransport, feasibility.CategoryOther,
	}
	priorities = []feasibility.Priority{feasibility.PriorityHigh, feasibility.PriorityMedium, feasibility.PriorityLow}
)

// TripGenerator builds pseudo-random but reproducible trip plans.
type TripGenerator struct {
	rng *rand.Rand
}

func NewTripGenerator(seed uint64) *TripGenerator {
	return &TripGenerator{rng: rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15))}
}

// Plan generates a plan with the given number of days. Day totals are kept
// in sync with the activities.
func (g *TripGenerator) Plan(days int) feasibility.TripPlan {
	cityCount := 1 + g.rng.IntN(min(len(sampleCities), max(1, days/2)))
	cities := make([]string, cityCount)
	for i := range cities {
		cities[i] = sampleCities[(i+g.rng.IntN(len(sampleCities)))%len(sampleCities)]
	}

	plan := feasibility.TripPlan{
		TotalBudget: float64(100 * (5 + g.rng.IntN(30))),
		TotalDays:   days,
		Cities:      cities,
		Currency:    "USD",
	}
	perCity := max(1, days/cityCount)
	for d := 0; d < days; d++ {
		city := cities[min(d/perCity, cityCount-1)]
		plan.Days = append(plan.Days, g.Day(d, city, 1+g.rng.IntN(7)))
	}
	return plan
}

// Day generates one day in the given city with n activities.
func (g *TripGenerator) Day(index int, city string, n int) feasibility.TripDay {
	day := feasibility.TripDay{
		Date:     fmt.Sprintf("2025-06-%02d", index+1),
		CityName: city,
	}
	for i := 0; i < n; i++ {
		day.Activities = append(day.Activities, feasibility.Activity{
			ID:         fmt.Sprintf("act-%d-%d", index, i),
			Name:       sampleNames[g.rng.IntN(len(sampleNames))],
			Category:   categories[g.rng.IntN(len(categories))],
			Duration:   float64(1 + g.rng.IntN(4)),
			Cost:       float64(5 * g.rng.IntN(40)),
			Priority:   priorities[g.rng.IntN(len(priorities))],
			IsOptional: g.rng.IntN(4) == 0,
		})
	}
	day.Recalculate()
	return day
}

// Activity returns a deterministic activity for hand-built scenarios.
func Activity(id string, category feasibility.Category, priority feasibility.Priority, hours, cost float64) feasibility.Activity {
	return feasibility.Activity{
		ID:       id,
		Name:     "Activity " + id,
		Category: category,
		Duration: hours,
		Cost:     cost,
		Priority: priority,
	}
}

// DayWith builds a day from activities and recalculates its totals.
func DayWith(city string, activities ...feasibility.Activity) feasibility.TripDay {
	day := feasibility.TripDay{CityName: city, Activities: activities}
	day.Recalculate()
	return day
}

// OverloadedPlan is a three-day plan that scores 80: it is 23% over budget
// and its first day holds five activities, two of them low priority.
func OverloadedPlan() feasibility.TripPlan {
	sight := func(id string, p feasibility.Priority) feasibility.Activity {
		return Activity(id, feasibility.CategorySightseeing, p, 1, 20)
	}
	food := func(id string, p feasibility.Priority) feasibility.Activity {
		return Activity(id, feasibility.CategoryFood, p, 1, 20)
	}
	return feasibility.TripPlan{
		TotalBudget: 130,
		TotalDays:   3,
		Cities:      []string{"Hoi An"},
		Days: []feasibility.TripDay{
			DayWith("Hoi An",
				sight("a0", feasibility.PriorityLow),
				sight("a1", feasibility.PriorityHigh),
				food("a2", feasibility.PriorityLow),
				sight("a3", feasibility.PriorityHigh),
				food("a4", feasibility.PriorityHigh),
			),
			DayWith("Hoi An", food("b0", feasibility.PriorityHigh)),
			DayWith("Hoi An", food("c0", feasibility.PriorityHigh), food("c1", feasibility.PriorityMedium)),
		},
	}
}
