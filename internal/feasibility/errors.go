package feasibility

import (
	"errors"
	"fmt"
)

// ErrInvalidPlan is matched by every *InvalidPlanError.
var ErrInvalidPlan = errors.New("invalid trip plan")

// InvalidPlanError reports a degenerate plan that cannot be scored without
// dividing by zero or producing meaningless numbers.
type InvalidPlanError struct {
	Field  string
	Reason string
}

func (e *InvalidPlanError) Error() string {
	return fmt.Sprintf("invalid trip plan: %s %s", e.Field, e.Reason)
}

func (e *InvalidPlanError) Is(target error) bool {
	return target == ErrInvalidPlan
}

// Validate checks the preconditions of Evaluate for a plan with at least one
// day. Plans without days are always valid.
func Validate(plan TripPlan) error {
	if len(plan.Days) == 0 {
		return nil
	}
	if err := ValidateHeader(plan); err != nil {
		return err
	}
	for i, d := range plan.Days {
		if d.TotalCost < 0 {
			return &InvalidPlanError{Field: fmt.Sprintf("days[%d].total_cost", i), Reason: "must not be negative"}
		}
		if d.TotalDuration < 0 {
			return &InvalidPlanError{Field: fmt.Sprintf("days[%d].total_duration", i), Reason: "must not be negative"}
		}
		for j, a := range d.Activities {
			if a.Cost < 0 {
				return &InvalidPlanError{Field: fmt.Sprintf("days[%d].activities[%d].cost", i, j), Reason: "must not be negative"}
			}
			if a.Duration < 0 {
				return &InvalidPlanError{Field: fmt.Sprintf("days[%d].activities[%d].duration", i, j), Reason: "must not be negative"}
			}
		}
	}
	return nil
}

// ValidateHeader checks only the plan-level fields, whether or not any day
// is planned yet.
func ValidateHeader(plan TripPlan) error {
	if len(plan.Cities) == 0 {
		return &InvalidPlanError{Field: "cities", Reason: "must not be empty"}
	}
	if plan.TotalDays <= 0 {
		return &InvalidPlanError{Field: "total_days", Reason: "must be greater than zero"}
	}
	if plan.TotalBudget <= 0 {
		return &InvalidPlanError{Field: "total_budget", Reason: "must be greater than zero"}
	}
	return nil
}
