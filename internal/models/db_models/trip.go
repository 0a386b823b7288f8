package db_models

import (
	"github.com/google/uuid"

	"tripwise/internal/feasibility"
)

// Trip persists a whole itinerary as one JSONB document. The score columns
// are a snapshot of the last evaluation and are nil until the first one.
type Trip struct {
	BaseModel
	OwnerID  uuid.UUID `gorm:"type:uuid;index;not null"`
	Name     string    `gorm:"not null"`
	Currency string    `gorm:"size:8"`

	Plan feasibility.TripPlan `gorm:"serializer:json;type:jsonb;not null"`

	FeasibilityScore  *int
	FeasibilityStatus *string `gorm:"index"`
	EvaluatedAt       *int64
}

// RecordScore stores the outcome of an evaluation on the row.
func (t *Trip) RecordScore(result feasibility.ScoreResult, at int64) {
	score := result.Percentage
	status := string(result.Status)
	t.FeasibilityScore = &score
	t.FeasibilityStatus = &status
	t.EvaluatedAt = &at
}

// ClearScore drops a score that no longer matches the plan.
func (t *Trip) ClearScore() {
	t.FeasibilityScore = nil
	t.FeasibilityStatus = nil
	t.EvaluatedAt = nil
}
