package models

import (
	"time"

	"github.com/lib/pq"
)

// Fixed category vocabularies for exercises. These drive the filter
// resolution on GET /workout/:userId/:type.
var (
	MovementTypes  = []string{"Push", "Pull", "Compound", "Isolation"}
	MuscleGroups   = []string{"Chest", "Triceps", "Back", "Biceps", "Shoulders", "Legs", "Core"}
	TrainingStyles = []string{"Strength", "Cardio", "Flexibility"}
)

// Exercise is one logged workout entry. LiftWeight and Reps are parallel
// per-set arrays (weight lifted and rep count for each set).
type Exercise struct {
	ID            uint            `gorm:"primaryKey" json:"id"`
	UserID        string          `gorm:"index;not null" json:"userId"`
	Exercise      string          `gorm:"not null" json:"exercise"`
	Notes         *string         `json:"notes,omitempty"`
	MuscleGroup   *string         `json:"muscleGroup,omitempty"`
	MovementType  *string         `json:"movementType,omitempty"`
	TrainingStyle *string         `json:"trainingStyle,omitempty"`
	Duration      *int            `json:"duration,omitempty"` // minutes
	LiftWeight    pq.Float64Array `gorm:"type:float8[]" json:"lift_weight"`
	Reps          pq.Int64Array   `gorm:"type:bigint[]" json:"reps"`
	RecordedAt    time.Time       `gorm:"index;not null" json:"recordedAt"`
	CreatedAt     time.Time       `json:"createdAt"`
	UpdatedAt     time.Time       `json:"updatedAt"`
}
