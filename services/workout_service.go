package services

import (
	"errors"
	"time"

	"github.com/itsUtkarshOjha/fitlogger/models"

	"github.com/lib/pq"
	"gorm.io/gorm"
)

// Similarity search fallback parameters (pg_trgm scale, 0..1).
const (
	searchThreshold = 0.4
	searchLimit     = 5
)

// FilterKind says how a type selector on GET /workout/:userId/:type is
// interpreted.
type FilterKind int

const (
	FilterAll FilterKind = iota
	FilterMovement
	FilterMuscle
	FilterStyle
	FilterSearch
)

// filterIndex resolves a selector string in one lookup. Registration order
// is the precedence order: the All sentinel, then movement types, then
// muscle groups, then training styles. First registration wins, so a value
// that ever ends up in two vocabularies keeps a deterministic meaning.
var filterIndex = buildFilterIndex()

func buildFilterIndex() map[string]FilterKind {
	idx := map[string]FilterKind{"All": FilterAll}
	register := func(values []string, kind FilterKind) {
		for _, v := range values {
			if _, ok := idx[v]; !ok {
				idx[v] = kind
			}
		}
	}
	register(models.MovementTypes, FilterMovement)
	register(models.MuscleGroups, FilterMuscle)
	register(models.TrainingStyles, FilterStyle)
	return idx
}

// ResolveFilter classifies a type selector. Anything outside the fixed
// vocabularies is treated as a fuzzy name search.
func ResolveFilter(selector string) FilterKind {
	if kind, ok := filterIndex[selector]; ok {
		return kind
	}
	return FilterSearch
}

type WorkoutService struct{ db *gorm.DB }

func NewWorkoutService(db *gorm.DB) *WorkoutService { return &WorkoutService{db: db} }

func (s *WorkoutService) CreateWorkout(exercise *models.Exercise) error {
	return s.db.Create(exercise).Error
}

// ListWorkouts returns the user's exercises selected by the type selector,
// newest first. The search fallback mirrors the original behavior: it
// matches on name only and is not scoped to the user.
func (s *WorkoutService) ListWorkouts(userID, selector string) ([]models.Exercise, error) {
	if err := userExists(s.db, userID); err != nil {
		return nil, err
	}

	exercises := []models.Exercise{}
	switch kind := ResolveFilter(selector); kind {
	case FilterAll:
		err := s.db.
			Where("user_id = ?", userID).
			Order("recorded_at DESC").
			Find(&exercises).Error
		return exercises, err
	case FilterMovement, FilterMuscle, FilterStyle:
		column := map[FilterKind]string{
			FilterMovement: "movement_type",
			FilterMuscle:   "muscle_group",
			FilterStyle:    "training_style",
		}[kind]
		err := s.db.
			Where(column+" = ? AND user_id = ?", selector, userID).
			Order("recorded_at DESC").
			Find(&exercises).Error
		return exercises, err
	default:
		err := s.db.
			Raw("SELECT * FROM exercises WHERE similarity(exercise, ?) > ? LIMIT ?",
				selector, searchThreshold, searchLimit).
			Scan(&exercises).Error
		return exercises, err
	}
}

// WorkoutPatch is a partial update; nil fields are left untouched. The SPA
// only ever sends notes, but the endpoint accepts any subset.
type WorkoutPatch struct {
	Exercise      *string         `json:"exercise"`
	Notes         *string         `json:"notes"`
	MuscleGroup   *string         `json:"muscleGroup"`
	MovementType  *string         `json:"movementType"`
	TrainingStyle *string         `json:"trainingStyle"`
	Duration      *int            `json:"duration"`
	LiftWeight    pq.Float64Array `json:"lift_weight"`
	Reps          pq.Int64Array   `json:"reps"`
	RecordedAt    *time.Time      `json:"recordedAt"`
}

func (p *WorkoutPatch) updates() map[string]interface{} {
	u := map[string]interface{}{}
	if p.Exercise != nil {
		u["exercise"] = *p.Exercise
	}
	if p.Notes != nil {
		u["notes"] = *p.Notes
	}
	if p.MuscleGroup != nil {
		u["muscle_group"] = *p.MuscleGroup
	}
	if p.MovementType != nil {
		u["movement_type"] = *p.MovementType
	}
	if p.TrainingStyle != nil {
		u["training_style"] = *p.TrainingStyle
	}
	if p.Duration != nil {
		u["duration"] = *p.Duration
	}
	if p.LiftWeight != nil {
		u["lift_weight"] = p.LiftWeight
	}
	if p.Reps != nil {
		u["reps"] = p.Reps
	}
	if p.RecordedAt != nil {
		u["recorded_at"] = *p.RecordedAt
	}
	return u
}

func (s *WorkoutService) UpdateWorkout(workoutID uint, patch *WorkoutPatch) (*models.Exercise, error) {
	var exercise models.Exercise
	if err := s.db.First(&exercise, workoutID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrRecordNotFound
		}
		return nil, err
	}

	if updates := patch.updates(); len(updates) > 0 {
		if err := s.db.Model(&exercise).Updates(updates).Error; err != nil {
			return nil, err
		}
	}
	return &exercise, nil
}

func (s *WorkoutService) DeleteWorkout(workoutID uint) error {
	res := s.db.Delete(&models.Exercise{}, workoutID)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return ErrRecordNotFound
	}
	return nil
}
