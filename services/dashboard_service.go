package services

import (
	"errors"
	"time"

	"github.com/itsUtkarshOjha/fitlogger/models"

	"gorm.io/gorm"
)

const activityStripDays = 15

type DashboardService struct{ db *gorm.DB }

func NewDashboardService(db *gorm.DB) *DashboardService { return &DashboardService{db: db} }

// DashboardSummary carries the aggregates the dashboard shows: totals over
// all logged exercises, the latest recorded body weight (0 when none), and
// a strip of the last days flagging which had at least one workout,
// oldest day first.
type DashboardSummary struct {
	Exercises     int     `json:"exercises"`
	Sets          int     `json:"sets"`
	Reps          int64   `json:"reps"`
	CurrentWeight float64 `json:"currentWeight"`
	Last15Days    []bool  `json:"last15Days"`
}

func (s *DashboardService) Summary(userID string, now time.Time) (*DashboardSummary, error) {
	if err := userExists(s.db, userID); err != nil {
		return nil, err
	}

	var exercises []models.Exercise
	if err := s.db.
		Where("user_id = ?", userID).
		Order("recorded_at DESC").
		Find(&exercises).Error; err != nil {
		return nil, err
	}

	out := &DashboardSummary{
		Exercises:  len(exercises),
		Last15Days: make([]bool, activityStripDays),
	}

	recorded := map[string]bool{}
	for _, ex := range exercises {
		out.Sets += len(ex.LiftWeight)
		for _, r := range ex.Reps {
			out.Reps += r
		}
		recorded[ex.RecordedAt.UTC().Format("2006-01-02")] = true
	}
	for i := 0; i < activityStripDays; i++ {
		day := now.UTC().AddDate(0, 0, -(activityStripDays - 1 - i))
		out.Last15Days[i] = recorded[day.Format("2006-01-02")]
	}

	var latest models.Weight
	err := s.db.
		Where("user_id = ?", userID).
		Order("recorded_at DESC").
		First(&latest).Error
	if err != nil && !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, err
	}
	out.CurrentWeight = latest.Weight

	return out, nil
}
