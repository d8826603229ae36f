package services

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDashboardSummary(t *testing.T) {
	db := newTestDB(t)
	user := seedUser(t, db)
	workouts := NewWorkoutService(db)
	weights := NewWeightService(db)
	svc := NewDashboardService(db)

	now := time.Date(2024, 6, 15, 12, 0, 0, 0, time.UTC)
	seedExercise(t, workouts, user.ID, "Bench Press", strPtr("Push"), nil, nil, now)             // 3 sets, 30 reps
	seedExercise(t, workouts, user.ID, "Squat", strPtr("Compound"), nil, nil, now.AddDate(0, 0, -2)) // 3 sets, 30 reps

	_, err := weights.CreateWeight(user.ID, 74, now.AddDate(0, 0, -5))
	require.NoError(t, err)
	_, err = weights.CreateWeight(user.ID, 75.5, now.AddDate(0, 0, -1))
	require.NoError(t, err)

	summary, err := svc.Summary(user.ID, now)
	require.NoError(t, err)

	assert.Equal(t, 2, summary.Exercises)
	assert.Equal(t, 6, summary.Sets)
	assert.Equal(t, int64(60), summary.Reps)
	assert.Equal(t, 75.5, summary.CurrentWeight)

	require.Len(t, summary.Last15Days, 15)
	assert.True(t, summary.Last15Days[14], "today has a workout")
	assert.True(t, summary.Last15Days[12], "two days ago has a workout")
	assert.False(t, summary.Last15Days[13], "yesterday has none")
}

func TestDashboardSummaryNoData(t *testing.T) {
	db := newTestDB(t)
	user := seedUser(t, db)
	svc := NewDashboardService(db)

	summary, err := svc.Summary(user.ID, time.Now().UTC())
	require.NoError(t, err)
	assert.Zero(t, summary.Exercises)
	assert.Zero(t, summary.Sets)
	assert.Zero(t, summary.Reps)
	assert.Zero(t, summary.CurrentWeight)
}

func TestDashboardSummaryUnknownUser(t *testing.T) {
	db := newTestDB(t)
	svc := NewDashboardService(db)

	_, err := svc.Summary("user_missing", time.Now().UTC())
	assert.ErrorIs(t, err, ErrUserNotFound)
}
