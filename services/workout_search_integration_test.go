//go:build integration

package services

import (
	"context"
	"testing"
	"time"

	"github.com/itsUtkarshOjha/fitlogger/models"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
	postgrescontainer "github.com/testcontainers/testcontainers-go/modules/postgres"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

// The fuzzy name search runs pg_trgm's similarity(), which only exists on
// Postgres, so this path gets a real database.
func TestWorkoutNameSearchPostgres(t *testing.T) {
	ctx := context.Background()

	pg, err := postgrescontainer.Run(ctx, "postgres:16-alpine",
		postgrescontainer.WithDatabase("fitlogger"),
		postgrescontainer.WithUsername("fitlogger"),
		postgrescontainer.WithPassword("fitlogger"),
		postgrescontainer.BasicWaitStrategies(),
	)
	require.NoError(t, err)
	t.Cleanup(func() { _ = pg.Terminate(ctx) })

	dsn, err := pg.ConnectionString(ctx, "sslmode=disable")
	require.NoError(t, err)

	db, err := gorm.Open(postgres.Open(dsn), &gorm.Config{})
	require.NoError(t, err)
	require.NoError(t, db.Exec("CREATE EXTENSION IF NOT EXISTS pg_trgm").Error)
	require.NoError(t, db.AutoMigrate(&models.User{}, &models.Weight{}, &models.Exercise{}))

	user := models.User{
		ID:    "user_" + uuid.NewString(),
		Email: uuid.NewString() + "@example.com",
	}
	require.NoError(t, db.Create(&user).Error)

	// more near-matches than the result cap
	names := []string{
		"Bench Press", "Incline Bench Press", "Decline Bench Press",
		"Close Grip Bench", "Bench Dips", "Bench Pull", "Paused Bench",
	}
	now := time.Now().UTC()
	for _, n := range names {
		ex := models.Exercise{UserID: user.ID, Exercise: n, RecordedAt: now}
		require.NoError(t, db.Create(&ex).Error)
	}

	svc := NewWorkoutService(db)
	results, err := svc.ListWorkouts(user.ID, "bench")
	require.NoError(t, err)

	require.NotEmpty(t, results)
	require.LessOrEqual(t, len(results), 5)
	for _, ex := range results {
		var sim float64
		require.NoError(t, db.Raw("SELECT similarity(?, ?)", ex.Exercise, "bench").Scan(&sim).Error)
		require.Greater(t, sim, 0.4, "result %q below similarity threshold", ex.Exercise)
	}
}
