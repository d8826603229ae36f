package services

import (
	"path/filepath"
	"testing"

	"github.com/itsUtkarshOjha/fitlogger/models"

	"github.com/glebarez/sqlite"
	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	db, err := gorm.Open(sqlite.Open(filepath.Join(t.TempDir(), "fitlogger.db")), &gorm.Config{})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(&models.User{}, &models.Weight{}, &models.Exercise{}))
	return db
}

func seedUser(t *testing.T, db *gorm.DB) models.User {
	t.Helper()
	user := models.User{
		ID:    "user_" + uuid.NewString(),
		Name:  "Test User",
		Email: uuid.NewString() + "@example.com",
	}
	require.NoError(t, db.Create(&user).Error)
	return user
}

func strPtr(s string) *string { return &s }
