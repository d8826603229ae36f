package services

import (
	"testing"

	"github.com/itsUtkarshOjha/fitlogger/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestUpsertFromProviderIsReplaySafe(t *testing.T) {
	db := newTestDB(t)
	svc := NewUserService(db)

	payload := []byte(`{"id":"user_abc","first_name":"Ada","last_name":"Lovelace"}`)

	first, err := svc.UpsertFromProvider("user_abc", "Ada Lovelace", "ada@example.com", payload)
	require.NoError(t, err)
	assert.Equal(t, "user_abc", first.ID)

	// same event delivered again with a corrected name
	second, err := svc.UpsertFromProvider("user_abc", "Ada King", "ada@example.com", payload)
	require.NoError(t, err)
	assert.Equal(t, "Ada King", second.Name)

	var count int64
	require.NoError(t, db.Model(&models.User{}).Count(&count).Error)
	assert.EqualValues(t, 1, count)
}
