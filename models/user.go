package models

import (
	"time"

	"gorm.io/datatypes"
)

// User rows are created by the identity provider's webhook, never by the
// API itself. ID is the provider-issued id (e.g. "user_2abc...").
type User struct {
	ID         string         `gorm:"primaryKey" json:"id"`
	Name       string         `json:"name"`
	Email      string         `gorm:"uniqueIndex;not null" json:"email"`
	Attributes datatypes.JSON `json:"attributes,omitempty"` // raw provider payload
	CreatedAt  time.Time      `json:"createdAt"`
	UpdatedAt  time.Time      `json:"updatedAt"`
}
