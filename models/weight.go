package models

import "time"

type Weight struct {
	ID         uint      `gorm:"primaryKey" json:"id"`
	UserID     string    `gorm:"index;not null" json:"userId"`
	Weight     float64   `gorm:"not null" json:"weight"`
	RecordedAt time.Time `gorm:"index;not null" json:"recordedAt"`
	CreatedAt  time.Time `json:"createdAt"`
}
