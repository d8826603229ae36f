package services

import (
	"errors"
	"time"

	"github.com/itsUtkarshOjha/fitlogger/models"

	"gorm.io/gorm"
)

type WeightService struct{ db *gorm.DB }

func NewWeightService(db *gorm.DB) *WeightService { return &WeightService{db: db} }

// ListWeights returns the user's most recent weight records, newest first.
// limit <= 0 means no limit.
func (s *WeightService) ListWeights(userID string, limit int) ([]models.Weight, error) {
	if err := userExists(s.db, userID); err != nil {
		return nil, err
	}

	weights := []models.Weight{}
	q := s.db.
		Where("user_id = ?", userID).
		Order("recorded_at DESC")
	if limit > 0 {
		q = q.Limit(limit)
	}
	if err := q.Find(&weights).Error; err != nil {
		return nil, err
	}
	return weights, nil
}

func (s *WeightService) CreateWeight(userID string, value float64, recordedAt time.Time) (*models.Weight, error) {
	weight := models.Weight{
		UserID:     userID,
		Weight:     value,
		RecordedAt: recordedAt,
	}
	if err := s.db.Create(&weight).Error; err != nil {
		return nil, err
	}
	return &weight, nil
}

func (s *WeightService) UpdateWeight(weightID uint, value float64) (*models.Weight, error) {
	var weight models.Weight
	if err := s.db.First(&weight, weightID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrRecordNotFound
		}
		return nil, err
	}

	weight.Weight = value
	if err := s.db.Save(&weight).Error; err != nil {
		return nil, err
	}
	return &weight, nil
}

func (s *WeightService) DeleteWeight(weightID uint) error {
	res := s.db.Delete(&models.Weight{}, weightID)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return ErrRecordNotFound
	}
	return nil
}
