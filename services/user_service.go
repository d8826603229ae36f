package services

import (
	"errors"

	"github.com/itsUtkarshOjha/fitlogger/models"

	"gorm.io/datatypes"
	"gorm.io/gorm"
)

var (
	ErrUserNotFound   = errors.New("no user found")
	ErrRecordNotFound = errors.New("no record found")
)

// userExists resolves a provider user id to ErrUserNotFound / nil.
func userExists(db *gorm.DB, userID string) error {
	var user models.User
	if err := db.First(&user, "id = ?", userID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrUserNotFound
		}
		return err
	}
	return nil
}

type UserService struct{ db *gorm.DB }

func NewUserService(db *gorm.DB) *UserService { return &UserService{db: db} }

// UpsertFromProvider stores the user pushed by the identity provider.
// Replays of the same event (same id) update the row instead of failing.
func (s *UserService) UpsertFromProvider(id, name, email string, attributes []byte) (*models.User, error) {
	user := models.User{ID: id}
	err := s.db.
		Where("id = ?", id).
		Assign(models.User{
			Name:       name,
			Email:      email,
			Attributes: datatypes.JSON(attributes),
		}).
		FirstOrCreate(&user).Error
	if err != nil {
		return nil, err
	}
	return &user, nil
}
