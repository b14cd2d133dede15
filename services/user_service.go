package services

import (
	"fmt"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/milliybrend/reklama-bot/models"
)

// UserService maintains the registry of everyone who has started the bot.
type UserService struct {
	db *gorm.DB
}

// NewUserService creates a UserService backed by the given database.
func NewUserService(db *gorm.DB) *UserService {
	return &UserService{db: db}
}

// Save upserts a user row; /start calls this on every interaction, so the
// stored username and full name track the latest profile.
func (s *UserService) Save(userID int64, username, fullName string) error {
	user := models.User{UserID: userID, Username: username, FullName: fullName}
	err := s.db.Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "user_id"}},
		DoUpdates: clause.AssignmentColumns([]string{"username", "full_name"}),
	}).Create(&user).Error
	if err != nil {
		return fmt.Errorf("failed to save user %d: %w", userID, err)
	}
	return nil
}

// AllUserIDs returns every known user identity; this is the broadcast
// recipient list.
func (s *UserService) AllUserIDs() ([]int64, error) {
	var ids []int64
	err := s.db.Model(&models.User{}).Pluck("user_id", &ids).Error
	if err != nil {
		return nil, fmt.Errorf("failed to list user ids: %w", err)
	}
	return ids, nil
}

// Count returns the number of registered users.
func (s *UserService) Count() (int64, error) {
	var count int64
	if err := s.db.Model(&models.User{}).Count(&count).Error; err != nil {
		return 0, fmt.Errorf("failed to count users: %w", err)
	}
	return count, nil
}
