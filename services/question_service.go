package services

import (
	"errors"
	"fmt"

	"gorm.io/gorm"

	"github.com/milliybrend/reklama-bot/models"
)

// QuestionService is the data-access layer for user questions.
type QuestionService struct {
	db *gorm.DB
}

// NewQuestionService creates a QuestionService backed by the given database.
func NewQuestionService(db *gorm.DB) *QuestionService {
	return &QuestionService{db: db}
}

// Save records a submitted question and returns the stored row, whose id is
// embedded in the admin reply button.
func (s *QuestionService) Save(userID int64, username, fullName, question string) (*models.UserQuestion, error) {
	q := models.UserQuestion{
		UserID:   userID,
		Username: username,
		FullName: fullName,
		Question: question,
	}
	if err := s.db.Create(&q).Error; err != nil {
		return nil, fmt.Errorf("failed to save question: %w", err)
	}
	return &q, nil
}

// GetByID returns a question by row id, nil when it does not exist.
func (s *QuestionService) GetByID(id uint) (*models.UserQuestion, error) {
	var q models.UserQuestion
	err := s.db.First(&q, id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to load question %d: %w", id, err)
	}
	return &q, nil
}

// MarkReplied flags a question as answered; false means no such row.
func (s *QuestionService) MarkReplied(id uint) (bool, error) {
	result := s.db.Model(&models.UserQuestion{}).Where("id = ?", id).Update("replied", true)
	if result.Error != nil {
		return false, fmt.Errorf("failed to mark question %d replied: %w", id, result.Error)
	}
	return result.RowsAffected > 0, nil
}
