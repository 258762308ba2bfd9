package repository

import (
	"space_academy_backend/internal/model"

	"gorm.io/gorm"
)

type QuestionRepository struct {
	DB *gorm.DB
}

func NewQuestionRepository(db *gorm.DB) *QuestionRepository {
	return &QuestionRepository{DB: db}
}

// RandomQuestions draws n distinct questions from the bank.
func (r *QuestionRepository) RandomQuestions(n int) ([]model.QuizQuestion, error) {
	var questions []model.QuizQuestion
	err := r.DB.Order("RAND()").Limit(n).Find(&questions).Error
	return questions, err
}
