package repository

import (
	"github.com/Lucifer-0905/ignitiaLearn/internal/model"
	"gorm.io/gorm"
)

type AssessmentRepository struct {
	DB *gorm.DB
}

func NewAssessmentRepository(db *gorm.DB) *AssessmentRepository {
	return &AssessmentRepository{DB: db}
}

// ListQuestions returns the question bank in presentation order.
func (r *AssessmentRepository) ListQuestions() ([]*model.AssessmentQuestion, error) {
	var questions []*model.AssessmentQuestion
	err := r.DB.Order("`order`").Find(&questions).Error
	return questions, err
}

func (r *AssessmentRepository) CreateQuestion(q *model.AssessmentQuestion) error {
	return r.DB.Create(q).Error
}

func (r *AssessmentRepository) SaveResult(result *model.AssessmentResult) error {
	return r.DB.Create(result).Error
}

func (r *AssessmentRepository) ListResultsByUser(userID uint) ([]*model.AssessmentResult, error) {
	var results []*model.AssessmentResult
	err := r.DB.Where("user_id = ?", userID).
		Order("completed_at DESC").Find(&results).Error
	return results, err
}

func (r *AssessmentRepository) LatestResult(userID uint) (*model.AssessmentResult, error) {
	var result model.AssessmentResult
	err := r.DB.Where("user_id = ?", userID).
		Order("completed_at DESC").First(&result).Error
	if err != nil {
		return nil, err
	}
	return &result, nil
}
