package repository

import (
	"github.com/Lucifer-0905/ignitiaLearn/internal/model"
	"gorm.io/gorm"
)

type LearningPathRepository struct {
	DB *gorm.DB
}

func NewLearningPathRepository(db *gorm.DB) *LearningPathRepository {
	return &LearningPathRepository{DB: db}
}

func (r *LearningPathRepository) List() ([]*model.LearningPath, error) {
	var paths []*model.LearningPath
	err := r.DB.Order("created_at").Find(&paths).Error
	return paths, err
}

func (r *LearningPathRepository) FindByID(id string) (*model.LearningPath, error) {
	var path model.LearningPath
	err := r.DB.Where("id = ?", id).First(&path).Error
	if err != nil {
		return nil, err
	}
	return &path, nil
}

// First returns the oldest stored path. It backs the deterministic
// recommendation fallback.
func (r *LearningPathRepository) First() (*model.LearningPath, error) {
	var path model.LearningPath
	err := r.DB.Order("created_at").First(&path).Error
	if err != nil {
		return nil, err
	}
	return &path, nil
}

func (r *LearningPathRepository) Create(path *model.LearningPath) error {
	return r.DB.Create(path).Error
}

func (r *LearningPathRepository) Update(path *model.LearningPath) error {
	return r.DB.Save(path).Error
}

func (r *LearningPathRepository) Delete(id string) error {
	return r.DB.Where("id = ?", id).Delete(&model.LearningPath{}).Error
}
