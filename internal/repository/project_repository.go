package repository

import (
	"github.com/Lucifer-0905/ignitiaLearn/internal/model"
	"gorm.io/gorm"
)

type ProjectRepository struct {
	DB *gorm.DB
}

func NewProjectRepository(db *gorm.DB) *ProjectRepository {
	return &ProjectRepository{DB: db}
}

func (r *ProjectRepository) List() ([]*model.Project, error) {
	var projects []*model.Project
	err := r.DB.Order("created_at").Find(&projects).Error
	return projects, err
}

func (r *ProjectRepository) ListByCourse(courseID string) ([]*model.Project, error) {
	var projects []*model.Project
	err := r.DB.Where("course_id = ?", courseID).
		Order("created_at").Find(&projects).Error
	return projects, err
}

func (r *ProjectRepository) FindByID(id string) (*model.Project, error) {
	var project model.Project
	err := r.DB.Where("id = ?", id).First(&project).Error
	if err != nil {
		return nil, err
	}
	return &project, nil
}

func (r *ProjectRepository) Create(project *model.Project) error {
	return r.DB.Create(project).Error
}
