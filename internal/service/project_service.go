package service

import (
	"errors"

	"github.com/Lucifer-0905/ignitiaLearn/internal/model"
	"github.com/Lucifer-0905/ignitiaLearn/internal/repository"
	"github.com/Lucifer-0905/ignitiaLearn/internal/util"
	"gorm.io/gorm"
)

type ProjectService struct {
	projectRepo *repository.ProjectRepository
}

func NewProjectService(projectRepo *repository.ProjectRepository) *ProjectService {
	return &ProjectService{projectRepo: projectRepo}
}

func (s *ProjectService) ListProjects(difficulty string) ([]*model.Project, error) {
	projects, err := s.projectRepo.List()
	if err != nil {
		return nil, err
	}

	lvl := model.Level(difficulty)
	if !lvl.Valid() {
		return projects, nil
	}

	filtered := make([]*model.Project, 0, len(projects))
	for _, p := range projects {
		if p.Difficulty == lvl {
			filtered = append(filtered, p)
		}
	}
	return filtered, nil
}

func (s *ProjectService) GetProject(id string) (*model.Project, error) {
	project, err := s.projectRepo.FindByID(id)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, util.ErrProjectNotFound
	}
	if err != nil {
		return nil, err
	}
	return project, nil
}
