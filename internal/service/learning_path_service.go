package service

import (
	"errors"

	"github.com/Lucifer-0905/ignitiaLearn/internal/model"
	"github.com/Lucifer-0905/ignitiaLearn/internal/repository"
	"github.com/Lucifer-0905/ignitiaLearn/internal/util"
	"gorm.io/gorm"
)

// PathDetail is a learning path with its course records resolved.
type PathDetail struct {
	model.LearningPath
	CourseDetails []*model.Course `json:"courseDetails"`
}

type LearningPathService struct {
	pathRepo   *repository.LearningPathRepository
	courseRepo *repository.CourseRepository
}

func NewLearningPathService(pathRepo *repository.LearningPathRepository, courseRepo *repository.CourseRepository) *LearningPathService {
	return &LearningPathService{pathRepo: pathRepo, courseRepo: courseRepo}
}

func (s *LearningPathService) ListPaths() ([]*model.LearningPath, error) {
	return s.pathRepo.List()
}

func (s *LearningPathService) GetPath(id string) (*PathDetail, error) {
	path, err := s.pathRepo.FindByID(id)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, util.ErrPathNotFound
	}
	if err != nil {
		return nil, err
	}

	courses, err := s.courseRepo.FindByIDs([]string(path.Courses))
	if err != nil {
		return nil, err
	}

	return &PathDetail{LearningPath: *path, CourseDetails: courses}, nil
}
