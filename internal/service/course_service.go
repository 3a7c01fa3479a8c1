package service

import (
	"errors"

	"github.com/Lucifer-0905/ignitiaLearn/internal/model"
	"github.com/Lucifer-0905/ignitiaLearn/internal/repository"
	"github.com/Lucifer-0905/ignitiaLearn/internal/util"
	"gorm.io/gorm"
)

// CourseQuery carries the catalog listing filters as received from
// the API. Invalid enum values are ignored rather than rejected so an
// unknown filter simply matches nothing narrower.
type CourseQuery struct {
	Category   string `form:"category"`
	Difficulty string `form:"difficulty"`
	Provider   string `form:"provider"`
	Search     string `form:"search"`
}

type CourseService struct {
	courseRepo *repository.CourseRepository
}

func NewCourseService(courseRepo *repository.CourseRepository) *CourseService {
	return &CourseService{courseRepo: courseRepo}
}

func (s *CourseService) ListCourses(query CourseQuery) ([]*model.Course, error) {
	filter := repository.CourseFilter{Search: query.Search}

	if cat := model.Category(query.Category); cat.Valid() {
		filter.Category = cat
	}
	if lvl := model.Level(query.Difficulty); lvl.Valid() {
		filter.Difficulty = lvl
	}
	if prov := model.CourseProvider(query.Provider); prov.Valid() {
		filter.Provider = prov
	}

	return s.courseRepo.List(filter)
}

func (s *CourseService) GetCourse(id string) (*model.Course, error) {
	course, err := s.courseRepo.FindByID(id)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, util.ErrCourseNotFound
	}
	if err != nil {
		return nil, err
	}
	return course, nil
}

func (s *CourseService) SetThumbnail(id, url string) (*model.Course, error) {
	course, err := s.GetCourse(id)
	if err != nil {
		return nil, err
	}
	course.ThumbnailURL = url
	if err := s.courseRepo.Update(course); err != nil {
		return nil, err
	}
	return course, nil
}
