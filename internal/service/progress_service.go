package service

import (
	"context"
	"errors"
	"time"

	"github.com/Lucifer-0905/ignitiaLearn/internal/model"
	"github.com/Lucifer-0905/ignitiaLearn/internal/repository"
	"github.com/Lucifer-0905/ignitiaLearn/internal/util"
	"gorm.io/gorm"
)

// ProgressUpdate is a partial progress write. Nil fields are left
// unchanged.
type ProgressUpdate struct {
	CompletedModules *[]int `json:"completedModules"`
	ProgressPercent  *int   `json:"progressPercent"`
	MinutesSpent     *int   `json:"minutesSpent"`
}

type ProgressService struct {
	progressRepo *repository.ProgressRepository
	courseRepo   *repository.CourseRepository
	analytics    *AnalyticsService
}

func NewProgressService(progressRepo *repository.ProgressRepository, courseRepo *repository.CourseRepository, analytics *AnalyticsService) *ProgressService {
	return &ProgressService{
		progressRepo: progressRepo,
		courseRepo:   courseRepo,
		analytics:    analytics,
	}
}

func (s *ProgressService) ListProgress(userID uint) ([]*model.UserProgress, error) {
	return s.progressRepo.ListByUser(userID)
}

func (s *ProgressService) GetCourseProgress(userID uint, courseID string) (*model.UserProgress, error) {
	record, err := s.progressRepo.FindByUserAndCourse(userID, courseID)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		// No record yet reads as zero progress.
		return &model.UserProgress{
			UserID:           userID,
			CourseID:         courseID,
			CompletedModules: model.IntList{},
		}, nil
	}
	return record, err
}

// UpdateProgress upserts the user's progress on a course, records the
// activity minutes for today and invalidates the analytics cache.
func (s *ProgressService) UpdateProgress(ctx context.Context, userID uint, courseID string, update ProgressUpdate) (*model.UserProgress, error) {
	if _, err := s.courseRepo.FindByID(courseID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, util.ErrCourseNotFound
		}
		return nil, err
	}

	now := time.Now()
	record, err := s.progressRepo.FindByUserAndCourse(userID, courseID)
	created := false
	if errors.Is(err, gorm.ErrRecordNotFound) {
		record = &model.UserProgress{
			UserID:           userID,
			CourseID:         courseID,
			CompletedModules: model.IntList{},
			StartedAt:        now,
		}
		created = true
	} else if err != nil {
		return nil, err
	}

	if update.CompletedModules != nil {
		record.CompletedModules = model.IntList(*update.CompletedModules)
	}
	if update.ProgressPercent != nil {
		p := *update.ProgressPercent
		if p < 0 {
			p = 0
		}
		if p > 100 {
			p = 100
		}
		record.ProgressPercent = p
	}
	if update.MinutesSpent != nil && *update.MinutesSpent > 0 {
		record.TimeSpentMinutes += *update.MinutesSpent
		if err := s.progressRepo.RecordActivity(userID, now, *update.MinutesSpent); err != nil {
			return nil, err
		}
	}
	record.LastAccessedAt = now

	if created {
		err = s.progressRepo.Create(record)
	} else {
		err = s.progressRepo.Update(record)
	}
	if err != nil {
		return nil, err
	}

	if s.analytics != nil {
		s.analytics.Invalidate(ctx, userID)
	}
	return record, nil
}
