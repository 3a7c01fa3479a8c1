package repository

import (
	"time"

	"github.com/Lucifer-0905/ignitiaLearn/internal/model"
	"gorm.io/gorm"
)

// ProgressTotals carries the per-user aggregates behind the analytics
// snapshot.
type ProgressTotals struct {
	Started          int64
	Completed        int64
	TimeSpentMinutes int64
	AverageProgress  float64
}

type AnalyticsRepository struct {
	DB *gorm.DB
}

func NewAnalyticsRepository(db *gorm.DB) *AnalyticsRepository {
	return &AnalyticsRepository{DB: db}
}

func (r *AnalyticsRepository) ProgressTotals(userID uint) (*ProgressTotals, error) {
	totals := &ProgressTotals{}

	err := r.DB.Model(&model.UserProgress{}).
		Where("user_id = ?", userID).Count(&totals.Started).Error
	if err != nil {
		return nil, err
	}

	err = r.DB.Model(&model.UserProgress{}).
		Where("user_id = ? AND progress_percent >= 100", userID).
		Count(&totals.Completed).Error
	if err != nil {
		return nil, err
	}

	if totals.Started == 0 {
		return totals, nil
	}

	row := struct {
		TimeSpent int64
		AvgProg   float64
	}{}
	err = r.DB.Model(&model.UserProgress{}).
		Select("COALESCE(SUM(time_spent_minutes),0) AS time_spent, COALESCE(AVG(progress_percent),0) AS avg_prog").
		Where("user_id = ?", userID).Scan(&row).Error
	if err != nil {
		return nil, err
	}

	totals.TimeSpentMinutes = row.TimeSpent
	totals.AverageProgress = row.AvgProg
	return totals, nil
}

// CompletedCourseIDs lists the courses the user has finished. Skill and
// category rollups derive from these.
func (r *AnalyticsRepository) CompletedCourseIDs(userID uint) ([]string, error) {
	var ids []string
	err := r.DB.Model(&model.UserProgress{}).
		Where("user_id = ? AND progress_percent >= 100", userID).
		Pluck("course_id", &ids).Error
	return ids, err
}

func (r *AnalyticsRepository) StartedCourseIDs(userID uint) ([]string, error) {
	var ids []string
	err := r.DB.Model(&model.UserProgress{}).
		Where("user_id = ?", userID).
		Pluck("course_id", &ids).Error
	return ids, err
}

func (r *AnalyticsRepository) ActivityBetween(userID uint, from, to time.Time) ([]*model.ActivityLog, error) {
	var entries []*model.ActivityLog
	err := r.DB.Where("user_id = ? AND day >= ? AND day < ?", userID, from, to).
		Order("day").Find(&entries).Error
	return entries, err
}

// ActiveDays lists distinct activity dates, most recent first, for
// streak computation.
func (r *AnalyticsRepository) ActiveDays(userID uint) ([]time.Time, error) {
	var days []time.Time
	err := r.DB.Model(&model.ActivityLog{}).
		Where("user_id = ? AND minutes > 0", userID).
		Order("day DESC").
		Pluck("day", &days).Error
	return days, err
}
