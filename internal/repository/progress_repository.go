package repository

import (
	"time"

	"github.com/Lucifer-0905/ignitiaLearn/internal/model"
	"gorm.io/gorm"
)

type ProgressRepository struct {
	DB *gorm.DB
}

func NewProgressRepository(db *gorm.DB) *ProgressRepository {
	return &ProgressRepository{DB: db}
}

func (r *ProgressRepository) ListByUser(userID uint) ([]*model.UserProgress, error) {
	var records []*model.UserProgress
	err := r.DB.Where("user_id = ?", userID).
		Order("last_accessed_at DESC").Find(&records).Error
	return records, err
}

func (r *ProgressRepository) FindByUserAndCourse(userID uint, courseID string) (*model.UserProgress, error) {
	var record model.UserProgress
	err := r.DB.Where("user_id = ? AND course_id = ?", userID, courseID).
		First(&record).Error
	if err != nil {
		return nil, err
	}
	return &record, nil
}

func (r *ProgressRepository) Create(record *model.UserProgress) error {
	return r.DB.Create(record).Error
}

func (r *ProgressRepository) Update(record *model.UserProgress) error {
	return r.DB.Save(record).Error
}

// RecordActivity adds minutes to the user's log for the given day,
// creating the row on first activity.
func (r *ProgressRepository) RecordActivity(userID uint, day time.Time, minutes int) error {
	day = day.Truncate(24 * time.Hour)

	var entry model.ActivityLog
	err := r.DB.Where("user_id = ? AND day = ?", userID, day).First(&entry).Error
	if err == gorm.ErrRecordNotFound {
		entry = model.ActivityLog{UserID: userID, Day: day, Minutes: minutes}
		return r.DB.Create(&entry).Error
	}
	if err != nil {
		return err
	}

	entry.Minutes += minutes
	return r.DB.Save(&entry).Error
}

func (r *ProgressRepository) ActivitySince(userID uint, since time.Time) ([]*model.ActivityLog, error) {
	var entries []*model.ActivityLog
	err := r.DB.Where("user_id = ? AND day >= ?", userID, since).
		Order("day").Find(&entries).Error
	return entries, err
}
