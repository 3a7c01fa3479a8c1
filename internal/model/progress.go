package model

import "time"

// swagger:model UserProgress
type UserProgress struct {
	UUIDBase
	UserID           uint      `gorm:"index;default:0" json:"-"`
	CourseID         string    `gorm:"size:36;index" json:"courseId"`
	CompletedModules IntList   `gorm:"type:json" json:"completedModules"`
	ProgressPercent  int       `gorm:"default:0" json:"progressPercent"`
	StartedAt        time.Time `json:"startedAt"`
	LastAccessedAt   time.Time `json:"lastAccessedAt"`
	TimeSpentMinutes int       `gorm:"default:0" json:"timeSpentMinutes"`
}

func (UserProgress) TableName() string {
	return "user_progress"
}

// ActivityLog records minutes of learning activity per user per day.
// It feeds the weekly-activity and streak analytics.
type ActivityLog struct {
	BaseModel
	UserID  uint      `gorm:"index;default:0" json:"userId"`
	Day     time.Time `gorm:"index;type:date" json:"day"`
	Minutes int       `gorm:"default:0" json:"minutes"`
}

func (ActivityLog) TableName() string {
	return "activity_logs"
}
