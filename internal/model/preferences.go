package model

// swagger:model UserPreferences
type UserPreferences struct {
	UUIDBase
	UserID               uint       `gorm:"uniqueIndex;default:0" json:"-"`
	LearningGoals        StringList `gorm:"type:json" json:"learningGoals"`
	PreferredCategories  StringList `gorm:"type:json" json:"preferredCategories"`
	WeeklyTimeCommitment int        `gorm:"default:0" json:"weeklyTimeCommitment"`
	SkillLevel           Level      `gorm:"size:20" json:"skillLevel"`
}

func (UserPreferences) TableName() string {
	return "user_preferences"
}
