package model

// swagger:model LearningPath
type LearningPath struct {
	UUIDBase
	Title             string     `gorm:"size:255;not null" json:"title"`
	Description       string     `gorm:"type:text" json:"description"`
	Category          Category   `gorm:"size:30;index" json:"category"`
	Difficulty        Level      `gorm:"size:20" json:"difficulty"`
	EstimatedDuration string     `gorm:"size:50" json:"estimatedDuration"`
	Courses           StringList `gorm:"type:json" json:"courses"`
	Skills            StringList `gorm:"type:json" json:"skills"`
}

func (LearningPath) TableName() string {
	return "learning_paths"
}
