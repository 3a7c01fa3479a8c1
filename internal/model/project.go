package model

// swagger:model Project
type Project struct {
	UUIDBase
	Title            string     `gorm:"size:255;not null" json:"title"`
	Description      string     `gorm:"type:text" json:"description"`
	Difficulty       Level      `gorm:"size:20;index" json:"difficulty"`
	EstimatedTime    string     `gorm:"size:50" json:"estimatedTime"`
	Skills           StringList `gorm:"type:json" json:"skills"`
	Requirements     StringList `gorm:"type:json" json:"requirements"`
	LearningOutcomes StringList `gorm:"type:json" json:"learningOutcomes"`
	CourseID         string     `gorm:"size:36" json:"courseId,omitempty"`
}

func (Project) TableName() string {
	return "projects"
}
