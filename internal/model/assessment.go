package model

import (
	"encoding/json"
	"time"
)

// AssessmentQuestion is immutable once issued to a quiz session.
// swagger:model AssessmentQuestion
type AssessmentQuestion struct {
	UUIDBase
	Question      string     `gorm:"type:text;not null" json:"question"`
	Options       StringList `gorm:"type:json" json:"options"`
	CorrectAnswer int        `gorm:"not null" json:"correctAnswer"`
	Category      Category   `gorm:"size:30;index" json:"category"`
	Difficulty    Level      `gorm:"size:20" json:"difficulty"`
	Order         int        `gorm:"default:0" json:"order"`
}

func (AssessmentQuestion) TableName() string {
	return "assessment_questions"
}

// Answer captures one selection for one question. It is created once,
// in question order, and never mutated afterwards.
type Answer struct {
	QuestionID     string `json:"questionId"`
	SelectedAnswer int    `json:"selectedAnswer"`
	IsCorrect      bool   `json:"isCorrect"`
}

// AssessmentResult is the persisted form of a scored session.
// swagger:model AssessmentResult
type AssessmentResult struct {
	UUIDBase
	UserID          uint            `gorm:"index;default:0" json:"-"`
	Answers         json.RawMessage `gorm:"type:json" json:"answers"`
	CategoryScores  json.RawMessage `gorm:"type:json" json:"categoryScores"`
	OverallScore    int             `gorm:"default:0" json:"overallScore"`
	RecommendedPath string          `gorm:"size:36" json:"recommendedPath,omitempty"`
	CompletedAt     time.Time       `json:"completedAt"`
}

func (AssessmentResult) TableName() string {
	return "assessment_results"
}
