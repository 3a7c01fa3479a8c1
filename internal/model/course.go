package model

import (
	"database/sql/driver"
	"encoding/json"
	"errors"
)

// SyllabusWeek is one week of a course syllabus.
type SyllabusWeek struct {
	Week     int      `json:"week"`
	Title    string   `json:"title"`
	Topics   []string `json:"topics"`
	Duration string   `json:"duration"`
}

// SyllabusList stores a course syllabus as a JSON column.
type SyllabusList []SyllabusWeek

func (l SyllabusList) Value() (driver.Value, error) {
	if l == nil {
		l = SyllabusList{}
	}
	return json.Marshal(l)
}

func (l *SyllabusList) Scan(value interface{}) error {
	if value == nil {
		*l = SyllabusList{}
		return nil
	}
	switch v := value.(type) {
	case []byte:
		return json.Unmarshal(v, l)
	case string:
		return json.Unmarshal([]byte(v), l)
	}
	return errors.New("unsupported type for SyllabusList")
}

// swagger:model Course
type Course struct {
	UUIDBase
	Title        string         `gorm:"size:255;not null" json:"title"`
	Description  string         `gorm:"type:text" json:"description"`
	Provider     CourseProvider `gorm:"size:20;index" json:"provider"`
	Category     Category       `gorm:"size:30;index" json:"category"`
	Difficulty   Level          `gorm:"size:20;index" json:"difficulty"`
	Duration     string         `gorm:"size:50" json:"duration"`
	Rating       float64        `gorm:"default:0" json:"rating"`
	ReviewCount  int            `gorm:"default:0" json:"reviewCount"`
	Instructor   string         `gorm:"size:100" json:"instructor"`
	ThumbnailURL string         `gorm:"size:512" json:"thumbnailUrl"`
	Syllabus     SyllabusList   `gorm:"type:json" json:"syllabus"`
	Skills       StringList     `gorm:"type:json" json:"skills"`
	Price        *float64       `json:"price,omitempty"`
}

func (Course) TableName() string {
	return "courses"
}
