package model

// DayActivity is one entry of the weekly activity series.
type DayActivity struct {
	Day     string `json:"day"`
	Minutes int    `json:"minutes"`
}

// Analytics is a read-only snapshot assembled per fetch. Category
// distribution values are percentages and are rendered verbatim by
// consumers even when rounding keeps the sum off 100.
// swagger:model Analytics
type Analytics struct {
	TotalCoursesStarted   int            `json:"totalCoursesStarted"`
	TotalCoursesCompleted int            `json:"totalCoursesCompleted"`
	TotalTimeSpentMinutes int            `json:"totalTimeSpentMinutes"`
	AverageProgress       int            `json:"averageProgress"`
	SkillsAcquired        []string       `json:"skillsAcquired"`
	WeeklyActivity        []DayActivity  `json:"weeklyActivity"`
	CategoryDistribution  map[string]int `json:"categoryDistribution"`
	StreakDays            int            `json:"streakDays"`
}
