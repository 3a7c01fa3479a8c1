package service

import (
	"context"
	"encoding/json"
	"fmt"
	"math"
	"time"

	"github.com/Lucifer-0905/ignitiaLearn/internal/model"
	"github.com/Lucifer-0905/ignitiaLearn/internal/repository"
	"github.com/Lucifer-0905/ignitiaLearn/pkg/logger"
	"github.com/go-redis/redis/v8"
	"go.uber.org/zap"
)

const analyticsCacheTTL = time.Minute

// weekDayNames is the fixed Mon..Sun presentation order of the weekly
// activity series.
var weekDayNames = [7]string{"Mon", "Tue", "Wed", "Thu", "Fri", "Sat", "Sun"}

// AnalyticsService assembles read-only learning analytics snapshots.
type AnalyticsService struct {
	analyticsRepo *repository.AnalyticsRepository
	courseRepo    *repository.CourseRepository
	cache         *redis.Client
}

func NewAnalyticsService(analyticsRepo *repository.AnalyticsRepository, courseRepo *repository.CourseRepository, cache *redis.Client) *AnalyticsService {
	return &AnalyticsService{
		analyticsRepo: analyticsRepo,
		courseRepo:    courseRepo,
		cache:         cache,
	}
}

func analyticsCacheKey(userID uint) string {
	return fmt.Sprintf("analytics:%d", userID)
}

// GetAnalytics returns the user's analytics snapshot. A user with no
// recorded activity receives a zero-valued snapshot, not an error.
func (s *AnalyticsService) GetAnalytics(ctx context.Context, userID uint) (*model.Analytics, error) {
	if s.cache != nil {
		if cached, err := s.cache.Get(ctx, analyticsCacheKey(userID)).Result(); err == nil {
			var snapshot model.Analytics
			if err := json.Unmarshal([]byte(cached), &snapshot); err == nil {
				return &snapshot, nil
			}
		}
	}

	snapshot, err := s.assemble(userID)
	if err != nil {
		return nil, err
	}

	if s.cache != nil {
		if data, err := json.Marshal(snapshot); err == nil {
			if err := s.cache.Set(ctx, analyticsCacheKey(userID), data, analyticsCacheTTL).Err(); err != nil {
				logger.Log.Warn("analytics cache write failed", zap.Error(err))
			}
		}
	}
	return snapshot, nil
}

// Invalidate drops the cached snapshot after a progress write.
func (s *AnalyticsService) Invalidate(ctx context.Context, userID uint) {
	if s.cache == nil {
		return
	}
	if err := s.cache.Del(ctx, analyticsCacheKey(userID)).Err(); err != nil {
		logger.Log.Warn("analytics cache invalidation failed", zap.Error(err))
	}
}

func (s *AnalyticsService) assemble(userID uint) (*model.Analytics, error) {
	totals, err := s.analyticsRepo.ProgressTotals(userID)
	if err != nil {
		return nil, err
	}

	startedIDs, err := s.analyticsRepo.StartedCourseIDs(userID)
	if err != nil {
		return nil, err
	}
	completedIDs, err := s.analyticsRepo.CompletedCourseIDs(userID)
	if err != nil {
		return nil, err
	}

	startedCourses, err := s.courseRepo.FindByIDs(startedIDs)
	if err != nil {
		return nil, err
	}
	completedCourses, err := s.courseRepo.FindByIDs(completedIDs)
	if err != nil {
		return nil, err
	}

	weekStart := startOfWeek(time.Now())
	activity, err := s.analyticsRepo.ActivityBetween(userID, weekStart, weekStart.AddDate(0, 0, 7))
	if err != nil {
		return nil, err
	}

	activeDays, err := s.analyticsRepo.ActiveDays(userID)
	if err != nil {
		return nil, err
	}

	return &model.Analytics{
		TotalCoursesStarted:   int(totals.Started),
		TotalCoursesCompleted: int(totals.Completed),
		TotalTimeSpentMinutes: int(totals.TimeSpentMinutes),
		AverageProgress:       int(math.Round(totals.AverageProgress)),
		SkillsAcquired:        dedupSkills(completedCourses),
		WeeklyActivity:        weeklySeries(weekStart, activity),
		CategoryDistribution:  categoryDistribution(startedCourses),
		StreakDays:            streak(time.Now(), activeDays),
	}, nil
}

// startOfWeek truncates to the most recent Monday at midnight.
func startOfWeek(now time.Time) time.Time {
	now = time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())
	offset := (int(now.Weekday()) + 6) % 7
	return now.AddDate(0, 0, -offset)
}

// weeklySeries always yields exactly seven entries, Monday through
// Sunday, with zero fill for silent days.
func weeklySeries(weekStart time.Time, entries []*model.ActivityLog) []model.DayActivity {
	series := make([]model.DayActivity, 7)
	for i := range series {
		series[i] = model.DayActivity{Day: weekDayNames[i]}
	}
	for _, e := range entries {
		idx := int(e.Day.Sub(weekStart).Hours() / 24)
		if idx >= 0 && idx < 7 {
			series[idx].Minutes += e.Minutes
		}
	}
	return series
}

// dedupSkills collects skills across completed courses, keeping the
// first occurrence of each and dropping duplicates defensively.
func dedupSkills(courses []*model.Course) []string {
	seen := make(map[string]bool)
	skills := []string{}
	for _, c := range courses {
		for _, skill := range c.Skills {
			if skill == "" || seen[skill] {
				continue
			}
			seen[skill] = true
			skills = append(skills, skill)
		}
	}
	return skills
}

// categoryDistribution reports the share of started courses per
// category as rounded percentages. The values are rendered verbatim;
// rounding may keep the sum off 100 and that is acceptable.
func categoryDistribution(courses []*model.Course) map[string]int {
	dist := make(map[string]int)
	if len(courses) == 0 {
		return dist
	}
	counts := make(map[string]int)
	for _, c := range courses {
		counts[c.Category.Label()]++
	}
	for label, n := range counts {
		dist[label] = int(math.Round(float64(n) / float64(len(courses)) * 100))
	}
	return dist
}

// streak counts consecutive active days ending today or yesterday.
// days must be distinct dates sorted most recent first.
func streak(now time.Time, days []time.Time) int {
	if len(days) == 0 {
		return 0
	}

	today := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())
	cursor := today
	first := dateOnly(days[0])
	if !first.Equal(today) {
		cursor = today.AddDate(0, 0, -1)
		if !first.Equal(cursor) {
			return 0
		}
	}

	count := 0
	for _, d := range days {
		d = dateOnly(d)
		if !d.Equal(cursor) {
			break
		}
		count++
		cursor = cursor.AddDate(0, 0, -1)
	}
	return count
}

func dateOnly(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}
