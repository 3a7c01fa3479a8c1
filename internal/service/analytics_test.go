package service

import (
	"testing"
	"time"

	"github.com/Lucifer-0905/ignitiaLearn/internal/model"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func day(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func TestStartOfWeek(t *testing.T) {
	// 2026-08-28 is a Friday; the week starts Monday the 24th.
	assert.Equal(t, day(2026, time.August, 24), startOfWeek(day(2026, time.August, 28)))
	// Monday maps to itself.
	assert.Equal(t, day(2026, time.August, 24), startOfWeek(day(2026, time.August, 24)))
	// Sunday still belongs to the week that began the prior Monday.
	assert.Equal(t, day(2026, time.August, 24), startOfWeek(day(2026, time.August, 30)))
}

func TestWeeklySeriesAlwaysSevenDays(t *testing.T) {
	weekStart := day(2026, time.August, 24)

	series := weeklySeries(weekStart, nil)
	require.Len(t, series, 7)
	assert.Equal(t, "Mon", series[0].Day)
	assert.Equal(t, "Sun", series[6].Day)
	for _, entry := range series {
		assert.Zero(t, entry.Minutes)
	}
}

func TestWeeklySeriesBucketsActivity(t *testing.T) {
	weekStart := day(2026, time.August, 24)
	entries := []*model.ActivityLog{
		{Day: day(2026, time.August, 24), Minutes: 30},
		{Day: day(2026, time.August, 26), Minutes: 45},
		{Day: day(2026, time.August, 26), Minutes: 15},
		{Day: day(2026, time.August, 30), Minutes: 10},
	}

	series := weeklySeries(weekStart, entries)
	require.Len(t, series, 7)
	assert.Equal(t, 30, series[0].Minutes)
	assert.Equal(t, 0, series[1].Minutes)
	assert.Equal(t, 60, series[2].Minutes)
	assert.Equal(t, 10, series[6].Minutes)
}

func TestWeeklySeriesIgnoresOutOfRangeDays(t *testing.T) {
	weekStart := day(2026, time.August, 24)
	entries := []*model.ActivityLog{
		{Day: day(2026, time.August, 23), Minutes: 99},
		{Day: day(2026, time.September, 1), Minutes: 99},
	}

	series := weeklySeries(weekStart, entries)
	for _, entry := range series {
		assert.Zero(t, entry.Minutes)
	}
}

func TestDedupSkillsKeepsFirstSeenOrder(t *testing.T) {
	courses := []*model.Course{
		{Skills: model.StringList{"HTML", "CSS", "JavaScript"}},
		{Skills: model.StringList{"JavaScript", "React", "CSS"}},
		{Skills: model.StringList{"", "Python"}},
	}

	skills := dedupSkills(courses)
	assert.Equal(t, []string{"HTML", "CSS", "JavaScript", "React", "Python"}, skills)
}

func TestDedupSkillsEmptyInput(t *testing.T) {
	assert.Empty(t, dedupSkills(nil))
	assert.NotNil(t, dedupSkills(nil), "zero state serializes as [] not null")
}

func TestCategoryDistributionRoundedVerbatim(t *testing.T) {
	courses := []*model.Course{
		{Category: model.CategoryDevelopment},
		{Category: model.CategoryDevelopment},
		{Category: model.CategoryDesign},
	}

	dist := categoryDistribution(courses)
	// 66.7 and 33.3 round independently; the sum may miss 100.
	assert.Equal(t, 67, dist["Development"])
	assert.Equal(t, 33, dist["Design"])
}

func TestCategoryDistributionEmpty(t *testing.T) {
	dist := categoryDistribution(nil)
	assert.NotNil(t, dist)
	assert.Empty(t, dist)
}

func TestStreakCountsBackFromToday(t *testing.T) {
	now := day(2026, time.August, 28)
	days := []time.Time{
		day(2026, time.August, 28),
		day(2026, time.August, 27),
		day(2026, time.August, 26),
		day(2026, time.August, 24),
	}
	assert.Equal(t, 3, streak(now, days))
}

func TestStreakToleratesMissingToday(t *testing.T) {
	// Yesterday's streak is still alive before today's activity.
	now := day(2026, time.August, 28)
	days := []time.Time{
		day(2026, time.August, 27),
		day(2026, time.August, 26),
	}
	assert.Equal(t, 2, streak(now, days))
}

func TestStreakBrokenByGap(t *testing.T) {
	now := day(2026, time.August, 28)
	days := []time.Time{
		day(2026, time.August, 25),
		day(2026, time.August, 24),
	}
	assert.Equal(t, 0, streak(now, days))
}

func TestStreakEmpty(t *testing.T) {
	assert.Equal(t, 0, streak(day(2026, time.August, 28), nil))
}
