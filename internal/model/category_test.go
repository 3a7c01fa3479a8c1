package model

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCategoryAccessors(t *testing.T) {
	tests := []struct {
		category Category
		label    string
		color    string
	}{
		{CategoryDevelopment, "Development", "bg-blue-500"},
		{CategoryDesign, "Design", "bg-purple-500"},
		{CategoryBusiness, "Business", "bg-green-500"},
		{CategoryDataScience, "Data Science", "bg-orange-500"},
		{CategoryMarketing, "Marketing", "bg-pink-500"},
		{CategoryPersonalDevelopment, "Personal Development", "bg-teal-500"},
	}

	for _, tt := range tests {
		t.Run(string(tt.category), func(t *testing.T) {
			assert.True(t, tt.category.Valid())
			assert.Equal(t, tt.label, tt.category.Label())
			assert.Equal(t, tt.color, tt.category.Color())
		})
	}
}

func TestUnknownCategoryFallsBack(t *testing.T) {
	unknown := Category("quantum-baking")
	assert.False(t, unknown.Valid())
	assert.Equal(t, "quantum-baking", unknown.Label())
	assert.Equal(t, "bg-gray-500", unknown.Color())
}

func TestAllCategoriesOrder(t *testing.T) {
	cats := AllCategories()
	assert.Len(t, cats, 6)
	assert.Equal(t, CategoryDevelopment, cats[0])
	assert.Equal(t, CategoryPersonalDevelopment, cats[5])
}

func TestLevelForScoreThresholds(t *testing.T) {
	tests := []struct {
		score int
		want  Level
	}{
		{0, LevelBeginner},
		{49, LevelBeginner},
		{50, LevelIntermediate},
		{79, LevelIntermediate},
		{80, LevelAdvanced},
		{100, LevelAdvanced},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, LevelForScore(tt.score), "score %d", tt.score)
	}
}

func TestLevelValid(t *testing.T) {
	assert.True(t, LevelBeginner.Valid())
	assert.True(t, LevelIntermediate.Valid())
	assert.True(t, LevelAdvanced.Valid())
	assert.False(t, Level("expert").Valid())
	assert.False(t, Level("").Valid())
}

func TestCourseProviderValid(t *testing.T) {
	assert.True(t, ProviderCoursera.Valid())
	assert.True(t, ProviderUdemy.Valid())
	assert.False(t, CourseProvider("edx").Valid())
}
