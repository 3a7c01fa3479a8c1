package model

// Category is a fixed learning-domain tag shared by courses, paths,
// assessment questions and analytics.
type Category string

const (
	CategoryDevelopment         Category = "development"
	CategoryDesign              Category = "design"
	CategoryBusiness            Category = "business"
	CategoryDataScience         Category = "data-science"
	CategoryMarketing           Category = "marketing"
	CategoryPersonalDevelopment Category = "personal-development"
)

// AllCategories lists every category in canonical order.
func AllCategories() []Category {
	return []Category{
		CategoryDevelopment,
		CategoryDesign,
		CategoryBusiness,
		CategoryDataScience,
		CategoryMarketing,
		CategoryPersonalDevelopment,
	}
}

var categoryLabels = map[Category]string{
	CategoryDevelopment:         "Development",
	CategoryDesign:              "Design",
	CategoryBusiness:            "Business",
	CategoryDataScience:         "Data Science",
	CategoryMarketing:           "Marketing",
	CategoryPersonalDevelopment: "Personal Development",
}

var categoryColors = map[Category]string{
	CategoryDevelopment:         "bg-blue-500",
	CategoryDesign:              "bg-purple-500",
	CategoryBusiness:            "bg-green-500",
	CategoryDataScience:         "bg-orange-500",
	CategoryMarketing:           "bg-pink-500",
	CategoryPersonalDevelopment: "bg-teal-500",
}

func (c Category) Valid() bool {
	_, ok := categoryLabels[c]
	return ok
}

// Label returns the display name for the category, falling back to
// the raw value for unknown tags.
func (c Category) Label() string {
	if l, ok := categoryLabels[c]; ok {
		return l
	}
	return string(c)
}

// Color returns the display color token for the category.
func (c Category) Color() string {
	if col, ok := categoryColors[c]; ok {
		return col
	}
	return "bg-gray-500"
}

// Level is a coarse proficiency tier.
type Level string

const (
	LevelBeginner     Level = "beginner"
	LevelIntermediate Level = "intermediate"
	LevelAdvanced     Level = "advanced"
)

func (l Level) Valid() bool {
	switch l {
	case LevelBeginner, LevelIntermediate, LevelAdvanced:
		return true
	}
	return false
}

// LevelForScore classifies an overall score (0-100) into a tier.
// Thresholds are inclusive at the lower bound of each tier.
func LevelForScore(score int) Level {
	switch {
	case score >= 80:
		return LevelAdvanced
	case score >= 50:
		return LevelIntermediate
	default:
		return LevelBeginner
	}
}

// CourseProvider identifies the upstream course catalog.
type CourseProvider string

const (
	ProviderCoursera CourseProvider = "coursera"
	ProviderUdemy    CourseProvider = "udemy"
)

func (p CourseProvider) Valid() bool {
	return p == ProviderCoursera || p == ProviderUdemy
}
