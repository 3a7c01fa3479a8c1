package database

import (
	"log"

	"github.com/Lucifer-0905/ignitiaLearn/internal/model"
	"gorm.io/gorm"
)

func floatPtr(f float64) *float64 { return &f }

// seedCatalog populates an empty database with a starter catalog:
// courses, learning paths, the assessment question bank and sample
// projects. Existing rows are left untouched.
func seedCatalog(db *gorm.DB) error {
	var courseCount int64
	db.Model(&model.Course{}).Count(&courseCount)
	if courseCount == 0 {
		for _, c := range defaultCourses() {
			if err := db.Create(&c).Error; err != nil {
				return err
			}
		}
		log.Println("Seeded course catalog")
	}

	var pathCount int64
	db.Model(&model.LearningPath{}).Count(&pathCount)
	if pathCount == 0 {
		for _, p := range defaultLearningPaths() {
			if err := db.Create(&p).Error; err != nil {
				return err
			}
		}
		log.Println("Seeded learning paths")
	}

	var questionCount int64
	db.Model(&model.AssessmentQuestion{}).Count(&questionCount)
	if questionCount == 0 {
		for _, q := range defaultAssessmentQuestions() {
			if err := db.Create(&q).Error; err != nil {
				return err
			}
		}
		log.Println("Seeded assessment question bank")
	}

	var projectCount int64
	db.Model(&model.Project{}).Count(&projectCount)
	if projectCount == 0 {
		for _, p := range defaultProjects() {
			if err := db.Create(&p).Error; err != nil {
				return err
			}
		}
		log.Println("Seeded project gallery")
	}

	return nil
}

func defaultCourses() []model.Course {
	return []model.Course{
		{
			UUIDBase:     model.UUIDBase{ID: "1"},
			Title:        "Complete Web Development Bootcamp",
			Description:  "Learn HTML, CSS, JavaScript and React by building real projects from scratch.",
			Provider:     model.ProviderUdemy,
			Category:     model.CategoryDevelopment,
			Difficulty:   model.LevelBeginner,
			Duration:     "42 hours",
			Rating:       4.7,
			ReviewCount:  48230,
			Instructor:   "Angela Moore",
			ThumbnailURL: "/thumbnails/web-dev.jpg",
			Syllabus: model.SyllabusList{
				{Week: 1, Title: "HTML Foundations", Topics: []string{"Elements", "Forms", "Semantic markup"}, Duration: "6 hours"},
				{Week: 2, Title: "CSS and Layout", Topics: []string{"Flexbox", "Grid", "Responsive design"}, Duration: "8 hours"},
				{Week: 3, Title: "JavaScript Basics", Topics: []string{"Variables", "Functions", "DOM"}, Duration: "10 hours"},
			},
			Skills: model.StringList{"HTML", "CSS", "JavaScript", "React"},
			Price:  floatPtr(84.99),
		},
		{
			UUIDBase:     model.UUIDBase{ID: "2"},
			Title:        "UI/UX Design Fundamentals",
			Description:  "Master design thinking, wireframing and prototyping with industry tools.",
			Provider:     model.ProviderCoursera,
			Category:     model.CategoryDesign,
			Difficulty:   model.LevelBeginner,
			Duration:     "28 hours",
			Rating:       4.6,
			ReviewCount:  12840,
			Instructor:   "Sara Lindqvist",
			ThumbnailURL: "/thumbnails/uiux.jpg",
			Syllabus: model.SyllabusList{
				{Week: 1, Title: "Design Thinking", Topics: []string{"Empathy maps", "User research"}, Duration: "7 hours"},
				{Week: 2, Title: "Wireframing", Topics: []string{"Low fidelity", "User flows"}, Duration: "7 hours"},
			},
			Skills: model.StringList{"Figma", "Wireframing", "Prototyping"},
		},
		{
			UUIDBase:     model.UUIDBase{ID: "3"},
			Title:        "Business Strategy Essentials",
			Description:  "Understand competitive analysis, value propositions and strategic planning.",
			Provider:     model.ProviderCoursera,
			Category:     model.CategoryBusiness,
			Difficulty:   model.LevelIntermediate,
			Duration:     "20 hours",
			Rating:       4.5,
			ReviewCount:  8310,
			Instructor:   "David Okafor",
			ThumbnailURL: "/thumbnails/business.jpg",
			Skills:       model.StringList{"Strategy", "Market Analysis", "Planning"},
		},
		{
			UUIDBase:     model.UUIDBase{ID: "4"},
			Title:        "Data Science with Python",
			Description:  "From pandas to machine learning: a practical introduction to data science.",
			Provider:     model.ProviderUdemy,
			Category:     model.CategoryDataScience,
			Difficulty:   model.LevelIntermediate,
			Duration:     "36 hours",
			Rating:       4.8,
			ReviewCount:  31020,
			Instructor:   "Priya Raman",
			ThumbnailURL: "/thumbnails/datasci.jpg",
			Skills:       model.StringList{"Python", "Pandas", "Machine Learning"},
			Price:        floatPtr(94.99),
		},
		{
			UUIDBase:     model.UUIDBase{ID: "5"},
			Title:        "Digital Marketing Masterclass",
			Description:  "SEO, content marketing and paid acquisition for modern brands.",
			Provider:     model.ProviderUdemy,
			Category:     model.CategoryMarketing,
			Difficulty:   model.LevelBeginner,
			Duration:     "24 hours",
			Rating:       4.4,
			ReviewCount:  15470,
			Instructor:   "Marco Bellini",
			ThumbnailURL: "/thumbnails/marketing.jpg",
			Skills:       model.StringList{"SEO", "Content Marketing", "Analytics"},
			Price:        floatPtr(74.99),
		},
		{
			UUIDBase:     model.UUIDBase{ID: "6"},
			Title:        "Productivity and Time Management",
			Description:  "Build sustainable habits and manage attention in a distracted world.",
			Provider:     model.ProviderCoursera,
			Category:     model.CategoryPersonalDevelopment,
			Difficulty:   model.LevelBeginner,
			Duration:     "12 hours",
			Rating:       4.3,
			ReviewCount:  6220,
			Instructor:   "Hannah Weiss",
			ThumbnailURL: "/thumbnails/productivity.jpg",
			Skills:       model.StringList{"Time Management", "Goal Setting"},
		},
		{
			UUIDBase:     model.UUIDBase{ID: "7"},
			Title:        "Advanced React Patterns",
			Description:  "Hooks, context, suspense and performance tuning for production apps.",
			Provider:     model.ProviderUdemy,
			Category:     model.CategoryDevelopment,
			Difficulty:   model.LevelAdvanced,
			Duration:     "18 hours",
			Rating:       4.9,
			ReviewCount:  9730,
			Instructor:   "Angela Moore",
			ThumbnailURL: "/thumbnails/react.jpg",
			Skills:       model.StringList{"React", "TypeScript", "Performance"},
			Price:        floatPtr(99.99),
		},
	}
}

func defaultLearningPaths() []model.LearningPath {
	return []model.LearningPath{
		{
			UUIDBase:          model.UUIDBase{ID: "path-1"},
			Title:             "Full-Stack Web Developer",
			Description:       "A comprehensive path from markup basics to production React applications.",
			Category:          model.CategoryDevelopment,
			Difficulty:        model.LevelBeginner,
			EstimatedDuration: "6 months",
			Courses:           model.StringList{"1", "7"},
			Skills:            model.StringList{"HTML", "CSS", "JavaScript", "React"},
		},
		{
			UUIDBase:          model.UUIDBase{ID: "path-2"},
			Title:             "Data Analyst",
			Description:       "Work from spreadsheets to Python-driven analysis and visualization.",
			Category:          model.CategoryDataScience,
			Difficulty:        model.LevelIntermediate,
			EstimatedDuration: "4 months",
			Courses:           model.StringList{"4"},
			Skills:            model.StringList{"Python", "Pandas", "Visualization"},
		},
	}
}

func defaultAssessmentQuestions() []model.AssessmentQuestion {
	return []model.AssessmentQuestion{
		{
			UUIDBase:      model.UUIDBase{ID: "q1"},
			Question:      "Which HTML element is used to create a hyperlink?",
			Options:       model.StringList{"<link>", "<a>", "<href>", "<url>"},
			CorrectAnswer: 1,
			Category:      model.CategoryDevelopment,
			Difficulty:    model.LevelBeginner,
			Order:         1,
		},
		{
			UUIDBase:      model.UUIDBase{ID: "q2"},
			Question:      "What does CSS flexbox primarily help with?",
			Options:       model.StringList{"Database queries", "One-dimensional layout", "Image compression", "Routing"},
			CorrectAnswer: 1,
			Category:      model.CategoryDevelopment,
			Difficulty:    model.LevelBeginner,
			Order:         2,
		},
		{
			UUIDBase:      model.UUIDBase{ID: "q3"},
			Question:      "What is a wireframe in the design process?",
			Options:       model.StringList{"A finished visual design", "A low-fidelity structural sketch", "A marketing brief", "A colour palette"},
			CorrectAnswer: 1,
			Category:      model.CategoryDesign,
			Difficulty:    model.LevelBeginner,
			Order:         3,
		},
		{
			UUIDBase:      model.UUIDBase{ID: "q4"},
			Question:      "Which principle improves readability by grouping related elements?",
			Options:       model.StringList{"Proximity", "Saturation", "Kerning", "Skeuomorphism"},
			CorrectAnswer: 0,
			Category:      model.CategoryDesign,
			Difficulty:    model.LevelIntermediate,
			Order:         4,
		},
		{
			UUIDBase:      model.UUIDBase{ID: "q5"},
			Question:      "What does a SWOT analysis evaluate?",
			Options:       model.StringList{"Server uptime", "Strengths, weaknesses, opportunities, threats", "Stock prices", "Software licences"},
			CorrectAnswer: 1,
			Category:      model.CategoryBusiness,
			Difficulty:    model.LevelBeginner,
			Order:         5,
		},
		{
			UUIDBase:      model.UUIDBase{ID: "q6"},
			Question:      "Which metric best captures recurring revenue health?",
			Options:       model.StringList{"MRR", "CTR", "DPI", "FPS"},
			CorrectAnswer: 0,
			Category:      model.CategoryBusiness,
			Difficulty:    model.LevelIntermediate,
			Order:         6,
		},
		{
			UUIDBase:      model.UUIDBase{ID: "q7"},
			Question:      "Which Python library is the standard for tabular data manipulation?",
			Options:       model.StringList{"NumPy", "Pandas", "Flask", "Requests"},
			CorrectAnswer: 1,
			Category:      model.CategoryDataScience,
			Difficulty:    model.LevelBeginner,
			Order:         7,
		},
		{
			UUIDBase:      model.UUIDBase{ID: "q8"},
			Question:      "What problem does train/test splitting address?",
			Options:       model.StringList{"Slow queries", "Overfitting evaluation", "Memory leaks", "Class imbalance"},
			CorrectAnswer: 1,
			Category:      model.CategoryDataScience,
			Difficulty:    model.LevelIntermediate,
			Order:         8,
		},
		{
			UUIDBase:      model.UUIDBase{ID: "q9"},
			Question:      "What does SEO stand for?",
			Options:       model.StringList{"Search Engine Optimization", "Social Engagement Output", "Sales Efficiency Operations", "Site Error Overview"},
			CorrectAnswer: 0,
			Category:      model.CategoryMarketing,
			Difficulty:    model.LevelBeginner,
			Order:         9,
		},
		{
			UUIDBase:      model.UUIDBase{ID: "q10"},
			Question:      "Which channel is considered 'owned media'?",
			Options:       model.StringList{"A paid search ad", "Your company newsletter", "A press mention", "An influencer post"},
			CorrectAnswer: 1,
			Category:      model.CategoryMarketing,
			Difficulty:    model.LevelIntermediate,
			Order:         10,
		},
		{
			UUIDBase:      model.UUIDBase{ID: "q11"},
			Question:      "What is the core idea behind the Pomodoro technique?",
			Options:       model.StringList{"Multitasking", "Timeboxed focus intervals", "Delegating everything", "Working longer hours"},
			CorrectAnswer: 1,
			Category:      model.CategoryPersonalDevelopment,
			Difficulty:    model.LevelBeginner,
			Order:         11,
		},
		{
			UUIDBase:      model.UUIDBase{ID: "q12"},
			Question:      "A SMART goal is specific, measurable, achievable, relevant and ...?",
			Options:       model.StringList{"Trendy", "Time-bound", "Theoretical", "Transferable"},
			CorrectAnswer: 1,
			Category:      model.CategoryPersonalDevelopment,
			Difficulty:    model.LevelBeginner,
			Order:         12,
		},
	}
}

func defaultProjects() []model.Project {
	return []model.Project{
		{
			UUIDBase:         model.UUIDBase{ID: "proj-1"},
			Title:            "Interactive Web Dashboard",
			Description:      "Build a responsive dashboard displaying dynamic data with charts and user interactions.",
			Difficulty:       model.LevelIntermediate,
			EstimatedTime:    "20 hours",
			Skills:           model.StringList{"HTML", "CSS", "JavaScript"},
			Requirements:     model.StringList{"Responsive layout design", "Data visualization with charts", "User authentication flow", "API integration"},
			LearningOutcomes: model.StringList{"Master responsive design techniques", "Implement data visualization", "Handle user state and authentication", "Work with REST APIs"},
			CourseID:         "1",
		},
		{
			UUIDBase:         model.UUIDBase{ID: "proj-2"},
			Title:            "Personal Task Manager",
			Description:      "Build a task management application with categories, priorities, and due dates.",
			Difficulty:       model.LevelIntermediate,
			EstimatedTime:    "15 hours",
			Skills:           model.StringList{"JavaScript", "React"},
			Requirements:     model.StringList{"Task CRUD operations", "Category organization", "Priority levels", "Due date tracking"},
			LearningOutcomes: model.StringList{"State management", "Form handling", "Local storage persistence", "UI component design"},
			CourseID:         "7",
		},
		{
			UUIDBase:         model.UUIDBase{ID: "proj-3"},
			Title:            "Sales Data Explorer",
			Description:      "Analyze a public sales dataset and present insights in a notebook report.",
			Difficulty:       model.LevelBeginner,
			EstimatedTime:    "10 hours",
			Skills:           model.StringList{"Python", "Pandas"},
			Requirements:     model.StringList{"Data cleaning", "Aggregation by region", "Trend visualization"},
			LearningOutcomes: model.StringList{"Exploratory data analysis", "Chart selection", "Reporting"},
			CourseID:         "4",
		},
	}
}
