package service

import (
	"context"

	"github.com/Lucifer-0905/ignitiaLearn/internal/config"
	"github.com/Lucifer-0905/ignitiaLearn/internal/repository"
	"github.com/Lucifer-0905/ignitiaLearn/pkg/logger"
	"github.com/Lucifer-0905/ignitiaLearn/pkg/monitoring"
	"go.uber.org/zap"
)

// Fixed request context merged into every path recommendation.
var (
	defaultGoals         = []string{"career advancement", "skill development"}
	defaultTimeAvailable = "10 hours per week"
)

// RecommendationService routes generation requests to the live
// provider when a credential is configured and substitutes the
// deterministic fallback on a missing credential or any live failure.
// Callers always receive a complete recommendation.
type RecommendationService struct {
	live     RecommendationProvider
	fallback *fallbackProvider
	hasKey   bool
}

func NewRecommendationService(cfg config.AIConfig, pathRepo *repository.LearningPathRepository) *RecommendationService {
	return &RecommendationService{
		live:     newLiveProvider(cfg),
		fallback: newFallbackProvider(pathRepo),
		hasKey:   cfg.APIKey != "",
	}
}

// RecommendPath generates a learning-path recommendation. Caller
// skills and level are merged with the fixed goals and time budget.
func (s *RecommendationService) RecommendPath(ctx context.Context, skills []string, currentLevel string) (*Recommendation, error) {
	req := RecommendationRequest{
		Skills:        skills,
		Goals:         defaultGoals,
		CurrentLevel:  currentLevel,
		TimeAvailable: defaultTimeAvailable,
	}

	if !s.hasKey {
		monitoring.RecommendationCounter.WithLabelValues("path", "fallback").Inc()
		return s.fallback.GenerateRecommendation(ctx, req)
	}

	rec, err := s.live.GenerateRecommendation(ctx, req)
	if err != nil {
		logger.Log.Warn("live recommendation failed, using fallback", zap.Error(err))
		monitoring.RecommendationCounter.WithLabelValues("path", "fallback").Inc()
		return s.fallback.GenerateRecommendation(ctx, req)
	}

	monitoring.RecommendationCounter.WithLabelValues("path", "live").Inc()
	return rec, nil
}

// GenerateProject generates a practice project idea with the same
// substitution rules as RecommendPath.
func (s *RecommendationService) GenerateProject(ctx context.Context, req ProjectRequest) (*ProjectIdea, error) {
	if !s.hasKey {
		monitoring.RecommendationCounter.WithLabelValues("project", "fallback").Inc()
		return s.fallback.GenerateProject(ctx, req)
	}

	idea, err := s.live.GenerateProject(ctx, req)
	if err != nil {
		logger.Log.Warn("live project generation failed, using fallback", zap.Error(err))
		monitoring.RecommendationCounter.WithLabelValues("project", "fallback").Inc()
		return errorProjectFallback(), nil
	}

	monitoring.RecommendationCounter.WithLabelValues("project", "live").Inc()
	return idea, nil
}

// errorProjectFallback is the substitute used when a credentialed live
// call fails mid-flight, distinct from the no-credential default.
func errorProjectFallback() *ProjectIdea {
	return &ProjectIdea{
		Title:            "Personal Task Manager",
		Description:      "Build a task management application with categories, priorities, and due dates.",
		Difficulty:       "intermediate",
		EstimatedTime:    "15 hours",
		Skills:           []string{"JavaScript", "React"},
		Requirements:     []string{"Task CRUD operations", "Category organization", "Priority levels", "Due date tracking"},
		LearningOutcomes: []string{"State management", "Form handling", "Local storage persistence", "UI component design"},
	}
}
