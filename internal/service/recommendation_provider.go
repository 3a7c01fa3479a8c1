package service

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/Lucifer-0905/ignitiaLearn/internal/config"
	"github.com/Lucifer-0905/ignitiaLearn/internal/repository"
)

// RecommendationRequest is the input contract for path generation.
type RecommendationRequest struct {
	Skills        []string `json:"skills"`
	Goals         []string `json:"goals"`
	CurrentLevel  string   `json:"currentLevel"`
	TimeAvailable string   `json:"timeAvailable"`
}

// Recommendation is the generated learning-path payload. All fields
// are required; a response missing any of them is rejected whole.
type Recommendation struct {
	Title             string   `json:"title"`
	Description       string   `json:"description"`
	EstimatedDuration string   `json:"estimatedDuration"`
	Courses           []string `json:"courses"`
	Skills            []string `json:"skills"`
	Reasoning         string   `json:"reasoning"`
}

// ProjectRequest is the input contract for project-idea generation.
type ProjectRequest struct {
	Skills     []string `json:"skills"`
	Difficulty string   `json:"difficulty"`
	Category   string   `json:"category"`
}

// ProjectIdea is a generated practice project.
type ProjectIdea struct {
	Title            string   `json:"title"`
	Description      string   `json:"description"`
	Difficulty       string   `json:"difficulty"`
	EstimatedTime    string   `json:"estimatedTime"`
	Skills           []string `json:"skills"`
	Requirements     []string `json:"requirements"`
	LearningOutcomes []string `json:"learningOutcomes"`
}

// RecommendationProvider generates learning recommendations. Both the
// live model-backed provider and the deterministic fallback implement
// it; callers cannot tell which produced a response.
type RecommendationProvider interface {
	GenerateRecommendation(ctx context.Context, req RecommendationRequest) (*Recommendation, error)
	GenerateProject(ctx context.Context, req ProjectRequest) (*ProjectIdea, error)
}

type chatMessage struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

type chatCompletionRequest struct {
	Model          string         `json:"model"`
	Messages       []chatMessage  `json:"messages"`
	ResponseFormat map[string]any `json:"response_format,omitempty"`
}

type chatCompletionResponse struct {
	Choices []struct {
		Message chatMessage `json:"message"`
	} `json:"choices"`
	Error *struct {
		Message string `json:"message"`
	} `json:"error,omitempty"`
}

// liveProvider calls an OpenAI-compatible chat completion endpoint and
// parses the model output as strict JSON. Any transport, status,
// parse or shape failure is returned as an error; partial responses
// are never surfaced.
type liveProvider struct {
	cfg    config.AIConfig
	client *http.Client
}

func newLiveProvider(cfg config.AIConfig) *liveProvider {
	return &liveProvider{
		cfg:    cfg,
		client: &http.Client{Timeout: 30 * time.Second},
	}
}

func (p *liveProvider) complete(ctx context.Context, prompt string) (string, error) {
	reqBody := chatCompletionRequest{
		Model: p.cfg.Model,
		Messages: []chatMessage{
			{Role: "user", Content: prompt},
		},
		ResponseFormat: map[string]any{"type": "json_object"},
	}

	jsonData, err := json.Marshal(reqBody)
	if err != nil {
		return "", err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost,
		p.cfg.BaseURL+"/chat/completions", bytes.NewBuffer(jsonData))
	if err != nil {
		return "", err
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+p.cfg.APIKey)

	resp, err := p.client.Do(req)
	if err != nil {
		return "", err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(resp.Body)
		return "", fmt.Errorf("AI API error (status %d): %s", resp.StatusCode, string(body))
	}

	var completion chatCompletionResponse
	if err := json.NewDecoder(resp.Body).Decode(&completion); err != nil {
		return "", err
	}
	if completion.Error != nil {
		return "", fmt.Errorf("AI API error: %s", completion.Error.Message)
	}
	if len(completion.Choices) == 0 {
		return "", fmt.Errorf("AI API returned no choices")
	}
	return completion.Choices[0].Message.Content, nil
}

// stripCodeFence removes a markdown code fence some models wrap JSON
// output in.
func stripCodeFence(s string) string {
	s = strings.TrimSpace(s)
	if strings.HasPrefix(s, "```") {
		s = strings.TrimPrefix(s, "```json")
		s = strings.TrimPrefix(s, "```")
		s = strings.TrimSuffix(strings.TrimSpace(s), "```")
	}
	return strings.TrimSpace(s)
}

func (p *liveProvider) GenerateRecommendation(ctx context.Context, req RecommendationRequest) (*Recommendation, error) {
	prompt := fmt.Sprintf(`Based on the following user profile, recommend a personalized learning path:
Skills: %s
Goals: %s
Current Level: %s
Time Available: %s

Respond with a JSON object with these exact fields:
{"title": "path title", "description": "brief description", "estimatedDuration": "e.g. 6 months", "courses": ["course ids"], "skills": ["skills covered"], "reasoning": "why this path fits"}`,
		strings.Join(req.Skills, ", "),
		strings.Join(req.Goals, ", "),
		req.CurrentLevel,
		req.TimeAvailable,
	)

	content, err := p.complete(ctx, prompt)
	if err != nil {
		return nil, err
	}

	var rec Recommendation
	if err := json.Unmarshal([]byte(stripCodeFence(content)), &rec); err != nil {
		return nil, fmt.Errorf("malformed recommendation payload: %w", err)
	}
	if rec.Title == "" || rec.Description == "" || rec.EstimatedDuration == "" ||
		rec.Reasoning == "" || len(rec.Courses) == 0 {
		return nil, fmt.Errorf("incomplete recommendation payload")
	}
	return &rec, nil
}

func (p *liveProvider) GenerateProject(ctx context.Context, req ProjectRequest) (*ProjectIdea, error) {
	prompt := fmt.Sprintf(`Generate a practice project idea for a learner:
Skills: %s
Difficulty: %s
Category: %s

Respond with a JSON object with these exact fields:
{"title": "project title", "description": "what to build", "difficulty": "beginner|intermediate|advanced", "estimatedTime": "e.g. 20 hours", "skills": ["skills practiced"], "requirements": ["concrete requirements"], "learningOutcomes": ["what the learner gains"]}`,
		strings.Join(req.Skills, ", "),
		req.Difficulty,
		req.Category,
	)

	content, err := p.complete(ctx, prompt)
	if err != nil {
		return nil, err
	}

	var idea ProjectIdea
	if err := json.Unmarshal([]byte(stripCodeFence(content)), &idea); err != nil {
		return nil, fmt.Errorf("malformed project payload: %w", err)
	}
	if idea.Title == "" || idea.Description == "" || idea.EstimatedTime == "" ||
		len(idea.Requirements) == 0 {
		return nil, fmt.Errorf("incomplete project payload")
	}
	return &idea, nil
}

// fallbackProvider produces deterministic recommendations when the
// live provider is unavailable or fails. Responses use the same
// schema, with non-empty reasoning, so clients cannot distinguish
// them from generated ones.
type fallbackProvider struct {
	pathRepo *repository.LearningPathRepository
}

func newFallbackProvider(pathRepo *repository.LearningPathRepository) *fallbackProvider {
	return &fallbackProvider{pathRepo: pathRepo}
}

func (p *fallbackProvider) GenerateRecommendation(_ context.Context, _ RecommendationRequest) (*Recommendation, error) {
	if p.pathRepo != nil {
		if path, err := p.pathRepo.First(); err == nil {
			return &Recommendation{
				Title:             path.Title,
				Description:       path.Description,
				EstimatedDuration: path.EstimatedDuration,
				Courses:           []string(path.Courses),
				Skills:            []string(path.Skills),
				Reasoning:         "This path is recommended based on popular learning goals.",
			}, nil
		}
	}

	return &Recommendation{
		Title:             "Full-Stack Web Developer",
		Description:       "Based on your goals, we recommend starting with web development fundamentals.",
		EstimatedDuration: "6 months",
		Courses:           []string{"1", "7"},
		Skills:            []string{"HTML", "CSS", "JavaScript", "React"},
		Reasoning:         "This path covers essential skills for modern web development and provides a strong foundation for your learning journey.",
	}, nil
}

func (p *fallbackProvider) GenerateProject(_ context.Context, _ ProjectRequest) (*ProjectIdea, error) {
	return &ProjectIdea{
		Title:            "Interactive Web Dashboard",
		Description:      "Build a responsive dashboard displaying dynamic data with charts and user interactions.",
		Difficulty:       "intermediate",
		EstimatedTime:    "20 hours",
		Skills:           []string{"HTML", "CSS", "JavaScript"},
		Requirements:     []string{"Responsive layout design", "Data visualization with charts", "User authentication flow", "API integration"},
		LearningOutcomes: []string{"Master responsive design techniques", "Implement data visualization", "Handle user state and authentication", "Work with REST APIs"},
	}, nil
}
