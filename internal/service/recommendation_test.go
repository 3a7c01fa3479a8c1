package service

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/Lucifer-0905/ignitiaLearn/internal/config"
	"github.com/Lucifer-0905/ignitiaLearn/internal/model"
	"github.com/Lucifer-0905/ignitiaLearn/internal/util"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func completionBody(content string) string {
	resp := map[string]any{
		"choices": []map[string]any{
			{"message": map[string]any{"role": "assistant", "content": content}},
		},
	}
	data, _ := json.Marshal(resp)
	return string(data)
}

func TestRecommendPathFallbackWithoutCredential(t *testing.T) {
	svc := NewRecommendationService(config.AIConfig{}, nil)

	rec, err := svc.RecommendPath(context.Background(), []string{"HTML"}, "beginner")
	require.NoError(t, err)

	assert.Equal(t, "Full-Stack Web Developer", rec.Title)
	assert.Equal(t, "6 months", rec.EstimatedDuration)
	assert.Equal(t, []string{"1", "7"}, rec.Courses)
	assert.NotEmpty(t, rec.Description)
	assert.NotEmpty(t, rec.Reasoning, "fallback must be indistinguishable from a generated response")
}

func TestRecommendPathLiveContract(t *testing.T) {
	var captured chatCompletionRequest
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/chat/completions", r.URL.Path)
		assert.Equal(t, "Bearer test-key", r.Header.Get("Authorization"))
		require.NoError(t, json.NewDecoder(r.Body).Decode(&captured))

		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(completionBody(`{
			"title": "Data Analyst Track",
			"description": "From spreadsheets to Python.",
			"estimatedDuration": "4 months",
			"courses": ["4"],
			"skills": ["Python"],
			"reasoning": "Matches your data focus."
		}`)))
	}))
	defer server.Close()

	svc := NewRecommendationService(config.AIConfig{
		BaseURL: server.URL,
		APIKey:  "test-key",
		Model:   "test-model",
	}, nil)

	rec, err := svc.RecommendPath(context.Background(), []string{"Excel"}, "intermediate")
	require.NoError(t, err)

	assert.Equal(t, "Data Analyst Track", rec.Title)
	assert.Equal(t, []string{"4"}, rec.Courses)

	// The request carries the fixed goals and time budget alongside
	// the caller's profile.
	require.Len(t, captured.Messages, 1)
	prompt := captured.Messages[0].Content
	assert.Contains(t, prompt, "Excel")
	assert.Contains(t, prompt, "intermediate")
	assert.Contains(t, prompt, "career advancement, skill development")
	assert.Contains(t, prompt, "10 hours per week")
	assert.Equal(t, "test-model", captured.Model)
}

func TestRecommendPathMalformedResponseFallsBack(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(completionBody("here is your path: learn everything")))
	}))
	defer server.Close()

	svc := NewRecommendationService(config.AIConfig{BaseURL: server.URL, APIKey: "k"}, nil)

	rec, err := svc.RecommendPath(context.Background(), nil, "beginner")
	require.NoError(t, err)
	assert.Equal(t, "Full-Stack Web Developer", rec.Title)
}

func TestRecommendPathIncompletePayloadFallsBack(t *testing.T) {
	// Valid JSON but missing required fields is rejected whole.
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(completionBody(`{"title": "Half a path"}`)))
	}))
	defer server.Close()

	svc := NewRecommendationService(config.AIConfig{BaseURL: server.URL, APIKey: "k"}, nil)

	rec, err := svc.RecommendPath(context.Background(), nil, "beginner")
	require.NoError(t, err)
	assert.Equal(t, "Full-Stack Web Developer", rec.Title)
}

func TestRecommendPathServerErrorFallsBack(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	}))
	defer server.Close()

	svc := NewRecommendationService(config.AIConfig{BaseURL: server.URL, APIKey: "k"}, nil)

	rec, err := svc.RecommendPath(context.Background(), nil, "beginner")
	require.NoError(t, err)
	assert.NotEmpty(t, rec.Title)
	assert.NotEmpty(t, rec.Reasoning)
}

func TestGenerateProjectFallbacksDiffer(t *testing.T) {
	// Without a credential the default project idea is served.
	svc := NewRecommendationService(config.AIConfig{}, nil)
	idea, err := svc.GenerateProject(context.Background(), ProjectRequest{})
	require.NoError(t, err)
	assert.Equal(t, "Interactive Web Dashboard", idea.Title)

	// A credentialed call that fails mid-flight gets the other one.
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadGateway)
	}))
	defer server.Close()

	svc = NewRecommendationService(config.AIConfig{BaseURL: server.URL, APIKey: "k"}, nil)
	idea, err = svc.GenerateProject(context.Background(), ProjectRequest{})
	require.NoError(t, err)
	assert.Equal(t, "Personal Task Manager", idea.Title)
}

func finishedEntry(t *testing.T) *sessionEntry {
	t.Helper()
	s, err := NewSession([]*model.AssessmentQuestion{
		question("q1", model.CategoryDevelopment, 0),
	})
	require.NoError(t, err)
	runQuiz(t, s, []bool{true})
	return &sessionEntry{session: s, expiresAt: time.Now().Add(time.Hour)}
}

func TestRequestRecommendationRequiresFinishedSession(t *testing.T) {
	unfinished, err := NewSession([]*model.AssessmentQuestion{
		question("q1", model.CategoryDevelopment, 0),
	})
	require.NoError(t, err)
	require.NoError(t, unfinished.Start())

	svc := &AssessmentService{
		recommender: NewRecommendationService(config.AIConfig{}, nil),
		sessions: map[string]*sessionEntry{
			"s1": {session: unfinished, expiresAt: time.Now().Add(time.Hour)},
		},
		done: make(chan struct{}),
	}

	_, err = svc.RequestRecommendation(context.Background(), "s1")
	assert.ErrorIs(t, err, util.ErrSessionNotFinished)
}

func TestRequestRecommendationSingleInFlight(t *testing.T) {
	entry := finishedEntry(t)
	entry.inFlight = true

	svc := &AssessmentService{
		recommender: NewRecommendationService(config.AIConfig{}, nil),
		sessions:    map[string]*sessionEntry{"s1": entry},
		done:        make(chan struct{}),
	}

	_, err := svc.RequestRecommendation(context.Background(), "s1")
	assert.ErrorIs(t, err, util.ErrRequestInFlight)
}

func TestRequestRecommendationCachedPerSession(t *testing.T) {
	entry := finishedEntry(t)
	svc := &AssessmentService{
		recommender: NewRecommendationService(config.AIConfig{}, nil),
		sessions:    map[string]*sessionEntry{"s1": entry},
		done:        make(chan struct{}),
	}

	first, err := svc.RequestRecommendation(context.Background(), "s1")
	require.NoError(t, err)
	second, err := svc.RequestRecommendation(context.Background(), "s1")
	require.NoError(t, err)
	assert.Same(t, first, second)
}

func TestStaleRecommendationDroppedAfterDelete(t *testing.T) {
	started := make(chan struct{})
	release := make(chan struct{})
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		close(started)
		<-release
		w.Write([]byte(completionBody(`{
			"title": "Late Path",
			"description": "d",
			"estimatedDuration": "1 month",
			"courses": ["1"],
			"skills": ["x"],
			"reasoning": "r"
		}`)))
	}))
	defer server.Close()

	entry := finishedEntry(t)
	svc := &AssessmentService{
		recommender: NewRecommendationService(config.AIConfig{BaseURL: server.URL, APIKey: "k"}, nil),
		sessions:    map[string]*sessionEntry{"s1": entry},
		done:        make(chan struct{}),
	}

	errCh := make(chan error, 1)
	go func() {
		_, err := svc.RequestRecommendation(context.Background(), "s1")
		errCh <- err
	}()

	<-started
	require.NoError(t, svc.DeleteSession("s1"))
	close(release)

	assert.ErrorIs(t, <-errCh, util.ErrSessionNotFound)
	assert.Nil(t, entry.recommendation)
}
