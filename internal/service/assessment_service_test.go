package service

import (
	"testing"
	"time"

	"github.com/Lucifer-0905/ignitiaLearn/internal/model"
	"github.com/Lucifer-0905/ignitiaLearn/internal/util"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func registryWith(entries map[string]*sessionEntry) *AssessmentService {
	return &AssessmentService{
		sessions: entries,
		done:     make(chan struct{}),
	}
}

func TestGetSessionUnknownID(t *testing.T) {
	svc := registryWith(map[string]*sessionEntry{})
	_, err := svc.GetSession("nope")
	assert.ErrorIs(t, err, util.ErrSessionNotFound)
}

func TestExpiredSessionIsGone(t *testing.T) {
	s, err := NewSession([]*model.AssessmentQuestion{
		question("q1", model.CategoryDevelopment, 0),
	})
	require.NoError(t, err)
	require.NoError(t, s.Start())

	svc := registryWith(map[string]*sessionEntry{
		"old": {session: s, expiresAt: time.Now().Add(-time.Minute)},
	})

	_, err = svc.GetSession("old")
	assert.ErrorIs(t, err, util.ErrSessionNotFound)
	// Lookup evicts the expired entry.
	assert.Empty(t, svc.sessions)
}

func TestSessionViewHidesAnswerUntilSubmit(t *testing.T) {
	s, err := NewSession([]*model.AssessmentQuestion{
		question("q1", model.CategoryDesign, 1),
		question("q2", model.CategoryDesign, 0),
	})
	require.NoError(t, err)
	require.NoError(t, s.Start())

	svc := registryWith(map[string]*sessionEntry{
		"s1": {session: s, expiresAt: time.Now().Add(time.Hour)},
	})

	view, err := svc.GetSession("s1")
	require.NoError(t, err)
	assert.Equal(t, StateQuiz, view.State)
	assert.Equal(t, 1, view.QuestionNumber)
	assert.Equal(t, 2, view.TotalQuestions)
	require.NotNil(t, view.Question)
	assert.Nil(t, view.Question.Feedback)
	assert.Nil(t, view.Selected)

	view, err = svc.SelectAnswer("s1", 0)
	require.NoError(t, err)
	require.NotNil(t, view.Selected)
	assert.Equal(t, 0, *view.Selected)
	assert.Nil(t, view.Question.Feedback)

	view, err = svc.SubmitAnswer("s1")
	require.NoError(t, err)
	require.NotNil(t, view.Question.Feedback)
	assert.Equal(t, string(OptionIncorrect), view.Question.Feedback[0])
	assert.Equal(t, string(OptionCorrect), view.Question.Feedback[1])
}

func TestDeleteSessionUnknownID(t *testing.T) {
	svc := registryWith(map[string]*sessionEntry{})
	assert.ErrorIs(t, svc.DeleteSession("nope"), util.ErrSessionNotFound)
}

func TestAdvanceThroughServiceReachesResults(t *testing.T) {
	s, err := NewSession([]*model.AssessmentQuestion{
		question("q1", model.CategoryBusiness, 0),
	})
	require.NoError(t, err)
	require.NoError(t, s.Start())

	svc := registryWith(map[string]*sessionEntry{
		"s1": {session: s, expiresAt: time.Now().Add(time.Hour)},
	})

	_, err = svc.SelectAnswer("s1", 0)
	require.NoError(t, err)
	_, err = svc.SubmitAnswer("s1")
	require.NoError(t, err)
	view, err := svc.AdvanceSession("s1")
	require.NoError(t, err)
	assert.Equal(t, StateResults, view.State)
	assert.Nil(t, view.Question)

	result, err := svc.SessionResult("s1")
	require.NoError(t, err)
	assert.Equal(t, 100, result.OverallScore)
}
