package service

import (
	"testing"

	"github.com/Lucifer-0905/ignitiaLearn/internal/model"
	"github.com/Lucifer-0905/ignitiaLearn/internal/util"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func question(id string, category model.Category, correct int) *model.AssessmentQuestion {
	return &model.AssessmentQuestion{
		UUIDBase:      model.UUIDBase{ID: id},
		Question:      "q-" + id,
		Options:       model.StringList{"a", "b", "c", "d"},
		CorrectAnswer: correct,
		Category:      category,
	}
}

// runQuiz answers every question, choosing the correct option when
// the matching entry in correct is true.
func runQuiz(t *testing.T, s *Session, correct []bool) {
	t.Helper()
	require.NoError(t, s.Start())
	for _, ok := range correct {
		q := s.CurrentQuestion()
		require.NotNil(t, q)
		choice := q.CorrectAnswer
		if !ok {
			choice = (q.CorrectAnswer + 1) % len(q.Options)
		}
		require.NoError(t, s.Select(choice))
		require.NoError(t, s.SubmitAnswer())
		require.NoError(t, s.Advance())
	}
}

func TestNewSessionRejectsEmptySet(t *testing.T) {
	_, err := NewSession(nil)
	assert.ErrorIs(t, err, util.ErrNoQuestions)

	_, err = NewSession([]*model.AssessmentQuestion{})
	assert.ErrorIs(t, err, util.ErrNoQuestions)
}

func TestSessionRequiresStart(t *testing.T) {
	s, err := NewSession([]*model.AssessmentQuestion{
		question("q1", model.CategoryDevelopment, 0),
	})
	require.NoError(t, err)

	assert.Equal(t, StateIntro, s.State())
	assert.ErrorIs(t, s.Select(0), util.ErrSessionNotStarted)
	assert.ErrorIs(t, s.SubmitAnswer(), util.ErrSessionNotStarted)
	assert.ErrorIs(t, s.Advance(), util.ErrSessionNotStarted)

	_, err = s.Result()
	assert.ErrorIs(t, err, util.ErrSessionNotFinished)

	require.NoError(t, s.Start())
	assert.Equal(t, StateQuiz, s.State())
	// Starting again is harmless.
	assert.NoError(t, s.Start())
}

func TestSubmitRequiresSelection(t *testing.T) {
	s, _ := NewSession([]*model.AssessmentQuestion{
		question("q1", model.CategoryDevelopment, 0),
	})
	require.NoError(t, s.Start())

	assert.ErrorIs(t, s.SubmitAnswer(), util.ErrNoSelection)
	assert.ErrorIs(t, s.Advance(), util.ErrNotSubmitted)
}

func TestSelectValidatesIndex(t *testing.T) {
	s, _ := NewSession([]*model.AssessmentQuestion{
		question("q1", model.CategoryDevelopment, 0),
	})
	require.NoError(t, s.Start())

	assert.ErrorIs(t, s.Select(-1), util.ErrInvalidOption)
	assert.ErrorIs(t, s.Select(4), util.ErrInvalidOption)
	assert.NoError(t, s.Select(3))
}

func TestOneAnswerPerQuestion(t *testing.T) {
	s, _ := NewSession([]*model.AssessmentQuestion{
		question("q1", model.CategoryDevelopment, 0),
		question("q2", model.CategoryDevelopment, 1),
	})
	require.NoError(t, s.Start())

	require.NoError(t, s.Select(0))
	require.NoError(t, s.SubmitAnswer())

	// Submission freezes both the answer and the selection.
	assert.ErrorIs(t, s.SubmitAnswer(), util.ErrAlreadySubmitted)
	assert.ErrorIs(t, s.Select(1), util.ErrAlreadySubmitted)
	assert.Len(t, s.Answers(), 1)
}

func TestAdvanceResetsSelection(t *testing.T) {
	s, _ := NewSession([]*model.AssessmentQuestion{
		question("q1", model.CategoryDevelopment, 0),
		question("q2", model.CategoryDevelopment, 1),
	})
	require.NoError(t, s.Start())

	require.NoError(t, s.Select(0))
	require.NoError(t, s.SubmitAnswer())
	require.NoError(t, s.Advance())

	assert.Equal(t, 1, s.CurrentIndex())
	assert.Equal(t, -1, s.Selected())
	assert.False(t, s.Submitted())
}

func TestFeedbackClassification(t *testing.T) {
	s, _ := NewSession([]*model.AssessmentQuestion{
		question("q1", model.CategoryDevelopment, 2),
	})
	require.NoError(t, s.Start())
	require.NoError(t, s.Select(0))

	// No feedback leaks before submission.
	for i := 0; i < 4; i++ {
		assert.Equal(t, OptionNeutral, s.Feedback(i))
	}

	require.NoError(t, s.SubmitAnswer())
	assert.Equal(t, OptionIncorrect, s.Feedback(0))
	assert.Equal(t, OptionNeutral, s.Feedback(1))
	assert.Equal(t, OptionCorrect, s.Feedback(2))
	assert.Equal(t, OptionNeutral, s.Feedback(3))
}

func TestFeedbackWhenCorrect(t *testing.T) {
	s, _ := NewSession([]*model.AssessmentQuestion{
		question("q1", model.CategoryDevelopment, 2),
	})
	require.NoError(t, s.Start())
	require.NoError(t, s.Select(2))
	require.NoError(t, s.SubmitAnswer())

	assert.Equal(t, OptionCorrect, s.Feedback(2))
	assert.Equal(t, OptionNeutral, s.Feedback(0))
}

func TestProgressPercentage(t *testing.T) {
	s, _ := NewSession([]*model.AssessmentQuestion{
		question("q1", model.CategoryDevelopment, 0),
		question("q2", model.CategoryDevelopment, 0),
		question("q3", model.CategoryDevelopment, 0),
	})
	assert.Equal(t, 0, s.Progress())

	require.NoError(t, s.Start())
	assert.Equal(t, 33, s.Progress())

	require.NoError(t, s.Select(0))
	require.NoError(t, s.SubmitAnswer())
	require.NoError(t, s.Advance())
	assert.Equal(t, 67, s.Progress())

	require.NoError(t, s.Select(0))
	require.NoError(t, s.SubmitAnswer())
	require.NoError(t, s.Advance())
	assert.Equal(t, 100, s.Progress())

	require.NoError(t, s.Select(0))
	require.NoError(t, s.SubmitAnswer())
	require.NoError(t, s.Advance())
	assert.Equal(t, StateResults, s.State())
	assert.Equal(t, 100, s.Progress())
}

func TestScoringMixedCategories(t *testing.T) {
	s, _ := NewSession([]*model.AssessmentQuestion{
		question("q1", model.CategoryDevelopment, 0),
		question("q2", model.CategoryDevelopment, 1),
		question("q3", model.CategoryDesign, 2),
		question("q4", model.CategoryDesign, 3),
	})
	runQuiz(t, s, []bool{true, false, true, true})

	result, err := s.Result()
	require.NoError(t, err)

	assert.Equal(t, 75, result.OverallScore)
	assert.Equal(t, model.LevelIntermediate, result.Level)

	require.Len(t, result.CategoryScores, 2)
	dev, design := result.CategoryScores[0], result.CategoryScores[1]
	assert.Equal(t, model.CategoryDevelopment, dev.Category)
	assert.Equal(t, 50, dev.Score)
	assert.Equal(t, 2, dev.Total)
	assert.Equal(t, 1, dev.Correct)
	assert.Equal(t, model.CategoryDesign, design.Category)
	assert.Equal(t, 100, design.Score)

	assert.Equal(t, model.CategoryDesign, result.StrongestCategory)
}

func TestScoreRounding(t *testing.T) {
	s, _ := NewSession([]*model.AssessmentQuestion{
		question("q1", model.CategoryBusiness, 0),
		question("q2", model.CategoryBusiness, 0),
		question("q3", model.CategoryBusiness, 0),
	})
	runQuiz(t, s, []bool{true, false, false})

	result, err := s.Result()
	require.NoError(t, err)
	assert.Equal(t, 33, result.OverallScore)
	assert.Equal(t, model.LevelBeginner, result.Level)
}

func TestStrongestCategoryTieBreak(t *testing.T) {
	// Both categories at 100: the one met first in question order wins.
	s, _ := NewSession([]*model.AssessmentQuestion{
		question("q1", model.CategoryMarketing, 0),
		question("q2", model.CategoryDesign, 1),
	})
	runQuiz(t, s, []bool{true, true})

	result, err := s.Result()
	require.NoError(t, err)
	assert.Equal(t, model.CategoryMarketing, result.StrongestCategory)
	assert.Equal(t, 100, result.OverallScore)
	assert.Equal(t, model.LevelAdvanced, result.Level)
}

func TestOnlyPresentCategoriesScored(t *testing.T) {
	s, _ := NewSession([]*model.AssessmentQuestion{
		question("q1", model.CategoryDataScience, 0),
	})
	runQuiz(t, s, []bool{false})

	result, err := s.Result()
	require.NoError(t, err)
	require.Len(t, result.CategoryScores, 1)
	assert.Equal(t, model.CategoryDataScience, result.CategoryScores[0].Category)
}

func TestFinishedSessionIsTerminal(t *testing.T) {
	s, _ := NewSession([]*model.AssessmentQuestion{
		question("q1", model.CategoryDevelopment, 0),
	})
	runQuiz(t, s, []bool{true})

	assert.ErrorIs(t, s.Select(0), util.ErrSessionFinished)
	assert.ErrorIs(t, s.SubmitAnswer(), util.ErrSessionFinished)
	assert.ErrorIs(t, s.Advance(), util.ErrSessionFinished)
	assert.ErrorIs(t, s.Start(), util.ErrSessionFinished)

	// Result stays stable across repeated reads.
	first, err := s.Result()
	require.NoError(t, err)
	second, err := s.Result()
	require.NoError(t, err)
	assert.Equal(t, first, second)
}

func TestAnswersMatchQuestionOrder(t *testing.T) {
	s, _ := NewSession([]*model.AssessmentQuestion{
		question("q1", model.CategoryDevelopment, 0),
		question("q2", model.CategoryDesign, 1),
		question("q3", model.CategoryBusiness, 2),
	})
	runQuiz(t, s, []bool{true, false, true})

	answers := s.Answers()
	require.Len(t, answers, 3)
	assert.Equal(t, "q1", answers[0].QuestionID)
	assert.Equal(t, "q2", answers[1].QuestionID)
	assert.Equal(t, "q3", answers[2].QuestionID)
	assert.True(t, answers[0].IsCorrect)
	assert.False(t, answers[1].IsCorrect)
	assert.True(t, answers[2].IsCorrect)
}

func TestCorruptedAnswerSequenceDetected(t *testing.T) {
	s, _ := NewSession([]*model.AssessmentQuestion{
		question("q1", model.CategoryDevelopment, 0),
		question("q2", model.CategoryDevelopment, 0),
	})
	require.NoError(t, s.Start())

	// Force an answer the machine did not produce.
	s.answers = append(s.answers, model.Answer{QuestionID: "rogue"})

	require.NoError(t, s.Select(0))
	assert.ErrorIs(t, s.SubmitAnswer(), util.ErrSessionCorrupted)
}
