package service

import (
	"math"

	"github.com/Lucifer-0905/ignitiaLearn/internal/model"
	"github.com/Lucifer-0905/ignitiaLearn/internal/util"
)

// SessionState is the quiz lifecycle phase.
type SessionState string

const (
	StateIntro   SessionState = "intro"
	StateQuiz    SessionState = "quiz"
	StateResults SessionState = "results"
)

// OptionFeedback classifies how an option renders after the current
// answer is submitted.
type OptionFeedback string

const (
	OptionCorrect   OptionFeedback = "correct"
	OptionIncorrect OptionFeedback = "incorrect"
	OptionNeutral   OptionFeedback = "neutral"
)

// CategoryScore is the per-category outcome of a finished session.
type CategoryScore struct {
	Category model.Category `json:"category"`
	Label    string         `json:"label"`
	Color    string         `json:"color"`
	Score    int            `json:"score"`
	Total    int            `json:"totalQuestions"`
	Correct  int            `json:"correctAnswers"`
}

// SessionResult is the scored outcome. Categories appear in
// first-encountered question order; categories with no questions are
// absent.
type SessionResult struct {
	OverallScore      int             `json:"overallScore"`
	CategoryScores    []CategoryScore `json:"categoryScores"`
	StrongestCategory model.Category  `json:"strongestCategory"`
	Level             model.Level     `json:"level"`
	Answers           []model.Answer  `json:"answers"`
}

const noSelection = -1

// Session is the quiz state machine. It is a pure value object: no
// I/O, no clock, no locking. Callers serialize access.
type Session struct {
	questions []*model.AssessmentQuestion
	state     SessionState
	current   int
	selected  int
	submitted bool
	answers   []model.Answer
	result    *SessionResult
}

// NewSession builds a session over a fixed question set. An empty set
// is rejected so a quiz can never start without questions.
func NewSession(questions []*model.AssessmentQuestion) (*Session, error) {
	if len(questions) == 0 {
		return nil, util.ErrNoQuestions
	}
	return &Session{
		questions: questions,
		state:     StateIntro,
		selected:  noSelection,
	}, nil
}

// Start moves the session from the intro screen into the quiz.
// Starting an already-running quiz is a no-op.
func (s *Session) Start() error {
	switch s.state {
	case StateResults:
		return util.ErrSessionFinished
	case StateQuiz:
		return nil
	}
	s.state = StateQuiz
	return nil
}

// Select records the chosen option for the current question. Selection
// is frozen once the answer is submitted.
func (s *Session) Select(option int) error {
	if err := s.requireQuiz(); err != nil {
		return err
	}
	if s.submitted {
		return util.ErrAlreadySubmitted
	}
	if option < 0 || option >= len(s.questions[s.current].Options) {
		return util.ErrInvalidOption
	}
	s.selected = option
	return nil
}

// SubmitAnswer locks in the current selection and appends exactly one
// answer for the current question.
func (s *Session) SubmitAnswer() error {
	if err := s.requireQuiz(); err != nil {
		return err
	}
	if s.submitted {
		return util.ErrAlreadySubmitted
	}
	if s.selected == noSelection {
		return util.ErrNoSelection
	}

	// Answers must stay in lockstep with questions; a length mismatch
	// here means the sequence was corrupted.
	if len(s.answers) != s.current {
		return util.ErrSessionCorrupted
	}

	q := s.questions[s.current]
	s.answers = append(s.answers, model.Answer{
		QuestionID:     q.ID,
		SelectedAnswer: s.selected,
		IsCorrect:      s.selected == q.CorrectAnswer,
	})
	s.submitted = true
	return nil
}

// Advance moves to the next question, clearing the selection, or into
// the results state after the last question.
func (s *Session) Advance() error {
	if err := s.requireQuiz(); err != nil {
		return err
	}
	if !s.submitted {
		return util.ErrNotSubmitted
	}

	s.current++
	s.selected = noSelection
	s.submitted = false

	if s.current >= len(s.questions) {
		s.state = StateResults
		s.result = s.score()
	}
	return nil
}

// Result returns the scored outcome once every question is answered.
func (s *Session) Result() (*SessionResult, error) {
	if s.state != StateResults {
		return nil, util.ErrSessionNotFinished
	}
	return s.result, nil
}

// Feedback classifies an option of the current question for display.
// Before submission every option is neutral.
func (s *Session) Feedback(option int) OptionFeedback {
	if s.state != StateQuiz || !s.submitted {
		return OptionNeutral
	}
	q := s.questions[s.current]
	if option == q.CorrectAnswer {
		return OptionCorrect
	}
	if option == s.selected {
		return OptionIncorrect
	}
	return OptionNeutral
}

// Progress reports completion as a 0-100 percentage. The current
// question counts toward progress while the quiz runs.
func (s *Session) Progress() int {
	switch s.state {
	case StateIntro:
		return 0
	case StateResults:
		return 100
	}
	return int(math.Round(float64(s.current+1) / float64(len(s.questions)) * 100))
}

func (s *Session) State() SessionState { return s.state }
func (s *Session) Total() int          { return len(s.questions) }
func (s *Session) CurrentIndex() int   { return s.current }
func (s *Session) Submitted() bool     { return s.submitted }

// Selected returns the chosen option index, or -1 when none is chosen.
func (s *Session) Selected() int { return s.selected }

// CurrentQuestion returns the question under consideration, or nil
// outside the quiz state.
func (s *Session) CurrentQuestion() *model.AssessmentQuestion {
	if s.state != StateQuiz {
		return nil
	}
	return s.questions[s.current]
}

// Answers returns a copy of the submitted answers in question order.
func (s *Session) Answers() []model.Answer {
	out := make([]model.Answer, len(s.answers))
	copy(out, s.answers)
	return out
}

func (s *Session) requireQuiz() error {
	switch s.state {
	case StateIntro:
		return util.ErrSessionNotStarted
	case StateResults:
		return util.ErrSessionFinished
	}
	return nil
}

// score walks questions and answers in lockstep and derives the
// overall score, per-category scores and the strongest category.
// Ties on the strongest category resolve to the category encountered
// first in question order.
func (s *Session) score() *SessionResult {
	type tally struct {
		total   int
		correct int
	}

	totals := make(map[model.Category]*tally)
	var order []model.Category

	correct := 0
	for i, q := range s.questions {
		t, ok := totals[q.Category]
		if !ok {
			t = &tally{}
			totals[q.Category] = t
			order = append(order, q.Category)
		}
		t.total++
		if s.answers[i].IsCorrect {
			t.correct++
			correct++
		}
	}

	overall := int(math.Round(float64(correct) / float64(len(s.questions)) * 100))

	var scores []CategoryScore
	var strongest model.Category
	best := -1
	for _, cat := range order {
		t := totals[cat]
		score := int(math.Round(float64(t.correct) / float64(t.total) * 100))
		scores = append(scores, CategoryScore{
			Category: cat,
			Label:    cat.Label(),
			Color:    cat.Color(),
			Score:    score,
			Total:    t.total,
			Correct:  t.correct,
		})
		if score > best {
			best = score
			strongest = cat
		}
	}

	return &SessionResult{
		OverallScore:      overall,
		CategoryScores:    scores,
		StrongestCategory: strongest,
		Level:             model.LevelForScore(overall),
		Answers:           s.Answers(),
	}
}
