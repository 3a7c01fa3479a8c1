package service

import (
	"context"
	"encoding/json"
	"sync"
	"time"

	"github.com/Lucifer-0905/ignitiaLearn/internal/model"
	"github.com/Lucifer-0905/ignitiaLearn/internal/repository"
	"github.com/Lucifer-0905/ignitiaLearn/internal/util"
	"github.com/Lucifer-0905/ignitiaLearn/pkg/logger"
	"go.uber.org/zap"
)

const (
	sessionTTL           = 2 * time.Hour
	sessionSweepInterval = 10 * time.Minute
)

// QuestionView is a question as served to quiz clients. The correct
// answer never leaves the server while the quiz runs.
type QuestionView struct {
	ID       string         `json:"id"`
	Question string         `json:"question"`
	Options  []string       `json:"options"`
	Category model.Category `json:"category"`
	Feedback map[int]string `json:"feedback,omitempty"`
}

// SessionView is the client-facing snapshot of a quiz session.
type SessionView struct {
	ID             string        `json:"id"`
	State          SessionState  `json:"state"`
	QuestionNumber int           `json:"questionNumber"`
	TotalQuestions int           `json:"totalQuestions"`
	Progress       int           `json:"progress"`
	Selected       *int          `json:"selectedAnswer,omitempty"`
	Submitted      bool          `json:"submitted"`
	Question       *QuestionView `json:"question,omitempty"`
}

type sessionEntry struct {
	mu      sync.Mutex
	session *Session

	expiresAt time.Time

	// generation increments on reset; in-flight recommendation
	// responses carrying an older generation are dropped.
	generation     uint64
	inFlight       bool
	recommendation *Recommendation
}

// AssessmentService owns the question bank, persisted results and the
// in-memory registry of running quiz sessions.
type AssessmentService struct {
	assessmentRepo *repository.AssessmentRepository
	recommender    *RecommendationService

	mu       sync.Mutex
	sessions map[string]*sessionEntry
	done     chan struct{}
	once     sync.Once
}

func NewAssessmentService(assessmentRepo *repository.AssessmentRepository, recommender *RecommendationService) *AssessmentService {
	s := &AssessmentService{
		assessmentRepo: assessmentRepo,
		recommender:    recommender,
		sessions:       make(map[string]*sessionEntry),
		done:           make(chan struct{}),
	}
	go s.sweep()
	return s
}

// Stop terminates the background session sweeper.
func (s *AssessmentService) Stop() {
	s.once.Do(func() { close(s.done) })
}

func (s *AssessmentService) sweep() {
	ticker := time.NewTicker(sessionSweepInterval)
	defer ticker.Stop()
	for {
		select {
		case <-s.done:
			return
		case <-ticker.C:
			now := time.Now()
			s.mu.Lock()
			for id, entry := range s.sessions {
				if now.After(entry.expiresAt) {
					delete(s.sessions, id)
				}
			}
			s.mu.Unlock()
		}
	}
}

// GetQuestions returns the full question bank in presentation order.
func (s *AssessmentService) GetQuestions() ([]*model.AssessmentQuestion, error) {
	return s.assessmentRepo.ListQuestions()
}

// SaveResultInput is the persisted form of a client-scored quiz.
type SaveResultInput struct {
	Answers         []model.Answer `json:"answers" binding:"required"`
	CategoryScores  map[string]int `json:"categoryScores"`
	OverallScore    int            `json:"overallScore"`
	RecommendedPath string         `json:"recommendedPath"`
}

func (s *AssessmentService) SaveResult(userID uint, input SaveResultInput) (*model.AssessmentResult, error) {
	answersJSON, err := json.Marshal(input.Answers)
	if err != nil {
		return nil, err
	}
	scoresJSON, err := json.Marshal(input.CategoryScores)
	if err != nil {
		return nil, err
	}

	result := &model.AssessmentResult{
		UserID:          userID,
		Answers:         answersJSON,
		CategoryScores:  scoresJSON,
		OverallScore:    input.OverallScore,
		RecommendedPath: input.RecommendedPath,
		CompletedAt:     time.Now(),
	}
	if err := s.assessmentRepo.SaveResult(result); err != nil {
		return nil, err
	}
	return result, nil
}

func (s *AssessmentService) GetResults(userID uint) ([]*model.AssessmentResult, error) {
	return s.assessmentRepo.ListResultsByUser(userID)
}

// CreateSession starts a new quiz session over the current question
// bank and returns its initial view.
func (s *AssessmentService) CreateSession() (*SessionView, error) {
	questions, err := s.assessmentRepo.ListQuestions()
	if err != nil {
		return nil, err
	}

	session, err := NewSession(questions)
	if err != nil {
		return nil, err
	}
	if err := session.Start(); err != nil {
		return nil, err
	}

	id := model.GenerateUUID()
	entry := &sessionEntry{
		session:   session,
		expiresAt: time.Now().Add(sessionTTL),
	}

	s.mu.Lock()
	s.sessions[id] = entry
	s.mu.Unlock()

	return s.view(id, entry), nil
}

func (s *AssessmentService) lookup(id string) (*sessionEntry, error) {
	s.mu.Lock()
	entry, ok := s.sessions[id]
	s.mu.Unlock()
	if !ok {
		return nil, util.ErrSessionNotFound
	}
	if time.Now().After(entry.expiresAt) {
		s.mu.Lock()
		delete(s.sessions, id)
		s.mu.Unlock()
		return nil, util.ErrSessionNotFound
	}
	return entry, nil
}

// view renders the session snapshot. Callers must hold the entry lock
// or be the only referent.
func (s *AssessmentService) view(id string, entry *sessionEntry) *SessionView {
	sess := entry.session
	v := &SessionView{
		ID:             id,
		State:          sess.State(),
		QuestionNumber: sess.CurrentIndex() + 1,
		TotalQuestions: sess.Total(),
		Progress:       sess.Progress(),
		Submitted:      sess.Submitted(),
	}

	if q := sess.CurrentQuestion(); q != nil {
		qv := &QuestionView{
			ID:       q.ID,
			Question: q.Question,
			Options:  []string(q.Options),
			Category: q.Category,
		}
		if sess.Submitted() {
			qv.Feedback = make(map[int]string, len(q.Options))
			for i := range q.Options {
				qv.Feedback[i] = string(sess.Feedback(i))
			}
		}
		v.Question = qv
	}

	if sel := sess.Selected(); sel >= 0 {
		v.Selected = &sel
	}
	return v
}

func (s *AssessmentService) GetSession(id string) (*SessionView, error) {
	entry, err := s.lookup(id)
	if err != nil {
		return nil, err
	}
	entry.mu.Lock()
	defer entry.mu.Unlock()
	return s.view(id, entry), nil
}

func (s *AssessmentService) SelectAnswer(id string, option int) (*SessionView, error) {
	entry, err := s.lookup(id)
	if err != nil {
		return nil, err
	}
	entry.mu.Lock()
	defer entry.mu.Unlock()
	if err := entry.session.Select(option); err != nil {
		return nil, err
	}
	return s.view(id, entry), nil
}

func (s *AssessmentService) SubmitAnswer(id string) (*SessionView, error) {
	entry, err := s.lookup(id)
	if err != nil {
		return nil, err
	}
	entry.mu.Lock()
	defer entry.mu.Unlock()
	if err := entry.session.SubmitAnswer(); err != nil {
		return nil, err
	}
	return s.view(id, entry), nil
}

func (s *AssessmentService) AdvanceSession(id string) (*SessionView, error) {
	entry, err := s.lookup(id)
	if err != nil {
		return nil, err
	}
	entry.mu.Lock()
	defer entry.mu.Unlock()
	if err := entry.session.Advance(); err != nil {
		return nil, err
	}
	return s.view(id, entry), nil
}

func (s *AssessmentService) SessionResult(id string) (*SessionResult, error) {
	entry, err := s.lookup(id)
	if err != nil {
		return nil, err
	}
	entry.mu.Lock()
	defer entry.mu.Unlock()
	return entry.session.Result()
}

// RequestRecommendation generates a path recommendation for a scored
// session. At most one request per session is in flight; a second
// call while one runs returns ErrRequestInFlight. A response arriving
// after the session was deleted and recreated is discarded.
func (s *AssessmentService) RequestRecommendation(ctx context.Context, id string) (*Recommendation, error) {
	entry, err := s.lookup(id)
	if err != nil {
		return nil, err
	}

	entry.mu.Lock()
	result, err := entry.session.Result()
	if err != nil {
		entry.mu.Unlock()
		return nil, err
	}
	if entry.recommendation != nil {
		rec := entry.recommendation
		entry.mu.Unlock()
		return rec, nil
	}
	if entry.inFlight {
		entry.mu.Unlock()
		return nil, util.ErrRequestInFlight
	}
	entry.inFlight = true
	generation := entry.generation
	entry.mu.Unlock()

	skills := make([]string, 0, len(result.CategoryScores))
	for _, cs := range result.CategoryScores {
		if cs.Score >= 50 {
			skills = append(skills, cs.Label)
		}
	}
	if len(skills) == 0 {
		skills = append(skills, result.StrongestCategory.Label())
	}

	rec, err := s.recommender.RecommendPath(ctx, skills, string(result.Level))

	entry.mu.Lock()
	defer entry.mu.Unlock()
	entry.inFlight = false
	if err != nil {
		return nil, err
	}
	if entry.generation != generation {
		// Session was reset while the request ran; drop the response.
		logger.Log.Debug("dropping stale recommendation", zap.String("session", id))
		return nil, util.ErrSessionNotFound
	}
	entry.recommendation = rec
	return rec, nil
}

// DeleteSession removes a session. Any in-flight recommendation for
// it becomes stale.
func (s *AssessmentService) DeleteSession(id string) error {
	s.mu.Lock()
	entry, ok := s.sessions[id]
	if ok {
		delete(s.sessions, id)
	}
	s.mu.Unlock()
	if !ok {
		return util.ErrSessionNotFound
	}

	entry.mu.Lock()
	entry.generation++
	entry.recommendation = nil
	entry.mu.Unlock()
	return nil
}
