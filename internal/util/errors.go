package util

import "errors"

var (
	ErrEmailRegistered    = errors.New("email already registered")
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrCourseNotFound     = errors.New("course not found")
	ErrPathNotFound       = errors.New("learning path not found")
	ErrProjectNotFound    = errors.New("project not found")
	ErrSessionNotFound    = errors.New("assessment session not found")
	ErrNoQuestions        = errors.New("question set is empty")
	ErrSessionNotStarted  = errors.New("session has not started")
	ErrInvalidOption      = errors.New("option index out of range")
	ErrNoSelection        = errors.New("no option selected")
	ErrAlreadySubmitted   = errors.New("answer already submitted for this question")
	ErrNotSubmitted       = errors.New("current question has no submitted answer")
	ErrSessionFinished    = errors.New("session is already scored")
	ErrSessionNotFinished = errors.New("session has unanswered questions")
	ErrSessionCorrupted   = errors.New("answer sequence does not match question sequence")
	ErrRequestInFlight    = errors.New("a recommendation request is already in flight")
)
