package util

import "errors"

var (
	ErrUserNotFound           = errors.New("user not found")
	ErrEmailRegistered        = errors.New("email already registered")
	ErrInvalidCredentials     = errors.New("invalid credentials")
	ErrLessonNotFound         = errors.New("lesson not found")
	ErrSectionNotFound        = errors.New("section not found")
	ErrDiagnosticNotFound     = errors.New("diagnostic question not found")
	ErrExerciseNotFound       = errors.New("exercise not found")
	ErrMissingAnswer          = errors.New("answer is required")
	ErrInvalidAnswerShape     = errors.New("answer does not match the question shape")
	ErrMalformedCorrectAnswer = errors.New("stored correct answer is malformed")
	ErrInvalidLevel           = errors.New("invalid level")
)
