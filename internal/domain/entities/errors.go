package entities

import "errors"

// Domain errors
var (
	ErrRecordingNotFound  = errors.New("recording not found")
	ErrTranscriptNotFound = errors.New("transcript not found")
	ErrAssessmentNotFound = errors.New("assessment not found")
	ErrJobNotFound        = errors.New("analysis job not found")

	ErrInvalidToken   = errors.New("invalid token")
	ErrUnauthorized   = errors.New("unauthorized")
	ErrInvalidRequest = errors.New("invalid request")
)
