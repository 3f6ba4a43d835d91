package domain

import "errors"

// Sentinel errors for the registration workflow.
var (
	ErrUnknownField       = errors.New("unknown form field")
	ErrSubmissionInFlight = errors.New("a submission is already in progress")
	ErrRegistrationFailed = errors.New("registration request failed")
)
