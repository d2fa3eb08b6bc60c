package services

import "errors"

// FailureMessage is the only text shown to users when an analysis fails
const FailureMessage = "Failed to analyze image. Please try again."

var (
	// ErrAnalysisFailed matches every error returned by AIService.Analyze
	ErrAnalysisFailed = errors.New("analysis failed")

	ErrEmptyPayload      = errors.New("no image payload to analyze")
	ErrCredentialMissing = errors.New("API key not found")
	ErrNoResponse        = errors.New("no response text received from model")
	ErrMalformedResponse = errors.New("malformed model response")
)

// AnalysisError collapses every analysis failure into one user-facing message
// while keeping the cause available to errors.Is and to logs.
type AnalysisError struct {
	Cause error
}

func (e *AnalysisError) Error() string {
	return "analysis failed: " + e.Cause.Error()
}

func (e *AnalysisError) Unwrap() error {
	return e.Cause
}

func (e *AnalysisError) Is(target error) bool {
	return target == ErrAnalysisFailed
}

// UserMessage returns the text to display for this failure
func (e *AnalysisError) UserMessage() string {
	return FailureMessage
}

func analysisFailure(cause error) error {
	return &AnalysisError{Cause: cause}
}
