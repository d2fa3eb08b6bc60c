package services

import (
	"context"
	"errors"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"validation-guide/internal/config"
	"validation-guide/internal/models"
	"validation-guide/internal/repositories"
)

type fakeGenerator struct {
	mu       sync.Mutex
	text     string
	err      error
	requests []repositories.GenerateRequest
}

func (f *fakeGenerator) GenerateJSON(_ context.Context, req repositories.GenerateRequest) (string, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.requests = append(f.requests, req)
	return f.text, f.err
}

func (f *fakeGenerator) calls() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return len(f.requests)
}

func newService(key string, gen *fakeGenerator) *AIService {
	return NewAIService(&config.GeminiConfig{APIKey: key, Model: "gemini-test"}, gen, nil)
}

func TestAnalyzeReturnsParsedResult(t *testing.T) {
	gen := &fakeGenerator{text: `{"method":"Landing Page Test","confidence":"high","reasoning":"Signup form above the fold.","suggestions":"Track conversion."}`}
	svc := newService("key", gen)

	result, err := svc.Analyze(context.Background(), "aGVsbG8=")
	require.NoError(t, err)

	assert.Equal(t, &models.AnalysisResult{
		Method:      "Landing Page Test",
		Confidence:  models.ConfidenceHigh,
		Reasoning:   "Signup form above the fold.",
		Suggestions: "Track conversion.",
	}, result)

	require.Equal(t, 1, gen.calls())
	req := gen.requests[0]
	assert.Equal(t, "aGVsbG8=", req.ImageBase64)
	assert.Equal(t, ImageMIMEType, req.MIMEType)
	assert.Contains(t, req.Prompt, "Landing Page Test")
	assert.Contains(t, req.Prompt, "Sandbox Testing")
	require.NotNil(t, req.Schema)
	assert.ElementsMatch(t, []string{"method", "confidence", "reasoning", "suggestions"}, req.Schema.Required)
	assert.Equal(t, []string{"high", "medium", "low"}, req.Schema.Properties["confidence"].Enum)
}

func TestAnalyzeStripsMarkdownFences(t *testing.T) {
	gen := &fakeGenerator{text: "```json\n{\"method\":\"Mockups\",\"confidence\":\"low\",\"reasoning\":\"r\",\"suggestions\":\"s\"}\n```"}
	result, err := newService("key", gen).Analyze(context.Background(), "aGVsbG8=")
	require.NoError(t, err)
	assert.Equal(t, models.ConfidenceLow, result.Confidence)
}

func TestAnalyzeWithoutCredentialMakesNoCall(t *testing.T) {
	gen := &fakeGenerator{text: `{}`}
	_, err := newService("", gen).Analyze(context.Background(), "aGVsbG8=")

	require.Error(t, err)
	assert.ErrorIs(t, err, ErrCredentialMissing)
	assert.ErrorIs(t, err, ErrAnalysisFailed)
	assert.Zero(t, gen.calls())
}

func TestAnalyzeEmptyPayload(t *testing.T) {
	gen := &fakeGenerator{}
	_, err := newService("key", gen).Analyze(context.Background(), "")
	assert.ErrorIs(t, err, ErrEmptyPayload)
	assert.Zero(t, gen.calls())
}

func TestAnalyzeFailures(t *testing.T) {
	tests := []struct {
		name  string
		text  string
		err   error
		cause error
	}{
		{name: "empty text", text: "", cause: ErrNoResponse},
		{name: "whitespace text", text: "  \n", cause: ErrNoResponse},
		{name: "not json", text: "I think it is a prototype", cause: ErrMalformedResponse},
		{name: "confidence outside enum", text: `{"method":"Prototype","confidence":"certain","reasoning":"r","suggestions":"s"}`, cause: ErrMalformedResponse},
		{name: "missing field", text: `{"method":"Prototype","confidence":"high","reasoning":"r"}`, cause: ErrMalformedResponse},
		{name: "transport error", err: errors.New("connection reset")},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			gen := &fakeGenerator{text: tt.text, err: tt.err}
			result, err := newService("key", gen).Analyze(context.Background(), "aGVsbG8=")

			assert.Nil(t, result)
			require.Error(t, err)
			assert.ErrorIs(t, err, ErrAnalysisFailed)
			if tt.cause != nil {
				assert.ErrorIs(t, err, tt.cause)
			}
			if tt.err != nil {
				assert.ErrorIs(t, err, tt.err)
			}

			var analysisErr *AnalysisError
			require.ErrorAs(t, err, &analysisErr)
			assert.Equal(t, FailureMessage, analysisErr.UserMessage())
			assert.Equal(t, 1, gen.calls(), "no automatic retries")
		})
	}
}
