package services

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/kaptinlin/jsonschema"
	"go.uber.org/zap"
	"google.golang.org/genai"

	"validation-guide/internal/catalog"
	"validation-guide/internal/config"
	"validation-guide/internal/models"
	"validation-guide/internal/repositories"
)

// ImageMIMEType is the media type the inline image is tagged with
const ImageMIMEType = "image/png"

// ContentGenerator sends a structured-output request to a generative model
type ContentGenerator interface {
	GenerateJSON(ctx context.Context, req repositories.GenerateRequest) (string, error)
}

// AIService handles AI-powered screenshot classification
type AIService struct {
	config    *config.GeminiConfig
	generator ContentGenerator
	logger    *zap.Logger
}

// NewAIService creates a new AI service. The credential is taken from
// geminiConfig and checked on every call.
func NewAIService(geminiConfig *config.GeminiConfig, generator ContentGenerator, logger *zap.Logger) *AIService {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &AIService{
		config:    geminiConfig,
		generator: generator,
		logger:    logger,
	}
}

var resultSchema = &genai.Schema{
	Type: genai.TypeObject,
	Properties: map[string]*genai.Schema{
		"method":      {Type: genai.TypeString},
		"confidence":  {Type: genai.TypeString, Enum: confidenceValues()},
		"reasoning":   {Type: genai.TypeString},
		"suggestions": {Type: genai.TypeString},
	},
	Required: []string{"method", "confidence", "reasoning", "suggestions"},
}

// resultValidator checks decoded responses against the same shape requested from the model
var resultValidator = mustCompileSchema(map[string]any{
	"type": "object",
	"properties": map[string]any{
		"method":      map[string]any{"type": "string"},
		"confidence":  map[string]any{"type": "string", "enum": confidenceValues()},
		"reasoning":   map[string]any{"type": "string"},
		"suggestions": map[string]any{"type": "string"},
	},
	"required": []string{"method", "confidence", "reasoning", "suggestions"},
})

func confidenceValues() []string {
	values := make([]string, len(models.Confidences))
	for i, c := range models.Confidences {
		values[i] = string(c)
	}
	return values
}

func mustCompileSchema(schema map[string]any) *jsonschema.Schema {
	raw, err := json.Marshal(schema)
	if err != nil {
		panic(fmt.Sprintf("failed to marshal schema: %v", err))
	}
	compiled, err := jsonschema.NewCompiler().Compile(raw)
	if err != nil {
		panic(fmt.Sprintf("invalid JSON Schema: %v", err))
	}
	return compiled
}

// BuildPrompt returns the fixed classification instruction
func BuildPrompt() string {
	return fmt.Sprintf(`You are an expert in project validation methods. Analyze the uploaded image and identify which validation method it represents.

The available methods are:
%s.

Return the result strictly in JSON format.`, strings.Join(catalog.RecognizedMethods(), ", "))
}

// Analyze classifies a base64 image payload. It makes at most one model call
// and never retries.
func (s *AIService) Analyze(ctx context.Context, payload string) (*models.AnalysisResult, error) {
	if payload == "" {
		return nil, analysisFailure(ErrEmptyPayload)
	}

	if !s.config.HasCredential() {
		s.logger.Warn("analysis skipped", zap.Error(ErrCredentialMissing))
		return nil, analysisFailure(ErrCredentialMissing)
	}

	s.logger.Debug("requesting image analysis",
		zap.String("model", s.config.Model),
		zap.Int("payload_bytes", len(payload)))

	text, err := s.generator.GenerateJSON(ctx, repositories.GenerateRequest{
		Prompt:      BuildPrompt(),
		ImageBase64: payload,
		MIMEType:    ImageMIMEType,
		Schema:      resultSchema,
	})
	if err != nil {
		s.logger.Error("gemini analysis error", zap.Error(err))
		return nil, analysisFailure(err)
	}

	if strings.TrimSpace(text) == "" {
		s.logger.Error("gemini analysis error", zap.Error(ErrNoResponse))
		return nil, analysisFailure(ErrNoResponse)
	}

	result, err := parseResult(text)
	if err != nil {
		s.logger.Error("gemini analysis error", zap.Error(err), zap.String("response", text))
		return nil, analysisFailure(err)
	}

	s.logger.Info("image analyzed",
		zap.String("method", result.Method),
		zap.String("confidence", string(result.Confidence)))
	return result, nil
}

// parseResult decodes and validates the model's JSON answer
func parseResult(text string) (*models.AnalysisResult, error) {
	responseText := strings.TrimSpace(text)

	// Remove any potential markdown formatting
	responseText = strings.TrimPrefix(responseText, "```json")
	responseText = strings.TrimPrefix(responseText, "```")
	responseText = strings.TrimSuffix(responseText, "```")
	responseText = strings.TrimSpace(responseText)

	var raw map[string]any
	if err := json.Unmarshal([]byte(responseText), &raw); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrMalformedResponse, err)
	}

	if result := resultValidator.Validate(raw); !result.IsValid() {
		var problems []string
		for field, detail := range result.Errors {
			problems = append(problems, fmt.Sprintf("%s: %s", field, detail.Message))
		}
		return nil, fmt.Errorf("%w: %s", ErrMalformedResponse, strings.Join(problems, "; "))
	}

	var analysis models.AnalysisResult
	if err := json.Unmarshal([]byte(responseText), &analysis); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrMalformedResponse, err)
	}

	return &analysis, nil
}
