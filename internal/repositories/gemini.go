package repositories

import (
	"context"
	"encoding/base64"
	"fmt"
	"net/http"
	"sync"

	"google.golang.org/genai"

	"validation-guide/internal/config"
)

// GenerateRequest is a single prompt-plus-image request for structured JSON output
type GenerateRequest struct {
	Prompt      string
	ImageBase64 string
	MIMEType    string
	Schema      *genai.Schema
}

// GeminiRepository handles generative model API interactions
type GeminiRepository struct {
	config *config.GeminiConfig

	mu     sync.Mutex
	client *genai.Client
}

// NewGeminiRepository creates a new Gemini repository. No connection is made
// until the first request.
func NewGeminiRepository(geminiConfig *config.GeminiConfig) *GeminiRepository {
	return &GeminiRepository{config: geminiConfig}
}

// GenerateJSON sends the prompt and inline image and returns the raw response text
func (r *GeminiRepository) GenerateJSON(ctx context.Context, req GenerateRequest) (string, error) {
	image, err := base64.StdEncoding.DecodeString(req.ImageBase64)
	if err != nil {
		return "", fmt.Errorf("failed to decode image payload: %w", err)
	}

	client, err := r.getClient(ctx)
	if err != nil {
		return "", err
	}

	parts := []*genai.Part{
		genai.NewPartFromText(req.Prompt),
		genai.NewPartFromBytes(image, req.MIMEType),
	}
	contents := []*genai.Content{genai.NewContentFromParts(parts, genai.RoleUser)}

	resp, err := client.Models.GenerateContent(ctx, r.config.Model, contents, &genai.GenerateContentConfig{
		ResponseMIMEType: "application/json",
		ResponseSchema:   req.Schema,
	})
	if err != nil {
		return "", fmt.Errorf("generate content failed: %w", err)
	}

	return resp.Text(), nil
}

func (r *GeminiRepository) getClient(ctx context.Context) (*genai.Client, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if r.client != nil {
		return r.client, nil
	}
	if r.config.APIKey == "" {
		return nil, fmt.Errorf("gemini API key is required")
	}

	client, err := genai.NewClient(ctx, &genai.ClientConfig{
		APIKey:      r.config.APIKey,
		Backend:     genai.BackendGeminiAPI,
		HTTPClient:  &http.Client{Timeout: r.config.Timeout()},
		HTTPOptions: genai.HTTPOptions{BaseURL: r.config.BaseURL},
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create GenAI client: %w", err)
	}

	r.client = client
	return client, nil
}
