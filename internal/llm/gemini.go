package llm

import (
	"context"
	"fmt"
	"strings"

	"google.golang.org/genai"
)

// GeminiClient implements TextGenerator using Google's Gemini API.
type GeminiClient struct {
	client *genai.Client
	model  string
}

// NewGeminiClient creates a new Gemini text generation client.
func NewGeminiClient(ctx context.Context, apiKey, model string) (*GeminiClient, error) {
	if apiKey == "" {
		return nil, fmt.Errorf("Gemini API key is required")
	}
	if model == "" {
		model = "gemini-2.0-flash"
	}

	client, err := genai.NewClient(ctx, &genai.ClientConfig{
		APIKey: apiKey,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create Gemini client: %w", err)
	}

	return &GeminiClient{client: client, model: model}, nil
}

// Generate runs a single-turn completion and returns the trimmed text.
func (c *GeminiClient) Generate(ctx context.Context, prompt string, maxTokens int32, temperature float32) (string, error) {
	cfg := &genai.GenerateContentConfig{
		MaxOutputTokens: maxTokens,
		Temperature:     genai.Ptr(temperature),
	}

	result, err := c.client.Models.GenerateContent(ctx, c.model, genai.Text(prompt), cfg)
	if err != nil {
		return "", fmt.Errorf("Gemini generate failed: %w", err)
	}

	text := strings.TrimSpace(result.Text())
	if text == "" {
		return "", fmt.Errorf("no text returned")
	}
	return text, nil
}

// Name returns the generator name.
func (c *GeminiClient) Name() string {
	return fmt.Sprintf("gemini:%s", c.model)
}
