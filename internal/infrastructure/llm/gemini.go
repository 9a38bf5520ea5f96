package llm

import (
	"context"
	"errors"
	"fmt"
	"sync"

	"google.golang.org/genai"
)

// GeminiClient calls the Gemini API through the genai SDK. The SDK client
// is created on first use so that a missing key never triggers its
// environment lookup or any network activity.
type GeminiClient struct {
	apiKey    string
	baseURL   string
	modelName string

	once    sync.Once
	client  *genai.Client
	initErr error
}

// NewGeminiClient builds a client for modelName. An empty baseURL uses the
// public Gemini API endpoint.
func NewGeminiClient(apiKey, baseURL, modelName string) *GeminiClient {
	if modelName == "" {
		modelName = "gemini-2.5-flash"
	}
	return &GeminiClient{apiKey: apiKey, baseURL: baseURL, modelName: modelName}
}

func (g *GeminiClient) init(ctx context.Context) error {
	g.once.Do(func() {
		g.client, g.initErr = genai.NewClient(ctx, &genai.ClientConfig{
			APIKey:      g.apiKey,
			Backend:     genai.BackendGeminiAPI,
			HTTPOptions: genai.HTTPOptions{BaseURL: g.baseURL},
		})
	})
	return g.initErr
}

func (g *GeminiClient) Generate(ctx context.Context, system, prompt string) (string, error) {
	if g.apiKey == "" {
		return "", ErrMissingAPIKey
	}
	if err := g.init(ctx); err != nil {
		return "", fmt.Errorf("create gemini client: %w", err)
	}

	result, err := g.client.Models.GenerateContent(ctx,
		g.modelName,
		genai.Text(prompt),
		&genai.GenerateContentConfig{
			SystemInstruction: genai.NewContentFromText(system, genai.RoleUser),
			ResponseMIMEType:  "application/json",
			Temperature:       genai.Ptr[float32](0.2),
		},
	)
	if err != nil {
		return "", fmt.Errorf("gemini generate: %w", err)
	}

	text := result.Text()
	if text == "" {
		return "", errors.New("gemini generate: empty response")
	}
	return text, nil
}
