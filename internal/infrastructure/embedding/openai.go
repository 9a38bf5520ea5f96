package embedding

import (
	"context"
	"errors"
	"fmt"

	"github.com/sashabaranov/go-openai"
)

type OpenAIClient struct {
	apiKey string
	model  openai.EmbeddingModel
	client *openai.Client
}

// NewOpenAIClient defaults to text-embedding-3-small (1536 dimensions).
func NewOpenAIClient(apiKey, baseURL, model string) *OpenAIClient {
	conf := openai.DefaultConfig(apiKey)
	if baseURL != "" {
		conf.BaseURL = baseURL
	}
	if model == "" {
		model = string(openai.SmallEmbedding3)
	}
	return &OpenAIClient{
		apiKey: apiKey,
		model:  openai.EmbeddingModel(model),
		client: openai.NewClientWithConfig(conf),
	}
}

func (c *OpenAIClient) GetVector(ctx context.Context, text string) ([]float32, error) {
	if c.apiKey == "" {
		return nil, ErrMissingAPIKey
	}

	resp, err := c.client.CreateEmbeddings(ctx, openai.EmbeddingRequest{
		Input: []string{text},
		Model: c.model,
	})
	if err != nil {
		return nil, fmt.Errorf("create embeddings: %w", err)
	}
	if len(resp.Data) == 0 {
		return nil, errors.New("empty embedding data returned")
	}
	return resp.Data[0].Embedding, nil
}
