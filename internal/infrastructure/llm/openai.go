package llm

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/sashabaranov/go-openai"
)

const DeepSeekBaseURL = "https://api.deepseek.com/v1"

// OpenAIClient talks to any OpenAI compatible chat completion endpoint
// (OpenAI, DeepSeek, local gateways).
type OpenAIClient struct {
	apiKey    string
	modelName string
	client    *openai.Client
}

func NewOpenAIClient(apiKey, baseURL, modelName string) *OpenAIClient {
	conf := openai.DefaultConfig(apiKey)
	if baseURL != "" {
		conf.BaseURL = baseURL
	}
	if modelName == "" {
		modelName = openai.GPT4oMini
	}

	return &OpenAIClient{
		apiKey:    apiKey,
		modelName: modelName,
		client:    openai.NewClientWithConfig(conf),
	}
}

func (c *OpenAIClient) Generate(ctx context.Context, system, prompt string) (string, error) {
	if c.apiKey == "" {
		return "", ErrMissingAPIKey
	}

	req := openai.ChatCompletionRequest{
		Model: c.modelName,
		Messages: []openai.ChatCompletionMessage{
			{Role: openai.ChatMessageRoleSystem, Content: system},
			{Role: openai.ChatMessageRoleUser, Content: prompt},
		},
		// JSON mode: the reply is a single JSON object
		ResponseFormat: &openai.ChatCompletionResponseFormat{
			Type: openai.ChatCompletionResponseFormatTypeJSONObject,
		},
		Temperature: 0.2,
	}

	resp, err := c.client.CreateChatCompletion(ctx, req)
	if err != nil {
		var apiErr *openai.APIError
		if errors.As(err, &apiErr) {
			slog.Error("model API error", "model", c.modelName, "status", apiErr.HTTPStatusCode, "err", apiErr.Message)
		}
		return "", fmt.Errorf("chat completion: %w", err)
	}
	if len(resp.Choices) == 0 {
		return "", errors.New("chat completion: no choices returned")
	}

	slog.Debug("model reply received",
		"model", resp.Model,
		"prompt_tokens", resp.Usage.PromptTokens,
		"completion_tokens", resp.Usage.CompletionTokens)

	return resp.Choices[0].Message.Content, nil
}
