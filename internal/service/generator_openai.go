package service

import (
	"context"
	"errors"
	"log/slog"

	"finlit_academy/internal/config"
	"finlit_academy/internal/middleware"

	openai "github.com/sashabaranov/go-openai"
)

// OpenAIGenerator は Chat Completions API で問題文を生成する実装です
type OpenAIGenerator struct {
	client *openai.Client
	cfg    *config.GeneratorConfig
}

func NewOpenAIGenerator(cfg *config.GeneratorConfig) *OpenAIGenerator {
	clientCfg := openai.DefaultConfig(cfg.APIKey)
	if cfg.BaseURL != "" {
		slog.Info("Configuring OpenAI client with custom base URL.", "base_url", cfg.BaseURL)
		clientCfg.BaseURL = cfg.BaseURL
	}
	return &OpenAIGenerator{
		client: openai.NewClientWithConfig(clientCfg),
		cfg:    cfg,
	}
}

// Generate は会話全体を送り、最初の候補の本文を返す
func (g *OpenAIGenerator) Generate(ctx context.Context, messages []ChatMessage) (string, error) {
	logger := middleware.GetLogger(ctx)

	req := openai.ChatCompletionRequest{
		Model:       g.cfg.Model,
		Temperature: g.cfg.Temperature,
		MaxTokens:   g.cfg.MaxTokens,
		Messages:    make([]openai.ChatCompletionMessage, 0, len(messages)),
	}
	for _, m := range messages {
		req.Messages = append(req.Messages, openai.ChatCompletionMessage{Role: m.Role, Content: m.Content})
	}

	logger.Debug("Requesting chat completion", "model", req.Model, "turns", len(req.Messages))

	resp, err := g.client.CreateChatCompletion(ctx, req)
	if err != nil {
		logger.Error("Failed to create chat completion", "error", err, "model", req.Model)
		return "", err
	}
	if len(resp.Choices) == 0 {
		logger.Error("Chat completion returned no choices", "model", req.Model)
		return "", errors.New("openai: empty choices")
	}

	logger.Info("Chat completion received", "model", resp.Model, "total_tokens", resp.Usage.TotalTokens)
	return resp.Choices[0].Message.Content, nil
}
