package llm

import (
	"context"
	"errors"
	"strings"
	"time"

	"talent-match/internal/config"
	"talent-match/internal/pkg/logger"

	"github.com/google/uuid"
	"github.com/openai/openai-go"
	"github.com/openai/openai-go/option"
)

var ErrEmptyCompletion = errors.New("llm returned no choices")

const (
	systemPrompt = `You are an assistant that helps HR representatives and managers match employees to internal tasks.
Understand the task requirements and the employee skills to make the best matches.
The user is looking to fill work with internal talent. Answer their request directly.`

	previewLength = 150
)

// Generator turns a prompt into free text.
type Generator interface {
	Generate(ctx context.Context, prompt string) (string, error)
}

// Client talks to any OpenAI-compatible chat completions endpoint. The
// default base URL is a local Ollama server.
type Client struct {
	client  *openai.Client
	model   string
	timeout time.Duration
	logger  *logger.Logger
}

func NewClient(cfg config.LLMConfig, log *logger.Logger) *Client {
	apiKey := cfg.APIKey
	if apiKey == "" {
		// Ollama ignores the key but the SDK requires one.
		apiKey = "ollama"
	}
	baseURL := cfg.BaseURL
	if !strings.HasSuffix(baseURL, "/") {
		// Relative request paths resolve against the last path segment.
		baseURL += "/"
	}
	c := openai.NewClient(
		option.WithBaseURL(baseURL),
		option.WithAPIKey(apiKey),
	)
	log = logger.OrNop(log)
	log.Info("llm client initialized", "model", cfg.Model, "base_url", cfg.BaseURL)
	return &Client{client: c, model: cfg.Model, timeout: cfg.Timeout, logger: log}
}

func (c *Client) Generate(ctx context.Context, prompt string) (string, error) {
	rid := uuid.NewString()[:8]
	if c.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, c.timeout)
		defer cancel()
	}

	c.logger.Debug("llm request", "rid", rid, "model", c.model, "prompt_len", len(prompt), "preview", truncate(prompt))
	start := time.Now()

	resp, err := c.client.Chat.Completions.New(ctx, openai.ChatCompletionNewParams{
		Messages: openai.F([]openai.ChatCompletionMessageParamUnion{
			openai.SystemMessage(systemPrompt),
			openai.UserMessage(prompt),
		}),
		Model: openai.F(c.model),
	})
	if err != nil {
		c.logger.Error("llm request failed", "rid", rid, "error", err)
		return "", err
	}
	if len(resp.Choices) == 0 {
		return "", ErrEmptyCompletion
	}

	out := resp.Choices[0].Message.Content
	c.logger.Debug("llm response", "rid", rid, "latency", time.Since(start), "response_len", len(out), "preview", truncate(out))
	return out, nil
}

func truncate(s string) string {
	s = strings.TrimSpace(s)
	if len(s) <= previewLength {
		return s
	}
	return s[:previewLength] + "..."
}
