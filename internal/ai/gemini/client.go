// Package gemini implements ai.ChatProvider on the Google Gen AI SDK.
package gemini

import (
	"context"
	"fmt"

	"google.golang.org/genai"

	"github.com/yegors/eco-flight/internal/ai"
	"github.com/yegors/eco-flight/pkg/logger"
)

// Client represents a Google Gemini API client
type Client struct {
	genai  *genai.Client
	logger *logger.Logger
}

// NewClient creates a new Gemini client using the Gemini API backend.
func NewClient(ctx context.Context, apiKey string, log *logger.Logger) (*Client, error) {
	c, err := genai.NewClient(ctx, &genai.ClientConfig{
		APIKey:  apiKey,
		Backend: genai.BackendGeminiAPI,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create gemini client: %w", err)
	}

	return &Client{
		genai:  c,
		logger: log.Named("gemini"),
	}, nil
}

// ChatCompletion sends a conversation and returns the response text.
// A "system" role message becomes the system instruction; "assistant"
// messages map to the model role.
func (c *Client) ChatCompletion(ctx context.Context, messages []ai.ChatMessage, config ai.ChatConfig) (string, error) {
	var contents []*genai.Content
	var systemInstruction *genai.Content

	for _, msg := range messages {
		switch msg.Role {
		case "system":
			systemInstruction = genai.NewContentFromText(msg.Content, genai.RoleUser)
		case "assistant":
			contents = append(contents, genai.NewContentFromText(msg.Content, genai.RoleModel))
		default:
			contents = append(contents, genai.NewContentFromText(msg.Content, genai.RoleUser))
		}
	}

	genCfg := &genai.GenerateContentConfig{
		MaxOutputTokens:   int32(config.MaxTokens),
		SystemInstruction: systemInstruction,
	}
	if config.Temperature > 0 {
		genCfg.Temperature = genai.Ptr(float32(config.Temperature))
	}

	c.logger.Debug("Sending generate content request",
		logger.String("model", config.Model),
		logger.Int("message_count", len(messages)))

	resp, err := c.genai.Models.GenerateContent(ctx, config.Model, contents, genCfg)
	if err != nil {
		return "", fmt.Errorf("gemini chat failed: %w", err)
	}

	text := resp.Text()
	if text == "" {
		return "", fmt.Errorf("no content in gemini response")
	}

	return text, nil
}
