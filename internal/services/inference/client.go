package inference

import (
	"context"
	"fmt"

	openai "github.com/sashabaranov/go-openai"
	"go.uber.org/zap"

	"home-inspection-assistant/internal/config"
	"home-inspection-assistant/internal/models"
)

// Client is a synchronous wrapper around an OpenAI-compatible
// chat-completions endpoint. One attempt per call, no retries.
type Client struct {
	api    *openai.Client
	model  string
	logger *zap.Logger
}

func NewClient(cfg config.OpenAIConfig, logger *zap.Logger) (*Client, error) {
	if cfg.APIKey == "" {
		return nil, fmt.Errorf("OpenAI API key is required")
	}

	clientConfig := openai.DefaultConfig(cfg.APIKey)
	if cfg.BaseURL != "" {
		clientConfig.BaseURL = cfg.BaseURL
	}

	return &Client{
		api:    openai.NewClientWithConfig(clientConfig),
		model:  cfg.Model,
		logger: logger,
	}, nil
}

// Send executes one built request and always returns a result value;
// transport, authentication and service errors surface as inference
// failures, never as errors past this boundary.
func (c *Client) Send(ctx context.Context, request *models.AnalysisRequest) models.AnalysisResult {
	resp, err := c.api.CreateChatCompletion(ctx, openai.ChatCompletionRequest{
		Model:     c.model,
		Messages:  []openai.ChatCompletionMessage{c.buildMessage(request)},
		MaxTokens: request.MaxTokens,
	})
	if err != nil {
		c.logger.Error("Inference request failed",
			zap.String("model", c.model),
			zap.String("kind", string(request.Kind)),
			zap.Error(err),
		)
		return models.Failed(models.FailureInference, err.Error())
	}

	if len(resp.Choices) == 0 {
		c.logger.Error("Inference response contained no choices",
			zap.String("model", c.model),
		)
		return models.Failed(models.FailureInference, "inference response contained no choices")
	}

	return models.Success(resp.Choices[0].Message.Content)
}

func (c *Client) buildMessage(request *models.AnalysisRequest) openai.ChatCompletionMessage {
	if request.Kind == models.KindImageAnalysis {
		return openai.ChatCompletionMessage{
			Role: openai.ChatMessageRoleUser,
			MultiContent: []openai.ChatMessagePart{
				{
					Type: openai.ChatMessagePartTypeText,
					Text: request.Message,
				},
				{
					Type: openai.ChatMessagePartTypeImageURL,
					ImageURL: &openai.ChatMessageImageURL{
						URL: request.ImageDataURI,
					},
				},
			},
		}
	}

	return openai.ChatCompletionMessage{
		Role:    openai.ChatMessageRoleUser,
		Content: request.Message,
	}
}

// Health reports whether the client is ready to issue requests.
func (c *Client) Health() string {
	if c.api == nil {
		return "not configured"
	}
	return "healthy"
}
