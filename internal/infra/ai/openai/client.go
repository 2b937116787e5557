package openai

import (
	"context"
	"encoding/base64"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"

	"github.com/sashabaranov/go-openai"
	"github.com/sashabaranov/go-openai/jsonschema"

	"github.com/bryanwahyu/chaos-engine/internal/domain/ai"
)

const maxTokens = 2048

// Client adapts an OpenAI-compatible API to ai.Provider. It has no file
// store, so multimodal correlation is unsupported.
type Client struct {
	*openai.Client
}

func NewClient(apiKey, baseURL string) *Client {
	cfg := openai.DefaultConfig(apiKey)
	if baseURL != "" {
		cfg.BaseURL = baseURL
	}
	return &Client{Client: openai.NewClientWithConfig(cfg)}
}

// Factory returns an ai.ProviderFactory building OpenAI clients.
func Factory(baseURL string) ai.ProviderFactory {
	return func(_ context.Context, apiKey string) (ai.Provider, error) {
		if apiKey == "" {
			return nil, fmt.Errorf("openai API key is required")
		}
		return NewClient(apiKey, baseURL), nil
	}
}

func (c *Client) Generate(ctx context.Context, req ai.GenerateRequest) (string, error) {
	if len(req.Files) > 0 {
		return "", fmt.Errorf("file attachments: %w", ai.ErrUnsupported)
	}
	resp, err := c.CreateChatCompletion(ctx, chatRequest(req))
	if err != nil {
		return "", fmt.Errorf("failed to create chat completion: %w", classify(err))
	}
	if len(resp.Choices) == 0 || resp.Choices[0].Message.Content == "" {
		return "", fmt.Errorf("empty response from %s", req.Model)
	}
	return resp.Choices[0].Message.Content, nil
}

func (c *Client) GenerateImage(ctx context.Context, req ai.ImageRequest) (*ai.Image, error) {
	n := req.NumberOfImages
	if n <= 0 {
		n = 1
	}
	resp, err := c.CreateImage(ctx, openai.ImageRequest{
		Prompt:         req.Prompt,
		Model:          req.Model,
		N:              n,
		Size:           sizeForAspect(req.AspectRatio),
		ResponseFormat: openai.CreateImageResponseFormatB64JSON,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create image: %w", classify(err))
	}
	if len(resp.Data) == 0 || resp.Data[0].B64JSON == "" {
		return nil, ai.ErrNoImage
	}
	data, err := base64.StdEncoding.DecodeString(resp.Data[0].B64JSON)
	if err != nil {
		return nil, fmt.Errorf("decode image: %w", err)
	}
	return &ai.Image{Bytes: data, MIMEType: "image/png"}, nil
}

func (c *Client) UploadFile(context.Context, io.Reader, string, string) (*ai.RemoteFile, error) {
	return nil, fmt.Errorf("upload file: %w", ai.ErrUnsupported)
}

func (c *Client) GetFile(context.Context, string) (*ai.RemoteFile, error) {
	return nil, fmt.Errorf("get file: %w", ai.ErrUnsupported)
}

func (c *Client) DeleteFile(context.Context, string) error {
	return fmt.Errorf("delete file: %w", ai.ErrUnsupported)
}

func chatRequest(req ai.GenerateRequest) openai.ChatCompletionRequest {
	out := openai.ChatCompletionRequest{
		Model: req.Model,
		Messages: []openai.ChatCompletionMessage{
			{Role: openai.ChatMessageRoleUser, Content: req.Prompt},
		},
	}
	if req.Schema != nil {
		def := toDefinition(req.Schema)
		out.ResponseFormat = &openai.ChatCompletionResponseFormat{
			Type: openai.ChatCompletionResponseFormatTypeJSONSchema,
			JSONSchema: &openai.ChatCompletionResponseFormatJSONSchema{
				Name:   "report",
				Schema: &def,
			},
		}
	}
	// For reasoning models (o1/o3/o4/gpt-5*) use MaxCompletionTokens instead of MaxTokens;
	// they also reject a custom temperature.
	if isReasoningModel(req.Model) {
		out.MaxCompletionTokens = maxTokens + int(req.ThinkingBudget)
		out.ReasoningEffort = reasoningEffort(req.ThinkingBudget)
	} else {
		out.MaxTokens = maxTokens
		out.Temperature = req.Temperature
	}
	return out
}

func isReasoningModel(model string) bool {
	return strings.HasPrefix(model, "o1") || strings.HasPrefix(model, "o3") || strings.HasPrefix(model, "o4") || strings.HasPrefix(model, "gpt-5")
}

// reasoningEffort maps a thinking budget onto the coarse effort levels.
func reasoningEffort(budget int32) string {
	switch {
	case budget <= 0:
		return ""
	case budget < 8000:
		return "low"
	case budget < 16000:
		return "medium"
	}
	return "high"
}

func sizeForAspect(aspect string) string {
	switch aspect {
	case "16:9", "4:3":
		return openai.CreateImageSize1792x1024
	case "9:16", "3:4":
		return openai.CreateImageSize1024x1792
	}
	return openai.CreateImageSize1024x1024
}

func toDefinition(s *ai.Schema) jsonschema.Definition {
	def := jsonschema.Definition{
		Description: s.Description,
		Enum:        s.Enum,
		Required:    s.Required,
	}
	switch s.Type {
	case ai.TypeObject:
		def.Type = jsonschema.Object
	case ai.TypeArray:
		def.Type = jsonschema.Array
	default:
		def.Type = jsonschema.String
	}
	if s.Items != nil {
		items := toDefinition(s.Items)
		def.Items = &items
	}
	if len(s.Properties) > 0 {
		def.Properties = make(map[string]jsonschema.Definition, len(s.Properties))
		for k, v := range s.Properties {
			def.Properties[k] = toDefinition(v)
		}
	}
	return def
}

func classify(err error) error {
	var apiErr *openai.APIError
	if errors.As(err, &apiErr) && apiErr.HTTPStatusCode == http.StatusTooManyRequests {
		return fmt.Errorf("%w: %s", ai.ErrQuotaExceeded, apiErr.Message)
	}
	return err
}
