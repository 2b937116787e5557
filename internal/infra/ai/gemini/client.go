package gemini

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"

	"google.golang.org/genai"

	"github.com/bryanwahyu/chaos-engine/internal/domain/ai"
)

// Client adapts the Gemini API to ai.Provider.
type Client struct {
	genai *genai.Client
}

// NewClient creates a Gemini API client for apiKey. baseURL is optional and
// only set when pointing at a proxy or a test server.
func NewClient(ctx context.Context, apiKey, baseURL string) (*Client, error) {
	if apiKey == "" {
		return nil, fmt.Errorf("gemini API key is required")
	}
	cc := &genai.ClientConfig{
		APIKey:  apiKey,
		Backend: genai.BackendGeminiAPI,
	}
	if baseURL != "" {
		cc.HTTPOptions = genai.HTTPOptions{BaseURL: baseURL}
	}
	cli, err := genai.NewClient(ctx, cc)
	if err != nil {
		return nil, fmt.Errorf("failed to create gemini client: %w", err)
	}
	return &Client{genai: cli}, nil
}

// Factory returns an ai.ProviderFactory building Gemini clients.
func Factory(baseURL string) ai.ProviderFactory {
	return func(ctx context.Context, apiKey string) (ai.Provider, error) {
		return NewClient(ctx, apiKey, baseURL)
	}
}

func (c *Client) Generate(ctx context.Context, req ai.GenerateRequest) (string, error) {
	resp, err := c.genai.Models.GenerateContent(ctx, req.Model, contents(req), contentConfig(req))
	if err != nil {
		return "", fmt.Errorf("failed to generate content: %w", classify(err))
	}
	text := resp.Text()
	if text == "" {
		return "", fmt.Errorf("empty response from %s", req.Model)
	}
	return text, nil
}

func (c *Client) GenerateImage(ctx context.Context, req ai.ImageRequest) (*ai.Image, error) {
	resp, err := c.genai.Models.GenerateImages(ctx, req.Model, req.Prompt, imageConfig(req))
	if err != nil {
		return nil, fmt.Errorf("failed to generate image: %w", classify(err))
	}
	if len(resp.GeneratedImages) == 0 || resp.GeneratedImages[0].Image == nil || len(resp.GeneratedImages[0].Image.ImageBytes) == 0 {
		return nil, ai.ErrNoImage
	}
	img := resp.GeneratedImages[0].Image
	return &ai.Image{Bytes: img.ImageBytes, MIMEType: img.MIMEType}, nil
}

func (c *Client) UploadFile(ctx context.Context, r io.Reader, mimeType, displayName string) (*ai.RemoteFile, error) {
	f, err := c.genai.Files.Upload(ctx, r, &genai.UploadFileConfig{
		MIMEType:    mimeType,
		DisplayName: displayName,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to upload file: %w", classify(err))
	}
	return remoteFile(f), nil
}

func (c *Client) GetFile(ctx context.Context, name string) (*ai.RemoteFile, error) {
	f, err := c.genai.Files.Get(ctx, name, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to get file %s: %w", name, classify(err))
	}
	return remoteFile(f), nil
}

func (c *Client) DeleteFile(ctx context.Context, name string) error {
	if _, err := c.genai.Files.Delete(ctx, name, nil); err != nil {
		return fmt.Errorf("failed to delete file %s: %w", name, classify(err))
	}
	return nil
}

// contentConfig always asks for JSON when a schema is set and attaches a
// thinking budget only when the attempt asks for one.
func contentConfig(req ai.GenerateRequest) *genai.GenerateContentConfig {
	cfg := &genai.GenerateContentConfig{
		Temperature: genai.Ptr(req.Temperature),
	}
	if req.Schema != nil {
		cfg.ResponseMIMEType = "application/json"
		cfg.ResponseSchema = toSchema(req.Schema)
	}
	if req.ThinkingBudget > 0 {
		cfg.ThinkingConfig = &genai.ThinkingConfig{ThinkingBudget: genai.Ptr(req.ThinkingBudget)}
	}
	return cfg
}

func contents(req ai.GenerateRequest) []*genai.Content {
	if len(req.Files) == 0 {
		return genai.Text(req.Prompt)
	}
	parts := make([]*genai.Part, 0, len(req.Files)+1)
	for _, f := range req.Files {
		parts = append(parts, genai.NewPartFromURI(f.URI, f.MIMEType))
	}
	parts = append(parts, genai.NewPartFromText(req.Prompt))
	return []*genai.Content{genai.NewContentFromParts(parts, genai.RoleUser)}
}

func imageConfig(req ai.ImageRequest) *genai.GenerateImagesConfig {
	n := req.NumberOfImages
	if n <= 0 {
		n = 1
	}
	return &genai.GenerateImagesConfig{
		NumberOfImages:    int32(n),
		AspectRatio:       req.AspectRatio,
		SafetyFilterLevel: genai.SafetyFilterLevel(req.SafetyFilterLevel),
		PersonGeneration:  genai.PersonGeneration(req.PersonGeneration),
	}
}

func toSchema(s *ai.Schema) *genai.Schema {
	if s == nil {
		return nil
	}
	out := &genai.Schema{
		Description: s.Description,
		Enum:        s.Enum,
		Required:    s.Required,
		Items:       toSchema(s.Items),
	}
	switch s.Type {
	case ai.TypeObject:
		out.Type = genai.TypeObject
	case ai.TypeArray:
		out.Type = genai.TypeArray
	default:
		out.Type = genai.TypeString
	}
	if len(s.Properties) > 0 {
		out.Properties = make(map[string]*genai.Schema, len(s.Properties))
		for k, v := range s.Properties {
			out.Properties[k] = toSchema(v)
		}
	}
	return out
}

func remoteFile(f *genai.File) *ai.RemoteFile {
	out := &ai.RemoteFile{
		Name:     f.Name,
		URI:      f.URI,
		MIMEType: f.MIMEType,
	}
	switch f.State {
	case genai.FileStateProcessing:
		out.State = ai.FileStateProcessing
	case genai.FileStateActive:
		out.State = ai.FileStateActive
	case genai.FileStateFailed:
		out.State = ai.FileStateFailed
	default:
		out.State = ai.FileStateUnknown
	}
	if f.Error != nil {
		out.Error = f.Error.Message
	}
	return out
}

// classify maps provider quota errors onto ai.ErrQuotaExceeded and keeps the
// original error in the chain.
func classify(err error) error {
	var apiErr genai.APIError
	if errors.As(err, &apiErr) && (apiErr.Code == http.StatusTooManyRequests || apiErr.Status == "RESOURCE_EXHAUSTED") {
		return fmt.Errorf("%w: %s", ai.ErrQuotaExceeded, apiErr.Error())
	}
	return err
}
