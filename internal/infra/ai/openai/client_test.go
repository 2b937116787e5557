package openai

import (
	"context"
	"encoding/base64"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/sashabaranov/go-openai"
	"github.com/sashabaranov/go-openai/jsonschema"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bryanwahyu/chaos-engine/internal/domain/ai"
	"github.com/bryanwahyu/chaos-engine/internal/infra/ai/prompt"
)

func TestChatRequestReasoningModel(t *testing.T) {
	req := chatRequest(ai.GenerateRequest{
		Model:          "o3",
		Prompt:         "analyze",
		Temperature:    0.7,
		ThinkingBudget: 24000,
		Schema:         prompt.ReportSchema(),
	})
	assert.Equal(t, maxTokens+24000, req.MaxCompletionTokens)
	assert.Zero(t, req.MaxTokens)
	assert.Zero(t, req.Temperature)
	assert.Equal(t, "high", req.ReasoningEffort)
	require.NotNil(t, req.ResponseFormat)
	assert.Equal(t, openai.ChatCompletionResponseFormatTypeJSONSchema, req.ResponseFormat.Type)
	assert.Equal(t, "report", req.ResponseFormat.JSONSchema.Name)
	require.Len(t, req.Messages, 1)
	assert.Equal(t, "analyze", req.Messages[0].Content)
}

func TestChatRequestPlainModel(t *testing.T) {
	req := chatRequest(ai.GenerateRequest{Model: "gpt-4o", Prompt: "p", Temperature: 0.7})
	assert.Equal(t, maxTokens, req.MaxTokens)
	assert.Equal(t, float32(0.7), req.Temperature)
	assert.Empty(t, req.ReasoningEffort)
	assert.Nil(t, req.ResponseFormat)
}

func TestReasoningEffort(t *testing.T) {
	assert.Equal(t, "", reasoningEffort(0))
	assert.Equal(t, "low", reasoningEffort(4000))
	assert.Equal(t, "medium", reasoningEffort(8000))
	assert.Equal(t, "medium", reasoningEffort(12000))
	assert.Equal(t, "high", reasoningEffort(16000))
}

func TestSizeForAspect(t *testing.T) {
	assert.Equal(t, openai.CreateImageSize1792x1024, sizeForAspect("16:9"))
	assert.Equal(t, openai.CreateImageSize1024x1792, sizeForAspect("9:16"))
	assert.Equal(t, openai.CreateImageSize1024x1024, sizeForAspect("1:1"))
	assert.Equal(t, openai.CreateImageSize1024x1024, sizeForAspect(""))
}

func TestToDefinition(t *testing.T) {
	def := toDefinition(prompt.ReportSchema())
	assert.Equal(t, jsonschema.Object, def.Type)
	g := def.Properties["griefer"]
	assert.Equal(t, prompt.Severities, g.Properties["severity"].Enum)
	steps := g.Properties["exploit_steps"]
	assert.Equal(t, jsonschema.Array, steps.Type)
	require.NotNil(t, steps.Items)
	assert.Equal(t, jsonschema.String, steps.Items.Type)

	raw, err := json.Marshal(&def)
	require.NoError(t, err)
	assert.Contains(t, string(raw), `"required":["griefer","speedrunner","auditor"]`)
}

func TestFileOperationsUnsupported(t *testing.T) {
	c := NewClient("k", "")
	_, err := c.UploadFile(context.Background(), nil, "video/mp4", "x")
	assert.ErrorIs(t, err, ai.ErrUnsupported)
	_, err = c.GetFile(context.Background(), "x")
	assert.ErrorIs(t, err, ai.ErrUnsupported)
	assert.ErrorIs(t, c.DeleteFile(context.Background(), "x"), ai.ErrUnsupported)

	_, err = c.Generate(context.Background(), ai.GenerateRequest{Model: "gpt-4o", Files: []*ai.RemoteFile{{}}})
	assert.ErrorIs(t, err, ai.ErrUnsupported)
}

func TestFactoryRequiresKey(t *testing.T) {
	_, err := Factory("")(context.Background(), "")
	assert.Error(t, err)
	p, err := Factory("")(context.Background(), "k")
	require.NoError(t, err)
	assert.NotNil(t, p)
}

func newTestClient(t *testing.T, h http.HandlerFunc) *Client {
	t.Helper()
	srv := httptest.NewServer(h)
	t.Cleanup(srv.Close)
	return NewClient("test-key", srv.URL+"/v1")
}

func TestGenerateAgainstFakeAPI(t *testing.T) {
	var got openai.ChatCompletionRequest
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/v1/chat/completions", r.URL.Path)
		assert.Equal(t, "Bearer test-key", r.Header.Get("Authorization"))
		assert.NoError(t, json.NewDecoder(r.Body).Decode(&got))
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"choices":[{"index":0,"message":{"role":"assistant","content":"{\"ok\":true}"}}]}`))
	})

	text, err := c.Generate(context.Background(), ai.GenerateRequest{Model: "gpt-4o", Prompt: "p", Temperature: 0.7})
	require.NoError(t, err)
	assert.Equal(t, `{"ok":true}`, text)
	assert.Equal(t, "gpt-4o", got.Model)
}

func TestGenerateQuotaExceeded(t *testing.T) {
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusTooManyRequests)
		_, _ = w.Write([]byte(`{"error":{"message":"Rate limit reached","type":"requests","code":"rate_limit_exceeded"}}`))
	})

	_, err := c.Generate(context.Background(), ai.GenerateRequest{Model: "gpt-4o", Prompt: "p"})
	require.Error(t, err)
	assert.ErrorIs(t, err, ai.ErrQuotaExceeded)
}

func TestGenerateImageAgainstFakeAPI(t *testing.T) {
	png := []byte("\x89PNG fake")
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/v1/images/generations", r.URL.Path)
		var req openai.ImageRequest
		assert.NoError(t, json.NewDecoder(r.Body).Decode(&req))
		assert.Equal(t, openai.CreateImageSize1792x1024, req.Size)
		assert.Equal(t, 1, req.N)
		w.Header().Set("Content-Type", "application/json")
		_ = json.NewEncoder(w).Encode(map[string]any{
			"data": []any{map[string]any{"b64_json": base64.StdEncoding.EncodeToString(png)}},
		})
	})

	img, err := c.GenerateImage(context.Background(), ai.ImageRequest{Model: "dall-e-3", Prompt: "bug", AspectRatio: "16:9"})
	require.NoError(t, err)
	assert.Equal(t, png, img.Bytes)
	assert.Equal(t, "image/png", img.MIMEType)
}

func TestGenerateImageEmpty(t *testing.T) {
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"data":[]}`))
	})
	_, err := c.GenerateImage(context.Background(), ai.ImageRequest{Model: "dall-e-3", Prompt: "bug"})
	assert.ErrorIs(t, err, ai.ErrNoImage)
}
