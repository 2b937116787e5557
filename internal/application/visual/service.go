package visual

import (
	"context"
	"encoding/base64"
	"errors"

	"go.uber.org/zap"

	"github.com/bryanwahyu/chaos-engine/internal/application"
	"github.com/bryanwahyu/chaos-engine/internal/domain/ai"
	domain "github.com/bryanwahyu/chaos-engine/internal/domain/analysis"
	"github.com/bryanwahyu/chaos-engine/internal/infra/ai/prompt"
)

const (
	safetyFilterLevel = "BLOCK_ONLY_HIGH"
	personGeneration  = "ALLOW_ADULT"
	defaultImageMIME  = "image/png"
	promptPreviewLen  = 200
)

// ErrMissingAPIKey is reported when no usable key resolves. This path has no
// demo fallback.
var ErrMissingAPIKey = errors.New("API key required for image generation")

// Request asks for one illustration of a bug.
type Request struct {
	BugDescription string
	BugType        string
	APIKey         string
}

// Result is the /generate-bug-visual response body.
type Result struct {
	Status     domain.Status `json:"status"`
	Image      string        `json:"image,omitempty"`
	PromptUsed string        `json:"prompt_used,omitempty"`
	Message    string        `json:"message,omitempty"`
}

// Service renders bug descriptions into images.
type Service struct {
	Providers     ai.ProviderFactory
	Model         string
	AspectRatio   string
	DefaultAPIKey string
	Log           *zap.Logger
}

// Generate requests exactly one image and returns it as a base64 data URI.
func (s *Service) Generate(ctx context.Context, req Request) Result {
	log := s.logger().With(zap.String("bug_type", req.BugType))

	key, ok := application.ResolveAPIKey(req.APIKey, s.DefaultAPIKey)
	if !ok {
		return failure(ErrMissingAPIKey)
	}

	provider, err := s.Providers(ctx, key)
	if err != nil {
		log.Error("provider init failed", zap.Error(err))
		return failure(err)
	}

	text := prompt.BugVisualPrompt(req.BugDescription, req.BugType)
	img, err := provider.GenerateImage(ctx, ai.ImageRequest{
		Model:             s.Model,
		Prompt:            text,
		NumberOfImages:    1,
		AspectRatio:       s.AspectRatio,
		SafetyFilterLevel: safetyFilterLevel,
		PersonGeneration:  personGeneration,
	})
	if err == nil && (img == nil || len(img.Bytes) == 0) {
		err = ai.ErrNoImage
	}
	if err != nil {
		log.Error("image generation failed", zap.Error(err))
		return failure(err)
	}

	mimeType := img.MIMEType
	if mimeType == "" {
		mimeType = defaultImageMIME
	}
	log.Info("image generated", zap.Int("bytes", len(img.Bytes)))
	return Result{
		Status:     domain.StatusSuccess,
		Image:      "data:" + mimeType + ";base64," + base64.StdEncoding.EncodeToString(img.Bytes),
		PromptUsed: prompt.Clip(text, promptPreviewLen) + "...",
	}
}

func failure(err error) Result {
	return Result{Status: domain.StatusError, Message: err.Error()}
}

func (s *Service) logger() *zap.Logger {
	if s.Log == nil {
		return zap.NewNop()
	}
	return s.Log.Named("visual")
}
