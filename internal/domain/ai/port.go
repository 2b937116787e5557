package ai

import (
	"context"
	"io"
)

// Generator produces text (JSON when a schema is set) from a prompt.
type Generator interface {
	Generate(ctx context.Context, req GenerateRequest) (string, error)
}

// ImageGenerator produces images from a prompt.
type ImageGenerator interface {
	GenerateImage(ctx context.Context, req ImageRequest) (*Image, error)
}

// FileStore manages files held by the provider for multimodal prompts.
type FileStore interface {
	UploadFile(ctx context.Context, r io.Reader, mimeType, displayName string) (*RemoteFile, error)
	GetFile(ctx context.Context, name string) (*RemoteFile, error)
	DeleteFile(ctx context.Context, name string) error
}

// Provider is a client bound to one credential.
type Provider interface {
	Generator
	ImageGenerator
	FileStore
}

// ProviderFactory builds a Provider for a resolved API key. Keys arrive per
// request, so clients are built per request too.
type ProviderFactory func(ctx context.Context, apiKey string) (Provider, error)
