package main

import (
	"context"
	"fmt"

	"go.uber.org/zap"

	"github.com/bryanwahyu/chaos-engine/internal/application"
	appanalysis "github.com/bryanwahyu/chaos-engine/internal/application/analysis"
	appvideo "github.com/bryanwahyu/chaos-engine/internal/application/video"
	appvisual "github.com/bryanwahyu/chaos-engine/internal/application/visual"
	"github.com/bryanwahyu/chaos-engine/internal/config"
	"github.com/bryanwahyu/chaos-engine/internal/domain/ai"
	"github.com/bryanwahyu/chaos-engine/internal/domain/media"
	"github.com/bryanwahyu/chaos-engine/internal/infra/ai/gemini"
	"github.com/bryanwahyu/chaos-engine/internal/infra/ai/openai"
	"github.com/bryanwahyu/chaos-engine/internal/infra/storage"
)

type services struct {
	analysis *appanalysis.Service
	video    *appvideo.Service
	visual   *appvisual.Service
	scratch  media.ScratchStore
}

func providerFactory(c *config.Config) ai.ProviderFactory {
	if c.Provider.Kind == config.ProviderOpenAI {
		return openai.Factory(c.Provider.BaseURL)
	}
	return gemini.Factory(c.Provider.BaseURL)
}

func newScratch(ctx context.Context, c *config.Config, log *zap.Logger) (media.ScratchStore, error) {
	if c.Scratch.Backend != config.ScratchMinio {
		local, err := storage.NewLocal(c.Scratch.Dir, log)
		if err != nil {
			return nil, fmt.Errorf("scratch dir init error: %w", err)
		}
		return local, nil
	}
	m := c.Scratch.Minio
	store, err := storage.New(ctx, m.Endpoint, m.Region, m.BucketName, m.AccessKey, m.SecretKey, m.UseSSL, log)
	if err != nil {
		return nil, fmt.Errorf("minio init error: %w", err)
	}
	return store, nil
}

func buildServices(ctx context.Context, c *config.Config, log *zap.Logger) (*services, error) {
	scratch, err := newScratch(ctx, c, log)
	if err != nil {
		return nil, err
	}
	providers := providerFactory(c)
	clock := application.SystemClock{}

	return &services{
		scratch: scratch,
		analysis: &appanalysis.Service{
			Providers: providers,
			Cascade: appanalysis.Cascade{
				Attempts:    c.Analysis.Models,
				Temperature: c.Analysis.Temperature,
			},
			DefaultAPIKey: c.Provider.APIKey,
			DemoDelay:     c.Analysis.DemoDelay,
			Clock:         clock,
			Log:           log,
		},
		video: &appvideo.Service{
			Providers:     providers,
			Scratch:       scratch,
			Model:         c.Video.Model,
			Temperature:   c.Analysis.Temperature,
			DefaultAPIKey: c.Provider.APIKey,
			PollInterval:  c.Video.PollInterval,
			MaxWait:       c.Video.MaxWait,
			DemoDelay:     c.Video.DemoDelay,
			Clock:         clock,
			Log:           log,
		},
		visual: &appvisual.Service{
			Providers:     providers,
			Model:         c.Visual.Model,
			AspectRatio:   c.Visual.AspectRatio,
			DefaultAPIKey: c.Provider.APIKey,
			Log:           log,
		},
	}, nil
}
