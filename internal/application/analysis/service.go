package analysis

import (
	"context"
	"time"

	"go.uber.org/zap"

	"github.com/bryanwahyu/chaos-engine/internal/application"
	"github.com/bryanwahyu/chaos-engine/internal/domain/ai"
	domain "github.com/bryanwahyu/chaos-engine/internal/domain/analysis"
	"github.com/bryanwahyu/chaos-engine/internal/domain/domains"
	"github.com/bryanwahyu/chaos-engine/internal/infra/ai/prompt"
)

// Service implements the code analysis use-case. It holds no per-request
// state and is safe for concurrent use.
type Service struct {
	Providers     ai.ProviderFactory
	Cascade       Cascade
	DefaultAPIKey string
	DemoDelay     time.Duration
	Clock         application.Clock
	Log           *zap.Logger
}

// Analyze runs one submission through the cascade, or through the demo
// fallback when no usable key resolves. Provider failures never surface as
// errors; callers inspect Result.Status.
func (s *Service) Analyze(ctx context.Context, req domain.Request) domain.Result {
	d := domains.Get(req.Domain)
	log := s.logger().With(zap.String("domain", string(d.Key)))

	key, ok := application.ResolveAPIKey(req.APIKey, s.DefaultAPIKey)
	log.Debug("api key status", zap.Bool("usable", ok))
	if !ok {
		return s.demo(ctx, d)
	}

	provider, err := s.Providers(ctx, key)
	if err != nil {
		log.Error("provider init failed", zap.Error(err))
		res := domain.Failure("Global analysis failure: ", err)
		res.Domain = d.Key
		return res
	}

	lang := prompt.DetectLanguage(req.Code)
	log.Debug("detected language", zap.String("language", lang))

	c := s.Cascade
	c.Log = log
	res := c.Run(ctx, provider, prompt.Render(d, req.Code), prompt.ReportSchema())
	if w, ok := res.Winner(); ok {
		return liveResult(d, lang, w)
	}
	log.Error("all models failed", zap.Int("attempts", res.Tried()), zap.Error(res.LastErr()))
	return exhaustedResult(d, res)
}

func (s *Service) demo(ctx context.Context, d domains.Descriptor) domain.Result {
	s.logger().Info("running in demo mode", zap.String("domain", string(d.Key)))
	// the delay only mimics latency; a cancelled wait still returns the demo
	_ = s.clock().Sleep(ctx, s.DemoDelay)
	return DemoResult(d)
}

func (s *Service) clock() application.Clock {
	if s.Clock == nil {
		return application.SystemClock{}
	}
	return s.Clock
}

func (s *Service) logger() *zap.Logger {
	if s.Log == nil {
		return zap.NewNop()
	}
	return s.Log.Named("analysis")
}
