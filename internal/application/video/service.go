package video

import (
	"context"
	"fmt"
	"io"
	"time"

	"go.uber.org/zap"

	"github.com/bryanwahyu/chaos-engine/internal/application"
	"github.com/bryanwahyu/chaos-engine/internal/domain/ai"
	domain "github.com/bryanwahyu/chaos-engine/internal/domain/analysis"
	"github.com/bryanwahyu/chaos-engine/internal/domain/domains"
	"github.com/bryanwahyu/chaos-engine/internal/domain/media"
	"github.com/bryanwahyu/chaos-engine/internal/infra/ai/prompt"
)

const (
	defaultPollInterval = 2 * time.Second
	fallbackMIMEType    = "video/mp4"
)

// Job is one /analyze-video submission.
type Job struct {
	Video       io.Reader
	Filename    string
	ContentType string
	Code        string
	Domain      string
	APIKey      string
}

// Service correlates a bug recording with source code.
type Service struct {
	Providers     ai.ProviderFactory
	Scratch       media.ScratchStore
	Model         string
	Temperature   float32
	DefaultAPIKey string
	PollInterval  time.Duration
	// MaxWait caps how long an upload may stay in processing. Zero waits forever.
	MaxWait   time.Duration
	DemoDelay time.Duration
	Clock     application.Clock
	Log       *zap.Logger
}

// Analyze never returns an error: failures come back as an error-status result.
func (s *Service) Analyze(ctx context.Context, job Job) domain.Result {
	d := domains.Get(job.Domain)
	log := s.logger().With(zap.String("domain", string(d.Key)), zap.String("filename", job.Filename))

	key, ok := application.ResolveAPIKey(job.APIKey, s.DefaultAPIKey)
	if !ok {
		log.Info("running video analysis in demo mode")
		_ = s.clock().Sleep(ctx, s.DemoDelay)
		return MockResult(d)
	}

	res, err := s.correlate(ctx, log, d, key, job)
	if err != nil {
		log.Error("video analysis failed", zap.Error(err))
		return errorResult(d, err)
	}
	return res
}

func (s *Service) correlate(ctx context.Context, log *zap.Logger, d domains.Descriptor, key string, job Job) (domain.Result, error) {
	provider, err := s.Providers(ctx, key)
	if err != nil {
		return domain.Result{}, err
	}

	scratch, err := s.Scratch.Put(ctx, job.Filename, job.Video)
	if err != nil {
		return domain.Result{}, fmt.Errorf("store upload: %w", err)
	}
	defer func() {
		if err := s.Scratch.Remove(context.WithoutCancel(ctx), scratch.Key); err != nil {
			log.Warn("failed to remove scratch file", zap.String("key", scratch.Key), zap.Error(err))
		}
	}()

	mimeType := pickMIMEType(scratch.MIMEType, job.ContentType)
	file, err := s.upload(ctx, provider, scratch, mimeType)
	if err != nil {
		return domain.Result{}, err
	}
	remoteName := file.Name
	defer func() {
		if err := provider.DeleteFile(context.WithoutCancel(ctx), remoteName); err != nil {
			log.Warn("failed to delete remote file", zap.String("file", remoteName), zap.Error(err))
		}
	}()
	log.Info("video uploaded", zap.String("file", remoteName), zap.String("mime", mimeType), zap.Int64("bytes", scratch.Size))

	file, polls, err := s.waitActive(ctx, provider, file)
	if err != nil {
		return domain.Result{}, err
	}

	raw, err := provider.Generate(ctx, ai.GenerateRequest{
		Model:       s.Model,
		Prompt:      prompt.CorrelationPrompt(d, job.Code),
		Schema:      prompt.CorrelationSchema(),
		Temperature: s.Temperature,
		Files:       []*ai.RemoteFile{file},
	})
	if err != nil {
		return domain.Result{}, err
	}
	c, err := domain.ParseCorrelation(raw)
	if err != nil {
		return domain.Result{}, err
	}

	return domain.Result{
		Status:    domain.StatusComplete,
		Mode:      domain.ModeVideoLive,
		Domain:    d.Key,
		ModelUsed: s.Model,
		Agents: &domain.Agents{
			Griefer:     c.Griefer.Finding,
			Speedrunner: c.Speedrunner.Finding,
			Auditor:     c.Auditor.Finding,
		},
		Logs: []string{
			fmt.Sprintf("🎥 Uploaded %s (%s)", scratch.Name, mimeType),
			fmt.Sprintf("⏳ Video processed after %d status checks", polls),
			fmt.Sprintf("🧠 Correlating video with code via %s...", s.Model),
			"✅ MULTIMODAL ANALYSIS COMPLETE",
		},
	}, nil
}

func (s *Service) upload(ctx context.Context, fs ai.FileStore, scratch *media.Scratch, mimeType string) (*ai.RemoteFile, error) {
	rc, err := s.Scratch.Open(ctx, scratch.Key)
	if err != nil {
		return nil, fmt.Errorf("open scratch: %w", err)
	}
	defer rc.Close()
	return fs.UploadFile(ctx, rc, mimeType, scratch.Name)
}

// waitActive polls until the file leaves the processing state. A failed
// state, or running out of MaxWait, is a processing failure.
func (s *Service) waitActive(ctx context.Context, fs ai.FileStore, f *ai.RemoteFile) (*ai.RemoteFile, int, error) {
	if s.MaxWait > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, s.MaxWait)
		defer cancel()
	}
	interval := s.PollInterval
	if interval <= 0 {
		interval = defaultPollInterval
	}

	polls := 0
	for f.State == ai.FileStateProcessing {
		if err := s.clock().Sleep(ctx, interval); err != nil {
			return nil, polls, fmt.Errorf("%w: still processing after %d checks: %v", ai.ErrFileProcessingFailed, polls, err)
		}
		next, err := fs.GetFile(ctx, f.Name)
		if err != nil {
			return nil, polls, err
		}
		polls++
		f = next
	}
	if f.State == ai.FileStateFailed {
		return nil, polls, fmt.Errorf("%w: %s", ai.ErrFileProcessingFailed, f.Error)
	}
	return f, polls, nil
}

func pickMIMEType(sniffed, declared string) string {
	switch {
	case sniffed != "" && sniffed != "application/octet-stream":
		return sniffed
	case declared != "" && declared != "application/octet-stream":
		return declared
	}
	return fallbackMIMEType
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
	return s.Log.Named("video")
}
