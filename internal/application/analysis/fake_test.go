package analysis

import (
	"context"
	"errors"
	"io"
	"sync"
	"time"

	"github.com/bryanwahyu/chaos-engine/internal/domain/ai"
)

const validReport = `{"griefer":{"finding":"crash on negative hp","severity":"HIGH"},"speedrunner":{"finding":"skip loop"},"auditor":{"finding":"add types","code_quality_score":"B"}}`

// fakeProvider answers Generate from a per-model script.
type fakeProvider struct {
	mu      sync.Mutex
	replies map[string]reply
	calls   []ai.GenerateRequest
}

type reply struct {
	text string
	err  error
}

func (f *fakeProvider) Generate(_ context.Context, req ai.GenerateRequest) (string, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.calls = append(f.calls, req)
	r, ok := f.replies[req.Model]
	if !ok {
		return "", errors.New("404 model not found: " + req.Model)
	}
	return r.text, r.err
}

func (f *fakeProvider) GenerateImage(context.Context, ai.ImageRequest) (*ai.Image, error) {
	return nil, ai.ErrUnsupported
}

func (f *fakeProvider) UploadFile(context.Context, io.Reader, string, string) (*ai.RemoteFile, error) {
	return nil, ai.ErrUnsupported
}

func (f *fakeProvider) GetFile(context.Context, string) (*ai.RemoteFile, error) {
	return nil, ai.ErrUnsupported
}

func (f *fakeProvider) DeleteFile(context.Context, string) error { return ai.ErrUnsupported }

func (f *fakeProvider) models() []string {
	f.mu.Lock()
	defer f.mu.Unlock()
	out := make([]string, len(f.calls))
	for i, c := range f.calls {
		out[i] = c.Model
	}
	return out
}

// factoryFor returns a factory handing out p and recording the keys it saw.
func factoryFor(p ai.Provider, keys *[]string) ai.ProviderFactory {
	return func(_ context.Context, key string) (ai.Provider, error) {
		if keys != nil {
			*keys = append(*keys, key)
		}
		return p, nil
	}
}

// fakeClock records sleeps without waiting.
type fakeClock struct {
	mu     sync.Mutex
	sleeps []time.Duration
}

func (c *fakeClock) Now() time.Time { return time.Unix(0, 0) }

func (c *fakeClock) Sleep(ctx context.Context, d time.Duration) error {
	c.mu.Lock()
	c.sleeps = append(c.sleeps, d)
	c.mu.Unlock()
	return ctx.Err()
}

var attempts = []ai.ModelAttempt{
	{Model: "m-pro", ThinkingBudget: 24000, Label: "Gemini 3 Pro (Extended Reasoning)"},
	{Model: "m-flash", ThinkingBudget: 12000, Label: "Gemini 3 Flash (Fast Analysis)"},
	{Model: "m-old", ThinkingBudget: 8000, Label: "Gemini 1.5 Pro (Fallback)"},
	{Model: "m-basic", ThinkingBudget: 0, Label: "Gemini 1.5 Flash (Basic)"},
}
