package analysis

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zaptest"

	"github.com/bryanwahyu/chaos-engine/internal/application"
	"github.com/bryanwahyu/chaos-engine/internal/domain/ai"
	domain "github.com/bryanwahyu/chaos-engine/internal/domain/analysis"
	"github.com/bryanwahyu/chaos-engine/internal/domain/domains"
)

func newService(t *testing.T, p ai.Provider, defaultKey string) (*Service, *fakeClock, *[]string) {
	t.Helper()
	var keys []string
	clock := &fakeClock{}
	return &Service{
		Providers:     factoryFor(p, &keys),
		Cascade:       Cascade{Attempts: attempts, Temperature: 0.7},
		DefaultAPIKey: defaultKey,
		DemoDelay:     1500 * time.Millisecond,
		Clock:         clock,
		Log:           zaptest.NewLogger(t),
	}, clock, &keys
}

func TestAnalyzeDemoWithoutKey(t *testing.T) {
	p := &fakeProvider{}
	svc, clock, keys := newService(t, p, "")

	res := svc.Analyze(context.Background(), domain.Request{Code: "def f(): pass", Domain: "learning"})

	assert.Equal(t, domain.StatusComplete, res.Status)
	assert.Equal(t, domain.ModeDemo, res.Mode)
	assert.Equal(t, domains.Learning, res.Domain)
	require.NotNil(t, res.Agents)
	want := demoFindings[domains.Learning]
	assert.Equal(t, want, *res.Agents)
	assert.Empty(t, *keys, "no provider may be built in demo mode")
	assert.Empty(t, p.calls)
	assert.Equal(t, []time.Duration{1500 * time.Millisecond}, clock.sleeps)
}

func TestAnalyzePlaceholderKeyIsDemo(t *testing.T) {
	svc, _, keys := newService(t, &fakeProvider{}, application.PlaceholderKey)
	res := svc.Analyze(context.Background(), domain.Request{Code: "x"})
	assert.Equal(t, domain.ModeDemo, res.Mode)
	assert.Equal(t, domains.Game, res.Domain)
	assert.Empty(t, *keys)
}

func TestAnalyzeDemoIsDeterministic(t *testing.T) {
	svc, _, _ := newService(t, &fakeProvider{}, "")
	for _, k := range domains.Keys() {
		a := svc.Analyze(context.Background(), domain.Request{Code: "x", Domain: string(k)})
		b := svc.Analyze(context.Background(), domain.Request{Code: "y", Domain: string(k)})
		assert.Equal(t, a, b, "domain %s", k)
	}
}

func TestAnalyzeLive(t *testing.T) {
	p := &fakeProvider{replies: map[string]reply{
		"m-pro":   {err: errors.New("503 overloaded")},
		"m-flash": {text: validReport},
	}}
	svc, clock, keys := newService(t, p, "env-key")

	res := svc.Analyze(context.Background(), domain.Request{
		Code:   "class P:\n  def hit(self): pass",
		Domain: "software",
		APIKey: "caller-key",
	})

	assert.Equal(t, []string{"caller-key"}, *keys)
	assert.Empty(t, clock.sleeps)
	assert.Equal(t, domain.StatusComplete, res.Status)
	assert.Equal(t, domain.Mode("REAL_GEMINI"), res.Mode)
	assert.Equal(t, "Gemini 3 Flash (Fast Analysis)", res.ModelUsed)
	assert.Equal(t, domains.Software, res.Domain)
	assert.Equal(t, "Python", res.DetectedLanguage)
	require.NotNil(t, res.Agents)
	assert.Equal(t, "crash on negative hp [Severity: HIGH]", res.Agents.Griefer)
	assert.Equal(t, "add types [Quality: B]", res.Agents.Auditor)
	assert.NotNil(t, res.RawAnalysis)
	assert.Contains(t, res.Logs[1], "DEEP THINKING")

	require.Len(t, p.calls, 2)
	assert.Contains(t, p.calls[0].Prompt, "class P:")
	assert.Contains(t, p.calls[0].Prompt, "Security Breacher")
}

func TestAnalyzeUsesDefaultKey(t *testing.T) {
	p := &fakeProvider{replies: map[string]reply{"m-pro": {text: validReport}}}
	svc, _, keys := newService(t, p, "env-key")
	res := svc.Analyze(context.Background(), domain.Request{Code: "x"})
	assert.Equal(t, []string{"env-key"}, *keys)
	assert.Equal(t, domain.StatusComplete, res.Status)
}

func TestAnalyzeExhausted(t *testing.T) {
	p := &fakeProvider{replies: map[string]reply{}}
	svc, _, _ := newService(t, p, "env-key")

	res := svc.Analyze(context.Background(), domain.Request{Code: "x", Domain: "support"})

	assert.Equal(t, domain.StatusError, res.Status)
	assert.Equal(t, domain.ModeAPIError, res.Mode)
	assert.Equal(t, domains.Support, res.Domain)
	assert.Equal(t, "404 model not found: m-basic", res.Message)
	require.NotNil(t, res.Agents)
	assert.Contains(t, res.Agents.Griefer, "m-basic")
	joined := strings.Join(res.Logs, "\n")
	assert.Contains(t, joined, fmt.Sprintf("%d of %d attempts failed", len(attempts), len(attempts)))
	assert.Contains(t, joined, "Gemini 3 Pro (Extended Reasoning) → Gemini 3 Flash (Fast Analysis)")
}

func TestAnalyzeProviderInitFailure(t *testing.T) {
	svc, _, _ := newService(t, nil, "env-key")
	svc.Providers = func(context.Context, string) (ai.Provider, error) {
		return nil, errors.New("bad key format")
	}
	res := svc.Analyze(context.Background(), domain.Request{Code: "x", Domain: "game"})
	assert.Equal(t, domain.StatusError, res.Status)
	assert.Equal(t, "Global analysis failure: bad key format", res.Message)
	assert.Equal(t, []string{"🚨 FATAL: bad key format"}, res.Logs)
	assert.Equal(t, domains.Game, res.Domain)
}
