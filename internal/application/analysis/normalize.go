package analysis

import (
	"fmt"
	"strings"

	domain "github.com/bryanwahyu/chaos-engine/internal/domain/analysis"
	"github.com/bryanwahyu/chaos-engine/internal/domain/domains"
	"github.com/bryanwahyu/chaos-engine/internal/infra/ai/prompt"
)

const (
	unknownSeverity = "UNKNOWN"
	unknownQuality  = "N/A"
)

// Normalize flattens a report into the caller-facing triad. Missing optional
// annotations fall back to sentinels.
func Normalize(r *domain.Report) domain.Agents {
	severity := r.Griefer.Severity
	if severity == "" {
		severity = unknownSeverity
	}
	quality := r.Auditor.CodeQualityScore
	if quality == "" {
		quality = unknownQuality
	}
	return domain.Agents{
		Griefer:     fmt.Sprintf("%s [Severity: %s]", r.Griefer.Finding, severity),
		Speedrunner: r.Speedrunner.Finding,
		Auditor:     fmt.Sprintf("%s [Quality: %s]", r.Auditor.Finding, quality),
	}
}

// LiveMode derives the mode marker from a model label, e.g.
// "Gemini 3 Pro (Extended Reasoning)" becomes REAL_GEMINI.
func LiveMode(label string) domain.Mode {
	word := "MODEL"
	if f := strings.Fields(label); len(f) > 0 {
		word = f[0]
	}
	return domain.Mode("REAL_" + strings.ReplaceAll(strings.ToUpper(word), ".", "_"))
}

// LiveLogs is the cosmetic log trail of a successful analysis.
func LiveLogs(label string, thinking bool) []string {
	stage := "⚡ [FAST MODE] Analyzing code patterns..."
	if thinking {
		stage = "🧠 [DEEP THINKING] Analyzing game state machine..."
	}
	return []string{
		fmt.Sprintf("🚀 Connected to %s...", label),
		stage,
		"🤖 [GRIEFER] Fuzzing input vectors with exploit chains...",
		"🤖 [SPEEDRUNNER] Simulating frame-perfect execution paths...",
		"🤖 [AUDITOR] Performing deep code quality analysis...",
		fmt.Sprintf("✅ ANALYSIS COMPLETE (%s)", label),
	}
}

func liveResult(d domains.Descriptor, language string, w Outcome) domain.Result {
	agents := Normalize(w.Report)
	return domain.Result{
		Status:           domain.StatusComplete,
		Mode:             LiveMode(w.Attempt.Label),
		Domain:           d.Key,
		ModelUsed:        w.Attempt.Label,
		DetectedLanguage: language,
		Agents:           &agents,
		RawAnalysis:      w.Report,
		Logs:             LiveLogs(w.Attempt.Label, w.Attempt.ThinkingBudget > 0),
	}
}

func exhaustedResult(d domains.Descriptor, res CascadeResult) domain.Result {
	last := res.LastErr().Error()
	labels := make([]string, 0, len(res.Outcomes))
	for _, o := range res.Outcomes {
		labels = append(labels, o.Attempt.Label)
	}
	return domain.Result{
		Status: domain.StatusError,
		Mode:   domain.ModeAPIError,
		Domain: d.Key,
		Agents: &domain.Agents{
			Griefer:     "All models failed. Last error: " + prompt.Clip(last, 200),
			Speedrunner: "Unable to analyze - API unavailable",
			Auditor:     "Try checking your API key or quota limits",
		},
		Message: last,
		Logs: []string{
			"🔥 CRITICAL ERROR: " + prompt.Clip(last, 150),
			"⚠️ Tried: " + strings.Join(labels, " → "),
			fmt.Sprintf("⚠️ %d of %d attempts failed", res.Tried(), len(res.Outcomes)),
			"⚠️ Check https://ai.google.dev/gemini-api/docs/models",
			"❌ All models unavailable",
		},
	}
}
