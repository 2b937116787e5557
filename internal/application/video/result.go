package video

import (
	domain "github.com/bryanwahyu/chaos-engine/internal/domain/analysis"
	"github.com/bryanwahyu/chaos-engine/internal/domain/domains"
)

// MockResult is the canned multimodal result returned without a key.
func MockResult(d domains.Descriptor) domain.Result {
	return domain.Result{
		Status: domain.StatusComplete,
		Mode:   domain.ModeVideoDemo,
		Domain: d.Key,
		Agents: &domain.Agents{
			Griefer:     "At 0:12 the user double-clicks submit and the action fires twice (Demo)",
			Speedrunner: "The click handler reaches the state update without a re-entrancy guard (Demo)",
			Auditor:     "Root cause: missing debounce on the submit path; disable the control while pending (Demo)",
		},
		Logs: []string{
			"⚠️ API KEY MISSING - SIMULATING MULTIMODAL ANALYSIS",
			"[DEMO] Scanning video frames...",
			"[DEMO] Correlating timestamps with code paths...",
			"✅ DEMO VIDEO CORRELATION COMPLETE",
		},
	}
}

func errorResult(d domains.Descriptor, err error) domain.Result {
	return domain.Result{
		Status:  domain.StatusError,
		Mode:    domain.ModeAPIError,
		Domain:  d.Key,
		Message: err.Error(),
		Logs:    []string{"🔥 VIDEO ANALYSIS FAILED: " + err.Error()},
	}
}
