package analysis

import (
	domain "github.com/bryanwahyu/chaos-engine/internal/domain/analysis"
	"github.com/bryanwahyu/chaos-engine/internal/domain/domains"
)

var demoFindings = map[domains.Key]domain.Agents{
	domains.Game: {
		Griefer:     "Found unhandled exception when health is negative [Severity: HIGH] (Demo)",
		Speedrunner: "Possible wall-clip in collision detection logic (Demo)",
		Auditor:     "Function 'take_damage' lacks type hinting and docstrings [Quality: C+] (Demo)",
	},
	domains.Software: {
		Griefer:     "User input concatenated into SQL query enables injection [Severity: CRITICAL] (Demo)",
		Speedrunner: "Database lookup runs on every request without caching (Demo)",
		Auditor:     "Callback ignores the query error and never responds on empty results [Quality: D] (Demo)",
	},
	domains.Learning: {
		Griefer:     "calculate_average crashes with ZeroDivisionError on an empty list [Severity: MEDIUM] (Demo)",
		Speedrunner: "The manual loop can be replaced with sum(numbers) / len(numbers) (Demo)",
		Auditor:     "Good naming; add a docstring and guard the empty-input case [Quality: B] (Demo)",
	},
	domains.Support: {
		Griefer:     "Discount is skipped when discountCode is an empty string or whitespace [Severity: HIGH] (Demo)",
		Speedrunner: "Hotfix: validate and trim discountCode before the discount branch (Demo)",
		Auditor:     "Discount logic is hard-coded and untested, so regressions go unnoticed [Quality: C] (Demo)",
	},
}

var demoLogs = []string{
	"⚠️ API KEY MISSING - RUNNING IN DEMO MODE",
	"[DEMO] Simulating Griefer analysis...",
	"[DEMO] Simulating Speedrunner analysis...",
	"[DEMO] Simulating Auditor analysis...",
	"✅ DEMO ANALYSIS COMPLETE",
}

// DemoResult is the canned result for d. It is the same on every call.
func DemoResult(d domains.Descriptor) domain.Result {
	agents, ok := demoFindings[d.Key]
	if !ok {
		agents = demoFindings[domains.Default]
	}
	logs := make([]string, len(demoLogs))
	copy(logs, demoLogs)
	return domain.Result{
		Status: domain.StatusComplete,
		Mode:   domain.ModeDemo,
		Domain: d.Key,
		Agents: &agents,
		Logs:   logs,
	}
}
