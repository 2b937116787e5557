package analysis

import "github.com/bryanwahyu/chaos-engine/internal/domain/domains"

// Status enum
type Status string

const (
	StatusComplete Status = "complete"
	StatusSuccess  Status = "success"
	StatusError    Status = "error"
)

// Mode tells the caller which path produced a result.
type Mode string

const (
	ModeDemo      Mode = "DEMO_MOCK"
	ModeVideoDemo Mode = "DEMO_MOCK_VIDEO"
	ModeVideoLive Mode = "REAL_MULTIMODAL"
	ModeAPIError  Mode = "API_ERROR"
)

// Request is an /analyze submission.
type Request struct {
	Code   string
	APIKey string
	Domain string
}

// Agents holds the caller-facing finding of each agent.
type Agents struct {
	Griefer     string `json:"griefer"`
	Speedrunner string `json:"speedrunner"`
	Auditor     string `json:"auditor"`
}

// Result is the caller-facing shape of every analysis path.
type Result struct {
	Status           Status      `json:"status"`
	Mode             Mode        `json:"mode,omitempty"`
	Domain           domains.Key `json:"domain,omitempty"`
	ModelUsed        string      `json:"model_used,omitempty"`
	DetectedLanguage string      `json:"detected_language,omitempty"`
	Agents           *Agents     `json:"agents,omitempty"`
	RawAnalysis      any         `json:"raw_analysis,omitempty"`
	Message          string      `json:"message,omitempty"`
	Logs             []string    `json:"logs"`
}

// Failure builds the generic error payload used when a request cannot be
// processed at all.
func Failure(prefix string, err error) Result {
	return Result{
		Status:  StatusError,
		Message: prefix + err.Error(),
		Logs:    []string{"🚨 FATAL: " + err.Error()},
	}
}
