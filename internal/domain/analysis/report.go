package analysis

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/bryanwahyu/chaos-engine/internal/domain/ai"
)

// Report is the structured payload returned by the provider for code analysis.
// Agent objects are pointers so that a missing agent can be told apart from an
// empty one.
type Report struct {
	Griefer     *GrieferReport     `json:"griefer"`
	Speedrunner *SpeedrunnerReport `json:"speedrunner"`
	Auditor     *AuditorReport     `json:"auditor"`
}

type GrieferReport struct {
	Finding      string   `json:"finding"`
	Severity     string   `json:"severity,omitempty"`
	ExploitSteps []string `json:"exploit_steps,omitempty"`
}

type SpeedrunnerReport struct {
	Finding               string   `json:"finding"`
	OptimizationPotential string   `json:"optimization_potential,omitempty"`
	SkipSequence          []string `json:"skip_sequence,omitempty"`
}

type AuditorReport struct {
	Finding          string   `json:"finding"`
	CodeQualityScore string   `json:"code_quality_score,omitempty"`
	Recommendations  []string `json:"recommendations,omitempty"`
}

// ParseReport decodes raw provider text and checks that every agent carries a
// finding.
func ParseReport(raw string) (*Report, error) {
	var r Report
	if err := json.Unmarshal([]byte(strings.TrimSpace(raw)), &r); err != nil {
		return nil, fmt.Errorf("decode report: %w", err)
	}
	if err := r.validate(); err != nil {
		return nil, err
	}
	return &r, nil
}

func (r *Report) validate() error {
	switch {
	case r.Griefer == nil || r.Griefer.Finding == "":
		return fmt.Errorf("%w: griefer.finding missing", ai.ErrSchemaViolation)
	case r.Speedrunner == nil || r.Speedrunner.Finding == "":
		return fmt.Errorf("%w: speedrunner.finding missing", ai.ErrSchemaViolation)
	case r.Auditor == nil || r.Auditor.Finding == "":
		return fmt.Errorf("%w: auditor.finding missing", ai.ErrSchemaViolation)
	}
	return nil
}

// Correlation is the minimal finding-only payload of the video path.
type Correlation struct {
	Griefer     *Finding `json:"griefer"`
	Speedrunner *Finding `json:"speedrunner"`
	Auditor     *Finding `json:"auditor"`
}

var correlationRoles = [3]string{"griefer", "speedrunner", "auditor"}

type Finding struct {
	Finding string `json:"finding"`
}

// ParseCorrelation decodes the video correlation payload.
func ParseCorrelation(raw string) (*Correlation, error) {
	var c Correlation
	if err := json.Unmarshal([]byte(strings.TrimSpace(raw)), &c); err != nil {
		return nil, fmt.Errorf("decode correlation: %w", err)
	}
	for i, f := range []*Finding{c.Griefer, c.Speedrunner, c.Auditor} {
		if f == nil || f.Finding == "" {
			return nil, fmt.Errorf("%w: %s.finding missing", ai.ErrSchemaViolation, correlationRoles[i])
		}
	}
	return &c, nil
}
