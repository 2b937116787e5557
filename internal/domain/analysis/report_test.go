package analysis

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bryanwahyu/chaos-engine/internal/domain/ai"
)

const fullReport = `{
  "griefer": {"finding": "negative health crashes", "severity": "HIGH", "exploit_steps": ["a", "b"]},
  "speedrunner": {"finding": "skip the cutscene", "optimization_potential": "30%"},
  "auditor": {"finding": "no docstrings", "code_quality_score": "B-"}
}`

func TestParseReport(t *testing.T) {
	r, err := ParseReport("\n" + fullReport + "\n")
	require.NoError(t, err)
	assert.Equal(t, "HIGH", r.Griefer.Severity)
	assert.Equal(t, []string{"a", "b"}, r.Griefer.ExploitSteps)
	assert.Equal(t, "skip the cutscene", r.Speedrunner.Finding)
	assert.Equal(t, "B-", r.Auditor.CodeQualityScore)
}

func TestParseReportRejects(t *testing.T) {
	tests := []struct {
		name   string
		raw    string
		schema bool
	}{
		{"not json", "I think the code is fine", false},
		{"missing auditor", `{"griefer":{"finding":"x"},"speedrunner":{"finding":"y"}}`, true},
		{"empty finding", `{"griefer":{"finding":""},"speedrunner":{"finding":"y"},"auditor":{"finding":"z"}}`, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := ParseReport(tt.raw)
			require.Error(t, err)
			assert.Equal(t, tt.schema, errors.Is(err, ai.ErrSchemaViolation))
		})
	}
}

func TestParseReportOptionalFieldsMayBeAbsent(t *testing.T) {
	r, err := ParseReport(`{"griefer":{"finding":"x"},"speedrunner":{"finding":"y"},"auditor":{"finding":"z"}}`)
	require.NoError(t, err)
	assert.Empty(t, r.Griefer.Severity)
	assert.Empty(t, r.Auditor.CodeQualityScore)
}

func TestParseCorrelation(t *testing.T) {
	c, err := ParseCorrelation(`{"griefer":{"finding":"at 0:03"},"speedrunner":{"finding":"path"},"auditor":{"finding":"cause"}}`)
	require.NoError(t, err)
	assert.Equal(t, "at 0:03", c.Griefer.Finding)

	_, err = ParseCorrelation(`{"griefer":{"finding":"at 0:03"},"auditor":{"finding":"cause"}}`)
	require.ErrorIs(t, err, ai.ErrSchemaViolation)
	assert.Contains(t, err.Error(), "speedrunner")
}

func TestFailure(t *testing.T) {
	res := Failure("Global analysis failure: ", errors.New("boom"))
	assert.Equal(t, StatusError, res.Status)
	assert.Equal(t, "Global analysis failure: boom", res.Message)
	assert.Equal(t, []string{"🚨 FATAL: boom"}, res.Logs)
}
