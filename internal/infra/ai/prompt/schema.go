package prompt

import "github.com/bryanwahyu/chaos-engine/internal/domain/ai"

// Severities accepted for the griefer's severity field.
var Severities = []string{"CRITICAL", "HIGH", "MEDIUM", "LOW"}

// ReportSchema is the structured-output schema for code analysis. Only the
// griefer's severity is required besides the findings; every other field may
// be absent.
func ReportSchema() *ai.Schema {
	return &ai.Schema{
		Type: ai.TypeObject,
		Properties: map[string]*ai.Schema{
			"griefer": {
				Type: ai.TypeObject,
				Properties: map[string]*ai.Schema{
					"finding":       ai.String(),
					"severity":      {Type: ai.TypeString, Enum: Severities},
					"exploit_steps": ai.StringArray(),
				},
				Required: []string{"finding", "severity"},
			},
			"speedrunner": {
				Type: ai.TypeObject,
				Properties: map[string]*ai.Schema{
					"finding":                ai.String(),
					"optimization_potential": ai.String(),
					"skip_sequence":          ai.StringArray(),
				},
				Required: []string{"finding"},
			},
			"auditor": {
				Type: ai.TypeObject,
				Properties: map[string]*ai.Schema{
					"finding":            ai.String(),
					"code_quality_score": ai.String(),
					"recommendations":    ai.StringArray(),
				},
				Required: []string{"finding"},
			},
		},
		Required: []string{"griefer", "speedrunner", "auditor"},
	}
}

// CorrelationSchema is the finding-only schema of the video path.
func CorrelationSchema() *ai.Schema {
	finding := func() *ai.Schema {
		return &ai.Schema{
			Type:       ai.TypeObject,
			Properties: map[string]*ai.Schema{"finding": ai.String()},
			Required:   []string{"finding"},
		}
	}
	return &ai.Schema{
		Type: ai.TypeObject,
		Properties: map[string]*ai.Schema{
			"griefer":     finding(),
			"speedrunner": finding(),
			"auditor":     finding(),
		},
		Required: []string{"griefer", "speedrunner", "auditor"},
	}
}
