package prompt

import (
	"fmt"

	"github.com/bryanwahyu/chaos-engine/internal/domain/domains"
)

// CorrelationPrompt asks the model to line up an attached screen recording
// with the submitted code, speaking through the domain's three agents.
func CorrelationPrompt(d domains.Descriptor, code string) string {
	a := d.Agents
	return fmt.Sprintf(`You are the "Chaos Engine V3" running in %s mode with MULTIMODAL CORRELATION.

The attached video is a recording of the bug as a user experienced it. The code below is the suspected source.

**CODE:**
%s
%s
%s

Watch the video, identify the moment the bug becomes visible and correlate it with the code. Answer as three agents:

1. **%s** (%s): what the user did in the video that triggers the bug, with timestamps.
2. **%s** (%s): the shortest path in the code from that action to the visible failure.
3. **%s** (%s): the root cause in the code and the fix.

Keep each finding to a short paragraph.`,
		d.Title,
		"```", code, "```",
		a.Griefer.Name, a.Griefer.Role,
		a.Speedrunner.Name, a.Speedrunner.Role,
		a.Auditor.Name, a.Auditor.Role,
	)
}
