package prompt

import "fmt"

// BugType selects the visual style of a bug illustration.
type BugType string

const (
	BugCrash       BugType = "crash"
	BugGlitch      BugType = "glitch"
	BugPerformance BugType = "performance"
	BugLogic       BugType = "logic"
)

// GenericStyle is used for bug types outside the known set.
const GenericStyle = "Abstract digital error visualization"

var visualStyles = map[BugType]string{
	BugCrash:       "Dramatic explosion of red error particles, shattered glass effect, digital corruption, cyberpunk aesthetic",
	BugGlitch:      "Glitching holographic interface, flickering neon colors, distorted reality, matrix-style artifacts",
	BugPerformance: "Slow-motion freeze frame, clock symbols, loading bars stuck at 99%, time dilation visual",
	BugLogic:       "Impossible geometry, M.C. Escher style paradox, broken causality, quantum superposition visual",
}

// VisualStyle returns the style phrase for bugType. Unknown types map to
// GenericStyle instead of failing.
func VisualStyle(bugType string) string {
	if s, ok := visualStyles[BugType(bugType)]; ok {
		return s
	}
	return GenericStyle
}

// BugVisualPrompt renders the image prompt for a bug description.
func BugVisualPrompt(description, bugType string) string {
	return fmt.Sprintf(`High-quality 3D rendered visualization of a game bug:

BUG: %s

VISUAL STYLE: %s

REQUIREMENTS:
- Cinematic lighting with dramatic shadows
- Futuristic game engine aesthetic
- Clear visual representation of the bug's impact
- Professional game development presentation quality
- Dark background with neon accents (cyan, magenta, orange)
- Include subtle UI elements showing error state
- 16:9 aspect ratio, suitable for technical presentation

Make it look like a professional bug report screenshot from a AAA game studio.`, description, VisualStyle(bugType))
}
