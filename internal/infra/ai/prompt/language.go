package prompt

import "strings"

// DetectLanguage guesses the language of code from markers in its first 200
// bytes. The guess is informational only.
func DetectLanguage(code string) string {
	sample := strings.ToLower(Clip(code, 200))
	switch {
	case strings.Contains(sample, "class ") && strings.Contains(sample, "def "):
		return "Python"
	case strings.Contains(sample, "public class") || strings.Contains(sample, "void "):
		return "C# or Java"
	case strings.Contains(sample, "function") || strings.Contains(sample, "const ") || strings.Contains(sample, "let "):
		return "JavaScript/TypeScript"
	case strings.Contains(sample, "#include") || strings.Contains(sample, "int main"):
		return "C/C++"
	}
	return "Unknown (will auto-detect)"
}
