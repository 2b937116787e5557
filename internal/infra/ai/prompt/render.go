// Package prompt assembles provider prompts and the structured-output schemas
// that go with them.
package prompt

import (
	"strings"

	"github.com/bryanwahyu/chaos-engine/internal/domain/domains"
)

// Render substitutes code into the domain template at its single marker.
// Code is embedded verbatim: nothing is escaped or capped, so prompt size is
// bounded only by what the caller sends.
func Render(d domains.Descriptor, code string) string {
	return strings.Replace(d.Template, domains.CodeMarker, code, 1)
}

// Truncate cuts s to n bytes and appends an ellipsis when it was longer.
func Truncate(s string, n int) string {
	if len(s) <= n {
		return s
	}
	return s[:n] + "..."
}

// Clip cuts s to at most n bytes without a suffix.
func Clip(s string, n int) string {
	if len(s) <= n {
		return s
	}
	return s[:n]
}
