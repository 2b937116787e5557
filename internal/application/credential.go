package application

import "strings"

// PlaceholderKey is the sample value shipped in example env files. It counts
// as no key at all.
const PlaceholderKey = "your_key_here"

// ResolveAPIKey picks the caller's key, else the configured fallback. The
// second return is false when neither yields a usable key.
func ResolveAPIKey(supplied, fallback string) (string, bool) {
	key := strings.TrimSpace(supplied)
	if key == "" {
		key = strings.TrimSpace(fallback)
	}
	if key == "" || key == PlaceholderKey {
		return "", false
	}
	return key, true
}
