package models

import "strings"

// SplitTechnologies turns a comma-separated technology string into a slice of
// trimmed, non-empty tokens. The delimited string is a storage convenience;
// callers should work with the slice.
func SplitTechnologies(s string) []string {
	parts := strings.Split(s, ",")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		if t := strings.TrimSpace(p); t != "" {
			out = append(out, t)
		}
	}
	return out
}
