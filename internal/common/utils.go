package common

import "strings"

// HasAny reports whether s contains any of the given substrings.
// Callers are responsible for case normalisation.
func HasAny(s string, subs ...string) bool {
	for _, sub := range subs {
		if strings.Contains(s, sub) {
			return true
		}
	}
	return false
}

// Ptr returns a pointer to v. Handy for building records with nullable
// fields.
func Ptr[T any](v T) *T {
	return &v
}
