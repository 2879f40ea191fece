package common

import "strings"

// HasAny returns true if s contains any of the substrings.
func HasAny(s string, subs ...string) bool {
	for _, sub := range subs {
		if strings.Contains(s, sub) {
			return true
		}
	}
	return false
}

// NormalizeKey lowercases s and folds spaces and hyphens into underscores so
// "Next Days", "next-days" and "NEXT_DAYS" all compare equal.
func NormalizeKey(s string) string {
	s = strings.ToLower(strings.TrimSpace(s))
	if HasAny(s, " ", "-") {
		s = strings.NewReplacer(" ", "_", "-", "_").Replace(s)
	}
	return s
}
