// Package common holds small helpers shared across packages.
package common

import "strings"

// HasAny reports whether s contains at least one of the substrings.
func HasAny(s string, subs ...string) bool {
	for _, sub := range subs {
		if strings.Contains(s, sub) {
			return true
		}
	}
	return false
}
