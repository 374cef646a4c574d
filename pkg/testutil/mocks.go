// Package testutil holds helpers shared by check tests.
package testutil

import (
	"strings"
)

// ContainsDetail checks if any detail string contains the given substring.
func ContainsDetail(details []string, substr string) bool {
	for _, d := range details {
		if strings.Contains(d, substr) {
			return true
		}
	}
	return false
}

// CountDetails returns how many detail strings start with prefix.
func CountDetails(details []string, prefix string) int {
	n := 0
	for _, d := range details {
		if strings.HasPrefix(d, prefix) {
			n++
		}
	}
	return n
}
