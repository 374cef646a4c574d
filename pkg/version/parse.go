// Package version finds semantic versions in tool output.
package version

import (
	"fmt"
	"strings"

	"github.com/Masterminds/semver/v3"
)

// Extract finds and parses the first dotted version number among the
// whitespace-separated tokens of s, e.g. "7.0.2" in
// "This is Suricata version 7.0.2 RELEASE".
func Extract(s string) (*semver.Version, error) {
	for _, tok := range strings.Fields(s) {
		tok = strings.Trim(tok, "(),;:")
		if !strings.Contains(tok, ".") {
			continue
		}
		if v, err := semver.NewVersion(tok); err == nil {
			return v, nil
		}
	}
	return nil, fmt.Errorf("no version found in: %q", firstLine(s))
}

// ParseOptional parses s, returning nil for an empty string.
func ParseOptional(s string) (*semver.Version, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return nil, nil
	}
	return semver.NewVersion(s)
}

// DisplayToken returns the token shown next to "Version:". It prefers a parsed
// version, then the second output token, then "unknown".
func DisplayToken(output string) string {
	if v, err := Extract(output); err == nil {
		return v.Original()
	}
	fields := strings.Fields(output)
	if len(fields) > 1 {
		return fields[1]
	}
	return "unknown"
}

func firstLine(s string) string {
	s = strings.TrimSpace(s)
	if i := strings.IndexByte(s, '\n'); i >= 0 {
		return s[:i]
	}
	return s
}
