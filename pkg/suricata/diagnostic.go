package suricata

import (
	"strings"

	"github.com/vertti/suricheck/pkg/check"
)

// addDiagnostic attaches the tail of captured output (or the error text when
// nothing was captured) as "Error:" detail lines.
func addDiagnostic(result *check.Result, output string, err error) {
	lines := lastLines(strings.TrimSpace(output), maxDiagnosticLines)
	if len(lines) == 0 {
		if err != nil {
			result.AddDetailf("Error: %v", err)
		}
		return
	}
	result.AddDetailf("Error: %s", lines[0])
	for _, l := range lines[1:] {
		result.AddDetailf("       %s", l)
	}
}

func lastLines(s string, n int) []string {
	if s == "" {
		return nil
	}
	lines := strings.Split(s, "\n")
	if len(lines) > n {
		lines = lines[len(lines)-n:]
	}
	for i, l := range lines {
		lines[i] = strings.TrimRight(l, "\r")
	}
	return lines
}

func firstNonEmpty(values ...string) string {
	for _, v := range values {
		if strings.TrimSpace(v) != "" {
			return v
		}
	}
	return ""
}
