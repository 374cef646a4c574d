package suricata

import (
	"errors"
	"fmt"
	"strings"

	"github.com/tidwall/gjson"

	"github.com/vertti/suricheck/pkg/check"
	"github.com/vertti/suricheck/pkg/fsprobe"
)

// DefaultTailLines is how many trailing lines of each log are inspected.
const DefaultTailLines = 10

var errNoAlert = errors.New("test rule did not fire")

// AlertCheck looks for the test rule in the tail of the alert logs. Logs are
// scanned in order and the first one with a match ends the scan.
type AlertCheck struct {
	Logs      []string           // candidate logs (fast.log / eve.json), in scan order
	Markers   []string           // literal substrings identifying the test rule
	TestSID   int64              // signature id of the test rule, 0 to disable
	TailLines int                // trailing lines inspected per log
	FS        fsprobe.FileSystem // injected for testing
}

// Run executes the alert scan.
func (c *AlertCheck) Run() check.Result {
	result := check.Result{Name: NameDetection}

	tail := c.TailLines
	if tail <= 0 {
		tail = DefaultTailLines
	}

	for _, path := range c.Logs {
		if !fsprobe.Exists(c.FS, path) {
			continue
		}
		lines, err := c.FS.TailLines(path, tail)
		if err != nil {
			result.AddDetailf("Skipped %s: %v", path, err)
			continue
		}

		found, signature := c.countAlerts(lines)
		if found > 0 {
			if signature != "" {
				result.AddDetailf("Signature: %s", signature)
			}
			return result.Passf("Found %d test alert(s) in %s", found, path)
		}
	}

	return result.Fail("No test alerts detected",
		fmt.Errorf("no test alert in the last %d lines of any candidate log: %w", tail, errNoAlert))
}

// countAlerts returns the number of matching lines and the signature of the
// last eve.json record that matched.
func (c *AlertCheck) countAlerts(lines []string) (int, string) {
	found := 0
	signature := ""
	for _, line := range lines {
		ok, sig := c.matchLine(line)
		if !ok {
			continue
		}
		found++
		if sig != "" {
			signature = sig
		}
	}
	return found, signature
}

// matchLine reports whether line carries a marker or the "sid:<SID>" token.
// For eve.json alert records it also returns the signature for reporting.
func (c *AlertCheck) matchLine(line string) (bool, string) {
	if !c.hasMarker(line) {
		return false, ""
	}
	return true, eveSignature(line, c.TestSID, c.Markers)
}

func (c *AlertCheck) hasMarker(line string) bool {
	for _, m := range c.Markers {
		if m != "" && strings.Contains(line, m) {
			return true
		}
	}
	return c.TestSID > 0 && strings.Contains(line, fmt.Sprintf("sid:%d", c.TestSID))
}

// eveSignature returns the alert signature when line is an eve.json alert
// record for the test rule, identified by signature_id or by a marker in the
// signature text. It only feeds the Signature detail.
func eveSignature(line string, sid int64, markers []string) string {
	line = strings.TrimSpace(line)
	if !strings.HasPrefix(line, "{") || !gjson.Valid(line) {
		return ""
	}
	fields := gjson.GetMany(line, "event_type", "alert.signature_id", "alert.signature")
	if fields[0].String() != "alert" {
		return ""
	}
	signature := fields[2].String()
	if sid > 0 && fields[1].Int() == sid {
		return nonEmptySignature(signature, sid)
	}
	for _, m := range markers {
		if m != "" && strings.Contains(signature, m) {
			return signature
		}
	}
	return ""
}

func nonEmptySignature(signature string, sid int64) string {
	if signature != "" {
		return signature
	}
	return fmt.Sprintf("sid %d", sid)
}
