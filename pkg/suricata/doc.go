// Package suricata implements the probes run against a Suricata deployment.
//
// Every probe treats the daemon as an opaque executable plus a filesystem
// contract (config file, rules directory, alert logs). A probe never returns
// an error: tool-not-found, timeouts, non-zero exits, missing files and
// unexpected errors all become a failed check.Result carrying the cause in
// Err and a human-readable diagnostic in Details.
package suricata

// Result keys, in the order the summary reports them.
const (
	NameInstallation  = "installation"
	NameConfiguration = "configuration"
	NameService       = "service"
	NameDetection     = "detection"
	NameRules         = "rules"
)

// maxDiagnosticLines caps how much captured output a failure echoes.
const maxDiagnosticLines = 5
