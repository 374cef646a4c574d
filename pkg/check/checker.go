package check

// Checker is implemented by all check types.
// Each check probes one aspect of the Suricata deployment
// and returns a Result indicating success or failure.
//
// Implementations:
//   - suricata.InstallCheck: binary present and reports build info
//   - suricata.ConfigCheck: suricata.yaml passes test mode
//   - suricata.ServiceCheck: daemon is supervised or running
//   - suricata.RulesCheck: rule files are deployed
//   - suricata.TrafficCheck: loopback ICMP sample can be sent
//   - suricata.AlertCheck: the test rule fired in a recent log line
type Checker interface {
	Run() Result
}
