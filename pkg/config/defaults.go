package config

const (
	defaultBinary        = "suricata"
	defaultService       = "suricata"
	defaultSuccessMarker = "Configuration provided was successfully loaded"
	defaultRuleGlob      = "*.rules"
	defaultPingTarget    = "127.0.0.1"
	defaultPingCount     = 3
	defaultTestMarker    = "TEST RULE"
	defaultTestSID       = 1000010
	defaultTailLines     = 10
	defaultConfigTimeout = 30
	defaultPingTimeout   = 10
	defaultStepDelay     = 1
	defaultSettleDelay   = 2
)

// Default returns a Config describing a stock Suricata deployment with a
// repository-local fallback layout under ./config and ./logs.
func Default() Config {
	return Config{
		Binary:        defaultBinary,
		Service:       defaultService,
		ProcessName:   defaultBinary,
		SuccessMarker: defaultSuccessMarker,
		RuleGlob:      defaultRuleGlob,
		Paths: Paths{
			Config: []string{
				"/etc/suricata/suricata.yaml",
				"./config/suricata.yaml",
			},
			RulesDirs: []string{
				"/etc/suricata/rules",
				"./config/rules",
			},
			AlertLogs: []string{
				"/var/log/suricata/fast.log",
				"/var/log/suricata/eve.json",
				"./logs/suricata/fast.log",
				"./logs/suricata/eve.json",
			},
		},
		Detection: Detection{
			PingTarget: defaultPingTarget,
			PingCount:  defaultPingCount,
			Markers:    []string{defaultTestMarker},
			TestSID:    defaultTestSID,
			TailLines:  defaultTailLines,
		},
		Timing: Timing{
			ConfigTimeoutSeconds:  defaultConfigTimeout,
			TrafficTimeoutSeconds: defaultPingTimeout,
			StepDelaySeconds:      defaultStepDelay,
			SettleDelaySeconds:    defaultSettleDelay,
		},
	}
}
