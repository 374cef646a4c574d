package suricata

import (
	"fmt"

	"gopkg.in/yaml.v3"

	"github.com/vertti/suricheck/pkg/fsprobe"
)

// maxConfigBytes caps how much of suricata.yaml is read.
const maxConfigBytes = 4 << 20

// RuleSettings are the rule-loading keys of suricata.yaml.
type RuleSettings struct {
	DefaultRulePath string   `yaml:"default-rule-path"`
	RuleFiles       []string `yaml:"rule-files"`
}

// ReadRuleSettings extracts the rule-loading keys from a suricata.yaml.
// The file is only read, never rewritten.
func ReadRuleSettings(fsys fsprobe.FileSystem, path string) (RuleSettings, error) {
	var settings RuleSettings

	data, err := fsys.ReadFile(path, maxConfigBytes)
	if err != nil {
		return settings, fmt.Errorf("read config: %w", err)
	}
	if err := yaml.Unmarshal(data, &settings); err != nil {
		return settings, fmt.Errorf("unmarshal config: %w", err)
	}
	return settings, nil
}
