package config

import (
	"errors"
	"fmt"
	"strings"

	"github.com/vertti/suricheck/pkg/version"
)

// Validate ensures the configuration is usable.
func (c *Config) Validate() error {
	if strings.TrimSpace(c.Binary) == "" {
		return errors.New("binary must be set")
	}
	if strings.TrimSpace(c.Service) == "" {
		return errors.New("service must be set")
	}
	if strings.TrimSpace(c.ProcessName) == "" {
		return errors.New("process_name must be set")
	}
	if strings.TrimSpace(c.SuccessMarker) == "" {
		return errors.New("success_marker must be set")
	}
	if strings.TrimSpace(c.RuleGlob) == "" {
		return errors.New("rule_glob must be set")
	}
	if _, err := version.ParseOptional(c.MinVersion); err != nil {
		return fmt.Errorf("min_version: %w", err)
	}
	if err := c.validatePaths(); err != nil {
		return err
	}
	if err := c.validateDetection(); err != nil {
		return err
	}
	return c.validateTiming()
}

func (c *Config) validatePaths() error {
	if len(c.Paths.Config) == 0 {
		return errors.New("paths.config must list at least one candidate")
	}
	if len(c.Paths.RulesDirs) == 0 {
		return errors.New("paths.rules_dirs must list at least one candidate")
	}
	if len(c.Paths.AlertLogs) == 0 {
		return errors.New("paths.alert_logs must list at least one candidate")
	}
	return nil
}

func (c *Config) validateDetection() error {
	if strings.TrimSpace(c.Detection.PingTarget) == "" {
		return errors.New("detection.ping_target must be set")
	}
	if c.Detection.PingCount <= 0 {
		return errors.New("detection.ping_count must be positive")
	}
	if c.Detection.TailLines <= 0 {
		return errors.New("detection.tail_lines must be positive")
	}
	if len(c.Detection.Markers) == 0 && c.Detection.TestSID <= 0 {
		return errors.New("detection needs at least one marker or a test_sid")
	}
	return nil
}

func (c *Config) validateTiming() error {
	if c.Timing.ConfigTimeoutSeconds <= 0 {
		return errors.New("timing.config_timeout_seconds must be positive")
	}
	if c.Timing.TrafficTimeoutSeconds <= 0 {
		return errors.New("timing.traffic_timeout_seconds must be positive")
	}
	if c.Timing.StepDelaySeconds < 0 || c.Timing.SettleDelaySeconds < 0 {
		return errors.New("timing delays must not be negative")
	}
	return nil
}
