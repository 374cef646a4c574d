// Package config holds the harness settings: which binary and service to
// probe, where the Suricata filesystem contract lives, and the timeouts and
// pauses between checks. Defaults reproduce a stock Suricata install; a TOML
// file may override any subset.
package config

import (
	"errors"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/pelletier/go-toml/v2"
)

// Paths lists candidate locations, primary first.
type Paths struct {
	Config    []string `toml:"config"`
	RulesDirs []string `toml:"rules_dirs"`
	AlertLogs []string `toml:"alert_logs"`
}

// Detection describes the synthetic traffic and what the test rule logs.
type Detection struct {
	PingTarget string   `toml:"ping_target"`
	PingCount  int      `toml:"ping_count"`
	Markers    []string `toml:"markers"`
	TestSID    int64    `toml:"test_sid"`
	TailLines  int      `toml:"tail_lines"`
}

// Timing holds timeouts and pauses, all in seconds.
type Timing struct {
	ConfigTimeoutSeconds  int `toml:"config_timeout_seconds"`
	TrafficTimeoutSeconds int `toml:"traffic_timeout_seconds"`
	StepDelaySeconds      int `toml:"step_delay_seconds"`
	SettleDelaySeconds    int `toml:"settle_delay_seconds"`
}

// Config is the full harness configuration.
type Config struct {
	Binary        string    `toml:"binary"`
	Service       string    `toml:"service"`
	ProcessName   string    `toml:"process_name"`
	MinVersion    string    `toml:"min_version"`
	SuccessMarker string    `toml:"success_marker"`
	RuleGlob      string    `toml:"rule_glob"`
	Paths         Paths     `toml:"paths"`
	Detection     Detection `toml:"detection"`
	Timing        Timing    `toml:"timing"`
}

// Load returns the defaults overlaid with the TOML file at path. An empty
// path returns the defaults unchanged.
func Load(path string) (*Config, error) {
	cfg := Default()
	if strings.TrimSpace(path) == "" {
		return &cfg, nil
	}

	file, err := os.Open(path) //nolint:gosec // path supplied on the command line
	if err != nil {
		return nil, fmt.Errorf("open config: %w", err)
	}
	defer func() { _ = file.Close() }()

	decoder := toml.NewDecoder(file)
	decoder.DisallowUnknownFields()
	if err := decoder.Decode(&cfg); err != nil {
		var strict *toml.StrictMissingError
		if errors.As(err, &strict) {
			return nil, fmt.Errorf("decode config %s: %s", path, strict.String())
		}
		return nil, fmt.Errorf("decode config %s: %w", path, err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// ConfigTimeout bounds the "-T" validation run.
func (c *Config) ConfigTimeout() time.Duration {
	return time.Duration(c.Timing.ConfigTimeoutSeconds) * time.Second
}

// TrafficTimeout bounds the ping run.
func (c *Config) TrafficTimeout() time.Duration {
	return time.Duration(c.Timing.TrafficTimeoutSeconds) * time.Second
}

// StepDelay is the pause after each of the four base checks.
func (c *Config) StepDelay() time.Duration {
	return time.Duration(c.Timing.StepDelaySeconds) * time.Second
}

// SettleDelay is the pause between traffic generation and the alert scan.
func (c *Config) SettleDelay() time.Duration {
	return time.Duration(c.Timing.SettleDelaySeconds) * time.Second
}
