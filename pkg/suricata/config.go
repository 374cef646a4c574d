package suricata

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/vertti/suricheck/pkg/check"
	"github.com/vertti/suricheck/pkg/cmdrun"
	"github.com/vertti/suricheck/pkg/fsprobe"
)

// DefaultConfigTimeout bounds "suricata -T" when Timeout is unset.
const DefaultConfigTimeout = 30 * time.Second

// ConfigCheck runs the daemon in test mode against the first config file
// that exists among Candidates.
type ConfigCheck struct {
	Binary        string             // executable name or path
	Candidates    []string           // config paths, primary first
	SuccessMarker string             // substring printed on a clean load
	Timeout       time.Duration      // bound on the validation run
	Runner        cmdrun.Runner      // injected for testing
	FS            fsprobe.FileSystem // injected for testing
}

// Run executes the configuration check.
func (c *ConfigCheck) Run() check.Result {
	result := check.Result{Name: NameConfiguration}

	path, err := fsprobe.Resolve(c.FS, c.Candidates...)
	if err != nil {
		return result.Fail(fmt.Sprintf("Configuration file not found at %s", path), err)
	}
	result.AddDetailf("Config: %s", path)

	timeout := c.Timeout
	if timeout == 0 {
		timeout = DefaultConfigTimeout
	}
	ctx, cancel := context.WithTimeout(context.Background(), timeout)
	defer cancel()

	stdout, stderr, err := c.Runner.RunCommand(ctx, c.Binary, "-T", "-c", path)
	if errors.Is(err, check.ErrTimeout) {
		return result.Fail(fmt.Sprintf("Configuration test timed out after %s", timeout), err)
	}

	if strings.Contains(stdout, c.SuccessMarker) || strings.Contains(stderr, c.SuccessMarker) {
		c.addRuleSettings(&result, path)
		return result.Pass("Configuration test passed")
	}

	addDiagnostic(&result, firstNonEmpty(stderr, stdout), err)
	if err == nil {
		err = fmt.Errorf("validation output does not contain %q", c.SuccessMarker)
	}
	return result.Fail("Configuration test failed", err)
}

func (c *ConfigCheck) addRuleSettings(result *check.Result, path string) {
	settings, err := ReadRuleSettings(c.FS, path)
	if err != nil {
		return
	}
	if settings.DefaultRulePath != "" {
		result.AddDetailf("Rule path: %s", settings.DefaultRulePath)
	}
	if len(settings.RuleFiles) > 0 {
		result.AddDetailf("Rule files: %s", strings.Join(settings.RuleFiles, ", "))
	}
}
