package suricata

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/Masterminds/semver/v3"

	"github.com/vertti/suricheck/pkg/check"
	"github.com/vertti/suricheck/pkg/cmdrun"
	"github.com/vertti/suricheck/pkg/version"
)

// InstallCheck verifies that the binary is on PATH and reports build info.
type InstallCheck struct {
	Binary     string          // executable name or path
	MinVersion *semver.Version // optional minimum version (inclusive)
	Runner     cmdrun.Runner   // injected for testing
}

// Run executes the installation check.
func (c *InstallCheck) Run() check.Result {
	result := check.Result{Name: NameInstallation}

	path, err := c.Runner.LookPath(c.Binary)
	if err != nil {
		return result.Fail("Suricata is not installed", fmt.Errorf("%s: %w", c.Binary, check.ErrToolNotFound))
	}
	result.AddDetailf("Path: %s", path)

	stdout, stderr, err := c.Runner.RunCommand(context.Background(), c.Binary, "--build-info")
	if err != nil {
		if errors.Is(err, check.ErrToolNotFound) {
			return result.Fail("Suricata is not installed", err)
		}
		addDiagnostic(&result, stderr, err)
		return result.Fail("Suricata build info unavailable", err)
	}
	if strings.TrimSpace(stdout) == "" {
		return result.Fail("Suricata returned no build info", errors.New("empty --build-info output"))
	}

	result.AddDetailf("Version: %s", version.DisplayToken(stdout))

	if c.MinVersion != nil {
		v, err := version.Extract(stdout)
		if err != nil {
			return result.Fail("Suricata version could not be determined", err)
		}
		if v.LessThan(c.MinVersion) {
			return result.Failf("Suricata %s is older than required %s", v.Original(), c.MinVersion.Original())
		}
	}

	return result.Pass("Suricata is installed")
}
