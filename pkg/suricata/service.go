package suricata

import (
	"context"
	"fmt"
	"strings"

	"github.com/vertti/suricheck/pkg/check"
	"github.com/vertti/suricheck/pkg/cmdrun"
)

// ServiceCheck asks the service supervisor whether the daemon is active and
// falls back to the process table when that answer is not a clear yes.
type ServiceCheck struct {
	Service     string        // systemd unit name
	ProcessName string        // name matched by pgrep
	Runner      cmdrun.Runner // injected for testing
}

// Run executes the service check.
func (c *ServiceCheck) Run() check.Result {
	result := check.Result{Name: NameService}
	ctx := context.Background()

	state, _, supervisorErr := c.Runner.RunCommand(ctx, "systemctl", "is-active", c.Service)
	if supervisorErr == nil && strings.Contains(state, "active") {
		return result.Pass("Suricata service is running")
	}

	pids, _, processErr := c.Runner.RunCommand(ctx, "pgrep", c.ProcessName)
	if processErr == nil {
		if fields := strings.Fields(pids); len(fields) > 0 {
			result.AddDetailf("PID: %s", strings.Join(fields, ", "))
		}
		return result.Pass("Suricata process is running")
	}

	if supervisorErr == nil {
		supervisorErr = fmt.Errorf("unexpected state %q", strings.TrimSpace(state))
	}
	return result.Fail("Suricata service is not running",
		fmt.Errorf("systemctl: %v; pgrep: %w", supervisorErr, processErr))
}
