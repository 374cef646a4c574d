package suricata

import (
	"context"
	"fmt"
	"strconv"
	"time"

	"github.com/vertti/suricheck/pkg/check"
	"github.com/vertti/suricheck/pkg/cmdrun"
)

// DefaultTrafficTimeout bounds the ping run when Timeout is unset.
const DefaultTrafficTimeout = 10 * time.Second

const defaultPingCount = 3

// TrafficCheck sends a few ICMP echo requests so the test rule has something
// to fire on.
type TrafficCheck struct {
	Target  string        // address to ping, normally loopback
	Count   int           // echo requests to send
	Timeout time.Duration // bound on the ping run
	Runner  cmdrun.Runner // injected for testing
}

// Run generates the test traffic.
func (c *TrafficCheck) Run() check.Result {
	result := check.Result{Name: "traffic"}

	timeout := c.Timeout
	if timeout == 0 {
		timeout = DefaultTrafficTimeout
	}
	ctx, cancel := context.WithTimeout(context.Background(), timeout)
	defer cancel()

	count := c.Count
	if count <= 0 {
		count = defaultPingCount
	}

	_, _, err := c.Runner.RunCommand(ctx, "ping", "-c", strconv.Itoa(count), c.Target)
	if err != nil {
		return result.Fail(fmt.Sprintf("Failed to generate test traffic: %v", err), err)
	}
	return result.Pass("Test traffic generated")
}
