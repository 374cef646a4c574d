// Package harness runs the Suricata probes in their fixed order, records a
// pass/fail bit per check and turns the tally into an exit code.
package harness

import (
	"fmt"
	"log/slog"
	"time"

	"github.com/vertti/suricheck/pkg/check"
	"github.com/vertti/suricheck/pkg/logging"
	"github.com/vertti/suricheck/pkg/output"
	"github.com/vertti/suricheck/pkg/suricata"
)

// Exit codes returned by RunAll.
const (
	ExitOK     = 0
	ExitFailed = 1
)

const bannerTitle = "Suricata Test Suite"

// Step is one of the base checks run unconditionally.
type Step struct {
	Name  string // ResultSet key
	Title string // shown as "[+] Running <Title>..."
	Check check.Checker
}

// Runner is the check pipeline. Checks run strictly one after another.
type Runner struct {
	Steps       []Step        // installation, configuration, service, rules
	Traffic     check.Checker // run only when the service check passed
	Alerts      check.Checker // run after Traffic and SettleDelay
	StepDelay   time.Duration // pause after each base step
	SettleDelay time.Duration // pause between traffic and alert scan

	Sleep   func(time.Duration) // defaults to time.Sleep
	Printer *output.Printer
	Logger  *slog.Logger

	Results *ResultSet
}

// RunAll executes every check once, prints the report and returns ExitOK
// only if all checks passed.
func (r *Runner) RunAll() int {
	r.defaults()

	r.Printer.Banner(bannerTitle)

	for _, step := range r.Steps {
		r.Printer.Section(step.Title)
		res := r.run(step.Name, step.Check)
		r.Results.Set(step.Name, res.OK())
		r.sleep(r.StepDelay)
	}

	if r.Results.Get(suricata.NameService) {
		r.Printer.Section("Detection Test")

		r.Printer.Step("Generating test traffic...")
		r.run("traffic", r.Traffic)
		r.sleep(r.SettleDelay)

		r.Printer.Step("Checking for alerts...")
		res := r.run(suricata.NameDetection, r.Alerts)
		r.Results.Set(suricata.NameDetection, res.OK())
	} else {
		r.Logger.Debug("skipping detection test", "reason", "service not running")
	}

	rows := make([]output.SummaryRow, 0, r.Results.Len())
	for _, e := range r.Results.Entries() {
		rows = append(rows, output.SummaryRow{Name: e.Name, Passed: e.Passed})
	}
	r.Printer.Summary(rows)

	if r.Results.AllPassed() {
		return ExitOK
	}
	return ExitFailed
}

// run executes one check and prints it. A panicking check counts as failed.
func (r *Runner) run(name string, c check.Checker) (res check.Result) {
	start := time.Now()
	defer func() {
		if p := recover(); p != nil {
			res = check.Result{Name: name}
			res.Fail(fmt.Sprintf("%s check crashed: %v", name, p), fmt.Errorf("panic: %v", p))
		}
		r.Printer.PrintResult(res)
		r.Logger.Debug("check finished",
			"check", name,
			"status", res.Status,
			"kind", check.Kind(res.Err),
			"duration", time.Since(start).Round(time.Millisecond),
		)
	}()

	if c == nil {
		res = check.Result{Name: name}
		return res.Fail(fmt.Sprintf("%s check not configured", name), fmt.Errorf("no %s check", name))
	}
	return c.Run()
}

func (r *Runner) sleep(d time.Duration) {
	if d > 0 {
		r.Sleep(d)
	}
}

func (r *Runner) defaults() {
	if r.Sleep == nil {
		r.Sleep = time.Sleep
	}
	if r.Printer == nil {
		r.Printer = &output.Printer{}
	}
	if r.Logger == nil {
		r.Logger = logging.NewNop()
	}
	if r.Results == nil {
		r.Results = DefaultResultSet()
	}
}
