package output

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/jedib0t/go-pretty/v6/text"
	"github.com/jwalton/go-supportscolor"

	"github.com/vertti/suricheck/pkg/check"
)

var (
	green = "\033[92m"
	red   = "\033[91m"
	reset = "\033[0m"
)

func init() {
	if !supportscolor.Stdout().SupportsColor {
		DisableColor()
	}
}

// DisableColor strips ANSI sequences from all subsequent output.
func DisableColor() {
	green, red, reset = "", "", ""
}

const ruleWidth = 60

// Printer writes the human-readable report.
type Printer struct {
	Out io.Writer // defaults to os.Stdout
}

func (p *Printer) w() io.Writer {
	if p.Out == nil {
		return os.Stdout
	}
	return p.Out
}

// Banner prints a title between two horizontal rules.
func (p *Printer) Banner(title string) {
	rule := strings.Repeat("=", ruleWidth)
	_, _ = fmt.Fprintf(p.w(), "%s\n%s\n%s\n", rule, title, rule)
}

// Section announces a check about to run.
func (p *Printer) Section(name string) {
	_, _ = fmt.Fprintf(p.w(), "\n[+] Running %s...\n", name)
}

// Step announces a sub-step of the detection check.
func (p *Printer) Step(message string) {
	_, _ = fmt.Fprintf(p.w(), "\n[>] %s\n", message)
}

// PrintResult outputs a check result with colored status.
func (p *Printer) PrintResult(r check.Result) {
	message := r.Message
	if message == "" {
		message = r.Name
	}
	if r.OK() {
		_, _ = fmt.Fprintf(p.w(), "%s[✓] %s%s\n", green, message, reset)
	} else {
		_, _ = fmt.Fprintf(p.w(), "%s[✗] %s%s\n", red, message, reset)
	}
	for _, d := range r.Details {
		_, _ = fmt.Fprintf(p.w(), "  %s\n", d)
	}
}

// SummaryRow is one line of the final table.
type SummaryRow struct {
	Name   string
	Passed bool
}

// Summary prints the PASS/FAIL table, the pass count and the verdict.
func (p *Printer) Summary(rows []SummaryRow) {
	_, _ = fmt.Fprintf(p.w(), "\n%s\n", strings.Repeat("=", ruleWidth))
	_, _ = fmt.Fprintln(p.w(), "TEST SUMMARY")
	_, _ = fmt.Fprintln(p.w(), strings.Repeat("=", ruleWidth))

	tw := table.NewWriter()
	tw.SetStyle(table.StyleRounded)
	tw.AppendHeader(table.Row{"Check", "Status"})

	passed := 0
	for _, row := range rows {
		status := red + "FAIL" + reset
		if row.Passed {
			passed++
			status = green + "PASS" + reset
		}
		tw.AppendRow(table.Row{row.Name, status})
	}
	tw.SetColumnConfigs([]table.ColumnConfig{
		{Number: 1, Align: text.AlignLeft, AlignHeader: text.AlignLeft},
		{Number: 2, Align: text.AlignLeft, AlignHeader: text.AlignLeft},
	})
	_, _ = fmt.Fprintln(p.w(), tw.Render())

	total := len(rows)
	_, _ = fmt.Fprintf(p.w(), "\nTotal: %d/%d checks passed\n", passed, total)
	if passed == total {
		_, _ = fmt.Fprintf(p.w(), "%s[✓] All checks passed successfully!%s\n", green, reset)
	} else {
		_, _ = fmt.Fprintf(p.w(), "%s[!] %d check(s) failed%s\n", red, total-passed, reset)
	}
}
