package main

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/vertti/suricheck/pkg/cmdrun"
	"github.com/vertti/suricheck/pkg/config"
	"github.com/vertti/suricheck/pkg/fsprobe"
	"github.com/vertti/suricheck/pkg/harness"
	"github.com/vertti/suricheck/pkg/logging"
	"github.com/vertti/suricheck/pkg/output"
)

// ErrChecksFailed is returned when at least one check failed.
// The returned error causes main to exit with code 1.
var ErrChecksFailed = errors.New("one or more checks failed")

var (
	configPath string
	verbose    bool
	noColor    bool
)

var rootCmd = &cobra.Command{
	Use:   "suricheck",
	Short: "Smoke-test a Suricata installation",
	Long: "suricheck checks that Suricata is installed, its configuration loads, the service runs,\n" +
		"rules are deployed, and that loopback ICMP traffic produces a test alert.\n" +
		"Exits 0 when every check passes, 1 otherwise.",
	Version:       Version,
	Args:          cobra.NoArgs,
	SilenceUsage:  true,
	SilenceErrors: true,
	RunE:          runChecks,
}

func init() {
	rootCmd.Flags().StringVar(&configPath, "config", "", "TOML file overriding binary, service, paths and timeouts")
	rootCmd.Flags().BoolVarP(&verbose, "verbose", "v", false, "log every spawned command to stderr")
	rootCmd.Flags().BoolVar(&noColor, "no-color", false, "disable ANSI colors")
}

func runChecks(cmd *cobra.Command, _ []string) error {
	cfg, err := config.Load(configPath)
	if err != nil {
		_, _ = fmt.Fprintf(cmd.ErrOrStderr(), "Error: %v\n", err)
		return err
	}

	if noColor {
		output.DisableColor()
	}

	level := "info"
	if verbose {
		level = "debug"
	}
	logger := logging.New(logging.Options{Level: level, Writer: cmd.ErrOrStderr()})

	runner, err := harness.New(cfg, harness.Deps{
		Runner:  &cmdrun.RealRunner{Logger: logger},
		FS:      &fsprobe.RealFileSystem{},
		Printer: &output.Printer{Out: cmd.OutOrStdout()},
		Logger:  logger,
	})
	if err != nil {
		_, _ = fmt.Fprintf(cmd.ErrOrStderr(), "Error: %v\n", err)
		return err
	}

	if code := runner.RunAll(); code != harness.ExitOK {
		return ErrChecksFailed
	}
	return nil
}
