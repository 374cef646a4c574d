package harness

import (
	"fmt"
	"log/slog"

	"github.com/vertti/suricheck/pkg/cmdrun"
	"github.com/vertti/suricheck/pkg/config"
	"github.com/vertti/suricheck/pkg/fsprobe"
	"github.com/vertti/suricheck/pkg/output"
	"github.com/vertti/suricheck/pkg/suricata"
	"github.com/vertti/suricheck/pkg/version"
)

// Deps are the side-effecting collaborators of a Runner.
type Deps struct {
	Runner  cmdrun.Runner
	FS      fsprobe.FileSystem
	Printer *output.Printer
	Logger  *slog.Logger
}

// New wires the Suricata checks described by cfg into a Runner.
func New(cfg *config.Config, deps Deps) (*Runner, error) {
	minVersion, err := version.ParseOptional(cfg.MinVersion)
	if err != nil {
		return nil, fmt.Errorf("min_version: %w", err)
	}

	return &Runner{
		Steps: []Step{
			{
				Name:  suricata.NameInstallation,
				Title: "Installation Test",
				Check: &suricata.InstallCheck{
					Binary:     cfg.Binary,
					MinVersion: minVersion,
					Runner:     deps.Runner,
				},
			},
			{
				Name:  suricata.NameConfiguration,
				Title: "Configuration Test",
				Check: &suricata.ConfigCheck{
					Binary:        cfg.Binary,
					Candidates:    cfg.Paths.Config,
					SuccessMarker: cfg.SuccessMarker,
					Timeout:       cfg.ConfigTimeout(),
					Runner:        deps.Runner,
					FS:            deps.FS,
				},
			},
			{
				Name:  suricata.NameService,
				Title: "Service Test",
				Check: &suricata.ServiceCheck{
					Service:     cfg.Service,
					ProcessName: cfg.ProcessName,
					Runner:      deps.Runner,
				},
			},
			{
				Name:  suricata.NameRules,
				Title: "Rules Test",
				Check: &suricata.RulesCheck{
					Dirs:    cfg.Paths.RulesDirs,
					Pattern: cfg.RuleGlob,
					FS:      deps.FS,
				},
			},
		},
		Traffic: &suricata.TrafficCheck{
			Target:  cfg.Detection.PingTarget,
			Count:   cfg.Detection.PingCount,
			Timeout: cfg.TrafficTimeout(),
			Runner:  deps.Runner,
		},
		Alerts: &suricata.AlertCheck{
			Logs:      cfg.Paths.AlertLogs,
			Markers:   cfg.Detection.Markers,
			TestSID:   cfg.Detection.TestSID,
			TailLines: cfg.Detection.TailLines,
			FS:        deps.FS,
		},
		StepDelay:   cfg.StepDelay(),
		SettleDelay: cfg.SettleDelay(),
		Printer:     deps.Printer,
		Logger:      deps.Logger,
		Results:     DefaultResultSet(),
	}, nil
}
