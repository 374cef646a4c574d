package suricheck_test

import (
	"bytes"
	"context"
	"os"
	"os/exec"
	"path/filepath"
	"runtime"
	"testing"
	"time"

	"github.com/vertti/suricheck/pkg/check"
	"github.com/vertti/suricheck/pkg/cmdrun"
	"github.com/vertti/suricheck/pkg/config"
	"github.com/vertti/suricheck/pkg/fsprobe"
	"github.com/vertti/suricheck/pkg/harness"
	"github.com/vertti/suricheck/pkg/output"
	"github.com/vertti/suricheck/pkg/suricata"
)

// Integration tests verify Real* implementations work with actual processes
// and files. Unit tests in each package cover edge cases.

const fakeSuricata = `#!/bin/sh
case "$1" in
  --build-info) echo "This is Suricata version 7.0.2 RELEASE"; exit 0 ;;
  -T) echo "Notice: suricata: Configuration provided was successfully loaded. Exiting." >&2; exit 0 ;;
  --hang) exec sleep 5 ;;
esac
exit 1
`

func installFakeSuricata(t *testing.T) string {
	t.Helper()
	if runtime.GOOS == "windows" {
		t.Skip("requires a POSIX shell")
	}
	bin := t.TempDir()
	path := filepath.Join(bin, "suricata")
	if err := os.WriteFile(path, []byte(fakeSuricata), 0o755); err != nil { //nolint:gosec // test executable
		t.Fatalf("write fake binary: %v", err)
	}
	t.Setenv("PATH", bin+string(os.PathListSeparator)+os.Getenv("PATH"))
	return path
}

func TestIntegration_Install(t *testing.T) {
	installFakeSuricata(t)

	c := suricata.InstallCheck{Binary: "suricata", Runner: &cmdrun.RealRunner{}}
	result := c.Run()

	if result.Status != check.StatusOK {
		t.Errorf("Status = %v, want OK (message: %s, details: %v)", result.Status, result.Message, result.Details)
	}
}

func TestIntegration_Config(t *testing.T) {
	installFakeSuricata(t)
	yamlPath := filepath.Join(t.TempDir(), "suricata.yaml")
	if err := os.WriteFile(yamlPath, []byte("default-rule-path: /etc/suricata/rules\n"), 0o600); err != nil {
		t.Fatal(err)
	}

	c := suricata.ConfigCheck{
		Binary:        "suricata",
		Candidates:    []string{yamlPath},
		SuccessMarker: config.Default().SuccessMarker,
		Runner:        &cmdrun.RealRunner{},
		FS:            &fsprobe.RealFileSystem{},
	}
	result := c.Run()

	if result.Status != check.StatusOK {
		t.Errorf("Status = %v, want OK (message: %s, details: %v)", result.Status, result.Message, result.Details)
	}
}

func TestIntegration_Timeout(t *testing.T) {
	installFakeSuricata(t)

	runner := &cmdrun.RealRunner{}
	ctx, cancel := context.WithTimeout(context.Background(), 100*time.Millisecond)
	defer cancel()

	_, _, err := runner.RunCommand(ctx, "suricata", "--hang")
	if check.Kind(err) != "command-timeout" {
		t.Errorf("Kind = %q, want command-timeout (err: %v)", check.Kind(err), err)
	}
}

func TestIntegration_Traffic(t *testing.T) {
	if _, err := exec.LookPath("ping"); err != nil {
		t.Skip("ping not available")
	}

	c := suricata.TrafficCheck{Target: "127.0.0.1", Count: 1, Runner: &cmdrun.RealRunner{}}
	result := c.Run()

	// Unprivileged containers may forbid ICMP sockets; only require a clean verdict.
	if result.Status != check.StatusOK && result.Err == nil {
		t.Errorf("failed traffic check must carry an error: %+v", result)
	}
}

func TestIntegration_FullRun(t *testing.T) {
	installFakeSuricata(t)
	root := t.TempDir()
	write := func(rel, content string) {
		t.Helper()
		p := filepath.Join(root, rel)
		if err := os.MkdirAll(filepath.Dir(p), 0o755); err != nil {
			t.Fatal(err)
		}
		if err := os.WriteFile(p, []byte(content), 0o600); err != nil {
			t.Fatal(err)
		}
	}
	write("config/suricata.yaml", "rule-files:\n  - local.rules\n")
	write("config/rules/local.rules", "alert icmp any any -> any any (msg:\"TEST RULE\"; sid:1000010;)\n")

	cfg := config.Default()
	cfg.Service = "suricheck-integration-missing-service"
	cfg.ProcessName = "suricheck-integration-missing-process"
	cfg.Paths.Config = []string{filepath.Join(root, "etc/suricata.yaml"), filepath.Join(root, "config/suricata.yaml")}
	cfg.Paths.RulesDirs = []string{filepath.Join(root, "etc/rules"), filepath.Join(root, "config/rules")}
	cfg.Paths.AlertLogs = []string{filepath.Join(root, "logs/fast.log")}

	var out bytes.Buffer
	r, err := harness.New(&cfg, harness.Deps{
		Runner:  &cmdrun.RealRunner{},
		FS:      &fsprobe.RealFileSystem{},
		Printer: &output.Printer{Out: &out},
	})
	if err != nil {
		t.Fatal(err)
	}
	r.Sleep = func(time.Duration) {}

	code := r.RunAll()

	if code != harness.ExitFailed {
		t.Errorf("exit code = %d, want %d without a running service", code, harness.ExitFailed)
	}
	for name, want := range map[string]bool{
		suricata.NameInstallation:  true,
		suricata.NameConfiguration: true,
		suricata.NameService:       false,
		suricata.NameDetection:     false,
		suricata.NameRules:         true,
	} {
		if got := r.Results.Get(name); got != want {
			t.Errorf("%s = %v, want %v\n%s", name, got, want, out.String())
		}
	}
}
