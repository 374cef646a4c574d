package suricata

import (
	"context"
	"fmt"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vertti/suricheck/pkg/check"
	"github.com/vertti/suricheck/pkg/cmdrun"
	"github.com/vertti/suricheck/pkg/fsprobe"
	"github.com/vertti/suricheck/pkg/testutil"
)

const loadedMarker = "Configuration provided was successfully loaded"

const sampleSuricataYAML = `%YAML 1.1
---
vars:
  address-groups:
    HOME_NET: "[192.168.0.0/16]"
default-rule-path: /var/lib/suricata/rules
rule-files:
  - suricata.rules
  - local.rules
`

func newConfigCheck(t *testing.T, runner *cmdrun.MockRunner) (*ConfigCheck, string, string) {
	t.Helper()
	dir := t.TempDir()
	primary := filepath.Join(dir, "etc", "suricata.yaml")
	fallback := filepath.Join(dir, "config", "suricata.yaml")
	return &ConfigCheck{
		Binary:        "suricata",
		Candidates:    []string{primary, fallback},
		SuccessMarker: loadedMarker,
		Timeout:       30 * time.Second,
		Runner:        runner,
		FS:            &fsprobe.RealFileSystem{},
	}, primary, fallback
}

func TestConfigCheck_FileMissing(t *testing.T) {
	runner, calls := scriptedRunner(nil)
	c, _, fallback := newConfigCheck(t, runner)

	result := c.Run()

	assert.False(t, result.OK())
	assert.Equal(t, fmt.Sprintf("Configuration file not found at %s", fallback), result.Message)
	assert.ErrorIs(t, result.Err, check.ErrFileNotFound)
	assert.Empty(t, *calls)
}

func TestConfigCheck_UsesFallbackAndPasses(t *testing.T) {
	runner, calls := scriptedRunner(map[string]reply{
		"suricata": {stdout: "Info: " + loadedMarker + "\n"},
	})
	c, _, fallback := newConfigCheck(t, runner)
	writeFile(t, fallback, sampleSuricataYAML)

	result := c.Run()

	require.True(t, result.OK(), "details: %v", result.Details)
	assert.Equal(t, "Configuration test passed", result.Message)
	require.Len(t, *calls, 1)
	assert.Equal(t, []string{"-T", "-c", fallback}, (*calls)[0].args)
	assert.True(t, (*calls)[0].hasDeadline, "validation must run with a timeout")
	assert.True(t, testutil.ContainsDetail(result.Details, "Rule path: /var/lib/suricata/rules"))
	assert.True(t, testutil.ContainsDetail(result.Details, "Rule files: suricata.rules, local.rules"))
}

func TestConfigCheck_PrefersPrimary(t *testing.T) {
	runner, calls := scriptedRunner(map[string]reply{
		"suricata": {stderr: loadedMarker},
	})
	c, primary, fallback := newConfigCheck(t, runner)
	writeFile(t, primary, "not: [valid yaml")
	writeFile(t, fallback, sampleSuricataYAML)

	result := c.Run()

	require.True(t, result.OK())
	assert.Equal(t, []string{"-T", "-c", primary}, (*calls)[0].args)
	assert.False(t, testutil.ContainsDetail(result.Details, "Rule path"),
		"unparseable yaml must not add rule settings")
}

func TestConfigCheck_ValidationFails(t *testing.T) {
	runner, _ := scriptedRunner(map[string]reply{
		"suricata": {
			stdout: "Notice: loading\n",
			stderr: "Error: bad rule at line 3\nError: 1 rule failed\n",
			err:    exitErr(1),
		},
	})
	c, primary, _ := newConfigCheck(t, runner)
	writeFile(t, primary, sampleSuricataYAML)

	result := c.Run()

	assert.False(t, result.OK())
	assert.Equal(t, "Configuration test failed", result.Message)
	assert.Equal(t, "command-nonzero-exit", check.Kind(result.Err))
	assert.True(t, testutil.ContainsDetail(result.Details, "Error: Error: bad rule at line 3"))
	assert.True(t, testutil.ContainsDetail(result.Details, "Error: 1 rule failed"))
}

func TestConfigCheck_ZeroExitWithoutMarkerFails(t *testing.T) {
	runner, _ := scriptedRunner(map[string]reply{
		"suricata": {stdout: "something else entirely"},
	})
	c, primary, _ := newConfigCheck(t, runner)
	writeFile(t, primary, sampleSuricataYAML)

	result := c.Run()

	assert.False(t, result.OK())
	assert.Contains(t, result.Err.Error(), loadedMarker)
	assert.True(t, testutil.ContainsDetail(result.Details, "something else entirely"))
}

func TestConfigCheck_Timeout(t *testing.T) {
	var deadline time.Duration
	runner, _ := scriptedRunner(nil)
	runner.RunCommandFunc = func(ctx context.Context, name string, args ...string) (string, string, error) {
		d, ok := ctx.Deadline()
		require.True(t, ok)
		deadline = time.Until(d)
		return "", "", fmt.Errorf("%w: signal: killed", check.ErrTimeout)
	}
	c, primary, _ := newConfigCheck(t, runner)
	writeFile(t, primary, sampleSuricataYAML)

	result := c.Run()

	assert.False(t, result.OK())
	assert.Equal(t, "Configuration test timed out after 30s", result.Message)
	assert.ErrorIs(t, result.Err, check.ErrTimeout)
	assert.Greater(t, deadline, 29*time.Second)
}
