package suricata

import (
	"fmt"
	"path/filepath"
	"sort"

	"github.com/vertti/suricheck/pkg/check"
	"github.com/vertti/suricheck/pkg/fsprobe"
)

// listedRuleFiles is how many rule file names are printed by name.
const listedRuleFiles = 3

// RulesCheck verifies that rule files are deployed in the first rules
// directory that exists among Dirs.
type RulesCheck struct {
	Dirs    []string           // rules directories, primary first
	Pattern string             // glob such as "*.rules"
	FS      fsprobe.FileSystem // injected for testing
}

// Run executes the rules check.
func (c *RulesCheck) Run() check.Result {
	result := check.Result{Name: NameRules}

	// A missing directory simply yields no matches below.
	dir, _ := fsprobe.Resolve(c.FS, c.Dirs...)

	files, err := c.FS.Glob(filepath.Join(fsprobe.EscapeGlob(dir), c.Pattern))
	if err != nil {
		return result.Failf("invalid rule pattern %q: %v", c.Pattern, err)
	}
	if len(files) == 0 {
		return result.Fail("No rule files found",
			fmt.Errorf("no %s in %s: %w", c.Pattern, dir, check.ErrFileNotFound))
	}
	sort.Strings(files)

	for _, f := range files[:min(len(files), listedRuleFiles)] {
		result.AddDetailf("- %s", filepath.Base(f))
	}
	if extra := len(files) - listedRuleFiles; extra > 0 {
		result.AddDetailf("... and %d more", extra)
	}

	if digest, err := RulesetDigest(c.FS, files); err == nil {
		result.AddDetailf("Ruleset digest: %s", digest)
	}

	return result.Passf("Found %d rule files", len(files))
}
