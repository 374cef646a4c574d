package suricata

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/vertti/suricheck/pkg/check"
	"github.com/vertti/suricheck/pkg/cmdrun"
)

// call records one RunCommand invocation.
type call struct {
	name        string
	args        []string
	hasDeadline bool
}

// reply is a canned RunCommand response.
type reply struct {
	stdout, stderr string
	err            error
}

// scriptedRunner answers RunCommand from a table keyed by command name and
// records every call.
func scriptedRunner(replies map[string]reply) (*cmdrun.MockRunner, *[]call) {
	calls := &[]call{}
	m := &cmdrun.MockRunner{
		RunCommandFunc: func(ctx context.Context, name string, args ...string) (string, string, error) {
			_, hasDeadline := ctx.Deadline()
			*calls = append(*calls, call{name: name, args: args, hasDeadline: hasDeadline})
			r, ok := replies[name]
			if !ok {
				return "", "", fmt.Errorf("%s: %w", name, check.ErrToolNotFound)
			}
			return r.stdout, r.stderr, r.err
		},
	}
	return m, calls
}

func exitErr(code int) error {
	return fmt.Errorf("%w: exit code %d", check.ErrNonZeroExit, code)
}

func writeFile(t *testing.T, path, content string) {
	t.Helper()
	require.NoError(t, os.MkdirAll(filepath.Dir(path), 0o755))
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
}

func joinLines(lines ...string) string {
	return strings.Join(lines, "\n") + "\n"
}
