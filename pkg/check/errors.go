package check

import "errors"

// Failure classes. Every probe failure wraps one of these (or is an
// unexpected error) and is downgraded to a failed Result, never a crash.
var (
	ErrToolNotFound = errors.New("tool not found")
	ErrTimeout      = errors.New("command timed out")
	ErrNonZeroExit  = errors.New("command exited with non-zero status")
	ErrFileNotFound = errors.New("file not found")
)

// Kind names the failure class of err for diagnostics.
func Kind(err error) string {
	switch {
	case err == nil:
		return ""
	case errors.Is(err, ErrToolNotFound):
		return "tool-not-found"
	case errors.Is(err, ErrTimeout):
		return "command-timeout"
	case errors.Is(err, ErrNonZeroExit):
		return "command-nonzero-exit"
	case errors.Is(err, ErrFileNotFound):
		return "file-not-found"
	default:
		return "unexpected"
	}
}
