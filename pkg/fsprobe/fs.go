// Package fsprobe reads the parts of the Suricata filesystem contract the
// checks need: path fallbacks, rule globs and log tails.
package fsprobe

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"path/filepath"
	"runtime"
	"strings"

	"github.com/vertti/suricheck/pkg/check"
)

// FileSystem abstracts file system operations for testability.
type FileSystem interface {
	Stat(name string) (fs.FileInfo, error)
	Glob(pattern string) ([]string, error)
	ReadFile(name string, limit int64) ([]byte, error)
	TailLines(name string, n int) ([]string, error)
}

// RealFileSystem implements FileSystem using the actual file system.
type RealFileSystem struct{}

// Stat returns file info for the given path.
func (r *RealFileSystem) Stat(name string) (fs.FileInfo, error) {
	return os.Stat(name)
}

// Glob returns the names of all files matching pattern.
func (r *RealFileSystem) Glob(pattern string) ([]string, error) {
	return filepath.Glob(pattern)
}

// ReadFile reads a file's contents, optionally limited to the first `limit` bytes.
// If limit is 0 or negative, reads the entire file.
func (r *RealFileSystem) ReadFile(name string, limit int64) ([]byte, error) {
	if limit <= 0 {
		return os.ReadFile(name) //nolint:gosec // paths come from the harness config
	}

	f, err := os.Open(name) //nolint:gosec // paths come from the harness config
	if err != nil {
		return nil, err
	}
	defer func() { _ = f.Close() }()

	return io.ReadAll(io.LimitReader(f, limit))
}

// TailLines returns at most the last n lines of the file, oldest first.
func (r *RealFileSystem) TailLines(name string, n int) ([]string, error) {
	if n <= 0 {
		return nil, nil
	}

	f, err := os.Open(name) //nolint:gosec // paths come from the harness config
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil, fmt.Errorf("%s: %w", name, check.ErrFileNotFound)
		}
		return nil, fmt.Errorf("open log file: %w", err)
	}
	defer func() { _ = f.Close() }()

	// Lines are read whole so an oversized record outside the window
	// cannot fail the read.
	reader := bufio.NewReader(f)

	ring := make([]string, n)
	count := 0
	idx := 0
	for {
		line, err := reader.ReadString('\n')
		if line != "" {
			ring[idx] = strings.TrimSuffix(strings.TrimSuffix(line, "\n"), "\r")
			idx = (idx + 1) % n
			if count < n {
				count++
			}
		}
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("read log file: %w", err)
		}
	}

	lines := make([]string, count)
	if count == n {
		for i := 0; i < count; i++ {
			lines[i] = ring[(idx+i)%n]
		}
	} else {
		copy(lines, ring[:count])
	}
	return lines, nil
}

// EscapeGlob quotes the pattern metacharacters in a literal path so it can
// prefix a Glob pattern.
func EscapeGlob(path string) string {
	if runtime.GOOS == "windows" {
		return path
	}
	var b strings.Builder
	for _, r := range path {
		switch r {
		case '*', '?', '[', '\\':
			b.WriteByte('\\')
		}
		b.WriteRune(r)
	}
	return b.String()
}

// Exists reports whether path can be stat'ed.
func Exists(fsys FileSystem, path string) bool {
	_, err := fsys.Stat(path)
	return err == nil
}

// Resolve returns the first candidate that exists. When none exists it
// returns the last candidate together with an error wrapping
// check.ErrFileNotFound, so callers can name the path they gave up on.
func Resolve(fsys FileSystem, candidates ...string) (string, error) {
	if len(candidates) == 0 {
		return "", fmt.Errorf("no candidate paths: %w", check.ErrFileNotFound)
	}
	for _, c := range candidates {
		if Exists(fsys, c) {
			return c, nil
		}
	}
	last := candidates[len(candidates)-1]
	return last, fmt.Errorf("%s: %w", last, check.ErrFileNotFound)
}
