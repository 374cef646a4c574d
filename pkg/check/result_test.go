package check

import (
	"errors"
	"fmt"
	"testing"
)

func TestStatus(t *testing.T) {
	if StatusOK != "OK" {
		t.Errorf("StatusOK = %q, want %q", StatusOK, "OK")
	}
	if StatusFail != "FAIL" {
		t.Errorf("StatusFail = %q, want %q", StatusFail, "FAIL")
	}
}

func TestResultOK(t *testing.T) {
	result := Result{Status: StatusOK}
	if !result.OK() {
		t.Error("OK() = false, want true for StatusOK")
	}

	result.Status = StatusFail
	if result.OK() {
		t.Error("OK() = true, want false for StatusFail")
	}

	var zero Result
	if zero.OK() {
		t.Error("OK() = true, want false for zero Result")
	}
}

func TestKind(t *testing.T) {
	tests := []struct {
		err  error
		want string
	}{
		{nil, ""},
		{fmt.Errorf("suricata: %w", ErrToolNotFound), "tool-not-found"},
		{fmt.Errorf("after 30s: %w", ErrTimeout), "command-timeout"},
		{fmt.Errorf("exit 1: %w", ErrNonZeroExit), "command-nonzero-exit"},
		{fmt.Errorf("./config/suricata.yaml: %w", ErrFileNotFound), "file-not-found"},
		{errors.New("boom"), "unexpected"},
	}

	for _, tt := range tests {
		if got := Kind(tt.err); got != tt.want {
			t.Errorf("Kind(%v) = %q, want %q", tt.err, got, tt.want)
		}
	}
}
