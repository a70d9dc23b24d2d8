package runlock

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/ukaji3/docbatch-go/pkg/docbatch"
)

func TestAcquireRelease(t *testing.T) {
	output := filepath.Join(t.TempDir(), "Outputs")

	lock, err := Acquire(output)
	if err != nil {
		t.Fatalf("Acquire failed: %v", err)
	}
	if lock.Path() != output+".lock" {
		t.Errorf("Path() = %q, expected %q", lock.Path(), output+".lock")
	}

	if _, err := Acquire(output); !errors.Is(err, docbatch.ErrRunInProgress) {
		t.Errorf("second Acquire error = %v, expected %v", err, docbatch.ErrRunInProgress)
	}

	if err := lock.Release(); err != nil {
		t.Fatalf("Release failed: %v", err)
	}
	if _, err := os.Stat(lock.Path()); !os.IsNotExist(err) {
		t.Errorf("lock file not removed: %v", err)
	}

	again, err := Acquire(output)
	if err != nil {
		t.Fatalf("Acquire after release failed: %v", err)
	}
	_ = again.Release()
}

func TestPathFor(t *testing.T) {
	tests := []struct {
		output   string
		expected string
	}{
		{"./Outputs", "Outputs.lock"},
		{"out/", "out.lock"},
		{"/tmp/a/b", "/tmp/a/b.lock"},
	}
	for _, tt := range tests {
		if got := PathFor(tt.output); got != tt.expected {
			t.Errorf("PathFor(%q) = %q, expected %q", tt.output, got, tt.expected)
		}
	}
}
