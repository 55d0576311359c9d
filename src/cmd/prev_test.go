package cmd

import (
	"errors"
	"testing"

	"github.com/nodeman/nodeman/src/internal/activate"
)

func TestRunPrevRevertsToPreviousVersion(t *testing.T) {
	paths := setupPrefix(t)
	stageVersion(t, paths, "1.0.0")
	stageVersion(t, paths, "2.0.0")

	mgr := newManager()
	if err := mgr.Activate("1.0.0"); err != nil {
		t.Fatalf("Activate 1.0.0: %v", err)
	}
	if err := mgr.Activate("2.0.0"); err != nil {
		t.Fatalf("Activate 2.0.0: %v", err)
	}

	if err := runPrev(); err != nil {
		t.Fatalf("runPrev: %v", err)
	}
	if got := mgr.Current(); got != "1.0.0" {
		t.Errorf("Current after prev = %q, want %q", got, "1.0.0")
	}
}

func TestRunPrevWithoutHistory(t *testing.T) {
	setupPrefix(t)

	if err := runPrev(); !errors.Is(err, activate.ErrNoPreviousVersion) {
		t.Errorf("expected ErrNoPreviousVersion, got %v", err)
	}
}
