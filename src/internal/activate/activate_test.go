package activate

import (
	"errors"
	"os"
	"path/filepath"
	"runtime"
	"testing"

	"github.com/nodeman/nodeman/src/internal/config"
	"github.com/nodeman/nodeman/src/internal/store"
)

func newTestManager(t *testing.T) (*Manager, *config.Paths) {
	t.Helper()
	if runtime.GOOS == "windows" {
		t.Skip("activation tests exec shell scripts")
	}
	t.Setenv(config.PrefixEnvVar, t.TempDir())
	config.ResetPathsCache()
	t.Cleanup(config.ResetPathsCache)
	paths := config.DefaultPaths()
	return NewManager(paths), paths
}

// stageVersion creates a registry entry whose bin/node reports the version.
func stageVersion(t *testing.T, paths *config.Paths, version string) {
	t.Helper()
	binDir := filepath.Join(paths.VersionDir(version), "bin")
	if err := os.MkdirAll(binDir, 0755); err != nil {
		t.Fatalf("mkdir %s: %v", binDir, err)
	}
	script := "#!/bin/sh\necho v" + version + "\n"
	if err := os.WriteFile(filepath.Join(binDir, "node"), []byte(script), 0755); err != nil {
		t.Fatalf("write fake binary: %v", err)
	}
}

func TestActivateDeploysBinary(t *testing.T) {
	m, paths := newTestManager(t)
	stageVersion(t, paths, "1.0.0")

	if err := m.Activate("1.0.0"); err != nil {
		t.Fatalf("Activate: %v", err)
	}
	if got := m.Current(); got != "1.0.0" {
		t.Errorf("Current = %q, want %q", got, "1.0.0")
	}
}

func TestActivateNotInstalled(t *testing.T) {
	m, _ := newTestManager(t)

	if err := m.Activate("9.9.9"); !errors.Is(err, store.ErrNotInstalled) {
		t.Errorf("expected ErrNotInstalled, got %v", err)
	}
}

func TestActivateThenRevert(t *testing.T) {
	m, paths := newTestManager(t)
	stageVersion(t, paths, "1.0.0")
	stageVersion(t, paths, "2.0.0")

	if err := m.Activate("1.0.0"); err != nil {
		t.Fatalf("Activate 1.0.0: %v", err)
	}
	if err := m.Activate("2.0.0"); err != nil {
		t.Fatalf("Activate 2.0.0: %v", err)
	}

	prev, err := m.Previous()
	if err != nil {
		t.Fatalf("Previous: %v", err)
	}
	if prev != "1.0.0" {
		t.Errorf("Previous = %q, want %q", prev, "1.0.0")
	}

	if err := m.RevertToPrevious(); err != nil {
		t.Fatalf("RevertToPrevious: %v", err)
	}
	if got := m.Current(); got != "1.0.0" {
		t.Errorf("Current after revert = %q, want %q", got, "1.0.0")
	}
}

func TestRevertWithoutRecord(t *testing.T) {
	m, _ := newTestManager(t)

	if err := m.RevertToPrevious(); !errors.Is(err, ErrNoPreviousVersion) {
		t.Errorf("expected ErrNoPreviousVersion, got %v", err)
	}
}

func TestFirstActivationLeavesEmptyRecord(t *testing.T) {
	m, paths := newTestManager(t)
	stageVersion(t, paths, "1.0.0")

	// Nothing was active before this activation
	if err := m.Activate("1.0.0"); err != nil {
		t.Fatalf("Activate: %v", err)
	}

	// The record exists but holds no version, so revert still fails
	if _, err := os.Stat(paths.PrevFile()); err != nil {
		t.Fatalf("prev record should exist: %v", err)
	}
	if _, err := m.Previous(); !errors.Is(err, ErrNoPreviousVersion) {
		t.Errorf("expected ErrNoPreviousVersion for empty record, got %v", err)
	}
}

func TestMergeCopyLeavesUnrelatedFilesAlone(t *testing.T) {
	m, paths := newTestManager(t)
	stageVersion(t, paths, "1.0.0")

	keep := filepath.Join(paths.Prefix, "etc", "unrelated.conf")
	if err := os.MkdirAll(filepath.Dir(keep), 0755); err != nil {
		t.Fatalf("mkdir etc: %v", err)
	}
	if err := os.WriteFile(keep, []byte("keep me\n"), 0644); err != nil {
		t.Fatalf("write unrelated file: %v", err)
	}

	if err := m.Activate("1.0.0"); err != nil {
		t.Fatalf("Activate: %v", err)
	}

	raw, err := os.ReadFile(keep)
	if err != nil || string(raw) != "keep me\n" {
		t.Errorf("unrelated prefix file was disturbed: %q, %v", raw, err)
	}
}

func TestActivateDoesNotDeployConfigHint(t *testing.T) {
	m, paths := newTestManager(t)
	stageVersion(t, paths, "1.0.0")
	if err := os.WriteFile(paths.ConfigFile("1.0.0"), []byte("--debug\n"), 0644); err != nil {
		t.Fatalf("write config hint: %v", err)
	}

	if err := m.Activate("1.0.0"); err != nil {
		t.Fatalf("Activate: %v", err)
	}

	if _, err := os.Stat(filepath.Join(paths.Prefix, config.ConfigFileName)); !os.IsNotExist(err) {
		t.Error("config hint should stay in the registry, not the prefix")
	}
}

func TestActivateDeploysNestedDotfiles(t *testing.T) {
	m, paths := newTestManager(t)
	stageVersion(t, paths, "1.0.0")

	// A distribution file that happens to share the hint's name deploys
	// normally; only the version-root hint stays behind.
	nested := filepath.Join(paths.VersionDir("1.0.0"), "lib", "node_modules", config.ConfigFileName)
	if err := os.MkdirAll(filepath.Dir(nested), 0755); err != nil {
		t.Fatalf("mkdir nested dir: %v", err)
	}
	if err := os.WriteFile(nested, []byte("module data\n"), 0644); err != nil {
		t.Fatalf("write nested file: %v", err)
	}

	if err := m.Activate("1.0.0"); err != nil {
		t.Fatalf("Activate: %v", err)
	}

	deployed := filepath.Join(paths.Prefix, "lib", "node_modules", config.ConfigFileName)
	if _, err := os.Stat(deployed); err != nil {
		t.Errorf("nested %s should deploy with the tree: %v", config.ConfigFileName, err)
	}
}
