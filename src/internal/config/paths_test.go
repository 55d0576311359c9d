package config

import (
	"path/filepath"
	"strings"
	"testing"
)

func TestDefaultPaths(t *testing.T) {
	ResetPathsCache()
	t.Cleanup(ResetPathsCache)

	paths := DefaultPaths()

	if paths == nil {
		t.Fatal("DefaultPaths() returned nil")
	}
	if paths.Prefix == "" {
		t.Error("Prefix is empty")
	}
	if !filepath.IsAbs(paths.Prefix) {
		t.Errorf("Prefix %q is not absolute", paths.Prefix)
	}
	if !strings.HasPrefix(paths.Registry, paths.Prefix) {
		t.Errorf("Registry %q should be under Prefix %q", paths.Registry, paths.Prefix)
	}
}

func TestPrefixEnvOverride(t *testing.T) {
	dir := t.TempDir()
	t.Setenv(PrefixEnvVar, dir)
	ResetPathsCache()
	t.Cleanup(ResetPathsCache)

	paths := DefaultPaths()

	if paths.Prefix != dir {
		t.Errorf("Prefix = %q, want %q", paths.Prefix, dir)
	}
	if paths.Registry != filepath.Join(dir, "nodeman") {
		t.Errorf("Registry = %q, want %q", paths.Registry, filepath.Join(dir, "nodeman"))
	}
}

func TestVersionLayout(t *testing.T) {
	dir := t.TempDir()
	t.Setenv(PrefixEnvVar, dir)
	ResetPathsCache()
	t.Cleanup(ResetPathsCache)

	paths := DefaultPaths()

	tests := []struct {
		name string
		got  string
		want string
	}{
		{"version dir", paths.VersionDir("18.16.0"), filepath.Join(dir, "nodeman", "18.16.0")},
		{"config file", paths.ConfigFile("18.16.0"), filepath.Join(dir, "nodeman", "18.16.0", ".config")},
		{"prev file", paths.PrevFile(), filepath.Join(dir, "nodeman", ".prev")},
		{"active binary", paths.ActiveBinary(), filepath.Join(dir, "bin", "node")},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if tt.got != tt.want {
				t.Errorf("got %q, want %q", tt.got, tt.want)
			}
		})
	}
}
