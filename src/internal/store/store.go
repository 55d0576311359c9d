// Package store owns the on-disk registry of installed versions
package store

import (
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/Masterminds/semver/v3"
	"github.com/cockroachdb/errors"

	"github.com/nodeman/nodeman/src/internal/config"
	"github.com/nodeman/nodeman/src/internal/download"
	"github.com/nodeman/nodeman/src/internal/platform"
	"github.com/nodeman/nodeman/src/internal/ui"
)

var (
	// ErrNotInstalled is returned when an operation references a version
	// absent from the registry.
	ErrNotInstalled = errors.New("version is not installed")

	// ErrVersionNotFound is returned when the remote existence probe fails
	// for a requested version.
	ErrVersionNotFound = errors.New("version not found upstream")
)

// Store manages the registry directory tree.
type Store struct {
	paths *config.Paths
}

// New returns a Store over the given paths.
func New(paths *config.Paths) *Store {
	return &Store{paths: paths}
}

// List enumerates installed versions in ascending semantic order. Registry
// entries whose names are not version identifiers (including the .prev
// record) are ignored.
func (s *Store) List() ([]*semver.Version, error) {
	entries, err := os.ReadDir(s.paths.Registry)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, nil
		}
		return nil, errors.Wrap(err, "failed to read registry")
	}

	var versions []*semver.Version
	for _, entry := range entries {
		if !entry.IsDir() {
			continue
		}
		v, err := semver.StrictNewVersion(entry.Name())
		if err != nil {
			continue
		}
		versions = append(versions, v)
	}

	sort.Sort(semver.Collection(versions))
	return versions, nil
}

// IsInstalled reports whether a version directory exists in the registry.
func (s *Store) IsInstalled(version string) bool {
	info, err := os.Stat(s.paths.VersionDir(version))
	return err == nil && info.IsDir()
}

// Install downloads and extracts a version into the registry, recording the
// optional config hint alongside it. The upstream existence probe runs before
// any directory is created, so a VersionNotFound failure leaves no partial
// state. The distribution is staged in a temp directory and renamed into the
// registry once complete.
func (s *Store) Install(version, configHint string, t download.Transport) error {
	if t == nil {
		return download.ErrNoTransport
	}

	url, err := platform.Detect().TarballURL(version)
	if err != nil {
		return err
	}

	ui.Debug("Probing %s", url)
	ok, err := t.Exists(url)
	if err != nil {
		return errors.Wrapf(err, "failed to probe version %s", version)
	}
	if !ok {
		return errors.Wrapf(ErrVersionNotFound, "version %s", version)
	}

	if err := s.paths.EnsureRegistry(); err != nil {
		return errors.Wrap(err, "failed to create registry")
	}

	// Stage inside the registry so the final rename stays on one filesystem.
	// Staging names never parse as versions, so List ignores leftovers.
	stageDir, err := os.MkdirTemp(s.paths.Registry, ".stage-"+version+"-")
	if err != nil {
		return errors.Wrap(err, "failed to create staging directory")
	}
	defer func() { _ = os.RemoveAll(stageDir) }()

	archivePath := filepath.Join(stageDir, filepath.Base(url))
	if err := download.Fetch(t, url, archivePath); err != nil {
		return errors.Wrapf(err, "failed to download version %s", version)
	}

	extractDir := filepath.Join(stageDir, "extracted")
	if err := s.extract(archivePath, extractDir); err != nil {
		return errors.Wrapf(err, "failed to extract version %s", version)
	}

	if configHint != "" {
		hintPath := filepath.Join(extractDir, config.ConfigFileName)
		if err := os.WriteFile(hintPath, []byte(configHint+"\n"), 0644); err != nil {
			return errors.Wrap(err, "failed to record config hint")
		}
	}

	if err := os.Rename(extractDir, s.paths.VersionDir(version)); err != nil {
		return errors.Wrapf(err, "failed to move version %s into registry", version)
	}

	ui.Debug("Installed %s at %s", version, s.paths.VersionDir(version))
	return nil
}

func (s *Store) extract(archivePath, destDir string) error {
	archive, err := os.Open(archivePath)
	if err != nil {
		return err
	}
	defer func() { _ = archive.Close() }()

	// Tarballs carry a single outer folder; strip it
	return download.ExtractTarGz(archive, destDir, 1)
}

// Remove deletes each named version's directory. Versions absent from the
// registry are silently skipped, so Remove is idempotent.
func (s *Store) Remove(versions ...string) error {
	for _, version := range versions {
		dir := s.paths.VersionDir(version)
		if _, err := os.Stat(dir); os.IsNotExist(err) {
			ui.Debug("Version %s not installed, skipping", version)
			continue
		}
		if err := os.RemoveAll(dir); err != nil {
			return errors.Wrapf(err, "failed to remove version %s", version)
		}
		ui.Debug("Removed %s", dir)
	}
	return nil
}

// BinaryPath returns the path to a version's runtime binary.
func (s *Store) BinaryPath(version string) (string, error) {
	path := filepath.Join(s.paths.VersionDir(version), "bin", "node")
	if _, err := os.Stat(path); err != nil {
		return "", errors.Wrapf(ErrNotInstalled, "version %s", version)
	}
	return path, nil
}

// ConfigHint reads the install-time config hint for a version. Missing hints
// read as empty.
func (s *Store) ConfigHint(version string) string {
	raw, err := os.ReadFile(s.paths.ConfigFile(version))
	if err != nil {
		return ""
	}
	return strings.TrimSpace(string(raw))
}
