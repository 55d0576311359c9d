package catalog

import "github.com/Masterminds/semver/v3"

// Status describes a remote version relative to the local registry.
type Status int

const (
	// StatusAvailable means the version exists upstream but is not installed.
	StatusAvailable Status = iota
	// StatusInstalled means the version is present in the local registry.
	StatusInstalled
	// StatusActive means the version is the one currently deployed.
	StatusActive
)

func (s Status) String() string {
	switch s {
	case StatusActive:
		return "active"
	case StatusInstalled:
		return "installed"
	default:
		return "available"
	}
}

// Entry pairs a remote version with its local status.
type Entry struct {
	Version *semver.Version
	Status  Status
}

// ListWithStatus annotates the remote listing against the locally installed
// set and the active version. Output order follows Fetch (ascending).
func (c *Catalog) ListWithStatus(local []*semver.Version, active string) ([]Entry, error) {
	versions, err := c.Fetch()
	if err != nil {
		return nil, err
	}

	installed := make(map[string]bool, len(local))
	for _, v := range local {
		installed[v.String()] = true
	}

	entries := make([]Entry, 0, len(versions))
	for _, v := range versions {
		// The legacy range is hidden from listings, same as Latest.
		if v.LessThan(legacyCutoff) {
			continue
		}
		status := StatusAvailable
		switch {
		case active != "" && v.String() == active:
			status = StatusActive
		case installed[v.String()]:
			status = StatusInstalled
		}
		entries = append(entries, Entry{Version: v, Status: status})
	}
	return entries, nil
}
