// Package catalog resolves the set of versions publishable from the remote
// distribution index
package catalog

import (
	"io"
	"regexp"
	"sort"

	"github.com/Masterminds/semver/v3"
	"github.com/cockroachdb/errors"

	"github.com/nodeman/nodeman/src/internal/download"
	"github.com/nodeman/nodeman/src/internal/platform"
)

// versionPattern matches bare major.minor.patch identifiers in the index body.
var versionPattern = regexp.MustCompile(`\d+\.\d+\.\d+`)

// legacyCutoff is the floor below which versions are excluded from general
// listings. Releases before 0.8.6 predate portable binary tarballs; they can
// still be installed by exact name.
var legacyCutoff = semver.MustParse("0.8.6")

// ErrNoVersions is returned when the remote index yields no usable versions.
var ErrNoVersions = errors.New("no versions found in remote index")

// Catalog queries the remote distribution index.
type Catalog struct {
	transport download.Transport
	indexURL  string
}

// New returns a Catalog reading the canonical distribution index over t.
func New(t download.Transport) (*Catalog, error) {
	if t == nil {
		return nil, download.ErrNoTransport
	}
	return &Catalog{transport: t, indexURL: platform.IndexURL()}, nil
}

// NewWithIndex returns a Catalog reading a specific index URL. Used by tests.
func NewWithIndex(t download.Transport, indexURL string) (*Catalog, error) {
	c, err := New(t)
	if err != nil {
		return nil, err
	}
	c.indexURL = indexURL
	return c, nil
}

// Fetch retrieves the remote index and returns every version identifier found
// in it, deduplicated and in ascending semantic order. Ordering is numeric per
// component, so 10.0.0 sorts after 9.9.9.
func (c *Catalog) Fetch() ([]*semver.Version, error) {
	body, _, err := c.transport.Get(c.indexURL)
	if err != nil {
		return nil, errors.Wrap(err, "failed to fetch version index")
	}
	defer func() { _ = body.Close() }()

	raw, err := io.ReadAll(body)
	if err != nil {
		return nil, errors.Wrap(err, "failed to read version index")
	}

	seen := make(map[string]bool)
	var versions []*semver.Version
	for _, match := range versionPattern.FindAllString(string(raw), -1) {
		if seen[match] {
			continue
		}
		seen[match] = true

		v, err := semver.StrictNewVersion(match)
		if err != nil {
			continue
		}
		versions = append(versions, v)
	}

	sort.Sort(semver.Collection(versions))
	return versions, nil
}

// Latest returns the newest version, excluding the legacy range below 0.8.6.
func (c *Catalog) Latest() (*semver.Version, error) {
	versions, err := c.Fetch()
	if err != nil {
		return nil, err
	}
	return maxWhere(versions, func(v *semver.Version) bool {
		return !v.LessThan(legacyCutoff)
	})
}

// LatestStable returns the newest version on the stable release line.
//
// The managed distribution historically tagged release lines by minor parity:
// even minor means stable, odd minor means development. This is a domain
// policy of the distribution, not a semver rule.
func (c *Catalog) LatestStable() (*semver.Version, error) {
	versions, err := c.Fetch()
	if err != nil {
		return nil, err
	}
	return maxWhere(versions, func(v *semver.Version) bool {
		return !v.LessThan(legacyCutoff) && v.Minor()%2 == 0
	})
}

// maxWhere returns the last (greatest) element of an ascending-sorted slice
// satisfying keep.
func maxWhere(versions []*semver.Version, keep func(*semver.Version) bool) (*semver.Version, error) {
	for i := len(versions) - 1; i >= 0; i-- {
		if keep(versions[i]) {
			return versions[i], nil
		}
	}
	return nil, ErrNoVersions
}
