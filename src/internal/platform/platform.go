// Package platform maps the host to distribution OS/arch tokens and builds
// canonical download URLs
package platform

import (
	"fmt"
	"net/url"
	goruntime "runtime"
	"strconv"

	"github.com/cockroachdb/errors"
)

// DistHost is the canonical distribution host for release tarballs.
const DistHost = "https://nodejs.org/dist"

// ErrUnsupportedPlatform is returned when the host OS has no distribution token.
var ErrUnsupportedPlatform = errors.New("unsupported platform")

// OS identifies a distribution operating-system token.
type OS int

const (
	OSUnknown OS = iota
	OSLinux
	OSDarwin
	OSSunOS
)

// Token returns the token used in tarball names. Unknown yields an empty
// token and an unresolvable URL.
func (o OS) Token() string {
	switch o {
	case OSLinux:
		return "linux"
	case OSDarwin:
		return "darwin"
	case OSSunOS:
		return "sunos"
	default:
		return ""
	}
}

// Arch identifies a distribution architecture token.
type Arch int

const (
	ArchX86 Arch = iota
	ArchX64
)

// Token returns the token used in tarball names.
func (a Arch) Token() string {
	if a == ArchX64 {
		return "x64"
	}
	return "x86"
}

// Platform is a resolved OS/arch pair.
type Platform struct {
	OS   OS
	Arch Arch
}

// Detect resolves the host platform from the Go runtime.
func Detect() Platform {
	return detectFrom(goruntime.GOOS, strconv.IntSize == 64)
}

func detectFrom(goos string, is64bit bool) Platform {
	p := Platform{Arch: ArchX86}
	if is64bit {
		p.Arch = ArchX64
	}

	switch goos {
	case "linux":
		p.OS = OSLinux
	case "darwin":
		p.OS = OSDarwin
	case "solaris", "illumos":
		p.OS = OSSunOS
	default:
		p.OS = OSUnknown
	}
	return p
}

// TarballURL builds the download URL for a version on this platform, e.g.
// https://nodejs.org/dist/v18.16.0/node-v18.16.0-linux-x64.tar.gz
func (p Platform) TarballURL(version string) (string, error) {
	if p.OS == OSUnknown {
		return "", errors.Wrapf(ErrUnsupportedPlatform, "os %q", goruntime.GOOS)
	}

	base, err := url.Parse(DistHost)
	if err != nil {
		return "", err
	}
	return base.JoinPath(
		"v"+version,
		fmt.Sprintf("node-v%s-%s-%s.tar.gz", version, p.OS.Token(), p.Arch.Token()),
	).String(), nil
}

// IndexURL returns the URL of the remote distribution index.
func IndexURL() string {
	return DistHost + "/"
}
