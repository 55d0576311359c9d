package platform

import (
	"errors"
	"testing"
)

func TestDetectFrom(t *testing.T) {
	tests := []struct {
		name    string
		goos    string
		is64bit bool
		wantOS  OS
		wantArc Arch
	}{
		{"linux 64-bit", "linux", true, OSLinux, ArchX64},
		{"darwin 64-bit", "darwin", true, OSDarwin, ArchX64},
		{"solaris maps to sunos", "solaris", true, OSSunOS, ArchX64},
		{"illumos maps to sunos", "illumos", true, OSSunOS, ArchX64},
		{"32-bit falls back to x86", "linux", false, OSLinux, ArchX86},
		{"windows is unsupported", "windows", true, OSUnknown, ArchX64},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := detectFrom(tt.goos, tt.is64bit)
			if p.OS != tt.wantOS {
				t.Errorf("OS = %v, want %v", p.OS, tt.wantOS)
			}
			if p.Arch != tt.wantArc {
				t.Errorf("Arch = %v, want %v", p.Arch, tt.wantArc)
			}
		})
	}
}

func TestTarballURL(t *testing.T) {
	p := Platform{OS: OSLinux, Arch: ArchX64}

	got, err := p.TarballURL("18.16.0")
	if err != nil {
		t.Fatalf("TarballURL: %v", err)
	}
	want := "https://nodejs.org/dist/v18.16.0/node-v18.16.0-linux-x64.tar.gz"
	if got != want {
		t.Errorf("TarballURL = %q, want %q", got, want)
	}
}

func TestTarballURLUnsupported(t *testing.T) {
	p := Platform{OS: OSUnknown, Arch: ArchX64}

	if _, err := p.TarballURL("18.16.0"); !errors.Is(err, ErrUnsupportedPlatform) {
		t.Errorf("expected ErrUnsupportedPlatform, got %v", err)
	}
}

func TestTokens(t *testing.T) {
	if got := OSUnknown.Token(); got != "" {
		t.Errorf("OSUnknown token = %q, want empty", got)
	}
	if got := ArchX86.Token(); got != "x86" {
		t.Errorf("ArchX86 token = %q, want x86", got)
	}
	if got := ArchX64.Token(); got != "x64" {
		t.Errorf("ArchX64 token = %q, want x64", got)
	}
}
