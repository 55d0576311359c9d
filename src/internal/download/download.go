package download

import (
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/schollz/progressbar/v3"

	"github.com/nodeman/nodeman/src/internal/ui"
)

// Fetch downloads url via the transport to destPath, drawing a progress bar.
func Fetch(t Transport, url, destPath string) error {
	if t == nil {
		return ErrNoTransport
	}

	ui.Debug("Starting download: %s", url)
	ui.Debug("Destination: %s", destPath)

	if err := os.MkdirAll(filepath.Dir(destPath), 0755); err != nil {
		return err
	}

	out, err := os.Create(destPath)
	if err != nil {
		return err
	}
	defer func() { _ = out.Close() }()

	body, size, err := t.Get(url)
	if err != nil {
		ui.Debug("Download request failed: %v", err)
		return err
	}
	defer func() { _ = body.Close() }()

	ui.Debug("Content-Length: %d bytes", size)

	bar := progressbar.DefaultBytes(size, "Downloading")
	if _, err := io.Copy(io.MultiWriter(out, bar), body); err != nil {
		ui.Debug("Download failed: %v", err)
		return err
	}

	fmt.Println() // New line after progress bar
	ui.Debug("Download complete: %s", destPath)
	return nil
}
