package download

import (
	"archive/tar"
	"compress/gzip"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/cockroachdb/errors"
)

// ExtractTarGz extracts a gzip-compressed tar stream into destDir, dropping
// the first strip leading path components from every entry. Distribution
// tarballs carry a single top-level folder (node-v18.16.0/ containing bin/,
// lib/, etc.), so installs pass strip=1.
func ExtractTarGz(r io.Reader, destDir string, strip int) error {
	gzReader, err := gzip.NewReader(r)
	if err != nil {
		return err
	}
	defer func() { _ = gzReader.Close() }()

	tarReader := tar.NewReader(gzReader)

	if err := os.MkdirAll(destDir, 0755); err != nil {
		return err
	}

	for {
		header, err := tarReader.Next()
		if err == io.EOF {
			break
		}
		if err != nil {
			return err
		}

		name, ok := stripComponents(header.Name, strip)
		if !ok {
			continue
		}

		if err := extractEntry(header, name, tarReader, destDir); err != nil {
			return errors.Wrapf(err, "failed to extract %s", header.Name)
		}
	}

	return nil
}

// stripComponents drops the first n path components from name. Entries whose
// whole path is consumed (e.g. the top-level folder itself) report ok=false.
func stripComponents(name string, n int) (string, bool) {
	parts := strings.Split(filepath.ToSlash(filepath.Clean(name)), "/")
	if len(parts) <= n {
		return "", false
	}
	return filepath.Join(parts[n:]...), true
}

func extractEntry(header *tar.Header, name string, reader io.Reader, destDir string) error {
	destPath := filepath.Join(destDir, name)

	// Guard against path traversal in archive entries
	if !strings.HasPrefix(destPath, filepath.Clean(destDir)+string(os.PathSeparator)) {
		return errors.Newf("illegal file path: %s", name)
	}

	switch header.Typeflag {
	case tar.TypeDir:
		return os.MkdirAll(destPath, os.FileMode(header.Mode))

	case tar.TypeReg:
		if err := os.MkdirAll(filepath.Dir(destPath), 0755); err != nil {
			return err
		}

		outFile, err := os.OpenFile(destPath, os.O_WRONLY|os.O_CREATE|os.O_TRUNC, os.FileMode(header.Mode))
		if err != nil {
			return err
		}
		if _, err := io.Copy(outFile, reader); err != nil {
			_ = outFile.Close()
			return err
		}
		if err := outFile.Close(); err != nil {
			return err
		}
		return os.Chtimes(destPath, header.ModTime, header.ModTime)

	case tar.TypeSymlink:
		if err := os.MkdirAll(filepath.Dir(destPath), 0755); err != nil {
			return err
		}
		return os.Symlink(header.Linkname, destPath)

	default:
		// Skip other entry types
		return nil
	}
}
