package activate

import (
	"io"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/nodeman/nodeman/src/internal/config"
)

// mergeCopy walks srcDir and mirrors every entry into destDir, overwriting
// files at matching paths and creating directories as needed. Files present
// only under destDir are left alone. Permissions and modification times carry
// over; symlinks are recreated. The version's config hint stays in the
// registry and is not deployed.
func mergeCopy(srcDir, destDir string) error {
	return filepath.WalkDir(srcDir, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}

		rel, err := filepath.Rel(srcDir, path)
		if err != nil {
			return err
		}
		// Only the hint at the version root stays behind; deeper entries
		// deploy like any other file.
		if rel == "." || rel == config.ConfigFileName {
			return nil
		}
		destPath := filepath.Join(destDir, rel)

		info, err := d.Info()
		if err != nil {
			return err
		}

		switch {
		case d.IsDir():
			return os.MkdirAll(destPath, info.Mode().Perm())

		case info.Mode()&os.ModeSymlink != 0:
			target, err := os.Readlink(path)
			if err != nil {
				return err
			}
			_ = os.Remove(destPath)
			return os.Symlink(target, destPath)

		default:
			return copyFile(path, destPath, info)
		}
	})
}

func copyFile(src, dest string, info fs.FileInfo) error {
	in, err := os.Open(src)
	if err != nil {
		return err
	}
	defer func() { _ = in.Close() }()

	if err := os.MkdirAll(filepath.Dir(dest), 0755); err != nil {
		return err
	}

	out, err := os.OpenFile(dest, os.O_WRONLY|os.O_CREATE|os.O_TRUNC, info.Mode().Perm())
	if err != nil {
		return err
	}
	if _, err := io.Copy(out, in); err != nil {
		_ = out.Close()
		return err
	}
	if err := out.Close(); err != nil {
		return err
	}

	// An existing destination file keeps its old mode on O_CREATE, so set
	// it explicitly, then carry the source mtime over.
	if err := os.Chmod(dest, info.Mode().Perm()); err != nil {
		return err
	}
	return os.Chtimes(dest, info.ModTime(), info.ModTime())
}
