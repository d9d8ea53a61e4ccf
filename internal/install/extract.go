package install

import (
	"archive/zip"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
)

// extract unpacks archive into dest, overwriting existing files, and
// returns the number of files written.
func extract(archive, dest string) (int, error) {
	zr, err := zip.OpenReader(archive)
	if err != nil {
		return 0, &ExtractionError{Archive: archive, Err: err}
	}
	defer zr.Close()

	root, err := filepath.Abs(dest)
	if err != nil {
		return 0, &ExtractionError{Archive: archive, Err: err}
	}

	written := 0
	for _, f := range zr.File {
		target, err := entryPath(root, f.Name)
		if err != nil {
			return written, &ExtractionError{Archive: archive, Err: err}
		}
		if f.FileInfo().IsDir() {
			if err := os.MkdirAll(target, 0o755); err != nil {
				return written, &ExtractionError{Archive: archive, Err: err}
			}
			continue
		}
		if err := os.MkdirAll(filepath.Dir(target), 0o755); err != nil {
			return written, &ExtractionError{Archive: archive, Err: err}
		}
		if err := writeEntry(f, target); err != nil {
			return written, &ExtractionError{Archive: archive, Err: fmt.Errorf("%s: %w", f.Name, err)}
		}
		written++
	}
	return written, nil
}

// entryPath resolves a zip entry name under root, rejecting entries that
// would land outside of it.
func entryPath(root, name string) (string, error) {
	clean := filepath.FromSlash(strings.ReplaceAll(name, `\`, "/"))
	if filepath.IsAbs(clean) || filepath.VolumeName(clean) != "" {
		return "", fmt.Errorf("entrada com caminho absoluto: %q", name)
	}
	target := filepath.Join(root, clean)
	rel, err := filepath.Rel(root, target)
	if err != nil || rel == ".." || strings.HasPrefix(rel, ".."+string(filepath.Separator)) {
		return "", fmt.Errorf("entrada fora do diretório de destino: %q", name)
	}
	return target, nil
}

func writeEntry(f *zip.File, target string) error {
	mode := f.Mode().Perm()
	if mode == 0 {
		mode = 0o644
	}
	rc, err := f.Open()
	if err != nil {
		return err
	}
	defer rc.Close()

	out, err := os.OpenFile(target, os.O_CREATE|os.O_TRUNC|os.O_WRONLY, mode)
	if err != nil {
		return err
	}
	if _, err := io.Copy(out, rc); err != nil {
		_ = out.Close()
		return err
	}
	if err := out.Close(); err != nil {
		return err
	}
	// OpenFile keeps the mode of a pre-existing file.
	return os.Chmod(target, mode)
}
