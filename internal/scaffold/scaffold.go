// Package scaffold unpacks generated project archives into a target
// directory.
//
// The service wraps every project in a single top-level directory named
// after the artifact; Unpack strips that wrapper so the target directory
// itself becomes the project root. Extraction goes through a staging
// directory next to the target and is moved into place in one rename, so a
// failed download never leaves a half-written project behind.
package scaffold

import (
	"archive/zip"
	"bytes"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"quarkstart/pkg/logging"

	"github.com/google/uuid"
)

// Unpack extracts a zip payload into targetDir. targetDir must not exist
// or must be an empty directory.
func Unpack(payload []byte, targetDir string) error {
	if err := checkTarget(targetDir); err != nil {
		return err
	}

	reader, err := zip.NewReader(bytes.NewReader(payload), int64(len(payload)))
	if err != nil {
		return fmt.Errorf("read project archive: %w", err)
	}

	prefix := commonTopLevelDir(reader.File)

	stagingDir := fmt.Sprintf("%s.staging-%s", targetDir, uuid.NewString()[:8])
	if err := os.MkdirAll(stagingDir, 0755); err != nil {
		return err
	}
	defer os.RemoveAll(stagingDir)

	for _, file := range reader.File {
		if err := extractFile(file, prefix, stagingDir); err != nil {
			return err
		}
	}

	// Remove an existing empty target so the rename lands on its path.
	if err := os.Remove(targetDir); err != nil && !os.IsNotExist(err) {
		return err
	}
	if err := os.Rename(stagingDir, targetDir); err != nil {
		return fmt.Errorf("move project into place: %w", err)
	}

	logging.Info("Scaffold", "Project unpacked into %s", targetDir)
	return nil
}

// checkTarget rejects a target that exists and is not an empty directory.
func checkTarget(targetDir string) error {
	entries, err := os.ReadDir(targetDir)
	if err != nil {
		if os.IsNotExist(err) {
			return nil
		}
		return err
	}
	if len(entries) > 0 {
		return fmt.Errorf("target directory %s already exists and is not empty", targetDir)
	}
	return nil
}

// commonTopLevelDir returns the single directory prefix shared by all
// archive entries, or "" when the archive has no such wrapper.
func commonTopLevelDir(files []*zip.File) string {
	prefix := ""
	for _, f := range files {
		name := strings.TrimPrefix(f.Name, "./")
		idx := strings.Index(name, "/")
		if idx < 0 {
			return ""
		}
		top := name[:idx+1]
		if prefix == "" {
			prefix = top
		} else if prefix != top {
			return ""
		}
	}
	return prefix
}

func extractFile(file *zip.File, prefix, stagingDir string) error {
	name := strings.TrimPrefix(strings.TrimPrefix(file.Name, "./"), prefix)
	if name == "" {
		return nil
	}

	dest := filepath.Join(stagingDir, filepath.FromSlash(name))
	// Reject entries that climb out of the staging directory.
	if !strings.HasPrefix(dest, filepath.Clean(stagingDir)+string(os.PathSeparator)) {
		return fmt.Errorf("archive entry %q escapes target directory", file.Name)
	}

	if file.FileInfo().IsDir() {
		return os.MkdirAll(dest, 0755)
	}

	if err := os.MkdirAll(filepath.Dir(dest), 0755); err != nil {
		return err
	}

	src, err := file.Open()
	if err != nil {
		return fmt.Errorf("read archive entry %q: %w", file.Name, err)
	}
	defer src.Close()

	mode := file.Mode().Perm()
	if mode == 0 {
		mode = 0644
	}
	dst, err := os.OpenFile(dest, os.O_WRONLY|os.O_CREATE|os.O_TRUNC, mode)
	if err != nil {
		return err
	}
	defer dst.Close()

	if _, err := io.Copy(dst, src); err != nil {
		return fmt.Errorf("write %s: %w", dest, err)
	}
	return nil
}
