// SPDX-License-Identifier: Apache-2.0

package templates

import (
	"io/fs"
	"os"
	"path"

	"github.com/printworks/printbot/pkg/fsx"
)

// CopyTemplateFile copies an embedded template verbatim to dst with the given
// file mode, overwriting any existing file.
func CopyTemplateFile(src string, dst string, perm fs.FileMode) error {
	content, err := Read(src)
	if err != nil {
		return fsx.FileReadError.Wrap(err, "failed to read embedded template %s", src)
	}

	err = os.WriteFile(dst, content, perm)
	if err != nil {
		return fsx.FileWriteError.Wrap(err, "failed to write template file %s", dst)
	}

	return nil
}

// CopyTemplateFileIfMissing materializes an embedded template at dst only when
// no file exists there yet. Operator edits to a previously materialized file are
// never clobbered. It reports whether a copy took place.
func CopyTemplateFileIfMissing(src string, dst string, perm fs.FileMode) (bool, error) {
	if _, err := os.Stat(dst); err == nil {
		return false, nil
	} else if !os.IsNotExist(err) {
		return false, fsx.FileSystemError.Wrap(err, "failed to stat %s", dst)
	}

	if err := CopyTemplateFile(src, dst, perm); err != nil {
		return false, err
	}

	return true, nil
}

// CopyTemplateFiles copies all embedded templates under srcDir to the destination
// directory. It overwrites existing files in the destination directory and
// returns a list of copied files.
func CopyTemplateFiles(srcDir string, destDir string, perm fs.FileMode) ([]string, error) {
	var copiedFiles []string
	files, err := ReadDir(srcDir)
	if err != nil {
		return copiedFiles, err
	}

	for _, src := range files {
		dst := path.Join(destDir, path.Base(src))
		err = CopyTemplateFile(src, dst, perm)
		if err != nil {
			return copiedFiles, err
		}
		copiedFiles = append(copiedFiles, dst)
	}

	return copiedFiles, nil
}

// RemoveTemplateFiles removes files from the destination directory that share a
// name with embedded templates under srcDir. It returns a list of removed files.
func RemoveTemplateFiles(srcDir string, destDir string) ([]string, error) {
	var removedFiles []string
	files, err := ReadDir(srcDir)
	if err != nil {
		return removedFiles, err
	}

	for _, file := range files {
		dst := path.Join(destDir, path.Base(file))
		if _, err = os.Stat(dst); os.IsNotExist(err) {
			continue // file does not exist, nothing to remove
		}

		err = os.Remove(dst)
		if err != nil && !os.IsNotExist(err) {
			return removedFiles, fsx.FileSystemError.Wrap(err, "failed to remove file %s", dst)
		}
		removedFiles = append(removedFiles, dst)
	}

	return removedFiles, nil
}
