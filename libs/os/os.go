package os

import (
	"fmt"
	"os"
	"path/filepath"
)

// EnsureDir creates dir, including parents, if it does not exist. It fails
// when dir or one of its parents exists but is not a directory.
func EnsureDir(dir string, mode os.FileMode) error {
	if err := os.MkdirAll(dir, mode); err != nil {
		return fmt.Errorf("could not create directory %v: %w", dir, err)
	}
	return nil
}

func FileExists(filePath string) bool {
	_, err := os.Stat(filePath)
	return !os.IsNotExist(err)
}

// WriteFile writes contents to filePath through a temporary file in the same
// directory, so readers never observe a partially written file.
func WriteFile(filePath string, contents []byte, mode os.FileMode) error {
	f, err := os.CreateTemp(filepath.Dir(filePath), "."+filepath.Base(filePath)+".*")
	if err != nil {
		return err
	}
	tmp := f.Name()
	defer os.Remove(tmp) //nolint:errcheck // gone after a successful rename

	if _, err := f.Write(contents); err != nil {
		f.Close()
		return err
	}
	if err := f.Chmod(mode); err != nil {
		f.Close()
		return err
	}
	if err := f.Close(); err != nil {
		return err
	}
	return os.Rename(tmp, filePath)
}
