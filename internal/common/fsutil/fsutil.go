package fsutil

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
)

// ExpandHome expands a leading '~' to the user's home directory.
func ExpandHome(path string) (string, error) {
	if path == "" {
		return path, nil
	}
	if path[0] != '~' {
		return path, nil
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("home dir: %w", err)
	}
	if path == "~" {
		return home, nil
	}
	// handle cases like ~/finhistory/resources
	return filepath.Join(home, strings.TrimPrefix(path, "~/")), nil
}

// PathExists checks if the given path exists.
func PathExists(path string) bool {
	_, err := os.Stat(path)
	return err == nil || !errors.Is(err, os.ErrNotExist)
}

// OpenDir resolves dir (with ~ expansion) to an absolute directory and
// returns it as an fs.FS together with the resolved path.
func OpenDir(dir string) (fs.FS, string, error) {
	if dir == "" {
		return nil, "", fmt.Errorf("empty directory path")
	}
	base, err := ExpandHome(dir)
	if err != nil {
		return nil, "", err
	}
	abs, err := filepath.Abs(base)
	if err != nil {
		return nil, "", fmt.Errorf("abs path: %w", err)
	}
	st, err := os.Stat(abs)
	if err != nil {
		return nil, "", fmt.Errorf("resources dir: %w", err)
	}
	if !st.IsDir() {
		return nil, "", fmt.Errorf("resources dir: %s is not a directory", abs)
	}
	return os.DirFS(abs), abs, nil
}
