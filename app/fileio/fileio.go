// Package fileio wraps filesystem access and the native file-picker dialogs
// behind small interfaces, and composes them into the save and load workflows.
package fileio

import (
	"os"
	"path/filepath"
	"strings"
)

// Store reads and writes UTF-8 text files.
type Store interface {
	WriteText(path, text string) error
	ReadText(path string) (string, error)
}

// DiskStore is the Store backed by the real filesystem.
type DiskStore struct{}

// WriteText writes text to path, overwriting any existing file.
func (DiskStore) WriteText(path, text string) error {
	return os.WriteFile(path, []byte(text), 0644)
}

// ReadText returns the contents of the file at path.
func (DiskStore) ReadText(path string) (string, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return "", err
	}
	return string(data), nil
}

// EnsureTxt appends the .txt extension unless path already carries it.
// The extension match is case-insensitive, so NOTES.TXT is left alone.
func EnsureTxt(path string) string {
	if strings.EqualFold(filepath.Ext(path), ".txt") {
		return path
	}
	return path + ".txt"
}

// DesktopDir returns the user's desktop directory, the default location
// offered by the save and open dialogs.
func DesktopDir() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return "."
	}
	return filepath.Join(home, "Desktop")
}
