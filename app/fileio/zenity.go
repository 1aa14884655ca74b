package fileio

import (
	"errors"
	"path/filepath"

	"github.com/ncruces/zenity"
)

// NativePrompter shows the operating system's own file dialogs.
type NativePrompter struct{}

func (NativePrompter) SavePath(o SaveOptions) (string, bool, error) {
	path, err := zenity.SelectFileSave(
		zenity.Title(o.Title),
		zenity.Filename(filepath.Join(o.DefaultDir, o.DefaultName)),
		zenity.FileFilter{Name: filterName, Patterns: []string{filterPattern}, CaseFold: true},
		zenity.ConfirmOverwrite(),
	)
	if errors.Is(err, zenity.ErrCanceled) {
		return "", false, nil
	}
	if err != nil {
		return "", false, err
	}
	return path, true, nil
}

func (NativePrompter) OpenPaths(o OpenOptions) ([]string, bool, error) {
	// Trailing separator so the dialog starts in the directory rather than
	// treating it as a file name.
	paths, err := zenity.SelectFileMultiple(
		zenity.Title(o.Title),
		zenity.Filename(o.DefaultDir+string(filepath.Separator)),
		zenity.FileFilter{Name: filterName, Patterns: []string{filterPattern}, CaseFold: true},
	)
	if errors.Is(err, zenity.ErrCanceled) {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, err
	}
	return paths, true, nil
}
