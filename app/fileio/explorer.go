package fileio

import (
	"errors"
	"os"

	"gioui.org/x/explorer"
)

// ErrNoPath is returned when a dialog handle does not expose the chosen path.
var ErrNoPath = errors.New("dialog did not expose a file path")

// ExplorerPrompter is the fallback prompter for hosts without a
// zenity-compatible dialog helper. It drives the Gio explorer, which cannot
// honor Title or DefaultDir; on desktop platforms the handles it returns are
// *os.File, which is how the chosen paths are recovered.
type ExplorerPrompter struct {
	Expl *explorer.Explorer
}

func (p ExplorerPrompter) SavePath(o SaveOptions) (string, bool, error) {
	w, err := p.Expl.CreateFile(o.DefaultName)
	if errors.Is(err, explorer.ErrUserDecline) {
		return "", false, nil
	}
	if err != nil {
		return "", false, err
	}
	f, ok := w.(*os.File)
	if !ok {
		w.Close()
		return "", false, ErrNoPath
	}
	path := f.Name()
	if err := f.Close(); err != nil {
		return "", false, err
	}
	return path, true, nil
}

func (p ExplorerPrompter) OpenPaths(o OpenOptions) ([]string, bool, error) {
	readers, err := p.Expl.ChooseFiles("txt")
	if errors.Is(err, explorer.ErrUserDecline) {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, err
	}
	var paths []string
	for _, r := range readers {
		if f, ok := r.(*os.File); ok {
			paths = append(paths, f.Name())
		}
		r.Close()
	}
	if len(paths) == 0 {
		return nil, false, ErrNoPath
	}
	return paths, true, nil
}
