package fileio

// SaveOutcome is the non-error result of a save workflow.
type SaveOutcome int

const (
	SaveCanceled SaveOutcome = iota
	SaveSaved
)

// LoadOutcome is the non-error result of a load workflow.
type LoadOutcome struct {
	Canceled bool
	Contents string
}

// Save prompts for a destination and writes text to it. A dismissed dialog
// yields SaveCanceled with a nil error. The chosen path is forced to a .txt
// extension before writing.
func Save(p Prompter, st Store, text, dir string) (SaveOutcome, error) {
	path, ok, err := p.SavePath(SaveOptions{
		Title:       "Save text file",
		DefaultDir:  dir,
		DefaultName: "untitled.txt",
	})
	if err != nil {
		return SaveCanceled, err
	}
	if !ok {
		return SaveCanceled, nil
	}
	if err := st.WriteText(EnsureTxt(path), text); err != nil {
		return SaveCanceled, err
	}
	return SaveSaved, nil
}

// Load prompts for a file and reads it. When the dialog allows multiple
// selection only the first path is used.
func Load(p Prompter, st Store, dir string) (LoadOutcome, error) {
	paths, ok, err := p.OpenPaths(OpenOptions{
		Title:      "Open text file",
		DefaultDir: dir,
	})
	if err != nil {
		return LoadOutcome{}, err
	}
	if !ok || len(paths) == 0 {
		return LoadOutcome{Canceled: true}, nil
	}
	contents, err := st.ReadText(paths[0])
	if err != nil {
		return LoadOutcome{}, err
	}
	return LoadOutcome{Contents: contents}, nil
}

// SaveResult holds the result of a save workflow.
type SaveResult struct {
	Outcome SaveOutcome
	Err     error
}

// LoadResult holds the result of a load workflow.
type LoadResult struct {
	Outcome LoadOutcome
	Err     error
}

// SaveAsync runs the save workflow in a goroutine.
// The result is sent on the returned channel.
func SaveAsync(p Prompter, st Store, text, dir string) <-chan SaveResult {
	ch := make(chan SaveResult, 1)
	go func() {
		out, err := Save(p, st, text, dir)
		ch <- SaveResult{Outcome: out, Err: err}
	}()
	return ch
}

// LoadAsync runs the load workflow in a goroutine.
// The result is sent on the returned channel.
func LoadAsync(p Prompter, st Store, dir string) <-chan LoadResult {
	ch := make(chan LoadResult, 1)
	go func() {
		out, err := Load(p, st, dir)
		ch <- LoadResult{Outcome: out, Err: err}
	}()
	return ch
}
