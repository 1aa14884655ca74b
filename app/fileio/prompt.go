package fileio

// Dialog filter shown by both pickers. Only plain text files are supported.
const (
	filterName    = "Text files"
	filterPattern = "*.txt"
)

// SaveOptions configure the save dialog.
type SaveOptions struct {
	Title       string
	DefaultDir  string
	DefaultName string
}

// OpenOptions configure the open dialog.
type OpenOptions struct {
	Title      string
	DefaultDir string
}

// Prompter shows the file-picker dialogs. ok is false when the user dismissed
// the dialog without choosing; that is a normal outcome, not an error.
type Prompter interface {
	SavePath(o SaveOptions) (path string, ok bool, err error)
	OpenPaths(o OpenOptions) (paths []string, ok bool, err error)
}
