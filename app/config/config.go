// Package config loads txtpad settings from the environment, with an optional
// .env file in the working directory.
package config

import (
	"os"
	"strconv"

	"github.com/joho/godotenv"

	"txtpad/app/fileio"
)

// Dialog backends.
const (
	DialogsNative   = "native"   // OS dialogs via zenity
	DialogsExplorer = "explorer" // in-process Gio explorer fallback
)

// Config holds the editor settings.
type Config struct {
	DefaultDir string // start directory for the save/open dialogs
	Dialogs    string // DialogsNative or DialogsExplorer
	TextSize   int    // editor text size in sp
}

// Load reads the .env file (if any) and the TXTPAD_* environment variables.
// Missing or invalid values fall back to defaults.
func Load() *Config {
	godotenv.Load()

	cfg := &Config{
		DefaultDir: fileio.DesktopDir(),
		Dialogs:    DialogsNative,
		TextSize:   14,
	}

	if dir := os.Getenv("TXTPAD_DEFAULT_DIR"); dir != "" {
		cfg.DefaultDir = dir
	}
	switch os.Getenv("TXTPAD_DIALOGS") {
	case DialogsNative:
		cfg.Dialogs = DialogsNative
	case DialogsExplorer:
		cfg.Dialogs = DialogsExplorer
	}
	if ts := os.Getenv("TXTPAD_TEXT_SIZE"); ts != "" {
		if size, err := strconv.Atoi(ts); err == nil && size > 0 {
			cfg.TextSize = size
		}
	}

	return cfg
}
