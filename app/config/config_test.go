package config

import "testing"

func TestLoadDefaults(t *testing.T) {
	t.Setenv("TXTPAD_DEFAULT_DIR", "")
	t.Setenv("TXTPAD_DIALOGS", "")
	t.Setenv("TXTPAD_TEXT_SIZE", "")

	cfg := Load()
	if cfg.DefaultDir == "" {
		t.Error("DefaultDir should never be empty")
	}
	if cfg.Dialogs != DialogsNative {
		t.Errorf("Dialogs = %q, want %q", cfg.Dialogs, DialogsNative)
	}
	if cfg.TextSize != 14 {
		t.Errorf("TextSize = %d, want 14", cfg.TextSize)
	}
}

func TestLoadOverrides(t *testing.T) {
	t.Setenv("TXTPAD_DEFAULT_DIR", "/tmp/docs")
	t.Setenv("TXTPAD_DIALOGS", "explorer")
	t.Setenv("TXTPAD_TEXT_SIZE", "18")

	cfg := Load()
	if cfg.DefaultDir != "/tmp/docs" {
		t.Errorf("DefaultDir = %q", cfg.DefaultDir)
	}
	if cfg.Dialogs != DialogsExplorer {
		t.Errorf("Dialogs = %q", cfg.Dialogs)
	}
	if cfg.TextSize != 18 {
		t.Errorf("TextSize = %d", cfg.TextSize)
	}
}

func TestLoadRejectsBadValues(t *testing.T) {
	t.Setenv("TXTPAD_DIALOGS", "cocoa")
	t.Setenv("TXTPAD_TEXT_SIZE", "-3")

	cfg := Load()
	if cfg.Dialogs != DialogsNative {
		t.Errorf("unknown backend should fall back to native, got %q", cfg.Dialogs)
	}
	if cfg.TextSize != 14 {
		t.Errorf("TextSize = %d, want default 14", cfg.TextSize)
	}
}
