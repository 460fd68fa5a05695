package cfg_test

import (
	"os"
	"path/filepath"
	"testing"

	"tubeget/internal/cfg"
)

func isolate(t *testing.T) {
	t.Helper()
	confHome := t.TempDir()
	t.Setenv("HOME", confHome)
	t.Setenv("XDG_CONFIG_HOME", confHome)
	t.Chdir(t.TempDir())
}

func TestLoad_Defaults(t *testing.T) {
	isolate(t)
	settings := cfg.Load()
	if settings.DownloadDir != "downloads" {
		t.Fatalf("expected default download dir, got %q", settings.DownloadDir)
	}
	if settings.Quality != "720p" {
		t.Fatalf("expected default quality 720p, got %q", settings.Quality)
	}
	if settings.Workers != 1 {
		t.Fatalf("expected default workers 1, got %d", settings.Workers)
	}
}

func TestLoad_ConfigFile(t *testing.T) {
	isolate(t)
	content := []byte("download_dir: /tmp/videos\nquality: 480p\nworkers: 3\n")
	if err := os.WriteFile("config.yaml", content, 0644); err != nil {
		t.Fatalf("failed to write config: %v", err)
	}
	settings := cfg.Load()
	if settings.DownloadDir != "/tmp/videos" {
		t.Fatalf("expected configured download dir, got %q", settings.DownloadDir)
	}
	if settings.Quality != "480p" {
		t.Fatalf("expected configured quality, got %q", settings.Quality)
	}
	if settings.Workers != 3 {
		t.Fatalf("expected configured workers, got %d", settings.Workers)
	}
}

func TestOpenHistoryPath_CreatesDirectory(t *testing.T) {
	isolate(t)
	dbPath := filepath.Join(t.TempDir(), "state", "history.db")
	settings := cfg.Settings{HistoryDB: dbPath}
	if got := settings.OpenHistoryPath(); got != dbPath {
		t.Fatalf("expected %q, got %q", dbPath, got)
	}
	if _, err := os.Stat(filepath.Dir(dbPath)); err != nil {
		t.Fatalf("expected history directory to exist: %v", err)
	}
}

func TestOpenHistoryPath_Disabled(t *testing.T) {
	settings := cfg.Settings{}
	if got := settings.OpenHistoryPath(); got != "" {
		t.Fatalf("expected empty path when history is disabled, got %q", got)
	}
}
