package downloader_test

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"tubeget/internal/downloader"
	"tubeget/internal/utils"
)

func TestEnsureOutputDir_CreatesMissing(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "nested", "downloads")
	if err := downloader.EnsureOutputDir(dir); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	info, err := os.Stat(dir)
	if err != nil {
		t.Fatalf("directory was not created: %v", err)
	}
	if !info.IsDir() {
		t.Fatalf("expected a directory at %s", dir)
	}
	// Writable check
	probe := filepath.Join(dir, "probe")
	if err := os.WriteFile(probe, []byte("x"), 0644); err != nil {
		t.Fatalf("directory is not writable: %v", err)
	}
}

func TestEnsureOutputDir_ExistingDirectory(t *testing.T) {
	dir := t.TempDir()
	if err := downloader.EnsureOutputDir(dir); err != nil {
		t.Fatalf("expected existing directory to pass, got: %v", err)
	}
}

func TestEnsureOutputDir_NonDirectoryCollision(t *testing.T) {
	file := filepath.Join(t.TempDir(), "taken")
	if err := os.WriteFile(file, []byte("x"), 0644); err != nil {
		t.Fatalf("setup failed: %v", err)
	}
	err := downloader.EnsureOutputDir(file)
	if err == nil {
		t.Fatalf("expected error for non-directory collision, got nil")
	}
	if kind := utils.KindOf(err); kind != utils.ErrFileSystem {
		t.Fatalf("expected filesystem kind, got %v", kind)
	}
}

func TestOutputTemplate(t *testing.T) {
	tmpl := downloader.OutputTemplate("downloads")
	if !strings.HasPrefix(tmpl, "downloads") || !strings.HasSuffix(tmpl, "%(title)s.%(ext)s") {
		t.Fatalf("unexpected template: %q", tmpl)
	}
}
