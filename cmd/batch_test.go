package cmd

import (
	"testing"

	"gopkg.in/yaml.v3"
	"tubeget/internal/utils"
)

func TestBuildJobsFromBatch(t *testing.T) {
	data := []byte(`
- link: https://www.youtube.com/watch?v=abc123
  quality: 480p
- link: https://youtu.be/def456
  audio: true
  dir: music
- link: ""
- link: https://youtu.be/ghi789
  quality: nonsense
`)
	var entries []BatchEntry
	if err := yaml.Unmarshal(data, &entries); err != nil {
		t.Fatalf("failed to parse batch yaml: %v", err)
	}
	jobs := buildJobsFromBatch(entries)
	if len(jobs) != 2 {
		t.Fatalf("expected 2 jobs (empty link and bad quality skipped), got %d", len(jobs))
	}
	if jobs[0].Quality != utils.Quality480p {
		t.Fatalf("expected first job quality 480p, got %s", jobs[0].Quality)
	}
	if !jobs[1].AudioOnly {
		t.Fatalf("expected second job to be audio-only")
	}
	if jobs[1].OutputDir != "music" {
		t.Fatalf("expected second job dir override, got %q", jobs[1].OutputDir)
	}
	if jobs[0].ID == "" || jobs[0].ID == jobs[1].ID {
		t.Fatalf("expected distinct non-empty job IDs")
	}
}

func TestBuildJobsFromBatch_Defaults(t *testing.T) {
	jobs := buildJobsFromBatch([]BatchEntry{{Link: "https://youtu.be/abc123"}})
	if len(jobs) != 1 {
		t.Fatalf("expected 1 job, got %d", len(jobs))
	}
	if jobs[0].Quality != utils.Quality720p {
		t.Fatalf("expected default quality 720p, got %s", jobs[0].Quality)
	}
	if jobs[0].OutputDir != "downloads" {
		t.Fatalf("expected default downloads dir, got %q", jobs[0].OutputDir)
	}
}
