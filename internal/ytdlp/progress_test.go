package ytdlp_test

import (
	"testing"

	"tubeget/internal/ytdlp"
)

func TestParseProgress(t *testing.T) {
	cases := []struct {
		line    string
		percent float64
		speed   string
	}{
		{"[download]  42.3% of   10.55MiB at    2.50MiB/s ETA 00:12", 42.3, "2.50MiB/s"},
		{"[download] 100% of 10.55MiB in 00:04", 100, ""},
		{"[download]   0.0% of ~ 150.00MiB at  512.00KiB/s ETA 05:00", 0, "512.00KiB/s"},
		{"[download]  88.8% of 3.21MiB at Unknown speed", 88.8, ""},
	}
	for _, tc := range cases {
		ev, ok := ytdlp.ParseProgress(tc.line)
		if !ok {
			t.Fatalf("expected %q to parse", tc.line)
		}
		if ev.Percent != tc.percent {
			t.Fatalf("expected percent %v for %q, got %v", tc.percent, tc.line, ev.Percent)
		}
		if ev.Speed != tc.speed {
			t.Fatalf("expected speed %q for %q, got %q", tc.speed, tc.line, ev.Speed)
		}
	}
}

func TestParseProgress_NonProgressLines(t *testing.T) {
	lines := []string{
		"",
		"[youtube] abc123: Downloading webpage",
		"[download] Destination: downloads/video.mp4",
		"ERROR: Video unavailable",
		"plain text",
	}
	for _, line := range lines {
		if _, ok := ytdlp.ParseProgress(line); ok {
			t.Fatalf("expected %q not to parse as progress", line)
		}
	}
}

func TestParseDestination(t *testing.T) {
	cases := map[string]string{
		"[download] Destination: downloads/My_Video.mp4":         "downloads/My_Video.mp4",
		`[Merger] Merging formats into "downloads/My_Video.mkv"`: "downloads/My_Video.mkv",
		"[ExtractAudio] Destination: downloads/My_Video.mp3":     "downloads/My_Video.mp3",
	}
	for line, want := range cases {
		got, ok := ytdlp.ParseDestination(line)
		if !ok {
			t.Fatalf("expected %q to yield a destination", line)
		}
		if got != want {
			t.Fatalf("expected destination %q, got %q", want, got)
		}
	}
	if _, ok := ytdlp.ParseDestination("[download]  42.3% of 10MiB"); ok {
		t.Fatalf("progress line must not yield a destination")
	}
}
