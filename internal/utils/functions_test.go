package utils_test

import (
	"testing"

	"tubeget/internal/utils"
)

func TestFormatBytes(t *testing.T) {
	cases := map[uint64]string{
		0:                "0 B",
		512:              "512 B",
		1024:             "1.00 KB",
		1536:             "1.50 KB",
		10 * 1024 * 1024: "10.00 MB",
	}
	for in, want := range cases {
		if got := utils.FormatBytes(in); got != want {
			t.Fatalf("FormatBytes(%d): expected %q, got %q", in, want, got)
		}
	}
}

func TestFormatDuration(t *testing.T) {
	cases := map[int64]string{
		0:   "0:00",
		59:  "0:59",
		60:  "1:00",
		425: "7:05",
	}
	for in, want := range cases {
		if got := utils.FormatDuration(in); got != want {
			t.Fatalf("FormatDuration(%d): expected %q, got %q", in, want, got)
		}
	}
	if got := utils.FormatDuration(-5); got != "0:00" {
		t.Fatalf("negative duration should clamp to 0:00, got %q", got)
	}
}

func TestParseQuality(t *testing.T) {
	for _, valid := range []string{"720p", "480p", "360p", "audio"} {
		q, err := utils.ParseQuality(valid)
		if err != nil {
			t.Fatalf("expected %q to parse, got: %v", valid, err)
		}
		if string(q) != valid {
			t.Fatalf("expected quality %q, got %q", valid, q)
		}
	}
	for _, invalid := range []string{"", "1080p", "best", "AUDIO"} {
		_, err := utils.ParseQuality(invalid)
		if err == nil {
			t.Fatalf("expected %q to be rejected", invalid)
		}
		if kind := utils.KindOf(err); kind != utils.ErrUnsupportedQuality {
			t.Fatalf("expected unsupported quality kind for %q, got %v", invalid, kind)
		}
	}
}

func TestKindOf(t *testing.T) {
	err := utils.NewError(utils.ErrNetwork, "connection refused")
	if kind := utils.KindOf(err); kind != utils.ErrNetwork {
		t.Fatalf("expected network kind, got %v", kind)
	}
	if kind := utils.KindOf(nil); kind != utils.ErrUnknown {
		t.Fatalf("expected unknown kind for nil, got %v", kind)
	}
}
