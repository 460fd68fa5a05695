package ytdlp

import (
	"errors"
	"os/exec"
	"testing"

	"tubeget/internal/utils"
)

func TestClassifyRunError(t *testing.T) {
	exitErr := errors.New("exit status 1")
	cases := []struct {
		name  string
		lines []string
		want  utils.ErrorKind
	}{
		{"unavailable", []string{"ERROR: [youtube] abc123: Video unavailable"}, utils.ErrVideoUnavailable},
		{"private", []string{"ERROR: [youtube] abc123: Private video. Sign in if you've been granted access"}, utils.ErrVideoUnavailable},
		{"removed", []string{"ERROR: This video has been removed by the uploader"}, utils.ErrVideoUnavailable},
		{"dns", []string{"ERROR: Unable to download webpage: <urlopen error [Errno -3] Temporary failure in name resolution>"}, utils.ErrNetwork},
		{"timeout", []string{"ERROR: Unable to download API page: The read operation timed out"}, utils.ErrNetwork},
		{"permission", []string{"ERROR: unable to open for writing: [Errno 13] Permission denied: 'downloads/x.mp4'"}, utils.ErrFileSystem},
		{"diskfull", []string{"ERROR: [Errno 28] No space left on device"}, utils.ErrFileSystem},
		{"ffmpeg", []string{"ERROR: ffmpeg not found. Please install or provide the path"}, utils.ErrDependencyMissing},
		{"unrecognized", []string{"ERROR: something novel went wrong"}, utils.ErrUnknown},
		{"nolines", nil, utils.ErrUnknown},
	}
	for _, tc := range cases {
		err := classifyRunError(exitErr, tc.lines)
		if kind := utils.KindOf(err); kind != tc.want {
			t.Fatalf("%s: expected kind %v, got %v (%v)", tc.name, tc.want, kind, err)
		}
	}
}

func TestClassifyStartError_MissingBinary(t *testing.T) {
	err := classifyStartError(&exec.Error{Name: "yt-dlp", Err: exec.ErrNotFound})
	if kind := utils.KindOf(err); kind != utils.ErrDependencyMissing {
		t.Fatalf("expected dependency missing kind, got %v", kind)
	}
}
