package ytdlp

import (
	"regexp"
	"strconv"
	"strings"
)

// ProgressEvent is one parsed yt-dlp download progress line.
type ProgressEvent struct {
	Percent float64
	Total   string
	Speed   string
	ETA     string
}

var (
	progressRegex    = regexp.MustCompile(`^\[download\]\s+(\d+(?:\.\d+)?)% of ~?\s*(\S+)(?:\s+at\s+(\S+))?(?:\s+ETA\s+(\S+))?`)
	destinationRegex = regexp.MustCompile(`^\[download\] Destination: (.+)$`)
	mergerRegex      = regexp.MustCompile(`^\[Merger\] Merging formats into "(.+)"$`)
	extractRegex     = regexp.MustCompile(`^\[ExtractAudio\] Destination: (.+)$`)
)

// ParseProgress extracts percent/size/speed from a "[download] NN.N% of
// SIZE at SPEED ETA T" line. Returns false for any other line.
func ParseProgress(line string) (ProgressEvent, bool) {
	m := progressRegex.FindStringSubmatch(strings.TrimSpace(line))
	if m == nil {
		return ProgressEvent{}, false
	}
	percent, err := strconv.ParseFloat(m[1], 64)
	if err != nil {
		return ProgressEvent{}, false
	}
	ev := ProgressEvent{Percent: percent, Total: m[2]}
	if m[3] != "" && m[3] != "Unknown" {
		ev.Speed = m[3]
	}
	ev.ETA = m[4]
	return ev, true
}

// ParseDestination pulls the output file path out of destination,
// merger and audio-extraction lines. Later matches supersede earlier
// ones, so the last hit is the final artifact.
func ParseDestination(line string) (string, bool) {
	line = strings.TrimSpace(line)
	for _, re := range []*regexp.Regexp{extractRegex, mergerRegex, destinationRegex} {
		if m := re.FindStringSubmatch(line); m != nil {
			return m[1], true
		}
	}
	return "", false
}
