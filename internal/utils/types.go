package utils

// Quality is a user-selectable resolution or audio-only choice.
type Quality string

const (
	Quality720p  Quality = "720p"
	Quality480p  Quality = "480p"
	Quality360p  Quality = "360p"
	QualityAudio Quality = "audio"
)

// ParseQuality maps a user-facing quality string to a Quality value.
// An unrecognized value returns an ErrUnsupportedQuality error.
func ParseQuality(s string) (Quality, error) {
	switch Quality(s) {
	case Quality720p, Quality480p, Quality360p, QualityAudio:
		return Quality(s), nil
	}
	return "", NewError(ErrUnsupportedQuality, "unsupported quality: %q (choose 720p, 480p, 360p or audio)", s)
}

// FetchJob carries everything one download needs from the CLI through
// validation, option resolution and the engine invocation.
type FetchJob struct {
	ID               string
	URL              string
	Quality          Quality
	AudioOnly        bool
	OutputDir        string
	OutputTemplate   string
	StreamFunc       func(line string)
	ProgressFunc     func(percent float64, speed string)
	HTTPClientConfig HTTPClientConfig
	Metadata         map[string]any
}

// FetchResult is what the engine reports back on success.
type FetchResult struct {
	OutputPath string
	Title      string
}
