package downloader

import (
	"tubeget/internal/utils"
)

// formatSelectors maps qualities to yt-dlp format expressions, capping
// the stream height at the requested resolution.
var formatSelectors = map[utils.Quality]string{
	utils.Quality720p: "best[height<=720]",
	utils.Quality480p: "best[height<=480]",
	utils.Quality360p: "best[height<=360]",
}

const audioSelector = "bestaudio/best"

// ResolveArgs builds the full yt-dlp argument list for a job: format
// selection, output template, filename restriction and, for audio-only
// jobs, the MP3 extraction post-processing flags.
func ResolveArgs(job *utils.FetchJob) ([]string, error) {
	args := []string{
		"--progress",
		"--newline",
		"--no-warnings",
		"--no-playlist",
		"--restrict-filenames",
		"-o", job.OutputTemplate,
	}
	if ffmpegPath, ok := job.Metadata["ffmpegPath"].(string); ok && ffmpegPath != "" {
		args = append(args, "--ffmpeg-location", ffmpegPath)
	}
	if job.AudioOnly || job.Quality == utils.QualityAudio {
		args = append(args,
			"-f", audioSelector,
			"-x",
			"--audio-format", "mp3",
			"--audio-quality", "192K",
		)
	} else {
		selector, ok := formatSelectors[job.Quality]
		if !ok {
			return nil, utils.NewError(utils.ErrUnsupportedQuality, "unsupported quality: %q", job.Quality)
		}
		args = append(args, "-f", selector)
	}
	args = append(args, job.URL)
	return args, nil
}
