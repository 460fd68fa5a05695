package ytdlp

import (
	"bufio"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os/exec"
	"path/filepath"
	"strings"
	"sync"

	"github.com/rs/zerolog/log"
	"tubeget/internal/utils"
)

// Runner executes the yt-dlp binary. It is the whole "fetch library"
// surface tubeget consumes: one blocking call per download, progress
// reported through the job's callbacks.
type Runner struct{}

// lineTracker collects the output file path and an error tail from the
// subprocess streams. Both pipe readers write into it concurrently.
type lineTracker struct {
	mu       sync.Mutex
	dest     string
	errTail  []string
	maxLines int
}

func (t *lineTracker) observe(line string) {
	t.mu.Lock()
	defer t.mu.Unlock()
	if dest, ok := ParseDestination(line); ok {
		t.dest = dest
	}
	if strings.HasPrefix(line, "ERROR:") || strings.HasPrefix(line, "yt-dlp: error:") {
		t.errTail = append(t.errTail, line)
		if len(t.errTail) > t.maxLines {
			t.errTail = t.errTail[len(t.errTail)-t.maxLines:]
		}
	}
}

func (t *lineTracker) snapshot() (string, []string) {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.dest, append([]string{}, t.errTail...)
}

// Fetch runs one yt-dlp invocation for the job. Arguments and the
// binary path must already be present in the job metadata.
func (r *Runner) Fetch(job *utils.FetchJob) (utils.FetchResult, error) {
	ytdlpPath, ok := job.Metadata["ytdlpPath"].(string)
	if !ok || ytdlpPath == "" {
		return utils.FetchResult{}, utils.NewError(utils.ErrDependencyMissing, "yt-dlp path not resolved for job %s", job.ID)
	}
	args, ok := job.Metadata["args"].([]string)
	if !ok || len(args) == 0 {
		return utils.FetchResult{}, fmt.Errorf("no arguments built for job %s", job.ID)
	}
	cmd := exec.Command(ytdlpPath, args...)
	log.Debug().Str("op", "ytdlp/fetch").Msgf("Executing yt-dlp command: %s", cmd.String())

	tracker := &lineTracker{maxLines: 8}
	stdout, err := cmd.StdoutPipe()
	if err != nil {
		return utils.FetchResult{}, fmt.Errorf("error creating stdout pipe: %v", err)
	}
	stderr, err := cmd.StderrPipe()
	if err != nil {
		return utils.FetchResult{}, fmt.Errorf("error creating stderr pipe: %v", err)
	}
	if err := cmd.Start(); err != nil {
		return utils.FetchResult{}, classifyStartError(err)
	}

	var wg sync.WaitGroup
	wg.Add(2)
	go func() {
		defer wg.Done()
		processStream(stdout, job, tracker)
	}()
	go func() {
		defer wg.Done()
		processStream(stderr, job, tracker)
	}()
	wg.Wait()
	waitErr := cmd.Wait()
	dest, errLines := tracker.snapshot()
	if waitErr != nil {
		classified := classifyRunError(waitErr, errLines)
		log.Error().Str("op", "ytdlp/fetch").Err(classified).Msg("yt-dlp command failed")
		return utils.FetchResult{}, classified
	}
	log.Info().Str("op", "ytdlp/fetch").Msgf("yt-dlp download completed for %s", job.URL)
	result := utils.FetchResult{OutputPath: dest}
	if dest != "" {
		base := filepath.Base(dest)
		result.Title = strings.TrimSuffix(base, filepath.Ext(base))
	}
	return result, nil
}

func processStream(reader io.Reader, job *utils.FetchJob, tracker *lineTracker) {
	scanner := bufio.NewScanner(reader)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			continue
		}
		tracker.observe(line)
		if ev, ok := ParseProgress(line); ok {
			if job.ProgressFunc != nil {
				job.ProgressFunc(ev.Percent, ev.Speed)
			}
			continue
		}
		if job.StreamFunc != nil {
			job.StreamFunc(line)
		}
	}
}

// VideoInfo is the subset of yt-dlp's JSON dump that tubeget surfaces.
type VideoInfo struct {
	ID        string `json:"id"`
	Title     string `json:"title"`
	Uploader  string `json:"uploader"`
	Duration  int64  `json:"duration"`
	ViewCount int64  `json:"view_count"`
}

// Probe fetches video metadata without downloading, via --dump-json.
func (r *Runner) Probe(ytdlpPath, url string) (*VideoInfo, error) {
	args := []string{"--dump-json", "--no-warnings", "--no-playlist", url}
	cmd := exec.Command(ytdlpPath, args...)
	log.Debug().Str("op", "ytdlp/probe").Msgf("Executing yt-dlp command: %s", cmd.String())
	var stdoutBuf, stderrBuf strings.Builder
	cmd.Stdout = &stdoutBuf
	cmd.Stderr = &stderrBuf
	if err := cmd.Run(); err != nil {
		errLines := []string{}
		for _, line := range strings.Split(stderrBuf.String(), "\n") {
			line = strings.TrimSpace(line)
			if strings.HasPrefix(line, "ERROR:") {
				errLines = append(errLines, line)
			}
		}
		return nil, classifyRunError(err, errLines)
	}
	var info VideoInfo
	if err := json.Unmarshal([]byte(stdoutBuf.String()), &info); err != nil {
		return nil, fmt.Errorf("error parsing video info: %v", err)
	}
	return &info, nil
}

func classifyStartError(err error) error {
	if errors.Is(err, exec.ErrNotFound) {
		return utils.WrapError(utils.ErrDependencyMissing, err)
	}
	return utils.WrapError(utils.ErrNetwork, fmt.Errorf("error starting yt-dlp: %v", err))
}

var unavailableMarkers = []string{
	"video unavailable",
	"this video is not available",
	"this video is private",
	"private video",
	"video has been removed",
	"account associated with this video has been terminated",
	"http error 404",
	"incomplete youtube id",
	"is not a valid url",
}

var networkMarkers = []string{
	"unable to download webpage",
	"unable to download api page",
	"getaddrinfo failed",
	"temporary failure in name resolution",
	"name or service not known",
	"timed out",
	"connection refused",
	"connection reset",
	"network is unreachable",
	"http error 5",
}

var filesystemMarkers = []string{
	"permission denied",
	"read-only file system",
	"unable to open for writing",
	"no space left on device",
}

var dependencyMarkers = []string{
	"ffmpeg not found",
	"ffprobe and ffmpeg not found",
	"ffmpeg is required",
	"executable file not found",
}

// classifyRunError maps yt-dlp's error text onto tubeget's error kinds.
// The matchers follow yt-dlp's documented messages; anything
// unrecognized keeps ErrUnknown so the raw text still reaches the user.
func classifyRunError(err error, errLines []string) error {
	joined := strings.ToLower(strings.Join(errLines, " "))
	detail := err
	if len(errLines) > 0 {
		detail = fmt.Errorf("%s", strings.Join(errLines, "; "))
	}
	switch {
	case containsAny(joined, dependencyMarkers) || errors.Is(err, exec.ErrNotFound):
		return utils.WrapError(utils.ErrDependencyMissing, detail)
	case containsAny(joined, unavailableMarkers):
		return utils.WrapError(utils.ErrVideoUnavailable, detail)
	case containsAny(joined, filesystemMarkers):
		return utils.WrapError(utils.ErrFileSystem, detail)
	case containsAny(joined, networkMarkers):
		return utils.WrapError(utils.ErrNetwork, detail)
	}
	return utils.WrapError(utils.ErrUnknown, fmt.Errorf("yt-dlp failed: %v", detail))
}

func containsAny(s string, markers []string) bool {
	for _, marker := range markers {
		if strings.Contains(s, marker) {
			return true
		}
	}
	return false
}
