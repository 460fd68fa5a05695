package downloader

import (
	"github.com/rs/zerolog/log"
	"tubeget/internal/utils"
	"tubeget/internal/ytdlp"
)

// State is the facade's position in the download lifecycle. Done and
// Failed are terminal; there are no retries.
type State int

const (
	StateIdle State = iota
	StateValidating
	StateFetching
	StateDone
	StateFailed
)

func (s State) String() string {
	switch s {
	case StateIdle:
		return "idle"
	case StateValidating:
		return "validating"
	case StateFetching:
		return "fetching"
	case StateDone:
		return "done"
	case StateFailed:
		return "failed"
	}
	return "unknown"
}

// Engine is the opaque fetch collaborator. ytdlp.Runner is the real
// one; tests substitute their own.
type Engine interface {
	Fetch(job *utils.FetchJob) (utils.FetchResult, error)
}

// Outcome is the single result produced for a request.
type Outcome struct {
	Result utils.FetchResult
	Err    error
}

func (o Outcome) Success() bool {
	return o.Err == nil
}

// Facade wires validation, option resolution, path management and the
// engine invocation together for one job at a time.
type Facade struct {
	engine Engine

	// Provision resolves external binaries into the job metadata.
	// Overridable so tests never touch PATH or the network.
	Provision func(job *utils.FetchJob) error

	// StateFunc observes lifecycle transitions when set.
	StateFunc func(s State)
}

func New(engine Engine) *Facade {
	return &Facade{
		engine:    engine,
		Provision: provisionBinaries,
	}
}

func (f *Facade) transition(s State) {
	if f.StateFunc != nil {
		f.StateFunc(s)
	}
}

// Run takes a job from Idle to a terminal state and returns its
// outcome. The URL check happens before any subprocess or network
// activity; a failure there means the engine is never invoked.
func (f *Facade) Run(job *utils.FetchJob) Outcome {
	f.transition(StateValidating)
	if err := ValidateURL(job.URL); err != nil {
		f.transition(StateFailed)
		return Outcome{Err: err}
	}
	if err := f.build(job); err != nil {
		f.transition(StateFailed)
		return Outcome{Err: err}
	}
	f.transition(StateFetching)
	result, err := f.engine.Fetch(job)
	if err != nil {
		f.transition(StateFailed)
		return Outcome{Err: err}
	}
	f.transition(StateDone)
	return Outcome{Result: result}
}

func (f *Facade) build(job *utils.FetchJob) error {
	if job.Metadata == nil {
		job.Metadata = make(map[string]any)
	}
	if job.OutputDir == "" {
		job.OutputDir = "downloads"
	}
	if err := EnsureOutputDir(job.OutputDir); err != nil {
		return err
	}
	job.OutputTemplate = OutputTemplate(job.OutputDir)
	if err := f.Provision(job); err != nil {
		return err
	}
	args, err := ResolveArgs(job)
	if err != nil {
		return err
	}
	job.Metadata["args"] = args
	log.Debug().Str("op", "downloader/build").Msgf("Built job %s for %s", job.ID, job.URL)
	return nil
}

// provisionBinaries locates yt-dlp and ffmpeg. ffmpeg is mandatory for
// audio extraction only; video-height formats are progressive streams
// that need no merge step.
func provisionBinaries(job *utils.FetchJob) error {
	ytdlpPath, err := ytdlp.EnsureYtdlp(job.HTTPClientConfig)
	if err != nil {
		return err
	}
	job.Metadata["ytdlpPath"] = ytdlpPath
	ffmpegPath, err := ytdlp.EnsureFFmpeg()
	if err != nil {
		if job.AudioOnly || job.Quality == utils.QualityAudio {
			return err
		}
		log.Debug().Str("op", "downloader/build").Msg("ffmpeg not found, continuing without it")
		return nil
	}
	job.Metadata["ffmpegPath"] = ffmpegPath
	return nil
}
