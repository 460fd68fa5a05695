package scheduler

import (
	"fmt"
	"os"
	"sync"
	"time"

	"github.com/rs/zerolog/log"
	"tubeget/internal/downloader"
	"tubeget/internal/history"
	"tubeget/internal/output"
	"tubeget/internal/utils"
	"tubeget/internal/ytdlp"
)

// Run drives the given jobs through numWorkers workers with a live
// display, recording successful downloads in the history store when
// one is supplied. Returns an error if any job failed.
func Run(jobs []utils.FetchJob, numWorkers int, store *history.Store) error {
	outputMgr := output.NewManager()
	outputMgr.StartDisplay()

	jobCh := make(chan utils.FetchJob, len(jobs))
	for _, job := range jobs {
		jobCh <- job
	}
	close(jobCh)

	if numWorkers < 1 {
		numWorkers = 1
	}
	var wg sync.WaitGroup
	for i := 0; i < numWorkers; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			processJobs(jobCh, outputMgr, store)
		}()
	}
	wg.Wait()
	outputMgr.StopDisplay()

	if failures := outputMgr.FailureCount(); failures > 0 {
		return fmt.Errorf("%d of %d downloads failed", failures, len(jobs))
	}
	return nil
}

func processJobs(jobCh <-chan utils.FetchJob, outputMgr *output.Manager, store *history.Store) {
	for job := range jobCh {
		displayID := outputMgr.Register(job.URL)
		job.StreamFunc = func(line string) {
			outputMgr.AddStreamLine(displayID, line)
		}
		job.ProgressFunc = func(percent float64, speed string) {
			outputMgr.SetProgress(displayID, percent, speed)
		}

		facade := downloader.New(&ytdlp.Runner{})
		facade.StateFunc = func(s downloader.State) {
			switch s {
			case downloader.StateValidating:
				outputMgr.SetStatus(displayID, "pending")
				outputMgr.SetMessage(displayID, fmt.Sprintf("Validating %s", job.URL))
			case downloader.StateFetching:
				outputMgr.SetMessage(displayID, fmt.Sprintf("Downloading %s", job.URL))
			}
		}

		outcome := facade.Run(&job)
		if !outcome.Success() {
			outputMgr.ReportError(displayID, outcome.Err)
			continue
		}
		message := ""
		if outcome.Result.OutputPath != "" {
			message = fmt.Sprintf("Completed %s", outcome.Result.OutputPath)
		}
		outputMgr.Complete(displayID, message)
		recordOutcome(store, &job, outcome)
	}
}

func recordOutcome(store *history.Store, job *utils.FetchJob, outcome downloader.Outcome) {
	if store == nil || outcome.Result.OutputPath == "" {
		return
	}
	var size int64
	if info, err := os.Stat(outcome.Result.OutputPath); err == nil {
		size = info.Size()
	}
	quality := string(job.Quality)
	if job.AudioOnly {
		quality = string(utils.QualityAudio)
	}
	rec := history.Record{
		ID:         job.ID,
		URL:        job.URL,
		Title:      outcome.Result.Title,
		Quality:    quality,
		Path:       outcome.Result.OutputPath,
		Size:       size,
		FinishedAt: time.Now(),
	}
	if err := store.Add(rec); err != nil {
		log.Debug().Str("op", "scheduler/history").Err(err).Msg("Failed to record download")
	}
}
