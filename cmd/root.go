package cmd

import (
	"fmt"
	"os"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"
	"tubeget/internal/cfg"
	"tubeget/internal/history"
	"tubeget/internal/output"
	"tubeget/internal/scheduler"
	"tubeget/internal/utils"
)

var (
	quality     string
	audioOnly   bool
	downloadDir string
	workers     int
	timeout     time.Duration
	proxyURL    string
	userAgent   string
	debug       bool
)

var TubegetVersion = "dev"

var settings cfg.Settings
var globalHTTPConfig utils.HTTPClientConfig

var rootCmd = &cobra.Command{
	Use:     "tubeget [URL]",
	Short:   "Tubeget downloads YouTube videos at selectable quality via yt-dlp",
	Version: TubegetVersion,
	Args:    cobra.MaximumNArgs(1),
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		utils.InitLogger(debug)
		settings = cfg.Load()
		if !cmd.Flags().Changed("quality") {
			quality = settings.Quality
		}
		if !cmd.Flags().Changed("download-dir") {
			downloadDir = settings.DownloadDir
		}
		if !cmd.Flags().Changed("workers") {
			workers = settings.Workers
		}
		globalHTTPConfig = utils.HTTPClientConfig{
			Timeout:   timeout,
			ProxyURL:  proxyURL,
			UserAgent: userAgent,
		}
	},
	Run: func(cmd *cobra.Command, args []string) {
		if len(args) == 0 {
			output.PrintError("No URL provided")
			cmd.Usage()
			os.Exit(1)
		}
		job, err := buildJob(args[0], quality, audioOnly, downloadDir)
		if err != nil {
			output.PrintError(err.Error())
			os.Exit(1)
		}
		store := openHistory()
		if store != nil {
			defer store.Close()
		}
		if err := scheduler.Run([]utils.FetchJob{job}, 1, store); err != nil {
			fmt.Println()
			output.PrintError("Encountered failed operation(s)")
			os.Exit(1)
		}
	},
}

func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// buildJob turns CLI inputs into a FetchJob, rejecting unknown quality
// values before anything else runs.
func buildJob(url, qualityStr string, audio bool, dir string) (utils.FetchJob, error) {
	q, err := utils.ParseQuality(qualityStr)
	if err != nil {
		return utils.FetchJob{}, err
	}
	return utils.FetchJob{
		ID:               uuid.NewString(),
		URL:              url,
		Quality:          q,
		AudioOnly:        audio,
		OutputDir:        dir,
		HTTPClientConfig: globalHTTPConfig,
		Metadata:         make(map[string]any),
	}, nil
}

func openHistory() *history.Store {
	path := settings.OpenHistoryPath()
	if path == "" {
		return nil
	}
	store, err := history.Open(path)
	if err != nil {
		log.Warn().Str("op", "cmd/history").Err(err).Msg("History unavailable")
		return nil
	}
	return store
}

func init() {
	rootCmd.Flags().StringVarP(&quality, "quality", "q", "720p", "Video quality (720p, 480p, 360p, audio)")
	rootCmd.Flags().BoolVarP(&audioOnly, "audio-only", "a", false, "Download audio only (MP3 format)")
	rootCmd.PersistentFlags().StringVarP(&downloadDir, "download-dir", "d", "downloads", "Directory to save downloads")
	rootCmd.PersistentFlags().IntVarP(&workers, "workers", "w", 1, "Number of downloads to run in parallel")
	rootCmd.PersistentFlags().DurationVarP(&timeout, "timeout", "t", 3*time.Minute, "Connection timeout for fetching yt-dlp (eg. 5s, 10m)")
	rootCmd.PersistentFlags().StringVarP(&proxyURL, "proxy", "p", "", "HTTP/HTTPS proxy URL for fetching yt-dlp")
	rootCmd.PersistentFlags().StringVar(&userAgent, "user-agent", "", "User agent for fetching yt-dlp")
	rootCmd.PersistentFlags().BoolVar(&debug, "debug", false, "Enable debug logging")

	rootCmd.AddCommand(newBatchCmd())
	rootCmd.AddCommand(newInfoCmd())
	rootCmd.AddCommand(newListCmd())
	rootCmd.AddCommand(newHistoryCmd())
	rootCmd.AddCommand(newCleanCmd())
}
