package cmd

import (
	"fmt"
	"os"

	"github.com/google/uuid"
	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"
	"tubeget/internal/scheduler"
	"tubeget/internal/utils"
)

type BatchEntry struct {
	Link      string `yaml:"link"`
	Quality   string `yaml:"quality,omitempty"`
	Audio     bool   `yaml:"audio,omitempty"`
	OutputDir string `yaml:"dir,omitempty"`
}

func newBatchCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "batch [YAML_FILE]",
		Short: "Process multiple downloads from a YAML file",
		Args:  cobra.ExactArgs(1),
		Run: func(cmd *cobra.Command, args []string) {
			data, err := os.ReadFile(args[0])
			if err != nil {
				fmt.Fprintf(os.Stderr, "Error reading YAML file: %v\n", err)
				os.Exit(1)
			}
			var entries []BatchEntry
			if err := yaml.Unmarshal(data, &entries); err != nil {
				fmt.Fprintf(os.Stderr, "Error parsing YAML file: %v\n", err)
				os.Exit(1)
			}
			jobs := buildJobsFromBatch(entries)
			if len(jobs) == 0 {
				fmt.Fprintf(os.Stderr, "No valid jobs found in the batch file\n")
				os.Exit(1)
			}
			store := openHistory()
			if store != nil {
				defer store.Close()
			}
			if err := scheduler.Run(jobs, workers, store); err != nil {
				os.Exit(1)
			}
		},
	}
	return cmd
}

func buildJobsFromBatch(entries []BatchEntry) []utils.FetchJob {
	var jobs []utils.FetchJob
	for _, entry := range entries {
		if entry.Link == "" {
			fmt.Fprintf(os.Stderr, "Warning: Empty link in batch entry, skipping...\n")
			continue
		}
		qualityStr := entry.Quality
		if qualityStr == "" {
			qualityStr = quality
		}
		q, err := utils.ParseQuality(qualityStr)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Warning: %v, skipping %s...\n", err, entry.Link)
			continue
		}
		dir := entry.OutputDir
		if dir == "" {
			dir = downloadDir
		}
		jobs = append(jobs, utils.FetchJob{
			ID:               uuid.NewString(),
			URL:              entry.Link,
			Quality:          q,
			AudioOnly:        entry.Audio,
			OutputDir:        dir,
			HTTPClientConfig: globalHTTPConfig,
			Metadata:         make(map[string]any),
		})
	}
	return jobs
}
