package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"tubeget/internal/downloader"
	"tubeget/internal/output"
	"tubeget/internal/utils"
	"tubeget/internal/ytdlp"
)

func newInfoCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "info [URL]",
		Short: "Show video title, uploader, duration and views without downloading",
		Args:  cobra.ExactArgs(1),
		Run: func(cmd *cobra.Command, args []string) {
			url := args[0]
			if err := downloader.ValidateURL(url); err != nil {
				output.PrintError(err.Error())
				os.Exit(1)
			}
			ytdlpPath, err := ytdlp.EnsureYtdlp(globalHTTPConfig)
			if err != nil {
				output.PrintError(err.Error())
				os.Exit(1)
			}
			runner := &ytdlp.Runner{}
			info, err := runner.Probe(ytdlpPath, url)
			if err != nil {
				output.PrintError(fmt.Sprintf("Could not fetch video information: %v", err))
				os.Exit(1)
			}
			output.PrintHeader(info.Title)
			output.PrintDetail(fmt.Sprintf("Uploader: %s", info.Uploader))
			output.PrintDetail(fmt.Sprintf("Duration: %s", utils.FormatDuration(info.Duration)))
			output.PrintDetail(fmt.Sprintf("Views: %d", info.ViewCount))
		},
	}
	return cmd
}
