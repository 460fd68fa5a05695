package cmd

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"
	"tubeget/internal/output"
	"tubeget/internal/utils"
)

func newListCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "list",
		Short: "List files in the download directory",
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, args []string) {
			entries, err := os.ReadDir(downloadDir)
			if err != nil {
				if os.IsNotExist(err) {
					output.PrintInfo(fmt.Sprintf("No downloads found in %s", downloadDir))
					return
				}
				output.PrintError(fmt.Sprintf("Error reading %s: %v", downloadDir, err))
				os.Exit(1)
			}
			count := 0
			for _, entry := range entries {
				if entry.IsDir() {
					continue
				}
				info, err := entry.Info()
				if err != nil {
					continue
				}
				count++
				fmt.Printf("%2d. %s (%s)\n", count, entry.Name(), utils.FormatBytes(uint64(info.Size())))
			}
			if count == 0 {
				output.PrintInfo(fmt.Sprintf("No downloads found in %s", downloadDir))
			}
		},
	}
	return cmd
}

func newHistoryCmd() *cobra.Command {
	var limit int
	cmd := &cobra.Command{
		Use:   "history",
		Short: "Show recently completed downloads",
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, args []string) {
			store := openHistory()
			if store == nil {
				output.PrintWarning("Download history is not available")
				os.Exit(1)
			}
			defer store.Close()
			records, err := store.Recent(limit)
			if err != nil {
				output.PrintError(fmt.Sprintf("Error reading history: %v", err))
				os.Exit(1)
			}
			if len(records) == 0 {
				output.PrintInfo("No downloads recorded yet")
				return
			}
			for _, rec := range records {
				name := rec.Title
				if name == "" {
					name = filepath.Base(rec.Path)
				}
				fmt.Printf("%s  %s [%s] (%s)\n",
					rec.FinishedAt.Format("2006-01-02 15:04"),
					name, rec.Quality, utils.FormatBytes(uint64(rec.Size)))
			}
		},
	}
	cmd.Flags().IntVarP(&limit, "limit", "n", 20, "Maximum number of entries to show")
	return cmd
}
