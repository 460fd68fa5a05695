package cmd

import (
	"os"

	"github.com/spf13/cobra"
	"tubeget/internal/output"
	"tubeget/internal/utils"
)

func newCleanCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "clean [dir]",
		Short: "Clean up temporary files and partial downloads",
		Args:  cobra.MaximumNArgs(1),
		Run: func(cmd *cobra.Command, args []string) {
			if len(args) == 0 {
				if err := utils.CleanLocal(); err != nil {
					output.PrintError("Error cleaning up temporary files")
					os.Exit(1)
				}
				output.PrintSuccess("Temporary files cleaned up")
				return
			}
			if err := utils.CleanPartFiles(args[0]); err != nil {
				output.PrintError("Error cleaning up partial downloads")
				os.Exit(1)
			}
			output.PrintSuccess("Partial downloads cleaned up")
		},
	}
}
