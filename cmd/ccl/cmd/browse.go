package cmd

import (
	"github.com/spf13/cobra"

	"github.com/msto63/ccl/internal/tui/browser"
)

var browseCmd = &cobra.Command{
	Use:   "browse <file>",
	Short: "Interactive document browser",
	Long: `Opens a terminal UI for browsing a CCL document. Sections are
listed on the left (root variables first, then each category); the
variables of the selected section are shown on the right with their
source positions.`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return browser.Run(args[0])
	},
}

func init() {
	rootCmd.AddCommand(browseCmd)
}
