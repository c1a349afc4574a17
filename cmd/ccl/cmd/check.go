package cmd

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/msto63/ccl"
	cclparser "github.com/msto63/ccl/parser"
)

var checkCmd = &cobra.Command{
	Use:   "check <file>...",
	Short: "Validate CCL files",
	Long: `Validates one or more CCL files and reports the first failure in
each file with its position and error code.`,
	Args: cobra.MinimumNArgs(1),
	RunE: runCheck,
}

func init() {
	rootCmd.AddCommand(checkCmd)
}

func runCheck(cmd *cobra.Command, args []string) error {
	failed := 0

	for _, path := range args {
		doc, err := ccl.ParseFile(path)
		if err != nil {
			failed++

			var pe *cclparser.ParseError
			if errors.As(err, &pe) {
				fmt.Printf("[-] %s: %s [%s]\n", path, pe.Error(), pe.Code)
			} else {
				fmt.Printf("[-] %s: %v\n", path, err)
			}
			continue
		}

		fmt.Printf("[+] %s: %d variables, %d categories\n",
			path, doc.VariableCount(), len(doc.Categories))
	}

	if failed > 0 {
		return fmt.Errorf("%d of %d files failed validation", failed, len(args))
	}
	return nil
}
