package cmd

import (
	"os"

	"github.com/spf13/cobra"

	"github.com/msto63/ccl"
	cclerror "github.com/msto63/ccl/core/error"
	"github.com/msto63/ccl/export"
)

var (
	exportFormat string
	exportOutput string
)

var exportCmd = &cobra.Command{
	Use:   "export <file>",
	Short: "Convert a CCL file to JSON, YAML, or TOML",
	Long: `Parses a CCL file and writes it in another configuration format.
Root variables become top-level keys and categories become nested
sections. Duplicate names keep their first occurrence.`,
	Args: cobra.ExactArgs(1),
	RunE: runExport,
}

func init() {
	exportCmd.Flags().StringVarP(&exportFormat, "format", "f", "json", "target format (json, yaml, toml)")
	exportCmd.Flags().StringVarP(&exportOutput, "output", "o", "", "output file (default: stdout)")
	rootCmd.AddCommand(exportCmd)
}

func runExport(cmd *cobra.Command, args []string) error {
	format, err := export.ParseFormat(exportFormat)
	if err != nil {
		return err
	}

	doc, err := ccl.ParseFile(args[0])
	if err != nil {
		return err
	}

	out := os.Stdout
	if exportOutput != "" {
		f, err := os.Create(exportOutput)
		if err != nil {
			return cclerror.Wrap(err, "failed to create output file").
				WithCode(cclerror.CodeIOError).
				WithOperation("ccl.export").
				WithDetail("path", exportOutput)
		}
		defer f.Close()
		out = f
	}

	return export.Write(out, doc, format)
}
