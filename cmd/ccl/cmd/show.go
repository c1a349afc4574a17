package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/msto63/ccl"
	"github.com/msto63/ccl/ast"
)

var (
	showVariable string
	showStats    bool
)

var showCmd = &cobra.Command{
	Use:   "show <file>",
	Short: "Print the parsed document",
	Long: `Parses a CCL file and prints its structure: root variables first,
then each category with its variables.

With --var the first matching variable is printed, searching root
variables and then every category. With --stats a summary of the
document is printed instead.`,
	Args: cobra.ExactArgs(1),
	RunE: runShow,
}

func init() {
	showCmd.Flags().StringVar(&showVariable, "var", "", "print a single variable by name")
	showCmd.Flags().BoolVar(&showStats, "stats", false, "print document statistics")
	rootCmd.AddCommand(showCmd)
}

func runShow(cmd *cobra.Command, args []string) error {
	doc, err := ccl.ParseFile(args[0])
	if err != nil {
		return err
	}

	if showVariable != "" {
		return showSingleVariable(doc, showVariable)
	}

	if showStats {
		showDocumentStats(doc)
		return nil
	}

	fmt.Println(doc.String())
	return nil
}

func showSingleVariable(doc *ast.Document, name string) error {
	if v, ok := doc.Lookup(name); ok {
		fmt.Printf("%s (at %s)\n", v.String(), v.Pos)
		return nil
	}

	for i := range doc.Categories {
		if v, ok := doc.Categories[i].Lookup(name); ok {
			fmt.Printf("%s.%s (at %s)\n", doc.Categories[i].Name, v.String(), v.Pos)
			return nil
		}
	}

	return fmt.Errorf("variable %q not found", name)
}

func showDocumentStats(doc *ast.Document) {
	visitor := ast.NewStatsVisitor()
	doc.Accept(visitor)
	stats := visitor.Stats()

	fmt.Println("Document statistics")
	fmt.Println("-------------------")
	fmt.Printf("  Root variables: %d\n", stats.RootVariables)
	fmt.Printf("  Categories:     %d\n", stats.Categories)
	fmt.Printf("  Variables:      %d\n", stats.Variables)
	fmt.Printf("  Values:         %d\n", stats.Values)
	for _, vt := range []ast.ValueType{
		ast.ValueTypeBoolean, ast.ValueTypeInteger, ast.ValueTypeFloat,
		ast.ValueTypeString, ast.ValueTypeArray,
	} {
		if count := stats.ByType[vt]; count > 0 {
			fmt.Printf("    %-8s %d\n", vt.String()+":", count)
		}
	}
}
