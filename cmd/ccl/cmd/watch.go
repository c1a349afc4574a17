package cmd

import (
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"

	"github.com/msto63/ccl"
	"github.com/msto63/ccl/ast"
)

var watchInterval time.Duration

var watchCmd = &cobra.Command{
	Use:   "watch <file>",
	Short: "Watch a CCL file and report changes",
	Long: `Watches a CCL file and re-parses it whenever it changes. Each
successful reload prints a summary of the new document; a save that
fails to parse keeps the previous document and is reported once.

Stop with Ctrl+C.`,
	Args: cobra.ExactArgs(1),
	RunE: runWatch,
}

func init() {
	watchCmd.Flags().DurationVar(&watchInterval, "interval", ccl.DefaultWatchInterval, "polling interval")
	rootCmd.AddCommand(watchCmd)
}

func runWatch(cmd *cobra.Command, args []string) error {
	path := args[0]

	watcher, err := ccl.NewWatcher(nil, path, watchInterval)
	if err != nil {
		return err
	}

	watcher.OnChange(func(old, new *ast.Document) {
		fmt.Printf("%s reloaded %s: %d variables, %d categories\n",
			time.Now().Format("15:04:05"), path,
			new.VariableCount(), len(new.Categories))
	})

	if err := watcher.Start(); err != nil {
		return err
	}
	defer watcher.Stop()

	doc := watcher.Document()
	fmt.Printf("watching %s (%d variables, %d categories), Ctrl+C to stop\n",
		path, doc.VariableCount(), len(doc.Categories))

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	return nil
}
