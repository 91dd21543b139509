package main

import (
	"fmt"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/hellenic-development/kicad-librarian/pkg/watch"
)

var watchCmd = &cobra.Command{
	Use:   "watch",
	Short: "Rebuild the master libraries whenever components change",
	Long: `Watch observes the library root and regenerates the master library
files after component directories change. Changes are debounced so a
burst of file writes (one download touches several files) triggers a
single rebuild. Press Ctrl-C to stop.`,
	Args: cobra.NoArgs,
	RunE: runWatch,
}

func init() {
	rootCmd.AddCommand(watchCmd)
}

func runWatch(cmd *cobra.Command, args []string) error {
	lib, cfg, err := newLibrarian()
	if err != nil {
		return err
	}

	rebuild := func() {
		report := lib.Rebuild()
		if report.OK() {
			printSuccess(report.Message())
		} else {
			printError(report.Message())
		}
	}

	// Start from a known-good state before waiting for changes.
	fmt.Printf("Watching %s\n", cfg.LibraryPath)
	rebuild()

	w, err := watch.New(cfg.LibraryPath, watch.DefaultDebounce, rebuild, &cliLogger{debug: cfg.Debug})
	if err != nil {
		return fmt.Errorf("start watcher: %w", err)
	}
	defer w.Stop()

	ctx, stop := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	w.Start(ctx)
	<-ctx.Done()

	fmt.Println("\nStopping watcher.")
	return nil
}
