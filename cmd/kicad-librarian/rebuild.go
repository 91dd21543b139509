package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

var rebuildCmd = &cobra.Command{
	Use:   "rebuild",
	Short: "Rebuild the master library files from all components",
	Long: `Rebuild regenerates the consolidated symbol library and footprint
directory from every component currently on disk. Both artifacts are
derived views: they are rebuilt from scratch on every run and must not
be edited by hand.`,
	Args: cobra.NoArgs,
	RunE: runRebuild,
}

func init() {
	rootCmd.AddCommand(rebuildCmd)
}

func runRebuild(cmd *cobra.Command, args []string) error {
	lib, _, err := newLibrarian()
	if err != nil {
		return err
	}

	fmt.Println("Rebuilding master library files...")
	report := lib.Rebuild()
	if !report.OK() {
		return fmt.Errorf("%s", report.Message())
	}

	printSuccess(report.Message())
	fmt.Println("\nMaster library files created:")
	fmt.Printf("  Symbols:    %s\n", lib.SymbolLibPath())
	fmt.Printf("  Footprints: %s/\n", lib.FootprintDirPath())
	return nil
}
