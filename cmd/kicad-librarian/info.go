package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

var infoCmd = &cobra.Command{
	Use:   "info <component-id>",
	Short: "Show detailed information about a component",
	Args:  cobra.ExactArgs(1),
	RunE:  runInfo,
}

func init() {
	rootCmd.AddCommand(infoCmd)
}

func runInfo(cmd *cobra.Command, args []string) error {
	lib, _, err := newLibrarian()
	if err != nil {
		return err
	}

	c, err := lib.Info(args[0])
	if err != nil {
		return err
	}

	fmt.Printf("\n📦 Component: %s\n\n", c.ID)
	fmt.Printf("Path: %s\n", c.Path)
	fmt.Printf("Files: %d\n", c.FileCount)
	if c.Metadata != nil {
		if c.Metadata.ComponentType != "" {
			fmt.Printf("Type: %s\n", c.Metadata.ComponentType)
		}
		if c.Metadata.AddedDate != "" {
			fmt.Printf("Added: %s\n", c.Metadata.AddedDate)
		}
	}
	if len(c.Files) > 0 {
		fmt.Println("\nContents:")
		for _, name := range c.Files {
			fmt.Printf("  • %s\n", name)
		}
	}
	fmt.Println()
	return nil
}
