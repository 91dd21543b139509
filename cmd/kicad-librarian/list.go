package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"
)

var listVerboseFlag bool

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List all components in the library",
	Args:  cobra.NoArgs,
	RunE:  runList,
}

func init() {
	rootCmd.AddCommand(listCmd)
	listCmd.Flags().BoolVarP(&listVerboseFlag, "verbose", "v", false,
		"show detailed information about each component")
}

func runList(cmd *cobra.Command, args []string) error {
	lib, _, err := newLibrarian()
	if err != nil {
		return err
	}

	components, err := lib.List()
	if err != nil {
		return err
	}
	if len(components) == 0 {
		printInfo("No components found in library")
		return nil
	}

	fmt.Printf("\nFound %d component(s) in library:\n\n", len(components))
	for _, c := range components {
		if !listVerboseFlag {
			fmt.Printf("  • %s (%d files)\n", c.ID, c.FileCount)
			continue
		}

		fmt.Printf("📦 %s\n", c.ID)
		fmt.Printf("   Files: %d\n", c.FileCount)
		if c.Metadata != nil {
			if c.Metadata.ComponentType != "" {
				fmt.Printf("   Type: %s\n", c.Metadata.ComponentType)
			}
			if c.Metadata.AddedDate != "" {
				fmt.Printf("   Added: %s\n", c.Metadata.AddedDate)
			}
		}
		if len(c.Files) > 0 {
			shown := c.Files
			if len(shown) > 3 {
				shown = shown[:3]
			}
			fmt.Printf("   Contents: %s\n", strings.Join(shown, ", "))
			if len(c.Files) > 3 {
				fmt.Printf("             ... and %d more\n", len(c.Files)-3)
			}
		}
		fmt.Println()
	}

	if !listVerboseFlag {
		fmt.Println("\nUse 'list --verbose' for more details")
	}
	return nil
}
