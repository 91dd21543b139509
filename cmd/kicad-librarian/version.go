package main

import (
	"fmt"

	"github.com/spf13/cobra"

	kicadlibrarian "github.com/hellenic-development/kicad-librarian"
)

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print the version number",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Printf("kicad-librarian version %s\n", kicadlibrarian.Version)
	},
}

func init() {
	rootCmd.AddCommand(versionCmd)
}
