package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/hellenic-development/kicad-librarian/pkg/easyeda"
)

var getTypeFlag string

var getCmd = &cobra.Command{
	Use:   "get <component-id>",
	Short: "Download and add a component to the library",
	Long: `Get downloads a component from EasyEDA into its own directory under
the library root and records metadata for it. The component ID is an
LCSC part number (e.g. C12345) or an EasyEDA ID.

An already-present component is refused; delete it first to replace it.

Examples:
  # Download symbol and footprint
  kicad-librarian get C12345

  # Download only the schematic symbol
  kicad-librarian get C12345 --type symbol
`,
	Args: cobra.ExactArgs(1),
	RunE: runGet,
}

func init() {
	rootCmd.AddCommand(getCmd)
	getCmd.Flags().StringVar(&getTypeFlag, "type", "both",
		"what to download: symbol, footprint, or both")
}

func runGet(cmd *cobra.Command, args []string) error {
	kind := easyeda.Kind(getTypeFlag)
	if !kind.Valid() {
		return fmt.Errorf("invalid --type %q (must be symbol, footprint, or both)", getTypeFlag)
	}

	lib, _, err := newLibrarian()
	if err != nil {
		return err
	}

	id := args[0]
	if err := lib.Get(cmd.Context(), id, kind); err != nil {
		return err
	}

	printSuccess(fmt.Sprintf("Component %s added to library", id))
	return nil
}
