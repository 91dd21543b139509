package main

import (
	"bufio"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"
)

var deleteForceFlag bool

var deleteCmd = &cobra.Command{
	Use:   "delete <component-id>",
	Short: "Remove a component from the library",
	Long: `Delete removes a component directory and everything in it. The master
library files keep their stale entries until the next rebuild.

Examples:
  kicad-librarian delete C12345

  # Skip the confirmation prompt
  kicad-librarian delete C12345 --force
`,
	Args: cobra.ExactArgs(1),
	RunE: runDelete,
}

func init() {
	rootCmd.AddCommand(deleteCmd)
	deleteCmd.Flags().BoolVar(&deleteForceFlag, "force", false, "skip confirmation prompt")
}

func runDelete(cmd *cobra.Command, args []string) error {
	id := args[0]

	if !deleteForceFlag {
		fmt.Printf("Are you sure you want to delete component %q? (y/N): ", id)
		reader := bufio.NewReader(os.Stdin)
		answer, _ := reader.ReadString('\n')
		answer = strings.ToLower(strings.TrimSpace(answer))
		if answer != "y" && answer != "yes" {
			fmt.Println("Delete cancelled.")
			return nil
		}
	}

	lib, _, err := newLibrarian()
	if err != nil {
		return err
	}
	if err := lib.Delete(id); err != nil {
		return err
	}

	printSuccess(fmt.Sprintf("Component %s removed from library", id))
	return nil
}
