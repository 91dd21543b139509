package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/hellenic-development/kicad-librarian/pkg/diag"
	"github.com/hellenic-development/kicad-librarian/pkg/easyeda"
)

var diagnosticsCmd = &cobra.Command{
	Use:   "diagnostics",
	Short: "Run system health checks",
	Args:  cobra.NoArgs,
	RunE:  runDiagnostics,
}

func init() {
	rootCmd.AddCommand(diagnosticsCmd)
}

func runDiagnostics(cmd *cobra.Command, args []string) error {
	home, cfg, err := loadSetup()
	if err != nil {
		return err
	}

	checks := diag.Run(cmd.Context(), home, cfg, &easyeda.CLI{})

	divider := strings.Repeat("=", 60)
	fmt.Println("\n" + divider)
	fmt.Println("kicad-librarian - Diagnostic Report")
	fmt.Println(divider + "\n")

	passed := 0
	for _, check := range checks {
		fmt.Println(check)
		fmt.Println()
		if check.Passed {
			passed++
		}
	}

	fmt.Println(divider)
	fmt.Printf("Results: %d/%d checks passed\n", passed, len(checks))
	fmt.Println(divider + "\n")

	if !diag.AllPassed(checks) {
		return fmt.Errorf("some checks failed, review the issues above")
	}
	printSuccess("All checks passed! System is ready to use.")
	return nil
}
