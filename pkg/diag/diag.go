// Package diag runs system health checks: configuration, library
// directory access, converter availability, and aggregate artifact
// state.
package diag

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	"github.com/hellenic-development/kicad-librarian/pkg/aggregate"
	"github.com/hellenic-development/kicad-librarian/pkg/config"
	"github.com/hellenic-development/kicad-librarian/pkg/easyeda"
)

// Check is the result of one diagnostic.
type Check struct {
	Name    string
	Passed  bool
	Message string
}

func (c Check) String() string {
	status := "✗ FAIL"
	if c.Passed {
		status = "✓ PASS"
	}
	return fmt.Sprintf("%s: %s\n  %s", status, c.Name, c.Message)
}

// Run executes every diagnostic check and returns the results in a fixed
// order. It never fails as a whole; failures are reported per check.
func Run(ctx context.Context, homeDir string, cfg config.Config, d easyeda.Downloader) []Check {
	return []Check{
		checkConfig(homeDir),
		checkLibraryDir(cfg.LibraryPath),
		checkConverter(ctx, d),
		checkAggregates(cfg.LibraryPath),
	}
}

// AllPassed reports whether every check in checks passed.
func AllPassed(checks []Check) bool {
	for _, c := range checks {
		if !c.Passed {
			return false
		}
	}
	return true
}

func checkConfig(homeDir string) Check {
	path := config.Path(homeDir)
	if _, err := os.Stat(path); os.IsNotExist(err) {
		// The tool runs fine on defaults; an absent file is informational.
		return Check{
			Name:    "Configuration",
			Passed:  true,
			Message: fmt.Sprintf("No config file at %s, using defaults", path),
		}
	}

	if _, err := config.Load(homeDir); err != nil {
		return Check{
			Name:    "Configuration",
			Passed:  false,
			Message: fmt.Sprintf("Invalid configuration: %v", err),
		}
	}
	return Check{
		Name:    "Configuration",
		Passed:  true,
		Message: fmt.Sprintf("Valid configuration at %s", path),
	}
}

func checkLibraryDir(libraryPath string) Check {
	if err := os.MkdirAll(libraryPath, 0755); err != nil {
		return Check{
			Name:    "Library directory",
			Passed:  false,
			Message: fmt.Sprintf("Cannot create library directory %s: %v", libraryPath, err),
		}
	}

	probe := filepath.Join(libraryPath, ".write_test")
	if err := os.WriteFile(probe, nil, 0644); err != nil {
		return Check{
			Name:    "Library directory",
			Passed:  false,
			Message: fmt.Sprintf("Library directory not writable: %v", err),
		}
	}
	os.Remove(probe)

	count := 0
	if entries, err := os.ReadDir(libraryPath); err == nil {
		for _, e := range entries {
			if e.IsDir() && e.Name() != aggregate.FootprintDirName {
				count++
			}
		}
	}
	return Check{
		Name:    "Library directory",
		Passed:  true,
		Message: fmt.Sprintf("Library accessible at %s (%d components)", libraryPath, count),
	}
}

func checkConverter(ctx context.Context, d easyeda.Downloader) Check {
	version, err := d.Version(ctx)
	if err != nil {
		return Check{
			Name:    "easyeda2kicad",
			Passed:  false,
			Message: fmt.Sprintf("easyeda2kicad not found: %v", err),
		}
	}
	return Check{
		Name:    "easyeda2kicad",
		Passed:  true,
		Message: fmt.Sprintf("easyeda2kicad is installed (%s)", version),
	}
}

func checkAggregates(libraryPath string) Check {
	symPath := filepath.Join(libraryPath, aggregate.SymbolLibName)
	fpPath := filepath.Join(libraryPath, aggregate.FootprintDirName)

	_, symErr := os.Stat(symPath)
	_, fpErr := os.Stat(fpPath)

	switch {
	case symErr == nil && fpErr == nil:
		return Check{
			Name:    "Master libraries",
			Passed:  true,
			Message: fmt.Sprintf("Aggregates present: %s, %s", symPath, fpPath),
		}
	case symErr == nil || fpErr == nil:
		return Check{
			Name:    "Master libraries",
			Passed:  true,
			Message: "Aggregates partially built, run rebuild to refresh",
		}
	default:
		return Check{
			Name:    "Master libraries",
			Passed:  true,
			Message: "Aggregates not built yet, run rebuild to create them",
		}
	}
}
