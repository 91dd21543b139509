package main

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	kicadlibrarian "github.com/hellenic-development/kicad-librarian"
	"github.com/hellenic-development/kicad-librarian/pkg/config"
)

var (
	homeFlag  string
	debugFlag bool
)

var rootCmd = &cobra.Command{
	Use:   "kicad-librarian",
	Short: "Manage EasyEDA components for KiCad",
	Long: `kicad-librarian downloads electronic components from EasyEDA via the
easyeda2kicad converter, keeps each component in its own library
directory, and consolidates everything into master library files KiCad
can consume directly.`,
	SilenceUsage:  true,
	SilenceErrors: true,
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		printError(err.Error())
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().StringVar(&homeFlag, "home", "",
		"manager home directory holding config.json (default: current directory)")
	rootCmd.PersistentFlags().BoolVar(&debugFlag, "debug", false,
		"enable verbose logging")
}

// loadSetup resolves the home directory and configuration shared by all
// commands. The --debug flag wins over the config file's debug setting.
func loadSetup() (home string, cfg config.Config, err error) {
	home = homeFlag
	if home == "" {
		home, err = os.Getwd()
		if err != nil {
			return "", config.Config{}, fmt.Errorf("resolve working directory: %w", err)
		}
	}
	home, err = filepath.Abs(home)
	if err != nil {
		return "", config.Config{}, err
	}

	cfg, err = config.Load(home)
	if err != nil {
		return "", config.Config{}, err
	}
	if debugFlag {
		cfg.Debug = true
	}
	return home, cfg, nil
}

func newLibrarian() (*kicadlibrarian.Librarian, config.Config, error) {
	_, cfg, err := loadSetup()
	if err != nil {
		return nil, config.Config{}, err
	}

	lib, err := kicadlibrarian.New(kicadlibrarian.Options{
		LibraryPath: cfg.LibraryPath,
		Logger:      &cliLogger{debug: cfg.Debug},
	})
	if err != nil {
		return nil, config.Config{}, err
	}
	return lib, cfg, nil
}

func printSuccess(msg string) {
	color.New(color.FgGreen).Printf("✓ %s\n", msg)
}

func printError(msg string) {
	color.New(color.FgRed).Fprintf(os.Stderr, "✗ %s\n", msg)
}

func printInfo(msg string) {
	color.New(color.FgCyan).Printf("ℹ %s\n", msg)
}

// cliLogger implements the librarian Logger interfaces with colored
// terminal output. Info messages only appear in debug mode; warnings and
// errors always show.
type cliLogger struct {
	debug bool
}

func (l *cliLogger) Infof(format string, args ...any) {
	if l.debug {
		color.New(color.FgYellow).Printf(format+"\n", args...)
	}
}

func (l *cliLogger) Warnf(format string, args ...any) {
	color.New(color.FgYellow).Printf("⚠ "+format+"\n", args...)
}

func (l *cliLogger) Errorf(format string, args ...any) {
	color.New(color.FgRed).Printf("✗ "+format+"\n", args...)
}
