// Package easyeda wraps the external easyeda2kicad converter behind a
// narrow interface so that library management and aggregation can be
// exercised without the binary present.
package easyeda

import (
	"context"
	"fmt"
	"os/exec"
	"strings"
	"time"
)

// Kind selects which artifacts a download produces.
type Kind string

const (
	KindSymbol    Kind = "symbol"
	KindFootprint Kind = "footprint"
	KindBoth      Kind = "both"
)

// Valid reports whether k is one of the recognized kinds.
func (k Kind) Valid() bool {
	switch k {
	case KindSymbol, KindFootprint, KindBoth:
		return true
	}
	return false
}

// Downloader fetches component files from EasyEDA into a destination
// directory. Implementations must be safe to call sequentially; no
// concurrency guarantees are made or required.
type Downloader interface {
	// Download fetches the component identified by id (LCSC part number
	// or EasyEDA ID) into dir, producing the artifacts selected by kind.
	Download(ctx context.Context, id, dir string, kind Kind) error

	// Version returns the converter's version string.
	Version(ctx context.Context) (string, error)
}

const (
	binaryName      = "easyeda2kicad"
	downloadTimeout = 60 * time.Second
	versionTimeout  = 5 * time.Second
)

// CLI is the production Downloader: it shells out to the easyeda2kicad
// command-line tool. The zero value runs "easyeda2kicad" from PATH.
type CLI struct {
	// Path overrides the binary location. Empty means look up
	// "easyeda2kicad" on PATH.
	Path string
}

func (c *CLI) binary() string {
	if c.Path != "" {
		return c.Path
	}
	return binaryName
}

// Download invokes the converter with a fixed wall-clock timeout. The
// destination directory must already exist; the converter writes its
// output files directly into it.
func (c *CLI) Download(ctx context.Context, id, dir string, kind Kind) error {
	ctx, cancel := context.WithTimeout(ctx, downloadTimeout)
	defer cancel()

	args := []string{
		"--lcsc_id", id,
		"--output", dir,
		"--overwrite",
	}
	switch kind {
	case KindSymbol:
		args = append(args, "--symbol")
	case KindFootprint:
		args = append(args, "--footprint")
	case KindBoth:
		args = append(args, "--symbol", "--footprint")
	default:
		return fmt.Errorf("unknown component kind %q", kind)
	}

	cmd := exec.CommandContext(ctx, c.binary(), args...)
	out, err := cmd.CombinedOutput()
	if err != nil {
		if ctx.Err() == context.DeadlineExceeded {
			return fmt.Errorf("download timed out after %s", downloadTimeout)
		}
		if msg := strings.TrimSpace(string(out)); msg != "" {
			return fmt.Errorf("%s: %s", binaryName, msg)
		}
		return fmt.Errorf("%s: %w", binaryName, err)
	}
	return nil
}

// Version probes the converter with a short timeout and returns its
// version output. An error means the tool is missing or unresponsive.
func (c *CLI) Version(ctx context.Context) (string, error) {
	ctx, cancel := context.WithTimeout(ctx, versionTimeout)
	defer cancel()

	out, err := exec.CommandContext(ctx, c.binary(), "--version").Output()
	if err != nil {
		return "", fmt.Errorf("%s not available: %w", binaryName, err)
	}
	return strings.TrimSpace(string(out)), nil
}

// ValidateID checks that id looks like an EasyEDA component identifier:
// at least two characters, alphanumeric plus hyphen and underscore. LCSC
// part numbers ("C12345") pass; anything that could reach the filesystem
// as a path element does not.
func ValidateID(id string) bool {
	id = strings.TrimSpace(id)
	if len(id) < 2 {
		return false
	}
	for _, r := range id {
		switch {
		case r >= 'a' && r <= 'z':
		case r >= 'A' && r <= 'Z':
		case r >= '0' && r <= '9':
		case r == '-' || r == '_':
		default:
			return false
		}
	}
	return true
}
