// Package aggregate rebuilds the master library artifacts from the
// per-component directories under the library root: one consolidated
// KiCad symbol file and one flat footprint directory. Both artifacts are
// pure derived views, fully regenerated on every rebuild.
package aggregate

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/gobwas/glob"
)

// Fixed artifact names under the library root. FootprintDirName is a
// reserved name: the component layer never creates a component with it,
// and rebuilds skip it when walking component directories.
const (
	SymbolLibName    = "kicad-library-manager.kicad_sym"
	FootprintDirName = "kicad-library-manager.pretty"

	SymbolExt    = ".kicad_sym"
	FootprintExt = ".kicad_mod"
)

var (
	symbolGlob    = glob.MustCompile("*" + SymbolExt)
	footprintGlob = glob.MustCompile("*" + FootprintExt)
)

// Logger receives warnings about per-file failures that were skipped. A
// nil Logger means silent operation.
type Logger interface {
	Warnf(format string, args ...any)
}

// Rebuilder regenerates the master library artifacts for one library
// root. It holds no state between rebuilds; every call re-reads the
// filesystem from scratch.
//
// Rebuilder assumes a single active process against the library root.
// Two rebuilds racing on the same artifacts are not guarded against.
type Rebuilder struct {
	Root   string
	Logger Logger
}

func (r *Rebuilder) warnf(format string, args ...any) {
	if r.Logger != nil {
		r.Logger.Warnf(format, args...)
	}
}

// componentDirs lists the immediate subdirectories of the library root in
// ascending name order, excluding the reserved footprint output directory.
// Deterministic order is a correctness requirement: two rebuilds over the
// same input must produce byte-identical artifacts.
func componentDirs(root string) ([]string, error) {
	entries, err := os.ReadDir(root)
	if err != nil {
		return nil, fmt.Errorf("read library root: %w", err)
	}

	var dirs []string
	for _, e := range entries {
		if !e.IsDir() || e.Name() == FootprintDirName {
			continue
		}
		dirs = append(dirs, e.Name())
	}
	return dirs, nil
}

// matchFiles returns the files in dir whose names match pattern, in
// directory order (ascending by name).
func matchFiles(dir string, pattern glob.Glob) ([]string, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, err
	}

	var files []string
	for _, e := range entries {
		if e.IsDir() || !pattern.Match(e.Name()) {
			continue
		}
		files = append(files, filepath.Join(dir, e.Name()))
	}
	return files, nil
}
