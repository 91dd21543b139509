package kicadlibrarian

import (
	"context"
	"fmt"
	"path/filepath"

	"github.com/hellenic-development/kicad-librarian/pkg/aggregate"
	"github.com/hellenic-development/kicad-librarian/pkg/easyeda"
	"github.com/hellenic-development/kicad-librarian/pkg/library"
)

// Version of the librarian tool.
const Version = "1.0.0"

// Options configures a Librarian.
type Options struct {
	LibraryPath string             // component library root (required)
	Downloader  easyeda.Downloader // nil = shell out to easyeda2kicad
	Logger      Logger             // nil = no logging
}

// Logger receives progress messages. A nil Logger means silent operation.
type Logger interface {
	Infof(format string, args ...any)
	Warnf(format string, args ...any)
	Errorf(format string, args ...any)
}

// Librarian ties component management and master-library rebuilds
// together for one library root.
type Librarian struct {
	opts      Options
	manager   *library.Manager
	rebuilder *aggregate.Rebuilder
}

// New creates a Librarian for opts.LibraryPath.
func New(opts Options) (*Librarian, error) {
	if opts.LibraryPath == "" {
		return nil, fmt.Errorf("library path is required")
	}
	if opts.Downloader == nil {
		opts.Downloader = &easyeda.CLI{}
	}

	return &Librarian{
		opts: opts,
		manager: &library.Manager{
			Root:       opts.LibraryPath,
			Downloader: opts.Downloader,
			Logger:     opts.Logger,
		},
		rebuilder: &aggregate.Rebuilder{
			Root:   opts.LibraryPath,
			Logger: opts.Logger,
		},
	}, nil
}

// Get downloads a component into the library.
func (l *Librarian) Get(ctx context.Context, id string, kind easyeda.Kind) error {
	return l.manager.Get(ctx, id, kind)
}

// Delete removes a component from the library.
func (l *Librarian) Delete(id string) error {
	return l.manager.Delete(id)
}

// Exists reports whether a component is present in the library.
func (l *Librarian) Exists(id string) bool {
	return l.manager.Exists(id)
}

// List returns all components in ascending ID order.
func (l *Librarian) List() ([]library.Component, error) {
	return l.manager.List()
}

// Info returns the detail view of one component.
func (l *Librarian) Info(id string) (*library.Component, error) {
	return l.manager.Info(id)
}

// SymbolLibPath returns the location of the aggregate symbol library.
func (l *Librarian) SymbolLibPath() string {
	return filepath.Join(l.opts.LibraryPath, aggregate.SymbolLibName)
}

// FootprintDirPath returns the location of the aggregate footprint
// directory.
func (l *Librarian) FootprintDirPath() string {
	return filepath.Join(l.opts.LibraryPath, aggregate.FootprintDirName)
}

// Status is the outcome of one rebuild half.
type Status struct {
	OK      bool
	Message string
}

// RebuildReport combines the outcomes of the symbol and footprint
// rebuilds.
type RebuildReport struct {
	Symbols    Status
	Footprints Status
}

// OK reports whether both rebuild halves succeeded.
func (r RebuildReport) OK() bool {
	return r.Symbols.OK && r.Footprints.OK
}

// Message joins both half outcomes into one human-readable line.
func (r RebuildReport) Message() string {
	return r.Symbols.Message + "; " + r.Footprints.Message
}

// Rebuild regenerates both master library artifacts from the component
// directories. Each half reports its own outcome; a failing half does not
// stop the other from running.
//
// Rebuild re-reads the filesystem from scratch and holds no state between
// calls. Concurrent Rebuild calls against the same library root race on
// the output artifacts and are not guarded; the tool assumes a single
// active process per library.
func (l *Librarian) Rebuild() RebuildReport {
	var report RebuildReport

	if n, err := l.rebuilder.RebuildSymbols(); err != nil {
		report.Symbols = Status{Message: fmt.Sprintf("Symbol rebuild failed: %v", err)}
	} else {
		report.Symbols = Status{OK: true, Message: fmt.Sprintf("Symbol library created (%d symbols)", n)}
	}

	if n, err := l.rebuilder.RebuildFootprints(); err != nil {
		report.Footprints = Status{Message: fmt.Sprintf("Footprint rebuild failed: %v", err)}
	} else {
		report.Footprints = Status{OK: true, Message: fmt.Sprintf("Footprint library created (%d footprints)", n)}
	}

	return report
}
