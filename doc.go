// Package kicadlibrarian manages a local library of electronic-component
// symbols and footprints downloaded from EasyEDA via the easyeda2kicad
// converter, and consolidates them into master library files KiCad can
// consume directly.
//
// The CLI lives in cmd/kicad-librarian; this root package exposes the
// same operations as a Go API so that callers can embed library
// management in their own tools without shelling out.
//
// # Import
//
// The module path contains a hyphen but Go package names cannot, so the
// package is named kicadlibrarian:
//
//	import "github.com/hellenic-development/kicad-librarian" // package kicadlibrarian
//
// # Quick start
//
//	lib, err := kicadlibrarian.New(kicadlibrarian.Options{
//	    LibraryPath: "/home/me/kicad/library",
//	})
//	if err != nil {
//	    log.Fatal(err)
//	}
//	if err := lib.Get(context.Background(), "C12345", easyeda.KindBoth); err != nil {
//	    log.Fatal(err)
//	}
//	report := lib.Rebuild()
//	fmt.Println(report.Message())
//
// # Layout on disk
//
// Each component occupies its own directory under the library root,
// holding the converter's output plus a metadata.json record. Rebuild
// derives two artifacts from those directories: a single consolidated
// kicad-library-manager.kicad_sym symbol file and a flat
// kicad-library-manager.pretty footprint directory with entries renamed
// {componentID}_{stem}.kicad_mod. Both artifacts are regenerated from
// scratch on every rebuild and must never be hand-edited.
//
// # Logging
//
// Pass a [Logger] implementation in [Options.Logger] to receive progress
// messages. A nil Logger silences all output.
//
// # Downloader injection
//
// [Options.Downloader] accepts any [easyeda.Downloader]; leaving it nil
// runs the easyeda2kicad binary from PATH. Tests inject a fake so no
// external tool is needed.
package kicadlibrarian
