package aggregate

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/hellenic-development/kicad-librarian/pkg/sexpr"
)

// symbolToken opens one schematic-symbol definition inside a KiCad
// symbol library document.
const symbolToken = "(symbol "

// symbolHeader and symbolFooter wrap the extracted blocks into a single
// document the KiCad parser accepts. The header is written byte-for-byte;
// KiCad is strict about this line.
const (
	symbolHeader = "(kicad_symbol_lib (version 20211014) (generator kicad-library-manager)\n"
	symbolFooter = ")\n"
)

// RebuildSymbols regenerates the master symbol library from every
// *.kicad_sym file found in the component directories, overwriting any
// previous aggregate. It returns the number of symbol definitions
// written.
//
// Individual files that cannot be read are logged and skipped; only an
// unreadable library root or an unwritable output file is fatal.
func (r *Rebuilder) RebuildSymbols() (int, error) {
	dirs, err := componentDirs(r.Root)
	if err != nil {
		return 0, err
	}

	scanner := sexpr.Scanner{Token: symbolToken}
	var doc strings.Builder
	doc.WriteString(symbolHeader)

	count := 0
	for _, dir := range dirs {
		files, err := matchFiles(filepath.Join(r.Root, dir), symbolGlob)
		if err != nil {
			r.warnf("Skipping component %s: %v", dir, err)
			continue
		}
		for _, file := range files {
			data, err := os.ReadFile(file)
			if err != nil {
				r.warnf("Skipping symbol file %s: %v", file, err)
				continue
			}
			for block := range scanner.Blocks(string(data)) {
				doc.WriteString(block)
				count++
			}
		}
	}

	doc.WriteString(symbolFooter)

	out := filepath.Join(r.Root, SymbolLibName)
	if err := os.WriteFile(out, []byte(doc.String()), 0644); err != nil {
		return 0, fmt.Errorf("write symbol library: %w", err)
	}
	return count, nil
}
