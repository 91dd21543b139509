package kicadlibrarian

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hellenic-development/kicad-librarian/pkg/aggregate"
	"github.com/hellenic-development/kicad-librarian/pkg/easyeda"
)

type memDownloader struct {
	files map[string]string
}

func (d *memDownloader) Download(_ context.Context, id, dir string, _ easyeda.Kind) error {
	for name, content := range d.files {
		if err := os.WriteFile(filepath.Join(dir, name), []byte(content), 0644); err != nil {
			return err
		}
	}
	return nil
}

func (d *memDownloader) Version(context.Context) (string, error) {
	return "easyeda2kicad test", nil
}

func TestNew_RequiresLibraryPath(t *testing.T) {
	_, err := New(Options{})
	assert.Error(t, err)
}

func TestLibrarian_GetThenRebuild(t *testing.T) {
	root := t.TempDir()
	dl := &memDownloader{files: map[string]string{
		"part.kicad_sym": "(kicad_symbol_lib (version 1)(symbol \"X\" (pin 1))\n)",
		"part.kicad_mod": "(footprint \"X\")",
	}}

	lib, err := New(Options{LibraryPath: root, Downloader: dl})
	require.NoError(t, err)

	require.NoError(t, lib.Get(context.Background(), "C100", easyeda.KindBoth))
	require.True(t, lib.Exists("C100"))

	report := lib.Rebuild()
	require.True(t, report.OK())
	assert.Equal(t, "Symbol library created (1 symbols)", report.Symbols.Message)
	assert.Equal(t, "Footprint library created (1 footprints)", report.Footprints.Message)
	assert.Equal(t,
		"Symbol library created (1 symbols); Footprint library created (1 footprints)",
		report.Message())

	data, err := os.ReadFile(lib.SymbolLibPath())
	require.NoError(t, err)
	assert.Equal(t,
		"(kicad_symbol_lib (version 20211014) (generator kicad-library-manager)\n"+
			"(symbol \"X\" (pin 1))\n"+
			")\n",
		string(data))

	_, err = os.Stat(filepath.Join(lib.FootprintDirPath(), "C100_part.kicad_mod"))
	assert.NoError(t, err)
}

func TestLibrarian_RebuildReportsBothFailures(t *testing.T) {
	lib, err := New(Options{
		LibraryPath: filepath.Join(t.TempDir(), "missing"),
		Downloader:  &memDownloader{},
	})
	require.NoError(t, err)

	report := lib.Rebuild()
	assert.False(t, report.OK())
	assert.False(t, report.Symbols.OK)
	assert.False(t, report.Footprints.OK)
	assert.Contains(t, report.Message(), "Symbol rebuild failed")
	assert.Contains(t, report.Message(), "Footprint rebuild failed")
}

func TestLibrarian_DeleteThenRebuildDropsArtifacts(t *testing.T) {
	root := t.TempDir()
	dl := &memDownloader{files: map[string]string{
		"part.kicad_sym": "(lib (symbol \"X\" (p)))",
		"part.kicad_mod": "(footprint \"X\")",
	}}

	lib, err := New(Options{LibraryPath: root, Downloader: dl})
	require.NoError(t, err)
	require.NoError(t, lib.Get(context.Background(), "C100", easyeda.KindBoth))
	lib.Rebuild()

	require.NoError(t, lib.Delete("C100"))
	report := lib.Rebuild()
	require.True(t, report.OK())
	assert.Equal(t, "Symbol library created (0 symbols)", report.Symbols.Message)

	entries, err := os.ReadDir(filepath.Join(root, aggregate.FootprintDirName))
	require.NoError(t, err)
	assert.Empty(t, entries)
}
