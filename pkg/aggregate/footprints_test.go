package aggregate

import (
	"os"
	"path/filepath"
	"sort"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func listFootprints(t *testing.T, root string) []string {
	t.Helper()
	entries, err := os.ReadDir(filepath.Join(root, FootprintDirName))
	require.NoError(t, err)
	var names []string
	for _, e := range entries {
		names = append(names, e.Name())
	}
	sort.Strings(names)
	return names
}

func TestRebuildFootprints_RenamesPerComponent(t *testing.T) {
	root := t.TempDir()
	// Same stem in both components must yield two distinct outputs.
	writeComponent(t, root, "C100", map[string]string{
		"foo.kicad_mod": "(footprint \"foo-c100\")",
	})
	writeComponent(t, root, "C200", map[string]string{
		"foo.kicad_mod": "(footprint \"foo-c200\")",
	})

	r := &Rebuilder{Root: root}
	count, err := r.RebuildFootprints()
	require.NoError(t, err)
	assert.Equal(t, 2, count)

	assert.Equal(t, []string{"C100_foo.kicad_mod", "C200_foo.kicad_mod"}, listFootprints(t, root))

	data, err := os.ReadFile(filepath.Join(root, FootprintDirName, "C100_foo.kicad_mod"))
	require.NoError(t, err)
	assert.Equal(t, "(footprint \"foo-c100\")", string(data))
}

func TestRebuildFootprints_StaleEntriesPurged(t *testing.T) {
	root := t.TempDir()
	writeComponent(t, root, "C1", map[string]string{
		"a.kicad_mod": "(footprint \"a\")",
	})

	r := &Rebuilder{Root: root}
	_, err := r.RebuildFootprints()
	require.NoError(t, err)
	first := listFootprints(t, root)

	// Component removed: its footprint must disappear on the next rebuild.
	writeComponent(t, root, "C2", map[string]string{
		"b.kicad_mod": "(footprint \"b\")",
	})
	require.NoError(t, os.RemoveAll(filepath.Join(root, "C1")))

	count, err := r.RebuildFootprints()
	require.NoError(t, err)
	assert.Equal(t, 1, count)
	assert.Equal(t, []string{"C1_a.kicad_mod"}, first)
	assert.Equal(t, []string{"C2_b.kicad_mod"}, listFootprints(t, root))
}

func TestRebuildFootprints_RerunIsStable(t *testing.T) {
	root := t.TempDir()
	writeComponent(t, root, "C1", map[string]string{
		"a.kicad_mod": "(footprint \"a\")",
		"b.kicad_mod": "(footprint \"b\")",
	})

	r := &Rebuilder{Root: root}
	_, err := r.RebuildFootprints()
	require.NoError(t, err)
	first := listFootprints(t, root)

	count, err := r.RebuildFootprints()
	require.NoError(t, err)
	assert.Equal(t, 2, count)
	assert.Equal(t, first, listFootprints(t, root))
}

func TestRebuildFootprints_OtherOutputContentUntouched(t *testing.T) {
	root := t.TempDir()
	outDir := filepath.Join(root, FootprintDirName)
	require.NoError(t, os.MkdirAll(outDir, 0755))
	require.NoError(t, os.WriteFile(filepath.Join(outDir, "README.txt"), []byte("keep me"), 0644))
	require.NoError(t, os.WriteFile(filepath.Join(outDir, "old.kicad_mod"), []byte("stale"), 0644))

	writeComponent(t, root, "C1", map[string]string{
		"a.kicad_mod": "(footprint \"a\")",
	})

	r := &Rebuilder{Root: root}
	count, err := r.RebuildFootprints()
	require.NoError(t, err)
	assert.Equal(t, 1, count)
	assert.Equal(t, []string{"C1_a.kicad_mod", "README.txt"}, listFootprints(t, root))
}

func TestRebuildFootprints_OutputDirNotSelfConsumed(t *testing.T) {
	root := t.TempDir()
	writeComponent(t, root, "C1", map[string]string{
		"a.kicad_mod": "(footprint \"a\")",
	})

	r := &Rebuilder{Root: root}
	for i := 0; i < 3; i++ {
		count, err := r.RebuildFootprints()
		require.NoError(t, err)
		assert.Equal(t, 1, count)
	}
	assert.Equal(t, []string{"C1_a.kicad_mod"}, listFootprints(t, root))
}

func TestRebuildFootprints_EmptyLibrary(t *testing.T) {
	root := t.TempDir()

	r := &Rebuilder{Root: root}
	count, err := r.RebuildFootprints()
	require.NoError(t, err)
	assert.Equal(t, 0, count)

	info, err := os.Stat(filepath.Join(root, FootprintDirName))
	require.NoError(t, err)
	assert.True(t, info.IsDir())
}

func TestRebuildFootprints_UncopyableFileSkipped(t *testing.T) {
	root := t.TempDir()
	writeComponent(t, root, "C1", map[string]string{
		"good.kicad_mod": "(footprint \"good\")",
	})
	require.NoError(t, os.Symlink(
		filepath.Join(root, "C1", "missing-target"),
		filepath.Join(root, "C1", "broken.kicad_mod")))

	r := &Rebuilder{Root: root}
	count, err := r.RebuildFootprints()
	require.NoError(t, err)
	assert.Equal(t, 1, count)
	assert.Equal(t, []string{"C1_good.kicad_mod"}, listFootprints(t, root))
}

func TestRebuildFootprints_MissingRootFails(t *testing.T) {
	r := &Rebuilder{Root: filepath.Join(t.TempDir(), "nope")}
	_, err := r.RebuildFootprints()
	assert.Error(t, err)
}
