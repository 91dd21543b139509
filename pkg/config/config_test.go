package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad_DefaultsWhenNoFile(t *testing.T) {
	home := t.TempDir()

	cfg, err := Load(home)
	require.NoError(t, err)

	assert.Equal(t, filepath.Join(home, "library"), cfg.LibraryPath)
	assert.False(t, cfg.Debug)
}

func TestLoad_FromFile(t *testing.T) {
	home := t.TempDir()
	content := `{"library_path": "parts", "debug": true}`
	require.NoError(t, os.WriteFile(Path(home), []byte(content), 0644))

	cfg, err := Load(home)
	require.NoError(t, err)

	assert.Equal(t, filepath.Join(home, "parts"), cfg.LibraryPath)
	assert.True(t, cfg.Debug)
}

func TestLoad_AbsoluteLibraryPathKept(t *testing.T) {
	home := t.TempDir()
	lib := t.TempDir()
	content := `{"library_path": "` + lib + `"}`
	require.NoError(t, os.WriteFile(Path(home), []byte(content), 0644))

	cfg, err := Load(home)
	require.NoError(t, err)
	assert.Equal(t, lib, cfg.LibraryPath)
}

func TestLoad_EnvOverridesFile(t *testing.T) {
	home := t.TempDir()
	content := `{"library_path": "from-file", "debug": false}`
	require.NoError(t, os.WriteFile(Path(home), []byte(content), 0644))

	t.Setenv("KICAD_LIB_LIBRARY_PATH", "from-env")
	t.Setenv("KICAD_LIB_DEBUG", "true")

	cfg, err := Load(home)
	require.NoError(t, err)

	assert.Equal(t, filepath.Join(home, "from-env"), cfg.LibraryPath)
	assert.True(t, cfg.Debug)
}

func TestLoad_MalformedFileFails(t *testing.T) {
	home := t.TempDir()
	require.NoError(t, os.WriteFile(Path(home), []byte("{not json"), 0644))

	_, err := Load(home)
	assert.Error(t, err)
}
