package diag

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hellenic-development/kicad-librarian/pkg/aggregate"
	"github.com/hellenic-development/kicad-librarian/pkg/config"
	"github.com/hellenic-development/kicad-librarian/pkg/easyeda"
)

type stubDownloader struct {
	version    string
	versionErr error
}

func (s *stubDownloader) Download(context.Context, string, string, easyeda.Kind) error {
	return nil
}

func (s *stubDownloader) Version(context.Context) (string, error) {
	return s.version, s.versionErr
}

func TestRun_AllChecksPassOnHealthySetup(t *testing.T) {
	home := t.TempDir()
	require.NoError(t, os.WriteFile(config.Path(home), []byte(`{"library_path":"lib"}`), 0644))
	cfg, err := config.Load(home)
	require.NoError(t, err)

	checks := Run(context.Background(), home, cfg, &stubDownloader{version: "easyeda2kicad v0.8"})

	require.Len(t, checks, 4)
	assert.True(t, AllPassed(checks), "checks: %v", checks)
}

func TestRun_MissingConfigIsInformationalPass(t *testing.T) {
	home := t.TempDir()
	cfg, err := config.Load(home)
	require.NoError(t, err)

	checks := Run(context.Background(), home, cfg, &stubDownloader{version: "v1"})

	assert.True(t, checks[0].Passed)
	assert.Contains(t, checks[0].Message, "using defaults")
}

func TestRun_MalformedConfigFails(t *testing.T) {
	home := t.TempDir()
	require.NoError(t, os.WriteFile(config.Path(home), []byte("{oops"), 0644))

	checks := Run(context.Background(), home, config.Default(), &stubDownloader{version: "v1"})

	assert.False(t, checks[0].Passed)
	assert.False(t, AllPassed(checks))
}

func TestRun_ConverterMissingFails(t *testing.T) {
	home := t.TempDir()
	cfg, err := config.Load(home)
	require.NoError(t, err)

	checks := Run(context.Background(), home, cfg, &stubDownloader{versionErr: errors.New("exec: not found")})

	assert.False(t, checks[2].Passed)
	assert.Contains(t, checks[2].Message, "not found")
}

func TestCheckLibraryDir_CountsComponents(t *testing.T) {
	lib := t.TempDir()
	require.NoError(t, os.MkdirAll(filepath.Join(lib, "C1"), 0755))
	require.NoError(t, os.MkdirAll(filepath.Join(lib, "C2"), 0755))
	require.NoError(t, os.MkdirAll(filepath.Join(lib, aggregate.FootprintDirName), 0755))

	check := checkLibraryDir(lib)

	assert.True(t, check.Passed)
	assert.Contains(t, check.Message, "(2 components)")
}

func TestCheckAggregates_NotBuiltYetStillPasses(t *testing.T) {
	check := checkAggregates(t.TempDir())

	assert.True(t, check.Passed)
	assert.Contains(t, check.Message, "rebuild")
}

func TestCheckString(t *testing.T) {
	pass := Check{Name: "Thing", Passed: true, Message: "fine"}
	fail := Check{Name: "Thing", Passed: false, Message: "broken"}

	assert.Equal(t, "✓ PASS: Thing\n  fine", pass.String())
	assert.Equal(t, "✗ FAIL: Thing\n  broken", fail.String())
}
