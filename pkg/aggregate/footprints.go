package aggregate

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
)

// RebuildFootprints regenerates the master footprint directory: every
// *.kicad_mod file from the component directories is copied into
// FootprintDirName, renamed {componentID}_{stem}.kicad_mod. Stale
// footprints from previous rebuilds are removed first; any other content
// in the output directory is left untouched. It returns the number of
// footprints copied.
//
// Name collisions across components cannot happen because component IDs
// are unique. A component carrying two footprint files with the same stem
// resolves last-write-wins in directory order.
func (r *Rebuilder) RebuildFootprints() (int, error) {
	outDir := filepath.Join(r.Root, FootprintDirName)
	if err := r.clearFootprintDir(outDir); err != nil {
		return 0, err
	}

	dirs, err := componentDirs(r.Root)
	if err != nil {
		return 0, err
	}

	count := 0
	for _, dir := range dirs {
		files, err := matchFiles(filepath.Join(r.Root, dir), footprintGlob)
		if err != nil {
			r.warnf("Skipping component %s: %v", dir, err)
			continue
		}
		for _, src := range files {
			stem := strings.TrimSuffix(filepath.Base(src), FootprintExt)
			dst := filepath.Join(outDir, dir+"_"+stem+FootprintExt)
			if err := copyFile(src, dst); err != nil {
				r.warnf("Skipping footprint %s: %v", src, err)
				continue
			}
			count++
		}
	}
	return count, nil
}

// clearFootprintDir ensures the output directory exists and contains no
// footprint files from a previous rebuild. Failure here aborts the whole
// rebuild: a half-cleared output directory is worse than no rebuild.
func (r *Rebuilder) clearFootprintDir(outDir string) error {
	entries, err := os.ReadDir(outDir)
	if os.IsNotExist(err) {
		// Mkdir, not MkdirAll: a missing library root is fatal, not
		// something to silently create.
		if err := os.Mkdir(outDir, 0755); err != nil {
			return fmt.Errorf("create footprint directory: %w", err)
		}
		return nil
	}
	if err != nil {
		return fmt.Errorf("read footprint directory: %w", err)
	}

	for _, e := range entries {
		if e.IsDir() || !footprintGlob.Match(e.Name()) {
			continue
		}
		if err := os.Remove(filepath.Join(outDir, e.Name())); err != nil {
			return fmt.Errorf("clear stale footprint %s: %w", e.Name(), err)
		}
	}
	return nil
}

// copyFile copies src to dst, carrying over the source file's permission
// bits and modification time.
func copyFile(src, dst string) error {
	info, err := os.Stat(src)
	if err != nil {
		return err
	}

	in, err := os.Open(src)
	if err != nil {
		return err
	}
	defer in.Close()

	out, err := os.OpenFile(dst, os.O_WRONLY|os.O_CREATE|os.O_TRUNC, info.Mode().Perm())
	if err != nil {
		return err
	}

	if _, err := io.Copy(out, in); err != nil {
		out.Close()
		return err
	}
	if err := out.Close(); err != nil {
		return err
	}

	// Mtime preservation is best effort.
	os.Chtimes(dst, info.ModTime(), info.ModTime())
	return nil
}
