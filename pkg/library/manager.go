// Package library manages the per-component directories that form the
// source of truth for the librarian: downloading new components through
// the converter, deleting them, and reading them back for listing.
package library

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/hellenic-development/kicad-librarian/pkg/aggregate"
	"github.com/hellenic-development/kicad-librarian/pkg/easyeda"
)

// Logger receives progress and warning messages. A nil Logger means
// silent operation.
type Logger interface {
	Infof(format string, args ...any)
	Warnf(format string, args ...any)
}

// Manager performs component operations against one library root.
type Manager struct {
	Root       string
	Downloader easyeda.Downloader
	Logger     Logger

	// now is swappable for tests; nil means time.Now.
	now func() time.Time
}

func (m *Manager) infof(format string, args ...any) {
	if m.Logger != nil {
		m.Logger.Infof(format, args...)
	}
}

func (m *Manager) warnf(format string, args ...any) {
	if m.Logger != nil {
		m.Logger.Warnf(format, args...)
	}
}

func (m *Manager) timestamp() string {
	if m.now != nil {
		return m.now().Format(time.RFC3339)
	}
	return time.Now().Format(time.RFC3339)
}

// Get downloads component id into its own directory under the library
// root and records metadata for it. An already-present component is
// refused; delete it first to replace. A failed download leaves no
// half-created directory behind.
func (m *Manager) Get(ctx context.Context, id string, kind easyeda.Kind) error {
	if !easyeda.ValidateID(id) {
		return fmt.Errorf("invalid component ID: %s", id)
	}
	if !kind.Valid() {
		return fmt.Errorf("invalid component type: %s", kind)
	}

	if err := os.MkdirAll(m.Root, 0755); err != nil {
		return fmt.Errorf("access library directory: %w", err)
	}

	dir := filepath.Join(m.Root, id)
	if _, err := os.Stat(dir); err == nil {
		return fmt.Errorf("component %s already exists, delete it first to replace", id)
	}

	if err := os.Mkdir(dir, 0755); err != nil {
		return fmt.Errorf("create component directory: %w", err)
	}

	m.infof("Downloading component %s (%s)...", id, kind)
	if err := m.Downloader.Download(ctx, id, dir, kind); err != nil {
		if rmErr := os.RemoveAll(dir); rmErr != nil {
			m.warnf("Could not clean up %s after failed download: %v", dir, rmErr)
		}
		return fmt.Errorf("download component %s: %w", id, err)
	}

	meta := Metadata{
		ComponentID:   id,
		ComponentType: string(kind),
		AddedDate:     m.timestamp(),
	}
	if err := writeMetadata(dir, meta); err != nil {
		// The component files are already in place; a missing metadata
		// file only degrades listing detail.
		m.warnf("Could not write metadata for %s: %v", id, err)
	}
	return nil
}

// Delete removes component id and all of its files from the library.
func (m *Manager) Delete(id string) error {
	if !ValidateName(id) {
		return fmt.Errorf("invalid component ID: %s", id)
	}

	dir := filepath.Join(m.Root, id)
	if _, err := os.Stat(dir); os.IsNotExist(err) {
		return fmt.Errorf("component %s not found in library", id)
	}

	if err := os.RemoveAll(dir); err != nil {
		return fmt.Errorf("delete component %s: %w", id, err)
	}
	return nil
}

// Exists reports whether component id has a directory in the library.
func (m *Manager) Exists(id string) bool {
	info, err := os.Stat(filepath.Join(m.Root, id))
	return err == nil && info.IsDir()
}

// List returns every component in the library in ascending ID order. A
// missing library root yields an empty list, not an error. The reserved
// aggregate output directory is never listed as a component.
func (m *Manager) List() ([]Component, error) {
	entries, err := os.ReadDir(m.Root)
	if os.IsNotExist(err) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("read library root: %w", err)
	}

	var components []Component
	for _, e := range entries {
		if !e.IsDir() || e.Name() == aggregate.FootprintDirName {
			continue
		}
		c, err := m.describe(e.Name())
		if err != nil {
			m.warnf("Skipping component %s: %v", e.Name(), err)
			continue
		}
		components = append(components, *c)
	}
	return components, nil
}

// Info returns the detail view of one component.
func (m *Manager) Info(id string) (*Component, error) {
	if !m.Exists(id) {
		return nil, fmt.Errorf("component %s not found in library", id)
	}
	return m.describe(id)
}

func (m *Manager) describe(id string) (*Component, error) {
	dir := filepath.Join(m.Root, id)
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, err
	}

	c := &Component{
		ID:       id,
		Path:     dir,
		Metadata: readMetadata(dir),
	}
	for _, e := range entries {
		if e.IsDir() {
			continue
		}
		c.Files = append(c.Files, e.Name())
	}
	c.FileCount = len(c.Files)
	return c, nil
}
