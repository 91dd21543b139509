package library

import (
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
)

// MetadataFileName is written into each component directory on download.
const MetadataFileName = "metadata.json"

// Metadata records how a component entered the library.
type Metadata struct {
	ComponentID   string `json:"component_id"`
	ComponentType string `json:"component_type"`
	AddedDate     string `json:"added_date"` // RFC 3339
}

// Component describes one library entry as found on disk.
type Component struct {
	ID        string
	Path      string
	Files     []string
	FileCount int

	// Metadata is nil when the component has no readable metadata file.
	Metadata *Metadata
}

func readMetadata(dir string) *Metadata {
	data, err := os.ReadFile(filepath.Join(dir, MetadataFileName))
	if err != nil {
		return nil
	}
	var meta Metadata
	if err := json.Unmarshal(data, &meta); err != nil {
		return nil
	}
	return &meta
}

func writeMetadata(dir string, meta Metadata) error {
	data, err := json.MarshalIndent(meta, "", "  ")
	if err != nil {
		return err
	}
	return os.WriteFile(filepath.Join(dir, MetadataFileName), append(data, '\n'), 0644)
}

// ValidateName reports whether name is safe to use as a component
// directory under the library root: no path separators or other
// filesystem-reserved characters, no leading dot, no traversal.
func ValidateName(name string) bool {
	if name == "" {
		return false
	}
	if strings.ContainsAny(name, `/\:*?"<>|`) {
		return false
	}
	if strings.HasPrefix(name, ".") || strings.Contains(name, "..") {
		return false
	}
	return true
}
