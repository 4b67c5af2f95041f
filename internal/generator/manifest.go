package generator

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"time"
)

// ManifestFile is the name of the build manifest artifact.
const ManifestFile = "manifest.json"

// buildManifest records what a generation run produced.
type buildManifest struct {
	BuildID     string    `json:"build_id"`
	GeneratedAt time.Time `json:"generated_at"`
	Articles    int       `json:"articles"`
	Files       []string  `json:"files"`
}

func writeManifest(outputDir string, manifest buildManifest) error {
	data, err := json.MarshalIndent(manifest, "", "  ")
	if err != nil {
		return fmt.Errorf("generator: marshal manifest: %w", err)
	}
	path := filepath.Join(outputDir, ManifestFile)
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("generator: write manifest: %w", err)
	}
	return nil
}
