package output

import (
	"fmt"
	"os"
	"path/filepath"
)

// WriteArtifact writes the check result text to path, overwriting any
// previous run's artifact. Parent directories are created as needed.
//
// The artifact is written on every evaluated outcome, including the
// mismatch path; a failed check still leaves its reason on disk.
func WriteArtifact(path string, content string) error {
	if path == "" {
		return fmt.Errorf("output path required")
	}

	dir := filepath.Dir(path)
	if dir != "." && dir != "" {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return fmt.Errorf("failed to create output directory: %w", err)
		}
	}

	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		return fmt.Errorf("failed to write output file: %w", err)
	}
	return nil
}
