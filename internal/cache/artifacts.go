package cache

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/Norgate-AV/koremake/internal/fsutil"
)

// CopyArtifacts copies compiled outputs from source to cache
func CopyArtifacts(sourceDir, destDir string, outputs []string) error {
	if err := os.MkdirAll(destDir, 0o755); err != nil {
		return fmt.Errorf("failed to create artifact directory: %w", err)
	}

	for _, output := range outputs {
		if err := fsutil.CopyFile(filepath.Join(sourceDir, output), filepath.Join(destDir, output)); err != nil {
			return fmt.Errorf("failed to copy %s: %w", output, err)
		}
	}

	return nil
}

// RestoreArtifacts copies cached outputs back to the working directory
func RestoreArtifacts(cacheDir, destDir string, outputs []string) error {
	if err := os.MkdirAll(destDir, 0o755); err != nil {
		return fmt.Errorf("failed to create output directory: %w", err)
	}

	for _, output := range outputs {
		if err := fsutil.CopyFile(filepath.Join(cacheDir, output), filepath.Join(destDir, output)); err != nil {
			return fmt.Errorf("failed to restore %s: %w", output, err)
		}
	}

	return nil
}

// CollectOutputs returns the files next to dest that the compiler produced
// for it: dest itself and any dest.<ext> variants
func CollectOutputs(dest string) ([]string, error) {
	var outputs []string

	dir, base := filepath.Split(dest)
	entries, err := os.ReadDir(dir)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to read output directory: %w", err)
	}

	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}

		name := entry.Name()
		if name == base || strings.HasPrefix(name, base+".") {
			outputs = append(outputs, name)
		}
	}

	return outputs, nil
}
