package cache

import (
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strconv"

	"github.com/Norgate-AV/koremake/internal/compiler"
)

// HashJob creates a unique hash for a shader job
// The hash is based on:
// - Shader source content
// - Dialect
// - Platform
// - Debug flag
// - Output base name, since outputs are named after it
func HashJob(job compiler.Job, debug bool) (string, error) {
	h := sha256.New()

	f, err := os.Open(job.Source)
	if err != nil {
		return "", fmt.Errorf("failed to open source file: %w", err)
	}
	defer f.Close()

	if _, err := io.Copy(h, f); err != nil {
		return "", fmt.Errorf("failed to hash source file: %w", err)
	}

	for _, part := range []string{job.Dialect, string(job.Platform), strconv.FormatBool(debug), filepath.Base(job.Dest)} {
		h.Write([]byte{0})
		h.Write([]byte(part))
	}

	return hex.EncodeToString(h.Sum(nil)), nil
}
