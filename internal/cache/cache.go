// Package cache keeps compiled shader outputs between runs.
//
// The shader compiler writes one or more files next to a job's destination
// path (for example basic.frag.d3d11 and basic.frag.glsl). The cache:
//
//  1. Keys each job by SHA256 of the shader source + dialect + platform + debug flag
//  2. Collects the files the compiler produced for the job's destination
//  3. Stores metadata in BoltDB and the produced files in the filesystem
//
// A later run with an unchanged key restores the files instead of spawning
// the compiler again.
package cache

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"go.etcd.io/bbolt"

	"github.com/Norgate-AV/koremake/internal/compiler"
)

const (
	// DefaultCacheDir is the cache directory name inside the export directory
	DefaultCacheDir = ".koremake-cache"

	// bucketName is the BoltDB bucket name for cache entries
	bucketName = "shaders"
)

// Cache manages shader outputs and metadata using BoltDB
type Cache struct {
	db   *bbolt.DB
	root string
}

// New opens the cache rooted at cacheDir, creating it if needed
func New(cacheDir string) (*Cache, error) {
	if err := os.MkdirAll(cacheDir, 0o755); err != nil {
		return nil, fmt.Errorf("failed to create cache directory: %w", err)
	}

	dbPath := filepath.Join(cacheDir, "cache.db")
	db, err := bbolt.Open(dbPath, 0o600, &bbolt.Options{Timeout: 1 * time.Second})
	if err != nil {
		return nil, fmt.Errorf("failed to open cache database: %w", err)
	}

	err = db.Update(func(tx *bbolt.Tx) error {
		_, err := tx.CreateBucketIfNotExists([]byte(bucketName))
		return err
	})
	if err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to create cache bucket: %w", err)
	}

	return &Cache{
		db:   db,
		root: cacheDir,
	}, nil
}

// Close closes the cache database
func (c *Cache) Close() error {
	if c.db != nil {
		return c.db.Close()
	}

	return nil
}

// Get returns the entry for job, or nil on a cache miss
func (c *Cache) Get(job compiler.Job, debug bool) (*Entry, error) {
	hash, err := HashJob(job, debug)
	if err != nil {
		return nil, fmt.Errorf("failed to hash shader: %w", err)
	}

	var entry Entry
	err = c.db.View(func(tx *bbolt.Tx) error {
		data := tx.Bucket([]byte(bucketName)).Get([]byte(hash))
		if data == nil {
			return nil
		}

		return json.Unmarshal(data, &entry)
	})
	if err != nil {
		return nil, err
	}

	if entry.Hash == "" || !entry.Success {
		return nil, nil
	}

	return &entry, nil
}

// Store records the outputs the compiler produced for job
func (c *Cache) Store(job compiler.Job, debug bool) error {
	hash, err := HashJob(job, debug)
	if err != nil {
		return fmt.Errorf("failed to hash shader: %w", err)
	}

	outputs, err := CollectOutputs(job.Dest)
	if err != nil {
		return fmt.Errorf("failed to collect outputs: %w", err)
	}

	entry := Entry{
		Hash:      hash,
		Source:    job.Source,
		Dialect:   job.Dialect,
		Platform:  string(job.Platform),
		Dest:      job.Dest,
		Timestamp: time.Now(),
		Outputs:   outputs,
		Success:   len(outputs) > 0,
	}

	if entry.Success {
		if err := CopyArtifacts(filepath.Dir(job.Dest), c.artifactDir(hash), outputs); err != nil {
			return fmt.Errorf("failed to copy artifacts: %w", err)
		}
	}

	return c.db.Update(func(tx *bbolt.Tx) error {
		data, err := json.Marshal(entry)
		if err != nil {
			return err
		}

		return tx.Bucket([]byte(bucketName)).Put([]byte(hash), data)
	})
}

// Restore copies cached outputs next to the job's current destination
func (c *Cache) Restore(entry *Entry, job compiler.Job) error {
	if !entry.Success || len(entry.Outputs) == 0 {
		return fmt.Errorf("cannot restore failed build or build with no outputs")
	}

	return RestoreArtifacts(c.artifactDir(entry.Hash), filepath.Dir(job.Dest), entry.Outputs)
}

// Clear removes all cache entries and artifacts
func (c *Cache) Clear() error {
	err := c.db.Update(func(tx *bbolt.Tx) error {
		if err := tx.DeleteBucket([]byte(bucketName)); err != nil {
			return err
		}

		_, err := tx.CreateBucket([]byte(bucketName))
		return err
	})
	if err != nil {
		return err
	}

	if err := os.RemoveAll(filepath.Join(c.root, "artifacts")); err != nil {
		return fmt.Errorf("failed to remove artifacts: %w", err)
	}

	return nil
}

// Stats returns the number of entries and the total artifact size
func (c *Cache) Stats() (int, int64, error) {
	var count int
	var totalSize int64

	err := c.db.View(func(tx *bbolt.Tx) error {
		count = tx.Bucket([]byte(bucketName)).Stats().KeyN
		return nil
	})
	if err != nil {
		return 0, 0, err
	}

	artifactsDir := filepath.Join(c.root, "artifacts")
	_ = filepath.Walk(artifactsDir, func(path string, info os.FileInfo, err error) error {
		if err != nil {
			return nil
		}

		if !info.IsDir() {
			totalSize += info.Size()
		}

		return nil
	})

	return count, totalSize, nil
}

// artifactDir returns the directory path for a given cache hash
func (c *Cache) artifactDir(hash string) string {
	return filepath.Join(c.root, "artifacts", hash)
}
