package cache

import "time"

// Entry represents a cached shader compilation
type Entry struct {
	// Hash is the unique identifier for this cache entry
	// Computed from: shader source content + dialect + platform + debug flag
	Hash string `json:"hash"`

	// Source is the absolute path of the shader source
	Source string `json:"source"`

	// Dialect the shader was compiled to
	Dialect string `json:"dialect"`

	// Platform the shader was compiled for
	Platform string `json:"platform"`

	// Dest is the destination path handed to the compiler
	Dest string `json:"dest"`

	// Timestamp when this entry was created
	Timestamp time.Time `json:"timestamp"`

	// Outputs lists the produced files (relative to the destination directory)
	Outputs []string `json:"outputs"`

	// Success indicates the compiler produced outputs
	Success bool `json:"success"`
}
