// Package project loads korefile.hcl descriptors into the resolved project
// model the exporters consume.
package project

import (
	"fmt"
	"io/fs"
	"path/filepath"

	"github.com/Norgate-AV/koremake/internal/platform"
)

// File is one source file of a project.
type File struct {
	// File is the absolute path of the source file
	File string
	// Project is the name of the project that contributed the file
	Project string
}

// Project is a loaded project description and its dependencies.
type Project struct {
	name     string
	dir      string
	debugDir string
	patterns []string
	includes []string
	defines  []string
	files    []File
	subs     []*Project
}

// Create loads the descriptor in dir and every project it depends on.
// Descriptors see target and debug as the platform and debug variables.
func Create(dir string, target platform.ID, debug bool) (*Project, error) {
	abs, err := filepath.Abs(dir)
	if err != nil {
		return nil, err
	}

	return create(abs, target, debug, map[string]bool{})
}

func create(dir string, target platform.ID, debug bool, loading map[string]bool) (*Project, error) {
	if loading[dir] {
		return nil, fmt.Errorf("project dependency cycle at %s", dir)
	}

	loading[dir] = true
	defer delete(loading, dir)

	if !Exists(dir) {
		return nil, fmt.Errorf("%s not found in %s", Descriptor, dir)
	}

	block, err := parseDescriptor(dir, target, debug)
	if err != nil {
		return nil, err
	}

	p := &Project{
		name:     block.Name,
		dir:      dir,
		debugDir: block.DebugDir,
		patterns: block.Files,
		defines:  block.Defines,
	}

	if p.debugDir == "" {
		p.debugDir = "Deployment"
	}

	for _, inc := range block.Includes {
		p.includes = append(p.includes, filepath.Join(dir, inc))
	}

	for _, rel := range block.Projects {
		sub, err := create(filepath.Join(dir, rel), target, debug, loading)
		if err != nil {
			return nil, fmt.Errorf("loading dependency %s of %s: %w", rel, p.name, err)
		}

		p.subs = append(p.subs, sub)
	}

	return p, nil
}

// SearchFiles expands the file patterns of the project and its dependencies.
// A nil filter accepts every match.
func (p *Project) SearchFiles(filter func(path string) bool) error {
	patterns := make([]string, 0, len(p.patterns))
	for _, pattern := range p.patterns {
		normalized, err := normalizePattern(filepath.ToSlash(pattern))
		if err != nil {
			return fmt.Errorf("invalid file pattern %q: %w", pattern, err)
		}

		patterns = append(patterns, normalized)
	}

	seen := map[string]bool{}
	p.files = p.files[:0]

	// One walk per pattern keeps descriptor order significant.
	for _, pattern := range patterns {
		err := filepath.WalkDir(p.dir, func(path string, d fs.DirEntry, err error) error {
			if err != nil {
				return err
			}

			if d.IsDir() {
				return nil
			}

			rel, err := filepath.Rel(p.dir, path)
			if err != nil {
				return err
			}

			if !matchPattern(pattern, filepath.ToSlash(rel)) || seen[path] {
				return nil
			}

			if filter != nil && !filter(path) {
				return nil
			}

			seen[path] = true
			p.files = append(p.files, File{File: path, Project: p.name})

			return nil
		})
		if err != nil {
			return fmt.Errorf("searching files of %s: %w", p.name, err)
		}
	}

	for _, sub := range p.subs {
		if err := sub.SearchFiles(filter); err != nil {
			return err
		}
	}

	return nil
}

// Flatten merges the files, includes and defines of all dependencies into p.
func (p *Project) Flatten() {
	for _, sub := range p.subs {
		sub.Flatten()

		p.files = appendUniqueFiles(p.files, sub.files)
		p.includes = appendUnique(p.includes, sub.includes)
		p.defines = appendUnique(p.defines, sub.defines)
	}

	p.subs = nil
}

// Name returns the project name.
func (p *Project) Name() string { return p.name }

// Dir returns the directory holding the descriptor.
func (p *Project) Dir() string { return p.dir }

// Files returns the searched file list in descriptor order.
func (p *Project) Files() []File { return p.files }

// Includes returns absolute include directories.
func (p *Project) Includes() []string { return p.includes }

// Defines returns preprocessor defines.
func (p *Project) Defines() []string { return p.defines }

// DebugDir returns the absolute directory the built binary runs from.
func (p *Project) DebugDir() string {
	if filepath.IsAbs(p.debugDir) {
		return p.debugDir
	}

	return filepath.Join(p.dir, p.debugDir)
}

func appendUnique(dst, src []string) []string {
	seen := make(map[string]bool, len(dst))
	for _, s := range dst {
		seen[s] = true
	}

	for _, s := range src {
		if !seen[s] {
			seen[s] = true
			dst = append(dst, s)
		}
	}

	return dst
}

func appendUniqueFiles(dst, src []File) []File {
	seen := make(map[string]bool, len(dst))
	for _, f := range dst {
		seen[f.File] = true
	}

	for _, f := range src {
		if !seen[f.File] {
			seen[f.File] = true
			dst = append(dst, f)
		}
	}

	return dst
}
