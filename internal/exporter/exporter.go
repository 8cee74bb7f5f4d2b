// Package exporter turns a resolved project into native project files for a
// target platform.
package exporter

import (
	"context"
	"path/filepath"
	"strings"

	"github.com/Norgate-AV/koremake/internal/config"
	"github.com/Norgate-AV/koremake/internal/platform"
	"github.com/Norgate-AV/koremake/internal/project"
)

// Options are handed to every exporter alongside the project.
type Options struct {
	// VR backend selected for the build
	VRAPI string
	// Do not add shader compiler steps to the generated project
	NoKrafix bool
	// Full build configuration, including exporter specific flags
	Config *config.Config
}

// Exporter writes the native build files for a project.
type Exporter interface {
	// Name identifies the exporter in logs
	Name() string
	// ExportSolution writes the files for target into to
	ExportSolution(ctx context.Context, p *project.Project, from, to string, target platform.ID, opts Options) error
}

// Factory creates an exporter.
type Factory func() Exporter

// solution is the data templates are rendered with.
type solution struct {
	Name        string
	Platform    string
	DisplayName string
	From        string
	To          string
	BuildPath   string
	Debug       bool
	NoKrafix    bool
	VRAPI       string
	Sources     []string
	Headers     []string
	Includes    []string
	Defines     []string
	Flags       map[string]string
}

var (
	sourceExts = map[string]bool{".c": true, ".cpp": true, ".cc": true, ".m": true, ".mm": true}
	headerExts = map[string]bool{".h": true, ".hpp": true}
)

func newSolution(p *project.Project, from, to string, target platform.ID, opts Options) solution {
	s := solution{
		Name:        p.Name(),
		Platform:    string(target),
		DisplayName: platform.DisplayName(target),
		From:        from,
		To:          to,
		BuildPath:   "Release",
		NoKrafix:    opts.NoKrafix,
		VRAPI:       opts.VRAPI,
		Includes:    p.Includes(),
		Defines:     p.Defines(),
		Flags:       map[string]string{},
	}

	if opts.Config != nil {
		s.Debug = opts.Config.Debug
		s.BuildPath = opts.Config.BuildPath()
		s.Flags = opts.Config.Flags
	}

	for _, f := range p.Files() {
		ext := strings.ToLower(filepath.Ext(f.File))
		switch {
		case sourceExts[ext]:
			s.Sources = append(s.Sources, f.File)
		case headerExts[ext]:
			s.Headers = append(s.Headers, f.File)
		}
	}

	return s
}
