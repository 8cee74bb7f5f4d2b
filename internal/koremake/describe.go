package koremake

import (
	"path/filepath"

	"github.com/Norgate-AV/koremake/internal/compiler"
	"github.com/Norgate-AV/koremake/internal/config"
	"github.com/Norgate-AV/koremake/internal/exporter"
	"github.com/Norgate-AV/koremake/internal/platform"
)

// Description is the resolved view of a project for one configuration.
type Description struct {
	Name        string   `yaml:"name"`
	Platform    string   `yaml:"platform"`
	DisplayName string   `yaml:"display_name"`
	Dialect     string   `yaml:"dialect"`
	Exporter    string   `yaml:"exporter"`
	BuildPath   string   `yaml:"build_path"`
	DebugDir    string   `yaml:"debug_dir"`
	Includes    []string `yaml:"includes,omitempty"`
	Defines     []string `yaml:"defines,omitempty"`
	Files       []string `yaml:"files"`
	Shaders     []string `yaml:"shaders,omitempty"`
}

// Describe resolves the project and exporter for cfg without writing anything.
func Describe(cfg *config.Config, opts ...Option) (*Description, error) {
	s := settings{loader: exporter.GoPluginLoader{}}
	for _, opt := range opts {
		opt(&s)
	}

	p, err := Load(cfg)
	if err != nil {
		return nil, err
	}

	exp, err := exporter.NewResolver(filepath.Join(cfg.From, compiler.BackendsDir), s.loader).Resolve(cfg.Target)
	if err != nil {
		return nil, err
	}

	d := &Description{
		Name:        p.Name(),
		Platform:    string(cfg.Target),
		DisplayName: platform.DisplayName(cfg.Target),
		Dialect:     platform.ShaderDialect(cfg.Target, cfg.Graphics),
		Exporter:    exp.Name(),
		BuildPath:   cfg.BuildPath(),
		DebugDir:    p.DebugDir(),
		Includes:    p.Includes(),
		Defines:     p.Defines(),
	}

	for _, f := range p.Files() {
		rel, err := filepath.Rel(p.Dir(), f.File)
		if err != nil {
			rel = f.File
		}

		d.Files = append(d.Files, filepath.ToSlash(rel))
	}

	for _, job := range ShaderJobs(cfg, p) {
		d.Shaders = append(d.Shaders, job.Name())
	}

	return d, nil
}
