// Package koremake runs the export pipeline: load the project, compile its
// shaders, export native project files and optionally build and run them.
package koremake

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/Norgate-AV/koremake/internal/builder"
	"github.com/Norgate-AV/koremake/internal/compiler"
	"github.com/Norgate-AV/koremake/internal/config"
	kerrors "github.com/Norgate-AV/koremake/internal/errors"
	"github.com/Norgate-AV/koremake/internal/exporter"
	"github.com/Norgate-AV/koremake/internal/output"
	"github.com/Norgate-AV/koremake/internal/platform"
	"github.com/Norgate-AV/koremake/internal/process"
	"github.com/Norgate-AV/koremake/internal/project"
)

type settings struct {
	execCommand process.ExecFunc
	launch      builder.LaunchFunc
	getenv      func(string) string
	loader      exporter.PluginLoader
}

// Option customises a run.
type Option func(*settings)

// WithExec replaces the subprocess factory for shader and native builds.
func WithExec(fn process.ExecFunc) Option {
	return func(s *settings) { s.execCommand = fn }
}

// WithLauncher replaces how built programs are started.
func WithLauncher(fn builder.LaunchFunc) Option {
	return func(s *settings) { s.launch = fn }
}

// WithGetenv replaces the environment lookup used to find toolchains.
func WithGetenv(fn func(string) string) Option {
	return func(s *settings) { s.getenv = fn }
}

// WithPluginLoader replaces how exporter plugins are loaded.
func WithPluginLoader(loader exporter.PluginLoader) Option {
	return func(s *settings) { s.loader = loader }
}

// Run exports the project in cfg.From to cfg.To and returns the solution
// name. Handled failures are logged and yield an empty name with a nil error.
// The only error returned is *errors.BuildError, when the native build tool
// exits unsuccessfully.
func Run(ctx context.Context, cfg *config.Config, log output.Sink, opts ...Option) (string, error) {
	s := settings{
		execCommand: process.Exec,
		getenv:      os.Getenv,
		loader:      exporter.GoPluginLoader{},
	}

	for _, opt := range opts {
		opt(&s)
	}

	p, err := export(ctx, cfg, log, &s)
	if err != nil {
		log.Error(err.Error())
		return "", nil
	}

	name := p.Name()
	if !cfg.Compile || name == "" {
		return name, nil
	}

	log.Info("Compiling...")

	builderOpts := []builder.Option{builder.WithExec(s.execCommand), builder.WithGetenv(s.getenv)}
	if s.launch != nil {
		builderOpts = append(builderOpts, builder.WithLauncher(s.launch))
	}

	runner := builder.New(log, cfg, builderOpts...)
	if err := runner.Build(ctx, p.DebugDir(), name); err != nil {
		var buildErr *kerrors.BuildError
		if errors.As(err, &buildErr) {
			return name, buildErr
		}

		log.Error(err.Error())
		return "", nil
	}

	return name, nil
}

func export(ctx context.Context, cfg *config.Config, log output.Sink, s *settings) (*project.Project, error) {
	if !project.Exists(cfg.From) {
		return nil, kerrors.Wrap(kerrors.ErrDescriptorNotFound, project.Descriptor+" not found")
	}

	log.Info(project.Descriptor + " found.")
	log.Info(fmt.Sprintf("Creating %s project files.", platform.DisplayName(cfg.Target)))

	p, err := Load(cfg)
	if err != nil {
		return nil, err
	}

	if err := os.MkdirAll(cfg.To, 0o755); err != nil {
		return nil, fmt.Errorf("creating %s: %w", cfg.To, err)
	}

	if !cfg.NoShaders {
		c := compiler.New(log, cfg.KoreDir, cfg.Debug, compiler.WithExec(s.execCommand))
		if err := compileShaders(ctx, cfg, log, c, p); err != nil {
			return nil, err
		}
	}

	backends := filepath.Join(cfg.From, compiler.BackendsDir)
	exp, err := exporter.NewResolver(backends, s.loader).Resolve(cfg.Target)
	if err != nil {
		return nil, err
	}

	log.Debug("Exporting solution", "exporter", exp.Name(), "to", cfg.To)

	opts := exporter.Options{VRAPI: cfg.VRAPI, NoKrafix: cfg.NoKrafix, Config: cfg}
	if err := exp.ExportSolution(ctx, p, cfg.From, cfg.To, cfg.Target, opts); err != nil {
		return nil, fmt.Errorf("exporting %s: %w", p.Name(), err)
	}

	return p, nil
}

// Load builds the flattened project model of cfg.From for cfg.Target.
func Load(cfg *config.Config) (*project.Project, error) {
	p, err := project.Create(cfg.From, cfg.Target, cfg.Debug)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", kerrors.ErrProjectLoad, err)
	}

	if err := p.SearchFiles(nil); err != nil {
		return nil, fmt.Errorf("%w: %v", kerrors.ErrProjectLoad, err)
	}

	p.Flatten()

	return p, nil
}
