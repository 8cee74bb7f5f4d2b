// Package builder drives the native toolchain over an exported solution and
// optionally runs the result.
package builder

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/exec"

	"github.com/Norgate-AV/koremake/internal/config"
	kerrors "github.com/Norgate-AV/koremake/internal/errors"
	"github.com/Norgate-AV/koremake/internal/fsutil"
	"github.com/Norgate-AV/koremake/internal/output"
	"github.com/Norgate-AV/koremake/internal/process"
)

// LaunchFunc starts a program attached to the host console and waits for it.
type LaunchFunc func(ctx context.Context, dir, name string, args ...string) error

// Runner builds and runs exported solutions for one configuration.
type Runner struct {
	log         output.Sink
	cfg         *config.Config
	execCommand process.ExecFunc
	launch      LaunchFunc
	getenv      func(string) string
}

// Option customises a Runner.
type Option func(*Runner)

// WithExec replaces the subprocess factory used for builds.
func WithExec(fn process.ExecFunc) Option {
	return func(r *Runner) { r.execCommand = fn }
}

// WithLauncher replaces how built programs are started.
func WithLauncher(fn LaunchFunc) Option {
	return func(r *Runner) { r.launch = fn }
}

// WithGetenv replaces the environment lookup used to find toolchains.
func WithGetenv(fn func(string) string) Option {
	return func(r *Runner) { r.getenv = fn }
}

// New creates a runner for cfg.
func New(log output.Sink, cfg *config.Config, opts ...Option) *Runner {
	r := &Runner{
		log:         log,
		cfg:         cfg,
		execCommand: process.Exec,
		launch:      launchInherited,
		getenv:      os.Getenv,
	}

	for _, opt := range opts {
		opt(r)
	}

	return r
}

// Build compiles the exported solution with the native toolchain of the
// configuration's base target. A nonzero exit of the build tool is returned
// as *errors.BuildError. Platforms without a build recipe and missing
// toolchains are logged and skipped.
func (r *Runner) Build(ctx context.Context, debugDir, solution string) error {
	tc, ok := toolchains[r.cfg.BaseTarget()]
	if !ok || tc.build == nil {
		r.log.Info("--compile not yet implemented for this platform")
		return nil
	}

	inv, err := tc.build(r, solution)
	if errors.Is(err, kerrors.ErrToolchainNotFound) {
		r.log.Error("Visual Studio not found.")
		return nil
	}
	if err != nil {
		return err
	}

	r.log.Debug("Running native build", "dir", inv.Dir, "command", inv.Name, "args", inv.Args)

	cmd := r.execCommand(ctx, inv.Dir, inv.Name, inv.Args...)
	code, err := process.Run(cmd,
		process.Lines(func(line string) { r.log.Info(line) }),
		process.Lines(func(line string) { r.log.Error(line) }),
	)
	if err != nil {
		return fmt.Errorf("running %s: %w", inv.Name, err)
	}

	if code != 0 {
		r.log.Error("Compilation failed.")
		return &kerrors.BuildError{Code: code}
	}

	if tc.artifact != nil {
		src, dst := tc.artifact(r, debugDir, solution)
		if err := fsutil.CopyFile(src, dst); err != nil {
			return fmt.Errorf("copying %s: %w", src, err)
		}
	}

	if r.cfg.Run {
		r.run(ctx, tc, debugDir, solution)
	}

	return nil
}

func (r *Runner) run(ctx context.Context, tc toolchain, debugDir, solution string) {
	if tc.launch == nil {
		r.log.Info("--run not yet implemented for this platform")
		return
	}

	inv := tc.launch(r, debugDir, solution)
	if err := r.launch(ctx, inv.Dir, inv.Name, inv.Args...); err != nil {
		r.log.Error(fmt.Sprintf("%s exited: %v", solution, err))
	}
}

func launchInherited(ctx context.Context, dir, name string, args ...string) error {
	cmd := exec.CommandContext(ctx, name, args...)
	cmd.Dir = dir
	cmd.Stdin = os.Stdin
	cmd.Stdout = os.Stdout
	cmd.Stderr = os.Stderr

	return cmd.Run()
}
