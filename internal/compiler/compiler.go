// Package compiler drives the krafix shader compiler, one subprocess per
// shader source, and turns its output into log diagnostics.
package compiler

import (
	"context"
	"fmt"
	"io"
	"strings"

	kerrors "github.com/Norgate-AV/koremake/internal/errors"
	"github.com/Norgate-AV/koremake/internal/output"
	"github.com/Norgate-AV/koremake/internal/process"
)

// Compiler compiles shader sources for a single run.
type Compiler struct {
	log         output.Sink
	koreDir     string
	builder     *CommandBuilder
	debug       bool
	execCommand process.ExecFunc
}

// Option customises a Compiler.
type Option func(*Compiler)

// WithExec replaces the subprocess factory.
func WithExec(fn process.ExecFunc) Option {
	return func(c *Compiler) { c.execCommand = fn }
}

// New creates a compiler that looks for the bundled tool under koreDir.
func New(log output.Sink, koreDir string, debug bool, opts ...Option) *Compiler {
	c := &Compiler{
		log:         log,
		koreDir:     koreDir,
		builder:     NewCommandBuilder(debug),
		debug:       debug,
		execCommand: process.Exec,
	}

	for _, opt := range opts {
		opt(c)
	}

	return c
}

// IsShader reports whether path is a shader source the compiler handles.
func IsShader(path string) bool {
	return strings.HasSuffix(path, ".glsl") || strings.HasSuffix(path, ".wgsl")
}

// Compile compiles one shader and returns once the compiler has exited.
// WGSL sources are translated in-process; everything else is handed to krafix.
func (c *Compiler) Compile(ctx context.Context, projectDir string, job Job) error {
	if strings.HasSuffix(job.Source, ".wgsl") {
		return c.compileWGSL(job)
	}

	compilerPath := FindCompiler(c.koreDir, projectDir, job.Platform)
	if compilerPath == "" {
		return kerrors.ErrCompilerNotFound
	}

	cmdArgs, err := c.builder.BuildCommandArgs(job)
	if err != nil {
		return err
	}

	c.log.Debug("Running shader compiler", "command", FormatCommand(compilerPath, cmdArgs))

	parser := NewDiagnosticParser(func(line string) {
		c.log.Error(line)
	})

	cmd := c.execCommand(ctx, "", compilerPath, cmdArgs...)
	code, err := process.Run(cmd,
		process.Lines(func(line string) { c.log.Info(line) }),
		func(r io.Reader) error {
			defer parser.Flush()
			return process.Chunks(func(b []byte) { _, _ = parser.Write(b) })(r)
		},
	)
	if err != nil {
		return fmt.Errorf("running %s: %w", compilerPath, err)
	}

	if code != 0 {
		return kerrors.ErrShaderCompile
	}

	return nil
}
