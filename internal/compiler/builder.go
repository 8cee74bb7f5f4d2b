package compiler

import (
	"fmt"
	"path/filepath"
	"strings"

	"github.com/Norgate-AV/koremake/internal/platform"
)

// Job describes the compilation of a single shader source file.
type Job struct {
	// Shader dialect to produce
	Dialect string
	// Shader source file
	Source string
	// Output path without dialect specific extension
	Dest string
	// Scratch directory for the compiler
	Temp string
	// Target platform
	Platform platform.ID
}

// Name returns the shader's base name without its source extension.
func (j Job) Name() string {
	base := filepath.Base(j.Source)
	return strings.TrimSuffix(base, filepath.Ext(base))
}

// CommandBuilder handles building compiler commands
type CommandBuilder struct {
	debug bool
}

// NewCommandBuilder creates a new command builder
func NewCommandBuilder(debug bool) *CommandBuilder {
	return &CommandBuilder{debug: debug}
}

// BuildCommandArgs builds the positional arguments for the shader compiler:
// dialect, source, destination, temp directory and platform.
func (cb *CommandBuilder) BuildCommandArgs(job Job) ([]string, error) {
	if job.Dialect == "" {
		return nil, fmt.Errorf("no shader dialect for %s", job.Source)
	}

	if job.Source == "" || job.Dest == "" {
		return nil, fmt.Errorf("shader job needs a source and a destination")
	}

	cmdArgs := []string{job.Dialect, job.Source, job.Dest, job.Temp, string(job.Platform)}

	if cb.debug {
		cmdArgs = append(cmdArgs, "--debug")
	}

	return cmdArgs, nil
}

// FormatCommand renders a command line for verbose logging
func FormatCommand(compilerPath string, cmdArgs []string) string {
	return compilerPath + " " + strings.Join(cmdArgs, " ")
}
