// Package errors defines the failure kinds of the build pipeline.
package errors

import (
	"errors"
	"fmt"
)

// Sentinel errors for the pipeline stages. Callers match them with errors.Is.
var (
	// ErrDescriptorNotFound indicates the source directory has no project descriptor.
	ErrDescriptorNotFound = errors.New("project descriptor not found")

	// ErrProjectLoad indicates the project model could not be constructed.
	ErrProjectLoad = errors.New("project construction failed")

	// ErrCompilerNotFound indicates no shader compiler executable could be resolved.
	ErrCompilerNotFound = errors.New("could not find shader compiler")

	// ErrShaderCompile indicates the shader compiler exited unsuccessfully.
	ErrShaderCompile = errors.New("shader compiler error")

	// ErrNoExporter indicates no exporter is available for the platform.
	ErrNoExporter = errors.New("no exporter found")

	// ErrToolchainNotFound indicates the native toolchain could not be located.
	ErrToolchainNotFound = errors.New("toolchain not found")
)

// BuildError is returned when the native build tool exits with a nonzero code.
// It is the only pipeline failure that should terminate the host process.
type BuildError struct {
	Code int
}

// Error implements the error interface.
func (e *BuildError) Error() string {
	return fmt.Sprintf("compilation failed (exit code %d)", e.Code)
}

// Wrap wraps an error with a sentinel error type.
func Wrap(sentinel error, message string) error {
	return fmt.Errorf("%s: %w", message, sentinel)
}
