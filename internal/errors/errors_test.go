package errors

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestWrap(t *testing.T) {
	err := Wrap(ErrNoExporter, "no exporter found for platform krom")

	assert.True(t, errors.Is(err, ErrNoExporter))
	assert.False(t, errors.Is(err, ErrShaderCompile))
	assert.Equal(t, "no exporter found for platform krom: no exporter found", err.Error())
}

func TestBuildError(t *testing.T) {
	var err error = fmt.Errorf("build: %w", &BuildError{Code: 2})

	var buildErr *BuildError
	if assert.ErrorAs(t, err, &buildErr) {
		assert.Equal(t, 2, buildErr.Code)
	}
	assert.Contains(t, err.Error(), "exit code 2")
}
