package compiler

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	kerrors "github.com/Norgate-AV/koremake/internal/errors"
	"github.com/Norgate-AV/koremake/internal/platform"
	"github.com/Norgate-AV/koremake/internal/testutil"
)

func testJob(dir string) Job {
	return Job{
		Dialect:  platform.DialectGLSL,
		Source:   filepath.Join(dir, "basic.glsl"),
		Dest:     filepath.Join(dir, "Deployment", "basic"),
		Temp:     filepath.Join(dir, "build"),
		Platform: platform.Linux,
	}
}

func TestCompiler_Compile_Success(t *testing.T) {
	sink := &testutil.RecordingSink{}
	rec := &testutil.Recorder{Script: func(testutil.Invocation) *testutil.Fake {
		return &testutil.Fake{
			Stdout: "Compiling basic\n",
			Stderr: []string{"warning: unused", " variable\n#{\"line\":3}\n"},
		}
	}}

	kore := t.TempDir()
	c := New(sink, kore, true, WithExec(rec.Exec))

	err := c.Compile(context.Background(), t.TempDir(), testJob("/p"))
	require.NoError(t, err)

	calls := rec.Calls()
	require.Len(t, calls, 1)
	assert.Equal(t, filepath.Join(kore, "Tools", "krafix", "krafix"+sysSuffix()), calls[0].Name)
	assert.Equal(t, "--debug", calls[0].Args[len(calls[0].Args)-1])

	assert.Equal(t, []string{"Compiling basic"}, sink.Messages(testutil.LevelInfo))
	assert.Equal(t, []string{"warning: unused variable"}, sink.Messages(testutil.LevelError))
}

func TestCompiler_Compile_NonzeroExit(t *testing.T) {
	sink := &testutil.RecordingSink{}
	rec := &testutil.Recorder{Script: func(testutil.Invocation) *testutil.Fake {
		return &testutil.Fake{Stderr: []string{"basic.glsl:3: syntax error"}, Code: 1}
	}}

	c := New(sink, t.TempDir(), false, WithExec(rec.Exec))

	err := c.Compile(context.Background(), t.TempDir(), testJob("/p"))
	assert.True(t, errors.Is(err, kerrors.ErrShaderCompile))
	assert.Equal(t, []string{"basic.glsl:3: syntax error"}, sink.Messages(testutil.LevelError))
}

func TestCompiler_Compile_CompilerNotFound(t *testing.T) {
	rec := &testutil.Recorder{}
	c := New(&testutil.RecordingSink{}, "", false, WithExec(rec.Exec))

	err := c.Compile(context.Background(), t.TempDir(), testJob("/p"))
	assert.True(t, errors.Is(err, kerrors.ErrCompilerNotFound))
	assert.Empty(t, rec.Calls(), "no subprocess may be spawned")
}

func TestCompiler_Compile_StartFailure(t *testing.T) {
	rec := &testutil.Recorder{Script: func(testutil.Invocation) *testutil.Fake {
		return &testutil.Fake{StartErr: errors.New("permission denied")}
	}}
	c := New(&testutil.RecordingSink{}, t.TempDir(), false, WithExec(rec.Exec))

	err := c.Compile(context.Background(), t.TempDir(), testJob("/p"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "permission denied")
}

const triangleWGSL = `
@vertex
fn main(@builtin(vertex_index) idx: u32) -> @builtin(position) vec4<f32> {
    return vec4<f32>(0.0, 0.0, 0.0, 1.0);
}
`

func TestCompiler_Compile_WGSLInProcess(t *testing.T) {
	dir := t.TempDir()
	src := filepath.Join(dir, "triangle.wgsl")
	require.NoError(t, os.WriteFile(src, []byte(triangleWGSL), 0o644))

	rec := &testutil.Recorder{}
	c := New(&testutil.RecordingSink{}, "", false, WithExec(rec.Exec))

	job := Job{
		Dialect:  platform.DialectSPIRV,
		Source:   src,
		Dest:     filepath.Join(dir, "out", "triangle"),
		Platform: platform.Linux,
	}

	require.NoError(t, c.Compile(context.Background(), dir, job))
	assert.Empty(t, rec.Calls())

	info, err := os.Stat(job.Dest + ".spirv")
	require.NoError(t, err)
	assert.Positive(t, info.Size())
}

func TestCompiler_Compile_WGSLErrors(t *testing.T) {
	dir := t.TempDir()
	src := filepath.Join(dir, "broken.wgsl")
	require.NoError(t, os.WriteFile(src, []byte("fn {"), 0o644))

	sink := &testutil.RecordingSink{}
	c := New(sink, "", false)

	err := c.Compile(context.Background(), dir, Job{Dialect: platform.DialectSPIRV, Source: src, Dest: filepath.Join(dir, "broken")})
	assert.True(t, errors.Is(err, kerrors.ErrShaderCompile))
	assert.NotEmpty(t, sink.Messages(testutil.LevelError))

	good := filepath.Join(dir, "triangle.wgsl")
	require.NoError(t, os.WriteFile(good, []byte(triangleWGSL), 0o644))

	err = c.Compile(context.Background(), dir, Job{Dialect: platform.DialectD3D9, Source: good, Dest: filepath.Join(dir, "triangle")})
	assert.True(t, errors.Is(err, kerrors.ErrShaderCompile))
}

func TestIsShader(t *testing.T) {
	assert.True(t, IsShader("a.glsl"))
	assert.True(t, IsShader("a.frag.glsl"))
	assert.True(t, IsShader("a.wgsl"))
	assert.False(t, IsShader("a.cpp"))
	assert.False(t, IsShader("glsl.txt"))
}
