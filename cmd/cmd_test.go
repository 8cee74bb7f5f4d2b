package cmd

import (
	"bytes"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/spf13/pflag"
	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Norgate-AV/koremake/internal/codes"
	kerrors "github.com/Norgate-AV/koremake/internal/errors"
	"github.com/Norgate-AV/koremake/internal/koremake"
	"github.com/Norgate-AV/koremake/internal/testutil"
)

// execute runs the root command with fresh flag and viper state.
func execute(t *testing.T, rec *testutil.Recorder, args ...string) (string, error) {
	t.Helper()

	viper.Reset()
	t.Setenv("APPDATA", t.TempDir())

	rootCmd.PersistentFlags().VisitAll(func(f *pflag.Flag) {
		if sv, ok := f.Value.(pflag.SliceValue); ok {
			_ = sv.Replace(nil)
		} else {
			_ = f.Value.Set(f.DefValue)
		}
		f.Changed = false
	})

	runOptions = []koremake.Option{koremake.WithExec(rec.Exec)}
	t.Cleanup(func() { runOptions = nil })

	var out bytes.Buffer
	rootCmd.SetOut(&out)
	rootCmd.SetArgs(args)

	err := rootCmd.Execute()
	return out.String(), err
}

func newProject(t *testing.T) string {
	t.Helper()

	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "korefile.hcl"), []byte(`project "MyGame" {
  files = ["Sources/**"]
}
`), 0o644))
	require.NoError(t, os.MkdirAll(filepath.Join(dir, "Sources"), 0o755))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "Sources", "main.cpp"), []byte("int main() {}\n"), 0o644))

	return dir
}

func TestExitCode(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want int
	}{
		{"nil", nil, codes.ExitSuccess},
		{"build failure", &kerrors.BuildError{Code: 7}, 7},
		{"config", &exitError{code: codes.ExitConfigError, err: errors.New("bad")}, codes.ExitConfigError},
		{"other", errors.New("boom"), codes.ExitFailure},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, exitCode(tt.err))
		})
	}
}

func TestBuild_Exports(t *testing.T) {
	from := newProject(t)
	to := filepath.Join(t.TempDir(), "out")

	_, err := execute(t, &testutil.Recorder{}, "build", "--from", from, "--to", to, "--target", "linux")

	require.NoError(t, err)
	assert.FileExists(t, filepath.Join(to, "Release", "Makefile"))
}

func TestBuild_MissingDescriptor(t *testing.T) {
	to := filepath.Join(t.TempDir(), "out")

	_, err := execute(t, &testutil.Recorder{}, "--from", t.TempDir(), "--to", to, "-t", "linux")

	require.Error(t, err)
	assert.Equal(t, codes.ExitFailure, exitCode(err))
	assert.NoDirExists(t, to)
}

func TestBuild_MissingTarget(t *testing.T) {
	_, err := execute(t, &testutil.Recorder{}, "build", "--from", newProject(t))

	require.Error(t, err)
	assert.Equal(t, codes.ExitConfigError, exitCode(err))
}

func TestBuild_CompileFailureExitCode(t *testing.T) {
	rec := &testutil.Recorder{Script: func(testutil.Invocation) *testutil.Fake {
		return &testutil.Fake{Code: 2}
	}}

	_, err := execute(t, rec, "build", "--from", newProject(t), "--to", t.TempDir(), "-t", "linux", "--compile")

	require.Error(t, err)
	assert.Equal(t, 2, exitCode(err))
	require.Len(t, rec.Calls(), 1)
	assert.Equal(t, "make", rec.Calls()[0].Name)
}

func TestDescribe_PrintsYAML(t *testing.T) {
	to := filepath.Join(t.TempDir(), "out")

	out, err := execute(t, &testutil.Recorder{}, "describe", "--from", newProject(t), "--to", to, "-t", "osx")

	require.NoError(t, err)
	assert.Contains(t, out, "name: MyGame")
	assert.Contains(t, out, "exporter: xcode")
	assert.Contains(t, out, "- Sources/main.cpp")
	assert.NoDirExists(t, to)
}

func TestPlatforms(t *testing.T) {
	out, err := execute(t, &testutil.Recorder{}, "platforms")

	require.NoError(t, err)
	assert.Contains(t, out, "Windows App")
	assert.Contains(t, out, "windowsapp")
}

func TestCache_StatsAndClear(t *testing.T) {
	to := t.TempDir()

	out, err := execute(t, &testutil.Recorder{}, "cache", "stats", "--to", to)
	require.NoError(t, err)
	assert.Contains(t, out, "Entries: 0")
	assert.DirExists(t, filepath.Join(to, ".koremake-cache"))

	out, err = execute(t, &testutil.Recorder{}, "cache", "clear", "--to", to)
	require.NoError(t, err)
	assert.Contains(t, out, "Shader cache cleared.")
}
