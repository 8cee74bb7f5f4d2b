package builder

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	kerrors "github.com/Norgate-AV/koremake/internal/errors"
	"github.com/Norgate-AV/koremake/internal/platform"
)

// invocation is a subprocess the runner spawns.
type invocation struct {
	Dir  string
	Name string
	Args []string
}

// toolchain describes how one platform builds, collects and runs a solution.
// Any hook may be nil.
type toolchain struct {
	// build returns the native build command
	build func(r *Runner, solution string) (*invocation, error)
	// artifact returns the built binary and where it is copied to
	artifact func(r *Runner, debugDir, solution string) (src, dst string)
	// launch returns the command that starts the built binary
	launch func(r *Runner, debugDir, solution string) *invocation
}

var toolchains = map[platform.ID]toolchain{
	platform.Linux: {
		build: func(r *Runner, _ string) (*invocation, error) {
			return &invocation{Dir: filepath.Join(r.cfg.To, r.cfg.BuildPath()), Name: "make"}, nil
		},
		artifact: func(r *Runner, debugDir, solution string) (string, string) {
			return filepath.Join(r.cfg.To, r.cfg.BuildPath(), solution), filepath.Join(debugDir, solution)
		},
		launch: func(_ *Runner, debugDir, solution string) *invocation {
			return &invocation{Dir: debugDir, Name: filepath.Join(debugDir, solution)}
		},
	},
	platform.OSX: {
		build: func(r *Runner, solution string) (*invocation, error) {
			return &invocation{Dir: r.cfg.To, Name: "xcodebuild", Args: []string{"-project", solution + ".xcodeproj"}}, nil
		},
		launch: func(r *Runner, _, solution string) *invocation {
			app := "build/Release/" + solution + ".app/Contents/MacOS/" + solution
			return &invocation{Dir: r.cfg.To, Name: "open", Args: []string{app}}
		},
	},
	platform.Windows: {
		build: buildWindows,
		artifact: func(r *Runner, debugDir, solution string) (string, string) {
			return filepath.Join(r.cfg.To, "Debug", solution+".exe"), filepath.Join(debugDir, solution+".exe")
		},
		launch: func(_ *Runner, debugDir, solution string) *invocation {
			return &invocation{Dir: debugDir, Name: filepath.Join(debugDir, solution+".exe")}
		},
	},
}

// visualStudioVersions lists the environment variables of supported Visual
// Studio installations, most recent first.
var visualStudioVersions = []struct {
	Name string
	Env  string
}{
	{"vs2015", "VS140COMNTOOLS"},
	{"vs2013", "VS120COMNTOOLS"},
	{"vs2012", "VS110COMNTOOLS"},
}

// findVSVars returns the vsvars32.bat of the preferred Visual Studio version
// if it is installed, else of the most recent installed one.
func (r *Runner) findVSVars() (string, bool) {
	envs := make([]string, 0, len(visualStudioVersions)+1)
	for _, v := range visualStudioVersions {
		if strings.EqualFold(v.Name, r.cfg.VisualStudio) {
			envs = append(envs, v.Env)
		}
	}

	for _, v := range visualStudioVersions {
		envs = append(envs, v.Env)
	}

	for _, env := range envs {
		if tools := r.getenv(env); tools != "" {
			return tools + `\vsvars32.bat`, true
		}
	}

	return "", false
}

func buildWindows(r *Runner, solution string) (*invocation, error) {
	vsvars, ok := r.findVSVars()
	if !ok {
		return nil, kerrors.Wrap(kerrors.ErrToolchainNotFound, "Visual Studio not found")
	}

	script := fmt.Sprintf("@call \"%s\"\n@MSBuild.exe \"%s.vcxproj\" /m /p:Configuration=Debug,Platform=Win32", vsvars, solution)
	if err := os.WriteFile(filepath.Join(r.cfg.To, "build.bat"), []byte(script), 0o644); err != nil {
		return nil, fmt.Errorf("writing build script: %w", err)
	}

	return &invocation{Dir: r.cfg.To, Name: "cmd", Args: []string{"/c", "build.bat"}}, nil
}
