package cmd

import (
	"errors"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/Norgate-AV/koremake/internal/codes"
	kerrors "github.com/Norgate-AV/koremake/internal/errors"
	"github.com/Norgate-AV/koremake/internal/output"
	"github.com/Norgate-AV/koremake/internal/version"
)

var rootCmd = &cobra.Command{
	Use:           "koremake",
	Short:         "Cross-platform project exporter",
	Long:          `Export a korefile.hcl project to native build files, compile its shaders and optionally build and run it.`,
	RunE:          runBuild,
	SilenceUsage:  true,
	SilenceErrors: true,
	Args:          cobra.NoArgs,
}

// exitError carries the process exit code for a failed command.
type exitError struct {
	code int
	err  error
}

func (e *exitError) Error() string { return e.err.Error() }

func (e *exitError) Unwrap() error { return e.err }

// exitCode maps a command error to the process exit code.
func exitCode(err error) int {
	if err == nil {
		return codes.ExitSuccess
	}

	var buildErr *kerrors.BuildError
	if errors.As(err, &buildErr) {
		return buildErr.Code
	}

	var exitErr *exitError
	if errors.As(err, &exitErr) {
		return exitErr.code
	}

	return codes.ExitFailure
}

func Execute() {
	err := rootCmd.Execute()
	if code := exitCode(err); !codes.IsSuccess(code) {
		output.Error(err.Error())
		os.Exit(code)
	}
}

func init() {
	rootCmd.Version = fmt.Sprintf("%s (%s) %s", version.Version, version.Commit, version.BuildTime)

	flags := rootCmd.PersistentFlags()
	flags.String("from", ".", "Source directory containing korefile.hcl")
	flags.String("to", "build", "Destination directory for the exported project")
	flags.StringP("target", "t", "", "Target platform (e.g. windows, linux, osx, android, html5)")
	flags.StringP("graphics", "g", "", "Graphics api (default, opengl, opengl2, direct3d9, direct3d11, direct3d12, vulkan, metal)")
	flags.String("visualstudio", "", "Preferred Visual Studio version (vs2015, vs2013, vs2012)")
	flags.String("vr", "", "VR backend passed to the exporter")
	flags.StringP("kore", "k", "", "Kore directory containing Tools/krafix")
	flags.Bool("debug", false, "Build the debug configuration")
	flags.Bool("noshaders", false, "Do not compile shaders")
	flags.Bool("nokrafix", false, "Do not add shader compiler steps to the exported project")
	flags.BoolP("compile", "c", false, "Compile the exported project with the native toolchain")
	flags.BoolP("run", "r", false, "Run the compiled binary")
	flags.Bool("shader-cache", false, "Reuse compiled shaders across runs")
	flags.String("custom-target", "", "Name of a custom plugin target")
	flags.String("custom-base", "", "Platform the custom target builds like")
	flags.StringSlice("flag", []string{}, "Exporter specific flag as key=value (repeatable)")
	flags.BoolP("verbose", "v", false, "Verbose output")

	rootCmd.AddCommand(buildCmd, describeCmd, platformsCmd, cacheCmd)
}
