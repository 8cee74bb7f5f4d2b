package cmd

import (
	"errors"

	"github.com/spf13/cobra"

	"github.com/Norgate-AV/koremake/internal/codes"
	"github.com/Norgate-AV/koremake/internal/config"
	"github.com/Norgate-AV/koremake/internal/koremake"
	"github.com/Norgate-AV/koremake/internal/output"
)

// runOptions are passed to every pipeline run. Tests use them to fake
// subprocesses.
var runOptions []koremake.Option

var buildCmd = &cobra.Command{
	Use:          "build",
	Short:        "Export and optionally build a project",
	Long:         `Export the project in --from for --target into --to, compiling shaders and, with --compile, the native solution.`,
	RunE:         runBuild,
	SilenceUsage: true,
	Args:         cobra.NoArgs,
}

// loadConfig resolves the configuration and installs the logger.
func loadConfig(cmd *cobra.Command) (*config.Config, error) {
	cfg, err := config.NewLoader().LoadForBuild(cmd)
	if err != nil {
		return nil, &exitError{code: codes.ExitConfigError, err: err}
	}

	output.SetupLogging(cfg.Verbose)
	output.Debug("Resolved configuration", "from", cfg.From, "to", cfg.To, "target", cfg.Target, "graphics", cfg.Graphics)

	return cfg, nil
}

func runBuild(cmd *cobra.Command, _ []string) error {
	cfg, err := loadConfig(cmd)
	if err != nil {
		return err
	}

	name, err := koremake.Run(cmd.Context(), cfg, output.Logger, runOptions...)
	if err != nil {
		return err
	}

	if name == "" {
		return &exitError{code: codes.ExitFailure, err: errors.New(codes.GetErrorMessage(codes.ExitFailure))}
	}

	output.Debug("Run finished", "solution", name)

	return nil
}
