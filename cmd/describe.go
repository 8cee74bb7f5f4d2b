package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/Norgate-AV/koremake/internal/koremake"
)

var describeCmd = &cobra.Command{
	Use:          "describe",
	Short:        "Print the resolved project as YAML",
	Long:         `Resolve the project in --from for --target and print its name, dialect, exporter and files without exporting anything.`,
	RunE:         runDescribe,
	SilenceUsage: true,
	Args:         cobra.NoArgs,
}

func runDescribe(cmd *cobra.Command, _ []string) error {
	cfg, err := loadConfig(cmd)
	if err != nil {
		return err
	}

	d, err := koremake.Describe(cfg, runOptions...)
	if err != nil {
		return err
	}

	encoder := yaml.NewEncoder(cmd.OutOrStdout())
	encoder.SetIndent(2)

	err = encoder.Encode(d)
	if closeErr := encoder.Close(); closeErr != nil && err == nil {
		err = closeErr
	}
	if err != nil {
		return fmt.Errorf("encoding description: %w", err)
	}

	return nil
}
