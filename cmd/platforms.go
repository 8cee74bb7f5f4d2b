package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/Norgate-AV/koremake/internal/output"
	"github.com/Norgate-AV/koremake/internal/platform"
)

var platformsCmd = &cobra.Command{
	Use:          "platforms",
	Short:        "List supported target platforms",
	RunE:         runPlatforms,
	SilenceUsage: true,
	Args:         cobra.NoArgs,
}

func runPlatforms(cmd *cobra.Command, _ []string) error {
	tbl := output.NewTable("ID", "NAME", "DIALECT")
	for _, p := range platform.All() {
		tbl.Row(string(p), platform.DisplayName(p), platform.ShaderDialect(p, platform.GraphicsDefault))
	}

	_, err := fmt.Fprintln(cmd.OutOrStdout(), tbl.String())
	return err
}
