package cmd

import (
	"fmt"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/Norgate-AV/koremake/internal/cache"
)

var cacheCmd = &cobra.Command{
	Use:   "cache",
	Short: "Manage the shader cache",
	Long:  `Inspect or clear the shader cache kept in the export directory.`,
}

var cacheStatsCmd = &cobra.Command{
	Use:          "stats",
	Short:        "Show shader cache statistics",
	RunE:         runCacheStats,
	SilenceUsage: true,
	Args:         cobra.NoArgs,
}

var cacheClearCmd = &cobra.Command{
	Use:          "clear",
	Short:        "Remove every cached shader",
	RunE:         runCacheClear,
	SilenceUsage: true,
	Args:         cobra.NoArgs,
}

func init() {
	cacheCmd.AddCommand(cacheStatsCmd, cacheClearCmd)
}

func openCache(cmd *cobra.Command) (*cache.Cache, error) {
	to, err := cmd.Flags().GetString("to")
	if err != nil {
		return nil, err
	}

	abs, err := filepath.Abs(to)
	if err != nil {
		return nil, err
	}

	return cache.New(filepath.Join(abs, cache.DefaultCacheDir))
}

func runCacheStats(cmd *cobra.Command, _ []string) error {
	c, err := openCache(cmd)
	if err != nil {
		return err
	}
	defer c.Close()

	count, size, err := c.Stats()
	if err != nil {
		return fmt.Errorf("reading cache stats: %w", err)
	}

	fmt.Fprintf(cmd.OutOrStdout(), "Entries: %d\nSize: %d bytes\n", count, size)

	return nil
}

func runCacheClear(cmd *cobra.Command, _ []string) error {
	c, err := openCache(cmd)
	if err != nil {
		return err
	}
	defer c.Close()

	if err := c.Clear(); err != nil {
		return fmt.Errorf("clearing cache: %w", err)
	}

	fmt.Fprintln(cmd.OutOrStdout(), "Shader cache cleared.")

	return nil
}
