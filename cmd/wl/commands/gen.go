package commands

import (
	"github.com/spf13/cobra"
	"go.trai.ch/wl/internal/app"
)

func (c *CLI) newGenCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "gen",
		Short: "Generate workload processes based on the plan",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			configPath, _ := cmd.Flags().GetString("config")
			cacheDir, _ := cmd.Flags().GetString("cache-dir")
			trace, _ := cmd.Flags().GetBool("trace")

			return c.app.Generate(cmd.Context(), app.GenerateOptions{
				ConfigPath: configPath,
				CacheDir:   cacheDir,
				Trace:      trace,
			})
		},
	}
	cmd.Flags().StringP("config", "c", "config.yaml", "Path to the plan file")
	cmd.Flags().String("cache-dir", "", "Cache directory for downloads and builds (default ./"+app.DefaultCacheDirName+")")
	cmd.Flags().Bool("trace", false, "Print a per-step timing summary after the run")
	return cmd
}
