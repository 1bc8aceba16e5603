package commands

import "github.com/spf13/cobra"

func (c *CLI) newSamplesCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "samples",
		Short: "Write the bundled sample workloads",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			output, _ := cmd.Flags().GetString("output")
			return c.app.Samples(output)
		},
	}
	cmd.Flags().StringP("output", "o", "samples", "Output directory for samples")
	return cmd
}
