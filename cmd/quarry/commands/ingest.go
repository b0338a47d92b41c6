package commands

import (
	"github.com/spf13/cobra"
)

func (c *CLI) newIngestCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "ingest",
		Short: "Store a finished build's outputs and register its cache entries",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			plan, _ := cmd.Flags().GetString("plan")
			fromDir, _ := cmd.Flags().GetString("from")
			return c.app.Ingest(cmd.Context(), plan, fromDir)
		},
	}
	cmd.Flags().String("from", ".", "Directory containing the build outputs")
	return cmd
}
