package commands

import (
	"strconv"

	"github.com/spf13/cobra"
	"go.trai.ch/zerr"
)

func (c *CLI) newLookupCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "lookup <job-index>",
		Short: "Resolve a job's cache entry and print its result record",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			jobIndex, err := strconv.Atoi(args[0])
			if err != nil {
				return zerr.Wrap(err, "job index must be an integer")
			}
			plan, _ := cmd.Flags().GetString("plan")
			return c.app.Lookup(cmd.Context(), plan, jobIndex, cmd.OutOrStdout())
		},
	}
}
