package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/philipp01105/logtree/core"
)

func newLevelsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "levels",
		Short: "List the standard levels in ascending order",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			for _, l := range core.Levels() {
				fmt.Fprintf(cmd.OutOrStdout(), "%d %s\n", l.Rank(), l.Name())
			}
			return nil
		},
	}
}
