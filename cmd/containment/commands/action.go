package commands

import (
	"context"
	"strings"

	"github.com/spf13/cobra"
)

// newActionCmd builds an argument-less command. Underscored names also
// answer to their dashed spelling.
func (c *CLI) newActionCmd(use, short string, action func(context.Context) error) *cobra.Command {
	cmd := &cobra.Command{
		Use:   use,
		Short: short,
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return action(cmd.Context())
		},
	}
	if dashed := strings.ReplaceAll(use, "_", "-"); dashed != use {
		cmd.Aliases = []string{dashed}
	}
	return cmd
}
