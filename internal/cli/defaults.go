package cli

import (
	"maps"
	"slices"

	"github.com/spf13/cobra"
)

// defaultsCommand creates the defaults command, which prints the outline
// defaults after config overrides are applied.
func (c *CLI) defaultsCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "defaults",
		Short: "Print the effective outline defaults",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			defaults := c.cfg.Defaults()
			for _, kind := range slices.Sorted(maps.Keys(defaults)) {
				printTitle(c.out, string(kind))
				attrs := defaults[kind]
				for _, name := range slices.Sorted(maps.Keys(attrs)) {
					printKeyValue(c.out, name, attrs[name])
				}
			}
			return nil
		},
	}
}
