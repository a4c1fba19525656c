package cli

import (
	"github.com/spf13/cobra"
)

// moveCommand creates the move command. Outlines and labels of the moved
// base follow it before the document is saved.
func (c *CLI) moveCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:     "move FILE BASE_ID X Y",
		Short:   "Move a base",
		Example: `  basecanvas move hairpin.json id-6f1c... 1057 -812`,
		Args:    cobra.ExactArgs(4),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			x, y, err := parseCoordinates(args[2], args[3])
			if err != nil {
				return err
			}

			d, err := c.openDrawing(ctx, args[0])
			if err != nil {
				return err
			}
			b, err := lookupBase(d, args[1])
			if err != nil {
				return err
			}

			b.MoveTo(x, y)
			if err := c.saveDrawing(ctx, d, args[0]); err != nil {
				return err
			}

			printSuccess(c.out, "Moved %s to (%s, %s)", b.Text, args[2], args[3])
			printDetail(c.out, "%d outlines followed", len(d.OutlinesOf(b)))
			return nil
		},
	}

	// Negative coordinates must not be read as shorthand flags.
	cmd.Flags().SetInterspersed(false)
	return cmd
}
