package cli

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"
)

// inspectCommand creates the inspect command for listing a document's contents.
func (c *CLI) inspectCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "inspect FILE",
		Short: "List bases and outline references of a drawing",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			d, err := c.openDrawing(cmd.Context(), args[0])
			if err != nil {
				return err
			}

			printTitle(c.out, "Bases")
			for b := range d.Bases() {
				pos := fmt.Sprintf("(%s, %s)",
					strconv.FormatFloat(b.X(), 'f', -1, 64),
					strconv.FormatFloat(b.Y(), 'f', -1, 64))
				printKeyValue(c.out, b.Text, b.ID()+" "+pos)
			}

			printTitle(c.out, "Outlines")
			for _, o := range d.Outlines() {
				ref, err := o.Serialized()
				if err != nil {
					printWarning(c.out, "%v", err)
					continue
				}
				printKeyValue(c.out, o.Owner().Text, ref.ID)
				printDetail(c.out, "r=%s stroke=%s", o.GetAttribute("r"), o.GetAttribute("stroke"))
			}

			printStats(c.out, d.NumBases(), len(d.Outlines()))
			return nil
		},
	}
}
