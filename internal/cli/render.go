package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	errs "github.com/matzehuels/basecanvas/pkg/errors"
)

// renderCommand creates the render command for writing a document's SVG tree.
func (c *CLI) renderCommand() *cobra.Command {
	var output string

	cmd := &cobra.Command{
		Use:   "render FILE",
		Short: "Write the SVG of a drawing",
		Long:  `Write the SVG tree of a drawing document to a file, or to stdout when -o is not given.`,
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			d, err := c.openDrawing(cmd.Context(), args[0])
			if err != nil {
				return err
			}

			if output == "" {
				return d.DOMNode().Encode(c.out)
			}
			if err := errs.ValidatePath(output); err != nil {
				return err
			}

			f, err := os.Create(output)
			if err != nil {
				return fmt.Errorf("create %s: %w", output, err)
			}
			if err := d.DOMNode().Encode(f); err != nil {
				f.Close()
				return err
			}
			if err := f.Close(); err != nil {
				return err
			}

			printSuccess(c.out, "Rendered SVG")
			printFile(c.out, output)
			return nil
		},
	}

	cmd.Flags().StringVarP(&output, "output", "o", "", "output SVG path (default stdout)")
	return cmd
}
