package cli

import (
	"github.com/spf13/cobra"

	"github.com/matzehuels/basecanvas/pkg/base"
	errs "github.com/matzehuels/basecanvas/pkg/errors"
)

// outlineCommand creates the outline command for outlining bases of a document.
func (c *CLI) outlineCommand() *cobra.Command {
	var all bool

	cmd := &cobra.Command{
		Use:   "outline FILE [BASE_ID...]",
		Short: "Outline bases of a drawing",
		Long: `Outline bases of an existing drawing document and save it.

A base may be outlined more than once; each call adds a new outline.`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			path, ids := args[0], args[1:]
			if len(ids) == 0 && !all {
				return errs.New(errs.ErrCodeInvalidInput, "no bases given (pass BASE_ID... or --all)")
			}

			d, err := c.openDrawing(ctx, path)
			if err != nil {
				return err
			}

			var targets []*base.Nucleobase
			if all {
				for b := range d.Bases() {
					targets = append(targets, b)
				}
			} else {
				for _, id := range ids {
					b, err := lookupBase(d, id)
					if err != nil {
						return err
					}
					targets = append(targets, b)
				}
			}

			for _, b := range targets {
				o := d.Outline(b)
				printDetail(c.out, "%s %s", b.Text, o.ID())
			}
			if err := c.saveDrawing(ctx, d, path); err != nil {
				return err
			}
			printSuccess(c.out, "Outlined %d bases", len(targets))
			return nil
		},
	}

	cmd.Flags().BoolVar(&all, "all", false, "outline every base")
	return cmd
}
