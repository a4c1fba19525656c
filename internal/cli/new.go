package cli

import (
	"github.com/spf13/cobra"

	"github.com/matzehuels/basecanvas/pkg/base"
	"github.com/matzehuels/basecanvas/pkg/drawing"
	errs "github.com/matzehuels/basecanvas/pkg/errors"
)

// newOptions holds options for the new command.
type newOptions struct {
	output  string
	bases   []string
	outline bool
}

// newCommand creates the new command for creating a drawing document.
func (c *CLI) newCommand() *cobra.Command {
	opts := newOptions{}

	cmd := &cobra.Command{
		Use:   "new",
		Short: "Create a drawing document",
		Long: `Create a drawing document from base specs.

Each base is given as TEXT:X,Y. With --outline every base gets a circular
outline drawn with the configured defaults.`,
		Example: `  basecanvas new -o hairpin.json --base G:10,20 --base C:30,20 --outline`,
		Args:    cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return c.runNew(cmd, opts)
		},
	}

	cmd.Flags().StringVarP(&opts.output, "output", "o", "", "output document path (required)")
	cmd.Flags().StringArrayVar(&opts.bases, "base", nil, "base as TEXT:X,Y (repeatable)")
	cmd.Flags().BoolVar(&opts.outline, "outline", false, "outline every base")
	_ = cmd.MarkFlagRequired("output")

	return cmd
}

func (c *CLI) runNew(cmd *cobra.Command, opts newOptions) error {
	ctx := cmd.Context()
	if len(opts.bases) == 0 {
		return errs.New(errs.ErrCodeInvalidInput, "at least one --base is required")
	}

	d := drawing.New(c.drawingOptions(ctx)...)
	for _, spec := range opts.bases {
		text, x, y, err := parseBaseSpec(spec)
		if err != nil {
			return err
		}
		b := base.New(text, x, y)
		d.AddBase(b)
		if opts.outline {
			d.Outline(b)
		}
	}

	if err := c.saveDrawing(ctx, d, opts.output); err != nil {
		return err
	}

	printSuccess(c.out, "Created drawing")
	printStats(c.out, d.NumBases(), len(d.Outlines()))
	printFile(c.out, opts.output)
	printNextStep(c.out, "Inspect it", "basecanvas inspect "+opts.output)
	return nil
}
