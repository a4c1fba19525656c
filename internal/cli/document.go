package cli

import (
	"context"
	"fmt"
	"strconv"
	"strings"

	"github.com/matzehuels/basecanvas/pkg/base"
	"github.com/matzehuels/basecanvas/pkg/drawing"
	errs "github.com/matzehuels/basecanvas/pkg/errors"
)

// drawingOptions returns the drawing options derived from config and flags.
func (c *CLI) drawingOptions(ctx context.Context) []drawing.Option {
	opts := []drawing.Option{
		drawing.WithLogger(loggerFromContext(ctx)),
		drawing.WithDefaults(c.cfg.Defaults()),
	}
	if c.strict {
		opts = append(opts, drawing.WithStrictLoad())
	}
	return opts
}

// openDrawing loads the document at path.
func (c *CLI) openDrawing(ctx context.Context, path string) (*drawing.Drawing, error) {
	if err := errs.ValidatePath(path); err != nil {
		return nil, err
	}
	logger := loggerFromContext(ctx)
	logger.Debug("loading drawing", "path", path)

	prog := newProgress(logger)
	d, err := drawing.ImportJSON(ctx, path, c.drawingOptions(ctx)...)
	if err != nil {
		return nil, err
	}
	prog.done(fmt.Sprintf("Loaded %s", path))
	return d, nil
}

// saveDrawing writes d to path.
func (c *CLI) saveDrawing(ctx context.Context, d *drawing.Drawing, path string) error {
	if err := errs.ValidatePath(path); err != nil {
		return err
	}
	if err := drawing.ExportJSON(ctx, d, path); err != nil {
		return err
	}
	loggerFromContext(ctx).Debug("saved drawing", "path", path, "bases", d.NumBases(), "outlines", len(d.Outlines()))
	return nil
}

// lookupBase returns the base with the given id or a NOT_FOUND error.
func lookupBase(d *drawing.Drawing, id string) (*base.Nucleobase, error) {
	b, ok := d.Base(id)
	if !ok {
		return nil, errs.New(errs.ErrCodeNotFound, "base %q not found", id)
	}
	return b, nil
}

// parseBaseSpec parses a base given as TEXT:X,Y (e.g. "G:10,-2.5").
func parseBaseSpec(spec string) (text string, x, y float64, err error) {
	i := strings.LastIndex(spec, ":")
	if i < 0 {
		return "", 0, 0, errs.New(errs.ErrCodeInvalidInput, "base %q: want TEXT:X,Y", spec)
	}
	text = spec[:i]
	if err := errs.ValidateBaseText(text); err != nil {
		return "", 0, 0, err
	}

	xs, ys, ok := strings.Cut(spec[i+1:], ",")
	if !ok {
		return "", 0, 0, errs.New(errs.ErrCodeInvalidInput, "base %q: want TEXT:X,Y", spec)
	}
	if x, y, err = parseCoordinates(xs, ys); err != nil {
		return "", 0, 0, err
	}
	return text, x, y, nil
}

func parseCoordinates(xs, ys string) (x, y float64, err error) {
	if x, err = strconv.ParseFloat(strings.TrimSpace(xs), 64); err != nil {
		return 0, 0, errs.Wrap(errs.ErrCodeInvalidInput, err, "x coordinate %q", xs)
	}
	if y, err = strconv.ParseFloat(strings.TrimSpace(ys), 64); err != nil {
		return 0, 0, errs.Wrap(errs.ErrCodeInvalidInput, err, "y coordinate %q", ys)
	}
	return x, y, nil
}
