package outline

import (
	"iter"
	"slices"

	"github.com/matzehuels/basecanvas/pkg/base"
	"github.com/matzehuels/basecanvas/pkg/svg"
)

// testDrawing is a minimal drawing over a root element and a base slice.
type testDrawing struct {
	root  *svg.Element
	bases []*base.Nucleobase
}

func newTestDrawing(bases ...*base.Nucleobase) *testDrawing {
	return &testDrawing{root: svg.NewDocument(), bases: bases}
}

func (d *testDrawing) DOMNode() *svg.Element { return d.root }

func (d *testDrawing) Bases() iter.Seq[*base.Nucleobase] { return slices.Values(d.bases) }

// add outlines b and attaches the circle to the drawing.
func (d *testDrawing) add(b *base.Nucleobase) *Outline[*base.Nucleobase] {
	o := Outlining(b)
	d.root.Append(o.DOMNode())
	return o
}
