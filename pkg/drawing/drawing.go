package drawing

import (
	"iter"
	"slices"
	"strconv"

	"github.com/charmbracelet/log"

	"github.com/matzehuels/basecanvas/pkg/base"
	"github.com/matzehuels/basecanvas/pkg/observability"
	"github.com/matzehuels/basecanvas/pkg/outline"
	"github.com/matzehuels/basecanvas/pkg/svg"
)

// Outline is an outline bound to a base of a drawing.
type Outline = outline.Outline[*base.Nucleobase]

// Drawing holds an SVG tree, its bases and the outlines bound to them.
type Drawing struct {
	// Defaults is read every time a base is outlined. Changing it affects
	// outlines created afterwards only.
	Defaults outline.Defaults

	root     *svg.Element
	bases    []*base.Nucleobase
	labels   map[*base.Nucleobase]*label
	outlines []*Outline
	logger   *log.Logger
	strict   bool
	newID    func() string
}

type label struct {
	node        *svg.Element
	unsubscribe func()
}

// Option configures a Drawing.
type Option func(*Drawing)

// WithLogger sets the logger used while loading documents.
func WithLogger(l *log.Logger) Option { return func(d *Drawing) { d.logger = l } }

// WithDefaults sets the outline defaults table.
func WithDefaults(defaults outline.Defaults) Option {
	return func(d *Drawing) { d.Defaults = defaults }
}

// WithIDGenerator sets the source of new outline ids.
func WithIDGenerator(fn func() string) Option { return func(d *Drawing) { d.newID = fn } }

// WithStrictLoad makes Load fail on the first outline it cannot restore
// instead of skipping it.
func WithStrictLoad() Option { return func(d *Drawing) { d.strict = true } }

// New returns an empty drawing.
func New(opts ...Option) *Drawing {
	return newDrawing(svg.NewDocument(), opts...)
}

func newDrawing(root *svg.Element, opts ...Option) *Drawing {
	d := &Drawing{
		root:   root,
		labels: make(map[*base.Nucleobase]*label),
		logger: log.Default(),
		newID:  outline.NewID,
	}
	for _, opt := range opts {
		opt(d)
	}
	if d.Defaults == nil {
		d.Defaults = outline.DefaultValues()
	}
	return d
}

// DOMNode returns the root <svg> element.
func (d *Drawing) DOMNode() *svg.Element { return d.root }

// Bases yields the bases in insertion order.
func (d *Drawing) Bases() iter.Seq[*base.Nucleobase] { return slices.Values(d.bases) }

// NumBases returns the number of bases.
func (d *Drawing) NumBases() int { return len(d.bases) }

// Base returns the first base with the given id.
func (d *Drawing) Base(id string) (*base.Nucleobase, bool) {
	for _, b := range d.bases {
		if b.ID() == id {
			return b, true
		}
	}
	return nil, false
}

// AddBase places b in the drawing and draws its text label.
func (d *Drawing) AddBase(b *base.Nucleobase) {
	el := svg.NewElement(svg.TagText)
	el.SetAttr("id", b.ID())
	el.SetAttr("text-anchor", "middle")
	el.SetAttr("dominant-baseline", "central")
	el.Text = b.Text
	d.root.Append(el)
	d.attach(b, el)
	placeLabel(el, b)
}

// attach binds b to its label element and keeps the label on the base.
func (d *Drawing) attach(b *base.Nucleobase, el *svg.Element) {
	d.bases = append(d.bases, b)
	d.labels[b] = &label{
		node:        el,
		unsubscribe: b.OnMove(func() { placeLabel(el, b) }),
	}
}

func placeLabel(el *svg.Element, b *base.Nucleobase) {
	el.SetAttr("x", strconv.FormatFloat(b.X(), 'f', -1, 64))
	el.SetAttr("y", strconv.FormatFloat(b.Y(), 'f', -1, 64))
}

// RemoveBase removes b, its label and every outline bound to it.
// It reports whether b was part of the drawing.
func (d *Drawing) RemoveBase(b *base.Nucleobase) bool {
	i := slices.Index(d.bases, b)
	if i < 0 {
		return false
	}
	for _, o := range d.OutlinesOf(b) {
		d.RemoveOutline(o)
	}
	if l, ok := d.labels[b]; ok {
		l.unsubscribe()
		removeElement(d.root, l.node)
		delete(d.labels, b)
	}
	d.bases = slices.Delete(d.bases, i, i+1)
	return true
}

// Outline creates an outline for b using the drawing's current defaults and
// adds its circle to the tree.
func (d *Drawing) Outline(b *base.Nucleobase) *Outline {
	o := outline.Outlining(b, outline.WithDefaults(d.Defaults), outline.WithIDGenerator(d.newID))
	d.root.Append(o.DOMNode())
	d.outlines = append(d.outlines, o)
	observability.Outline().OnOutlineCreated(o.ID(), b.ID())
	return o
}

// Outlines returns the outlines in creation order.
func (d *Drawing) Outlines() []*Outline { return slices.Clone(d.outlines) }

// OutlinesOf returns the outlines bound to b.
func (d *Drawing) OutlinesOf(b *base.Nucleobase) []*Outline {
	var out []*Outline
	for _, o := range d.outlines {
		if o.Owner() == b {
			out = append(out, o)
		}
	}
	return out
}

// RemoveOutline stops o following its base and removes its circle.
// It reports whether o was part of the drawing.
func (d *Drawing) RemoveOutline(o *Outline) bool {
	i := slices.Index(d.outlines, o)
	if i < 0 {
		return false
	}
	o.Close()
	removeElement(d.root, o.DOMNode())
	d.outlines = slices.Delete(d.outlines, i, i+1)
	observability.Outline().OnOutlineRemoved(o.ID())
	return true
}

// removeElement detaches el from wherever it sits below root.
func removeElement(root, el *svg.Element) {
	root.Walk(func(parent *svg.Element) bool {
		return !parent.Remove(el)
	})
}
