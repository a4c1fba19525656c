package outline

import (
	"maps"

	"github.com/google/uuid"

	"github.com/matzehuels/basecanvas/pkg/svg"
)

// Kind names the element type an outline is drawn with.
type Kind string

// KindCircle is the only kind of outline.
const KindCircle Kind = svg.TagCircle

// Attributes maps attribute names to values.
type Attributes map[string]string

// Defaults holds the attributes applied to newly created outlines, by kind.
type Defaults map[Kind]Attributes

// DefaultValues returns a fresh table holding the documented defaults.
// Callers own the returned table and may change it freely.
func DefaultValues() Defaults {
	return Defaults{
		KindCircle: {
			"r":              "6.2",
			"stroke":         "#808080",
			"stroke-width":   "1",
			"stroke-opacity": "1",
			"fill":           "#808080",
			"fill-opacity":   "0",
		},
	}
}

// Clone returns a deep copy of d.
func (d Defaults) Clone() Defaults {
	out := make(Defaults, len(d))
	for k, attrs := range d {
		out[k] = maps.Clone(attrs)
	}
	return out
}

// NewID returns a new process-unique element identifier. It is a UUID with
// an "id-" prefix so that it is also a valid XML name.
func NewID() string {
	return "id-" + uuid.NewString()
}

// Option configures [Outlining].
type Option func(*factory)

type factory struct {
	defaults Defaults
	newID    func() string
}

// WithDefaults makes Outlining read attribute defaults from d instead of
// [DefaultValues]. The table is read at call time.
func WithDefaults(d Defaults) Option { return func(f *factory) { f.defaults = d } }

// WithIDGenerator overrides the identifier source used for new elements.
func WithIDGenerator(fn func() string) Option { return func(f *factory) { f.newID = fn } }

// Outlining creates a new circle for owner and binds it. The circle gets a
// unique id, is positioned at the owner's current coordinates and receives
// the circle defaults.
func Outlining[B Owner](owner B, opts ...Option) *Outline[B] {
	f := factory{newID: NewID}
	for _, opt := range opts {
		opt(&f)
	}
	if f.defaults == nil {
		f.defaults = DefaultValues()
	}

	node := svg.NewElement(string(KindCircle))
	node.SetAttr("id", f.newID())
	node.SetAttr("cx", formatCoordinate(owner.X()))
	node.SetAttr("cy", formatCoordinate(owner.Y()))

	o := New(node, owner)
	o.SetAttributes(f.defaults[KindCircle])
	return o
}
