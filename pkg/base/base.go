// Package base provides the positioned entities that outlines are bound to.
package base

import (
	"github.com/google/uuid"

	"github.com/matzehuels/basecanvas/pkg/geom"
)

// Nucleobase is a single base in a drawing: a stable identifier, the text it
// displays and a movable center point.
type Nucleobase struct {
	id     string
	Text   string
	center geom.Point
}

// New returns a base with a fresh identifier centered at (x, y).
func New(text string, x, y float64) *Nucleobase {
	return WithID(uuid.NewString(), text, x, y)
}

// WithID returns a base with the given identifier, as when restoring a
// saved drawing.
func WithID(id, text string, x, y float64) *Nucleobase {
	b := &Nucleobase{id: id, Text: text}
	b.center.MoveTo(x, y)
	return b
}

// ID returns the base's stable identifier.
func (b *Nucleobase) ID() string { return b.id }

// CenterPoint returns the base's center. Moving it moves the base.
func (b *Nucleobase) CenterPoint() *geom.Point { return &b.center }

// X returns the horizontal coordinate of the center.
func (b *Nucleobase) X() float64 { return b.center.X() }

// Y returns the vertical coordinate of the center.
func (b *Nucleobase) Y() float64 { return b.center.Y() }

// OnMove registers fn to run whenever the center moves.
func (b *Nucleobase) OnMove(fn func()) (unsubscribe func()) {
	return b.center.OnMove(fn)
}

// MoveTo moves the center to (x, y).
func (b *Nucleobase) MoveTo(x, y float64) { b.center.MoveTo(x, y) }
