package outline

import (
	"strconv"

	"github.com/matzehuels/basecanvas/pkg/svg"
)

// Owner is a positioned entity an outline can be bound to.
type Owner interface {
	// ID returns the owner's stable identifier.
	ID() string
	X() float64
	Y() float64
	// OnMove registers fn to run synchronously after every position change
	// and returns a function that removes it.
	OnMove(fn func()) (unsubscribe func())
}

// Outline binds one circle element to the owner it outlines.
//
// The element and the owner are fixed for the lifetime of the outline. Only
// their own state changes: element attributes and owner position.
type Outline[B Owner] struct {
	node        *svg.Element
	owner       B
	unsubscribe func()
}

// New binds node to owner. From now on every move of owner rewrites the
// "cx" and "cy" attributes of node. The attributes are not touched here;
// they must already reflect the owner's position or be set by the caller.
func New[B Owner](node *svg.Element, owner B) *Outline[B] {
	o := &Outline[B]{node: node, owner: owner}
	o.unsubscribe = owner.OnMove(o.follow)
	return o
}

func (o *Outline[B]) follow() {
	o.node.SetAttr("cx", formatCoordinate(o.owner.X()))
	o.node.SetAttr("cy", formatCoordinate(o.owner.Y()))
}

// DOMNode returns the circle element of the outline.
func (o *Outline[B]) DOMNode() *svg.Element { return o.node }

// Owner returns the entity the outline is bound to.
func (o *Outline[B]) Owner() B { return o.owner }

// ID returns the "id" attribute of the circle element.
func (o *Outline[B]) ID() string { return o.node.ID() }

// Close stops following the owner. The element keeps its last position.
// Calling Close more than once is a no-op.
func (o *Outline[B]) Close() {
	if o.unsubscribe != nil {
		o.unsubscribe()
		o.unsubscribe = nil
	}
}

// formatCoordinate renders v as plain decimal text without exponent or unit.
func formatCoordinate(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}
