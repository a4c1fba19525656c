// Package outline binds a circular marker in an SVG tree to the base it
// outlines, and saves and restores that binding.
//
// # Binding
//
// An [Outline] pairs one circle element with one owner. Constructing it with
// [New] subscribes to the owner's move notifications: every time the owner
// moves, the circle's "cx" and "cy" attributes are rewritten with the owner's
// coordinates as plain decimal text ("98.4", "-1002.34", "1057"). Nothing is
// synchronized at construction time. [Outline.Close] removes the subscription.
//
// # Creating outlines
//
// [Outlining] creates a fresh circle for an owner, gives it a unique "id"
// attribute, positions it on the owner and applies the circle entry of a
// [Defaults] table:
//
//	d := outline.DefaultValues()
//	d[outline.KindCircle]["stroke"] = "#ff0000"
//	o := outline.Outlining(b, outline.WithDefaults(d))
//
// The table is read when Outlining runs. Changing it later affects only
// outlines created afterwards.
//
// # Saving and restoring
//
// [Outline.Serialized] returns a [Reference], the pair of circle id and owner
// id. [Deserialized] rebuilds an outline from a decoded reference by finding
// the circle in a drawing's SVG tree and the owner among its bases:
//
//	ref, err := o.Serialized()
//	// ... persist ref as {"id": ..., "ownerID": ...} ...
//	restored, err := outline.Deserialized(saved, drawing)
//
// References written by older versions name the circle id "circleId". That
// field is read only when "id" is absent.
//
// Failures carry codes from [github.com/matzehuels/basecanvas/pkg/errors]
// and wrap one of the sentinel errors of this package, so callers can test
// for a specific condition with errors.Is.
package outline
