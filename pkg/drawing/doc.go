// Package drawing provides a concrete drawing: an SVG tree, the bases placed
// in it and the outlines bound to those bases.
//
// # Editing
//
//	d := drawing.New()
//	g := base.New("G", 98.4, -1002.34)
//	d.AddBase(g)
//	o := d.Outline(g)      // circle with d.Defaults applied
//	g.MoveTo(1057, -812)   // label and circle follow
//
// Each base is drawn as a <text> element whose "id" is the base id. Outlines
// are <circle> elements created by [outline.Outlining].
//
// # Documents
//
// [Drawing.Save] produces a [Document]: the SVG text, one record per base and
// one saved reference per outline. [Load] rebuilds the drawing, reattaching
// each base to its text element and restoring each outline with
// [outline.Deserialized]. An outline that cannot be restored is skipped and
// logged, or aborts the load when [WithStrictLoad] is set. [ReadJSON],
// [WriteJSON], [ImportJSON] and [ExportJSON] move documents through JSON.
//
// Drawings are not safe for concurrent use.
package drawing
