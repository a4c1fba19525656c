// Package pkg provides the core libraries for basecanvas.
//
// # Overview
//
// Basecanvas draws bases (positioned letters) on an SVG canvas and binds
// circular outlines to them. An outline follows its base wherever it moves,
// and survives a save and load round trip as a small reference. The pkg
// directory is organized into these areas:
//
//  1. [svg] and [geom] - The element tree and observable points
//  2. [base] - Positioned owner entities
//  3. [outline] - Outlines, their defaults and reference resolution
//  4. [drawing] - The container tying the above together, plus JSON documents
//  5. [config], [errors], [observability], [buildinfo] - Supporting infrastructure
//
// # Data Flow
//
//	config.toml ──→ [config] ──→ outline.Defaults
//	                                  ↓
//	base.New ──→ drawing.AddBase ──→ drawing.Outline
//	                                  ↓
//	                drawing.Save ──→ Document JSON ──→ drawing.Load
//	                                                        ↓
//	                                           outline.Deserialized
//
// # Quick Start
//
//	d := drawing.New()
//	g := base.New("G", 10, 20)
//	d.AddBase(g)
//	o := d.Outline(g)
//	g.MoveTo(30, 40) // o's cx/cy are now "30" and "40"
//	_ = drawing.ExportJSON(ctx, d, "hairpin.json")
package pkg
