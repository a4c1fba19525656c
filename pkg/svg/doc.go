// Package svg provides a minimal, mutable SVG element tree.
//
// The tree is the rendered side of a drawing: outlines and bases write their
// visual state into element attributes, and saved drawings restore the tree
// from its XML text. Only what the drawing needs is modelled:
//
//   - Elements with a tag name, ordered attributes, children and text
//   - Lookup by the "id" attribute anywhere in a subtree ([Element.FindByID])
//   - XML encoding ([Element.Encode]) and decoding ([Decode])
//
// Attribute values are opaque strings. Nothing in this package validates
// them against the SVG attribute grammar.
//
// Namespaces are kept by name only: a decoded "xmlns" declaration survives as
// an ordinary attribute, and prefixed attributes such as "xlink:href" keep
// their prefix in the attribute name.
package svg
