package svg

import "slices"

// Namespace is the SVG XML namespace written on document roots.
const Namespace = "http://www.w3.org/2000/svg"

// Common element names.
const (
	TagSVG    = "svg"
	TagCircle = "circle"
	TagText   = "text"
	TagGroup  = "g"
)

// Attr is a single name/value attribute pair.
type Attr struct {
	Name  string
	Value string
}

// Element is a node in an SVG tree.
type Element struct {
	Name     string
	Text     string
	Children []*Element

	attrs []Attr
}

// NewElement returns an empty element with the given tag name.
func NewElement(name string) *Element {
	return &Element{Name: name}
}

// NewDocument returns an empty <svg> root carrying the SVG namespace.
func NewDocument() *Element {
	root := NewElement(TagSVG)
	root.SetAttr("xmlns", Namespace)
	return root
}

// Attr returns the value of the named attribute, or "" when absent.
func (e *Element) Attr(name string) string {
	v, _ := e.LookupAttr(name)
	return v
}

// LookupAttr returns the value of the named attribute and whether it is set.
func (e *Element) LookupAttr(name string) (string, bool) {
	for _, a := range e.attrs {
		if a.Name == name {
			return a.Value, true
		}
	}
	return "", false
}

// SetAttr sets the named attribute, keeping the position of an existing one.
func (e *Element) SetAttr(name, value string) {
	for i := range e.attrs {
		if e.attrs[i].Name == name {
			e.attrs[i].Value = value
			return
		}
	}
	e.attrs = append(e.attrs, Attr{Name: name, Value: value})
}

// RemoveAttr deletes the named attribute if present.
func (e *Element) RemoveAttr(name string) {
	e.attrs = slices.DeleteFunc(e.attrs, func(a Attr) bool { return a.Name == name })
}

// Attrs returns a copy of the attributes in insertion order.
func (e *Element) Attrs() []Attr {
	return slices.Clone(e.attrs)
}

// ID returns the element's "id" attribute.
func (e *Element) ID() string { return e.Attr("id") }

// Append adds children at the end of e.
func (e *Element) Append(children ...*Element) {
	e.Children = append(e.Children, children...)
}

// Remove detaches child from e. It reports whether child was a direct child.
func (e *Element) Remove(child *Element) bool {
	i := slices.Index(e.Children, child)
	if i < 0 {
		return false
	}
	e.Children = slices.Delete(e.Children, i, i+1)
	return true
}

// Walk visits e and its descendants depth-first in document order.
// Returning false from fn stops the walk.
func (e *Element) Walk(fn func(*Element) bool) bool {
	if !fn(e) {
		return false
	}
	for _, c := range e.Children {
		if !c.Walk(fn) {
			return false
		}
	}
	return true
}

// FindByID returns the first element in document order, e included, whose
// "id" attribute equals id. An empty id never matches.
func (e *Element) FindByID(id string) *Element {
	if id == "" {
		return nil
	}
	var found *Element
	e.Walk(func(el *Element) bool {
		if el.ID() == id {
			found = el
			return false
		}
		return true
	})
	return found
}
