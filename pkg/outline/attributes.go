package outline

import (
	"maps"
	"slices"

	"github.com/mitchellh/mapstructure"

	errs "github.com/matzehuels/basecanvas/pkg/errors"
)

// GetAttribute returns the named attribute of the circle element.
func (o *Outline[B]) GetAttribute(name string) string {
	return o.node.Attr(name)
}

// SetAttribute sets the named attribute of the circle element. The value is
// passed through unchecked.
func (o *Outline[B]) SetAttribute(name, value string) {
	o.node.SetAttr(name, value)
}

// SetAttributes sets every attribute in attrs. New attributes are added in
// name order so the encoded element is stable.
func (o *Outline[B]) SetAttributes(attrs Attributes) {
	for _, name := range slices.Sorted(maps.Keys(attrs)) {
		o.node.SetAttr(name, attrs[name])
	}
}

// Values is the set of outline values that can be applied in one call.
type Values struct {
	Attributes Attributes `mapstructure:"attributes"`
}

// Set applies a values object such as one decoded from JSON:
//
//	{"attributes": {"stroke": "#bca311", "fill-opacity": 0.16}}
//
// Missing fields are left alone, so an empty object is a no-op. Scalar
// attribute values are converted to text.
func (o *Outline[B]) Set(values map[string]any) error {
	var v Values
	dec, err := mapstructure.NewDecoder(&mapstructure.DecoderConfig{
		WeaklyTypedInput: true,
		Result:           &v,
	})
	if err != nil {
		return errs.Wrap(errs.ErrCodeInternal, err, "create values decoder")
	}
	if err := dec.Decode(values); err != nil {
		return errs.Wrap(errs.ErrCodeInvalidInput, err, "decode outline values")
	}
	o.Apply(v)
	return nil
}

// Apply applies already typed values.
func (o *Outline[B]) Apply(v Values) {
	if v.Attributes != nil {
		o.SetAttributes(v.Attributes)
	}
}
