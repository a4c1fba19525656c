package outline

import (
	"encoding/json"
	"errors"
	"iter"

	errs "github.com/matzehuels/basecanvas/pkg/errors"
	"github.com/matzehuels/basecanvas/pkg/svg"
)

// Reference is the saved form of an outline.
type Reference struct {
	ID      string `json:"id"`
	OwnerID string `json:"ownerID"`
}

// Field names of a saved reference.
const (
	fieldID      = "id"
	fieldOwnerID = "ownerID"

	// fieldLegacyID is how older versions named the circle id.
	fieldLegacyID = "circleId"
)

// Conditions reported by [ParseReference] and [Deserialized].
var (
	ErrNotObject        = errors.New("saved outline is not an object")
	ErrMissingID        = errors.New("missing circle id")
	ErrIDNotString      = errors.New("circle id is not a string")
	ErrNodeNotFound     = errors.New("no element with the circle id")
	ErrWrongKind        = errors.New("element is not a circle")
	ErrMissingOwnerID   = errors.New("missing owner id")
	ErrOwnerIDNotString = errors.New("owner id is not a string")
	ErrOwnerNotFound    = errors.New("no base with the owner id")
)

// Drawing is what an outline is restored against: an SVG tree holding the
// circle and the collection of bases holding the owner.
type Drawing[B Owner] interface {
	DOMNode() *svg.Element
	Bases() iter.Seq[B]
}

// Serialized returns the reference needed to restore o later. It fails with
// INCOMPLETE_ENTITY when the circle or the owner currently has an empty id.
func (o *Outline[B]) Serialized() (Reference, error) {
	id := o.ID()
	if id == "" {
		return Reference{}, errs.New(errs.ErrCodeIncompleteEntity, "outline circle has no id")
	}
	ownerID := o.owner.ID()
	if ownerID == "" {
		return Reference{}, errs.New(errs.ErrCodeIncompleteEntity, "outline owner of %s has no id", id)
	}
	return Reference{ID: id, OwnerID: ownerID}, nil
}

// ParseReference validates a decoded saved outline, typically the result of
// unmarshalling JSON into an any, and returns the typed reference.
func ParseReference(saved any) (Reference, error) {
	obj, id, err := parseID(saved)
	if err != nil {
		return Reference{}, err
	}
	ownerID, err := parseOwnerID(obj)
	if err != nil {
		return Reference{}, err
	}
	return Reference{ID: id, OwnerID: ownerID}, nil
}

// DecodeReference parses a saved outline from JSON.
func DecodeReference(data []byte) (Reference, error) {
	var saved any
	if err := json.Unmarshal(data, &saved); err != nil {
		return Reference{}, errs.Wrap(errs.ErrCodeInvalidReference, err, "decode saved outline")
	}
	return ParseReference(saved)
}

// Deserialized restores an outline from a decoded saved outline. The circle
// is looked up by id in the drawing's SVG tree and the owner among the
// drawing's bases; the first base with a matching id wins. The restored
// outline follows its owner again.
//
// Checks run in this order: the value is an object, it has a string circle
// id, the circle exists, it is a circle, it has a string owner id, the owner
// exists.
func Deserialized[B Owner](saved any, d Drawing[B]) (*Outline[B], error) {
	obj, id, err := parseID(saved)
	if err != nil {
		return nil, err
	}

	node := d.DOMNode().FindByID(id)
	if node == nil {
		return nil, errs.Wrap(errs.ErrCodeUnresolvedReference, ErrNodeNotFound, "circle %q", id)
	}
	if Kind(node.Name) != KindCircle {
		return nil, errs.Wrap(errs.ErrCodeWrongKind, ErrWrongKind, "element %q is a <%s>", id, node.Name)
	}

	ownerID, err := parseOwnerID(obj)
	if err != nil {
		return nil, err
	}
	for b := range d.Bases() {
		if b.ID() == ownerID {
			return New(node, b), nil
		}
	}
	return nil, errs.Wrap(errs.ErrCodeUnresolvedReference, ErrOwnerNotFound, "owner %q of circle %q", ownerID, id)
}

// parseID reads the circle id. The legacy field is consulted only when the
// current one is absent, never to override it.
func parseID(saved any) (map[string]any, string, error) {
	obj, ok := saved.(map[string]any)
	if !ok || obj == nil {
		return nil, "", errs.Wrap(errs.ErrCodeInvalidReference, ErrNotObject, "got %T", saved)
	}

	raw, ok := obj[fieldID]
	if !ok {
		raw, ok = obj[fieldLegacyID]
	}
	if !ok {
		return nil, "", errs.Wrap(errs.ErrCodeInvalidReference, ErrMissingID, "no %q field", fieldID)
	}

	id, ok := raw.(string)
	if !ok {
		return nil, "", errs.Wrap(errs.ErrCodeInvalidReference, ErrIDNotString, "got %T", raw)
	}
	return obj, id, nil
}

func parseOwnerID(obj map[string]any) (string, error) {
	raw, ok := obj[fieldOwnerID]
	if !ok {
		return "", errs.Wrap(errs.ErrCodeInvalidReference, ErrMissingOwnerID, "no %q field", fieldOwnerID)
	}
	ownerID, ok := raw.(string)
	if !ok {
		return "", errs.Wrap(errs.ErrCodeInvalidReference, ErrOwnerIDNotString, "got %T", raw)
	}
	return ownerID, nil
}
