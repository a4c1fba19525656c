package drawing

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"time"

	"github.com/go-playground/validator/v10"

	"github.com/matzehuels/basecanvas/pkg/base"
	errs "github.com/matzehuels/basecanvas/pkg/errors"
	"github.com/matzehuels/basecanvas/pkg/observability"
	"github.com/matzehuels/basecanvas/pkg/outline"
	"github.com/matzehuels/basecanvas/pkg/svg"
)

// Document is the saved form of a drawing.
//
// Outlines are kept as raw JSON so that references written by older
// versions, and broken ones, reach [outline.Deserialized] unchanged.
type Document struct {
	SVG      string            `json:"svg" validate:"required"`
	Bases    []BaseRecord      `json:"bases" validate:"unique=ID,dive"`
	Outlines []json.RawMessage `json:"outlines"`
}

// BaseRecord is the saved form of a base.
type BaseRecord struct {
	ID   string  `json:"id" validate:"required"`
	Text string  `json:"text" validate:"required"`
	X    float64 `json:"x"`
	Y    float64 `json:"y"`
}

var validate = validator.New(validator.WithRequiredStructEnabled())

// Save captures the drawing as a document. It fails if any outline cannot
// be serialized.
func (d *Drawing) Save(ctx context.Context) (*Document, error) {
	start := time.Now()
	doc, err := d.save()
	observability.Document().OnSaveComplete(ctx, len(d.bases), len(d.outlines), time.Since(start), err)
	return doc, err
}

func (d *Drawing) save() (*Document, error) {
	doc := &Document{
		SVG:      d.root.String(),
		Bases:    make([]BaseRecord, len(d.bases)),
		Outlines: make([]json.RawMessage, len(d.outlines)),
	}
	for i, b := range d.bases {
		doc.Bases[i] = BaseRecord{ID: b.ID(), Text: b.Text, X: b.X(), Y: b.Y()}
	}
	for i, o := range d.outlines {
		ref, err := o.Serialized()
		if err != nil {
			return nil, fmt.Errorf("outline %d: %w", i, err)
		}
		data, err := json.Marshal(ref)
		if err != nil {
			return nil, errs.Wrap(errs.ErrCodeInternal, err, "encode outline %d", i)
		}
		doc.Outlines[i] = data
	}
	return doc, nil
}

// Load rebuilds a drawing from doc.
//
// Every base is reattached to the text element carrying its id, or gets a new
// one when the element is missing. Every outline is restored against the
// loaded tree and bases. By default an outline that cannot be restored is
// logged and skipped; its circle, if any, stays in the tree unbound. With
// [WithStrictLoad] the first such failure aborts the load.
func Load(ctx context.Context, doc *Document, opts ...Option) (*Drawing, error) {
	start := time.Now()
	observability.Document().OnLoadStart(ctx, len(doc.Bases), len(doc.Outlines))

	d, restored, skipped, err := load(ctx, doc, opts...)
	observability.Document().OnLoadComplete(ctx, restored, skipped, time.Since(start), err)
	if err != nil {
		return nil, err
	}
	return d, nil
}

func load(ctx context.Context, doc *Document, opts ...Option) (*Drawing, int, int, error) {
	if err := validate.Struct(doc); err != nil {
		return nil, 0, 0, errs.Wrap(errs.ErrCodeInvalidDocument, err, "validate document")
	}

	root, err := svg.DecodeString(doc.SVG)
	if err != nil {
		return nil, 0, 0, errs.Wrap(errs.ErrCodeInvalidDocument, err, "parse svg")
	}
	if root.Name != svg.TagSVG {
		return nil, 0, 0, errs.New(errs.ErrCodeInvalidDocument, "root element is <%s>, want <svg>", root.Name)
	}

	d := newDrawing(root, opts...)
	for _, rec := range doc.Bases {
		b := base.WithID(rec.ID, rec.Text, rec.X, rec.Y)
		if el := root.FindByID(rec.ID); el != nil && el.Name == svg.TagText {
			d.attach(b, el)
		} else {
			d.AddBase(b)
		}
	}

	skipped := 0
	for i, raw := range doc.Outlines {
		o, err := restore(raw, d)
		if err != nil {
			if d.strict {
				return nil, len(d.outlines), skipped, fmt.Errorf("outline %d: %w", i, err)
			}
			skipped++
			d.logger.Warn("skipping outline", "index", i, "err", err)
			observability.Document().OnOutlineSkipped(ctx, i, err)
			continue
		}
		d.outlines = append(d.outlines, o)
		observability.Document().OnOutlineRestored(ctx, o.ID())
	}

	d.logger.Debug("loaded drawing", "bases", len(d.bases), "outlines", len(d.outlines), "skipped", skipped)
	return d, len(d.outlines), skipped, nil
}

func restore(raw json.RawMessage, d *Drawing) (*Outline, error) {
	var saved any
	if err := json.Unmarshal(raw, &saved); err != nil {
		return nil, errs.Wrap(errs.ErrCodeInvalidReference, err, "decode saved outline")
	}
	return outline.Deserialized(saved, d)
}

// WriteJSON saves d and writes the document to w as indented JSON.
func WriteJSON(ctx context.Context, d *Drawing, w io.Writer) error {
	doc, err := d.Save(ctx)
	if err != nil {
		return err
	}
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	if err := enc.Encode(doc); err != nil {
		return fmt.Errorf("encode: %w", err)
	}
	return nil
}

// ReadJSON decodes a document from r and loads it. ReadJSON does not close r.
func ReadJSON(ctx context.Context, r io.Reader, opts ...Option) (*Drawing, error) {
	var doc Document
	if err := json.NewDecoder(r).Decode(&doc); err != nil {
		return nil, errs.Wrap(errs.ErrCodeInvalidDocument, err, "decode")
	}
	return Load(ctx, &doc, opts...)
}

// ImportJSON reads the document at path and loads it.
func ImportJSON(ctx context.Context, path string, opts ...Option) (*Drawing, error) {
	f, err := os.Open(path)
	if os.IsNotExist(err) {
		return nil, errs.Wrap(errs.ErrCodeFileNotFound, err, "open %s", path)
	}
	if err != nil {
		return nil, fmt.Errorf("open %s: %w", path, err)
	}
	defer f.Close()
	return ReadJSON(ctx, f, opts...)
}

// ExportJSON writes d to a JSON document at path.
func ExportJSON(ctx context.Context, d *Drawing, path string) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create %s: %w", path, err)
	}
	if err := WriteJSON(ctx, d, f); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}
