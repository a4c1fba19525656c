package drawing

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/matzehuels/basecanvas/pkg/base"
	"github.com/matzehuels/basecanvas/pkg/observability"
	"github.com/matzehuels/basecanvas/pkg/outline"
	"github.com/matzehuels/basecanvas/pkg/svg"
)

func TestAddBaseDrawsLabel(t *testing.T) {
	d := New()
	b := base.WithID("b1", "G", 98.4, -1002.34)
	d.AddBase(b)

	el := d.DOMNode().FindByID("b1")
	require.NotNil(t, el)
	assert.Equal(t, svg.TagText, el.Name)
	assert.Equal(t, "G", el.Text)
	assert.Equal(t, "98.4", el.Attr("x"))
	assert.Equal(t, "-1002.34", el.Attr("y"))

	b.MoveTo(1057, -812)
	assert.Equal(t, "1057", el.Attr("x"))
	assert.Equal(t, "-812", el.Attr("y"))

	got, ok := d.Base("b1")
	assert.True(t, ok)
	assert.Same(t, b, got)
	assert.Equal(t, 1, d.NumBases())
}

func TestOutlineUsesDrawingDefaults(t *testing.T) {
	d := New()
	b := base.New("A", 0, 0)
	d.AddBase(b)

	first := d.Outline(b)
	d.Defaults[outline.KindCircle]["stroke"] = "#ff0000"
	second := d.Outline(b)

	assert.Equal(t, "#808080", first.GetAttribute("stroke"))
	assert.Equal(t, "#ff0000", second.GetAttribute("stroke"))
	assert.Same(t, first.DOMNode(), d.DOMNode().FindByID(first.ID()))
	assert.Len(t, d.Outlines(), 2)
	assert.Len(t, d.OutlinesOf(b), 2)
}

func TestWithDefaults(t *testing.T) {
	defaults := outline.Defaults{outline.KindCircle: {"r": "12"}}
	d := New(WithDefaults(defaults))
	b := base.New("A", 0, 0)
	d.AddBase(b)

	assert.Equal(t, "12", d.Outline(b).GetAttribute("r"))
}

func TestRemoveOutline(t *testing.T) {
	d := New()
	b := base.New("A", 0, 0)
	d.AddBase(b)
	o := d.Outline(b)

	require.True(t, d.RemoveOutline(o))
	assert.False(t, d.RemoveOutline(o))
	assert.Nil(t, d.DOMNode().FindByID(o.ID()))
	assert.Empty(t, d.Outlines())

	b.MoveTo(5, 5)
	assert.Equal(t, "0", o.GetAttribute("cx"))
}

func TestRemoveBase(t *testing.T) {
	d := New()
	a, c := base.New("A", 0, 0), base.New("C", 1, 1)
	d.AddBase(a)
	d.AddBase(c)
	d.Outline(a)
	kept := d.Outline(c)

	require.True(t, d.RemoveBase(a))
	assert.False(t, d.RemoveBase(a))

	assert.Nil(t, d.DOMNode().FindByID(a.ID()))
	assert.Equal(t, []*Outline{kept}, d.Outlines())
	assert.Equal(t, 1, d.NumBases())
	assert.Equal(t, 0, a.CenterPoint().Listeners())
}

func TestOutlineHooks(t *testing.T) {
	rec := &recordingOutlineHooks{}
	observability.SetOutlineHooks(rec)
	defer observability.Reset()

	d := New()
	b := base.WithID("b1", "A", 0, 0)
	d.AddBase(b)
	o := d.Outline(b)
	d.RemoveOutline(o)

	assert.Equal(t, []string{"created " + o.ID() + " b1", "removed " + o.ID()}, rec.events)
}

type recordingOutlineHooks struct {
	events []string
}

func (r *recordingOutlineHooks) OnOutlineCreated(id, ownerID string) {
	r.events = append(r.events, "created "+id+" "+ownerID)
}

func (r *recordingOutlineHooks) OnOutlineRemoved(id string) {
	r.events = append(r.events, "removed "+id)
}
