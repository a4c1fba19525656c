package observability

import (
	"context"
	"errors"
	"testing"
	"time"
)

func TestNoopHooksDoNotPanic(t *testing.T) {
	ctx := context.Background()

	// Document hooks
	d := NoopDocumentHooks{}
	d.OnSaveComplete(ctx, 3, 2, time.Second, nil)
	d.OnLoadStart(ctx, 3, 2)
	d.OnOutlineRestored(ctx, "id-1")
	d.OnOutlineSkipped(ctx, 1, errors.New("bad reference"))
	d.OnLoadComplete(ctx, 1, 1, time.Second, nil)

	// Outline hooks
	o := NoopOutlineHooks{}
	o.OnOutlineCreated("id-1", "base-1")
	o.OnOutlineRemoved("id-1")
}

func TestGlobalHooksRegistry(t *testing.T) {
	// Reset to known state
	Reset()

	// Verify defaults are noop
	if _, ok := Document().(NoopDocumentHooks); !ok {
		t.Error("Document() should return NoopDocumentHooks by default")
	}
	if _, ok := Outline().(NoopOutlineHooks); !ok {
		t.Error("Outline() should return NoopOutlineHooks by default")
	}

	// Set custom hooks
	customDocument := &testDocumentHooks{}
	SetDocumentHooks(customDocument)
	if Document() != customDocument {
		t.Error("SetDocumentHooks should set custom hooks")
	}

	customOutline := &testOutlineHooks{}
	SetOutlineHooks(customOutline)
	if Outline() != customOutline {
		t.Error("SetOutlineHooks should set custom hooks")
	}

	// Reset and verify
	Reset()
	if _, ok := Document().(NoopDocumentHooks); !ok {
		t.Error("Reset() should restore NoopDocumentHooks")
	}
	if _, ok := Outline().(NoopOutlineHooks); !ok {
		t.Error("Reset() should restore NoopOutlineHooks")
	}
}

func TestSetNilHooksIsIgnored(t *testing.T) {
	Reset()

	custom := &testDocumentHooks{}
	SetDocumentHooks(custom)

	// Setting nil should be ignored
	SetDocumentHooks(nil)
	SetOutlineHooks(nil)

	if Document() != custom {
		t.Error("SetDocumentHooks(nil) should be ignored")
	}
	if _, ok := Outline().(NoopOutlineHooks); !ok {
		t.Error("SetOutlineHooks(nil) should be ignored")
	}

	Reset()
}

// Test implementations
type testDocumentHooks struct{ NoopDocumentHooks }
type testOutlineHooks struct{ NoopOutlineHooks }
