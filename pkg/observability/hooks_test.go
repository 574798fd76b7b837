package observability

import (
	"context"
	"testing"
	"time"
)

func TestNoopHooksDoNotPanic(t *testing.T) {
	ctx := context.Background()

	l := NoopLayoutHooks{}
	l.OnStackStart(ctx, "annotation", 12)
	l.OnStackComplete(ctx, "annotation", 3, time.Millisecond)
	l.OnLayoutStart(ctx, 3744)
	l.OnLayoutComplete(ctx, 3744, 10, time.Millisecond, nil)

	s := NoopSelectionHooks{}
	s.OnSelectionChange(ctx, 1166, 1885, true, "ampR", 719)
	s.OnEventDropped(ctx, "pointer-down", "no base under pointer")

	NoopAnchorHooks{}.OnAnchorChange(ctx, "linear", 1166)

	c := NoopCacheHooks{}
	c.OnCacheHit(ctx, "layout")
	c.OnCacheMiss(ctx, "layout")
	c.OnCacheSet(ctx, "layout", 1024)

	h := NoopHTTPHooks{}
	h.OnRequest(ctx, "POST", "/v1/layout")
	h.OnResponse(ctx, "POST", "/v1/layout", 200, time.Second)
	h.OnError(ctx, "POST", "/v1/layout", nil)
}

func TestGlobalHooksRegistry(t *testing.T) {
	Reset()

	if _, ok := Layout().(NoopLayoutHooks); !ok {
		t.Error("Layout() should return NoopLayoutHooks by default")
	}
	if _, ok := Selection().(NoopSelectionHooks); !ok {
		t.Error("Selection() should return NoopSelectionHooks by default")
	}
	if _, ok := Anchor().(NoopAnchorHooks); !ok {
		t.Error("Anchor() should return NoopAnchorHooks by default")
	}

	customLayout := &testLayoutHooks{}
	SetLayoutHooks(customLayout)
	if Layout() != customLayout {
		t.Error("SetLayoutHooks should set custom hooks")
	}

	customSelection := &testSelectionHooks{}
	SetSelectionHooks(customSelection)
	if Selection() != customSelection {
		t.Error("SetSelectionHooks should set custom hooks")
	}

	customAnchor := &testAnchorHooks{}
	SetAnchorHooks(customAnchor)
	if Anchor() != customAnchor {
		t.Error("SetAnchorHooks should set custom hooks")
	}

	customCache := &testCacheHooks{}
	SetCacheHooks(customCache)
	if Cache() != customCache {
		t.Error("SetCacheHooks should set custom hooks")
	}

	customHTTP := &testHTTPHooks{}
	SetHTTPHooks(customHTTP)
	if HTTP() != customHTTP {
		t.Error("SetHTTPHooks should set custom hooks")
	}

	Reset()
	if _, ok := Layout().(NoopLayoutHooks); !ok {
		t.Error("Reset() should restore NoopLayoutHooks")
	}
}

func TestSetNilHooksIsIgnored(t *testing.T) {
	Reset()

	custom := &testSelectionHooks{}
	SetSelectionHooks(custom)
	SetSelectionHooks(nil)

	if Selection() != custom {
		t.Error("SetSelectionHooks(nil) should be ignored")
	}

	Reset()
}

type testLayoutHooks struct{ NoopLayoutHooks }
type testSelectionHooks struct{ NoopSelectionHooks }
type testAnchorHooks struct{ NoopAnchorHooks }
type testCacheHooks struct{ NoopCacheHooks }
type testHTTPHooks struct{ NoopHTTPHooks }
