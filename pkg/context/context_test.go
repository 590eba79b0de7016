package context

import "testing"

func TestAddLifelineAssignsDenseIDsInDeclarationOrder(t *testing.T) {
	ctx := New()
	a := ctx.AddLifeline("a")
	b := ctx.AddLifeline("b")
	c := ctx.AddLifeline("c")

	if a != 0 || b != 1 || c != 2 {
		t.Fatalf("got ids %d,%d,%d, want 0,1,2", a, b, c)
	}
	if ctx.LifelineCount() != 3 {
		t.Errorf("LifelineCount() = %d, want 3", ctx.LifelineCount())
	}
}

func TestAddLifelineIsIdempotent(t *testing.T) {
	ctx := New()
	first := ctx.AddLifeline("a")
	ctx.AddLifeline("b")
	second := ctx.AddLifeline("a")

	if first != second {
		t.Fatalf("re-declaring %q returned %d, want %d", "a", second, first)
	}
	if ctx.LifelineCount() != 2 {
		t.Errorf("LifelineCount() = %d, want 2", ctx.LifelineCount())
	}
}

func TestIndependentNamespaces(t *testing.T) {
	ctx := New()
	ctx.AddLifeline("a")
	msgID := ctx.AddMessage("a")
	gateID := ctx.AddGate("a")

	if msgID != 0 || gateID != 0 {
		t.Fatalf("message/gate ids = %d,%d, want 0,0 (independent namespaces)", msgID, gateID)
	}
}

func TestNameRoundTrip(t *testing.T) {
	tests := []struct {
		name string
	}{
		{"alice"}, {"bob"}, {"gateway"},
	}

	ctx := New()
	for _, tt := range tests {
		id := ctx.AddLifeline(tt.name)
		got, ok := ctx.LifelineName(id)
		if !ok || got != tt.name {
			t.Errorf("LifelineName(%d) = %q, %v, want %q, true", id, got, ok, tt.name)
		}
		backID, ok := ctx.LifelineID(tt.name)
		if !ok || backID != id {
			t.Errorf("LifelineID(%q) = %d, %v, want %d, true", tt.name, backID, ok, id)
		}
	}
}

func TestUnknownNameOrIDFails(t *testing.T) {
	ctx := New()
	ctx.AddLifeline("a")

	if _, ok := ctx.LifelineID("nonexistent"); ok {
		t.Error("LifelineID(nonexistent) reported ok, want false")
	}
	if _, ok := ctx.LifelineName(42); ok {
		t.Error("LifelineName(42) reported ok, want false")
	}
}

func TestMustLifelineNamePanicsOnUnknownID(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Fatal("MustLifelineName did not panic on an unknown id")
		}
	}()
	ctx := New()
	ctx.MustLifelineName(0)
}

func TestAllLifelineIDs(t *testing.T) {
	ctx := New()
	ctx.AddLifeline("a")
	ctx.AddLifeline("b")
	ctx.AddLifeline("c")

	ids := ctx.AllLifelineIDs()
	if len(ids) != 3 {
		t.Fatalf("AllLifelineIDs() has %d entries, want 3", len(ids))
	}
	for i, id := range ids {
		if id != i {
			t.Errorf("AllLifelineIDs()[%d] = %d, want %d", i, id, i)
		}
	}
}
