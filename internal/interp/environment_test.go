package interp

import "testing"

func TestGlobalBindings(t *testing.T) {
	env := Global()

	val, ok := env.Get("true")
	if !ok {
		t.Fatal("'true' not bound in the initial environment")
	}
	if b, err := GoBool(val); err != nil || !b {
		t.Errorf("true = %v (%v)", val, err)
	}

	val, ok = env.Get("false")
	if !ok {
		t.Fatal("'false' not bound in the initial environment")
	}
	if b, err := GoBool(val); err != nil || b {
		t.Errorf("false = %v (%v)", val, err)
	}

	if env.Size() != 2 {
		t.Errorf("Size() = %d, want 2", env.Size())
	}
}

func TestDefineAndGet(t *testing.T) {
	env := NewEnvironment()
	env.Define("x", NewIntegerValue(42))

	val, ok := env.Get("x")
	if !ok {
		t.Fatal("'x' not found after Define")
	}
	if n, err := GoInt(val); err != nil || n != 42 {
		t.Errorf("x = %v (%v)", val, err)
	}
}

func TestGetUndefined(t *testing.T) {
	env := NewEnvironment()

	if val, ok := env.Get("missing"); ok || val != nil {
		t.Errorf("Get(missing) = %v, %v", val, ok)
	}
	if env.Has("missing") {
		t.Error("Has(missing) = true")
	}
}

func TestEnclosedLookup(t *testing.T) {
	outer := NewEnvironment()
	outer.Define("x", NewIntegerValue(1))
	outer.Define("y", NewIntegerValue(2))

	inner := NewEnclosedEnvironment(outer)
	inner.Define("x", NewIntegerValue(10))

	// The inner frame shadows, the outer chain fills in the rest.
	if val, _ := inner.Get("x"); mustInt(t, val) != 10 {
		t.Errorf("inner x = %v", val)
	}
	if val, _ := inner.Get("y"); mustInt(t, val) != 2 {
		t.Errorf("inner y = %v", val)
	}

	// Shadowing never leaks outward.
	if val, _ := outer.Get("x"); mustInt(t, val) != 1 {
		t.Errorf("outer x = %v", val)
	}

	if inner.Outer() != outer {
		t.Error("Outer() does not return the enclosing environment")
	}
}

// TestWithValuesUnion checks the union law: the result contains every
// binding of the receiver not shadowed by extra, plus all of extra.
func TestWithValuesUnion(t *testing.T) {
	base := NewEnvironment()
	base.Define("a", NewIntegerValue(1))
	base.Define("b", NewIntegerValue(2))

	child := base.WithValues(map[string]Value{
		"b": NewIntegerValue(3),
		"c": NewIntegerValue(4),
	})

	for name, want := range map[string]int64{"a": 1, "b": 3, "c": 4} {
		val, ok := child.Get(name)
		if !ok {
			t.Fatalf("%s unbound in extended environment", name)
		}
		if got := mustInt(t, val); got != want {
			t.Errorf("%s = %d, want %d", name, got, want)
		}
	}

	// The receiver is untouched.
	if val, _ := base.Get("b"); mustInt(t, val) != 2 {
		t.Errorf("receiver b changed: %v", val)
	}
	if base.Has("c") {
		t.Error("receiver gained binding c")
	}

	if child.Size() != 2 {
		t.Errorf("child frame Size() = %d, want 2", child.Size())
	}
}

func TestWithValuesEmpty(t *testing.T) {
	base := Global()
	child := base.WithValues(nil)

	if !child.Has("true") || !child.Has("false") {
		t.Error("extension lost the receiver's bindings")
	}
}

func mustInt(t *testing.T, val Value) int64 {
	t.Helper()
	n, err := GoInt(val)
	if err != nil {
		t.Fatalf("expected integer: %v", err)
	}
	return n
}
