package interp

// Environment maps identifier names to runtime values, with a
// reference to the enclosing scope. Rinha identifiers are
// case-sensitive.
//
// Environments never shrink: evaluation only ever layers child frames
// on top of existing ones, so a closure's captured frame stays valid
// for as long as the closure is reachable. The one mutation after
// construction is the recursive rebinding a let of a function
// performs before its body can observe the frame.
type Environment struct {
	store map[string]Value
	outer *Environment
}

// NewEnvironment creates a new root-level environment with no outer
// scope.
func NewEnvironment() *Environment {
	return &Environment{
		store: make(map[string]Value),
		outer: nil,
	}
}

// NewEnclosedEnvironment creates an environment enclosed by outer.
// Lookups fall back to the outer chain; definitions stay local.
func NewEnclosedEnvironment(outer *Environment) *Environment {
	return &Environment{
		store: make(map[string]Value),
		outer: outer,
	}
}

// Global returns the initial environment for a program run: exactly
// the bindings true and false.
func Global() *Environment {
	env := NewEnvironment()
	env.Define("true", &BooleanValue{Value: true})
	env.Define("false", &BooleanValue{Value: false})
	return env
}

// Get retrieves a value by name, searching the current frame first
// and then the outer chain. Returns nil and false if the name is
// unbound in every scope.
func (e *Environment) Get(name string) (Value, bool) {
	if val, ok := e.store[name]; ok {
		return val, true
	}
	if e.outer != nil {
		return e.outer.Get(name)
	}
	return nil, false
}

// Define binds a name in the current frame, shadowing any binding of
// the same name in outer scopes.
func (e *Environment) Define(name string, val Value) {
	e.store[name] = val
}

// Has reports whether a name is bound in this scope chain.
func (e *Environment) Has(name string) bool {
	_, ok := e.Get(name)
	return ok
}

// WithValues returns a new environment whose bindings are the union
// of the receiver's with extra, with extra winning on conflicts. The
// receiver is not modified.
func (e *Environment) WithValues(extra map[string]Value) *Environment {
	child := NewEnclosedEnvironment(e)
	for name, val := range extra {
		child.store[name] = val
	}
	return child
}

// Size returns the number of bindings in the current frame, not
// counting outer scopes.
func (e *Environment) Size() int {
	return len(e.store)
}

// Outer returns the enclosing environment, or nil for a root frame.
func (e *Environment) Outer() *Environment {
	return e.outer
}
