package bindings

import (
	"fmt"

	"github.com/on-the-ground/recurs_ive_go/fix"
	"github.com/on-the-ground/recurs_ive_go/shared/helper"
)

// ErrUnbound is returned by Lookup when a name has no binding.
var ErrUnbound = fmt.Errorf("name not bound")

// Table is a mutable name-to-value table.
//
// It carries no synchronization: the lookup-recursion pattern it
// exists to demonstrate is inherently a shared-mutable-state pattern,
// and concurrent rebinding while calls are in flight is the caller's
// responsibility, not something this package mitigates.
type Table struct {
	entries map[string]any
}

// NewTable returns an empty table.
func NewTable() *Table {
	return &Table{entries: make(map[string]any)}
}

// Global is the process-wide table, the analogue of a language's
// global namespace. Functions defined here are reachable from
// anywhere in the process for as long as their binding survives.
var Global = NewTable()

// Bind installs or replaces the binding for name.
func (t *Table) Bind(name string, value any) {
	t.entries[name] = value
}

// Unbind removes the binding for name. Removing a binding that a
// lookup-recursive function resolves through breaks every future
// recursive call of that function; see Define.
func (t *Table) Unbind(name string) {
	delete(t.entries, name)
}

// Lookup resolves name in the table.
// Returns an ErrUnbound-wrapped error when no binding exists.
func (t *Table) Lookup(name string) (any, error) {
	v, ok := t.entries[name]
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnbound, name)
	}
	return v, nil
}

// LookupFunc fetches a typed callable from the table under the given name.
// Returns a zero value and error if the name is unbound or the type is mismatched.
func LookupFunc[A, R any](t *Table, name string) (fix.Func[A, R], error) {
	return helper.GetTypedValueOf[fix.Func[A, R]](func() (any, error) {
		return t.Lookup(name)
	})
}

// MustLookupFunc is the panic-on-failure variant of LookupFunc.
// It panics if the name is unbound or the bound value has the wrong type.
func MustLookupFunc[A, R any](t *Table, name string) fix.Func[A, R] {
	return helper.MustGetTypedValue[fix.Func[A, R]](func() (any, error) {
		return t.Lookup(name)
	})
}

// SelfRef returns a callable that resolves name in t at every call and
// delegates to whatever is bound at that moment. If the binding is
// gone (or rebound to a non-callable), the call panics with the lookup
// error at the call site.
func SelfRef[A, R any](t *Table, name string) fix.Func[A, R] {
	return func(arg A) R {
		self := MustLookupFunc[A, R](t, name)
		return self(arg)
	}
}

// Define binds, under name, a callable whose recursive calls resolve
// through the table by that same name at call time.
//
// This is the fragile alternative to fix.Fix: it only works while the
// binding exists. Aliases taken before an Unbind keep executing
// non-recursive paths of the template, but the first recursive call
// after removal dies on name resolution. Prefer fix.Fix unless the
// point is to demonstrate exactly that hazard.
func Define[A, R any](t *Table, name string, base fix.Base[A, R]) fix.Func[A, R] {
	fn := fix.Func[A, R](func(arg A) R {
		return base(SelfRef[A, R](t, name), arg)
	})
	t.Bind(name, fn)
	return fn
}
