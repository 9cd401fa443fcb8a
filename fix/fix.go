package fix

// Func is a unary recursive callable produced by this package.
// It has no mutable state and no identity beyond its behavior;
// callers may alias it freely.
type Func[A, R any] func(A) R

// Base is the template of a recursive function. The first parameter
// stands in for the eventual recursive call: invoking self(arg) inside
// the template behaves as the function being defined. The template is
// responsible for terminating the recursion.
type Base[A, R any] func(self Func[A, R], arg A) R

// selfApply is a function that takes itself and yields the callable.
// A named recursive function type is how Go expresses what would
// otherwise be an infinitely-recursive type.
type selfApply[A, R any] func(selfApply[A, R]) Func[A, R]

// Fix returns the fixed point of base: a callable f such that
// f(arg) == base(f, arg), built without base ever closing over an
// external name for itself.
//
// The self-reference is re-derived by self-application on every call
// of the returned Func, not captured once at construction. The result
// therefore keeps working even if every binding involved in building
// it is later reassigned or dropped.
func Fix[A, R any](base Base[A, R]) Func[A, R] {
	loop := selfApply[A, R](func(rec selfApply[A, R]) Func[A, R] {
		return func(arg A) R {
			return base(rec(rec), arg)
		}
	})
	return loop(loop)
}

// knot is the struct encoding of selfApply: one field holding a
// function that takes and returns the enclosing struct type.
type knot[A, R any] struct {
	tie func(knot[A, R]) Func[A, R]
}

// FixKnot is Fix with the self-application routed through a one-field
// struct instead of a recursive function type. The two constructions
// are behaviorally identical; FixKnot exists because some type systems
// only admit the record form, and keeping both makes the equivalence
// checkable.
func FixKnot[A, R any](base Base[A, R]) Func[A, R] {
	k := knot[A, R]{
		tie: func(self knot[A, R]) Func[A, R] {
			return func(arg A) R {
				return base(self.tie(self), arg)
			}
		},
	}
	return k.tie(k)
}
