// Package fix provides anonymous recursion for Go functions via a
// fixed-point combinator.
//
// Fix is not just a way to write a recursive closure.
// Fix is a tool that *forces the developer to ask*:
//
//	→ "Does this function need its own name to call itself?"
//	→ "What does the recursion depend on, besides the template?"
//
// The answer Fix gives is: nothing. A callable produced by Fix carries
// its own self-reference, manufactured by self-application, and keeps
// working after every name used to build it has been rebound or
// dropped. That is the property that separates it from recursion
// through a mutable name table (see the bindings package).
//
// # How the knot is tied
//
// The caller supplies a template Base(self, arg) where self stands for
// "the function being defined". Fix wraps the template in a helper that
// takes itself as an explicit parameter and re-applies itself on each
// call:
//
//	loop := func(rec selfApply) Func {
//	    return func(arg A) R { return base(rec(rec), arg) }
//	}
//	return loop(loop)
//
// The self-application rec(rec) is evaluated freshly on every
// invocation, never cached at construction. This is the classical
// construction: the produced callable holds no mutable self-pointer,
// so it is safe to alias and call from anywhere.
//
// Go disallows infinitely-recursive type expressions, so the helper's
// type is declared as a named recursive function type (selfApply), and
// FixKnot shows the equivalent one-field struct encoding.
//
// # Termination
//
// The template owns termination. Fix imposes no depth limit: a
// template with no reachable base case recurses until the runtime
// kills the goroutine stack. That failure is fatal and is not caught
// here.
//
// See fix_test.go for usage.
package fix
