// Package bindings implements recursion through a mutable
// name-to-value table: a function calls itself by looking its own name
// up at call time, the way dynamic languages resolve globals.
//
// This package exists as a documented contrast to the fix package, not
// as a recommended technique. A callable built with Define works only
// while its table binding survives; Unbind (or rebinding the name to
// something else) breaks every subsequent recursive call, surfacing as
// a panic at the call site. The table is deliberately unsynchronized —
// concurrent rebinding while calls are in flight is undefined and is
// the caller's problem, exactly as it is with a real global namespace.
package bindings
