package bindings_test

import (
	"errors"
	"strings"
	"testing"

	"github.com/on-the-ground/recurs_ive_go/bindings"
	"github.com/on-the-ground/recurs_ive_go/fix"
)

func fibTemplate(self fix.Func[int, int], n int) int {
	if n == 0 || n == 1 {
		return 1
	}
	return self(n-1) + self(n-2)
}

func TestTable_BasicLookup(t *testing.T) {
	table := bindings.NewTable()
	table.Bind("foo", 123)

	v, err := table.Lookup("foo")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if v != 123 {
		t.Fatalf("expected 123, got %v", v)
	}
}

func TestTable_NameNotBound(t *testing.T) {
	table := bindings.NewTable()

	_, err := table.Lookup("bar")
	if !errors.Is(err, bindings.ErrUnbound) {
		t.Fatalf("expected ErrUnbound, got: %v", err)
	}
	if !strings.Contains(err.Error(), `"bar"`) {
		t.Fatalf("expected error to name the missing binding, got: %v", err)
	}
}

func TestDefine_ComputesFibonacci(t *testing.T) {
	table := bindings.NewTable()
	fib := bindings.Define(table, "fib", fibTemplate)

	want := []int{1, 1, 2, 3, 5, 8, 13}
	for n, w := range want {
		if got := fib(n); got != w {
			t.Fatalf("fib(%d) = %d, want %d", n, got, w)
		}
	}
}

func TestDefine_AliasUsesTableNotAlias(t *testing.T) {
	table := bindings.NewTable()
	bindings.Define(table, "fib", fibTemplate)

	// A fresh lookup yields a callable equivalent to the original.
	alias, err := bindings.LookupFunc[int, int](table, "fib")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got := alias(6); got != 13 {
		t.Fatalf("alias(6) = %d, want 13", got)
	}
}

func TestDefine_UnbindBreaksRecursion(t *testing.T) {
	table := bindings.NewTable()
	alias := bindings.Define(table, "fib", fibTemplate)

	table.Unbind("fib")

	// Base cases never touch the table; they still work through the alias.
	if got := alias(0); got != 1 {
		t.Fatalf("alias(0) = %d, want 1", got)
	}
	if got := alias(1); got != 1 {
		t.Fatalf("alias(1) = %d, want 1", got)
	}

	// The first re-triggered recursive call dies on name resolution.
	defer func() {
		r := recover()
		if r == nil {
			t.Fatal("expected panic on recursive call after Unbind")
		}
		err, ok := r.(error)
		if !ok || !errors.Is(err, bindings.ErrUnbound) {
			t.Fatalf("expected ErrUnbound panic, got: %v", r)
		}
	}()
	alias(2)
}

func TestDefine_RebindSwapsBehavior(t *testing.T) {
	table := bindings.NewTable()
	alias := bindings.Define(table, "fib", fibTemplate)

	// Rebinding the name silently reroutes recursive calls — the
	// documented hazard of lookup recursion.
	table.Bind("fib", fix.Func[int, int](func(n int) int { return 0 }))

	if got := alias(5); got != 0 {
		t.Fatalf("alias(5) = %d, want 0 after rebinding self to a constant", got)
	}
}

func TestLookupFunc_TypeMismatch(t *testing.T) {
	table := bindings.NewTable()
	table.Bind("fib", "not a function")

	_, err := bindings.LookupFunc[int, int](table, "fib")
	if err == nil || !strings.Contains(err.Error(), "unexpected type") {
		t.Fatalf("expected type mismatch error, got: %v", err)
	}
}

func TestGlobalTable(t *testing.T) {
	bindings.Global.Bind("test-fib", fix.Fix(fibTemplate))
	defer bindings.Global.Unbind("test-fib")

	fib := bindings.MustLookupFunc[int, int](bindings.Global, "test-fib")
	if got := fib(6); got != 13 {
		t.Fatalf("fib(6) = %d, want 13", got)
	}
}
