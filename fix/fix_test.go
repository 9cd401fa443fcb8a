package fix_test

import (
	"testing"

	"github.com/on-the-ground/recurs_ive_go/fix"

	"github.com/stretchr/testify/assert"
)

func fibTemplate(self fix.Func[int, int], n int) int {
	if n == 0 || n == 1 {
		return 1
	}
	return self(n-1) + self(n-2)
}

var wantFib = []int{1, 1, 2, 3, 5, 8, 13, 21, 34}

func TestFixFibonacci(t *testing.T) {
	fib := fix.Fix(fibTemplate)
	for n, want := range wantFib {
		assert.Equal(t, want, fib(n))
	}
}

func TestFixKnotFibonacci(t *testing.T) {
	fib := fix.FixKnot(fibTemplate)
	for n, want := range wantFib {
		assert.Equal(t, want, fib(n))
	}
}

func TestFixVariantsEquivalent(t *testing.T) {
	viaSelfApply := fix.Fix(fibTemplate)
	viaKnot := fix.FixKnot(fibTemplate)
	viaMemo := fix.FixMemoized(fibTemplate, 16)
	for n := 0; n <= 8; n++ {
		assert.Equal(t, viaSelfApply(n), viaKnot(n))
		assert.Equal(t, viaSelfApply(n), viaMemo(n))
	}
}

func TestFixSurvivesRebinding(t *testing.T) {
	base := fix.Base[int, int](fibTemplate)
	fib := fix.Fix(base)

	before := fib(8)

	// Drop every binding that participated in construction. The
	// callable must not notice.
	base = nil
	_ = base

	assert.Equal(t, before, fib(8))
	assert.Equal(t, 34, fib(8))
}

func TestFixRepeatedCallsStable(t *testing.T) {
	fib := fix.Fix(fibTemplate)
	first := fib(8)
	for i := 0; i < 3; i++ {
		assert.Equal(t, first, fib(8))
	}
}

func TestFixOtherTemplate(t *testing.T) {
	factorial := fix.Fix(func(self fix.Func[int, int], n int) int {
		if n <= 1 {
			return 1
		}
		return n * self(n-1)
	})
	assert.Equal(t, 120, factorial(5))
	assert.Equal(t, 1, factorial(0))
}

func TestFixTemplateInvokedPerCall(t *testing.T) {
	calls := 0
	counting := fix.Fix(func(self fix.Func[int, int], n int) int {
		calls++
		if n == 0 {
			return 0
		}
		return self(n - 1)
	})

	counting(3)
	assert.Equal(t, 4, calls)

	// No caching between top-level calls either.
	counting(3)
	assert.Equal(t, 8, calls)
}
