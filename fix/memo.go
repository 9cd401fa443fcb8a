package fix

// memoTable is a bounded memo for unary pure functions. Two maps
// rotate: when the live map reaches maxSize it becomes the fallback
// and a fresh map takes writes, so the table holds at most 2*maxSize
// entries and stale results age out instead of pinning memory.
//
// Not synchronized. The combinator path is single-threaded direct
// calls; callers sharing a memoized Func across goroutines own the
// coordination.
type memoTable[A comparable, R any] struct {
	memos   [2]map[A]R
	headIdx int
	maxSize uint32
}

func newMemoTable[A comparable, R any](maxSize uint32) *memoTable[A, R] {
	if maxSize == 0 {
		panic("maxSize should be greater than 0")
	}
	return &memoTable[A, R]{
		memos:   [2]map[A]R{{}, {}},
		maxSize: maxSize,
	}
}

func (t *memoTable[A, R]) load(key A) (R, bool) {
	if v, ok := t.memos[t.headIdx][key]; ok {
		return v, true
	}
	v, ok := t.memos[1-t.headIdx][key]
	return v, ok
}

func (t *memoTable[A, R]) store(key A, value R) {
	if uint32(len(t.memos[t.headIdx])) >= t.maxSize {
		t.headIdx = 1 - t.headIdx
		t.memos[t.headIdx] = make(map[A]R, t.maxSize)
	}
	t.memos[t.headIdx][key] = value
}

// FixMemoized is Fix with a bounded memo table threaded through the
// knot: every recursive call consults the table before delegating to
// the template, so overlapping subproblems (the fibonacci shape) are
// computed once per rotation window.
//
// The template must be pure. The self-application itself is still
// performed freshly on each uncached call; only results are cached,
// never the self-reference.
func FixMemoized[A comparable, R any](base Base[A, R], maxTableSize uint32) Func[A, R] {
	memo := newMemoTable[A, R](maxTableSize)
	loop := selfApply[A, R](func(rec selfApply[A, R]) Func[A, R] {
		return func(arg A) R {
			if v, ok := memo.load(arg); ok {
				return v
			}
			v := base(rec(rec), arg)
			memo.store(arg, v)
			return v
		}
	})
	return loop(loop)
}
