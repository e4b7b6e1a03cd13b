package deque

// spine is the type-erased recursive backbone of a Deque. Go cannot express
// a literal recursive generic type like "Node[E]{ middle *Node[buffer[E]] }"
// — that would require an infinite family of type instantiations. Instead
// the element type is erased behind `any`, and every operation is a generic
// *function* parameterized by the level's current element type E; recursion
// into middle instantiates that same function at buffer[E], one level
// deeper — free functions throughout, since a method can't introduce a
// type parameter beyond its receiver's.
//
// kind is one of the three spine variants. single, prefix and suffix hold
// values of the level's E (or buffer[E] for prefix/suffix); middle, when
// non-nil, is itself a spine at one level deeper (elements of type buffer[E]).
type spine struct {
	kind   spineKind
	len    int
	single any
	prefix any
	middle *spine
	suffix any
}

type spineKind int8

const (
	spineEmptyKind spineKind = iota
	spineSingleKind
	spineNodeKind
)

func emptySpine() *spine {
	return &spine{kind: spineEmptyKind}
}

func singleSpine[E any](a E) *spine {
	return &spine{kind: spineSingleKind, len: 1, single: a}
}

func nodeSpine[E any](length int, prefix buffer[E], middle *spine, suffix buffer[E]) *spine {
	return &spine{kind: spineNodeKind, len: length, prefix: prefix, middle: middle, suffix: suffix}
}

// spineLen returns the element count at this level in O(1).
func spineLen(s *spine) int {
	switch s.kind {
	case spineEmptyKind:
		return 0
	case spineSingleKind:
		return 1
	default:
		return s.len
	}
}

func spineSingleVal[E any](s *spine) E {
	return s.single.(E)
}

func spinePrefix[E any](s *spine) buffer[E] {
	return s.prefix.(buffer[E])
}

func spineSuffix[E any](s *spine) buffer[E] {
	return s.suffix.(buffer[E])
}

func spineMiddleEmpty(s *spine) bool {
	return s.middle == nil || s.middle.kind == spineEmptyKind
}

// pushFrontSpine prepends x, migrating an overflowing prefix into middle
// one level deeper when the edge buffer is already full.
func pushFrontSpine[E any](x E, s *spine) *spine {
	switch s.kind {
	case spineEmptyKind:
		return singleSpine[E](x)
	case spineSingleKind:
		a := spineSingleVal[E](s)
		return nodeSpine[E](2, one(x), emptySpine(), one(a))
	default:
		prefix := spinePrefix[E](s)
		if !bufferFull(prefix) {
			return nodeSpine[E](spineLen(s)+1, bufferPushFront(x, prefix), s.middle, spineSuffix[E](s))
		}
		recordOverflow()
		newPrefix := buffer[E]{size: 4, elems: [7]E{x, prefix.elems[0], prefix.elems[1], prefix.elems[2]}}
		migrating := buffer[E]{size: 4, elems: [7]E{prefix.elems[3], prefix.elems[4], prefix.elems[5], prefix.elems[6]}}
		newMiddle := pushFrontSpine[buffer[E]](migrating, s.middle)
		return nodeSpine[E](spineLen(s)+1, newPrefix, newMiddle, spineSuffix[E](s))
	}
}

// pushBackSpine is the mirror of pushFrontSpine on the trailing edge.
func pushBackSpine[E any](s *spine, x E) *spine {
	switch s.kind {
	case spineEmptyKind:
		return singleSpine[E](x)
	case spineSingleKind:
		a := spineSingleVal[E](s)
		return nodeSpine[E](2, one(a), emptySpine(), one(x))
	default:
		suffix := spineSuffix[E](s)
		if !bufferFull(suffix) {
			return nodeSpine[E](spineLen(s)+1, spinePrefix[E](s), s.middle, bufferPushBack(suffix, x))
		}
		recordOverflow()
		migrating := buffer[E]{size: 4, elems: [7]E{suffix.elems[0], suffix.elems[1], suffix.elems[2], suffix.elems[3]}}
		newSuffix := buffer[E]{size: 4, elems: [7]E{suffix.elems[4], suffix.elems[5], suffix.elems[6], x}}
		newMiddle := pushBackSpine[buffer[E]](s.middle, migrating)
		return nodeSpine[E](spineLen(s)+1, spinePrefix[E](s), newMiddle, newSuffix)
	}
}

// redistributeFromSuffix rebuilds a node from a lone surviving suffix once
// the prefix has been drained to nothing and middle is empty. The shapes
// below are the canonical table from the source material; spine shape is
// not part of the observable contract, only the resulting sequence is.
func redistributeFromSuffix[E any](suffix buffer[E]) *spine {
	e := suffix.elems
	switch bufferLen(suffix) {
	case 1:
		return singleSpine[E](e[0])
	case 2:
		return nodeSpine[E](2, one(e[0]), emptySpine(), one(e[1]))
	case 3:
		return nodeSpine[E](3, one(e[0]), emptySpine(), buffer[E]{size: 2, elems: [7]E{e[1], e[2]}})
	case 4:
		return nodeSpine[E](4, buffer[E]{size: 2, elems: [7]E{e[0], e[1]}}, emptySpine(), buffer[E]{size: 2, elems: [7]E{e[2], e[3]}})
	case 5:
		return nodeSpine[E](5, one(e[0]), emptySpine(), buffer[E]{size: 4, elems: [7]E{e[1], e[2], e[3], e[4]}})
	case 6:
		return nodeSpine[E](6, one(e[0]), emptySpine(), buffer[E]{size: 5, elems: [7]E{e[1], e[2], e[3], e[4], e[5]}})
	default:
		return nodeSpine[E](7, one(e[0]), emptySpine(), buffer[E]{size: 6, elems: [7]E{e[1], e[2], e[3], e[4], e[5], e[6]}})
	}
}

// redistributeFromPrefix is the mirror of redistributeFromSuffix, used when
// a node's suffix has been drained to nothing.
func redistributeFromPrefix[E any](prefix buffer[E]) *spine {
	e := prefix.elems
	switch bufferLen(prefix) {
	case 1:
		return singleSpine[E](e[0])
	case 2:
		return nodeSpine[E](2, one(e[0]), emptySpine(), one(e[1]))
	case 3:
		return nodeSpine[E](3, buffer[E]{size: 2, elems: [7]E{e[0], e[1]}}, emptySpine(), one(e[2]))
	case 4:
		return nodeSpine[E](4, buffer[E]{size: 2, elems: [7]E{e[0], e[1]}}, emptySpine(), buffer[E]{size: 2, elems: [7]E{e[2], e[3]}})
	case 5:
		return nodeSpine[E](5, buffer[E]{size: 4, elems: [7]E{e[0], e[1], e[2], e[3]}}, emptySpine(), one(e[4]))
	case 6:
		return nodeSpine[E](6, buffer[E]{size: 5, elems: [7]E{e[0], e[1], e[2], e[3], e[4]}}, emptySpine(), one(e[5]))
	default:
		return nodeSpine[E](7, buffer[E]{size: 6, elems: [7]E{e[0], e[1], e[2], e[3], e[4], e[5]}}, emptySpine(), one(e[6]))
	}
}

// popFrontSpine returns the leading element and the spine without it.
// ok is false only when s was already empty.
func popFrontSpine[E any](s *spine) (E, *spine, bool) {
	switch s.kind {
	case spineEmptyKind:
		var zero E
		return zero, s, false
	case spineSingleKind:
		return spineSingleVal[E](s), emptySpine(), true
	default:
		prefix := spinePrefix[E](s)
		suffix := spineSuffix[E](s)
		if bufferLen(prefix) >= 2 {
			head, rest, _ := bufferPopFront(prefix)
			return head, nodeSpine[E](spineLen(s)-1, rest, s.middle, suffix), true
		}
		head := bufferFirst(prefix)
		if spineMiddleEmpty(s) {
			recordUnderflow()
			return head, redistributeFromSuffix[E](suffix), true
		}
		newPrefixBuf, newMiddle, ok := popFrontSpine[buffer[E]](s.middle)
		if !ok {
			// Seriously wrong: a non-empty middle must yield a buffer. Never
			// triggered by a well-formed spine; fall back defensively.
			recordUnderflow()
			return head, redistributeFromSuffix[E](suffix), true
		}
		recordUnderflow()
		return head, nodeSpine[E](spineLen(s)-1, newPrefixBuf, newMiddle, suffix), true
	}
}

// popBackSpine is the mirror of popFrontSpine on the trailing edge.
func popBackSpine[E any](s *spine) (E, *spine, bool) {
	switch s.kind {
	case spineEmptyKind:
		var zero E
		return zero, s, false
	case spineSingleKind:
		return spineSingleVal[E](s), emptySpine(), true
	default:
		prefix := spinePrefix[E](s)
		suffix := spineSuffix[E](s)
		if bufferLen(suffix) >= 2 {
			last, rest, _ := bufferPopBack(suffix)
			return last, nodeSpine[E](spineLen(s)-1, prefix, s.middle, rest), true
		}
		last := bufferLast(suffix)
		if spineMiddleEmpty(s) {
			recordUnderflow()
			return last, redistributeFromPrefix[E](prefix), true
		}
		newSuffixBuf, newMiddle, ok := popBackSpine[buffer[E]](s.middle)
		if !ok {
			recordUnderflow()
			return last, redistributeFromPrefix[E](prefix), true
		}
		recordUnderflow()
		return last, nodeSpine[E](spineLen(s)-1, prefix, newMiddle, newSuffixBuf), true
	}
}

func spineFirst[E any](s *spine) (E, bool) {
	switch s.kind {
	case spineEmptyKind:
		var zero E
		return zero, false
	case spineSingleKind:
		return spineSingleVal[E](s), true
	default:
		return bufferFirst(spinePrefix[E](s)), true
	}
}

func spineLast[E any](s *spine) (E, bool) {
	switch s.kind {
	case spineEmptyKind:
		var zero E
		return zero, false
	case spineSingleKind:
		return spineSingleVal[E](s), true
	default:
		return bufferLast(spineSuffix[E](s)), true
	}
}

// appendSpine fuses two spines by pushing the left suffix and the right
// prefix into their respective middles and recursively fusing the middles.
// The recursion terminates because each level deepens the element type;
// eventually both middles are empty and a base case fires.
func appendSpine[E any](a, b *spine) *spine {
	switch {
	case a.kind == spineEmptyKind:
		return b
	case b.kind == spineEmptyKind:
		return a
	case a.kind == spineSingleKind:
		return pushFrontSpine[E](spineSingleVal[E](a), b)
	case b.kind == spineSingleKind:
		return pushBackSpine[E](a, spineSingleVal[E](b))
	default:
		pa := spinePrefix[E](a)
		sa := spineSuffix[E](a)
		pb := spinePrefix[E](b)
		sb := spineSuffix[E](b)
		leftMiddle := pushBackSpine[buffer[E]](a.middle, sa)
		rightMiddle := pushFrontSpine[buffer[E]](pb, b.middle)
		newMiddle := appendSpine[buffer[E]](leftMiddle, rightMiddle)
		return nodeSpine[E](spineLen(a)+spineLen(b), pa, newMiddle, sb)
	}
}

// fromSliceSpine builds a spine from xs via repeated pushBack. This is a
// simplification of the source's grouped-insertBuffer construction: since
// spine shape is not part of the observable contract, folding pushBack one
// element at a time produces the same sequence in the same O(1)-amortized
// bound per element, with far less bookkeeping. The loop itself is flat —
// only the per-element pushBackSpine call recurses, and only O(log n) deep.
func fromSliceSpine[E any](xs []E) *spine {
	s := emptySpine()
	for _, x := range xs {
		s = pushBackSpine[E](s, x)
	}
	return s
}

// dropLeftSpine removes the first n elements by repeated popFront. Matches
// spec's amortized-bound allowance (strict per-operation worst case is an
// explicit non-goal) in exchange for a much simpler, obviously-correct loop
// than the buffer-migrating fast path described for the source.
func dropLeftSpine[E any](n int, s *spine) *spine {
	if n <= 0 {
		return s
	}
	if n >= spineLen(s) {
		return emptySpine()
	}
	cur := s
	for i := 0; i < n; i++ {
		_, next, ok := popFrontSpine[E](cur)
		if !ok {
			break
		}
		cur = next
	}
	return cur
}

// dropRightSpine is the mirror of dropLeftSpine.
func dropRightSpine[E any](n int, s *spine) *spine {
	if n <= 0 {
		return s
	}
	if n >= spineLen(s) {
		return emptySpine()
	}
	cur := s
	for i := 0; i < n; i++ {
		_, next, ok := popBackSpine[E](cur)
		if !ok {
			break
		}
		cur = next
	}
	return cur
}

func leftSpine[E any](n int, s *spine) *spine {
	total := spineLen(s)
	if n >= total {
		return s
	}
	if n <= 0 {
		return emptySpine()
	}
	return dropRightSpine[E](total-n, s)
}

func rightSpine[E any](n int, s *spine) *spine {
	total := spineLen(s)
	if n >= total {
		return s
	}
	if n <= 0 {
		return emptySpine()
	}
	return dropLeftSpine[E](total-n, s)
}

// memberSpine scans front to back, short-circuiting on the first match.
func memberSpine[E any](x E, eq func(E, E) bool, s *spine) bool {
	cur := s
	for {
		head, rest, ok := popFrontSpine[E](cur)
		if !ok {
			return false
		}
		if eq(x, head) {
			return true
		}
		cur = rest
	}
}

// foldlSpine folds f left to right. Recursion depth equals spine depth,
// O(log n) — safe regardless of how many elements the deque holds.
func foldlSpine[E, B any](f func(B, E) B, seed B, s *spine) B {
	switch s.kind {
	case spineEmptyKind:
		return seed
	case spineSingleKind:
		return f(seed, spineSingleVal[E](s))
	default:
		acc := bufferFoldl(f, seed, spinePrefix[E](s))
		acc = foldlSpine[buffer[E], B](func(b B, buf buffer[E]) B {
			return bufferFoldl(f, b, buf)
		}, acc, s.middle)
		acc = bufferFoldl(f, acc, spineSuffix[E](s))
		return acc
	}
}

// foldrSpine is the mirror of foldlSpine, folding right to left.
func foldrSpine[E, B any](f func(E, B) B, seed B, s *spine) B {
	switch s.kind {
	case spineEmptyKind:
		return seed
	case spineSingleKind:
		return f(spineSingleVal[E](s), seed)
	default:
		acc := bufferFoldr(f, seed, spineSuffix[E](s))
		acc = foldrSpine[buffer[E], B](func(buf buffer[E], b B) B {
			return bufferFoldr(f, b, buf)
		}, acc, s.middle)
		acc = bufferFoldr(f, acc, spinePrefix[E](s))
		return acc
	}
}

// toSliceSpine materialises the spine front to back.
func toSliceSpine[E any](s *spine) []E {
	out := make([]E, 0, spineLen(s))
	return foldlSpine[E, []E](func(acc []E, x E) []E {
		return append(acc, x)
	}, out, s)
}

// mapSpine is structure-preserving: Empty stays Empty, Single maps its one
// element, Node keeps len and maps each edge buffer while recursing into
// middle with f lifted to operate on buffer[E] instead of E.
func mapSpine[E, U any](f func(E) U, s *spine) *spine {
	switch s.kind {
	case spineEmptyKind:
		return emptySpine()
	case spineSingleKind:
		return singleSpine[U](f(spineSingleVal[E](s)))
	default:
		newPrefix := bufferMap(f, spinePrefix[E](s))
		newSuffix := bufferMap(f, spineSuffix[E](s))
		newMiddle := mapSpine[buffer[E], buffer[U]](func(buf buffer[E]) buffer[U] {
			return bufferMap(f, buf)
		}, s.middle)
		return nodeSpine[U](spineLen(s), newPrefix, newMiddle, newSuffix)
	}
}

// filterSpine keeps elements satisfying p via a left-fold that pushes back
// into a fresh accumulator spine.
func filterSpine[E any](p func(E) bool, s *spine) *spine {
	return foldlSpine[E, *spine](func(acc *spine, x E) *spine {
		if p(x) {
			return pushBackSpine[E](acc, x)
		}
		return acc
	}, emptySpine(), s)
}

// filterMapSpine applies g to every element, keeping the mapped value when
// g reports ok.
func filterMapSpine[E, U any](g func(E) (U, bool), s *spine) *spine {
	return foldlSpine[E, *spine](func(acc *spine, x E) *spine {
		if u, ok := g(x); ok {
			return pushBackSpine[U](acc, u)
		}
		return acc
	}, emptySpine(), s)
}

type partitionAcc struct {
	yes, no *spine
}

// partitionSpine splits s into (matching, nonMatching), order preserved.
func partitionSpine[E any](p func(E) bool, s *spine) (*spine, *spine) {
	result := foldlSpine[E, partitionAcc](func(acc partitionAcc, x E) partitionAcc {
		if p(x) {
			return partitionAcc{pushBackSpine[E](acc.yes, x), acc.no}
		}
		return partitionAcc{acc.yes, pushBackSpine[E](acc.no, x)}
	}, partitionAcc{emptySpine(), emptySpine()}, s)
	return result.yes, result.no
}

// equalsSpine compares by length then by sequence contents. Structural
// comparison of the spine itself is deliberately not used: two equal
// sequences can be built with different shapes (see fromSliceSpine's note).
func equalsSpine[E any](a, b *spine, eq func(E, E) bool) bool {
	if spineLen(a) != spineLen(b) {
		return false
	}
	sa := toSliceSpine[E](a)
	sb := toSliceSpine[E](b)
	for i := range sa {
		if !eq(sa[i], sb[i]) {
			return false
		}
	}
	return true
}
