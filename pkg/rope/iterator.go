package rope

// Iterator is a stateful, left-to-right traversal over the code units of a
// rope. It is single-use and forward-only. The zero value is not usable —
// construct one with NewIterator.
//
// Semantics mirror the teacher's rune Iterator (runes_iter.go): Current
// returns the code unit most recently produced by Next, and the only
// mutable state is a cursor into the active subtree plus a LIFO stack of
// subtrees deferred by Concat, each paired with its own upper bound. The
// bound exists because a Slice narrows the window its descendants are
// allowed to contribute from; Concat either drops a child outright (when
// the window excludes it), descends, or pushes it for later, carrying an
// adjusted bound along.
type Iterator struct {
	active  Node
	cursor  int
	bound   int  // only meaningful when boundSet is true
	boundSet bool
	stack   []frame
	current uint16
}

type frame struct {
	node     Node
	bound    int
	boundSet bool
}

// NewIterator returns an iterator positioned before the first code unit of
// r.
func NewIterator(r Node) *Iterator {
	return &Iterator{active: r}
}

// Len returns r.Len(), the total number of code units an iterator over r
// produces from its start (size_hint in the spec). It does not track the
// iterator's progress: code units already consumed are still counted.
func (it *Iterator) Len(r Node) int { return r.Len() }

// Current returns the code unit produced by the most recent call to Next.
// It is only valid after Next has returned true.
func (it *Iterator) Current() uint16 { return it.current }

// Next advances to, and returns, the next code unit. It returns false when
// the rope is exhausted.
func (it *Iterator) Next() bool {
	for {
		switch n := it.active.(type) {
		case empty:
			if !it.popFrame() {
				return false
			}

		case narrowSingle:
			it.current = uint16(n.c)
			it.popFrame()
			return true

		case wideSingle:
			it.current = n.c
			it.popFrame()
			return true

		case *narrowLeaf:
			limit := len(n.buf)
			if it.boundSet && it.bound < limit {
				limit = it.bound
			}
			if it.cursor >= limit {
				if !it.popFrame() {
					return false
				}
				continue
			}
			it.current = uint16(n.buf[it.cursor])
			it.cursor++
			return true

		case *wideLeaf:
			limit := len(n.buf)
			if it.boundSet && it.bound < limit {
				limit = it.bound
			}
			if it.cursor >= limit {
				if !it.popFrame() {
					return false
				}
				continue
			}
			it.current = n.buf[it.cursor]
			it.cursor++
			return true

		case *sliceNode:
			// cursor and (if set) bound are expressed in the slice's own
			// exposed-range plane (0 at the slice's first code unit);
			// translate both into the child's plane by adding n.start,
			// capping the window width at n.length.
			newCursor := it.cursor + n.start
			width := n.length
			if it.boundSet && it.bound < width {
				width = it.bound
			}
			it.active = n.child
			it.cursor = newCursor
			it.bound = n.start + width
			it.boundSet = true

		case *concatNode:
			if !it.boundSet {
				it.pushFrame(n.second, 0, false)
				it.active = n.first
				continue
			}

			firstLen := n.first.Len()
			if firstLen <= it.cursor {
				it.cursor -= firstLen
				it.active = n.second
				it.bound -= firstLen
				continue
			}

			if it.bound > firstLen {
				it.pushFrame(n.second, it.bound-firstLen, true)
			}
			it.active = n.first
		}
	}
}

func (it *Iterator) pushFrame(node Node, bound int, boundSet bool) {
	it.stack = append(it.stack, frame{node: node, bound: bound, boundSet: boundSet})
}

// popFrame restores the next deferred subtree, resetting the cursor. It
// reports whether a frame was available; when none is, the active node
// becomes Empty so the iterator stays exhausted.
func (it *Iterator) popFrame() bool {
	if len(it.stack) == 0 {
		it.active = Empty
		return false
	}
	top := it.stack[len(it.stack)-1]
	it.stack = it.stack[:len(it.stack)-1]
	it.active = top.node
	it.cursor = 0
	it.bound = top.bound
	it.boundSet = top.boundSet
	return true
}

// Skip advances the iterator by n code units without materializing them,
// by computing the remaining count in the current leaf chunk and jumping
// directly to it when possible. It reports the number of code units
// actually skipped (fewer than n only at end of input).
func (it *Iterator) Skip(n int) int {
	skipped := 0
	for skipped < n {
		switch node := it.active.(type) {
		case empty:
			if !it.popFrame() {
				return skipped
			}

		case narrowSingle, wideSingle:
			it.popFrame()
			skipped++

		case *narrowLeaf:
			limit := len(node.buf)
			if it.boundSet && it.bound < limit {
				limit = it.bound
			}
			remaining := limit - it.cursor
			if remaining <= 0 {
				if !it.popFrame() {
					return skipped
				}
				continue
			}
			take := n - skipped
			if take < remaining {
				it.cursor += take
				return skipped + take
			}
			it.cursor += remaining
			skipped += remaining

		case *wideLeaf:
			limit := len(node.buf)
			if it.boundSet && it.bound < limit {
				limit = it.bound
			}
			remaining := limit - it.cursor
			if remaining <= 0 {
				if !it.popFrame() {
					return skipped
				}
				continue
			}
			take := n - skipped
			if take < remaining {
				it.cursor += take
				return skipped + take
			}
			it.cursor += remaining
			skipped += remaining

		default:
			// Descend one step via Next's own structural handling, then
			// retry the fast path on whatever became active.
			saved := skipped
			if !it.Next() {
				return saved
			}
			skipped++
		}
	}
	return skipped
}

func min(a, b int) int {
	if a < b {
		return a
	}
	return b
}
