package rope

import "sort"

// chunk is one entry of an Indexed form: either a single code unit, or a
// run of a shared narrow/wide buffer starting at a local offset. A chunk
// never spans a rope-leaf boundary, and a single rope leaf contributes at
// most one chunk (with an adjusted start, if reached through a Slice).
type chunk struct {
	single    bool
	singleVal uint16
	narrow    []byte
	wide      []uint16
	start     int
	length    int
}

func (c chunk) at(local int) uint16 {
	if c.single {
		return c.singleVal
	}
	if c.narrow != nil {
		return uint16(c.narrow[c.start+local])
	}
	return c.wide[c.start+local]
}

// Indexed is an auxiliary structure built once from a rope, mapping an
// absolute code-unit index to the leaf containing it via binary search.
// Build it when a workload does many random lookups on one rope; for a
// single streaming pass, use Iterator instead.
type Indexed struct {
	offsets []int // strictly increasing, offsets[0] == 0
	chunks  []chunk
	length  int
}

// IndexError reports an out-of-range access into an Indexed form. at(i) is
// a caller-contract violation per this package's spec, not a recoverable
// condition, so Indexed.At panics with one of these rather than returning
// an error.
type IndexError struct {
	Index  int
	Length int
}

func (e *IndexError) Error() string {
	return "rope: index out of bounds"
}

// BuildIndexed linearizes r into its indexed form. The traversal is the
// same depth-first left-to-right process Iterator uses, implemented
// iteratively with an explicit work stack so it doesn't recurse through a
// deeply skewed tree.
func BuildIndexed(r Node) *Indexed {
	idx := &Indexed{length: r.Len()}

	type work struct {
		node     Node
		cursor   int
		bound    int
		boundSet bool
	}
	stack := []work{{node: r}}

	offset := 0
	for len(stack) > 0 {
		w := stack[len(stack)-1]
		stack = stack[:len(stack)-1]

		switch n := w.node.(type) {
		case empty:
			// contributes nothing

		case narrowSingle:
			idx.offsets = append(idx.offsets, offset)
			idx.chunks = append(idx.chunks, chunk{single: true, singleVal: uint16(n.c)})
			offset++

		case wideSingle:
			idx.offsets = append(idx.offsets, offset)
			idx.chunks = append(idx.chunks, chunk{single: true, singleVal: n.c})
			offset++

		case *narrowLeaf:
			limit := len(n.buf)
			if w.boundSet && w.bound < limit {
				limit = w.bound
			}
			contributed := limit - w.cursor
			if contributed > 0 {
				idx.offsets = append(idx.offsets, offset)
				idx.chunks = append(idx.chunks, chunk{narrow: n.buf, start: w.cursor, length: contributed})
				offset += contributed
			}

		case *wideLeaf:
			limit := len(n.buf)
			if w.boundSet && w.bound < limit {
				limit = w.bound
			}
			contributed := limit - w.cursor
			if contributed > 0 {
				idx.offsets = append(idx.offsets, offset)
				idx.chunks = append(idx.chunks, chunk{wide: n.buf, start: w.cursor, length: contributed})
				offset += contributed
			}

		case *sliceNode:
			newCursor := w.cursor + n.start
			width := n.length
			if w.boundSet && w.bound < width {
				width = w.bound
			}
			stack = append(stack, work{node: n.child, cursor: newCursor, bound: n.start + width, boundSet: true})

		case *concatNode:
			if !w.boundSet {
				// Left-to-right: push second so it's processed after
				// first pops back off the stack.
				stack = append(stack, work{node: n.second})
				stack = append(stack, work{node: n.first})
				continue
			}

			firstLen := n.first.Len()
			if firstLen <= w.cursor {
				stack = append(stack, work{node: n.second, cursor: w.cursor - firstLen, bound: w.bound - firstLen, boundSet: true})
				continue
			}

			if w.bound > firstLen {
				stack = append(stack, work{node: n.second, bound: w.bound - firstLen, boundSet: true})
			}
			stack = append(stack, work{node: n.first, cursor: w.cursor, bound: w.bound, boundSet: w.boundSet})
		}
	}

	return idx
}

// At returns the code unit at absolute index i. It panics with an
// *IndexError if i is out of range — this mirrors the spec's "caller
// contract violation" failure surface for random access.
func (idx *Indexed) At(i int) uint16 {
	if i < 0 || i >= idx.length {
		panic(&IndexError{Index: i, Length: idx.length})
	}
	if len(idx.chunks) == 1 {
		return idx.chunks[0].at(i)
	}

	// Greatest offset <= i, i.e. sort.Search for the first offset > i and
	// step back one.
	pos := sort.Search(len(idx.offsets), func(k int) bool { return idx.offsets[k] > i }) - 1
	return idx.chunks[pos].at(i - idx.offsets[pos])
}

// Len returns the total number of code units indexed.
func (idx *Indexed) Len() int { return idx.length }
