// Package rope implements an immutable, persistent string built from a tree
// of concatenation and slice views over shared 16-bit code-unit storage.
//
// # Why a rope
//
// Repeated concatenation and slicing of an ordinary contiguous string is
// quadratic: every operation copies. A rope instead builds a small tree
// node that references its inputs, so Append and Slice are O(1) and share
// storage with the ropes they were built from. Short results (below
// MinSliceLength code units) are eagerly flattened into a contiguous leaf,
// so small strings never pay tree-traversal overhead.
//
// # Code units, not runes
//
// The atomic element of a rope is a 16-bit code unit, not a Unicode code
// point. Text outside the Basic Multilingual Plane is stored as the two
// surrogate code units UTF-16 would produce; this package never recombines
// them into a single rune. Unicode normalization, locale-aware comparison,
// and regular-expression search are all out of scope — callers that need
// them operate on the decoded output of String, not on the rope itself.
//
// # Thread safety
//
// A Node is immutable after construction: every operation returns a new
// Node, and existing ones are never mutated. Multiple goroutines may read
// the same Node concurrently. Iterators and the indexed/search structures
// built from a Node own private mutable state and must not be shared
// across goroutines mid-traversal.
package rope

import (
	"unicode/utf8"
	"unicode/utf16"
)

// MinSliceLength is the minimum code-unit length of a Slice or Concat node
// that survives construction. Shorter results are flattened into a leaf
// instead, which keeps short strings contiguous and bounds the depth of
// tree traversed per code unit for small outputs.
const MinSliceLength = 16

// Node is an immutable rope value. The concrete type is one of Empty,
// NarrowSingle, WideSingle, NarrowLeaf, WideLeaf, Slice, or Concat; callers
// should not type-switch on it directly — use the exported accessors and
// Flatten instead, since the concrete representation of any given string
// value is not guaranteed to be stable across equivalent constructions.
type Node interface {
	// Len returns the number of code units represented.
	Len() int
	// HasNarrowCodeUnits reports whether every code unit fits in 8 bits.
	// Slice over-approximates by delegating to its child; this is an
	// advisory predicate used to pick a Flatten target, not a strict one.
	HasNarrowCodeUnits() bool
}

// empty is the unique representation of the zero-length rope.
type empty struct{}

func (empty) Len() int                  { return 0 }
func (empty) HasNarrowCodeUnits() bool  { return true }

// Empty is the unique empty rope.
var Empty Node = empty{}

// narrowSingle holds exactly one 8-bit code unit.
type narrowSingle struct{ c byte }

func (n narrowSingle) Len() int                 { return 1 }
func (n narrowSingle) HasNarrowCodeUnits() bool { return true }

// wideSingle holds exactly one 16-bit code unit. Values below 256 are legal
// (the invariant "value >= 256 preferred" is advisory) and do occur: New
// builds one for a single non-ASCII character such as "é", and
// FromWideBuffer and Flatten can build them too.
type wideSingle struct{ c uint16 }

func (n wideSingle) Len() int                 { return 1 }
func (n wideSingle) HasNarrowCodeUnits() bool { return false }

// narrowLeaf owns a shared buffer of 8-bit code units, length >= 2. The
// buffer is never mutated after the leaf is built; Go's garbage collector
// keeps it alive for as long as any leaf (or slice thereof, structurally —
// see sliceNode) references it, which is this package's replacement for
// the spec's manual reference counting.
type narrowLeaf struct{ buf []byte }

func (n *narrowLeaf) Len() int                 { return len(n.buf) }
func (n *narrowLeaf) HasNarrowCodeUnits() bool { return true }

// wideLeaf owns a shared buffer of 16-bit code units, length >= 2.
type wideLeaf struct{ buf []uint16 }

func (n *wideLeaf) Len() int                 { return len(n.buf) }
func (n *wideLeaf) HasNarrowCodeUnits() bool { return false }

// sliceNode is a view over length code units of child starting at start.
// Invariant: start+length <= child.Len() and length >= MinSliceLength.
type sliceNode struct {
	child  Node
	start  int
	length int
}

func (n *sliceNode) Len() int                 { return n.length }
func (n *sliceNode) HasNarrowCodeUnits() bool { return n.child.HasNarrowCodeUnits() }

// concatNode is an ordered pair of children, neither of which is Empty.
// Invariant: total length >= MinSliceLength.
type concatNode struct {
	first, second Node
	length        int // memoized first.Len() + second.Len()
}

func (n *concatNode) Len() int { return n.length }
func (n *concatNode) HasNarrowCodeUnits() bool {
	return n.first.HasNarrowCodeUnits() && n.second.HasNarrowCodeUnits()
}

// ========== Construction ==========

// New builds a rope from a host Go string. The string is examined for
// length and whether every byte is in the ASCII range; non-ASCII input is
// transcoded to UTF-16 code units (so runes outside the Basic Multilingual
// Plane become surrogate pairs). This is the only place the narrow/wide
// distinction is assigned — every other operation preserves it by the
// flatten rules in Flatten.
func New(s string) Node {
	if len(s) == 0 {
		return Empty
	}
	if isASCII(s) {
		if len(s) == 1 {
			return narrowSingle{c: s[0]}
		}
		return &narrowLeaf{buf: []byte(s)}
	}

	units := utf16.Encode([]rune(s))
	if len(units) == 1 {
		return wideSingle{c: units[0]}
	}
	return &wideLeaf{buf: units}
}

func isASCII(s string) bool {
	for i := 0; i < len(s); i++ {
		if s[i] >= utf8.RuneSelf {
			return false
		}
	}
	return true
}

// FromNarrowBuffer builds a rope directly from a buffer of 8-bit code
// units, for interop and tests that want to bypass host-string decoding.
func FromNarrowBuffer(buf []byte) Node {
	switch len(buf) {
	case 0:
		return Empty
	case 1:
		return narrowSingle{c: buf[0]}
	default:
		cp := make([]byte, len(buf))
		copy(cp, buf)
		return &narrowLeaf{buf: cp}
	}
}

// FromWideBuffer builds a rope directly from a buffer of 16-bit code
// units, for interop and tests that want to bypass host-string decoding.
func FromWideBuffer(buf []uint16) Node {
	switch len(buf) {
	case 0:
		return Empty
	case 1:
		return wideSingle{c: buf[0]}
	default:
		cp := make([]uint16, len(buf))
		copy(cp, buf)
		return &wideLeaf{buf: cp}
	}
}

// ========== Append & Slice ==========

// Append concatenates a and b. If either side is empty, the other is
// returned unchanged — the spec this package implements documents a
// source where both-empty-on-either-side collapses the result to Empty;
// that is almost certainly a bug in the original and is not reproduced
// here (see DESIGN.md). The combined result is flattened immediately if
// its length would fall below MinSliceLength.
func Append(a, b Node) Node {
	if a.Len() == 0 {
		return b
	}
	if b.Len() == 0 {
		return a
	}

	n := &concatNode{first: a, second: b, length: a.Len() + b.Len()}
	if n.length < MinSliceLength {
		return Flatten(n)
	}
	return n
}

// Slice returns the length code units of r starting at start. length=0 or
// start>=r.Len() yields Empty; length is clamped to what remains of r. The
// result is flattened immediately if it would fall below MinSliceLength.
func Slice(r Node, start, length int) Node {
	if length <= 0 {
		return Empty
	}
	if start >= r.Len() {
		return Empty
	}
	if start < 0 {
		start = 0
	}
	if remaining := r.Len() - start; length > remaining {
		length = remaining
	}

	// Reduce Slice-of-Slice to a single slice of the underlying child
	// before building a node, per the spec's resolution of the
	// slice-offset-propagation open question.
	if s, ok := r.(*sliceNode); ok {
		n := &sliceNode{child: s.child, start: s.start + start, length: length}
		if n.length < MinSliceLength {
			return Flatten(n)
		}
		return n
	}

	n := &sliceNode{child: r, start: start, length: length}
	if n.length < MinSliceLength {
		return Flatten(n)
	}
	return n
}

// ========== Flatten ==========

// Flatten materializes any rope into one of the five leaf variants. It is
// a no-op (returns r unchanged) when r is already a leaf.
func Flatten(r Node) Node {
	switch r.(type) {
	case empty, narrowSingle, wideSingle, *narrowLeaf, *wideLeaf:
		return r
	}

	length := r.Len()
	switch {
	case length == 0:
		return Empty
	case length == 1:
		it := NewIterator(r)
		it.Next()
		if r.HasNarrowCodeUnits() {
			return narrowSingle{c: byte(it.Current())}
		}
		return wideSingle{c: it.Current()}
	case r.HasNarrowCodeUnits():
		buf := make([]byte, length)
		it := NewIterator(r)
		for i := 0; i < length; i++ {
			it.Next()
			buf[i] = byte(it.Current())
		}
		return &narrowLeaf{buf: buf}
	default:
		buf := make([]uint16, length)
		it := NewIterator(r)
		for i := 0; i < length; i++ {
			it.Next()
			buf[i] = it.Current()
		}
		return &wideLeaf{buf: buf}
	}
}
