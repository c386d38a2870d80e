package rope

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNew_Empty(t *testing.T) {
	r := New("")
	assert.Equal(t, 0, r.Len())
	assert.Equal(t, Empty, r)
}

func TestNew_SingleNarrow(t *testing.T) {
	r := New("a")
	assert.Equal(t, 1, r.Len())
	assert.True(t, r.HasNarrowCodeUnits())
	assert.IsType(t, narrowSingle{}, r)
}

func TestNew_NarrowLeaf(t *testing.T) {
	r := New("0123456789")
	assert.Equal(t, 10, r.Len())
	assert.True(t, r.HasNarrowCodeUnits())
	assert.IsType(t, &narrowLeaf{}, r)
	assert.Equal(t, "0123456789", String(r))
}

func TestNew_WideSingle(t *testing.T) {
	r := New("疸")
	assert.Equal(t, 1, r.Len())
	assert.False(t, r.HasNarrowCodeUnits())
	assert.IsType(t, wideSingle{}, r)
}

func TestNew_WideLeaf(t *testing.T) {
	r := New("Hello 疸뒪뎳")
	assert.Equal(t, 9, r.Len()) // "Hello " (6) + 3 BMP characters
	assert.False(t, r.HasNarrowCodeUnits())
	assert.Equal(t, "Hello 疸뒪뎳", String(r))
}

// S9: a rune outside the BMP round-trips through a surrogate pair and is
// never recombined internally: Len reports 2 code units.
func TestNew_SurrogatePair(t *testing.T) {
	r := New("😴")
	assert.Equal(t, 2, r.Len())
	assert.False(t, r.HasNarrowCodeUnits())
	assert.Equal(t, "😴", String(r))
}

func TestFromNarrowBuffer_FromWideBuffer(t *testing.T) {
	assert.Equal(t, Empty, FromNarrowBuffer(nil))
	assert.IsType(t, narrowSingle{}, FromNarrowBuffer([]byte{'x'}))
	assert.IsType(t, &narrowLeaf{}, FromNarrowBuffer([]byte{'x', 'y'}))

	assert.Equal(t, Empty, FromWideBuffer(nil))
	assert.IsType(t, wideSingle{}, FromWideBuffer([]uint16{0x1234}))
	assert.IsType(t, &wideLeaf{}, FromWideBuffer([]uint16{0x1234, 0x5678}))
}

func TestAppend_LengthConservation(t *testing.T) {
	a, b := New("hello"), New(" world, this is a longer tail")
	r := Append(a, b)
	assert.Equal(t, a.Len()+b.Len(), r.Len())
	assert.Equal(t, "hello world, this is a longer tail", String(r))
}

// The spec's source returns Empty whenever either Append operand is
// empty; this is documented as almost certainly unintended (see
// DESIGN.md). This package follows the natural semantics instead.
func TestAppend_EmptyOperandReturnsOther(t *testing.T) {
	x := New("non-empty")
	assert.Same(t, x, Append(x, Empty))
	assert.Same(t, x, Append(Empty, x))
}

func TestAppend_FlattensBelowMinSlice(t *testing.T) {
	r := Append(New("ab"), New("cd"))
	assert.Less(t, r.Len(), MinSliceLength)
	assert.IsType(t, &narrowLeaf{}, r)
}

func TestAppend_StaysTreeAboveMinSlice(t *testing.T) {
	r := Append(New("0123456789"), New("abcdefghij"))
	assert.GreaterOrEqual(t, r.Len(), MinSliceLength)
	assert.IsType(t, &concatNode{}, r)
	assert.Equal(t, "0123456789abcdefghij", String(r))
}

func TestSlice_ZeroLengthOrPastEnd(t *testing.T) {
	r := New("0123456789")
	assert.Equal(t, Empty, Slice(r, 0, 0))
	assert.Equal(t, Empty, Slice(r, 100, 5))
}

func TestSlice_ClampsLength(t *testing.T) {
	r := New("0123456789")
	s := Slice(r, 5, 100)
	assert.Equal(t, 5, s.Len())
	assert.Equal(t, "56789", String(s))
}

func TestSlice_FlattensBelowMinSlice(t *testing.T) {
	long := New("01234567890123456789") // 20 code units
	s := Slice(long, 2, 5)
	assert.Equal(t, 5, s.Len())
	assert.IsType(t, &narrowLeaf{}, s)
	assert.Equal(t, "23456", String(s))
}

func TestSlice_StaysSliceAboveMinSlice(t *testing.T) {
	long := New("012345678901234567890123456789") // 30 code units
	s := Slice(long, 2, 20)
	assert.IsType(t, &sliceNode{}, s)
	assert.Equal(t, "23456789012345678901", String(s))
}

// Slice of Slice is reduced to a single Slice of the underlying child
// before a node is built, per the spec's resolution of the
// slice-offset-propagation open question.
func TestSlice_OfSliceCollapses(t *testing.T) {
	long := New("012345678901234567890123456789")
	outer := Slice(long, 2, 20) // "23456789012345678901"
	inner := Slice(outer, 3, 10)

	if sl, ok := inner.(*sliceNode); ok {
		_, ok := sl.child.(*sliceNode)
		assert.False(t, ok, "slice-of-slice should collapse to a single level")
	}
	assert.Equal(t, "5678901234", String(inner))
}

func TestFlatten_Idempotent(t *testing.T) {
	r := Append(New("0123456789"), New("abcdefghij"))
	f1 := Flatten(r)
	f2 := Flatten(f1)
	assert.Same(t, f1, f2)
	assert.Equal(t, String(r), String(f1))
}

func TestFlatten_PicksWideWhenAnyWideUnitPresent(t *testing.T) {
	r := rawConcat(New("0123456789"), New("疸"))
	f := Flatten(r)
	assert.IsType(t, &wideLeaf{}, f)
}

func TestEqual(t *testing.T) {
	a := Append(New("hello "), New("world"))
	b := New("hello world")
	assert.True(t, Equal(a, b))
	assert.True(t, Equal(b, a))
	assert.False(t, Equal(a, New("hello World")))
}

func TestCompare_Lexicographic(t *testing.T) {
	assert.Equal(t, -1, Compare(New("abc"), New("abd")))
	assert.Equal(t, 0, Compare(New("abc"), New("abc")))
	assert.Equal(t, 1, Compare(New("abd"), New("abc")))
	assert.Equal(t, -1, Compare(New("ab"), New("abc")))
}

func TestHash_EqualRopesHashEqual(t *testing.T) {
	a := Append(New("hello "), New("world"))
	b := New("hello world")
	assert.True(t, Equal(a, b))
	assert.Equal(t, Hash(a), Hash(b))
}

func TestHasNarrowCodeUnits_SliceOverApproximates(t *testing.T) {
	// The window covers only the narrow "01234", but the child also holds
	// wide units, so the delegated predicate reports false.
	wide := rawConcat(New("0123456789"), New("疸疸疸疸疸疸疸疸疸疸疸疸疸疸疸疸疸疸"))
	s := rawSlice(wide, 0, 5)
	assert.False(t, s.HasNarrowCodeUnits())
}
