package rope

import "unicode/utf16"

// Len returns the number of code units represented by r. Leaves and slices
// store it, and Concat memoizes the sum at construction; this is a thin
// export for callers that prefer a function to the Node method.
func Len(r Node) int { return r.Len() }

// String materializes r to a host Go string: the code units are decoded
// as UTF-16, with lone surrogates and other ill-formed sequences replaced
// by U+FFFD, then re-encoded as UTF-8. This is the one place this package
// hands off to the standard library's own implementation of that
// replacement rule (unicode/utf16.Decode), rather than a bespoke one.
func String(r Node) string {
	units := ToUint16Slice(r)
	return string(utf16.Decode(units))
}

// ToUint16Slice materializes r to a slice of its raw 16-bit code units,
// narrow ones widened on the way out.
func ToUint16Slice(r Node) []uint16 {
	n := r.Len()
	if n == 0 {
		return nil
	}
	out := make([]uint16, n)
	it := NewIterator(r)
	for i := 0; i < n; i++ {
		it.Next()
		out[i] = it.Current()
	}
	return out
}

// IndexOf returns the first match offset of pattern within text, or
// (0, false) if pattern does not occur. An empty pattern always matches
// at offset 0, even against an empty text.
func IndexOf(text, pattern Node) (int, bool) {
	f := NewPatternFinder(text, pattern)
	return f.Next()
}

// StartsWith reports whether text begins with prefix. A prefix longer
// than text is never a match; otherwise the first len(prefix) code units
// of each are compared pairwise.
func StartsWith(text, prefix Node) bool {
	if prefix.Len() > text.Len() {
		return false
	}
	ti, pi := NewIterator(text), NewIterator(prefix)
	for pi.Next() {
		ti.Next()
		if ti.Current() != pi.Current() {
			return false
		}
	}
	return true
}

// Split breaks text on every occurrence of separator, up to limit pieces
// if limit is non-nil. Edge cases match a common platform's string-split
// semantics:
//
//   - limit == Some(0) yields no pieces at all.
//   - a separator of length 0 never produces a leading empty piece, but
//     with nonempty text it does split out every individual code unit.
//   - an empty text with a nonempty separator yields one empty piece.
//   - the final tail after the last match is emitted only if it's
//     nonempty (last_end < len(text)).
func Split(text, separator Node, limit *int) []Node {
	if limit != nil && *limit == 0 {
		return []Node{}
	}

	if text.Len() == 0 {
		if separator.Len() == 0 {
			return []Node{}
		}
		return []Node{Empty}
	}

	var pieces []Node
	underLimit := func() bool { return limit == nil || len(pieces) < *limit }

	lastEnd := 0
	f := NewPatternFinder(text, separator)
	sepLen := separator.Len()

	for underLimit() {
		matchStart, ok := f.Next()
		if !ok {
			break
		}
		if sepLen == 0 && matchStart == 0 {
			// Suppress the leading empty piece a zero-length separator
			// would otherwise produce at the very start of text.
			continue
		}
		pieces = append(pieces, Slice(text, lastEnd, matchStart-lastEnd))
		lastEnd = matchStart + sepLen
		if limit != nil && len(pieces) == *limit {
			return pieces
		}
	}

	if underLimit() && lastEnd < text.Len() {
		pieces = append(pieces, Slice(text, lastEnd, text.Len()-lastEnd))
	}
	return pieces
}
