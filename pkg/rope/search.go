package rope

// PatternFinder is a lazy iterator yielding all match offsets of a pattern
// rope in a text rope. It dispatches on (len(text), len(pattern)) into one
// of four behaviors and is itself a single-use, forward-only iterator —
// the only mutable state is a pair of cursors (plus, for the KMP case, a
// lazily built longest-prefix-suffix table).
type PatternFinder struct {
	mode patternMode

	// rangeEnd is used by modeRange.
	next, rangeEnd int

	// modeOnce: whether the single match (at offset 0) has been yielded.
	yielded bool
	equal   bool // for modeOnce: whether text == pattern (vs. both empty)

	// KMP state.
	text, pattern *Indexed
	lps           []int
	lpsBuilt      bool
	i, j          int
	done          bool
}

type patternMode int

const (
	modeOnce  patternMode = iota // yield 0 once, then stop
	modeRange                    // yield next, next+1, ..., rangeEnd-1
	modeNone                     // yield nothing
	modeKMP
)

// NewPatternFinder constructs a finder for pattern within text, dispatching
// on their lengths per the spec's table:
//
//	|text|=0, |pattern|=0            -> yield 0 once
//	|text|>0, |pattern|=0            -> yield 0..|text|-1
//	|text|=0, |pattern|>0            -> yield nothing
//	|text|<|pattern|                 -> yield nothing
//	|text|=|pattern|>0               -> yield 0 once iff text == pattern
//	|text|>|pattern|>0               -> KMP
func NewPatternFinder(text, pattern Node) *PatternFinder {
	tLen, pLen := text.Len(), pattern.Len()

	switch {
	case tLen == 0 && pLen == 0:
		return &PatternFinder{mode: modeOnce, equal: true}
	case tLen > 0 && pLen == 0:
		return &PatternFinder{mode: modeRange, next: 0, rangeEnd: tLen}
	case tLen == 0 && pLen > 0:
		return &PatternFinder{mode: modeNone}
	case tLen < pLen:
		return &PatternFinder{mode: modeNone}
	case tLen == pLen:
		return &PatternFinder{mode: modeOnce, equal: Equal(text, pattern)}
	default:
		return &PatternFinder{
			mode:    modeKMP,
			text:    BuildIndexed(text),
			pattern: BuildIndexed(pattern),
		}
	}
}

// Next returns the next match offset, and whether one was found.
func (f *PatternFinder) Next() (int, bool) {
	switch f.mode {
	case modeOnce:
		if f.yielded || !f.equal {
			return 0, false
		}
		f.yielded = true
		return 0, true

	case modeRange:
		if f.next >= f.rangeEnd {
			return 0, false
		}
		v := f.next
		f.next++
		return v, true

	case modeNone:
		return 0, false

	default: // modeKMP
		return f.nextKMP()
	}
}

func (f *PatternFinder) buildLPS() {
	pLen := f.pattern.Len()
	f.lps = make([]int, pLen)
	length := 0
	k := 1
	for k < pLen {
		if f.pattern.At(k) == f.pattern.At(length) {
			length++
			f.lps[k] = length
			k++
		} else if length != 0 {
			length = f.lps[length-1]
		} else {
			f.lps[k] = 0
			k++
		}
	}
	f.lpsBuilt = true
}

func (f *PatternFinder) nextKMP() (int, bool) {
	if f.done {
		return 0, false
	}
	if !f.lpsBuilt {
		f.buildLPS()
	}

	tLen, pLen := f.text.Len(), f.pattern.Len()
	for f.i < tLen {
		if f.pattern.At(f.j) == f.text.At(f.i) {
			f.j++
			f.i++
		}
		if f.j == pLen {
			match := f.i - f.j
			f.j = f.lps[f.j-1]
			return match, true
		} else if f.i < tLen && f.pattern.At(f.j) != f.text.At(f.i) {
			if f.j != 0 {
				f.j = f.lps[f.j-1]
			} else {
				f.i++
			}
		}
	}
	f.done = true
	return 0, false
}

// All drains the finder into an ordered slice of match offsets.
func All(text, pattern Node) []int {
	f := NewPatternFinder(text, pattern)
	var out []int
	for {
		v, ok := f.Next()
		if !ok {
			return out
		}
		out = append(out, v)
	}
}
