package rope

import "hash/fnv"

// Equal reports whether a and b represent the same sequence of code
// units. Fast paths handle the common shapes (both empty, same leaf
// variant with equal payloads); otherwise it compares lengths and, if
// equal, walks both iterators element by element.
func Equal(a, b Node) bool {
	if a.Len() != b.Len() {
		return false
	}
	if a.Len() == 0 {
		return true
	}

	switch av := a.(type) {
	case narrowSingle:
		if bv, ok := b.(narrowSingle); ok {
			return av.c == bv.c
		}
	case wideSingle:
		if bv, ok := b.(wideSingle); ok {
			return av.c == bv.c
		}
	case *narrowLeaf:
		if bv, ok := b.(*narrowLeaf); ok {
			return bytesEqual(av.buf, bv.buf)
		}
	case *wideLeaf:
		if bv, ok := b.(*wideLeaf); ok {
			return uint16sEqual(av.buf, bv.buf)
		}
	}

	ai, bi := NewIterator(a), NewIterator(b)
	for ai.Next() {
		bi.Next()
		if ai.Current() != bi.Current() {
			return false
		}
	}
	return true
}

func bytesEqual(a, b []byte) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}

func uint16sEqual(a, b []uint16) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}

// Compare performs a lexicographic comparison of a and b over their code
// units, returning -1, 0, or 1.
func Compare(a, b Node) int {
	ai, bi := NewIterator(a), NewIterator(b)
	for {
		aOK, bOK := ai.Next(), bi.Next()
		switch {
		case !aOK && !bOK:
			return 0
		case !aOK:
			return -1
		case !bOK:
			return 1
		}
		if ai.Current() < bi.Current() {
			return -1
		}
		if ai.Current() > bi.Current() {
			return 1
		}
	}
}

// Hash writes every code unit of r, in iteration order, into an FNV-1a
// hash and returns the 32-bit sum. Equal ropes iterate identically
// regardless of structure, so Equal ropes always hash equal (the converse
// need not hold).
func Hash(r Node) uint32 {
	h := fnv.New32a()
	it := NewIterator(r)
	var buf [2]byte
	for it.Next() {
		c := it.Current()
		buf[0] = byte(c)
		buf[1] = byte(c >> 8)
		h.Write(buf[:])
	}
	return h.Sum32()
}
