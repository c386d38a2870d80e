package rope

// rawConcat and rawSlice bypass the MinSliceLength flatten that Append and
// Slice perform, for tests that need to exercise genuinely nested
// Concat/Slice trees shorter than the threshold (the spec's own worked
// examples, e.g. S2-S4, construct such trees directly).
func rawConcat(a, b Node) Node {
	return &concatNode{first: a, second: b, length: a.Len() + b.Len()}
}

func rawSlice(child Node, start, length int) Node {
	return &sliceNode{child: child, start: start, length: length}
}
