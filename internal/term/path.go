package term

// Path is a sequence of argument-spine steps addressing a sub-term
// inside a rule's left-hand side: Path{i, 0, 1, ...} means "the rule's
// i-th top-level argument, then its own applicand (0) or argument (1),
// and so on" — a Codept-style compact addressing, adapted from the
// teacher's own Codept/moveTo facility to this core's much simpler
// first-order pattern shape.
type Path []int

// Child returns the path reached by descending one more step (0 for an
// App's Fun side, 1 for its Arg side) from p.
func (p Path) Child(step int) Path {
	out := make(Path, len(p)+1)
	copy(out, p)
	out[len(p)] = step
	return out
}

// String renders p as dot-separated indices, or "<top>" for the root.
func (p Path) String() string {
	if len(p) == 0 {
		return "<top>"
	}
	s := itoa(p[0])
	for _, k := range p[1:] {
		s += "." + itoa(k)
	}
	return s
}
