package term

// TESlot is one entry of a pattern matrix row's environment array: either
// TE_None (still unmatched) or TE_Some(binder) once the pattern variable
// has been bound to a matched sub-term. Binder is nil for TE_None.
type TESlot struct {
	Binder *MBinder
}

// TENone is the unmatched slot value.
var TENone = TESlot{}

// TESome wraps a bound sub-term as a zero-arity binder, the shape every
// consumer of a matrix row's environment expects (msubst with no extra
// arguments is just the stored term).
func TESome(t Term) TESlot {
	return TESlot{Binder: &MBinder{Body: t}}
}

// IsSome reports whether the slot has been bound.
func (s TESlot) IsSome() bool { return s.Binder != nil }

// Value returns the bound term, panicking on a TE_None slot — callers must
// check IsSome first; this is a structural bug, not a user-facing error.
func (s TESlot) Value() Term {
	if s.Binder == nil {
		panic("lambdapi/term: TE_None has no value")
	}
	return Msubst(s.Binder, nil)
}
