package term

// Unfold resolves transient references and instantiated metavariables at
// the head of t, recursing until a stable head is reached. Every traversal
// in this core applies Unfold at each head inspection (spec.md §3).
func Unfold(t Term) Term {
	for {
		switch x := t.(type) {
		case TRef:
			if x.Cell == nil || *x.Cell == nil {
				return t
			}
			t = *x.Cell
		case Meta:
			if x.M.instance == nil {
				return t
			}
			t = Msubst(x.M.instance, x.Env)
		default:
			return t
		}
	}
}

// HeadAndArgs repeatedly unfolds and peels App constructors, producing the
// head term and the left-to-right argument list.
func HeadAndArgs(t Term) (head Term, args []Term) {
	t = Unfold(t)
	for {
		app, ok := t.(App)
		if !ok {
			return t, args
		}
		args = append([]Term{app.Arg}, args...)
		t = Unfold(app.Fun)
	}
}

// AddArgs is the inverse of HeadAndArgs: it reapplies h to xs in order.
func AddArgs(h Term, xs []Term) Term {
	r := h
	for _, x := range xs {
		r = App{Fun: r, Arg: x}
	}
	return r
}

// HasMetas is a pure predicate: true iff any Meta node is reachable from t
// without crossing an instantiated metavariable (i.e. after Unfold).
func HasMetas(t Term) bool {
	switch x := Unfold(t).(type) {
	case Meta:
		return true
	case App:
		return HasMetas(x.Fun) || HasMetas(x.Arg)
	case Abs:
		return HasMetas(x.Dom) || HasMetas(x.Body)
	case Prod:
		return HasMetas(x.Dom) || HasMetas(x.Body)
	case Patt:
		for _, e := range x.Env {
			if HasMetas(e) {
				return true
			}
		}
		return false
	case TEnv:
		for _, e := range x.Env {
			if HasMetas(e) {
				return true
			}
		}
		return false
	default:
		return false
	}
}
