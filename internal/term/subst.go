package term

// SubstVars performs one simultaneous, capture-avoiding substitution pass
// over t: each Var referencing one of the BVars in from is replaced by the
// corresponding term in to. Because the walk is single-pass and never
// revisits the terms it has just spliced in, an occurrence of from[i]
// inside to[j] is left untouched — this is P3's "simultaneous substitution"
// contract, not sequential substitution. Binders allocate no fresh
// variables here because arena-plus-index identity makes capture
// impossible: a substituted-in term's own BVars are distinct from any
// BVar newly crossed during the walk.
func SubstVars(t Term, from []*BVar, to []Term) Term {
	if len(from) == 0 {
		return t
	}
	switch x := Unfold(t).(type) {
	case Var:
		for i, v := range from {
			if v == x.V {
				return to[i]
			}
		}
		return x
	case App:
		return App{Fun: SubstVars(x.Fun, from, to), Arg: SubstVars(x.Arg, from, to)}
	case Abs:
		return Abs{Dom: SubstVars(x.Dom, from, to), BVar: x.BVar, Body: SubstVars(x.Body, from, to)}
	case Prod:
		return Prod{Dom: SubstVars(x.Dom, from, to), BVar: x.BVar, Body: SubstVars(x.Body, from, to)}
	case Meta:
		return Meta{M: x.M, Env: substSlice(x.Env, from, to)}
	case Patt:
		return Patt{Index: x.Index, Name: x.Name, Env: substSlice(x.Env, from, to)}
	case TEnv:
		return TEnv{Ref: x.Ref, Env: substSlice(x.Env, from, to)}
	default:
		return x
	}
}

func substSlice(ts []Term, from []*BVar, to []Term) []Term {
	if ts == nil {
		return nil
	}
	out := make([]Term, len(ts))
	for i, t := range ts {
		out[i] = SubstVars(t, from, to)
	}
	return out
}

// Msubst instantiates a multi-variable binder with args, one per slot, in
// a single simultaneous pass.
func Msubst(b *MBinder, args []Term) Term {
	if len(args) != b.Arity() {
		panic("lambdapi/term: msubst arity mismatch")
	}
	return SubstVars(b.Body, b.Vars, args)
}

// Subst1 substitutes a single bound variable throughout t. It is the
// degenerate, single-slot case of SubstVars, kept as a named entry point
// because capture-avoiding single substitution is how Abs/Prod bodies are
// opened when a caller needs a term rather than a binder (e.g. Abs.Open
// and Prod.Open below, and matrix specialization's Abs case).
func Subst1(t Term, v *BVar, s Term) Term {
	return SubstVars(t, []*BVar{v}, []Term{s})
}

// Open returns the body of b with its bound variable replaced by arg.
func (b Abs) Open(arg Term) Term { return Subst1(b.Body, b.BVar, arg) }

// Open returns the body of p with its bound variable replaced by arg.
func (p Prod) Open(arg Term) Term { return Subst1(p.Body, p.BVar, arg) }

// SubstEnvSlots replaces every TEnv node in t whose Ref is a key of metas
// by Meta{M: metas[ref], Env: <that TEnv's own Env, recursively spliced>}.
// This is stage (c) of the rule checker (spec.md §4.4): "build an
// environment-binder that substitutes Meta(m_i, env) for the slot."
// Because each TEnv already carries its own occurrence-site environment,
// the substitution needs no separate binder machinery — it is a one-pass
// rewrite keyed by slot identity.
func SubstEnvSlots(t Term, metas map[*EnvSlot]*MetaVar) Term {
	switch x := t.(type) {
	case TEnv:
		env := substEnvSlice(x.Env, metas)
		if m, ok := metas[x.Ref]; ok {
			return Meta{M: m, Env: env}
		}
		return TEnv{Ref: x.Ref, Env: env}
	case App:
		return App{Fun: SubstEnvSlots(x.Fun, metas), Arg: SubstEnvSlots(x.Arg, metas)}
	case Abs:
		return Abs{Dom: SubstEnvSlots(x.Dom, metas), BVar: x.BVar, Body: SubstEnvSlots(x.Body, metas)}
	case Prod:
		return Prod{Dom: SubstEnvSlots(x.Dom, metas), BVar: x.BVar, Body: SubstEnvSlots(x.Body, metas)}
	case Meta:
		return Meta{M: x.M, Env: substEnvSlice(x.Env, metas)}
	case Patt:
		return Patt{Index: x.Index, Name: x.Name, Env: substEnvSlice(x.Env, metas)}
	default:
		return x
	}
}

func substEnvSlice(ts []Term, metas map[*EnvSlot]*MetaVar) []Term {
	if ts == nil {
		return nil
	}
	out := make([]Term, len(ts))
	for i, t := range ts {
		out[i] = SubstEnvSlots(t, metas)
	}
	return out
}
