package term

// AlphaEqual reports whether a and b are equal up to renaming of bound
// variables — the structural-equality-up-to-alpha contract Design Notes
// §9(i) requires of any binder re-implementation. It does not unfold
// metavariables beyond what Unfold already does at each head, matching
// every other traversal in this package.
func AlphaEqual(a, b Term) bool {
	return alphaEq(a, b, map[*BVar]*BVar{})
}

// env maps a-side BVars to the b-side BVar they were paired with when
// their common binder was crossed.
func alphaEq(a, b Term, env map[*BVar]*BVar) bool {
	a, b = Unfold(a), Unfold(b)
	switch x := a.(type) {
	case Var:
		y, ok := b.(Var)
		if !ok {
			return false
		}
		if paired, crossed := env[x.V]; crossed {
			return paired == y.V
		}
		return x.V == y.V
	case TType:
		_, ok := b.(TType)
		return ok
	case TKind:
		_, ok := b.(TKind)
		return ok
	case Sym:
		y, ok := b.(Sym)
		return ok && x.Symbol == y.Symbol
	case App:
		y, ok := b.(App)
		return ok && alphaEq(x.Fun, y.Fun, env) && alphaEq(x.Arg, y.Arg, env)
	case Abs:
		y, ok := b.(Abs)
		if !ok || !alphaEq(x.Dom, y.Dom, env) {
			return false
		}
		env2 := pair(env, x.BVar, y.BVar)
		return alphaEq(x.Body, y.Body, env2)
	case Prod:
		y, ok := b.(Prod)
		if !ok || !alphaEq(x.Dom, y.Dom, env) {
			return false
		}
		env2 := pair(env, x.BVar, y.BVar)
		return alphaEq(x.Body, y.Body, env2)
	case Meta:
		y, ok := b.(Meta)
		return ok && x.M == y.M && alphaEqSlice(x.Env, y.Env, env)
	case Patt:
		y, ok := b.(Patt)
		if !ok || !sameIndex(x.Index, y.Index) || x.Name != y.Name {
			return false
		}
		return alphaEqSlice(x.Env, y.Env, env)
	case TEnv:
		y, ok := b.(TEnv)
		return ok && x.Ref == y.Ref && alphaEqSlice(x.Env, y.Env, env)
	case Wild:
		_, ok := b.(Wild)
		return ok
	case TRef:
		y, ok := b.(TRef)
		return ok && x.Cell == y.Cell
	default:
		return false
	}
}

func pair(env map[*BVar]*BVar, a, b *BVar) map[*BVar]*BVar {
	env2 := make(map[*BVar]*BVar, len(env)+1)
	for k, v := range env {
		env2[k] = v
	}
	env2[a] = b
	return env2
}

func sameIndex(a, b *PattIndex) bool {
	if a == nil || b == nil {
		return a == b
	}
	return a.Idx == b.Idx
}

func alphaEqSlice(as, bs []Term, env map[*BVar]*BVar) bool {
	if len(as) != len(bs) {
		return false
	}
	for i := range as {
		if !alphaEq(as[i], bs[i], env) {
			return false
		}
	}
	return true
}
