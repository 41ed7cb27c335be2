package term

// BuildMetaType returns the closed term ∀(x₁:A₁)…(x_k:A_k), A_{k+1}, the
// canonical "most general" type schema for a fresh pattern variable of
// arity k (spec.md §4.2). Each A_i is a fresh metavariable applied to
// x₁,…,x_{i-1}; each of those metavariables has type
// ∀(x₁:A₁)…(x_{i-1}:A_{i-1}), TYPE. All introduced metavariables are
// uninstantiated, pairwise distinct, and their types reference only
// earlier ones — IDs are assigned in the order built, so comparing IDs
// checks that invariant directly.
func BuildMetaType(store *Store, k int) Term {
	vars := make([]*BVar, k)
	doms := make([]Term, k+1) // doms[i] = A_{i+1}

	for j := 0; j <= k; j++ {
		metaType := prodChain(vars[:j], doms[:j], TType{})
		mv := store.FreshMeta(j, metaType, "")
		env := make([]Term, j)
		for i := 0; i < j; i++ {
			env[i] = Var{V: vars[i]}
		}
		doms[j] = Meta{M: mv, Env: env}
		if j < k {
			vars[j] = store.FreshVar("x")
		}
	}

	return prodChain(vars, doms[:k], doms[k])
}

// prodChain builds ∀(vars[0]:doms[0])…(vars[n-1]:doms[n-1]), final.
func prodChain(vars []*BVar, doms []Term, final Term) Term {
	result := final
	for i := len(vars) - 1; i >= 0; i-- {
		result = Prod{Dom: doms[i], BVar: vars[i], Body: result}
	}
	return result
}
