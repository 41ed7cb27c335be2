package matrix

import "github.com/XVilka/lambdapi/internal/term"

// Constructor is one candidate head compile() tests column 0 against:
// either a declared symbol applied to exactly Arity arguments, a bound
// variable, or an abstraction. When Head is an Abs, that Abs's BVar is
// the single fresh bound variable every row's own body gets
// re-expressed over during this specialization round, so that rows
// contributed by different source rules end up sharing one bound
// variable identity rather than each keeping its own — the "shared fresh
// variable" spec.md §4.6's Abs/Abs case asks for.
type Constructor struct {
	Head  term.Term
	Arity int
}

// Heads collects the distinct constructor witnesses presented by column
// 0 of m, in first-appearance row order — the order compile() must walk
// its children in to preserve first-match rule priority (P5).
func Heads(store *term.Store, m Matrix) []Constructor {
	var out []Constructor
	seen := func(c Constructor) bool {
		for _, o := range out {
			if sameConstructor(o, c) {
				return true
			}
		}
		return false
	}
	for _, row := range m {
		if len(row.LHS) == 0 || !IsPattern(row.Env, row.LHS[0]) {
			continue
		}
		c := witness(store, row.Env, row.LHS[0])
		if !seen(c) {
			out = append(out, c)
		}
	}
	return out
}

// witness resolves t to the Constructor it presents, recursing through an
// already-bound non-linear pattern variable (env[idx].Value()) to the
// concrete sub-term it stands for — mirroring specFilter's own recursive
// branch for the same case, so a repeated pattern variable can be
// switched on exactly like any other constructor-bearing column.
func witness(store *term.Store, env []term.TESlot, t term.Term) Constructor {
	if patt, ok := term.Unfold(t).(term.Patt); ok && patt.Index != nil {
		idx := patt.Index.Idx
		if idx < len(env) && env[idx].IsSome() {
			return witness(store, env, env[idx].Value())
		}
	}
	head, args := term.HeadAndArgs(t)
	switch h := head.(type) {
	case term.Sym:
		return Constructor{Head: h, Arity: len(args)}
	case term.Var:
		return Constructor{Head: h}
	case term.Abs:
		return Constructor{Head: term.Abs{Dom: h.Dom, BVar: store.FreshVar("_"), Body: nil}}
	default:
		panic("lambdapi/matrix: structural bug — non-constructor head in Heads witness")
	}
}

func sameConstructor(a, b Constructor) bool {
	switch ah := a.Head.(type) {
	case term.Sym:
		bh, ok := b.Head.(term.Sym)
		return ok && ah.Symbol == bh.Symbol && a.Arity == b.Arity
	case term.Var:
		bh, ok := b.Head.(term.Var)
		return ok && ah.V == bh.V
	case term.Abs:
		_, ok := b.Head.(term.Abs)
		return ok
	default:
		return false
	}
}

// Specialize restricts m to rows whose column 0 matches constructor c,
// rewriting each retained row to reflect the step of matching just
// performed (spec.md §4.6): column 0 is replaced by the columns c's
// shape demands — c.Arity argument columns for a symbol witness, the
// opened body for an abstraction, nothing for a bare variable or an
// already-bound non-linear re-occurrence — and a first occurrence of a
// non-linear pattern variable gets its slot bound to the concrete
// sub-term this row actually matched, for later occurrences of the same
// slot to compare against.
func Specialize(c Constructor, m Matrix) Matrix {
	var out Matrix
	for _, row := range m {
		if len(row.LHS) == 0 {
			continue
		}
		keep, cols := specFilter(c, row.LHS[0], row.Env)
		if !keep {
			continue
		}
		newLHS := make([]term.Term, 0, len(cols)+len(row.LHS)-1)
		newLHS = append(newLHS, cols...)
		newLHS = append(newLHS, row.LHS[1:]...)
		out = append(out, Row{LHS: newLHS, RHS: row.RHS, Env: bindSlot(row.Env, row.LHS[0], c, cols), Rule: row.Rule})
	}
	return out
}

// Default restricts m to rows whose column 0 is still a pattern hole,
// dropping that column; rows starting with a true constructor head are
// excluded. It is compile()'s fallback branch for constructor tests none
// of the matrix's own witnesses were asked to cover.
func Default(m Matrix) Matrix {
	var out Matrix
	for _, row := range m {
		if len(row.LHS) == 0 {
			continue
		}
		if IsPattern(row.Env, row.LHS[0]) {
			continue
		}
		out = append(out, Row{LHS: row.LHS[1:], RHS: row.RHS, Env: row.Env, Rule: row.Rule})
	}
	return out
}

// specFilter is spec.md §4.6's spec_filter table, read against a single
// (constructor, row-head) pair. It returns whether the row survives
// specialization on c and, if so, the columns that replace the row's
// matched head.
func specFilter(c Constructor, h term.Term, env []term.TESlot) (keep bool, cols []term.Term) {
	u := term.Unfold(h)
	if patt, ok := u.(term.Patt); ok {
		if patt.Index == nil {
			return true, wildcardCols(c)
		}
		idx := patt.Index.Idx
		if idx >= len(env) || !env[idx].IsSome() {
			return true, wildcardCols(c)
		}
		// Non-linear pattern variable already bound by an earlier
		// occurrence: recurse against the concrete value it was bound
		// to, but contribute no new columns of our own — the
		// decomposition already happened at the binding occurrence.
		keep2, _ := specFilter(c, env[idx].Value(), env)
		return keep2, nil
	}
	switch ch := c.Head.(type) {
	case term.Sym:
		head, args := term.HeadAndArgs(u)
		hs, ok := head.(term.Sym)
		if !ok || hs.Symbol != ch.Symbol || len(args) != c.Arity {
			return false, nil
		}
		return true, args
	case term.Var:
		hv, ok := u.(term.Var)
		return ok && hv.V == ch.V, nil
	case term.Abs:
		ha, ok := u.(term.Abs)
		if !ok {
			return false, nil
		}
		return true, []term.Term{term.Subst1(ha.Body, ha.BVar, term.Var{V: ch.BVar})}
	default:
		return false, nil
	}
}

// bindSlot records, for the first-seen occurrence of any indexed pattern
// variable, the concrete sub-term this row matched at that position —
// reconstructed from the constructor tested and the columns it yielded —
// so that a later occurrence of the same slot can be checked for
// consistency via specFilter's recursive branch above. Index-less
// patterns (wildcards and linear variables the RHS does not use), and
// slots already bound, are left untouched.
func bindSlot(env []term.TESlot, h term.Term, c Constructor, cols []term.Term) []term.TESlot {
	patt, ok := term.Unfold(h).(term.Patt)
	if !ok || patt.Index == nil {
		return env
	}
	idx := patt.Index.Idx
	if idx >= len(env) || env[idx].IsSome() {
		return env
	}
	newEnv := append([]term.TESlot{}, env...)
	newEnv[idx] = term.TESome(reconstruct(c, cols))
	return newEnv
}

func reconstruct(c Constructor, cols []term.Term) term.Term {
	switch ch := c.Head.(type) {
	case term.Sym:
		return term.AddArgs(ch, cols)
	case term.Var:
		return ch
	case term.Abs:
		body := term.Term(term.Patt{Name: "_"})
		if len(cols) > 0 {
			body = cols[0]
		}
		return term.Abs{Dom: ch.Dom, BVar: ch.BVar, Body: body}
	default:
		return ch
	}
}
