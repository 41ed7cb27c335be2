// Package subst implements the typing-substitution builder (C3): given a
// list of convertibility constraints produced by inference, derive a
// simultaneous substitution that soundly resolves as many of them as
// possible, leaving the rest for the unifier.
package subst

import (
	"github.com/XVilka/lambdapi/internal/oracle"
	"github.com/XVilka/lambdapi/internal/term"
)

// Build runs the algorithm of spec.md §4.3 over cs and returns the
// parallel (xs, ts) arrays such that substituting xs[i] ↦ ts[i]
// simultaneously is a sound solution of as many constraints as possible.
//
// Constraints are processed in input order; an injective-symbol
// decomposition recurses into its pointwise sub-constraints before moving
// on, so decomposed constraints are resolved depth-first rather than
// appended after the rest of the input — the spec's "continue" after step
// 2 describes exactly this recursive-descent shape. The final array order
// is otherwise immaterial: substitution is applied simultaneously (never
// sequentially), so which of several recorded (x, t) pairs "wins" for a
// given x would only matter if a variable were constrained twice, which a
// well-formed pattern LHS never produces (each pattern variable's type
// metavariable occurs exactly once as the head of a var-only side).
func Build(oracles oracle.Oracles, cs []oracle.Constraint) (xs []*term.BVar, ts []term.Term) {
	var accept func(c oracle.Constraint)
	accept = func(c oracle.Constraint) {
		ha, argsA := term.HeadAndArgs(c.A)
		hb, argsB := term.HeadAndArgs(c.B)

		if sa, ok := ha.(term.Sym); ok {
			if sb, ok := hb.(term.Sym); ok {
				if sa.Symbol == sb.Symbol && oracles.IsInjective(sa.Symbol) && len(argsA) == len(argsB) {
					// P2: injective decomposition adds no direct mapping,
					// emits the pointwise constraints in order.
					for i := range argsA {
						accept(oracle.Constraint{A: argsA[i], B: argsB[i]})
					}
					return
				}
			}
		}

		if va, ok := ha.(term.Var); ok && len(argsA) == 0 {
			xs = append(xs, va.V)
			ts = append(ts, c.B)
			return
		}
		if vb, ok := hb.(term.Var); ok && len(argsB) == 0 {
			xs = append(xs, vb.V)
			ts = append(ts, c.A)
			return
		}
		// Otherwise drop: left for the unification oracle to resolve
		// after the substitution built so far has been applied.
	}

	for _, c := range cs {
		accept(c)
	}
	return xs, ts
}

// Apply substitutes (xs, ts) simultaneously into t.
func Apply(t term.Term, xs []*term.BVar, ts []term.Term) term.Term {
	return term.SubstVars(t, xs, ts)
}

// ApplyConstraints substitutes (xs, ts) simultaneously into both sides of
// each constraint.
func ApplyConstraints(cs []oracle.Constraint, xs []*term.BVar, ts []term.Term) []oracle.Constraint {
	out := make([]oracle.Constraint, len(cs))
	for i, c := range cs {
		out[i] = oracle.Constraint{A: Apply(c.A, xs, ts), B: Apply(c.B, xs, ts)}
	}
	return out
}
