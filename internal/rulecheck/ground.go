package rulecheck

import (
	"github.com/XVilka/lambdapi/internal/oracle"
	"github.com/XVilka/lambdapi/internal/term"
)

// hasDanglingSlot reports whether t still contains a TEnv node after
// SubstEnvSlots has run — a pattern-variable reference in the RHS that no
// Patt occurrence in the LHS ever bound. That is what spec.md §4.4 stage
// (i) ("re-evaluate the original RHS with every pattern slot mapped to
// TE_None") reduces to once splicing is expressed as SubstEnvSlots: a slot
// absent from the LHS never enters the metas map passed to that
// substitution, so its TEnv node survives into the spliced term
// unresolved, a dangling reference rather than a legitimate, if still
// uninstantiated, metavariable.
func hasDanglingSlot(t term.Term) bool {
	switch x := t.(type) {
	case term.TEnv:
		return true
	case term.App:
		return hasDanglingSlot(x.Fun) || hasDanglingSlot(x.Arg)
	case term.Abs:
		return hasDanglingSlot(x.Dom) || hasDanglingSlot(x.Body)
	case term.Prod:
		return hasDanglingSlot(x.Dom) || hasDanglingSlot(x.Body)
	case term.Meta:
		for _, e := range x.Env {
			if hasDanglingSlot(e) {
				return true
			}
		}
		return false
	case term.Patt:
		for _, e := range x.Env {
			if hasDanglingSlot(e) {
				return true
			}
		}
		return false
	default:
		return false
	}
}

// filterTrivial implements stage (h): drop residual constraints that are
// pointwise convertible, modulo reduction and commutativity, to a
// constraint already present in original (the constraints inference
// produced in stage (d), before any substitution). What remains is the
// set of genuine unsolved obligations.
func filterTrivial(residual, original []oracle.Constraint, eqModulo oracle.EqModulo) []oracle.Constraint {
	var genuine []oracle.Constraint
	for _, r := range residual {
		trivial := false
		for _, c := range original {
			if (eqModulo(r.A, c.A) && eqModulo(r.B, c.B)) || (eqModulo(r.A, c.B) && eqModulo(r.B, c.A)) {
				trivial = true
				break
			}
		}
		if !trivial {
			genuine = append(genuine, r)
		}
	}
	return genuine
}
